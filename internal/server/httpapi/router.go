package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/avolkovs/sitekeeper/internal/server/models"
)

const (
	loginRateLimit   = 10
	contactRateLimit = 5
	rateWindow       = time.Minute
)

// Router builds the full route table: the public website surface and the
// bearer-gated admin surface.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// auth
	api.Handle("/auth/login",
		s.rateLimit("login", loginRateLimit, rateWindow)(http.HandlerFunc(s.handleLogin))).Methods("POST")
	api.HandleFunc("/auth/verify-token", s.handleVerifyToken).Methods("POST")
	api.HandleFunc("/auth/logout", s.handleLogout).Methods("POST")

	// public catalog
	api.HandleFunc("/blogs", s.handleListBlogs).Methods("GET")
	api.HandleFunc("/blogs/featured", s.handleFeaturedBlogs).Methods("GET")
	api.HandleFunc("/blogs/search", s.handleSearchBlogs).Methods("GET")
	api.HandleFunc("/blogs/{slug}", s.handleGetBlogBySlug).Methods("GET")

	api.HandleFunc("/products", s.handleListProducts).Methods("GET")
	api.HandleFunc("/products/featured", s.handleFeaturedProducts).Methods("GET")
	api.HandleFunc("/products/search", s.handleSearchProducts).Methods("GET")
	api.HandleFunc("/products/categories", s.handleProductCategories).Methods("GET")
	api.HandleFunc("/products/category/{category}", s.handleProductsByCategory).Methods("GET")
	api.HandleFunc("/products/{slug}", s.handleGetProductBySlug).Methods("GET")

	api.HandleFunc("/content/public", s.handlePublicContent).Methods("GET")
	api.HandleFunc("/content/{section}/{pageType}", s.handleContentBySectionPage).Methods("GET")

	api.Handle("/contact",
		s.rateLimit("contact", contactRateLimit, rateWindow)(http.HandlerFunc(s.handleSubmitContact))).Methods("POST")

	// admin
	admin := api.NewRoute().Subrouter()
	admin.Use(s.requireAuth, s.requireRole(models.AdminRoleAdmin))

	admin.HandleFunc("/auth/me", s.handleMe).Methods("GET")
	admin.HandleFunc("/auth/change-password", s.handleChangePassword).Methods("PUT")

	admin.HandleFunc("/admin/dashboard", s.handleDashboard).Methods("GET")

	admin.HandleFunc("/admin/blogs", s.handleAdminListBlogs).Methods("GET")
	admin.HandleFunc("/admin/blogs", s.handleCreateBlog).Methods("POST")
	admin.HandleFunc("/admin/blogs/{id}", s.handleGetBlog).Methods("GET")
	admin.HandleFunc("/admin/blogs/{id}", s.handleUpdateBlog).Methods("PUT")
	admin.HandleFunc("/admin/blogs/{id}", s.handleDeleteBlog).Methods("DELETE")

	admin.HandleFunc("/admin/products", s.handleAdminListProducts).Methods("GET")
	admin.HandleFunc("/admin/products", s.handleCreateProduct).Methods("POST")
	admin.HandleFunc("/admin/products/{id}", s.handleGetProduct).Methods("GET")
	admin.HandleFunc("/admin/products/{id}", s.handleUpdateProduct).Methods("PUT")
	admin.HandleFunc("/admin/products/{id}", s.handleDeleteProduct).Methods("DELETE")

	admin.HandleFunc("/admin/contacts", s.handleListContacts).Methods("GET")
	admin.HandleFunc("/admin/contacts/stats", s.handleContactStats).Methods("GET")
	admin.HandleFunc("/admin/contacts/recent", s.handleRecentContacts).Methods("GET")
	admin.HandleFunc("/admin/contacts/{id}", s.handleGetContact).Methods("GET")
	admin.HandleFunc("/admin/contacts/{id}/status", s.handleUpdateContactStatus).Methods("PUT")
	admin.HandleFunc("/admin/contacts/{id}/assign", s.handleAssignContact).Methods("PUT")
	admin.HandleFunc("/admin/contacts/{id}", s.handleDeleteContact).Methods("DELETE")

	admin.HandleFunc("/content", s.handleAdminListContent).Methods("GET")
	admin.HandleFunc("/content", s.handleUpsertContent).Methods("POST")
	admin.HandleFunc("/content/{id}", s.handleDeleteContent).Methods("DELETE")

	admin.HandleFunc("/admin/media/upload-url", s.handleMediaUploadURL).Methods("POST")
	admin.HandleFunc("/admin/media/download-url", s.handleMediaDownloadURL).Methods("GET")

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeSuccess(w, http.StatusOK, "OK", nil)
}
