package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avolkovs/sitekeeper/internal/server/models"
)

func (s *Server) handleListBlogs(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	list, pagination, err := s.blogs.ListPublished(r.Context(), page, limit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{
		"blogs":      list,
		"pagination": pagination,
	})
}

func (s *Server) handleFeaturedBlogs(w http.ResponseWriter, r *http.Request) {
	_, limit := parsePagination(r)
	list, err := s.blogs.ListFeatured(r.Context(), limit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{"blogs": list})
}

func (s *Server) handleSearchBlogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		s.writeValidationErrors(w, []string{"Search query is required"})
		return
	}
	page, limit := parsePagination(r)
	list, pagination, err := s.blogs.Search(r.Context(), q, page, limit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{
		"blogs":      list,
		"pagination": pagination,
	})
}

func (s *Server) handleGetBlogBySlug(w http.ResponseWriter, r *http.Request) {
	blog, err := s.blogs.GetBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{"blog": blog})
}

// --- admin surface ---

func (s *Server) handleAdminListBlogs(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	list, pagination, err := s.blogs.ListAll(r.Context(), page, limit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{
		"blogs":      list,
		"pagination": pagination,
	})
}

func (s *Server) handleGetBlog(w http.ResponseWriter, r *http.Request) {
	blog, err := s.blogs.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{"blog": blog})
}

func (s *Server) handleCreateBlog(w http.ResponseWriter, r *http.Request) {
	var blog models.Blog
	if !s.decodeBody(w, r, &blog) {
		return
	}
	if errs := validateBlog(&blog); len(errs) > 0 {
		s.writeValidationErrors(w, errs)
		return
	}
	created, err := s.blogs.Create(r.Context(), &blog)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusCreated, "Blog created successfully", map[string]any{"blog": created})
}

func (s *Server) handleUpdateBlog(w http.ResponseWriter, r *http.Request) {
	var blog models.Blog
	if !s.decodeBody(w, r, &blog) {
		return
	}
	blog.ID = mux.Vars(r)["id"]
	if errs := validateBlog(&blog); len(errs) > 0 {
		s.writeValidationErrors(w, errs)
		return
	}
	updated, err := s.blogs.Update(r.Context(), &blog)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "Blog updated successfully", map[string]any{"blog": updated})
}

func (s *Server) handleDeleteBlog(w http.ResponseWriter, r *http.Request) {
	if err := s.blogs.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "Blog deleted successfully", nil)
}
