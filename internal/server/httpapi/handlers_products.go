package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avolkovs/sitekeeper/internal/server/models"
)

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	list, pagination, err := s.products.ListActive(r.Context(), page, limit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{
		"products":   list,
		"pagination": pagination,
	})
}

func (s *Server) handleFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	_, limit := parsePagination(r)
	list, err := s.products.ListFeatured(r.Context(), limit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{"products": list})
}

func (s *Server) handleSearchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		s.writeValidationErrors(w, []string{"Search query is required"})
		return
	}
	page, limit := parsePagination(r)
	list, pagination, err := s.products.Search(r.Context(), q, page, limit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{
		"products":   list,
		"pagination": pagination,
	})
}

func (s *Server) handleProductCategories(w http.ResponseWriter, r *http.Request) {
	s.writeSuccess(w, http.StatusOK, "", map[string]any{
		"categories": models.ProductCategories,
	})
}

func (s *Server) handleProductsByCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	page, limit := parsePagination(r)
	list, pagination, err := s.products.ListByCategory(r.Context(), category, page, limit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{
		"products":   list,
		"pagination": pagination,
	})
}

func (s *Server) handleGetProductBySlug(w http.ResponseWriter, r *http.Request) {
	product, err := s.products.GetBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{"product": product})
}

// --- admin surface ---

func (s *Server) handleAdminListProducts(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	list, pagination, err := s.products.ListAll(r.Context(), page, limit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{
		"products":   list,
		"pagination": pagination,
	})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := s.products.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{"product": product})
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if !s.decodeBody(w, r, &product) {
		return
	}
	if errs := validateProduct(&product); len(errs) > 0 {
		s.writeValidationErrors(w, errs)
		return
	}
	created, err := s.products.Create(r.Context(), &product)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusCreated, "Product created successfully", map[string]any{"product": created})
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if !s.decodeBody(w, r, &product) {
		return
	}
	product.ID = mux.Vars(r)["id"]
	if errs := validateProduct(&product); len(errs) > 0 {
		s.writeValidationErrors(w, errs)
		return
	}
	updated, err := s.products.Update(r.Context(), &product)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "Product updated successfully", map[string]any{"product": updated})
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.products.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "Product deleted successfully", nil)
}
