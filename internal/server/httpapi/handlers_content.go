package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avolkovs/sitekeeper/internal/server/models"
)

func (s *Server) handlePublicContent(w http.ResponseWriter, r *http.Request) {
	list, err := s.contents.ListPublic(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{"content": list})
}

func (s *Server) handleContentBySectionPage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	content, err := s.contents.GetBySectionPage(r.Context(), vars["section"], vars["pageType"])
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{"content": content})
}

// --- admin surface ---

func (s *Server) handleAdminListContent(w http.ResponseWriter, r *http.Request) {
	list, err := s.contents.ListAll(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{"content": list})
}

func (s *Server) handleUpsertContent(w http.ResponseWriter, r *http.Request) {
	var content models.Content
	if !s.decodeBody(w, r, &content) {
		return
	}
	if errs := validateContent(&content); len(errs) > 0 {
		s.writeValidationErrors(w, errs)
		return
	}
	saved, err := s.contents.Upsert(r.Context(), &content)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "Content saved successfully", map[string]any{"content": saved})
}

func (s *Server) handleDeleteContent(w http.ResponseWriter, r *http.Request) {
	if err := s.contents.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "Content deleted successfully", nil)
}
