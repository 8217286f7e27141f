package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avolkovs/sitekeeper/internal/server/models"
)

func (s *Server) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if !s.decodeBody(w, r, &contact) {
		return
	}
	if errs := validateContact(&contact); len(errs) > 0 {
		s.writeValidationErrors(w, errs)
		return
	}

	contact.Source = "website"
	contact.IPAddress = clientIP(r)
	contact.UserAgent = r.UserAgent()

	created, err := s.contacts.Submit(r.Context(), &contact)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusCreated,
		"Thank you for contacting us. We will get back to you soon.",
		map[string]any{"contact": created})
}

// --- admin surface ---

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	page, limit := parsePagination(r)
	list, pagination, err := s.contacts.List(r.Context(), status, page, limit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{
		"contacts":   list,
		"pagination": pagination,
	})
}

func (s *Server) handleGetContact(w http.ResponseWriter, r *http.Request) {
	contact, err := s.contacts.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{"contact": contact})
}

type updateContactStatusRequest struct {
	Status   string `json:"status"`
	Response string `json:"response"`
}

func (s *Server) handleUpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	admin, ok := adminFromContext(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "Invalid token.")
		return
	}

	var req updateContactStatusRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if !models.ValidContactStatus(req.Status) {
		s.writeValidationErrors(w, []string{"Please select a valid status"})
		return
	}

	contact, err := s.contacts.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status, req.Response, admin.ID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "Contact updated successfully", map[string]any{"contact": contact})
}

func (s *Server) handleAssignContact(w http.ResponseWriter, r *http.Request) {
	admin, ok := adminFromContext(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "Invalid token.")
		return
	}

	contact, err := s.contacts.Assign(r.Context(), mux.Vars(r)["id"], admin.ID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "Contact assigned successfully", map[string]any{"contact": contact})
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	if err := s.contacts.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "Contact deleted successfully", nil)
}

func (s *Server) handleContactStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.contacts.GetStats(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{"stats": stats})
}

func (s *Server) handleRecentContacts(w http.ResponseWriter, r *http.Request) {
	_, limit := parsePagination(r)
	list, err := s.contacts.Recent(r.Context(), limit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{"contacts": list})
}
