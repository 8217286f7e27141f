// Package httpapi exposes the public website endpoints and the bearer-token
// gated admin endpoints over JSON.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avolkovs/sitekeeper/internal/common"
)

// response is the envelope every endpoint answers with.
type response struct {
	Status  string   `json:"status"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, resp *response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error(context.Background(), "error encoding response", "error", err)
	}
}

func (s *Server) writeSuccess(w http.ResponseWriter, code int, message string, data any) {
	s.writeJSON(w, code, &response{Status: "success", Message: message, Data: data})
}

func (s *Server) writeError(w http.ResponseWriter, code int, message string) {
	s.writeJSON(w, code, &response{Status: "error", Message: message})
}

func (s *Server) writeValidationErrors(w http.ResponseWriter, errs []string) {
	s.writeJSON(w, http.StatusBadRequest, &response{
		Status:  "error",
		Message: "Validation failed",
		Errors:  errs,
	})
}

// writeServiceError maps service sentinels to HTTP status and message.
// Anything unrecognized is logged and reported as a generic 500.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "Resource not found.")
	case errors.Is(err, common.ErrAlreadyExists):
		s.writeError(w, http.StatusConflict, "Resource already exists.")
	case errors.Is(err, common.ErrValidation):
		s.writeError(w, http.StatusBadRequest, "Validation failed")
	case errors.Is(err, common.ErrUnauthenticated):
		s.writeError(w, http.StatusUnauthorized,
			"Access denied. No token provided or invalid format.")
	case errors.Is(err, common.ErrInvalidCredentials):
		s.writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, common.ErrAccountLocked):
		s.writeError(w, http.StatusUnauthorized,
			"Account is temporarily locked due to multiple failed login attempts.")
	case errors.Is(err, common.ErrAccountDisabled):
		s.writeError(w, http.StatusUnauthorized, "Account is deactivated.")
	case errors.Is(err, common.ErrTokenExpired):
		s.writeError(w, http.StatusUnauthorized, "Token expired. Please login again.")
	case errors.Is(err, common.ErrInvalidToken):
		s.writeError(w, http.StatusUnauthorized, "Invalid token.")
	case errors.Is(err, common.ErrForbidden):
		s.writeError(w, http.StatusForbidden, "Access denied. Insufficient permissions.")
	default:
		s.logger.Error(r.Context(), "internal error", "method", r.Method, "path", r.URL.Path, "error", err)
		s.writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeBody parses a JSON request body into dst. A syntactically broken body
// is a client error, not an internal one.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
