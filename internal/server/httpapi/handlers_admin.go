package httpapi

import (
	"net/http"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := s.dashboard.GetStats(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{"dashboard": stats})
}

func (s *Server) handleMediaUploadURL(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.media.GetPresignedPutUrl(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{
		"key": key,
		"url": url,
	})
}

func (s *Server) handleMediaDownloadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		s.writeValidationErrors(w, []string{"Key is required"})
		return
	}
	url, err := s.media.GetPresignedGetUrl(r.Context(), key)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{"url": url})
}
