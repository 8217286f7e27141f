package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/avolkovs/sitekeeper/internal/common"
	"github.com/avolkovs/sitekeeper/internal/server/models"
)

type contextKey string

const adminContextKey contextKey = "admin"

// adminFromContext returns the admin attached by the access guard.
func adminFromContext(ctx context.Context) (*models.Admin, bool) {
	admin, ok := ctx.Value(adminContextKey).(*models.Admin)
	return admin, ok
}

// requireAuth is the access guard for admin endpoints. It extracts the bearer
// token, verifies it, loads the admin and rejects deactivated or locked
// accounts before the handler runs.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			s.writeServiceError(w, r, common.ErrUnauthenticated)
			return
		}

		adminID, _, err := s.admins.VerifyToken(token)
		if err != nil {
			// ErrTokenExpired or ErrInvalidToken from the verifier
			s.writeServiceError(w, r, err)
			return
		}

		admin, err := s.admins.GetAdmin(r.Context(), adminID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				s.writeError(w, http.StatusUnauthorized, "Invalid token. Admin not found.")
				return
			}
			s.writeServiceError(w, r, err)
			return
		}

		if !admin.IsActive {
			s.writeServiceError(w, r, common.ErrAccountDisabled)
			return
		}
		if s.admins.IsLocked(admin) {
			s.writeServiceError(w, r, common.ErrAccountLocked)
			return
		}

		ctx := context.WithValue(r.Context(), adminContextKey, admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole composes after requireAuth and rejects admins whose role is not
// in the allowed set.
func (s *Server) requireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin, ok := adminFromContext(r.Context())
			if !ok {
				s.writeServiceError(w, r, common.ErrUnauthenticated)
				return
			}
			for _, role := range roles {
				if admin.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			s.writeServiceError(w, r, common.ErrForbidden)
		})
	}
}

// rateLimit counts requests per client IP in a fixed window. Redis errors
// fail open and are logged.
func (s *Server) rateLimit(name string, limit int64, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "rl:" + name + ":" + clientIP(r)
			ok, _, err := s.limiter.Allow(r.Context(), key, limit, window)
			if err != nil {
				s.logger.Warn(r.Context(), "rate limiter unavailable", "error", err)
			}
			if !ok {
				s.writeError(w, http.StatusTooManyRequests,
					"Too many requests. Please try again later.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// logRequests emits one line per request with method, path and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info(r.Context(), "request", "method", r.Method, "path", r.URL.Path,
			"duration", time.Since(start).String())
	})
}

// clientIP prefers the X-Forwarded-For chain head, falling back to RemoteAddr.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
