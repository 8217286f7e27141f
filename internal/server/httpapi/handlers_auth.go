package httpapi

import (
	"errors"
	"net/http"

	"github.com/avolkovs/sitekeeper/internal/common"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	var errs []string
	if req.Email == "" {
		errs = append(errs, "Email is required")
	} else if !validEmail(req.Email) {
		errs = append(errs, "Please provide a valid email address")
	}
	if req.Password == "" {
		errs = append(errs, "Password is required")
	}
	if len(errs) > 0 {
		s.writeValidationErrors(w, errs)
		return
	}

	res, err := s.admins.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.writeSuccess(w, http.StatusOK, "Login successful", map[string]any{
		"token":     res.Token,
		"expiresAt": res.ExpiresAt,
		"admin":     res.Admin.Summary(),
	})
}

type verifyTokenRequest struct {
	Token string `json:"token"`
}

func (s *Server) handleVerifyToken(w http.ResponseWriter, r *http.Request) {
	var req verifyTokenRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if req.Token == "" {
		s.writeValidationErrors(w, []string{"Token is required"})
		return
	}

	adminID, exp, err := s.admins.VerifyToken(req.Token)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.writeSuccess(w, http.StatusOK, "Token is valid", map[string]any{
		"adminId":   adminID,
		"expiresAt": exp,
	})
}

// handleLogout exists for client symmetry; the token is stateless, so there
// is nothing to revoke server-side.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.writeSuccess(w, http.StatusOK, "Logout successful", nil)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	admin, ok := adminFromContext(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "Invalid token.")
		return
	}
	s.writeSuccess(w, http.StatusOK, "", map[string]any{"admin": admin.Summary()})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	admin, ok := adminFromContext(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "Invalid token.")
		return
	}

	var req changePasswordRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	var errs []string
	if req.CurrentPassword == "" {
		errs = append(errs, "Current password is required")
	}
	errs = append(errs, validatePassword(req.NewPassword)...)
	if req.NewPassword != req.ConfirmPassword {
		errs = append(errs, "Passwords do not match")
	}
	if len(errs) > 0 {
		s.writeValidationErrors(w, errs)
		return
	}

	if err := s.admins.ChangePassword(r.Context(), admin.ID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			s.writeError(w, http.StatusBadRequest, "Current password is incorrect")
			return
		}
		s.writeServiceError(w, r, err)
		return
	}

	s.writeSuccess(w, http.StatusOK, "Password changed successfully", nil)
}
