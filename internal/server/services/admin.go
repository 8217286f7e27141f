package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/avolkovs/sitekeeper/internal/common"
	"github.com/avolkovs/sitekeeper/internal/server/auth"
	"github.com/avolkovs/sitekeeper/internal/server/config"
	"github.com/avolkovs/sitekeeper/internal/server/models"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/repomanager"
)

const bcryptCost = 12

// AdminService handles admin authentication: credential verification with
// failed-attempt tracking and temporary lockout, token issue and verification,
// and password rotation.
type AdminService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	lockoutThreshold      int
	lockoutDuration       time.Duration

	// dummyHash is compared against when the email is unknown, so the
	// response time does not reveal whether the account exists.
	dummyHash []byte

	now func() time.Time
}

// NewAdminService constructs an AdminService using repositories and server config.
func NewAdminService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AdminService {
	dummy, err := bcrypt.GenerateFromPassword([]byte("sitekeeper-dummy"), bcryptCost)
	if err != nil {
		panic(err)
	}
	return &AdminService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		lockoutThreshold:      cfg.LockoutThreshold,
		lockoutDuration:       cfg.LockoutDuration,
		dummyHash:             dummy,
		now:                   time.Now,
	}
}

// LoginResult bundles the issued token with the authenticated admin.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Admin     *models.Admin
}

// Login verifies the credentials and returns a fresh token. Unknown emails and
// wrong passwords are indistinguishable to the caller; a locked account is
// reported as such without counting a new attempt.
func (s *AdminService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	now := s.now()
	repo := s.repomanager.Admins(s.db)

	admin, err := repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}

	if admin.IsLocked(now) {
		return nil, common.ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		if _, _, ferr := repo.RecordFailure(ctx, admin.ID, now, s.lockoutThreshold, s.lockoutDuration); ferr != nil {
			return nil, common.ErrInternal
		}
		return nil, common.ErrInvalidCredentials
	}

	if err := repo.RecordSuccess(ctx, admin.ID, now); err != nil {
		return nil, common.ErrInternal
	}
	admin.FailedAttempts = 0
	admin.LockedUntil = nil
	admin.LastLoginAt = &now

	token, err := auth.GenerateToken(admin.ID, s.jwtSecret, s.tokenValidityDuration, now)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: now.Add(s.tokenValidityDuration),
		Admin:     admin,
	}, nil
}

// VerifyToken checks the token signature and expiry and returns the admin ID
// it was issued to together with its expiry time.
func (s *AdminService) VerifyToken(tokenString string) (string, time.Time, error) {
	return auth.ParseToken(tokenString, s.jwtSecret, s.now())
}

// GetAdmin returns the admin record for the given ID.
func (s *AdminService) GetAdmin(ctx context.Context, id string) (*models.Admin, error) {
	repo := s.repomanager.Admins(s.db)
	return repo.GetByID(ctx, id)
}

// IsLocked reports whether the admin is currently locked out.
func (s *AdminService) IsLocked(admin *models.Admin) bool {
	return admin.IsLocked(s.now())
}

// ChangePassword re-verifies the current password before storing a new hash.
func (s *AdminService) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	repo := s.repomanager.Admins(s.db)

	admin, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(currentPassword)); err != nil {
		return common.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return common.ErrInternal
	}

	return repo.UpdatePassword(ctx, id, string(hash), s.now())
}

// EnsureBootstrapAdmin creates the initial admin account if no record exists
// for the configured email. An existing record is left untouched.
func (s *AdminService) EnsureBootstrapAdmin(ctx context.Context, email, password string) (*models.Admin, bool, error) {
	if email == "" || password == "" {
		return nil, false, nil
	}

	repo := s.repomanager.Admins(s.db)
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, false, fmt.Errorf("error hashing password: %w", err)
	}

	admin, err := repo.Create(ctx, &models.Admin{
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.AdminRoleAdmin,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			existing, gerr := repo.GetByEmail(ctx, email)
			return existing, false, gerr
		}
		return nil, false, err
	}
	return admin, true, nil
}
