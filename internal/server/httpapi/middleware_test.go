package httpapi

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"github.com/avolkovs/sitekeeper/internal/common"
	"github.com/avolkovs/sitekeeper/internal/dbx"
	"github.com/avolkovs/sitekeeper/internal/logging"
	"github.com/avolkovs/sitekeeper/internal/server/config"
	"github.com/avolkovs/sitekeeper/internal/server/models"
	"github.com/avolkovs/sitekeeper/internal/server/ratelimit"
	adminsrepo "github.com/avolkovs/sitekeeper/internal/server/repositories/admins"
	blogsrepo "github.com/avolkovs/sitekeeper/internal/server/repositories/blogs"
	contactsrepo "github.com/avolkovs/sitekeeper/internal/server/repositories/contacts"
	contentsrepo "github.com/avolkovs/sitekeeper/internal/server/repositories/contents"
	productsrepo "github.com/avolkovs/sitekeeper/internal/server/repositories/products"
	"github.com/avolkovs/sitekeeper/internal/server/services"
)

type fakeAdminsRepo struct {
	adminsrepo.Repository

	byEmail map[string]*models.Admin
	byID    map[string]*models.Admin

	failureCalls int
	successCalls int
}

func (f *fakeAdminsRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if a, ok := f.byEmail[email]; ok {
		return a, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeAdminsRepo) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeAdminsRepo) RecordFailure(ctx context.Context, id string, now time.Time, threshold int, lockFor time.Duration) (int, *time.Time, error) {
	f.failureCalls++
	return 1, nil, nil
}

func (f *fakeAdminsRepo) RecordSuccess(ctx context.Context, id string, now time.Time) error {
	f.successCalls++
	return nil
}

type fakeRepoManager struct {
	a *fakeAdminsRepo
	c contactsrepo.Repository
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Admins(db dbx.DBTX) adminsrepo.Repository     { return m.a }
func (m *fakeRepoManager) Blogs(db dbx.DBTX) blogsrepo.Repository       { return nil }
func (m *fakeRepoManager) Products(db dbx.DBTX) productsrepo.Repository { return nil }
func (m *fakeRepoManager) Contacts(db dbx.DBTX) contactsrepo.Repository { return m.c }
func (m *fakeRepoManager) Contents(db dbx.DBTX) contentsrepo.Repository { return nil }

func testAdmin(t *testing.T, password string) *models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	return &models.Admin{
		ID:           "a1",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         models.AdminRoleAdmin,
		IsActive:     true,
	}
}

func newTestServer(t *testing.T, rm *fakeRepoManager) (*Server, *sql.DB) {
	t.Helper()
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
		LockoutThreshold:      5,
		LockoutDuration:       2 * time.Hour,
	}
	limiter, _ := ratelimit.New("")
	srv := NewServer(
		logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		services.NewAdminService(db, rm, cfg),
		services.NewBlogService(db, rm),
		services.NewProductService(db, rm),
		services.NewContactService(db, rm),
		services.NewContentService(db, rm),
		services.NewDashboardService(db, rm),
		services.NewMediaService(cfg),
		limiter,
	)
	return srv, db
}

func loginToken(t *testing.T, srv *Server, email, password string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return resp.Data.Token
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return resp.Message
}

func TestGuard_NoToken(t *testing.T) {
	srv, db := newTestServer(t, &fakeRepoManager{a: &fakeAdminsRepo{}})
	defer db.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "Access denied. No token provided or invalid format." {
		t.Fatalf("message = %q", got)
	}
}

func TestGuard_WrongScheme(t *testing.T) {
	srv, db := newTestServer(t, &fakeRepoManager{a: &fakeAdminsRepo{}})
	defer db.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "Access denied. No token provided or invalid format." {
		t.Fatalf("message = %q", got)
	}
}

func TestGuard_MalformedToken(t *testing.T) {
	srv, db := newTestServer(t, &fakeRepoManager{a: &fakeAdminsRepo{}})
	defer db.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "Invalid token." {
		t.Fatalf("message = %q", got)
	}
}

func TestGuard_AdminGone(t *testing.T) {
	admin := testAdmin(t, "Secret1!")
	repo := &fakeAdminsRepo{
		byEmail: map[string]*models.Admin{admin.Email: admin},
		byID:    map[string]*models.Admin{},
	}
	srv, db := newTestServer(t, &fakeRepoManager{a: repo})
	defer db.Close()

	token := loginToken(t, srv, admin.Email, "Secret1!")

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "Invalid token. Admin not found." {
		t.Fatalf("message = %q", got)
	}
}

func TestGuard_Deactivated(t *testing.T) {
	admin := testAdmin(t, "Secret1!")
	repo := &fakeAdminsRepo{
		byEmail: map[string]*models.Admin{admin.Email: admin},
		byID:    map[string]*models.Admin{admin.ID: admin},
	}
	srv, db := newTestServer(t, &fakeRepoManager{a: repo})
	defer db.Close()

	token := loginToken(t, srv, admin.Email, "Secret1!")
	admin.IsActive = false

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "Account is deactivated." {
		t.Fatalf("message = %q", got)
	}
}

func TestGuard_LockedAfterTokenIssued(t *testing.T) {
	admin := testAdmin(t, "Secret1!")
	repo := &fakeAdminsRepo{
		byEmail: map[string]*models.Admin{admin.Email: admin},
		byID:    map[string]*models.Admin{admin.ID: admin},
	}
	srv, db := newTestServer(t, &fakeRepoManager{a: repo})
	defer db.Close()

	token := loginToken(t, srv, admin.Email, "Secret1!")
	until := time.Now().Add(time.Hour)
	admin.LockedUntil = &until

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "Account is temporarily locked due to multiple failed login attempts." {
		t.Fatalf("message = %q", got)
	}
}

func TestGuard_Success_Me(t *testing.T) {
	admin := testAdmin(t, "Secret1!")
	repo := &fakeAdminsRepo{
		byEmail: map[string]*models.Admin{admin.Email: admin},
		byID:    map[string]*models.Admin{admin.ID: admin},
	}
	srv, db := newTestServer(t, &fakeRepoManager{a: repo})
	defer db.Close()

	token := loginToken(t, srv, admin.Email, "Secret1!")

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data struct {
			Admin struct {
				Email string `json:"email"`
			} `json:"admin"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Data.Admin.Email != admin.Email {
		t.Fatalf("email = %q", resp.Data.Admin.Email)
	}
}

func TestGuard_WrongRole(t *testing.T) {
	admin := testAdmin(t, "Secret1!")
	repo := &fakeAdminsRepo{
		byEmail: map[string]*models.Admin{admin.Email: admin},
		byID:    map[string]*models.Admin{admin.ID: admin},
	}
	srv, db := newTestServer(t, &fakeRepoManager{a: repo})
	defer db.Close()

	token := loginToken(t, srv, admin.Email, "Secret1!")
	admin.Role = "viewer"

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "Access denied. Insufficient permissions." {
		t.Fatalf("message = %q", got)
	}
}
