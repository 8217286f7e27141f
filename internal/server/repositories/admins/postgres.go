package admins

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avolkovs/sitekeeper/internal/common"
	"github.com/avolkovs/sitekeeper/internal/dbx"
	"github.com/avolkovs/sitekeeper/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const adminColumns = `id, email, password_hash, role, is_active, last_login_at, failed_attempts, locked_until, created_at, updated_at`

func (r *PostgresRepository) scanAdmin(row *sql.Row) (*models.Admin, error) {
	a := &models.Admin{}
	var lastLogin, lockedUntil sql.NullTime
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.IsActive,
		&lastLogin, &a.FailedAttempts, &lockedUntil, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if lastLogin.Valid {
		a.LastLoginAt = &lastLogin.Time
	}
	if lockedUntil.Valid {
		a.LockedUntil = &lockedUntil.Time
	}
	return a, nil
}

func (r *PostgresRepository) Create(ctx context.Context, admin *models.Admin) (*models.Admin, error) {

	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}
	admin.Email = strings.ToLower(admin.Email)

	query :=
		`INSERT INTO admins (id, email, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		admin.ID, admin.Email, admin.PasswordHash, admin.Role, admin.IsActive).
		Scan(&admin.CreatedAt, &admin.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return admin, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins
		 WHERE email = $1 AND is_active = TRUE
		 `
	return r.scanAdmin(r.db.QueryRowContext(ctx, query, strings.ToLower(email)))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins
		 WHERE id = $1
		 `
	return r.scanAdmin(r.db.QueryRowContext(ctx, query, id))
}

// RecordFailure resolves the expired-window reset, the plain increment and
// the threshold lock in one statement so concurrent failed logins cannot
// lose updates.
func (r *PostgresRepository) RecordFailure(ctx context.Context, id string, now time.Time, threshold int, lockFor time.Duration) (int, *time.Time, error) {

	query :=
		`UPDATE admins SET
		   failed_attempts = CASE
		     WHEN locked_until IS NOT NULL AND locked_until <= $2 THEN 1
		     ELSE failed_attempts + 1
		   END,
		   locked_until = CASE
		     WHEN locked_until IS NOT NULL AND locked_until <= $2 THEN NULL
		     WHEN failed_attempts + 1 >= $3 THEN $4
		     ELSE locked_until
		   END,
		   updated_at = $2
		 WHERE id = $1
		 RETURNING failed_attempts, locked_until
		 `

	var attempts int
	var lockedUntil sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id, now, threshold, now.Add(lockFor)).
		Scan(&attempts, &lockedUntil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil, common.ErrNotFound
		}
		return 0, nil, fmt.Errorf("db error: %w", err)
	}

	if lockedUntil.Valid {
		return attempts, &lockedUntil.Time, nil
	}
	return attempts, nil, nil
}

func (r *PostgresRepository) RecordSuccess(ctx context.Context, id string, now time.Time) error {

	query :=
		`UPDATE admins SET
		   failed_attempts = 0,
		   locked_until = NULL,
		   last_login_at = $2,
		   updated_at = $2
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id, now)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, id string, passwordHash string, now time.Time) error {

	query :=
		`UPDATE admins SET password_hash = $2, updated_at = $3
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id, passwordHash, now)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}
