// Package admins stores administrator identity records: the sole source of
// truth for credentials, active state and lockout bookkeeping.
package admins

import (
	"context"
	"time"

	"github.com/avolkovs/sitekeeper/internal/server/models"
)

// Repository is the persistence contract for admin records.
//
// RecordFailure and RecordSuccess are the only operations that mutate the
// attempt-tracking fields, and both are single-statement atomic updates.
type Repository interface {
	Create(ctx context.Context, admin *models.Admin) (*models.Admin, error)

	// GetByEmail looks up an active admin by lowercased email. Deactivated
	// records are treated as absent, matching the login flow's behavior.
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)

	// GetByID returns the record regardless of active state; callers decide
	// what an inactive record means.
	GetByID(ctx context.Context, id string) (*models.Admin, error)

	// RecordFailure bumps the failed-attempt counter. An expired lock starts
	// a fresh window (counter = 1, lock cleared); otherwise the counter
	// increments, and reaching threshold sets locked_until = now + lockFor.
	// Returns the post-update attempt count and lock expiry.
	RecordFailure(ctx context.Context, id string, now time.Time, threshold int, lockFor time.Duration) (int, *time.Time, error)

	// RecordSuccess clears the counter and lock and stamps last_login_at.
	RecordSuccess(ctx context.Context, id string, now time.Time) error

	UpdatePassword(ctx context.Context, id string, passwordHash string, now time.Time) error
}
