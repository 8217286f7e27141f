// Package contacts persists contact-form submissions and their triage state.
package contacts

import (
	"context"
	"time"

	"github.com/avolkovs/sitekeeper/internal/server/models"
)

// Stats summarizes the contact table for the admin dashboard.
type Stats struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"statusBreakdown"`
	ByPriority map[string]int64 `json:"priorityBreakdown"`
	RecentWeek int64            `json:"recentContacts"`
}

type Repository interface {
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	Delete(ctx context.Context, id string) error

	GetByID(ctx context.Context, id string) (*models.Contact, error)

	List(ctx context.Context, limit, offset int) ([]*models.Contact, error)
	Count(ctx context.Context) (int64, error)

	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*models.Contact, error)
	CountByStatus(ctx context.Context, status string) (int64, error)

	// UpdateStatus sets the triage status; a non-empty response also stamps
	// responded_at and the responding admin.
	UpdateStatus(ctx context.Context, id, status, response, adminID string, now time.Time) (*models.Contact, error)

	// Assign moves the contact to in-progress under the given admin.
	Assign(ctx context.Context, id, adminID string) (*models.Contact, error)

	Recent(ctx context.Context, limit int) ([]*models.Contact, error)
	GetStats(ctx context.Context, since time.Time) (*Stats, error)
}
