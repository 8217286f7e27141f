// Package contents persists generic page-content blocks keyed by
// (section, pageType).
package contents

import (
	"context"

	"github.com/avolkovs/sitekeeper/internal/server/models"
)

type Repository interface {
	// ListAll returns every content block, archived included; admin surface.
	ListAll(ctx context.Context) ([]*models.Content, error)

	// ListPublic returns the blocks the website renders.
	ListPublic(ctx context.Context) ([]*models.Content, error)

	// GetBySectionPage returns the non-archived block for the key.
	GetBySectionPage(ctx context.Context, section, pageType string) (*models.Content, error)

	GetByID(ctx context.Context, id string) (*models.Content, error)

	// Upsert creates the block or replaces the existing one with the same
	// (section, pageType) key.
	Upsert(ctx context.Context, content *models.Content) (*models.Content, error)

	Delete(ctx context.Context, id string) error
}
