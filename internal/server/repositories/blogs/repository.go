// Package blogs persists blog articles.
package blogs

import (
	"context"

	"github.com/avolkovs/sitekeeper/internal/server/models"
)

// Stats summarizes the blog table for the admin dashboard.
type Stats struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Draft     int64 `json:"draft"`
	Featured  int64 `json:"featured"`
}

type Repository interface {
	Create(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	Update(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	Delete(ctx context.Context, id string) error

	GetByID(ctx context.Context, id string) (*models.Blog, error)

	// GetBySlug returns a published blog only; drafts are invisible on the
	// public surface.
	GetBySlug(ctx context.Context, slug string) (*models.Blog, error)

	// ListPublished orders by publish date, newest first.
	ListPublished(ctx context.Context, limit, offset int) ([]*models.Blog, error)
	CountPublished(ctx context.Context) (int64, error)

	// ListAll includes drafts; admin surface only. Ordered by creation time.
	ListAll(ctx context.Context, limit, offset int) ([]*models.Blog, error)
	CountAll(ctx context.Context) (int64, error)

	ListFeatured(ctx context.Context, limit int) ([]*models.Blog, error)

	// Search matches q case-insensitively against name, overview and
	// description of published blogs.
	Search(ctx context.Context, q string, limit, offset int) ([]*models.Blog, error)
	CountSearch(ctx context.Context, q string) (int64, error)

	Recent(ctx context.Context, limit int) ([]*models.Blog, error)
	GetStats(ctx context.Context) (*Stats, error)
}
