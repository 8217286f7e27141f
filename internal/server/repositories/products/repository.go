// Package products persists product listings.
package products

import (
	"context"

	"github.com/avolkovs/sitekeeper/internal/server/models"
)

// Stats summarizes the product table for the admin dashboard.
type Stats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Featured int64 `json:"featured"`
}

type Repository interface {
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id string) error

	GetByID(ctx context.Context, id string) (*models.Product, error)

	// GetBySlug returns an active product only.
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)

	ListActive(ctx context.Context, limit, offset int) ([]*models.Product, error)
	CountActive(ctx context.Context) (int64, error)

	ListAll(ctx context.Context, limit, offset int) ([]*models.Product, error)
	CountAll(ctx context.Context) (int64, error)

	ListFeatured(ctx context.Context, limit int) ([]*models.Product, error)

	ListByCategory(ctx context.Context, category string, limit, offset int) ([]*models.Product, error)
	CountByCategory(ctx context.Context, category string) (int64, error)

	Search(ctx context.Context, q string, limit, offset int) ([]*models.Product, error)
	CountSearch(ctx context.Context, q string) (int64, error)

	Recent(ctx context.Context, limit int) ([]*models.Product, error)
	GetStats(ctx context.Context) (*Stats, error)
}
