package services

import (
	"context"
	"database/sql"

	"github.com/avolkovs/sitekeeper/internal/common"
	"github.com/avolkovs/sitekeeper/internal/server/models"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/products"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/repomanager"
)

// ProductService manages the product catalog: active products for the public
// website, everything for the admin surface.
type ProductService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProductService(db *sql.DB, m repomanager.RepositoryManager) *ProductService {
	return &ProductService{db: db, repomanager: m}
}

// ListActive returns one page of active products.
func (s *ProductService) ListActive(ctx context.Context, page, limit int) ([]*models.Product, *Pagination, error) {
	page, limit, offset := normalizePage(page, limit)
	repo := s.repomanager.Products(s.db)

	total, err := repo.CountActive(ctx)
	if err != nil {
		return nil, nil, err
	}
	list, err := repo.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	return list, newPagination(page, limit, total), nil
}

// ListAll returns one page of all products for the admin surface.
func (s *ProductService) ListAll(ctx context.Context, page, limit int) ([]*models.Product, *Pagination, error) {
	page, limit, offset := normalizePage(page, limit)
	repo := s.repomanager.Products(s.db)

	total, err := repo.CountAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	list, err := repo.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	return list, newPagination(page, limit, total), nil
}

// ListByCategory returns one page of active products in the given category.
// An unknown category is a validation error, not an empty page.
func (s *ProductService) ListByCategory(ctx context.Context, category string, page, limit int) ([]*models.Product, *Pagination, error) {
	if !models.ValidProductCategory(category) {
		return nil, nil, common.ErrValidation
	}
	page, limit, offset := normalizePage(page, limit)
	repo := s.repomanager.Products(s.db)

	total, err := repo.CountByCategory(ctx, category)
	if err != nil {
		return nil, nil, err
	}
	list, err := repo.ListByCategory(ctx, category, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	return list, newPagination(page, limit, total), nil
}

// GetBySlug returns an active product; inactive ones read as absent.
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return s.repomanager.Products(s.db).GetBySlug(ctx, slug)
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return s.repomanager.Products(s.db).GetByID(ctx, id)
}

// ListFeatured returns up to limit featured active products.
func (s *ProductService) ListFeatured(ctx context.Context, limit int) ([]*models.Product, error) {
	if limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	return s.repomanager.Products(s.db).ListFeatured(ctx, limit)
}

// Search matches q against name, overview and description of active products.
func (s *ProductService) Search(ctx context.Context, q string, page, limit int) ([]*models.Product, *Pagination, error) {
	page, limit, offset := normalizePage(page, limit)
	repo := s.repomanager.Products(s.db)

	total, err := repo.CountSearch(ctx, q)
	if err != nil {
		return nil, nil, err
	}
	list, err := repo.Search(ctx, q, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	return list, newPagination(page, limit, total), nil
}

// Create stores a new product, deriving the slug from the name when absent.
func (s *ProductService) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if !models.ValidProductCategory(product.Category) {
		return nil, common.ErrValidation
	}
	if product.Slug == "" {
		product.Slug = Slugify(product.Name)
	}
	return s.repomanager.Products(s.db).Create(ctx, product)
}

func (s *ProductService) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	if !models.ValidProductCategory(product.Category) {
		return nil, common.ErrValidation
	}
	if product.Slug == "" {
		product.Slug = Slugify(product.Name)
	}
	return s.repomanager.Products(s.db).Update(ctx, product)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Products(s.db).Delete(ctx, id)
}

func (s *ProductService) GetStats(ctx context.Context) (*products.Stats, error) {
	return s.repomanager.Products(s.db).GetStats(ctx)
}

func (s *ProductService) Recent(ctx context.Context, limit int) ([]*models.Product, error) {
	return s.repomanager.Products(s.db).Recent(ctx, limit)
}
