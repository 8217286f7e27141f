package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

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

const productColumns = `id, slug, name, bg_image, description, extra_line, logo_img, overview,
	extra_img, specifications, advantages, application, key_features, pdf_url, features,
	images, storage, is_active, featured, category, meta_title, meta_description,
	created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	p := &models.Product{}
	var logoImg, specifications, advantages, application, keyFeatures, features, images []byte
	err := row.Scan(&p.ID, &p.Slug, &p.Name, &p.BgImage, &p.Description, &p.ExtraLine,
		&logoImg, &p.Overview, &p.ExtraImg, &specifications, &advantages, &application,
		&keyFeatures, &p.PdfURL, &features, &images, &p.Storage, &p.IsActive,
		&p.Featured, &p.Category, &p.MetaTitle, &p.MetaDescription,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	for _, f := range []struct {
		src []byte
		dst any
	}{
		{logoImg, &p.LogoImg},
		{specifications, &p.Specifications},
		{advantages, &p.Advantages},
		{application, &p.Application},
		{keyFeatures, &p.KeyFeatures},
		{features, &p.Features},
		{images, &p.Images},
	} {
		if err := dbx.ScanJSON(f.src, f.dst); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
	}
	return p, nil
}

func (r *PostgresRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*models.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) jsonArgs(p *models.Product) ([]any, error) {
	var out []any
	for _, v := range []any{p.LogoImg, p.Specifications, p.Advantages, p.Application, p.KeyFeatures, p.Features, p.Images} {
		j, err := dbx.JSONValue(v)
		if err != nil {
			return nil, fmt.Errorf("marshal error: %w", err)
		}
		out = append(out, j)
	}
	return out, nil
}

func (r *PostgresRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {

	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	j, err := r.jsonArgs(product)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO products (id, slug, name, bg_image, description, extra_line, logo_img,
		   overview, extra_img, specifications, advantages, application, key_features,
		   pdf_url, features, images, storage, is_active, featured, category,
		   meta_title, meta_description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		   $17, $18, $19, $20, $21, $22)
		 RETURNING created_at, updated_at
		 `

	args := []any{product.ID, product.Slug, product.Name, product.BgImage,
		product.Description, product.ExtraLine, j[0], product.Overview, product.ExtraImg,
		j[1], j[2], j[3], j[4], product.PdfURL, j[5], j[6], product.Storage,
		product.IsActive, product.Featured, product.Category,
		product.MetaTitle, product.MetaDescription}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return product, nil
}

func (r *PostgresRepository) Update(ctx context.Context, product *models.Product) (*models.Product, error) {

	j, err := r.jsonArgs(product)
	if err != nil {
		return nil, err
	}

	query :=
		`UPDATE products SET slug = $2, name = $3, bg_image = $4, description = $5,
		   extra_line = $6, logo_img = $7, overview = $8, extra_img = $9,
		   specifications = $10, advantages = $11, application = $12, key_features = $13,
		   pdf_url = $14, features = $15, images = $16, storage = $17, is_active = $18,
		   featured = $19, category = $20, meta_title = $21, meta_description = $22,
		   updated_at = now()
		 WHERE id = $1
		 RETURNING created_at, updated_at
		 `

	args := []any{product.ID, product.Slug, product.Name, product.BgImage,
		product.Description, product.ExtraLine, j[0], product.Overview, product.ExtraImg,
		j[1], j[2], j[3], j[4], product.PdfURL, j[5], j[6], product.Storage,
		product.IsActive, product.Featured, product.Category,
		product.MetaTitle, product.MetaDescription}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return product, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1 AND is_active = TRUE`
	return scanProduct(r.db.QueryRowContext(ctx, query, slug))
}

func (r *PostgresRepository) ListActive(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		 WHERE is_active = TRUE
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`
	return r.queryProducts(ctx, query, limit, offset)
}

func (r *PostgresRepository) CountActive(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products WHERE is_active = TRUE`)
}

func (r *PostgresRepository) ListAll(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`
	return r.queryProducts(ctx, query, limit, offset)
}

func (r *PostgresRepository) CountAll(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products`)
}

func (r *PostgresRepository) ListFeatured(ctx context.Context, limit int) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		 WHERE is_active = TRUE AND featured = TRUE
		 ORDER BY created_at DESC
		 LIMIT $1`
	return r.queryProducts(ctx, query, limit)
}

func (r *PostgresRepository) ListByCategory(ctx context.Context, category string, limit, offset int) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		 WHERE is_active = TRUE AND category = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`
	return r.queryProducts(ctx, query, category, limit, offset)
}

func (r *PostgresRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products WHERE is_active = TRUE AND category = $1`, category)
}

func (r *PostgresRepository) Search(ctx context.Context, q string, limit, offset int) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		 WHERE is_active = TRUE
		   AND (name ILIKE $1 OR overview ILIKE $1 OR description ILIKE $1)
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`
	return r.queryProducts(ctx, query, "%"+q+"%", limit, offset)
}

func (r *PostgresRepository) CountSearch(ctx context.Context, q string) (int64, error) {
	query := `SELECT COUNT(*) FROM products
		 WHERE is_active = TRUE
		   AND (name ILIKE $1 OR overview ILIKE $1 OR description ILIKE $1)`
	return r.count(ctx, query, "%"+q+"%")
}

func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		 ORDER BY created_at DESC
		 LIMIT $1`
	return r.queryProducts(ctx, query, limit)
}

func (r *PostgresRepository) GetStats(ctx context.Context) (*Stats, error) {
	query :=
		`SELECT COUNT(*),
		   COUNT(*) FILTER (WHERE is_active),
		   COUNT(*) FILTER (WHERE featured)
		 FROM products`

	s := &Stats{}
	err := r.db.QueryRowContext(ctx, query).Scan(&s.Total, &s.Active, &s.Featured)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
