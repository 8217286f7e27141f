package blogs

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

const blogColumns = `id, slug, name, bg_image, image, publish_date, overview, description,
	application, challenges, applications, specifications, images, total_users,
	is_published, featured, meta_title, meta_description, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBlog(row rowScanner) (*models.Blog, error) {
	b := &models.Blog{}
	var application, challenges, applications, specifications, images []byte
	err := row.Scan(&b.ID, &b.Slug, &b.Name, &b.BgImage, &b.Image, &b.PublishDate,
		&b.Overview, &b.Description, &application, &challenges, &applications,
		&specifications, &images, &b.TotalUsers, &b.IsPublished, &b.Featured,
		&b.MetaTitle, &b.MetaDescription, &b.CreatedAt, &b.UpdatedAt)
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
		{application, &b.Application},
		{challenges, &b.Challenges},
		{applications, &b.Applications},
		{specifications, &b.Specifications},
		{images, &b.Images},
	} {
		if err := dbx.ScanJSON(f.src, f.dst); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
	}
	return b, nil
}

func (r *PostgresRepository) queryBlogs(ctx context.Context, query string, args ...any) ([]*models.Blog, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Blog
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) jsonArgs(b *models.Blog) ([]any, error) {
	var out []any
	for _, v := range []any{b.Application, b.Challenges, b.Applications, b.Specifications, b.Images} {
		j, err := dbx.JSONValue(v)
		if err != nil {
			return nil, fmt.Errorf("marshal error: %w", err)
		}
		out = append(out, j)
	}
	return out, nil
}

func (r *PostgresRepository) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {

	if blog.ID == "" {
		blog.ID = uuid.NewString()
	}

	jsonArgs, err := r.jsonArgs(blog)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO blogs (id, slug, name, bg_image, image, publish_date, overview, description,
		   application, challenges, applications, specifications, images, total_users,
		   is_published, featured, meta_title, meta_description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		 RETURNING created_at, updated_at
		 `

	args := append([]any{blog.ID, blog.Slug, blog.Name, blog.BgImage, blog.Image,
		blog.PublishDate, blog.Overview, blog.Description}, jsonArgs...)
	args = append(args, blog.TotalUsers, blog.IsPublished, blog.Featured,
		blog.MetaTitle, blog.MetaDescription)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return blog, nil
}

func (r *PostgresRepository) Update(ctx context.Context, blog *models.Blog) (*models.Blog, error) {

	jsonArgs, err := r.jsonArgs(blog)
	if err != nil {
		return nil, err
	}

	query :=
		`UPDATE blogs SET slug = $2, name = $3, bg_image = $4, image = $5, publish_date = $6,
		   overview = $7, description = $8, application = $9, challenges = $10,
		   applications = $11, specifications = $12, images = $13, total_users = $14,
		   is_published = $15, featured = $16, meta_title = $17, meta_description = $18,
		   updated_at = now()
		 WHERE id = $1
		 RETURNING created_at, updated_at
		 `

	args := append([]any{blog.ID, blog.Slug, blog.Name, blog.BgImage, blog.Image,
		blog.PublishDate, blog.Overview, blog.Description}, jsonArgs...)
	args = append(args, blog.TotalUsers, blog.IsPublished, blog.Featured,
		blog.MetaTitle, blog.MetaDescription)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return blog, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`
	return scanBlog(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE slug = $1 AND is_published = TRUE`
	return scanBlog(r.db.QueryRowContext(ctx, query, slug))
}

func (r *PostgresRepository) ListPublished(ctx context.Context, limit, offset int) ([]*models.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs
		 WHERE is_published = TRUE
		 ORDER BY publish_date DESC
		 LIMIT $1 OFFSET $2`
	return r.queryBlogs(ctx, query, limit, offset)
}

func (r *PostgresRepository) CountPublished(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM blogs WHERE is_published = TRUE`)
}

func (r *PostgresRepository) ListAll(ctx context.Context, limit, offset int) ([]*models.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`
	return r.queryBlogs(ctx, query, limit, offset)
}

func (r *PostgresRepository) CountAll(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM blogs`)
}

func (r *PostgresRepository) ListFeatured(ctx context.Context, limit int) ([]*models.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs
		 WHERE is_published = TRUE AND featured = TRUE
		 ORDER BY publish_date DESC
		 LIMIT $1`
	return r.queryBlogs(ctx, query, limit)
}

func (r *PostgresRepository) Search(ctx context.Context, q string, limit, offset int) ([]*models.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs
		 WHERE is_published = TRUE
		   AND (name ILIKE $1 OR overview ILIKE $1 OR description ILIKE $1)
		 ORDER BY publish_date DESC
		 LIMIT $2 OFFSET $3`
	return r.queryBlogs(ctx, query, "%"+q+"%", limit, offset)
}

func (r *PostgresRepository) CountSearch(ctx context.Context, q string) (int64, error) {
	query := `SELECT COUNT(*) FROM blogs
		 WHERE is_published = TRUE
		   AND (name ILIKE $1 OR overview ILIKE $1 OR description ILIKE $1)`
	return r.count(ctx, query, "%"+q+"%")
}

func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]*models.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs
		 ORDER BY created_at DESC
		 LIMIT $1`
	return r.queryBlogs(ctx, query, limit)
}

func (r *PostgresRepository) GetStats(ctx context.Context) (*Stats, error) {
	query :=
		`SELECT COUNT(*),
		   COUNT(*) FILTER (WHERE is_published),
		   COUNT(*) FILTER (WHERE NOT is_published),
		   COUNT(*) FILTER (WHERE featured)
		 FROM blogs`

	s := &Stats{}
	err := r.db.QueryRowContext(ctx, query).Scan(&s.Total, &s.Published, &s.Draft, &s.Featured)
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
