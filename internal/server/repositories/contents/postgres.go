package contents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

const contentColumns = `id, page_type, section, title, body, images, metadata, status, sort_order, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContent(row rowScanner) (*models.Content, error) {
	c := &models.Content{}
	var body, images, metadata []byte
	err := row.Scan(&c.ID, &c.PageType, &c.Section, &c.Title, &body, &images,
		&metadata, &c.Status, &c.Order, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	c.Body = body
	c.Metadata = metadata
	if err := dbx.ScanJSON(images, &c.Images); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) queryContents(ctx context.Context, query string, args ...any) ([]*models.Content, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM contents ORDER BY page_type, sort_order`
	return r.queryContents(ctx, query)
}

func (r *PostgresRepository) ListPublic(ctx context.Context) ([]*models.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM contents
		 WHERE status <> $1
		 ORDER BY page_type, sort_order`
	return r.queryContents(ctx, query, models.ContentStatusArchived)
}

func (r *PostgresRepository) GetBySectionPage(ctx context.Context, section, pageType string) (*models.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM contents
		 WHERE section = $1 AND page_type = $2 AND status <> $3`
	return scanContent(r.db.QueryRowContext(ctx, query, section, pageType, models.ContentStatusArchived))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM contents WHERE id = $1`
	return scanContent(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Upsert(ctx context.Context, content *models.Content) (*models.Content, error) {

	if content.ID == "" {
		content.ID = uuid.NewString()
	}

	images, err := dbx.JSONValue(content.Images)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	body := content.Body
	if len(body) == 0 {
		body = []byte("{}")
	}
	metadata := content.Metadata
	if len(metadata) == 0 {
		metadata = []byte("{}")
	}

	query :=
		`INSERT INTO contents (id, page_type, section, title, body, images, metadata, status, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (section, page_type) DO UPDATE SET
		   title = EXCLUDED.title,
		   body = EXCLUDED.body,
		   images = EXCLUDED.images,
		   metadata = EXCLUDED.metadata,
		   status = EXCLUDED.status,
		   sort_order = EXCLUDED.sort_order,
		   updated_at = now()
		 RETURNING ` + contentColumns

	return scanContent(r.db.QueryRowContext(ctx, query,
		content.ID, content.PageType, content.Section, content.Title,
		[]byte(body), images, []byte(metadata), content.Status, content.Order))
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}
