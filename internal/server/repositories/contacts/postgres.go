package contacts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
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

const contactColumns = `id, name, email, phone, company, subject, message, status, priority,
	assigned_to, response, responded_at, source, ip_address, user_agent, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*models.Contact, error) {
	c := &models.Contact{}
	var assignedTo sql.NullString
	var respondedAt sql.NullTime
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Subject,
		&c.Message, &c.Status, &c.Priority, &assignedTo, &c.Response, &respondedAt,
		&c.Source, &c.IPAddress, &c.UserAgent, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if assignedTo.Valid {
		c.AssignedTo = &assignedTo.String
	}
	if respondedAt.Valid {
		c.RespondedAt = &respondedAt.Time
	}
	return c, nil
}

func (r *PostgresRepository) queryContacts(ctx context.Context, query string, args ...any) ([]*models.Contact, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Contact
	for rows.Next() {
		c, err := scanContact(rows)
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

func (r *PostgresRepository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {

	if contact.ID == "" {
		contact.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO contacts (id, name, email, phone, company, subject, message,
		   status, priority, source, ip_address, user_agent)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		contact.ID, contact.Name, contact.Email, contact.Phone, contact.Company,
		contact.Subject, contact.Message, contact.Status, contact.Priority,
		contact.Source, contact.IPAddress, contact.UserAgent).
		Scan(&contact.CreatedAt, &contact.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return contact, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`
	return scanContact(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) List(ctx context.Context, limit, offset int) ([]*models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`
	return r.queryContacts(ctx, query, limit, offset)
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM contacts`)
}

func (r *PostgresRepository) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts
		 WHERE status = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`
	return r.queryContacts(ctx, query, status, limit, offset)
}

func (r *PostgresRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM contacts WHERE status = $1`, status)
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status, response, adminID string, now time.Time) (*models.Contact, error) {

	query :=
		`UPDATE contacts SET
		   status = $2,
		   response = CASE WHEN $3 <> '' THEN $3 ELSE response END,
		   responded_at = CASE WHEN $3 <> '' THEN $5 ELSE responded_at END,
		   assigned_to = CASE WHEN $3 <> '' THEN $4 ELSE assigned_to END,
		   updated_at = $5
		 WHERE id = $1
		 RETURNING ` + contactColumns

	return scanContact(r.db.QueryRowContext(ctx, query, id, status, response, adminID, now))
}

func (r *PostgresRepository) Assign(ctx context.Context, id, adminID string) (*models.Contact, error) {

	query :=
		`UPDATE contacts SET
		   assigned_to = $2,
		   status = $3,
		   updated_at = now()
		 WHERE id = $1
		 RETURNING ` + contactColumns

	return scanContact(r.db.QueryRowContext(ctx, query, id, adminID, models.ContactStatusInProgress))
}

func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]*models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts
		 ORDER BY created_at DESC
		 LIMIT $1`
	return r.queryContacts(ctx, query, limit)
}

func (r *PostgresRepository) GetStats(ctx context.Context, since time.Time) (*Stats, error) {
	query :=
		`SELECT COUNT(*),
		   COUNT(*) FILTER (WHERE status = 'new'),
		   COUNT(*) FILTER (WHERE status = 'in-progress'),
		   COUNT(*) FILTER (WHERE status = 'resolved'),
		   COUNT(*) FILTER (WHERE status = 'closed'),
		   COUNT(*) FILTER (WHERE priority = 'low'),
		   COUNT(*) FILTER (WHERE priority = 'medium'),
		   COUNT(*) FILTER (WHERE priority = 'high'),
		   COUNT(*) FILTER (WHERE priority = 'urgent'),
		   COUNT(*) FILTER (WHERE created_at >= $1)
		 FROM contacts`

	s := &Stats{
		ByStatus:   make(map[string]int64, 4),
		ByPriority: make(map[string]int64, 4),
	}
	var statNew, inProgress, resolved, closed, low, medium, high, urgent int64
	err := r.db.QueryRowContext(ctx, query, since).Scan(&s.Total,
		&statNew, &inProgress, &resolved, &closed,
		&low, &medium, &high, &urgent, &s.RecentWeek)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	s.ByStatus[models.ContactStatusNew] = statNew
	s.ByStatus[models.ContactStatusInProgress] = inProgress
	s.ByStatus[models.ContactStatusResolved] = resolved
	s.ByStatus[models.ContactStatusClosed] = closed
	s.ByPriority[models.ContactPriorityLow] = low
	s.ByPriority[models.ContactPriorityMedium] = medium
	s.ByPriority[models.ContactPriorityHigh] = high
	s.ByPriority[models.ContactPriorityUrgent] = urgent

	return s, nil
}

func (r *PostgresRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
