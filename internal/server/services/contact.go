package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/avolkovs/sitekeeper/internal/common"
	"github.com/avolkovs/sitekeeper/internal/server/models"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/contacts"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/repomanager"
)

// ContactService accepts contact-form submissions from the public website and
// lets admins triage them: list, filter by status, respond, assign, delete.
type ContactService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewContactService(db *sql.DB, m repomanager.RepositoryManager) *ContactService {
	return &ContactService{db: db, repomanager: m, now: time.Now}
}

// Submit stores a new contact-form submission with default triage state.
func (s *ContactService) Submit(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	contact.Status = models.ContactStatusNew
	if contact.Priority == "" {
		contact.Priority = models.ContactPriorityMedium
	}
	if !models.ValidContactPriority(contact.Priority) {
		return nil, common.ErrValidation
	}
	return s.repomanager.Contacts(s.db).Create(ctx, contact)
}

// List returns one page of submissions, optionally filtered by status.
func (s *ContactService) List(ctx context.Context, status string, page, limit int) ([]*models.Contact, *Pagination, error) {
	if status != "" && !models.ValidContactStatus(status) {
		return nil, nil, common.ErrValidation
	}
	page, limit, offset := normalizePage(page, limit)
	repo := s.repomanager.Contacts(s.db)

	var (
		total int64
		list  []*models.Contact
		err   error
	)
	if status == "" {
		total, err = repo.Count(ctx)
	} else {
		total, err = repo.CountByStatus(ctx, status)
	}
	if err != nil {
		return nil, nil, err
	}
	if status == "" {
		list, err = repo.List(ctx, limit, offset)
	} else {
		list, err = repo.ListByStatus(ctx, status, limit, offset)
	}
	if err != nil {
		return nil, nil, err
	}
	return list, newPagination(page, limit, total), nil
}

func (s *ContactService) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	return s.repomanager.Contacts(s.db).GetByID(ctx, id)
}

// UpdateStatus moves a submission through the triage flow; a non-empty
// response marks it answered by the acting admin.
func (s *ContactService) UpdateStatus(ctx context.Context, id, status, response, adminID string) (*models.Contact, error) {
	if !models.ValidContactStatus(status) {
		return nil, common.ErrValidation
	}
	return s.repomanager.Contacts(s.db).UpdateStatus(ctx, id, status, response, adminID, s.now())
}

// Assign puts the submission in progress under the given admin.
func (s *ContactService) Assign(ctx context.Context, id, adminID string) (*models.Contact, error) {
	return s.repomanager.Contacts(s.db).Assign(ctx, id, adminID)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Contacts(s.db).Delete(ctx, id)
}

// GetStats aggregates triage counters; the recent window is the last 7 days.
func (s *ContactService) GetStats(ctx context.Context) (*contacts.Stats, error) {
	since := s.now().AddDate(0, 0, -7)
	return s.repomanager.Contacts(s.db).GetStats(ctx, since)
}

func (s *ContactService) Recent(ctx context.Context, limit int) ([]*models.Contact, error) {
	return s.repomanager.Contacts(s.db).Recent(ctx, limit)
}
