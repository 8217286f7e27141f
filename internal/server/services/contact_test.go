package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/avolkovs/sitekeeper/internal/common"
	"github.com/avolkovs/sitekeeper/internal/dbx"
	"github.com/avolkovs/sitekeeper/internal/server/models"
	contactsrepo "github.com/avolkovs/sitekeeper/internal/server/repositories/contacts"
)

type fakeContactsRepo struct {
	contactsrepo.Repository

	created *models.Contact

	countOut         int64
	countByStatusOut int64
	listOut          []*models.Contact
	listByStatusOut  []*models.Contact

	updateStatusIn struct {
		status, response, adminID string
	}
}

func (f *fakeContactsRepo) Create(ctx context.Context, c *models.Contact) (*models.Contact, error) {
	f.created = c
	return c, nil
}

func (f *fakeContactsRepo) Count(ctx context.Context) (int64, error) { return f.countOut, nil }

func (f *fakeContactsRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return f.countByStatusOut, nil
}

func (f *fakeContactsRepo) List(ctx context.Context, limit, offset int) ([]*models.Contact, error) {
	return f.listOut, nil
}

func (f *fakeContactsRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*models.Contact, error) {
	return f.listByStatusOut, nil
}

func (f *fakeContactsRepo) UpdateStatus(ctx context.Context, id, status, response, adminID string, now time.Time) (*models.Contact, error) {
	f.updateStatusIn.status = status
	f.updateStatusIn.response = response
	f.updateStatusIn.adminID = adminID
	return &models.Contact{ID: id, Status: status}, nil
}

type fakeContactsManager struct {
	fakeRepoManager
	c *fakeContactsRepo
}

func (m *fakeContactsManager) Contacts(db dbx.DBTX) contactsrepo.Repository { return m.c }

func newContactService(t *testing.T, repo *fakeContactsRepo) (*ContactService, *sql.DB) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	return NewContactService(db, &fakeContactsManager{c: repo}), db
}

func TestSubmit_DefaultsApplied(t *testing.T) {
	repo := &fakeContactsRepo{}
	s, db := newContactService(t, repo)
	defer db.Close()

	got, err := s.Submit(context.Background(), &models.Contact{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Quote",
		Message: "Need a quote for steel fibre.",
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if got.Status != models.ContactStatusNew {
		t.Fatalf("status = %q, want new", got.Status)
	}
	if got.Priority != models.ContactPriorityMedium {
		t.Fatalf("priority = %q, want medium", got.Priority)
	}
}

func TestSubmit_InvalidPriority(t *testing.T) {
	s, db := newContactService(t, &fakeContactsRepo{})
	defer db.Close()

	_, err := s.Submit(context.Background(), &models.Contact{Priority: "critical"})
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestList_StatusFilter(t *testing.T) {
	repo := &fakeContactsRepo{
		countByStatusOut: 1,
		listByStatusOut:  []*models.Contact{{ID: "c1", Status: models.ContactStatusNew}},
	}
	s, db := newContactService(t, repo)
	defer db.Close()

	list, page, err := s.List(context.Background(), models.ContactStatusNew, 1, 10)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 1 || list[0].ID != "c1" {
		t.Fatalf("unexpected list: %+v", list)
	}
	if page.Total != 1 || page.TotalPages != 1 {
		t.Fatalf("unexpected pagination: %+v", page)
	}
}

func TestList_InvalidStatus(t *testing.T) {
	s, db := newContactService(t, &fakeContactsRepo{})
	defer db.Close()

	_, _, err := s.List(context.Background(), "bogus", 1, 10)
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestUpdateStatus_PassesActingAdmin(t *testing.T) {
	repo := &fakeContactsRepo{}
	s, db := newContactService(t, repo)
	defer db.Close()

	_, err := s.UpdateStatus(context.Background(), "c1", models.ContactStatusResolved, "done", "a1")
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if repo.updateStatusIn.adminID != "a1" || repo.updateStatusIn.response != "done" {
		t.Fatalf("unexpected args: %+v", repo.updateStatusIn)
	}
}
