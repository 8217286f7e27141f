package contents

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avolkovs/sitekeeper/internal/common"
	"github.com/avolkovs/sitekeeper/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func contentRow(id string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "page_type", "section", "title", "body", "images", "metadata",
		"status", "sort_order", "created_at", "updated_at",
	}).AddRow(id, "home", "hero", "Welcome",
		[]byte(`{"headline":"Build better roads"}`),
		[]byte(`[{"url":"hero.jpg","alt":"Road"}]`),
		[]byte(`{"tags":["landing"]}`),
		"published", 1, time.Now(), time.Now())
}

func TestUpsert_OnConflictKey(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)INSERT\s+INTO\s+contents.*ON\s+CONFLICT\s+\(section,\s*page_type\)\s+DO\s+UPDATE.*RETURNING`
	mock.ExpectQuery(q).WillReturnRows(contentRow("ct1"))

	c := &models.Content{
		PageType: "home",
		Section:  "hero",
		Title:    "Welcome",
		Status:   "published",
		Order:    1,
	}
	got, err := repo.Upsert(context.Background(), c)
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if got.ID != "ct1" {
		t.Fatalf("id = %q", got.ID)
	}
	if string(got.Body) != `{"headline":"Build better roads"}` {
		t.Fatalf("body = %s", got.Body)
	}
	if len(got.Images) != 1 || got.Images[0].URL != "hero.jpg" {
		t.Fatalf("images not decoded: %+v", got.Images)
	}
}

func TestGetBySectionPage_ArchivedHidden(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)SELECT\s+.*FROM\s+contents\s+WHERE\s+section\s*=\s*\$1\s+AND\s+page_type\s*=\s*\$2\s+AND\s+status\s*<>\s*\$3`
	mock.ExpectQuery(q).
		WithArgs("hero", "home", models.ContentStatusArchived).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetBySectionPage(context.Background(), "hero", "home")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestListPublic_ExcludesArchived(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)SELECT\s+.*FROM\s+contents\s+WHERE\s+status\s*<>\s*\$1\s+ORDER\s+BY\s+page_type,\s*sort_order`
	mock.ExpectQuery(q).
		WithArgs(models.ContentStatusArchived).
		WillReturnRows(contentRow("ct1"))

	list, err := repo.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("ListPublic error: %v", err)
	}
	if len(list) != 1 || list[0].Section != "hero" {
		t.Fatalf("unexpected list: %+v", list)
	}
}
