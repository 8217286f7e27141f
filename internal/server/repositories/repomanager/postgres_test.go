package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/admins"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/blogs"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/contacts"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/contents"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/products"
	"github.com/pressly/goose/v3"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := NewPostgresRepositoryManager()

	if a := m.Admins(db); a == nil {
		t.Fatal("Admins() nil")
	}
	if b := m.Blogs(db); b == nil {
		t.Fatal("Blogs() nil")
	}
	if p := m.Products(db); p == nil {
		t.Fatal("Products() nil")
	}
	if c := m.Contacts(db); c == nil {
		t.Fatal("Contacts() nil")
	}
	if c := m.Contents(db); c == nil {
		t.Fatal("Contents() nil")
	}

	var _ admins.Repository = m.Admins(db)
	var _ blogs.Repository = m.Blogs(db)
	var _ products.Repository = m.Products(db)
	var _ contacts.Repository = m.Contacts(db)
	var _ contents.Repository = m.Contents(db)
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m := &PostgresRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := &PostgresRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}
