// Package repomanager vends repository implementations bound to a database
// handle and exposes the schema migration hook.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/avolkovs/sitekeeper/internal/dbx"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/admins"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/blogs"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/contacts"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/contents"
	"github.com/avolkovs/sitekeeper/internal/server/repositories/products"
)

// RepositoryManager hands out repositories bound to the provided DBTX, so a
// service can run a group of calls inside one transaction by passing the tx.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Admins(db dbx.DBTX) admins.Repository
	Blogs(db dbx.DBTX) blogs.Repository
	Products(db dbx.DBTX) products.Repository
	Contacts(db dbx.DBTX) contacts.Repository
	Contents(db dbx.DBTX) contents.Repository
}
