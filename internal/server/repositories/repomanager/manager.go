// Package repomanager wires together repository constructors and database
// migrations for the server.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dkravets/libshelf/internal/dbx"
	"github.com/dkravets/libshelf/internal/server/repositories/books"
	"github.com/dkravets/libshelf/internal/server/repositories/messages"
	"github.com/dkravets/libshelf/internal/server/repositories/notices"
	"github.com/dkravets/libshelf/internal/server/repositories/refreshtokens"
	"github.com/dkravets/libshelf/internal/server/repositories/roles"
	"github.com/dkravets/libshelf/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can use
// the same repository code inside and outside transactions.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Roles(db dbx.DBTX) roles.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Books(db dbx.DBTX) books.Repository
	Notices(db dbx.DBTX) notices.Repository
	Messages(db dbx.DBTX) messages.Repository
}
