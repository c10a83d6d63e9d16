// Package db owns the database lifecycle: opening the connection pool,
// running migrations, and handing out repositories bound to a connection or
// transaction.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gatekeeper/internal/dbx"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to the given handle, which
// may be a *sql.DB or a transaction started with dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
