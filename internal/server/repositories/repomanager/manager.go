package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/printdesk/internal/dbx"
	"github.com/dmitrijs2005/printdesk/internal/server/repositories/permissions"
	"github.com/dmitrijs2005/printdesk/internal/server/repositories/printers"
	"github.com/dmitrijs2005/printdesk/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// the same repository against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Printers(db dbx.DBTX) printers.Repository
	Permissions(db dbx.DBTX) permissions.Repository
}
