package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/todosync/internal/dbx"
	"github.com/dmitrijs2005/todosync/internal/server/repositories/records"
	"github.com/dmitrijs2005/todosync/internal/server/schema"
)

// RepositoryManager hands out repositories bound to a connection or a
// transaction, so a service can scope several of them to one dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Records(db dbx.DBTX, entity *schema.Entity) records.Repository
}
