// Package repomanager hands out repositories bound to a database handle so
// the same repository code runs against *sql.DB and *sql.Tx.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/earntrack/internal/dbx"
	"github.com/dmitrijs2005/earntrack/internal/server/repositories/incomes"
	"github.com/dmitrijs2005/earntrack/internal/server/repositories/targets"
	"github.com/dmitrijs2005/earntrack/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Incomes(db dbx.DBTX) incomes.Repository
	Targets(db dbx.DBTX) targets.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
