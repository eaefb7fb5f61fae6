package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/earntrack/internal/dbx"
	"github.com/dmitrijs2005/earntrack/internal/server/repositories/incomes"
	"github.com/dmitrijs2005/earntrack/internal/server/repositories/targets"
	"github.com/dmitrijs2005/earntrack/internal/server/repositories/users"
)

// InMemoryRepositoryManager serves repositories holding their state in
// process memory. The DBTX argument is ignored; tests and the no-database
// dev mode use this manager with a nil *sql.DB.
type InMemoryRepositoryManager struct {
	users   *users.InMemoryRepository
	incomes *incomes.InMemoryRepository
	targets *targets.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:   users.NewInMemoryRepository(),
		incomes: incomes.NewInMemoryRepository(),
		targets: targets.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Incomes(db dbx.DBTX) incomes.Repository {
	return m.incomes
}

func (m *InMemoryRepositoryManager) Targets(db dbx.DBTX) targets.Repository {
	return m.targets
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}
