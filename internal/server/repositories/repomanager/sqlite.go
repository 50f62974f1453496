package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/autoblog/internal/dbx"
	"github.com/dmitrijs2005/autoblog/internal/server/migrations"
	"github.com/dmitrijs2005/autoblog/internal/server/repositories/posts"
	"github.com/dmitrijs2005/autoblog/internal/server/repositories/settings"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repository implementations.
type SQLiteRepositoryManager struct{}

// NewSQLiteRepositoryManager constructs a SQLite-backed RepositoryManager.
func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

// Posts returns a posts.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Posts(db dbx.DBTX) posts.Repository {
	return posts.NewSQLiteRepository(db)
}

// Settings returns a settings.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Settings(db dbx.DBTX) settings.Repository {
	return settings.NewSQLiteRepository(db)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, "sqlite")
}
