// Package repomanager vends repository implementations for a configured
// database backend and owns schema migrations (via goose). The DSN scheme
// selects the backend: postgres:// DSNs use pgx, everything else is treated
// as a SQLite file path.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/autoblog/internal/dbx"
	"github.com/dmitrijs2005/autoblog/internal/server/repositories/posts"
	"github.com/dmitrijs2005/autoblog/internal/server/repositories/settings"
)

// RepositoryManager wires repositories to a DBTX and runs migrations.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Posts(db dbx.DBTX) posts.Repository
	Settings(db dbx.DBTX) settings.Repository
}

// Open opens a database connection for the given DSN and returns it together
// with the matching RepositoryManager.
func Open(dsn string) (*sql.DB, RepositoryManager, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres db: %w", err)
		}
		return db, NewPostgresRepositoryManager(), nil
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	// sqlite handles one writer at a time
	db.SetMaxOpenConns(1)
	return db, NewSQLiteRepositoryManager(), nil
}
