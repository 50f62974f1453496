package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/autoblog/internal/common"
	"github.com/dmitrijs2005/autoblog/internal/dbx"
)

// SQLiteRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository constructs a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Get reads a named setting. Absent names yield common.ErrorNotFound.
func (r *SQLiteRepository) Get(ctx context.Context, name string) (string, error) {
	query := `SELECT value FROM settings WHERE name = ?`
	var value string
	err := r.db.QueryRowContext(ctx, query, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", common.ErrorNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to select setting: %w", err)
	}
	return value, nil
}

// Set upserts a named setting.
func (r *SQLiteRepository) Set(ctx context.Context, name string, value string) error {
	query := `INSERT INTO settings (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value`
	if _, err := r.db.ExecContext(ctx, query, name, value); err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	return nil
}

// Delete removes a named setting. Deleting an absent name is a no-op.
func (r *SQLiteRepository) Delete(ctx context.Context, name string) error {
	query := `DELETE FROM settings WHERE name = ?`
	if _, err := r.db.ExecContext(ctx, query, name); err != nil {
		return fmt.Errorf("failed to delete setting: %w", err)
	}
	return nil
}
