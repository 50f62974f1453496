package posts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/autoblog/internal/dbx"
	"github.com/dmitrijs2005/autoblog/internal/server/models"
)

// PostgresRepository implements the post ledger over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert appends a post to the ledger.
func (r *PostgresRepository) Insert(ctx context.Context, post *models.Post) error {
	query := `INSERT INTO posts (id, title, content, status, created_at, published_time, scheduled_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Content, string(post.Status), post.CreatedAt,
		post.PublishedTime, post.ScheduledTime)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

// List returns a page of posts ordered newest-first. limit <= 0 means no limit.
func (r *PostgresRepository) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	query := `SELECT id, title, content, status, created_at, published_time, scheduled_time
		FROM posts ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	var limitArg any
	if limit > 0 {
		limitArg = limit
	} // nil -> LIMIT ALL
	rows, err := r.db.QueryContext(ctx, query, limitArg, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to select posts: %w", err)
	}
	defer rows.Close()
	return scanPosts(rows)
}

// Counts aggregates ledger totals by status.
func (r *PostgresRepository) Counts(ctx context.Context) (*models.CountsByStatus, error) {
	query := `SELECT status, COUNT(*) FROM posts GROUP BY status`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}
	defer rows.Close()
	return scanCounts(rows)
}
