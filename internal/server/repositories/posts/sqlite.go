package posts

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/autoblog/internal/dbx"
	"github.com/dmitrijs2005/autoblog/internal/server/models"
)

// SQLiteRepository implements the post ledger over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository constructs a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Insert appends a post to the ledger.
func (r *SQLiteRepository) Insert(ctx context.Context, post *models.Post) error {
	query := `INSERT INTO posts (id, title, content, status, created_at, published_time, scheduled_time)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Content, string(post.Status), post.CreatedAt,
		post.PublishedTime, post.ScheduledTime)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

// List returns a page of posts ordered newest-first. limit <= 0 means no limit.
func (r *SQLiteRepository) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	if limit <= 0 {
		limit = -1 // sqlite: LIMIT -1 disables the limit
	}
	query := `SELECT id, title, content, status, created_at, published_time, scheduled_time
		FROM posts ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to select posts: %w", err)
	}
	defer rows.Close()
	return scanPosts(rows)
}

// Counts aggregates ledger totals by status.
func (r *SQLiteRepository) Counts(ctx context.Context) (*models.CountsByStatus, error) {
	query := `SELECT status, COUNT(*) FROM posts GROUP BY status`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}
	defer rows.Close()
	return scanCounts(rows)
}

func scanPosts(rows *sql.Rows) ([]*models.Post, error) {
	var result []*models.Post
	for rows.Next() {
		var item models.Post
		var status string
		var published, scheduled sql.NullTime
		if err := rows.Scan(&item.ID, &item.Title, &item.Content, &status,
			&item.CreatedAt, &published, &scheduled); err != nil {
			return nil, err
		}
		item.Status = models.Status(status)
		if published.Valid {
			t := published.Time
			item.PublishedTime = &t
		}
		if scheduled.Valid {
			t := scheduled.Time
			item.ScheduledTime = &t
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanCounts(rows *sql.Rows) (*models.CountsByStatus, error) {
	counts := &models.CountsByStatus{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts.Total += n
		switch models.Status(status) {
		case models.StatusDraft:
			counts.Draft = n
		case models.StatusScheduled:
			counts.Scheduled = n
		case models.StatusPublished:
			counts.Published = n
		case models.StatusFailed:
			counts.Failed = n
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
