// Package posts provides repositories for the post ledger: the append-only,
// most-recent-first collection of generated posts and their outcomes.
package posts

import (
	"context"

	"github.com/dmitrijs2005/autoblog/internal/server/models"
)

// Repository is the append-only post ledger. List returns pages ordered
// most-recent-first; there are no update or delete operations.
type Repository interface {
	Insert(ctx context.Context, post *models.Post) error
	List(ctx context.Context, limit, offset int) ([]*models.Post, error)
	Counts(ctx context.Context) (*models.CountsByStatus, error)
}
