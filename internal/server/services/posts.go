package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/autoblog/internal/server/models"
	"github.com/dmitrijs2005/autoblog/internal/server/repositories/posts"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// PostService serves ledger reads for the dashboard.
type PostService struct {
	ledger posts.Repository
}

// NewPostService constructs a PostService.
func NewPostService(l posts.Repository) *PostService {
	return &PostService{ledger: l}
}

// List returns one page of the ledger, most-recent-first. Non-positive
// limits fall back to the default page size; limits above the maximum are
// clamped. Negative offsets are treated as zero.
func (s *PostService) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	result, err := s.ledger.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return result, nil
}

// Stats aggregates ledger totals by status.
func (s *PostService) Stats(ctx context.Context) (*models.CountsByStatus, error) {
	counts, err := s.ledger.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}
	return counts, nil
}
