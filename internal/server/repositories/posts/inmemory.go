package posts

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/autoblog/internal/server/models"
)

// InMemoryRepository is a slice-backed ledger used in tests. New posts are
// prepended so index 0 is always the most recent.
type InMemoryRepository struct {
	mu    sync.RWMutex
	posts []*models.Post
}

// NewInMemoryRepository constructs an empty in-memory ledger.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Insert(ctx context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := *post
	r.posts = append([]*models.Post{&p}, r.posts...)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if offset >= len(r.posts) {
		return nil, nil
	}
	page := r.posts[offset:]
	if limit > 0 && limit < len(page) {
		page = page[:limit]
	}
	result := make([]*models.Post, len(page))
	for i, p := range page {
		c := *p
		result[i] = &c
	}
	return result, nil
}

func (r *InMemoryRepository) Counts(ctx context.Context) (*models.CountsByStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := &models.CountsByStatus{Total: len(r.posts)}
	for _, p := range r.posts {
		switch p.Status {
		case models.StatusDraft:
			counts.Draft++
		case models.StatusScheduled:
			counts.Scheduled++
		case models.StatusPublished:
			counts.Published++
		case models.StatusFailed:
			counts.Failed++
		}
	}
	return counts, nil
}
