package settings

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/autoblog/internal/common"
)

// InMemoryRepository is a map-backed Repository used in tests and as the
// injectable stand-in for the durable store.
type InMemoryRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewInMemoryRepository constructs an empty in-memory settings repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{values: make(map[string]string)}
}

func (r *InMemoryRepository) Get(ctx context.Context, name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.values[name]
	if !ok {
		return "", common.ErrorNotFound
	}
	return value, nil
}

func (r *InMemoryRepository) Set(ctx context.Context, name string, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[name] = value
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, name)
	return nil
}
