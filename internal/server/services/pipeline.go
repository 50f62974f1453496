package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/autoblog/internal/common"
	"github.com/dmitrijs2005/autoblog/internal/logging"
	"github.com/dmitrijs2005/autoblog/internal/server/models"
	"github.com/dmitrijs2005/autoblog/internal/server/repositories/posts"
	"github.com/google/uuid"
)

// PipelineService runs the generate-then-publish sequence and records the
// outcome in the post ledger.
//
// At most one sequence is in flight at a time: overlapping triggers (manual
// or scheduled) are rejected with common.ErrPipelineBusy rather than queued.
type PipelineService struct {
	credentials *CredentialService
	generator   Generator
	publisher   Publisher
	ledger      posts.Repository
	logger      logging.Logger

	// now is a seam for tests.
	now func() time.Time

	mu   sync.Mutex
	busy bool
}

// NewPipelineService constructs a PipelineService.
func NewPipelineService(c *CredentialService, g Generator, p Publisher, l posts.Repository, log logging.Logger) *PipelineService {
	return &PipelineService{
		credentials: c,
		generator:   g,
		publisher:   p,
		ledger:      l,
		logger:      log.With("module", "pipeline"),
		now:         time.Now,
	}
}

// GenerateAndPublish generates content for the given topic (empty topic uses
// the default prompt) and attempts to publish it.
//
// Failure semantics:
//   - missing generation key or generation failure: no Post is created and
//     the error is returned;
//   - missing publishing credentials or publish failure after a successful
//     generation: the Post is still appended, with status failed and its
//     generated content intact, and no error is returned;
//   - a successful publish appends the Post with status published and
//     PublishedTime set.
//
// The returned Post, when non-nil, is already persisted at the head of the
// ledger.
func (s *PipelineService) GenerateAndPublish(ctx context.Context, topic string) (*models.Post, error) {
	if !s.tryAcquire() {
		return nil, common.ErrPipelineBusy
	}
	defer s.release()

	apiKey, err := s.credentials.GenerationKey(ctx)
	if err != nil {
		return nil, err
	}

	generated, err := s.generator.Generate(ctx, apiKey, topic)
	if err != nil {
		s.logger.Error(ctx, "generation failed", "error", err.Error())
		return nil, err
	}

	post := &models.Post{
		ID:        uuid.NewString(),
		Title:     generated.Title,
		Content:   generated.Content,
		Status:    models.StatusDraft,
		CreatedAt: s.now().UTC(),
	}

	s.publish(ctx, post)

	if err := s.ledger.Insert(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to record post: %w", err)
	}

	s.logger.Info(ctx, "post recorded", "id", post.ID, "status", string(post.Status), "title", post.Title)
	return post, nil
}

// Busy reports whether a sequence is currently in flight.
func (s *PipelineService) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// publish attempts the publish step and moves the post to its terminal
// state. The generated content is kept on failure so it can be retried or
// published manually later.
func (s *PipelineService) publish(ctx context.Context, post *models.Post) {
	apiKey, blogID, err := s.credentials.PublishingCredentials(ctx)
	if err != nil {
		s.logger.Warn(ctx, "publish skipped", "error", err.Error())
		post.Status = models.StatusFailed
		return
	}

	if _, err := s.publisher.Publish(ctx, apiKey, blogID, post.Title, post.Content); err != nil {
		s.logger.Error(ctx, "publish failed", "error", err.Error())
		post.Status = models.StatusFailed
		return
	}

	publishedAt := s.now().UTC()
	post.Status = models.StatusPublished
	post.PublishedTime = &publishedAt
}

func (s *PipelineService) tryAcquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

func (s *PipelineService) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
}
