package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/autoblog/internal/common"
	"github.com/dmitrijs2005/autoblog/internal/logging"
	"github.com/dmitrijs2005/autoblog/internal/server/models"
	"github.com/dmitrijs2005/autoblog/internal/server/repositories/settings"
	"github.com/robfig/cron/v3"
)

// defaultScheduledTime is the daily publishing slot used when no preference
// has been stored.
const defaultScheduledTime = "09:00"

// PipelineRunner is the slice of PipelineService the scheduler invokes.
type PipelineRunner interface {
	GenerateAndPublish(ctx context.Context, topic string) (*models.Post, error)
}

// SchedulerService arms a daily automated generate-and-publish run at the
// configured local wall-clock time.
//
// The active flag and the absolute next-fire instant are persisted, so a
// restart can re-arm the schedule and detect a fire that was missed while
// the process was down. Catch-up for missed fires is optional and disabled
// by default.
type SchedulerService struct {
	settings settings.Repository
	pipeline PipelineRunner
	logger   logging.Logger
	catchUp  bool

	// now is a seam for tests.
	now func() time.Time

	mu      sync.Mutex
	cron    *cron.Cron
	entryID cron.EntryID
}

// NewSchedulerService constructs a SchedulerService.
func NewSchedulerService(s settings.Repository, p PipelineRunner, catchUp bool, l logging.Logger) *SchedulerService {
	return &SchedulerService{
		settings: s,
		pipeline: p,
		logger:   l.With("module", "scheduler"),
		catchUp:  catchUp,
		now:      time.Now,
	}
}

// Enable arms the daily schedule. Calling Enable while already active is a
// no-op: a second timer is never armed.
func (s *SchedulerService) Enable(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		return nil
	}

	hour, minute := s.scheduledTime(ctx)
	c := cron.New()
	id, err := c.AddFunc(fmt.Sprintf("%d %d * * *", minute, hour), s.run)
	if err != nil {
		return fmt.Errorf("failed to arm schedule: %w", err)
	}
	c.Start()
	s.cron, s.entryID = c, id

	if err := s.settings.Set(ctx, common.SettingSchedulerActive, "true"); err != nil {
		return fmt.Errorf("failed to persist scheduler state: %w", err)
	}
	s.storeNextRunLocked(ctx)

	s.logger.Info(ctx, "scheduler enabled", "next_run", s.cron.Entry(s.entryID).Next.Format(time.RFC3339))
	return nil
}

// Disable stops the schedule so no further automated run fires. Calling
// Disable while already inactive is a no-op.
func (s *SchedulerService) Disable(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		s.cron.Stop()
		s.cron = nil
	}

	if err := s.settings.Set(ctx, common.SettingSchedulerActive, "false"); err != nil {
		return fmt.Errorf("failed to persist scheduler state: %w", err)
	}
	if err := s.settings.Delete(ctx, common.SettingSchedulerNextRun); err != nil {
		return fmt.Errorf("failed to clear next run: %w", err)
	}

	s.logger.Info(ctx, "scheduler disabled")
	return nil
}

// Stop halts the timer without touching the persisted state, so a restart
// can re-arm the schedule via Restore. Used on shutdown.
func (s *SchedulerService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		s.cron.Stop()
		s.cron = nil
	}
}

// Active reports whether the schedule is currently armed.
func (s *SchedulerService) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cron != nil
}

// NextRun returns the next scheduled fire instant, or the zero time when the
// scheduler is inactive.
func (s *SchedulerService) NextRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron == nil {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Next
}

// Restore re-arms the schedule on startup when the persisted flag says it
// was active. If the persisted next-fire instant was missed while the
// process was down and catch-up is enabled, one immediate run is triggered;
// otherwise the missed fire is dropped and only the next slot is armed.
func (s *SchedulerService) Restore(ctx context.Context) error {
	active, err := s.settings.Get(ctx, common.SettingSchedulerActive)
	if errors.Is(err, common.ErrorNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read scheduler state: %w", err)
	}
	if active != "true" {
		return nil
	}

	missed := false
	if raw, err := s.settings.Get(ctx, common.SettingSchedulerNextRun); err == nil {
		if target, perr := time.Parse(time.RFC3339, raw); perr == nil && target.Before(s.now()) {
			missed = true
		}
	}

	if err := s.Enable(ctx); err != nil {
		return err
	}

	if missed {
		if s.catchUp {
			s.logger.Info(ctx, "missed scheduled run, catching up")
			go s.run()
		} else {
			s.logger.Warn(ctx, "missed scheduled run dropped, catch-up disabled")
		}
	}
	return nil
}

// run executes one scheduled pipeline invocation. A busy pipeline (e.g. a
// manual trigger in flight) skips the run rather than queuing it.
func (s *SchedulerService) run() {
	ctx := context.Background()

	post, err := s.pipeline.GenerateAndPublish(ctx, "")
	switch {
	case errors.Is(err, common.ErrPipelineBusy):
		s.logger.Warn(ctx, "scheduled run skipped, pipeline busy")
	case err != nil:
		s.logger.Error(ctx, "scheduled run failed", "error", err.Error())
	default:
		s.logger.Info(ctx, "scheduled run finished", "id", post.ID, "status", string(post.Status))
	}

	s.mu.Lock()
	if s.cron != nil {
		s.storeNextRunLocked(ctx)
	}
	s.mu.Unlock()
}

// scheduledTime reads the stored HH:MM publishing slot, falling back to the
// default on absence or parse failure.
func (s *SchedulerService) scheduledTime(ctx context.Context) (hour, minute int) {
	raw, err := s.settings.Get(ctx, common.SettingScheduledTime)
	if err != nil {
		raw = defaultScheduledTime
	}
	parsed, err := time.Parse("15:04", raw)
	if err != nil {
		s.logger.Warn(ctx, "invalid scheduled time, using default", "value", raw)
		parsed, _ = time.Parse("15:04", defaultScheduledTime)
	}
	return parsed.Hour(), parsed.Minute()
}

func (s *SchedulerService) storeNextRunLocked(ctx context.Context) {
	next := s.cron.Entry(s.entryID).Next
	if next.IsZero() {
		return
	}
	if err := s.settings.Set(ctx, common.SettingSchedulerNextRun, next.Format(time.RFC3339)); err != nil {
		s.logger.Error(ctx, "failed to persist next run", "error", err.Error())
	}
}
