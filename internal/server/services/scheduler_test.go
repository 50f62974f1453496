package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/autoblog/internal/common"
	"github.com/dmitrijs2005/autoblog/internal/server/models"
	"github.com/dmitrijs2005/autoblog/internal/server/repositories/settings"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (f *fakeRunner) GenerateAndPublish(ctx context.Context, topic string) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &models.Post{ID: "p1", Status: models.StatusPublished}, nil
}

func (f *fakeRunner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestScheduler(t *testing.T, repo settings.Repository, runner PipelineRunner, catchUp bool) *SchedulerService {
	t.Helper()
	s := NewSchedulerService(repo, runner, catchUp, testLogger())
	t.Cleanup(func() { _ = s.Disable(context.Background()) })
	return s
}

func TestScheduler_EnableIsIdempotent(t *testing.T) {
	repo := settings.NewInMemoryRepository()
	s := newTestScheduler(t, repo, &fakeRunner{}, false)
	ctx := context.Background()

	require.NoError(t, s.Enable(ctx))
	require.True(t, s.Active())
	first := s.NextRun()
	require.False(t, first.IsZero())

	require.NoError(t, s.Enable(ctx))
	require.Equal(t, first, s.NextRun(), "a second Enable must not arm a second timer")

	active, err := repo.Get(ctx, common.SettingSchedulerActive)
	require.NoError(t, err)
	require.Equal(t, "true", active)

	raw, err := repo.Get(ctx, common.SettingSchedulerNextRun)
	require.NoError(t, err)
	persisted, err := time.Parse(time.RFC3339, raw)
	require.NoError(t, err)
	require.WithinDuration(t, first, persisted, time.Second)
}

func TestScheduler_HonorsScheduledTimePreference(t *testing.T) {
	repo := settings.NewInMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, common.SettingScheduledTime, "18:30"))

	s := newTestScheduler(t, repo, &fakeRunner{}, false)
	require.NoError(t, s.Enable(ctx))

	next := s.NextRun()
	require.Equal(t, 18, next.Hour())
	require.Equal(t, 30, next.Minute())
	require.True(t, next.After(s.now()))
}

func TestScheduler_InvalidScheduledTimeFallsBack(t *testing.T) {
	repo := settings.NewInMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, common.SettingScheduledTime, "not-a-time"))

	s := newTestScheduler(t, repo, &fakeRunner{}, false)
	require.NoError(t, s.Enable(ctx))

	next := s.NextRun()
	require.Equal(t, 9, next.Hour())
	require.Equal(t, 0, next.Minute())
}

func TestScheduler_DisableClearsState(t *testing.T) {
	repo := settings.NewInMemoryRepository()
	s := newTestScheduler(t, repo, &fakeRunner{}, false)
	ctx := context.Background()

	require.NoError(t, s.Enable(ctx))
	require.NoError(t, s.Disable(ctx))
	require.False(t, s.Active())
	require.True(t, s.NextRun().IsZero())

	active, err := repo.Get(ctx, common.SettingSchedulerActive)
	require.NoError(t, err)
	require.Equal(t, "false", active)

	_, err = repo.Get(ctx, common.SettingSchedulerNextRun)
	require.ErrorIs(t, err, common.ErrorNotFound)

	// disabling an inactive scheduler is a no-op
	require.NoError(t, s.Disable(ctx))
}

func TestScheduler_StopKeepsPersistedState(t *testing.T) {
	repo := settings.NewInMemoryRepository()
	s := newTestScheduler(t, repo, &fakeRunner{}, false)
	ctx := context.Background()

	require.NoError(t, s.Enable(ctx))
	s.Stop()
	require.False(t, s.Active())

	active, err := repo.Get(ctx, common.SettingSchedulerActive)
	require.NoError(t, err)
	require.Equal(t, "true", active, "Stop must not flip the persisted flag")

	_, err = repo.Get(ctx, common.SettingSchedulerNextRun)
	require.NoError(t, err, "Stop must keep the persisted next run for Restore")
}

func TestScheduler_RestoreInactive(t *testing.T) {
	repo := settings.NewInMemoryRepository()
	runner := &fakeRunner{}
	s := newTestScheduler(t, repo, runner, true)
	ctx := context.Background()

	require.NoError(t, s.Restore(ctx), "no persisted state at all")
	require.False(t, s.Active())

	require.NoError(t, repo.Set(ctx, common.SettingSchedulerActive, "false"))
	require.NoError(t, s.Restore(ctx))
	require.False(t, s.Active())
	require.Zero(t, runner.callCount())
}

func TestScheduler_RestoreRearms(t *testing.T) {
	repo := settings.NewInMemoryRepository()
	runner := &fakeRunner{}
	s := newTestScheduler(t, repo, runner, true)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, common.SettingSchedulerActive, "true"))
	future := time.Now().Add(time.Hour).Format(time.RFC3339)
	require.NoError(t, repo.Set(ctx, common.SettingSchedulerNextRun, future))

	require.NoError(t, s.Restore(ctx))
	require.True(t, s.Active())
	require.Zero(t, runner.callCount(), "a future fire instant is not a missed run")
}

func TestScheduler_RestoreMissedRunCatchUp(t *testing.T) {
	repo := settings.NewInMemoryRepository()
	runner := &fakeRunner{}
	s := newTestScheduler(t, repo, runner, true)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, common.SettingSchedulerActive, "true"))
	missed := time.Now().Add(-time.Hour).Format(time.RFC3339)
	require.NoError(t, repo.Set(ctx, common.SettingSchedulerNextRun, missed))

	require.NoError(t, s.Restore(ctx))
	require.True(t, s.Active())
	require.Eventually(t, func() bool {
		return runner.callCount() == 1
	}, 2*time.Second, 10*time.Millisecond, "missed run must be caught up")
}

func TestScheduler_RestoreMissedRunDroppedWithoutCatchUp(t *testing.T) {
	repo := settings.NewInMemoryRepository()
	runner := &fakeRunner{}
	s := newTestScheduler(t, repo, runner, false)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, common.SettingSchedulerActive, "true"))
	missed := time.Now().Add(-time.Hour).Format(time.RFC3339)
	require.NoError(t, repo.Set(ctx, common.SettingSchedulerNextRun, missed))

	require.NoError(t, s.Restore(ctx))
	require.True(t, s.Active(), "the schedule is re-armed even when the missed run is dropped")

	time.Sleep(50 * time.Millisecond)
	require.Zero(t, runner.callCount())
}
