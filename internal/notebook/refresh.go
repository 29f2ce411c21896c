package notebook

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Synchronizer is the slice of the controller the refresh job needs.
type Synchronizer interface {
	SynchronizeAll(ctx context.Context) ([]Note, error)
}

// RefreshJob periodically re-synchronizes the note collection against the
// server so the list does not go stale during long sessions. Failures are
// logged and never surfaced to the UI; the next tick tries again.
type RefreshJob struct {
	controller Synchronizer
	logger     *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a RefreshJob that calls SynchronizeAll on a ticker.
// The job is idle until Start is called.
func NewRefreshJob(controller Synchronizer, log *logger.Logger) *RefreshJob {
	return &RefreshJob{controller: controller, logger: log}
}

// Start stops any previously running job, then launches a background
// goroutine that synchronizes every interval. If interval is zero or
// negative it defaults to 5 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *RefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.controller.SynchronizeAll(jobCtx); err != nil {
					j.logger.Warn().Err(err).Msg("background refresh failed")
				}
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until it has
// fully exited. Safe to call when the job is not running.
func (j *RefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
