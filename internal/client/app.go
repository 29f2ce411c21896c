package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/notebook"
	"github.com/MKhiriev/go-note-keeper/internal/tui"
	"github.com/MKhiriev/go-note-keeper/internal/workers"
)

// App ties the terminal interface, the note lifecycle controller, and the
// background refresh job into one process lifecycle.
type App struct {
	ui      *tui.TUI
	refresh *notebook.RefreshJob
	jobs    *workers.Workers

	workersCfg config.ClientWorkers
	logger     *logger.Logger
}

// refreshWorker adapts the refresh job to the [workers.Worker] contract so it
// can be launched together with any future background jobs.
type refreshWorker struct {
	ctx      context.Context
	job      *notebook.RefreshJob
	interval time.Duration
}

func (w *refreshWorker) Run() {
	if w.interval <= 0 {
		return
	}
	w.job.Start(w.ctx, w.interval)
}

func NewApp(ui *tui.TUI, refresh *notebook.RefreshJob, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if ui == nil || refresh == nil {
		return nil, fmt.Errorf("client app requires a ui and a refresh job")
	}

	return &App{
		ui:         ui,
		refresh:    refresh,
		workersCfg: workersCfg,
		logger:     log,
	}, nil
}

// Run drives the full client lifecycle: authenticate, start background jobs,
// run the note screens, and loop back to the login flow on logout. It returns
// nil when the user quits on purpose.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		if err := a.ui.LoginFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}

		a.jobs = workers.NewWorkers(&refreshWorker{ctx: ctx, job: a.refresh, interval: a.workersCfg.RefreshInterval})
		a.jobs.Run()

		logout, err := a.ui.MainLoop(ctx)
		a.refresh.Stop()
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Debug().Msg("user logged out, restarting login flow")
	}
}
