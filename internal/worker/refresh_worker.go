package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/student-admin/internal/model"
)

// StudentLoader reloads the shared student list.
type StudentLoader interface {
	LoadStudents(ctx context.Context) ([]model.Student, error)
}

// RefreshWorker periodically reloads the student list so stream
// subscribers see changes made by other catalog clients.
type RefreshWorker struct {
	loader   StudentLoader
	interval time.Duration
	log      zerolog.Logger
}

// NewRefreshWorker creates a new RefreshWorker.
func NewRefreshWorker(loader StudentLoader, interval time.Duration, log zerolog.Logger) *RefreshWorker {
	return &RefreshWorker{
		loader:   loader,
		interval: interval,
		log:      log.With().Str("component", "refresh_worker").Logger(),
	}
}

// Start begins the worker loop and blocks until ctx is done. Call in a
// goroutine. A non-positive interval returns immediately.
func (w *RefreshWorker) Start(ctx context.Context) {
	if w.interval <= 0 {
		return
	}
	w.log.Info().Dur("interval", w.interval).Msg("Worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *RefreshWorker) refresh(ctx context.Context) {
	// A slow catalog must not stack up reloads.
	reqCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	students, err := w.loader.LoadStudents(reqCtx)
	if err != nil {
		if ctx.Err() == nil {
			w.log.Warn().Err(err).Msg("Periodic reload failed")
		}
		return
	}
	w.log.Debug().Int("count", len(students)).Msg("Student list reloaded")
}
