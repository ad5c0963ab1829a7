package workers

import (
	"context"

	"github.com/osavchuk/todostack/internal/config"
	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by cfg. An empty
// aggregate is valid: Run simply returns once ctx is cancelled.
func NewWorkers(cfg config.Workers, storages *store.Storages, logger *logger.Logger) *Workers {
	w := new(Workers)

	if cfg.SessionSweepInterval > 0 && cfg.SessionTTL > 0 {
		w.workers = append(w.workers, newSessionSweeper(storages.SessionRepository, cfg.SessionSweepInterval, cfg.SessionTTL, logger))
	}

	return w
}

// Run starts every worker in its own goroutine and blocks until ctx is
// cancelled and all workers have returned.
func (w *Workers) Run(ctx context.Context) {
	done := make(chan struct{}, len(w.workers))

	for _, worker := range w.workers {
		go func(worker Worker) {
			worker.Run(ctx)
			done <- struct{}{}
		}(worker)
	}

	for range w.workers {
		<-done
	}
}
