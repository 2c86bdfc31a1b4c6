package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/voice-notes/internal/config"
	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/metrics"
	"github.com/MKhiriev/voice-notes/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers returns the jobs enabled by cfg. With nothing enabled Run
// returns immediately.
func NewWorkers(services *service.Services, cfg config.Workers, metrics *metrics.Metrics, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.ReminderInterval > 0 {
		w.workers = append(w.workers, NewReminderWorker(services.ReminderService, cfg.ReminderInterval, metrics, logger))
	}

	logger.Info().Int("count", len(w.workers)).Msg("workers created")
	return w
}

// Run starts every worker in its own goroutine and waits until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}

// Len reports how many workers are scheduled.
func (w *Workers) Len() int {
	return len(w.workers)
}
