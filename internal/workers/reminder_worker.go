package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/metrics"
	"github.com/MKhiriev/voice-notes/internal/service"
)

// ReminderWorker runs the reminder dispatcher on a fixed interval, the
// in-process equivalent of an external scheduler calling
// POST /api/reminders/dispatch.
type ReminderWorker struct {
	reminders service.ReminderService
	interval  time.Duration
	metrics   *metrics.Metrics
	now       func() time.Time

	logger *logger.Logger
}

func NewReminderWorker(reminders service.ReminderService, interval time.Duration, metrics *metrics.Metrics, logger *logger.Logger) *ReminderWorker {
	return &ReminderWorker{
		reminders: reminders,
		interval:  interval,
		metrics:   metrics,
		now:       time.Now,
		logger:    logger,
	}
}

// Run dispatches once right away and then on every tick. A failed run is
// logged and retried on the next tick.
func (w *ReminderWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("reminder worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.dispatch(ctx)

		select {
		case <-ctx.Done():
			w.logger.Info().Msg("reminder worker stopped")
			return
		case <-ticker.C:
		}
	}
}

func (w *ReminderWorker) dispatch(ctx context.Context) {
	result, err := w.reminders.Dispatch(ctx, w.now())
	if w.metrics != nil {
		w.metrics.ObserveDispatch(metrics.TriggerWorker, result, err)
	}
	if err != nil {
		w.logger.Err(err).Str("func", "*ReminderWorker.dispatch").Int("processed", result.Processed).Msg("reminder dispatch failed")
		return
	}

	if result.Selected > 0 {
		w.logger.Info().
			Int("selected", result.Selected).
			Int("processed", result.Processed).
			Int("skipped", result.Skipped).
			Msg("reminders dispatched")
	}
}
