// Package metrics owns the Prometheus registry of the server: HTTP traffic
// and reminder dispatch counters, exposed at /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/voice-notes/models"
)

const namespace = "voice_notes"

// Dispatch triggers used as the "trigger" label.
const (
	TriggerHTTP   = "http"
	TriggerWorker = "worker"
)

// Metrics is safe for concurrent use.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	dispatchRuns  *prometheus.CounterVec
	remindersSent prometheus.Counter
	remindersSkip prometheus.Counter
}

// New registers every collector on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"method", "route"}),
		dispatchRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminder_dispatch_runs_total",
			Help:      "Reminder dispatcher invocations by trigger and outcome.",
		}, []string{"trigger", "outcome"}),
		remindersSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_enqueued_total",
			Help:      "Reminder emails enqueued.",
		}),
		remindersSkip: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_skipped_total",
			Help:      "Reminders already claimed by an overlapping run.",
		}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one finished HTTP request. route is the matched
// pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDispatch records one dispatcher run. Partial progress of a failed
// run is counted as well.
func (m *Metrics) ObserveDispatch(trigger string, result models.DispatchResult, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.dispatchRuns.WithLabelValues(trigger, outcome).Inc()
	m.remindersSent.Add(float64(result.Processed))
	m.remindersSkip.Add(float64(result.Skipped))
}
