package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voice-notes/models"
)

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "/api/notes", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/notes", http.StatusOK, 30*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/api/notes", http.StatusBadRequest, time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/notes", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/api/notes", "400")), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.httpDuration))
}

func TestObserveDispatch(t *testing.T) {
	m := New()

	m.ObserveDispatch(TriggerWorker, models.DispatchResult{Selected: 3, Processed: 2, Skipped: 1}, nil)
	m.ObserveDispatch(TriggerHTTP, models.DispatchResult{Selected: 2, Processed: 1}, errors.New("boom"))

	assert.InDelta(t, 3, testutil.ToFloat64(m.remindersSent), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.remindersSkip), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.dispatchRuns.WithLabelValues(TriggerWorker, "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.dispatchRuns.WithLabelValues(TriggerHTTP, "error")), 0)
}

func TestHandler_ExposesRegistry(t *testing.T) {
	m := New()
	m.ObserveDispatch(TriggerHTTP, models.DispatchResult{Processed: 1}, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "voice_notes_reminders_enqueued_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}
