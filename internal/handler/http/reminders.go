package http

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/metrics"
	"github.com/MKhiriev/voice-notes/internal/utils"
)

const dispatchKeyHeader = "X-Dispatch-Key"

type dispatchResponse struct {
	Message string `json:"message"`
}

// dispatchReminders runs one dispatcher pass. The optional ?now= (RFC3339)
// pins the reference time for scheduled callers that run late.
func (h *Handler) dispatchReminders(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.dispatchKey != "" {
		key := r.Header.Get(dispatchKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(h.dispatchKey)) != 1 {
			log.Err(ErrInvalidDispatchKey).Send()
			utils.WriteError(w, ErrInvalidDispatchKey.Error(), http.StatusUnauthorized)
			return
		}
	}

	now := time.Now()
	if raw := r.URL.Query().Get("now"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			log.Err(err).Str("now", raw).Send()
			utils.WriteError(w, ErrInvalidDispatchTime.Error(), http.StatusBadRequest)
			return
		}
		now = parsed
	}

	result, err := h.services.ReminderService.Dispatch(r.Context(), now)
	if h.metrics != nil {
		h.metrics.ObserveDispatch(metrics.TriggerHTTP, result, err)
	}
	if err != nil {
		log.Err(err).Int("processed", result.Processed).Msg("reminder dispatch failed")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, dispatchResponse{
		Message: fmt.Sprintf("Successfully processed %d reminders", result.Processed),
	}, http.StatusOK)
}

// dispatchPreflight answers OPTIONS with a plain "ok". The CORS middleware
// handles real browser preflights before they get here.
func (h *Handler) dispatchPreflight(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
