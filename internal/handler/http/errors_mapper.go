package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/service"
	"github.com/MKhiriev/voice-notes/internal/store"
	"github.com/MKhiriev/voice-notes/internal/utils"
	"github.com/MKhiriev/voice-notes/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:       http.StatusBadRequest,
	ErrInvalidQueryParam: http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrNothingToUpdate:         http.StatusBadRequest,
	service.ErrInvalidID:               http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	validators.ErrInvalidInput:         http.StatusBadRequest,

	store.ErrEmailAlreadyExists:  http.StatusConflict,
	store.ErrNoteNotFound:        http.StatusNotFound,
	store.ErrTodoNotFound:        http.StatusNotFound,
	store.ErrProfileNotFound:     http.StatusNotFound,
	store.ErrConstraintViolation: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError maps err to a status and writes {"error": "..."}.
// Internal failures are logged and answered with the generic status text and
// the request's trace id only.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status != http.StatusInternalServerError {
		utils.WriteError(w, err.Error(), status)
		return
	}

	traceID := utils.GetTraceIDFromContext(r.Context())
	logger.FromRequest(r).Err(err).Str("func", "writeServiceError").Msg("internal error")

	body := map[string]string{"error": http.StatusText(status)}
	if traceID != "" {
		body["trace_id"] = traceID
	}
	utils.WriteJSON(w, body, status)
}
