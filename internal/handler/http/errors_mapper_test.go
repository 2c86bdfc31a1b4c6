package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/voice-notes/internal/service"
	"github.com/MKhiriev/voice-notes/internal/store"
	"github.com/MKhiriev/voice-notes/internal/utils"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid data", err: fmt.Errorf("%w: title is required", service.ErrInvalidDataProvided), want: http.StatusBadRequest},
		{name: "invalid id", err: service.ErrInvalidID, want: http.StatusBadRequest},
		{name: "bad credentials", err: service.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "email taken", err: fmt.Errorf("%w: %w", store.ErrEmailAlreadyExists, errors.New("23505")), want: http.StatusConflict},
		{name: "note missing", err: store.ErrNoteNotFound, want: http.StatusNotFound},
		{name: "todo missing", err: store.ErrTodoNotFound, want: http.StatusNotFound},
		{name: "storage failure", err: store.ErrExecutingQuery, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteServiceError_HidesInternalDetails(t *testing.T) {
	rr := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)

	writeServiceError(rr, req, fmt.Errorf("%w: relation \"todos\" does not exist", store.ErrExecutingQuery))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rr.Body.String())
}

func TestWriteServiceError_InternalCarriesTraceID(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req = req.WithContext(context.WithValue(req.Context(), utils.TraceIDCtxKey, "trace-7"))

	writeServiceError(rr, req, store.ErrExecutingQuery)

	assert.JSONEq(t, `{"error":"Internal Server Error","trace_id":"trace-7"}`, rr.Body.String())
}

func TestWriteServiceError_ExposesClientErrors(t *testing.T) {
	rr := httptest.NewRecorder()

	writeServiceError(rr, httptest.NewRequest(http.MethodGet, "/api/todos/1", nil), store.ErrTodoNotFound)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"todo was not found"}`, rr.Body.String())
}
