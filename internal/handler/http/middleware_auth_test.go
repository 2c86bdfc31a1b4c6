package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voice-notes/internal/service"
	"github.com/MKhiriev/voice-notes/internal/utils"
	"github.com/MKhiriev/voice-notes/models"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/notes", nil))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		parseErr   error
		wantStatus int
		wantNext   bool
		wantInBody string
	}{
		{
			name:       "valid token",
			authHeader: "Bearer " + testToken,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantInBody: ErrEmptyAuthorizationHeader.Error(),
		},
		{
			name:       "not a bearer header",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantInBody: ErrInvalidAuthorizationHeader.Error(),
		},
		{
			name:       "expired token",
			authHeader: "Bearer stale",
			parseErr:   service.ErrTokenIsExpiredOrInvalid,
			wantStatus: http.StatusUnauthorized,
			wantInBody: service.ErrTokenIsExpiredOrInvalid.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuthService{}
			if tt.parseErr != nil {
				auth.parseTokenFn = func(_ context.Context, _ string) (models.Token, error) {
					return models.Token{}, tt.parseErr
				}
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantInBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantInBody)
			}
		})
	}
}

func TestAuth_UserIDInContext(t *testing.T) {
	h := newTestHandler(nil)

	var gotUserID string
	var found bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, found = utils.GetUserIDFromContext(r.Context())
	})

	executeAuth(h, "Bearer "+testToken, next)

	require.True(t, found)
	assert.Equal(t, testUserID, gotUserID)
}

func TestUserIDFromRequest_MissingUser(t *testing.T) {
	rr := httptest.NewRecorder()
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/notes", nil))

	_, ok := userIDFromRequest(rr, req)

	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
