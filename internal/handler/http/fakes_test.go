package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/service"
	"github.com/MKhiriev/voice-notes/internal/validators"
	"github.com/MKhiriev/voice-notes/models"
)

// ─────────────────────────────────────────────
// Fake services
// ─────────────────────────────────────────────

type fakeAuthService struct {
	registerFn    func(ctx context.Context, c models.Credentials) (models.Profile, error)
	loginFn       func(ctx context.Context, c models.Credentials) (models.Profile, error)
	createTokenFn func(ctx context.Context, p models.Profile) (models.Token, error)
	parseTokenFn  func(ctx context.Context, s string) (models.Token, error)
}

func (f *fakeAuthService) Register(ctx context.Context, c models.Credentials) (models.Profile, error) {
	return f.registerFn(ctx, c)
}

func (f *fakeAuthService) Login(ctx context.Context, c models.Credentials) (models.Profile, error) {
	return f.loginFn(ctx, c)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, p models.Profile) (models.Token, error) {
	if f.createTokenFn == nil {
		return models.Token{SignedString: "signed-" + p.ID, UserID: p.ID}, nil
	}
	return f.createTokenFn(ctx, p)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, s string) (models.Token, error) {
	if f.parseTokenFn == nil {
		if s != testToken {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		return models.Token{SignedString: s, UserID: testUserID}, nil
	}
	return f.parseTokenFn(ctx, s)
}

type fakeNoteService struct {
	createFn  func(ctx context.Context, userID string, d models.NoteDraft) (models.Note, error)
	getFn     func(ctx context.Context, userID, id string) (models.Note, error)
	listFn    func(ctx context.Context, userID string, f models.NoteFilter) ([]models.Note, error)
	updateFn  func(ctx context.Context, userID, id string, u models.NoteUpdate) (models.Note, error)
	archiveFn func(ctx context.Context, userID, id string) (models.Note, error)
	deleteFn  func(ctx context.Context, userID, id string) error
}

func (f *fakeNoteService) CreateNote(ctx context.Context, userID string, d models.NoteDraft) (models.Note, error) {
	return f.createFn(ctx, userID, d)
}

func (f *fakeNoteService) GetNote(ctx context.Context, userID, id string) (models.Note, error) {
	return f.getFn(ctx, userID, id)
}

func (f *fakeNoteService) ListNotes(ctx context.Context, userID string, filter models.NoteFilter) ([]models.Note, error) {
	return f.listFn(ctx, userID, filter)
}

func (f *fakeNoteService) UpdateNote(ctx context.Context, userID, id string, u models.NoteUpdate) (models.Note, error) {
	return f.updateFn(ctx, userID, id, u)
}

func (f *fakeNoteService) ToggleArchive(ctx context.Context, userID, id string) (models.Note, error) {
	return f.archiveFn(ctx, userID, id)
}

func (f *fakeNoteService) DeleteNote(ctx context.Context, userID, id string) error {
	return f.deleteFn(ctx, userID, id)
}

type fakeTodoService struct {
	createFn   func(ctx context.Context, userID string, d models.TodoDraft) (models.Todo, error)
	getFn      func(ctx context.Context, userID, id string) (models.Todo, error)
	listFn     func(ctx context.Context, userID string, f models.TodoFilter, s models.TodoSortKey) ([]models.Todo, error)
	updateFn   func(ctx context.Context, userID, id string, u models.TodoUpdate) (models.Todo, error)
	completeFn func(ctx context.Context, userID, id string) (models.Todo, error)
	deleteFn   func(ctx context.Context, userID, id string) error
}

func (f *fakeTodoService) CreateTodo(ctx context.Context, userID string, d models.TodoDraft) (models.Todo, error) {
	return f.createFn(ctx, userID, d)
}

func (f *fakeTodoService) GetTodo(ctx context.Context, userID, id string) (models.Todo, error) {
	return f.getFn(ctx, userID, id)
}

func (f *fakeTodoService) ListTodos(ctx context.Context, userID string, filter models.TodoFilter, sortBy models.TodoSortKey) ([]models.Todo, error) {
	return f.listFn(ctx, userID, filter, sortBy)
}

func (f *fakeTodoService) UpdateTodo(ctx context.Context, userID, id string, u models.TodoUpdate) (models.Todo, error) {
	return f.updateFn(ctx, userID, id, u)
}

func (f *fakeTodoService) ToggleComplete(ctx context.Context, userID, id string) (models.Todo, error) {
	return f.completeFn(ctx, userID, id)
}

func (f *fakeTodoService) DeleteTodo(ctx context.Context, userID, id string) error {
	return f.deleteFn(ctx, userID, id)
}

type fakeReminderService struct {
	dispatchFn func(ctx context.Context, now time.Time) (models.DispatchResult, error)
}

func (f *fakeReminderService) Dispatch(ctx context.Context, now time.Time) (models.DispatchResult, error) {
	return f.dispatchFn(ctx, now)
}

type fakeAppInfoService struct {
	info models.AppBuildInfo
}

func (f *fakeAppInfoService) GetAppInfo(_ context.Context) models.AppBuildInfo {
	return f.info
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testToken  = "valid-token"
	testUserID = "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b"
	testNoteID = "0190a1b2-c3d4-7e5f-8a9b-000000000001"
	testTodoID = "0190a1b2-c3d4-7e5f-8a9b-000000000002"
)

// newTestHandler returns a Handler with a nop logger and the given services.
// AuthService defaults to a fake accepting testToken.
func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	if services.AuthService == nil {
		services.AuthService = &fakeAuthService{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &fakeAppInfoService{info: models.AppBuildInfo{Version: "test"}}
	}

	return &Handler{
		services:  services,
		validator: validators.NewStructValidator(),
		logger:    logger.Nop(),
	}
}

// serve runs one request through the full router.
func serve(t *testing.T, h *Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func authHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testToken}
}

// injectNopLogger puts the nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}

// serveWith runs one request through an already built router.
func serveWith(router http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
