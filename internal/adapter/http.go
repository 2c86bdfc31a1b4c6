package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/voice-notes/internal/config"
	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/utils"
	"github.com/MKhiriev/voice-notes/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns the REST implementation of [ServerAdapter].
// A bare host:port address is treated as http://host:port.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/register", credentials)
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", credentials)
}

// authenticate prefers the token from the JSON body and falls back to the
// Authorization header.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, credentials models.Credentials) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&auth).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if auth.Token == "" {
		token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.AuthResponse{}, fmt.Errorf("%s parse bearer token: %w", path, err)
		}
		auth.Token = token
	}

	h.SetToken(auth.Token)
	h.logger.Debug().Str("user_id", auth.UserID).Str("path", path).Msg("authenticated")
	return auth, nil
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := h.client.R().SetContext(ctx).SetResult(&info).Get("/api/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}

// ── notes ───────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	err := h.do(ctx, resty.MethodGet, "/api/notes", nil, &notes)
	return notes, err
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, draft models.NoteDraft) (models.Note, error) {
	var note models.Note
	err := h.do(ctx, resty.MethodPost, "/api/notes", draft, &note)
	return note, err
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error) {
	var note models.Note
	err := h.do(ctx, resty.MethodPatch, "/api/notes/"+url.PathEscape(noteID), update, &note)
	return note, err
}

func (h *httpServerAdapter) ToggleArchive(ctx context.Context, noteID string) (models.Note, error) {
	var note models.Note
	err := h.do(ctx, resty.MethodPost, "/api/notes/"+url.PathEscape(noteID)+"/archive", nil, &note)
	return note, err
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID string) error {
	return h.do(ctx, resty.MethodDelete, "/api/notes/"+url.PathEscape(noteID), nil, nil)
}

// ── todos ───────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) ListTodos(ctx context.Context) ([]models.Todo, error) {
	var todos []models.Todo
	err := h.do(ctx, resty.MethodGet, "/api/todos", nil, &todos)
	return todos, err
}

func (h *httpServerAdapter) CreateTodo(ctx context.Context, draft models.TodoDraft) (models.Todo, error) {
	var todo models.Todo
	err := h.do(ctx, resty.MethodPost, "/api/todos", draft, &todo)
	return todo, err
}

func (h *httpServerAdapter) UpdateTodo(ctx context.Context, todoID string, update models.TodoUpdate) (models.Todo, error) {
	var todo models.Todo
	err := h.do(ctx, resty.MethodPatch, "/api/todos/"+url.PathEscape(todoID), update, &todo)
	return todo, err
}

func (h *httpServerAdapter) ToggleComplete(ctx context.Context, todoID string) (models.Todo, error) {
	var todo models.Todo
	err := h.do(ctx, resty.MethodPost, "/api/todos/"+url.PathEscape(todoID)+"/complete", nil, &todo)
	return todo, err
}

func (h *httpServerAdapter) DeleteTodo(ctx context.Context, todoID string) error {
	return h.do(ctx, resty.MethodDelete, "/api/todos/"+url.PathEscape(todoID), nil, nil)
}

// do sends an authenticated request. body and result may be nil.
func (h *httpServerAdapter) do(ctx context.Context, method, path string, body, result any) error {
	token := h.Token()
	if token == "" {
		return ErrNotAuthenticated
	}

	req := h.client.R().
		SetContext(ctx).
		SetAuthToken(token)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.do").Str("method", method).Str("path", path).Send()
		return err
	}

	return nil
}
