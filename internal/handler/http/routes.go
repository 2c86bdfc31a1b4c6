package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}
	router.Use(h.withCORS())
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)

		r.Post("/api/reminders/dispatch", h.dispatchReminders)
		r.Options("/api/reminders/dispatch", h.dispatchPreflight)

		if h.metrics != nil {
			r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
		}
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/notes", h.listNotes)
		r.Post("/api/notes", h.createNote)
		r.Get("/api/notes/{id}", h.getNote)
		r.Patch("/api/notes/{id}", h.updateNote)
		r.Delete("/api/notes/{id}", h.deleteNote)
		r.Post("/api/notes/{id}/archive", h.toggleArchive)

		r.Get("/api/todos", h.listTodos)
		r.Post("/api/todos", h.createTodo)
		r.Get("/api/todos/{id}", h.getTodo)
		r.Patch("/api/todos/{id}", h.updateTodo)
		r.Delete("/api/todos/{id}", h.deleteTodo)
		r.Post("/api/todos/{id}/complete", h.toggleComplete)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// withCORS answers browser preflights. Without configured origins any
// origin is allowed, matching the dispatcher's public trigger.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Authorization", "Content-Type", dispatchKeyHeader, traceIDHeader, "X-Client-Info", "Apikey",
		},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	})
}
