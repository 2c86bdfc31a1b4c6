package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/utils"
	"github.com/MKhiriev/voice-notes/models"
)

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	completed, err := parseOptionalBool(query.Get("completed"))
	if err != nil {
		log.Err(err).Str("completed", query.Get("completed")).Send()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	filter := models.TodoFilter{
		Search:    query.Get("q"),
		Completed: completed,
		Priority:  models.Priority(query.Get("priority")),
	}
	sortBy := models.TodoSortKey(query.Get("sort"))

	todos, err := h.services.TodoService.ListTodos(r.Context(), userID, filter, sortBy)
	if err != nil {
		log.Err(err).Msg("error listing todos")
		writeServiceError(w, r, err)
		return
	}
	if todos == nil {
		todos = []models.Todo{}
	}

	utils.WriteJSON(w, todos, http.StatusOK)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var draft models.TodoDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	todo, err := h.services.TodoService.CreateTodo(r.Context(), userID, draft)
	if err != nil {
		log.Err(err).Msg("error creating todo")
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Str("todo_id", todo.ID).Msg("todo created")
	utils.WriteJSON(w, todo, http.StatusCreated)
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	todo, err := h.services.TodoService.GetTodo(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("error getting todo")
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var update models.TodoUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	todo, err := h.services.TodoService.UpdateTodo(r.Context(), userID, chi.URLParam(r, "id"), update)
	if err != nil {
		log.Err(err).Msg("error updating todo")
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) toggleComplete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	todo, err := h.services.TodoService.ToggleComplete(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("error toggling completion")
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.TodoService.DeleteTodo(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		log.Err(err).Msg("error deleting todo")
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
