package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/utils"
	"github.com/MKhiriev/voice-notes/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	filter, err := noteFilterFromQuery(r)
	if err != nil {
		log.Err(err).Msg("invalid note filter")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), userID, filter)
	if err != nil {
		log.Err(err).Msg("error listing notes")
		writeServiceError(w, r, err)
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var draft models.NoteDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), userID, draft)
	if err != nil {
		log.Err(err).Msg("error creating note")
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Str("note_id", note.ID).Msg("note created")
	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("error getting note")
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var update models.NoteUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.UpdateNote(r.Context(), userID, chi.URLParam(r, "id"), update)
	if err != nil {
		log.Err(err).Msg("error updating note")
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) toggleArchive(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	note, err := h.services.NoteService.ToggleArchive(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("error toggling archive flag")
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		log.Err(err).Msg("error deleting note")
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// noteFilterFromQuery reads ?category=&q=&archived=.
func noteFilterFromQuery(r *http.Request) (models.NoteFilter, error) {
	query := r.URL.Query()

	filter := models.NoteFilter{
		Category: models.Category(query.Get("category")),
		Search:   query.Get("q"),
	}

	archived, err := parseOptionalBool(query.Get("archived"))
	if err != nil {
		return models.NoteFilter{}, err
	}
	filter.Archived = archived

	return filter, nil
}

func parseOptionalBool(raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, ErrInvalidQueryParam
	}
	return &v, nil
}
