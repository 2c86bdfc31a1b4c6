package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/utils"
	"github.com/MKhiriev/voice-notes/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, credentials); err != nil {
		log.Err(err).Msg("invalid credentials provided")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		log.Err(err).Msg("error occurred during registration")
		writeServiceError(w, r, err)
		return
	}

	h.issueToken(w, r, profile, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	profile, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		log.Err(err).Msg("error occurred during login")
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Str("user_id", profile.ID).Msg("user successfully logged in")

	h.issueToken(w, r, profile, http.StatusOK)
}

// issueToken answers with the token both in the Authorization header and in
// the JSON body.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, profile models.Profile, status int) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), profile)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{
		Token:  token.SignedString,
		UserID: profile.ID,
		Email:  profile.Email,
	}, status)
}
