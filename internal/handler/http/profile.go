package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/devconnector/devconnector/internal/logger"
	"github.com/devconnector/devconnector/internal/store"
	"github.com/devconnector/devconnector/internal/utils"
	"github.com/devconnector/devconnector/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) myProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context on protected route")
		writeServerError(w)
		return
	}

	profile, err := h.services.ProfileService.GetProfileByUser(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrProfileNotFound):
			writeMsg(w, "There is no profile for this user", http.StatusBadRequest)
			return
		default:
			log.Err(err).Int64("user_id", userID).Msg("fetching own profile failed")
			writeServerError(w)
			return
		}
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) upsertProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context on protected route")
		writeServerError(w)
		return
	}

	var req models.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMsg(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		h.writeValidationFailure(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.UpsertProfile(ctx, userID, req)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile upsert failed")
		writeServerError(w)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) listProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	profiles, err := h.services.ProfileService.ListProfiles(ctx)
	if err != nil {
		log.Err(err).Msg("listing profiles failed")
		writeServerError(w)
		return
	}

	utils.WriteJSON(w, profiles, http.StatusOK)
}

// profileByUser looks up a profile by the owner's numeric id taken from the
// URL path. A non-numeric id is reported the same way as an absent profile,
// keeping lookup failures indistinguishable to the client.
func (h *Handler) profileByUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		writeMsg(w, "Profile not found", http.StatusBadRequest)
		return
	}

	profile, err := h.services.ProfileService.GetProfileByUser(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrProfileNotFound):
			writeMsg(w, "Profile not found", http.StatusBadRequest)
			return
		default:
			log.Err(err).Int64("user_id", userID).Msg("profile lookup failed")
			writeServerError(w)
			return
		}
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context on protected route")
		writeServerError(w)
		return
	}

	if err := h.services.ProfileService.DeleteAccount(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("account deletion failed")
		writeServerError(w)
		return
	}

	log.Info().Int64("user_id", userID).Msg("account deleted")
	writeMsg(w, "User deleted", http.StatusOK)
}

func (h *Handler) addExperience(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context on protected route")
		writeServerError(w)
		return
	}

	var req models.ExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMsg(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		h.writeValidationFailure(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.AddExperience(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrProfileNotFound):
			writeMsg(w, "There is no profile for this user", http.StatusBadRequest)
			return
		default:
			log.Err(err).Int64("user_id", userID).Msg("adding experience failed")
			writeServerError(w)
			return
		}
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) removeExperience(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context on protected route")
		writeServerError(w)
		return
	}

	profile, err := h.services.ProfileService.RemoveExperience(ctx, userID, chi.URLParam(r, "exp_id"))
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("removing experience failed")
		writeServerError(w)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) addEducation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context on protected route")
		writeServerError(w)
		return
	}

	var req models.EducationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMsg(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		h.writeValidationFailure(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.AddEducation(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrProfileNotFound):
			writeMsg(w, "There is no profile for this user", http.StatusBadRequest)
			return
		default:
			log.Err(err).Int64("user_id", userID).Msg("adding education failed")
			writeServerError(w)
			return
		}
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) removeEducation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context on protected route")
		writeServerError(w)
		return
	}

	profile, err := h.services.ProfileService.RemoveEducation(ctx, userID, chi.URLParam(r, "edu_id"))
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("removing education failed")
		writeServerError(w)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
