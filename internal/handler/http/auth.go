package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devconnector/devconnector/internal/logger"
	"github.com/devconnector/devconnector/internal/service"
	"github.com/devconnector/devconnector/internal/store"
	"github.com/devconnector/devconnector/internal/utils"
	"github.com/devconnector/devconnector/internal/validators"
	"github.com/devconnector/devconnector/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMsg(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		h.writeValidationFailure(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Warn().Err(err).Str("email", req.Email).Msg("registration with taken email")
			writeErrors(w, models.FieldError{Msg: "User already exists"})
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeServerError(w)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeServerError(w)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMsg(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		h.writeValidationFailure(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Warn().Err(err).Msg("login with unknown email")
			writeErrors(w, models.FieldError{Field: "email", Msg: "No user with those credentials."})
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Warn().Err(err).Msg("login with wrong password")
			writeErrors(w, models.FieldError{Field: "password", Msg: "Invalid password."})
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeServerError(w)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeServerError(w)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}

// currentUser returns the account record of the authenticated caller. The
// password hash never leaves the server: the field is excluded from the JSON
// rendering of [models.User].
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context on protected route")
		writeServerError(w)
		return
	}

	user, err := h.services.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("fetching current user failed")
		writeServerError(w)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// writeValidationFailure unwraps a validator error into the 400 list
// envelope, falling back to 500 for anything that is not a field failure.
func (h *Handler) writeValidationFailure(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if validationErr, ok := validators.AsValidationError(err); ok {
		log.Warn().Err(err).Msg("request failed validation")
		writeErrors(w, validationErr.Fields...)
		return
	}

	log.Err(err).Msg("validator returned an unexpected error")
	writeServerError(w)
}
