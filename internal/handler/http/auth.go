package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkorolev/salary-service/internal/logger"
	"github.com/mkorolev/salary-service/internal/service"
	"github.com/mkorolev/salary-service/internal/utils"
	"github.com/mkorolev/salary-service/internal/validators"
	"github.com/mkorolev/salary-service/models"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "Salary-service!"}, http.StatusOK) //nolint:errcheck
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest) //nolint:errcheck
		return
	}

	if err := validators.ValidateRegister(req); err != nil {
		log.Err(err).Msg("registration payload failed validation")
		writeMappedError(w, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteError(w, service.ErrInvalidDataProvided.Error(), http.StatusBadRequest) //nolint:errcheck
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeMappedError(w, err)
			return
		}
	}

	log.Debug().Int64("id", registeredUser.ID).Msg("user successfully registered")

	utils.WriteJSON(w, registeredUser, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest) //nolint:errcheck
		return
	}

	if err := validators.ValidateLogin(req); err != nil {
		log.Err(err).Msg("login payload failed validation")
		writeMappedError(w, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			// Deliberately the same response for unknown email and wrong
			// password.
			log.Err(err).Msg("login failed")
			utils.WriteError(w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized) //nolint:errcheck
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeMappedError(w, err)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError) //nolint:errcheck
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	setAccessTokenCookie(w, token)
	utils.WriteJSON(w, models.TokenResponse{AccessToken: token.SignedString}, http.StatusOK) //nolint:errcheck
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	_, err := r.Cookie(AccessTokenCookie)
	if err != nil {
		utils.WriteJSON(w, models.MessageResponse{Message: "user is already logged out"}, http.StatusOK) //nolint:errcheck
		return
	}

	clearAccessTokenCookie(w)
	log.Debug().Msg("session cookie cleared")

	utils.WriteJSON(w, models.MessageResponse{Message: "user successfully logged out"}, http.StatusOK) //nolint:errcheck
}
