package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkorolev/salary-service/internal/logger"
	"github.com/mkorolev/salary-service/internal/store"
	"github.com/mkorolev/salary-service/internal/utils"
	"github.com/mkorolev/salary-service/internal/validators"
	"github.com/mkorolev/salary-service/models"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Error().Msg("authenticated user missing from request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized) //nolint:errcheck
		return
	}

	utils.WriteJSON(w, user, http.StatusOK) //nolint:errcheck
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("authenticated user missing from request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized) //nolint:errcheck
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest) //nolint:errcheck
		return
	}

	if err := validators.ValidateUpdate(req); err != nil {
		log.Err(err).Msg("update payload failed validation")
		writeMappedError(w, err)
		return
	}

	updatedUser, err := h.services.UserService.UpdateUser(ctx, user.ID, req)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("user update failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK) //nolint:errcheck
}

func (h *Handler) deleteMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("authenticated user missing from request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized) //nolint:errcheck
		return
	}

	// The session cookie is dropped regardless of the deletion outcome.
	clearAccessTokenCookie(w)

	if err := h.services.UserService.DeleteUser(ctx, user.ID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Int64("id", user.ID).Msg("user to delete was not found")
			utils.WriteError(w, "user was not found", http.StatusNotFound) //nolint:errcheck
			return
		}
		log.Err(err).Int64("id", user.ID).Msg("user deletion failed")
		writeMappedError(w, err)
		return
	}

	log.Debug().Int64("id", user.ID).Msg("user deleted")

	w.WriteHeader(http.StatusNoContent)
}
