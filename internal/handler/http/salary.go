package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mkorolev/salary-service/internal/logger"
	"github.com/mkorolev/salary-service/internal/store"
	"github.com/mkorolev/salary-service/internal/utils"
)

func (h *Handler) salaryMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("authenticated user missing from request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized) //nolint:errcheck
		return
	}

	salary, err := h.services.SalaryService.GetSalaryByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrSalaryNotFound) {
			log.Err(err).Int64("id", user.ID).Msg("salary record was not found")
			utils.WriteError(w, fmt.Sprintf("salary for user with id=%d was not found", user.ID), http.StatusNotFound) //nolint:errcheck
			return
		}
		log.Err(err).Int64("id", user.ID).Msg("salary lookup failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, salary, http.StatusOK) //nolint:errcheck
}
