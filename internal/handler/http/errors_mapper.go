package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mkorolev/salary-service/internal/service"
	"github.com/mkorolev/salary-service/internal/store"
	"github.com/mkorolev/salary-service/internal/utils"
	"github.com/mkorolev/salary-service/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrNoFieldsProvided:    http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	utils.ErrTokenInvalid:        http.StatusUnauthorized,
	utils.ErrTokenExpired:        http.StatusUnauthorized,
	utils.ErrTokenMissingSubject: http.StatusUnauthorized,

	store.ErrUserNotFound:   http.StatusNotFound,
	store.ErrSalaryNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
}

// statusFromError translates a propagated error chain into the HTTP status
// of the response. Typed errors (uniqueness conflicts, validation failures)
// take precedence over the sentinel map.
func statusFromError(err error) int {
	var uniqueErr *store.UniqueViolationError
	if errors.As(err, &uniqueErr) {
		return http.StatusConflict
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// conflictDetail renders the field-specific message of a uniqueness conflict.
func conflictDetail(err *store.UniqueViolationError) string {
	switch err.Field {
	case "email":
		return "this email address is already in use"
	case "phone_number":
		return "this phone number is already in use"
	default:
		return "uniqueness violation during user creation"
	}
}

// writeMappedError resolves err to a status code and writes the JSON error
// body. Uniqueness conflicts and validation failures get structured details;
// everything else is rendered from the error text of the matched sentinel.
func writeMappedError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	var uniqueErr *store.UniqueViolationError
	if errors.As(err, &uniqueErr) {
		utils.WriteError(w, conflictDetail(uniqueErr), status) //nolint:errcheck
		return
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		utils.WriteJSON(w, map[string]any{"detail": validationErr.Fields}, status) //nolint:errcheck
		return
	}

	if status == http.StatusInternalServerError {
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), status) //nolint:errcheck
		return
	}

	utils.WriteError(w, fmt.Sprintf("%v", rootSentinel(err)), status) //nolint:errcheck
}

// rootSentinel finds the mapped sentinel inside the chain so response bodies
// stay stable even when the error is wrapped with call-site context.
func rootSentinel(err error) error {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target
		}
	}
	return err
}
