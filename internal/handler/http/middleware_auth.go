package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/mkorolev/salary-service/internal/logger"
	"github.com/mkorolev/salary-service/internal/store"
	"github.com/mkorolev/salary-service/internal/utils"
)

// auth is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It extracts the signed token from the session cookie, validates it via
// [service.AuthService.ParseToken], loads the token's subject from storage,
// and — on success — stores the authenticated [models.User] in the request
// context under [utils.UserCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The session cookie is absent ([ErrNoTokenCookie]) or empty
//     ([ErrEmptyToken]).
//   - The token has expired ([utils.ErrTokenExpired]).
//   - The token is otherwise invalid or cannot be parsed.
//   - The token's subject no longer exists in storage.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromCookie(r)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, err.Error(), http.StatusUnauthorized) //nolint:errcheck
			return
		}

		ctx := r.Context()
		userID, err := h.services.AuthService.ParseToken(ctx, tokenString)

		if err != nil {
			switch {
			case errors.Is(err, utils.ErrTokenExpired):
				log.Err(err).Msg("token expired")
				utils.WriteError(w, utils.ErrTokenExpired.Error(), http.StatusUnauthorized) //nolint:errcheck
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				utils.WriteError(w, utils.ErrTokenInvalid.Error(), http.StatusUnauthorized) //nolint:errcheck
				return
			}
		}

		user, err := h.services.UserService.GetUser(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				// A valid token whose subject has since been deleted.
				log.Err(err).Int64("id", userID).Msg("token subject no longer exists")
				utils.WriteError(w, "User not found", http.StatusUnauthorized) //nolint:errcheck
				return
			}
			log.Err(err).Int64("id", userID).Msg("error occurred during loading token subject")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError) //nolint:errcheck
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromCookie extracts the signed token string from the session
// cookie of the request.
//
// It returns the following sentinel errors:
//   - [ErrNoTokenCookie] — if the request carries no session cookie.
//   - [ErrEmptyToken] — if the cookie exists but its value is empty.
func getTokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(AccessTokenCookie)
	if err != nil {
		return "", ErrNoTokenCookie
	}

	if cookie.Value == "" {
		return "", ErrEmptyToken
	}

	return cookie.Value, nil
}
