package http

import (
	"net/http"
	"time"

	"github.com/mkorolev/salary-service/models"
)

// AccessTokenCookie is the name of the http-only cookie carrying the
// session token.
const AccessTokenCookie = "users_access_token"

// setAccessTokenCookie attaches the signed session token to the response as
// an http-only cookie, keeping it out of reach of client-side scripts.
func setAccessTokenCookie(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearAccessTokenCookie instructs the client to drop the session cookie.
func clearAccessTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}
