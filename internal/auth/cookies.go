package auth

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie carrying the session token for browser
// clients. Non-browser clients use the Authorization header instead.
const SessionCookieName = "cinetech_session"

// SetSessionCookie attaches the session token as an http-only cookie.
// Secure is only set in production so local development over http keeps
// working; SameSite=Strict matches the single-frontend deployment model.
func SetSessionCookie(w http.ResponseWriter, token string, isProduction bool, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSessionCookie expires the session cookie. The token itself stays valid
// until its expiry; there is no server-side revocation list.
func ClearSessionCookie(w http.ResponseWriter, isProduction bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteStrictMode,
	})
}

// GetSessionTokenFromCookie extracts the session token from the request cookie.
func GetSessionTokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}
