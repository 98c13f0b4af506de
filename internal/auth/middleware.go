package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/cinetech/api/internal/httputil"
	"github.com/cinetech/api/internal/user"
)

// ContextKey is a type for context keys to avoid collisions
type ContextKey string

const (
	// CurrentUserContextKey holds the sanitized profile of the authenticated user.
	CurrentUserContextKey ContextKey = "current_user"
)

// Middleware handles authentication for protected routes
type Middleware struct {
	tokenService TokenService
	users        UserStore
}

func NewMiddleware(tokenService TokenService, users UserStore) *Middleware {
	return &Middleware{tokenService: tokenService, users: users}
}

// RequireAuth validates the session token and attaches the user to the request
// context. The token is read from the session cookie first, falling back to an
// Authorization: Bearer header for non-browser clients.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var token string

		// Priority 1: session cookie
		if cookieToken, err := GetSessionTokenFromCookie(r); err == nil {
			token = cookieToken
		}

		// Priority 2: Authorization header (fallback)
		if token == "" {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httputil.RespondErrorWithCode(w, "authentication required", httputil.CodeMissingAuth, http.StatusUnauthorized)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				httputil.RespondErrorWithCode(w, "invalid authorization header format", httputil.CodeInvalidAuthHeader, http.StatusUnauthorized)
				return
			}
			token = parts[1]
		}

		claims, err := m.tokenService.VerifyToken(token)
		if err != nil {
			if errors.Is(err, ErrExpiredToken) {
				httputil.RespondErrorWithCode(w, "token has expired", httputil.CodeTokenExpired, http.StatusUnauthorized)
				return
			}
			httputil.RespondErrorWithCode(w, "invalid token", httputil.CodeInvalidToken, http.StatusUnauthorized)
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			httputil.RespondErrorWithCode(w, "invalid user ID in token", httputil.CodeInvalidTokenUserID, http.StatusUnauthorized)
			return
		}

		// A valid token for a deleted account is still unauthenticated.
		current, err := m.users.GetByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				httputil.RespondErrorWithCode(w, "invalid token", httputil.CodeInvalidToken, http.StatusUnauthorized)
				return
			}
			httputil.RespondErrorWithCode(w, "failed to authenticate request", httputil.CodeInternalError, http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), CurrentUserContextKey, current.ToProfile())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireVerified rejects authenticated-but-unverified users with 403 so they
// fail distinctly from unauthenticated ones. Must run after RequireAuth.
func (m *Middleware) RequireVerified(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current, ok := GetCurrentUser(r.Context())
		if !ok {
			httputil.RespondErrorWithCode(w, "authentication required", httputil.CodeMissingAuth, http.StatusUnauthorized)
			return
		}
		if !current.Verified {
			httputil.RespondErrorWithCode(w, "email not verified, please check your inbox", httputil.CodeEmailNotVerified, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetCurrentUser extracts the authenticated user's profile from the context.
func GetCurrentUser(ctx context.Context) (user.Profile, bool) {
	current, ok := ctx.Value(CurrentUserContextKey).(user.Profile)
	return current, ok
}
