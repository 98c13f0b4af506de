package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinetech/api/internal/user"
)

func newMiddlewareFixture(t *testing.T) (*Middleware, *PasetoService, *fakeUserStore) {
	t.Helper()
	tokens, err := NewPasetoService(testKey())
	require.NoError(t, err)
	store := newFakeUserStore()
	return NewMiddleware(tokens, store), tokens, store
}

func seedUser(t *testing.T, store *fakeUserStore, verified bool) *user.User {
	t.Helper()
	created, err := store.Create(context.Background(), user.CreateParams{
		Email:                 "ellen@example.com",
		Username:              "ellen",
		PasswordHash:          "$argon2id$...",
		VerificationCode:      "123456",
		VerificationExpiresAt: time.Now().Add(15 * time.Minute),
	})
	require.NoError(t, err)
	if verified {
		require.NoError(t, store.MarkVerified(context.Background(), created.ID))
	}
	return created
}

func echoCurrentUser(t *testing.T, captured *user.Profile) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current, ok := GetCurrentUser(r.Context())
		require.True(t, ok, "handler reached without a user in context")
		*captured = current
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuthWithBearerHeader(t *testing.T) {
	mw, tokens, store := newMiddlewareFixture(t)
	seeded := seedUser(t, store, true)

	token, err := tokens.CreateToken(seeded.ID, seeded.Email, time.Hour)
	require.NoError(t, err)

	var captured user.Profile
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.RequireAuth(echoCurrentUser(t, &captured)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, seeded.ID, captured.ID)
	assert.Equal(t, "ellen@example.com", captured.Email)
}

func TestRequireAuthWithSessionCookie(t *testing.T) {
	mw, tokens, store := newMiddlewareFixture(t)
	seeded := seedUser(t, store, true)

	token, err := tokens.CreateToken(seeded.ID, seeded.Email, time.Hour)
	require.NoError(t, err)

	var captured user.Profile
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rec := httptest.NewRecorder()

	mw.RequireAuth(echoCurrentUser(t, &captured)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, seeded.ID, captured.ID)
}

func TestRequireAuthMissingCredentials(t *testing.T) {
	mw, _, _ := newMiddlewareFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	mw.RequireAuth(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	mw, _, _ := newMiddlewareFixture(t)

	for _, header := range []string{"Bearer", "Basic dXNlcg==", "Bearer a b"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		mw.RequireAuth(http.NotFoundHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header=%q", header)
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	mw, tokens, store := newMiddlewareFixture(t)
	seeded := seedUser(t, store, true)

	token, err := tokens.CreateToken(seeded.ID, seeded.Email, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.RequireAuth(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthDeletedAccount(t *testing.T) {
	mw, tokens, _ := newMiddlewareFixture(t)

	// Valid token for an account that no longer exists
	token, err := tokens.CreateToken(uuid.New(), "ghost@example.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.RequireAuth(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireVerifiedBlocksUnverified(t *testing.T) {
	mw, tokens, store := newMiddlewareFixture(t)
	seeded := seedUser(t, store, false)

	token, err := tokens.CreateToken(seeded.ID, seeded.Email, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler := mw.RequireAuth(mw.RequireVerified(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireVerifiedAllowsVerified(t *testing.T) {
	mw, tokens, store := newMiddlewareFixture(t)
	seeded := seedUser(t, store, true)

	token, err := tokens.CreateToken(seeded.ID, seeded.Email, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler := mw.RequireAuth(mw.RequireVerified(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionCookieLifecycle(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "some-token", true, 7*24*time.Hour)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]

	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)

	rec = httptest.NewRecorder()
	ClearSessionCookie(rec, true)
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)
}
