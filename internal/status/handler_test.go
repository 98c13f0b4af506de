package status

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinetech/api/internal/auth"
	"github.com/cinetech/api/internal/user"
)

func newStatusRouter(handler *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/api/user/status/toggle", handler.Toggle)
	r.Get("/api/user/favorites", handler.ListFavorites)
	r.Get("/api/user/watched", handler.ListWatched)
	r.Get("/api/user/watchlater", handler.ListWatchLater)
	r.Get("/api/user/status/{mediaType}/{mediaID}", handler.Get)
	r.Delete("/api/user/status/{status}/{mediaType}/{mediaID}", handler.Remove)
	return r
}

// asUser injects an authenticated profile, standing in for RequireAuth.
func asUser(req *http.Request, userID uuid.UUID) *http.Request {
	profile := user.Profile{ID: userID, Email: "ellen@example.com", Username: "ellen", Verified: true}
	ctx := context.WithValue(req.Context(), auth.CurrentUserContextKey, profile)
	return req.WithContext(ctx)
}

func toggleBody(t *testing.T, status string) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(ToggleRequest{
		MediaID:    949,
		MediaType:  "movie",
		Status:     status,
		Title:      "Heat",
		PosterPath: "/heat.jpg",
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestToggleEndpoint(t *testing.T) {
	router := newStatusRouter(NewHandler(NewService(newFakeStore())))
	userID := uuid.New()

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/user/status/toggle", toggleBody(t, "FAVORITE")), userID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ToggleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Enabled)
	assert.True(t, resp.Favorite)
	assert.False(t, resp.Watched)
}

func TestToggleEndpointExclusion(t *testing.T) {
	router := newStatusRouter(NewHandler(NewService(newFakeStore())))
	userID := uuid.New()

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/user/status/toggle", toggleBody(t, "WATCH_LATER")), userID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = asUser(httptest.NewRequest(http.MethodPost, "/api/user/status/toggle", toggleBody(t, "WATCHED")), userID)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ToggleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Watched)
	assert.False(t, resp.WatchLater)
}

func TestToggleEndpointRejectsBadInput(t *testing.T) {
	router := newStatusRouter(NewHandler(NewService(newFakeStore())))
	userID := uuid.New()

	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"unknown status", `{"mediaId":949,"mediaType":"movie","status":"LOVED"}`},
		{"unknown media type", `{"mediaId":949,"mediaType":"book","status":"FAVORITE"}`},
		{"zero media id", `{"mediaId":0,"mediaType":"movie","status":"FAVORITE"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := asUser(httptest.NewRequest(http.MethodPost, "/api/user/status/toggle", bytes.NewBufferString(tt.body)), userID)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestToggleEndpointRequiresUser(t *testing.T) {
	router := newStatusRouter(NewHandler(NewService(newFakeStore())))

	req := httptest.NewRequest(http.MethodPost, "/api/user/status/toggle", toggleBody(t, "FAVORITE"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetEndpoint(t *testing.T) {
	router := newStatusRouter(NewHandler(NewService(newFakeStore())))
	userID := uuid.New()

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/user/status/toggle", toggleBody(t, "WATCHED")), userID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = asUser(httptest.NewRequest(http.MethodGet, "/api/user/status/movie/949", nil), userID)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var flags Flags
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &flags))
	assert.True(t, flags.Watched)
	assert.False(t, flags.Favorite)
}

func TestGetEndpointBadPath(t *testing.T) {
	router := newStatusRouter(NewHandler(NewService(newFakeStore())))
	userID := uuid.New()

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/user/status/book/949", nil), userID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = asUser(httptest.NewRequest(http.MethodGet, "/api/user/status/movie/zero", nil), userID)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveEndpoint(t *testing.T) {
	router := newStatusRouter(NewHandler(NewService(newFakeStore())))
	userID := uuid.New()

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/user/status/toggle", toggleBody(t, "FAVORITE")), userID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = asUser(httptest.NewRequest(http.MethodDelete, "/api/user/status/FAVORITE/movie/949", nil), userID)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp RemoveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Removed)

	// A second delete reports nothing removed
	req = asUser(httptest.NewRequest(http.MethodDelete, "/api/user/status/FAVORITE/movie/949", nil), userID)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Removed)
}

func TestListEndpoints(t *testing.T) {
	router := newStatusRouter(NewHandler(NewService(newFakeStore())))
	userID := uuid.New()

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/user/status/toggle", toggleBody(t, "WATCH_LATER")), userID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = asUser(httptest.NewRequest(http.MethodGet, "/api/user/watchlater", nil), userID)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var listResp ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	require.Len(t, listResp.Items, 1)
	assert.Equal(t, int64(949), listResp.Items[0].MediaID)
	assert.Equal(t, "Heat", listResp.Items[0].Title)

	// The other lists stay empty
	for _, path := range []string{"/api/user/favorites", "/api/user/watched"} {
		req = asUser(httptest.NewRequest(http.MethodGet, path, nil), userID)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, path)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
		assert.Empty(t, listResp.Items, path)
	}
}
