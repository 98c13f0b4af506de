package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinetech/api/internal/logging"
)

func newCatalogRouter(handler *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/catalog/search", handler.Search)
	r.Get("/api/catalog/trending/{mediaType}", handler.Trending)
	r.Get("/api/catalog/{mediaType}/{mediaID}", handler.Details)
	return r
}

func TestSearchEndpoint(t *testing.T) {
	server := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(SearchResult{Results: []Media{{ID: 949, Title: "Heat"}}, TotalResults: 1})
	})
	router := newCatalogRouter(NewHandler(NewClient(server.URL, "secret-key", nil, logging.NewLogger(true))))

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/search?type=movie&query=heat", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Results, 1)
	assert.Equal(t, "Heat", result.Results[0].Title)
}

func TestSearchEndpointValidation(t *testing.T) {
	router := newCatalogRouter(NewHandler(NewClient("http://unused", "secret-key", nil, logging.NewLogger(true))))

	tests := []struct {
		name string
		url  string
	}{
		{"missing type", "/api/catalog/search?query=heat"},
		{"bad type", "/api/catalog/search?type=book&query=heat"},
		{"missing query", "/api/catalog/search?type=movie"},
		{"blank query", "/api/catalog/search?type=movie&query=%20"},
		{"bad page", "/api/catalog/search?type=movie&query=heat&page=zero"},
		{"negative page", "/api/catalog/search?type=movie&query=heat&page=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestDetailsEndpoint(t *testing.T) {
	server := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Media{ID: 949, Title: "Heat", VoteAverage: 8.3})
	})
	router := newCatalogRouter(NewHandler(NewClient(server.URL, "secret-key", nil, logging.NewLogger(true))))

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/movie/949", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var media Media
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &media))
	assert.Equal(t, int64(949), media.ID)
	assert.InDelta(t, 8.3, media.VoteAverage, 0.001)
}

func TestDetailsEndpointNotFound(t *testing.T) {
	server := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	router := newCatalogRouter(NewHandler(NewClient(server.URL, "secret-key", nil, logging.NewLogger(true))))

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/movie/999999999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTrendingEndpointUpstreamFailure(t *testing.T) {
	server := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	router := newCatalogRouter(NewHandler(NewClient(server.URL, "secret-key", nil, logging.NewLogger(true))))

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/trending/movie", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestDetailsEndpointBadPath(t *testing.T) {
	router := newCatalogRouter(NewHandler(NewClient("http://unused", "secret-key", nil, logging.NewLogger(true))))

	for _, path := range []string{"/api/catalog/book/949", "/api/catalog/movie/nope", "/api/catalog/movie/-1"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}
