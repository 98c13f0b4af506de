package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinetech/api/internal/logging"
)

type memoryCache struct {
	values map[string][]byte
	getErr error
	setErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string][]byte)}
}

func (c *memoryCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	data, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *memoryCache) Set(ctx context.Context, key string, value any) error {
	if c.setErr != nil {
		return c.setErr
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = data
	return nil
}

func newProviderServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestSearchPassesQueryAndKey(t *testing.T) {
	var gotPath, gotQuery, gotKey, gotPage string
	server := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("query")
		gotKey = r.URL.Query().Get("api_key")
		gotPage = r.URL.Query().Get("page")
		json.NewEncoder(w).Encode(SearchResult{
			Page:         2,
			Results:      []Media{{ID: 949, Title: "Heat"}},
			TotalPages:   5,
			TotalResults: 93,
		})
	})

	client := NewClient(server.URL, "secret-key", nil, logging.NewLogger(true))

	result, err := client.Search(context.Background(), "movie", "heat", 2)

	require.NoError(t, err)
	assert.Equal(t, "/search/movie", gotPath)
	assert.Equal(t, "heat", gotQuery)
	assert.Equal(t, "secret-key", gotKey)
	assert.Equal(t, "2", gotPage)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "Heat", result.Results[0].Title)
}

func TestSearchClampsPage(t *testing.T) {
	var gotPage string
	server := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		json.NewEncoder(w).Encode(SearchResult{Page: 1})
	})

	client := NewClient(server.URL, "secret-key", nil, logging.NewLogger(true))

	_, err := client.Search(context.Background(), "tv", "alien", 0)

	require.NoError(t, err)
	assert.Equal(t, "1", gotPage)
}

func TestDetailsServedFromCache(t *testing.T) {
	calls := 0
	server := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(Media{ID: 949, Title: "Heat", Overview: "A heist thriller."})
	})

	client := NewClient(server.URL, "secret-key", newMemoryCache(), logging.NewLogger(true))

	first, err := client.Details(context.Background(), "movie", 949)
	require.NoError(t, err)
	second, err := client.Details(context.Background(), "movie", 949)
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second lookup must come from the cache")
	assert.Equal(t, first, second)
}

func TestCacheFailureDegradesToDirectFetch(t *testing.T) {
	calls := 0
	server := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(Media{ID: 949, Title: "Heat"})
	})

	cache := newMemoryCache()
	cache.getErr = errors.New("connection refused")
	cache.setErr = errors.New("connection refused")
	client := NewClient(server.URL, "secret-key", cache, logging.NewLogger(true))

	media, err := client.Details(context.Background(), "movie", 949)

	require.NoError(t, err)
	assert.Equal(t, "Heat", media.Title)
	assert.Equal(t, 1, calls)
}

func TestDetailsNotFound(t *testing.T) {
	server := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	client := NewClient(server.URL, "secret-key", nil, logging.NewLogger(true))

	_, err := client.Details(context.Background(), "movie", 999999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpstreamErrorsMapToErrUpstream(t *testing.T) {
	server := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	client := NewClient(server.URL, "secret-key", nil, logging.NewLogger(true))

	_, err := client.Trending(context.Background(), "movie")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestUnreachableProviderMapsToErrUpstream(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "secret-key", nil, logging.NewLogger(true))

	_, err := client.Trending(context.Background(), "movie")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestMalformedResponseMapsToErrUpstream(t *testing.T) {
	server := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	client := NewClient(server.URL, "secret-key", nil, logging.NewLogger(true))

	_, err := client.Trending(context.Background(), "tv")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestTrendingCachesPerMediaType(t *testing.T) {
	server := newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(SearchResult{Results: []Media{{ID: 1}}})
	})

	cache := newMemoryCache()
	client := NewClient(server.URL, "secret-key", cache, logging.NewLogger(true))

	_, err := client.Trending(context.Background(), "movie")
	require.NoError(t, err)
	_, err = client.Trending(context.Background(), "tv")
	require.NoError(t, err)

	assert.Contains(t, cache.values, "trending:movie")
	assert.Contains(t, cache.values, "trending:tv")
}

func TestClientTimeoutConfigured(t *testing.T) {
	client := NewClient("http://example.com", "secret-key", nil, logging.NewLogger(true))
	assert.Equal(t, 10*time.Second, client.httpClient.Timeout)
}
