package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cinetech/api/internal/logging"
)

var (
	// ErrUpstream indicates the catalog provider returned an error or could
	// not be reached.
	ErrUpstream = errors.New("catalog provider unavailable")

	// ErrNotFound indicates the provider has no entry for the requested media.
	ErrNotFound = errors.New("media not found")
)

// Media is a single catalog entry. Movies carry Title and ReleaseDate, TV
// shows carry Name and FirstAirDate; the provider leaves the other pair empty.
type Media struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int64   `json:"vote_count,omitempty"`
	Genres       []Genre `json:"genres,omitempty"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SearchResult is a paginated provider response.
type SearchResult struct {
	Page         int     `json:"page"`
	Results      []Media `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Client queries the external catalog provider, serving repeated lookups from
// the cache. Cache failures degrade to direct provider calls.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cache      Cache
	logger     *logging.Logger
}

func NewClient(baseURL, apiKey string, cache Cache, logger *logging.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		cache:      cache,
		logger:     logger,
	}
}

// Search queries the provider for movies or TV shows matching the query.
func (c *Client) Search(ctx context.Context, mediaType, query string, page int) (*SearchResult, error) {
	if page < 1 {
		page = 1
	}

	cacheKey := fmt.Sprintf("search:%s:%s:%d", mediaType, query, page)

	var result SearchResult
	if c.cacheGet(ctx, cacheKey, &result) {
		return &result, nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))

	if err := c.fetch(ctx, fmt.Sprintf("/search/%s", mediaType), params, &result); err != nil {
		return nil, err
	}

	c.cacheSet(ctx, cacheKey, &result)

	return &result, nil
}

// Details fetches the full catalog record for a single movie or TV show.
func (c *Client) Details(ctx context.Context, mediaType string, mediaID int64) (*Media, error) {
	cacheKey := fmt.Sprintf("details:%s:%d", mediaType, mediaID)

	var media Media
	if c.cacheGet(ctx, cacheKey, &media) {
		return &media, nil
	}

	if err := c.fetch(ctx, fmt.Sprintf("/%s/%d", mediaType, mediaID), nil, &media); err != nil {
		return nil, err
	}

	c.cacheSet(ctx, cacheKey, &media)

	return &media, nil
}

// Trending fetches the provider's daily trending list for a media type.
func (c *Client) Trending(ctx context.Context, mediaType string) (*SearchResult, error) {
	cacheKey := fmt.Sprintf("trending:%s", mediaType)

	var result SearchResult
	if c.cacheGet(ctx, cacheKey, &result) {
		return &result, nil
	}

	if err := c.fetch(ctx, fmt.Sprintf("/trending/%s/day", mediaType), nil, &result); err != nil {
		return nil, err
	}

	c.cacheSet(ctx, cacheKey, &result)

	return &result, nil
}

func (c *Client) fetch(ctx context.Context, path string, params url.Values, dest any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Catalog provider request failed", "path", path, "error", err)
		return ErrUpstream
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		c.logger.Error("Catalog provider returned error", "path", path, "status", resp.StatusCode)
		return ErrUpstream
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		c.logger.Error("Failed to decode catalog response", "path", path, "error", err)
		return ErrUpstream
	}

	return nil
}

func (c *Client) cacheGet(ctx context.Context, key string, dest any) bool {
	if c.cache == nil {
		return false
	}

	hit, err := c.cache.Get(ctx, key, dest)
	if err != nil {
		c.logger.Warn("Catalog cache read failed", "key", key, "error", err)
		return false
	}

	return hit
}

func (c *Client) cacheSet(ctx context.Context, key string, value any) {
	if c.cache == nil {
		return
	}

	if err := c.cache.Set(ctx, key, value); err != nil {
		c.logger.Warn("Catalog cache write failed", "key", key, "error", err)
	}
}
