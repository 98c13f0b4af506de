package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cinetech/api/internal/httputil"
	"github.com/cinetech/api/internal/status"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

// Search godoc
// @Summary Search the catalog
// @Description Searches the external catalog for movies or TV shows matching a query
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param type query string true "Media type (movie or tv)"
// @Param query query string true "Search query"
// @Param page query int false "Result page (default 1)"
// @Success 200 {object} SearchResult
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 502 {object} httputil.ErrorResponse
// @Router /api/catalog/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	mediaType, ok := parseMediaTypeQuery(w, r.URL.Query().Get("type"))
	if !ok {
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		httputil.RespondErrorWithCode(w, "search query is required", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			httputil.RespondErrorWithCode(w, "invalid page number", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
			return
		}
		page = parsed
	}

	result, err := h.client.Search(r.Context(), string(mediaType), query, page)
	if err != nil {
		h.respondClientError(w, err)
		return
	}

	httputil.RespondJSON(w, result, http.StatusOK)
}

// Details godoc
// @Summary Get media details
// @Description Fetches the full catalog record for a single movie or TV show
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param mediaType path string true "Media type (movie or tv)"
// @Param mediaID path int true "Catalog media ID"
// @Success 200 {object} Media
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 502 {object} httputil.ErrorResponse
// @Router /api/catalog/{mediaType}/{mediaID} [get]
func (h *Handler) Details(w http.ResponseWriter, r *http.Request) {
	mediaType, ok := parseMediaTypeQuery(w, chi.URLParam(r, "mediaType"))
	if !ok {
		return
	}

	mediaID, err := strconv.ParseInt(chi.URLParam(r, "mediaID"), 10, 64)
	if err != nil || mediaID <= 0 {
		httputil.RespondErrorWithCode(w, "media id must be a positive number", httputil.CodeInvalidMediaID, http.StatusBadRequest)
		return
	}

	media, err := h.client.Details(r.Context(), string(mediaType), mediaID)
	if err != nil {
		h.respondClientError(w, err)
		return
	}

	httputil.RespondJSON(w, media, http.StatusOK)
}

// Trending godoc
// @Summary List trending media
// @Description Fetches the catalog's daily trending list for a media type
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param mediaType path string true "Media type (movie or tv)"
// @Success 200 {object} SearchResult
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 502 {object} httputil.ErrorResponse
// @Router /api/catalog/trending/{mediaType} [get]
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	mediaType, ok := parseMediaTypeQuery(w, chi.URLParam(r, "mediaType"))
	if !ok {
		return
	}

	result, err := h.client.Trending(r.Context(), string(mediaType))
	if err != nil {
		h.respondClientError(w, err)
		return
	}

	httputil.RespondJSON(w, result, http.StatusOK)
}

func (h *Handler) respondClientError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httputil.RespondErrorWithCode(w, "media not found", httputil.CodeInvalidMediaID, http.StatusNotFound)
	case errors.Is(err, ErrUpstream):
		httputil.RespondErrorWithCode(w, "catalog is temporarily unavailable", httputil.CodeCatalogUnavailable, http.StatusBadGateway)
	default:
		httputil.RespondErrorWithCode(w, "internal server error", httputil.CodeInternalError, http.StatusInternalServerError)
	}
}

func parseMediaTypeQuery(w http.ResponseWriter, raw string) (status.MediaType, bool) {
	mediaType, err := status.ParseMediaType(raw)
	if err != nil {
		httputil.RespondErrorWithCode(w, "media type must be 'movie' or 'tv'", httputil.CodeInvalidMediaType, http.StatusBadRequest)
		return "", false
	}

	return mediaType, true
}
