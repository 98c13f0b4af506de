package status

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cinetech/api/internal/auth"
	"github.com/cinetech/api/internal/httputil"
	"github.com/cinetech/api/internal/logging"
)

// Handler contains HTTP handlers for the media status endpoints. All routes
// are mounted behind RequireAuth + RequireVerified.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ToggleRequest represents the toggle request body
type ToggleRequest struct {
	MediaID    int64  `json:"mediaId"`
	MediaType  string `json:"mediaType"`
	Status     string `json:"status"`
	Title      string `json:"title,omitempty"`
	PosterPath string `json:"posterPath,omitempty"`
}

// ToggleResponse carries the toggled flag plus the recomputed triple
type ToggleResponse struct {
	Success bool `json:"success"`
	Enabled bool `json:"enabled"`
	Flags
}

// RemoveResponse reports whether a row was actually deleted
type RemoveResponse struct {
	Removed bool `json:"removed"`
}

// ListResponse wraps a status list
type ListResponse struct {
	Items []Item `json:"items"`
}

// Get handles GET /api/user/status/{mediaType}/{mediaID}
// @Summary      Media status flags
// @Description  Return the favorite/watched/watchLater triple for one media entry.
// @Tags         status
// @Produce      json
// @Security     BearerAuth
// @Param        mediaType path string true "movie or tv"
// @Param        mediaID   path int    true "External catalog id"
// @Success      200 {object} Flags
// @Failure      400 {object} httputil.ErrorResponse
// @Router       /api/user/status/{mediaType}/{mediaID} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	current, ok := auth.GetCurrentUser(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "authentication required", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	mediaType, mediaID, ok := parseMediaPath(w, r)
	if !ok {
		return
	}

	flags, err := h.service.Get(r.Context(), current.ID, mediaID, mediaType)
	if err != nil {
		logger.Error("failed to get media status", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to get media status", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, flags, http.StatusOK)
}

// Toggle handles POST /api/user/status/toggle
// @Summary      Toggle a media status
// @Description  Flip FAVORITE, WATCHED or WATCH_LATER for a media entry. Enabling WATCHED clears WATCH_LATER and vice versa.
// @Tags         status
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ToggleRequest true "Media reference and status"
// @Success      200 {object} ToggleResponse
// @Failure      400 {object} httputil.ErrorResponse
// @Router       /api/user/status/toggle [post]
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	current, ok := auth.GetCurrentUser(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "authentication required", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid toggle request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	enabled, flags, err := h.service.Toggle(r.Context(), Row{
		Key: Key{
			UserID:    current.ID,
			MediaID:   req.MediaID,
			MediaType: MediaType(req.MediaType),
			Status:    Status(req.Status),
		},
		Title:      req.Title,
		PosterPath: req.PosterPath,
	})
	if err != nil {
		if respondValidationError(w, logger, err) {
			return
		}
		logger.Error("failed to toggle status", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to toggle status", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("status toggled",
		"media_id", req.MediaID,
		"media_type", req.MediaType,
		"status", req.Status,
		"enabled", enabled,
	)

	httputil.RespondJSON(w, ToggleResponse{Success: true, Enabled: enabled, Flags: flags}, http.StatusOK)
}

// Remove handles DELETE /api/user/status/{status}/{mediaType}/{mediaID}
// @Summary      Remove a media status
// @Description  Delete one status row if present. Idempotent.
// @Tags         status
// @Produce      json
// @Security     BearerAuth
// @Param        status    path string true "FAVORITE, WATCHED or WATCH_LATER"
// @Param        mediaType path string true "movie or tv"
// @Param        mediaID   path int    true "External catalog id"
// @Success      200 {object} RemoveResponse
// @Failure      400 {object} httputil.ErrorResponse
// @Router       /api/user/status/{status}/{mediaType}/{mediaID} [delete]
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	current, ok := auth.GetCurrentUser(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "authentication required", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	mediaType, mediaID, ok := parseMediaPath(w, r)
	if !ok {
		return
	}

	statusValue, err := ParseStatus(chi.URLParam(r, "status"))
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidStatus, http.StatusBadRequest)
		return
	}

	removed, err := h.service.Remove(r.Context(), Key{
		UserID:    current.ID,
		MediaID:   mediaID,
		MediaType: mediaType,
		Status:    statusValue,
	})
	if err != nil {
		logger.Error("failed to remove status", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to remove status", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, RemoveResponse{Removed: removed}, http.StatusOK)
}

// ListFavorites handles GET /api/user/favorites
// @Summary      Favorite list
// @Tags         status
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ListResponse
// @Router       /api/user/favorites [get]
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, StatusFavorite)
}

// ListWatched handles GET /api/user/watched
// @Summary      Watched list
// @Tags         status
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ListResponse
// @Router       /api/user/watched [get]
func (h *Handler) ListWatched(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, StatusWatched)
}

// ListWatchLater handles GET /api/user/watchlater
// @Summary      Watch-later list
// @Tags         status
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ListResponse
// @Router       /api/user/watchlater [get]
func (h *Handler) ListWatchLater(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, StatusWatchLater)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, statusValue Status) {
	logger := logging.GetLoggerFromContext(r.Context())

	current, ok := auth.GetCurrentUser(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "authentication required", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	items, err := h.service.ListByStatus(r.Context(), current.ID, statusValue)
	if err != nil {
		logger.Error("failed to list statuses", "status", string(statusValue), "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list items", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, ListResponse{Items: items}, http.StatusOK)
}

// parseMediaPath extracts and validates the {mediaType}/{mediaID} path segments,
// writing the 400 response itself when they are malformed.
func parseMediaPath(w http.ResponseWriter, r *http.Request) (MediaType, int64, bool) {
	mediaType, err := ParseMediaType(chi.URLParam(r, "mediaType"))
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidMediaType, http.StatusBadRequest)
		return "", 0, false
	}

	mediaID, err := strconv.ParseInt(chi.URLParam(r, "mediaID"), 10, 64)
	if err != nil || mediaID <= 0 {
		httputil.RespondErrorWithCode(w, "media id must be a positive number", httputil.CodeInvalidMediaID, http.StatusBadRequest)
		return "", 0, false
	}

	return mediaType, mediaID, true
}

// respondValidationError maps the service's validation errors to 400 responses.
// Returns false when the error is not a validation error.
func respondValidationError(w http.ResponseWriter, logger *logging.Logger, err error) bool {
	switch {
	case errors.Is(err, ErrInvalidMediaType):
		logger.Warn("validation failed", "error", err.Error())
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidMediaType, http.StatusBadRequest)
	case errors.Is(err, ErrInvalidStatus):
		logger.Warn("validation failed", "error", err.Error())
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidStatus, http.StatusBadRequest)
	case errors.Is(err, ErrInvalidMediaID):
		logger.Warn("validation failed", "error", err.Error())
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidMediaID, http.StatusBadRequest)
	default:
		return false
	}
	return true
}
