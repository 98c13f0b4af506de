package friends

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cinetech/api/internal/auth"
	"github.com/cinetech/api/internal/httputil"
	"github.com/cinetech/api/internal/logging"
	"github.com/cinetech/api/internal/user"
)

// Handler contains HTTP handlers for the friends endpoints. Mounted behind
// RequireAuth + RequireVerified.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AddRequest represents the add-friend request body
type AddRequest struct {
	Username string `json:"username"`
}

// AddResponse returns the added friend's profile
type AddResponse struct {
	Friend user.Profile `json:"friend"`
}

// RemoveResponse reports whether an edge was actually deleted
type RemoveResponse struct {
	Removed bool `json:"removed"`
}

// ListResponse wraps the friends list
type ListResponse struct {
	Friends []user.Profile `json:"friends"`
}

// Add handles POST /api/friends
// @Summary      Add a friend
// @Description  Resolve a username and add that user to the caller's friends list.
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AddRequest true "Friend's username"
// @Success      201 {object} AddResponse
// @Failure      404 {object} httputil.ErrorResponse "Unknown username"
// @Failure      409 {object} httputil.ErrorResponse "Already friends"
// @Router       /api/friends [post]
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	current, ok := auth.GetCurrentUser(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "authentication required", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid add friend request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	friend, err := h.service.Add(r.Context(), current.ID, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, ErrFriendNotFound):
			logger.Warn("add friend failed: username not found", "username", req.Username)
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeFriendNotFound, http.StatusNotFound)
		case errors.Is(err, ErrSelfFriend):
			logger.Warn("add friend failed: self friend")
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeCannotFriendSelf, http.StatusBadRequest)
		case errors.Is(err, ErrAlreadyFriends):
			logger.Warn("add friend failed: duplicate edge", "username", req.Username)
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeFriendAlreadyAdded, http.StatusConflict)
		default:
			logger.Error("add friend failed: internal error", "error", err.Error())
			httputil.RespondErrorWithCode(w, "failed to add friend", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	logger.Info("friend added", "friend_id", friend.ID)

	httputil.RespondJSON(w, AddResponse{Friend: friend}, http.StatusCreated)
}

// Remove handles DELETE /api/friends/{friendID}
// @Summary      Remove a friend
// @Description  Delete the friendship edge if present. Idempotent.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        friendID path string true "Friend's user id"
// @Success      200 {object} RemoveResponse
// @Failure      400 {object} httputil.ErrorResponse
// @Router       /api/friends/{friendID} [delete]
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	current, ok := auth.GetCurrentUser(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "authentication required", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	friendID, err := uuid.Parse(chi.URLParam(r, "friendID"))
	if err != nil {
		httputil.RespondErrorWithCode(w, "invalid friend id", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	removed, err := h.service.Remove(r.Context(), current.ID, friendID)
	if err != nil {
		logger.Error("remove friend failed: internal error", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to remove friend", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, RemoveResponse{Removed: removed}, http.StatusOK)
}

// List handles GET /api/friends
// @Summary      List friends
// @Description  Return sanitized profiles for all of the caller's friends.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ListResponse
// @Router       /api/friends [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	current, ok := auth.GetCurrentUser(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "authentication required", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	profiles, err := h.service.List(r.Context(), current.ID)
	if err != nil {
		logger.Error("list friends failed: internal error", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list friends", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, ListResponse{Friends: profiles}, http.StatusOK)
}
