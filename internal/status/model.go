package status

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidMediaType = errors.New("media type must be movie or tv")
	ErrInvalidStatus    = errors.New("unrecognized status value")
	ErrInvalidMediaID   = errors.New("media id must be a positive number")
)

// MediaType identifies which external catalog namespace a media id belongs to.
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// ParseMediaType validates a raw media type string.
func ParseMediaType(raw string) (MediaType, error) {
	switch MediaType(raw) {
	case MediaTypeMovie, MediaTypeTV:
		return MediaType(raw), nil
	default:
		return "", ErrInvalidMediaType
	}
}

// Status is one of the three per-user media markers. WATCHED and WATCH_LATER
// are mutually exclusive for a given media; FAVORITE is independent.
type Status string

const (
	StatusFavorite   Status = "FAVORITE"
	StatusWatched    Status = "WATCHED"
	StatusWatchLater Status = "WATCH_LATER"
)

// ParseStatus validates a raw status string.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusFavorite, StatusWatched, StatusWatchLater:
		return Status(raw), nil
	default:
		return "", ErrInvalidStatus
	}
}

// excludedBy returns the status that must be cleared when this one is enabled,
// or "" if the status is independent.
func (s Status) excludedBy() Status {
	switch s {
	case StatusWatched:
		return StatusWatchLater
	case StatusWatchLater:
		return StatusWatched
	default:
		return ""
	}
}

// Key identifies a single status row.
type Key struct {
	UserID    uuid.UUID
	MediaID   int64
	MediaType MediaType
	Status    Status
}

// Row is a status row together with the cached display fields used to render
// lists without a second catalog lookup.
type Row struct {
	Key
	Title      string
	PosterPath string
}

// Flags is the derived three-boolean view of a (user, media) pair.
type Flags struct {
	Favorite   bool `json:"favorite"`
	Watched    bool `json:"watched"`
	WatchLater bool `json:"watchLater"`
}

// Item is a list entry returned by the favorites/watched/watch-later views.
type Item struct {
	MediaID    int64     `json:"mediaId"`
	MediaType  MediaType `json:"mediaType"`
	Status     Status    `json:"status"`
	Title      string    `json:"title,omitempty"`
	PosterPath string    `json:"posterPath,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
