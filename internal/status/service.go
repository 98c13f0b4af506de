package status

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service implements the per-user media status operations. All mutations of a
// (user, media) pair happen inside one transaction so the watched/watch-later
// exclusion never leaves a visible intermediate state.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Get derives the favorite/watched/watchLater triple for a media entry.
func (s *Service) Get(ctx context.Context, userID uuid.UUID, mediaID int64, mediaType MediaType) (Flags, error) {
	if mediaID <= 0 {
		return Flags{}, ErrInvalidMediaID
	}
	if _, err := ParseMediaType(string(mediaType)); err != nil {
		return Flags{}, err
	}

	return s.store.Flags(ctx, userID, mediaID, mediaType)
}

// Toggle flips a status for a (user, media) pair. Turning a status on removes
// its exclusive counterpart (WATCHED vs WATCH_LATER) in the same transaction.
// Returns whether the status is now enabled plus the full recomputed triple so
// clients can reconcile all three indicators from one round trip.
func (s *Service) Toggle(ctx context.Context, row Row) (bool, Flags, error) {
	if row.MediaID <= 0 {
		return false, Flags{}, ErrInvalidMediaID
	}
	if _, err := ParseMediaType(string(row.MediaType)); err != nil {
		return false, Flags{}, err
	}
	if _, err := ParseStatus(string(row.Status)); err != nil {
		return false, Flags{}, err
	}

	var enabled bool
	var flags Flags

	err := s.store.RunInTx(ctx, func(ctx context.Context, tx Store) error {
		removed, err := tx.Delete(ctx, row.Key)
		if err != nil {
			return err
		}

		if removed {
			enabled = false
		} else {
			if err := tx.Insert(ctx, row); err != nil {
				return err
			}
			if excluded := row.Status.excludedBy(); excluded != "" {
				counterpart := row.Key
				counterpart.Status = excluded
				if _, err := tx.Delete(ctx, counterpart); err != nil {
					return err
				}
			}
			enabled = true
		}

		flags, err = tx.Flags(ctx, row.UserID, row.MediaID, row.MediaType)
		return err
	})
	if err != nil {
		return false, Flags{}, fmt.Errorf("failed to toggle status: %w", err)
	}

	return enabled, flags, nil
}

// Remove deletes a status row if present. Idempotent; reports whether a row
// was actually removed.
func (s *Service) Remove(ctx context.Context, key Key) (bool, error) {
	if key.MediaID <= 0 {
		return false, ErrInvalidMediaID
	}
	if _, err := ParseMediaType(string(key.MediaType)); err != nil {
		return false, err
	}
	if _, err := ParseStatus(string(key.Status)); err != nil {
		return false, err
	}

	return s.store.Delete(ctx, key)
}

// ListByStatus returns the user's list for one status, newest first, carrying
// the cached title/poster fields.
func (s *Service) ListByStatus(ctx context.Context, userID uuid.UUID, status Status) ([]Item, error) {
	if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}

	return s.store.ListByStatus(ctx, userID, status)
}
