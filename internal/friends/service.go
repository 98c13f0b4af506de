package friends

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cinetech/api/internal/user"
)

// UserDirectory resolves usernames to accounts. Implemented by user.Repository.
type UserDirectory interface {
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}

// Service implements the friends list operations.
type Service struct {
	store Store
	users UserDirectory
}

func NewService(store Store, users UserDirectory) *Service {
	return &Service{store: store, users: users}
}

// Add resolves a username and creates a directed edge from the user to the
// resolved friend. Duplicate edges and self-friending are rejected.
func (s *Service) Add(ctx context.Context, userID uuid.UUID, friendUsername string) (user.Profile, error) {
	friendUsername = strings.TrimSpace(friendUsername)
	if friendUsername == "" {
		return user.Profile{}, ErrFriendNotFound
	}

	friend, err := s.users.GetByUsername(ctx, friendUsername)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.Profile{}, ErrFriendNotFound
		}
		return user.Profile{}, fmt.Errorf("failed to resolve username: %w", err)
	}

	if friend.ID == userID {
		return user.Profile{}, ErrSelfFriend
	}

	if err := s.store.Insert(ctx, userID, friend.ID); err != nil {
		if errors.Is(err, ErrAlreadyFriends) {
			return user.Profile{}, ErrAlreadyFriends
		}
		return user.Profile{}, fmt.Errorf("failed to add friend: %w", err)
	}

	return friend.ToProfile(), nil
}

// Remove deletes the edge if present; a missing edge is a no-op.
func (s *Service) Remove(ctx context.Context, userID, friendID uuid.UUID) (bool, error) {
	return s.store.Delete(ctx, userID, friendID)
}

// List returns the user's friends as sanitized profiles.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]user.Profile, error) {
	return s.store.List(ctx, userID)
}
