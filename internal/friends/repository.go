package friends

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/cinetech/api/internal/database"
	"github.com/cinetech/api/internal/user"
)

var (
	ErrFriendNotFound = errors.New("no user found with that username")
	ErrAlreadyFriends = errors.New("user is already in your friends list")
	ErrSelfFriend     = errors.New("you cannot add yourself as a friend")
)

// Store captures friendship edge persistence. Implemented by Repository;
// tests substitute in-memory fakes.
type Store interface {
	Insert(ctx context.Context, userID, friendID uuid.UUID) error
	Delete(ctx context.Context, userID, friendID uuid.UUID) (bool, error)
	List(ctx context.Context, userID uuid.UUID) ([]user.Profile, error)
}

// Repository handles friendship persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Insert creates a directed friendship edge. The unique index on
// (user_id, friend_id) surfaces duplicates as ErrAlreadyFriends.
func (r *Repository) Insert(ctx context.Context, userID, friendID uuid.UUID) error {
	edge := &database.Friendship{
		UserID:   userID,
		FriendID: friendID,
	}

	_, err := r.db.NewInsert().
		Model(edge).
		Exec(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return ErrAlreadyFriends
		}
		return fmt.Errorf("failed to insert friendship: %w", err)
	}

	return nil
}

// Delete removes the edge if present and reports whether one was removed.
func (r *Repository) Delete(ctx context.Context, userID, friendID uuid.UUID) (bool, error) {
	result, err := r.db.NewDelete().
		Model((*database.Friendship)(nil)).
		Where("user_id = ?", userID).
		Where("friend_id = ?", friendID).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to delete friendship: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// List returns sanitized profiles for all of the user's friends, newest edge
// first.
func (r *Repository) List(ctx context.Context, userID uuid.UUID) ([]user.Profile, error) {
	var dbUsers []database.User
	err := r.db.NewSelect().
		Model(&dbUsers).
		Join("JOIN friendships AS f ON f.friend_id = u.id").
		Where("f.user_id = ?", userID).
		Order("f.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}

	profiles := make([]user.Profile, 0, len(dbUsers))
	for _, dbu := range dbUsers {
		profiles = append(profiles, user.Profile{
			ID:        dbu.ID,
			Email:     dbu.Email,
			Username:  dbu.Username,
			FirstName: dbu.FirstName,
			LastName:  dbu.LastName,
			Verified:  dbu.Verified,
		})
	}

	return profiles, nil
}
