package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/cinetech/api/internal/database"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateUsername = errors.New("username already exists")
)

// CreateParams carries the fields required to persist a new, unverified user.
type CreateParams struct {
	Email                 string
	Username              string
	FirstName             string
	LastName              string
	PasswordHash          string
	VerificationCode      string
	VerificationExpiresAt time.Time
}

// Repository handles user data persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new unverified user into the database
func (r *Repository) Create(ctx context.Context, params CreateParams) (*User, error) {
	dbUser := &database.User{
		ID:                    uuid.New(),
		Email:                 params.Email,
		Username:              params.Username,
		FirstName:             params.FirstName,
		LastName:              params.LastName,
		PasswordHash:          params.PasswordHash,
		VerificationCode:      &params.VerificationCode,
		VerificationExpiresAt: &params.VerificationExpiresAt,
		Verified:              false,
	}

	_, err := r.db.NewInsert().
		Model(dbUser).
		Returning("*").
		Exec(ctx)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			if strings.Contains(err.Error(), "username") {
				return nil, ErrDuplicateUsername
			}
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// GetByEmail retrieves a user by email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	dbUser := new(database.User)
	err := r.db.NewSelect().
		Model(dbUser).
		Where("email = ?", email).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// GetByID retrieves a user by ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	dbUser := new(database.User)
	err := r.db.NewSelect().
		Model(dbUser).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// GetByUsername retrieves a user by username
func (r *Repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	dbUser := new(database.User)
	err := r.db.NewSelect().
		Model(dbUser).
		Where("username = ?", username).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// MarkVerified sets the verified flag and clears the verification code and its
// expiry so the code cannot be replayed.
func (r *Repository) MarkVerified(ctx context.Context, userID uuid.UUID) error {
	result, err := r.db.NewUpdate().
		Model((*database.User)(nil)).
		Set("verified = ?", true).
		Set("verification_code = ?", nil).
		Set("verification_expires_at = ?", nil).
		Set("updated_at = NOW()").
		Where("id = ?", userID).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark user as verified: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// UpdateVerificationCode overwrites the verification code and expiry for an
// unverified user, implicitly invalidating any previously issued code.
func (r *Repository) UpdateVerificationCode(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) error {
	result, err := r.db.NewUpdate().
		Model((*database.User)(nil)).
		Set("verification_code = ?", code).
		Set("verification_expires_at = ?", expiresAt).
		Set("updated_at = NOW()").
		Where("id = ?", userID).
		Where("verified = ?", false).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to update verification code: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// mapDBUserToModel converts database model to domain model
func mapDBUserToModel(dbu *database.User) *User {
	return &User{
		ID:                    dbu.ID,
		Email:                 dbu.Email,
		Username:              dbu.Username,
		FirstName:             dbu.FirstName,
		LastName:              dbu.LastName,
		PasswordHash:          dbu.PasswordHash,
		Verified:              dbu.Verified,
		VerificationCode:      dbu.VerificationCode,
		VerificationExpiresAt: dbu.VerificationExpiresAt,
		CreatedAt:             dbu.CreatedAt,
		UpdatedAt:             dbu.UpdatedAt,
	}
}
