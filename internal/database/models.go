package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the persistence model for user accounts.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID                    uuid.UUID  `bun:"id,pk,type:uuid"`
	Email                 string     `bun:"email,notnull,unique"`
	Username              string     `bun:"username,notnull,unique"`
	FirstName             string     `bun:"first_name,nullzero"`
	LastName              string     `bun:"last_name,nullzero"`
	PasswordHash          string     `bun:"password_hash,notnull"`
	VerificationCode      *string    `bun:"verification_code"`
	VerificationExpiresAt *time.Time `bun:"verification_expires_at"`
	Verified              bool       `bun:"verified,notnull,default:false"`
	CreatedAt             time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt             time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// MediaStatus marks a (user, media) pair with one of the three list statuses.
// At most one row exists per (user_id, media_id, media_type, status); toggling
// a status creates or deletes the row rather than flipping a flag.
type MediaStatus struct {
	bun.BaseModel `bun:"table:media_statuses,alias:ms"`

	ID         int64     `bun:"id,pk,autoincrement"`
	UserID     uuid.UUID `bun:"user_id,type:uuid,notnull"`
	MediaID    int64     `bun:"media_id,notnull"`
	MediaType  string    `bun:"media_type,notnull"`
	Status     string    `bun:"status,notnull"`
	Title      string    `bun:"title,nullzero"`
	PosterPath string    `bun:"poster_path,nullzero"`
	CreatedAt  time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Friendship is a directed edge from a user to a friend.
type Friendship struct {
	bun.BaseModel `bun:"table:friendships,alias:f"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    uuid.UUID `bun:"user_id,type:uuid,notnull"`
	FriendID  uuid.UUID `bun:"friend_id,type:uuid,notnull"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
