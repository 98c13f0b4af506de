package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cinetech/api/internal/user"
)

// TokenService defines the interface for session token creation and validation.
// The production implementation is PasetoService (PASETO v4.local).
type TokenService interface {
	CreateToken(userID uuid.UUID, email string, duration time.Duration) (string, error)
	VerifyToken(tokenStr string) (*TokenClaims, error)
}

// UserStore captures the persistence operations required by the auth service
// and middleware. Implemented by user.Repository; tests substitute in-memory
// fakes.
type UserStore interface {
	Create(ctx context.Context, params user.CreateParams) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByUsername(ctx context.Context, username string) (*user.User, error)
	MarkVerified(ctx context.Context, userID uuid.UUID) error
	UpdateVerificationCode(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) error
}

// EmailSender delivers verification codes. Send failures never fail the parent
// operation; the caller can request a resend.
type EmailSender interface {
	SendVerificationCode(ctx context.Context, toEmail, code string) error
}

// RateLimiter guards the auth endpoints against abuse. Implemented by
// ratelimit.Limiter; tests substitute in-memory fakes.
type RateLimiter interface {
	CheckIPRateLimit(ctx context.Context, ip string) (bool, error)
	RecordIPRequest(ctx context.Context, ip string) error
	CheckIPRateLimitWithPurpose(ctx context.Context, ip, purpose string) (bool, error)
	RecordIPRequestWithPurpose(ctx context.Context, ip, purpose string) error
	CheckEmailCooldown(ctx context.Context, email string) (bool, error)
	SetEmailCooldown(ctx context.Context, email string) error
}
