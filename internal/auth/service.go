package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/cinetech/api/internal/logging"
	"github.com/cinetech/api/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrUsernameRequired   = errors.New("username is required")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrEmailNotVerified   = errors.New("email not verified, please check your inbox")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyVerified    = errors.New("email already verified")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrCodeExpired        = errors.New("verification code has expired")
)

// Service handles registration, verification and login business logic
type Service struct {
	users        UserStore
	tokenService TokenService
	emailService EmailSender
	logger       *logging.Logger
	sessionTTL   time.Duration
	codeTTL      time.Duration
}

func NewService(
	users UserStore,
	tokenService TokenService,
	emailService EmailSender,
	logger *logging.Logger,
	sessionTTL time.Duration,
	codeTTL time.Duration,
) *Service {
	return &Service{
		users:        users,
		tokenService: tokenService,
		emailService: emailService,
		logger:       logger,
		sessionTTL:   sessionTTL,
		codeTTL:      codeTTL,
	}
}

// RegisterParams carries the registration form fields.
type RegisterParams struct {
	Email     string
	Password  string
	Username  string
	FirstName string
	LastName  string
}

// Register creates a new unverified user and emails a 6-digit verification
// code. The email is sent outside the request lifecycle: a delivery failure is
// logged and the registration still succeeds, since the user can ask for a
// resend.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*user.User, error) {
	email := normalizeEmail(params.Email)
	username := strings.TrimSpace(params.Username)

	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(email) > 254 {
		return nil, ErrInvalidEmailFormat
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmailFormat
	}
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if params.Password == "" {
		return nil, ErrPasswordRequired
	}
	if len(params.Password) < 8 {
		return nil, ErrPasswordTooShort
	}

	passwordHash, err := HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := GenerateVerificationCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}

	newUser, err := s.users.Create(ctx, user.CreateParams{
		Email:                 email,
		Username:              username,
		FirstName:             strings.TrimSpace(params.FirstName),
		LastName:              strings.TrimSpace(params.LastName),
		PasswordHash:          passwordHash,
		VerificationCode:      code,
		VerificationExpiresAt: time.Now().Add(s.codeTTL),
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) || errors.Is(err, user.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.sendCodeAsync(email, code)

	return newUser, nil
}

// Verify checks the submitted code against the stored one and promotes the
// account to verified, clearing the code so it cannot be reused. On success it
// also issues a session token so the user is logged in immediately.
func (s *Service) Verify(ctx context.Context, email, code string) (*user.User, string, error) {
	existing, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}

	if existing.Verified {
		return nil, "", ErrAlreadyVerified
	}

	if existing.VerificationCode == nil || !codesMatch(*existing.VerificationCode, code) {
		return nil, "", ErrInvalidCode
	}

	if existing.VerificationExpiresAt == nil || time.Now().After(*existing.VerificationExpiresAt) {
		return nil, "", ErrCodeExpired
	}

	if err := s.users.MarkVerified(ctx, existing.ID); err != nil {
		return nil, "", fmt.Errorf("failed to mark user as verified: %w", err)
	}
	existing.Verified = true
	existing.VerificationCode = nil
	existing.VerificationExpiresAt = nil

	token, err := s.tokenService.CreateToken(existing.ID, existing.Email, s.sessionTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session token: %w", err)
	}

	return existing, token, nil
}

// ResendCode regenerates the verification code with a fresh expiry window and
// emails it. The previous code is invalidated by the overwrite.
func (s *Service) ResendCode(ctx context.Context, email string) error {
	existing, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if existing.Verified {
		return ErrAlreadyVerified
	}

	code, err := GenerateVerificationCode()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}

	if err := s.users.UpdateVerificationCode(ctx, existing.ID, code, time.Now().Add(s.codeTTL)); err != nil {
		return fmt.Errorf("failed to update verification code: %w", err)
	}

	s.sendCodeAsync(existing.Email, code)

	return nil
}

// Login authenticates a user and returns a session token. Unknown emails and
// wrong passwords produce the same ErrInvalidCredentials so callers cannot
// enumerate accounts.
func (s *Service) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}

	if !VerifyPassword(existing.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	if !existing.Verified {
		return nil, "", ErrEmailNotVerified
	}

	token, err := s.tokenService.CreateToken(existing.ID, existing.Email, s.sessionTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session token: %w", err)
	}

	return existing, token, nil
}

// sendCodeAsync delivers the verification email in a goroutine with a fresh
// context so it is not cancelled when the request finishes.
func (s *Service) sendCodeAsync(email, code string) {
	go func() {
		emailCtx := context.Background()
		if err := s.emailService.SendVerificationCode(emailCtx, email, code); err != nil {
			s.logger.Warn("failed to send verification email", "email", email, "error", err)
		}
	}()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
