package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cinetech/api/internal/httputil"
	"github.com/cinetech/api/internal/logging"
	"github.com/cinetech/api/internal/user"
)

// Handler contains HTTP handlers for authentication endpoints
type Handler struct {
	service      *Service
	rateLimiter  RateLimiter
	logger       *logging.Logger
	isProduction bool
	sessionTTL   time.Duration
}

func NewHandler(service *Service, rateLimiter RateLimiter, logger *logging.Logger, isProduction bool, sessionTTL time.Duration) *Handler {
	return &Handler{
		service:      service,
		rateLimiter:  rateLimiter,
		logger:       logger,
		isProduction: isProduction,
		sessionTTL:   sessionTTL,
	}
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyRequest represents the email verification request body
type VerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// ResendCodeRequest represents the resend verification code request
type ResendCodeRequest struct {
	Email string `json:"email"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// RegisterResponse represents the registration response
type RegisterResponse struct {
	User    user.Profile `json:"user"`
	Message string       `json:"message"`
}

// SessionResponse is returned by login and verify. The token is included for
// non-browser clients; browsers get the same token as an http-only cookie.
type SessionResponse struct {
	User    user.Profile `json:"user"`
	Token   string       `json:"token,omitempty"`
	Message string       `json:"message"`
}

// Register handles user registration
// @Summary      Register a new user
// @Description  Create a new account with email, password and username. A 6-digit verification code is emailed.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration form"
// @Success      201 {object} RegisterResponse
// @Failure      400 {object} ErrorResponse "Invalid request or validation error"
// @Failure      409 {object} ErrorResponse "Email or username already exists"
// @Failure      429 {object} ErrorResponse "Too many requests"
// @Router       /api/auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	ip := getClientIP(r)
	exceeded, err := h.rateLimiter.CheckIPRateLimitWithPurpose(r.Context(), ip, "register")
	if err != nil {
		logger.Error("failed to check IP rate limit", "error", err.Error())
	} else if exceeded {
		logger.Warn("IP rate limit exceeded for register", "ip", ip)
		respondError(w, "too many requests, please try again later", httputil.CodeTooManyRequests, http.StatusTooManyRequests)
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid registration request body", "error", err.Error())
		respondError(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	if err := h.rateLimiter.RecordIPRequestWithPurpose(r.Context(), ip, "register"); err != nil {
		logger.Error("failed to record IP request", "error", err.Error())
	}

	newUser, err := h.service.Register(r.Context(), RegisterParams{
		Email:     req.Email,
		Password:  req.Password,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrDuplicateEmail):
			logger.Warn("registration failed: email already exists")
			respondError(w, "email already exists", httputil.CodeEmailAlreadyExists, http.StatusConflict)
		case errors.Is(err, user.ErrDuplicateUsername):
			logger.Warn("registration failed: username taken")
			respondError(w, "username already exists", httputil.CodeUsernameTaken, http.StatusConflict)
		case errors.Is(err, ErrEmailRequired):
			respondError(w, err.Error(), httputil.CodeEmailRequired, http.StatusBadRequest)
		case errors.Is(err, ErrUsernameRequired):
			respondError(w, err.Error(), httputil.CodeUsernameRequired, http.StatusBadRequest)
		case errors.Is(err, ErrPasswordRequired):
			respondError(w, err.Error(), httputil.CodePasswordRequired, http.StatusBadRequest)
		case errors.Is(err, ErrPasswordTooShort):
			respondError(w, err.Error(), httputil.CodePasswordTooShort, http.StatusBadRequest)
		case errors.Is(err, ErrInvalidEmailFormat):
			respondError(w, err.Error(), httputil.CodeInvalidEmailFormat, http.StatusBadRequest)
		default:
			logger.Error("registration failed: internal error", "error", err.Error())
			respondError(w, "failed to register user", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	logger.Info("user registered successfully", "user_id", newUser.ID)

	respondJSON(w, RegisterResponse{
		User:    newUser.ToProfile(),
		Message: "Registration successful. Please check your email for the verification code.",
	}, http.StatusCreated)
}

// Verify handles email verification with the 6-digit code
// @Summary      Verify email address
// @Description  Confirm the emailed 6-digit code. On success the account is activated and a session cookie is set.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body VerifyRequest true "Email and verification code"
// @Success      200 {object} SessionResponse
// @Failure      400 {object} ErrorResponse "Invalid, expired, or already used code"
// @Failure      404 {object} ErrorResponse "Unknown account"
// @Router       /api/auth/verify [post]
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid verify request body", "error", err.Error())
		respondError(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	if strings.TrimSpace(req.Code) == "" {
		respondError(w, "verification code required", httputil.CodeCodeRequired, http.StatusBadRequest)
		return
	}

	verified, token, err := h.service.Verify(r.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			logger.Warn("verification failed: unknown account")
			respondError(w, "no account found for this email", httputil.CodeUserNotFound, http.StatusNotFound)
		case errors.Is(err, ErrAlreadyVerified):
			logger.Warn("verification failed: already verified")
			respondError(w, "This email is already verified. You can login now.", httputil.CodeAlreadyVerified, http.StatusBadRequest)
		case errors.Is(err, ErrInvalidCode):
			logger.Warn("verification failed: code mismatch")
			respondError(w, "Invalid verification code.", httputil.CodeInvalidCode, http.StatusBadRequest)
		case errors.Is(err, ErrCodeExpired):
			logger.Warn("verification failed: code expired")
			respondError(w, "Verification code has expired. Please request a new one.", httputil.CodeCodeExpired, http.StatusBadRequest)
		default:
			logger.Error("verification failed: internal error", "error", err.Error())
			respondError(w, "failed to verify email", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	logger.Info("email verified successfully", "user_id", verified.ID)

	SetSessionCookie(w, token, h.isProduction, h.sessionTTL)
	respondJSON(w, SessionResponse{
		User:    verified.ToProfile(),
		Token:   token,
		Message: "Email verified successfully.",
	}, http.StatusOK)
}

// Login handles user login
// @Summary      User login
// @Description  Authenticate with email and password. On success a 7-day session cookie is set.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} SessionResponse
// @Failure      400 {object} ErrorResponse "Invalid request body"
// @Failure      401 {object} ErrorResponse "Invalid credentials"
// @Failure      403 {object} ErrorResponse "Email not verified"
// @Failure      429 {object} ErrorResponse "Too many requests"
// @Router       /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	ip := getClientIP(r)
	exceeded, err := h.rateLimiter.CheckIPRateLimitWithPurpose(r.Context(), ip, "login")
	if err != nil {
		logger.Error("failed to check IP rate limit", "error", err.Error())
	} else if exceeded {
		logger.Warn("IP rate limit exceeded for login", "ip", ip)
		respondError(w, "too many requests, please try again later", httputil.CodeTooManyRequests, http.StatusTooManyRequests)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid login request body", "error", err.Error())
		respondError(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	if err := h.rateLimiter.RecordIPRequestWithPurpose(r.Context(), ip, "login"); err != nil {
		logger.Error("failed to record IP request", "error", err.Error())
	}

	loggedIn, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			logger.Warn("login failed: invalid credentials")
			respondError(w, "invalid email or password", httputil.CodeInvalidCredentials, http.StatusUnauthorized)
		case errors.Is(err, ErrEmailNotVerified):
			logger.Warn("login failed: email not verified")
			respondError(w, "email not verified, please check your inbox", httputil.CodeEmailNotVerified, http.StatusForbidden)
		default:
			logger.Error("login failed: internal error", "error", err.Error())
			respondError(w, "failed to login", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	logger.Info("user logged in successfully", "user_id", loggedIn.ID)

	SetSessionCookie(w, token, h.isProduction, h.sessionTTL)
	respondJSON(w, SessionResponse{
		User:    loggedIn.ToProfile(),
		Token:   token,
		Message: "logged in successfully",
	}, http.StatusOK)
}

// Logout handles user logout
// @Summary      User logout
// @Description  Clear the session cookie. The token itself expires on its own; no server-side revocation exists.
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /api/auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	ClearSessionCookie(w, h.isProduction)

	logger.Info("user logged out")

	respondJSON(w, map[string]string{"message": "logged out"}, http.StatusOK)
}

// ResendCode handles resending the verification code
// @Summary      Resend verification code
// @Description  Issue a fresh 6-digit code for an unverified account, invalidating the previous one.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body ResendCodeRequest true "Email address"
// @Success      200 {object} map[string]string
// @Failure      400 {object} ErrorResponse "Already verified"
// @Failure      404 {object} ErrorResponse "Unknown account"
// @Failure      429 {object} ErrorResponse "Too many requests"
// @Router       /api/auth/resend-code [post]
func (h *Handler) ResendCode(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req ResendCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid resend code request body", "error", err.Error())
		respondError(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	ip := getClientIP(r)
	exceeded, err := h.rateLimiter.CheckIPRateLimit(r.Context(), ip)
	if err != nil {
		logger.Error("failed to check IP rate limit", "error", err.Error())
		// Continue despite error to avoid blocking legitimate requests
	} else if exceeded {
		logger.Warn("IP rate limit exceeded", "ip", ip)
		respondError(w, "too many requests, please try again later", httputil.CodeTooManyRequests, http.StatusTooManyRequests)
		return
	}

	onCooldown, err := h.rateLimiter.CheckEmailCooldown(r.Context(), req.Email)
	if err != nil {
		logger.Error("failed to check email cooldown", "error", err.Error())
	} else if onCooldown {
		logger.Warn("email on cooldown")
		respondError(w, "please wait before requesting another code", httputil.CodeCooldownActive, http.StatusTooManyRequests)
		return
	}

	if err := h.rateLimiter.RecordIPRequest(r.Context(), ip); err != nil {
		logger.Error("failed to record IP request", "error", err.Error())
	}

	if err := h.service.ResendCode(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			logger.Warn("resend code failed: unknown account")
			respondError(w, "no account found for this email", httputil.CodeUserNotFound, http.StatusNotFound)
		case errors.Is(err, ErrAlreadyVerified):
			logger.Warn("resend code failed: already verified")
			respondError(w, "This email is already verified. You can login now.", httputil.CodeAlreadyVerified, http.StatusBadRequest)
		default:
			logger.Error("resend code failed: internal error", "error", err.Error())
			respondError(w, "failed to resend verification code", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	// Only a successful resend consumes the cooldown.
	if err := h.rateLimiter.SetEmailCooldown(r.Context(), req.Email); err != nil {
		logger.Error("failed to set email cooldown", "error", err.Error())
	}

	logger.Info("verification code resent")

	respondJSON(w, map[string]string{
		"message": "A new verification code has been sent to your email.",
	}, http.StatusOK)
}

// Me returns the authenticated user's profile
// @Summary      Current user
// @Description  Return the sanitized profile of the authenticated user.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} user.Profile
// @Failure      401 {object} ErrorResponse "Unauthenticated"
// @Router       /api/auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	current, ok := GetCurrentUser(r.Context())
	if !ok {
		respondError(w, "authentication required", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	respondJSON(w, current, http.StatusOK)
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, data any, statusCode int) {
	httputil.RespondJSON(w, data, statusCode)
}

// respondError sends an error response with a machine-readable code
func respondError(w http.ResponseWriter, message string, code string, statusCode int) {
	httputil.RespondErrorWithCode(w, message, code, statusCode)
}

// getClientIP extracts the client IP address from the request
func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header first (behind proxy/load balancer)
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		// X-Forwarded-For can contain multiple IPs, take the first one
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	// Check X-Real-IP header
	xri := r.Header.Get("X-Real-IP")
	if xri != "" {
		return strings.TrimSpace(xri)
	}

	// Fallback to RemoteAddr
	ip := r.RemoteAddr
	// RemoteAddr format is "IP:port", extract just the IP
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
