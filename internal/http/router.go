package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/cinetech/api/internal/auth"
	"github.com/cinetech/api/internal/catalog"
	"github.com/cinetech/api/internal/config"
	"github.com/cinetech/api/internal/friends"
	"github.com/cinetech/api/internal/httputil"
	"github.com/cinetech/api/internal/logging"
	"github.com/cinetech/api/internal/status"
)

// RouterDeps bundles the handlers and middleware the router wires together.
type RouterDeps struct {
	Auth           *auth.Handler
	AuthMiddleware *auth.Middleware
	Status         *status.Handler
	Friends        *friends.Handler
	Catalog        *catalog.Handler
	Logger         *logging.Logger
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	if len(cfg.Server.TrustedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Server.TrustedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300, // 5 minutes
		}))
	}

	// Global middleware
	r.Use(SecurityHeaders)                    // Security headers on all responses
	r.Use(middleware.Recoverer)               // Recover from panics
	r.Use(middleware.RequestID)               // Add request ID
	r.Use(middleware.RealIP)                  // Set RemoteAddr to real IP
	r.Use(logging.RequestLogger(deps.Logger)) // Structured logging with request context
	r.Use(middleware.Compress(5))             // Compress responses

	// Public routes
	r.Get("/health", handleHealth)

	// Swagger UI - only in development
	// Production builds will not have this route at all
	if cfg.Server.IsDevelopment() {
		deps.Logger.Info("swagger UI enabled at /swagger/*")
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	// Auth routes (public, except "me")
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", deps.Auth.Register)
		r.Post("/verify", deps.Auth.Verify)
		r.Post("/resend-code", deps.Auth.ResendCode)
		r.Post("/login", deps.Auth.Login)
		r.Post("/logout", deps.Auth.Logout)

		r.With(deps.AuthMiddleware.RequireAuth).Get("/me", deps.Auth.Me)
	})

	// Catalog routes require a session but not a verified email, so a freshly
	// registered user can already browse.
	r.Route("/api/catalog", func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireAuth)

		r.Get("/search", deps.Catalog.Search)
		r.Get("/trending/{mediaType}", deps.Catalog.Trending)
		r.Get("/{mediaType}/{mediaID}", deps.Catalog.Details)
	})

	// Account routes require a verified account
	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireAuth)
		r.Use(deps.AuthMiddleware.RequireVerified)

		r.Route("/api/user", func(r chi.Router) {
			r.Post("/status/toggle", deps.Status.Toggle)
			r.Get("/status/{mediaType}/{mediaID}", deps.Status.Get)
			r.Delete("/status/{status}/{mediaType}/{mediaID}", deps.Status.Remove)
			r.Get("/favorites", deps.Status.ListFavorites)
			r.Get("/watched", deps.Status.ListWatched)
			r.Get("/watchlater", deps.Status.ListWatchLater)
		})

		r.Route("/api/friends", func(r chi.Router) {
			r.Post("/", deps.Friends.Add)
			r.Get("/", deps.Friends.List)
			r.Delete("/{friendID}", deps.Friends.Remove)
		})
	})

	return r
}

// handleHealth is a simple health check endpoint
// @Summary      Health check
// @Description  Check if the API is running
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, map[string]string{"status": "api is running"}, http.StatusOK)
}
