// Package api provides the HTTP API server and handlers for the BookHaven application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bookhavenapp/bookhaven-server/internal/ratelimit"
	"github.com/bookhavenapp/bookhaven-server/internal/service"
	"github.com/bookhavenapp/bookhaven-server/internal/store"
)

// Services bundles the application services the server depends on.
type Services struct {
	Auth      *service.AuthService
	Catalog   *service.CatalogService
	Favorites *service.FavoritesService
	Reader    *service.ReaderService
	Search    *service.SearchService
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store          *store.Store
	services       Services
	loginLimiter   *ratelimit.KeyedRateLimiter
	allowedOrigins []string
	router         *chi.Mux
	logger         *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(st *store.Store, services Services, allowedOrigins []string, logger *slog.Logger) *Server {
	s := &Server{
		store:    st,
		services: services,
		// 1 login attempt per 2 seconds per IP, bursting to 5.
		loginLimiter:   ratelimit.New(0.5, 5),
		allowedOrigins: allowedOrigins,
		router:         chi.NewRouter(),
		logger:         logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		// Auth endpoints (public).
		r.Route("/auth", func(r chi.Router) {
			r.With(s.loginRateLimit).Post("/register", s.handleRegister)
			r.With(s.loginRateLimit).Post("/login", s.handleLogin)
			r.Post("/logout", s.handleLogout)
			r.With(s.requireAuth).Post("/verify", s.handleVerifySession)
			r.With(s.requireAuth).Post("/verify-email", s.handleVerifyEmail)
		})

		// Current user.
		r.Route("/users", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/me", s.handleGetCurrentUser)
			r.Patch("/me", s.handleUpdateProfile)
		})

		// Catalog (listing is public, writing needs auth).
		r.Route("/books", func(r chi.Router) {
			r.Get("/", s.handleListBooks)
			r.Get("/{id}", s.handleGetBook)

			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth)
				r.Post("/", s.handleAddBook)
				r.Patch("/{id}", s.handleUpdateBook)
				r.Delete("/{id}", s.handleDeleteBook)

				// Reader view state. POST opens (or returns) the state,
				// GET reads it; both resolve to the same lazily created entry.
				r.Route("/{id}/reader", func(r chi.Router) {
					r.Post("/", s.handleGetReaderState)
					r.Get("/", s.handleGetReaderState)
					r.Post("/next", s.handleReaderNextPage)
					r.Post("/prev", s.handleReaderPrevPage)
					r.Post("/page", s.handleReaderSetPage)
					r.Patch("/", s.handleUpdateReaderPrefs)
				})
			})
		})

		// Categories.
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", s.handleListCategories)
			r.Get("/{slug}", s.handleGetCategory)
			r.With(s.requireAuth).Post("/", s.handleCreateCategory)
		})

		// Favorites. Anonymous requests are accepted and are silent no-ops.
		r.Route("/favorites", func(r chi.Router) {
			r.Use(s.optionalAuth)
			r.Get("/", s.handleListFavorites)
			r.Get("/{bookID}", s.handleIsFavorite)
			r.Post("/{bookID}/toggle", s.handleToggleFavorite)
			r.Put("/{bookID}", s.handleAddFavorite)
			r.Delete("/{bookID}", s.handleRemoveFavorite)
		})

		// Full-text search (public).
		r.Get("/search", s.handleSearch)
	})
}
