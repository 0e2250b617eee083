package api

import (
	"net"
	"net/http"
	"strings"

	"github.com/bookhavenapp/bookhaven-server/internal/http/response"
)

// bearerToken extracts the token from the Authorization header.
// Returns empty string if the header is missing or malformed.
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// requireAuth is middleware that validates session tokens and attaches the user to context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			response.Unauthorized(w, "Missing or malformed authorization header", s.logger)
			return
		}

		user, err := s.services.Auth.VerifySession(r.Context(), token)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token", s.logger)
			return
		}

		next.ServeHTTP(w, r.WithContext(setUser(r.Context(), user)))
	})
}

// optionalAuth attaches the user to context when a valid token is present,
// and lets the request through anonymously otherwise. Favorites use this:
// logged-out visitors get no-op semantics instead of a 401.
func (s *Server) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r); token != "" {
			if user, err := s.services.Auth.VerifySession(r.Context(), token); err == nil {
				r = r.WithContext(setUser(r.Context(), user))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// loginRateLimit throttles credential endpoints per client IP.
func (s *Server) loginRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !s.loginLimiter.Allow(ip) {
			response.Error(w, http.StatusTooManyRequests, "RATE_LIMITED", "too many attempts, slow down", s.logger)
			return
		}

		next.ServeHTTP(w, r)
	})
}
