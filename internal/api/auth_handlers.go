package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/bookhavenapp/bookhaven-server/internal/http/response"
	"github.com/bookhavenapp/bookhaven-server/internal/service"
)

// handleRegister creates a new account and returns a session token.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	resp, err := s.services.Auth.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, resp, s.logger)
}

// handleLogin authenticates credentials and returns a session token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	resp, err := s.services.Auth.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, resp, s.logger)
}

// handleVerifySession confirms the presented token still maps to a live
// session and returns the user behind it.
func (s *Server) handleVerifySession(w http.ResponseWriter, r *http.Request) {
	user := getUser(r.Context())
	response.Success(w, user.Redacted(), s.logger)
}

// handleLogout ends the caller's session. Always succeeds, even without
// a valid token, so clients can log out unconditionally.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := bearerToken(r); token != "" {
		if err := s.services.Auth.Logout(r.Context(), token); err != nil {
			response.HandleError(w, err, s.logger)
			return
		}
	}

	response.Success(w, map[string]string{"message": "logged out"}, s.logger)
}
