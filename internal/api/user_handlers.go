package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/bookhavenapp/bookhaven-server/internal/http/response"
	"github.com/bookhavenapp/bookhaven-server/internal/service"
)

// handleGetCurrentUser returns the authenticated user's profile.
func (s *Server) handleGetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user := getUser(r.Context())
	response.Success(w, user.Redacted(), s.logger)
}

// handleUpdateProfile merges profile changes for the authenticated user.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateProfileRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	user, err := s.services.Auth.UpdateProfile(r.Context(), getUserID(r.Context()), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, user.Redacted(), s.logger)
}

// verifyEmailRequest carries the emailed one-time code.
type verifyEmailRequest struct {
	Code string `json:"code"`
}

// handleVerifyEmail confirms the authenticated user's email address.
func (s *Server) handleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req verifyEmailRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	user, err := s.services.Auth.VerifyEmail(r.Context(), getUserID(r.Context()), req.Code)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, user.Redacted(), s.logger)
}
