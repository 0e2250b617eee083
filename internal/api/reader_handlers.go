package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookhavenapp/bookhaven-server/internal/domain"
	"github.com/bookhavenapp/bookhaven-server/internal/http/response"
)

// handleGetReaderState returns the caller's reading position and
// preferences for a book, creating fresh state on first access.
func (s *Server) handleGetReaderState(w http.ResponseWriter, r *http.Request) {
	view, err := s.services.Reader.Get(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, view, s.logger)
}

// handleReaderNextPage advances one page.
func (s *Server) handleReaderNextPage(w http.ResponseWriter, r *http.Request) {
	view, err := s.services.Reader.NextPage(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, view, s.logger)
}

// handleReaderPrevPage goes back one page.
func (s *Server) handleReaderPrevPage(w http.ResponseWriter, r *http.Request) {
	view, err := s.services.Reader.PrevPage(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, view, s.logger)
}

// setPageRequest targets an absolute page number.
type setPageRequest struct {
	Page int `json:"page"`
}

// handleReaderSetPage jumps to a page. Out of range pages are clamped.
func (s *Server) handleReaderSetPage(w http.ResponseWriter, r *http.Request) {
	var req setPageRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	view, err := s.services.Reader.SetPage(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id"), req.Page)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, view, s.logger)
}

// handleUpdateReaderPrefs updates display preferences for a book.
func (s *Server) handleUpdateReaderPrefs(w http.ResponseWriter, r *http.Request) {
	var prefs domain.ReaderPrefs
	if err := json.UnmarshalRead(r.Body, &prefs); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	view, err := s.services.Reader.UpdatePrefs(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id"), prefs)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, view, s.logger)
}
