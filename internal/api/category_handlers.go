package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookhavenapp/bookhaven-server/internal/http/response"
	"github.com/bookhavenapp/bookhaven-server/internal/service"
)

// handleListCategories returns all categories.
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.services.Catalog.ListCategories(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, categories, s.logger)
}

// handleGetCategory returns a category by slug.
func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := s.services.Catalog.GetCategoryBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, category, s.logger)
}

// handleCreateCategory adds a category. Admin only.
func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req service.CreateCategoryRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	category, err := s.services.Catalog.CreateCategory(r.Context(), getUser(r.Context()), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, category, s.logger)
}
