package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookhavenapp/bookhaven-server/internal/domain"
	"github.com/bookhavenapp/bookhaven-server/internal/http/response"
	"github.com/bookhavenapp/bookhaven-server/internal/service"
)

// handleListBooks returns the catalog, optionally sorted, filtered, and matched.
// Query params: sort (title|author|year), dir (asc|desc), category, q.
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	params := service.ListBooksParams{
		SortBy:     domain.SortField(r.URL.Query().Get("sort")),
		Direction:  domain.SortDirection(r.URL.Query().Get("dir")),
		CategoryID: r.URL.Query().Get("category"),
		Query:      r.URL.Query().Get("q"),
	}

	books, err := s.services.Catalog.ListBooks(r.Context(), params)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, books, s.logger)
}

// handleGetBook returns a single book.
func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	book, err := s.services.Catalog.GetBook(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, book, s.logger)
}

// handleAddBook adds a book to the catalog.
func (s *Server) handleAddBook(w http.ResponseWriter, r *http.Request) {
	var req service.AddBookRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	book, err := s.services.Catalog.AddBook(r.Context(), getUserID(r.Context()), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, book, s.logger)
}

// handleUpdateBook merges changes into an existing book.
func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	var update domain.BookUpdate
	if err := json.UnmarshalRead(r.Body, &update); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	book, err := s.services.Catalog.UpdateBook(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, book, s.logger)
}

// handleDeleteBook removes a book. Admin only.
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	err := s.services.Catalog.DeleteBook(r.Context(), getUser(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}
