package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookhavenapp/bookhaven-server/internal/http/response"
)

// handleListFavorites returns the caller's favorites.
// Anonymous callers get an empty set.
func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := s.services.Favorites.List(r.Context(), getUserID(r.Context()))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, favorites, s.logger)
}

// toggleResult reports the book's membership after a toggle.
type toggleResult struct {
	BookID    string `json:"book_id"`
	Favorited bool   `json:"favorited"`
}

// handleIsFavorite reports whether a book is in the caller's favorites.
func (s *Server) handleIsFavorite(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookID")

	favorited, err := s.services.Favorites.IsFavorite(r.Context(), getUserID(r.Context()), bookID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, toggleResult{BookID: bookID, Favorited: favorited}, s.logger)
}

// handleToggleFavorite flips a book in and out of the caller's favorites.
// Anonymous callers get favorited=false and nothing is stored.
func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookID")

	favorited, err := s.services.Favorites.Toggle(r.Context(), getUserID(r.Context()), bookID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, toggleResult{BookID: bookID, Favorited: favorited}, s.logger)
}

// handleAddFavorite puts a book into the caller's favorites.
func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookID")

	if err := s.services.Favorites.Add(r.Context(), getUserID(r.Context()), bookID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, toggleResult{BookID: bookID, Favorited: getUserID(r.Context()) != ""}, s.logger)
}

// handleRemoveFavorite drops a book from the caller's favorites.
func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookID")

	if err := s.services.Favorites.Remove(r.Context(), getUserID(r.Context()), bookID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, toggleResult{BookID: bookID, Favorited: false}, s.logger)
}
