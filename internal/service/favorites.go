package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bookhavenapp/bookhaven-server/internal/domain"
	"github.com/bookhavenapp/bookhaven-server/internal/store"
)

// FavoritesService manages per-user favorite sets.
//
// Every operation treats an empty userID as an anonymous visitor and
// silently does nothing, mirroring how the web client lets logged-out
// users tap the heart without effect.
type FavoritesService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewFavoritesService creates a new favorites service.
func NewFavoritesService(st *store.Store, logger *slog.Logger) *FavoritesService {
	return &FavoritesService{
		store:  st,
		logger: logger,
	}
}

// List returns the user's favorites in insertion order.
// Anonymous visitors get an empty set.
func (s *FavoritesService) List(ctx context.Context, userID string) (*domain.Favorites, error) {
	if userID == "" {
		return &domain.Favorites{}, nil
	}
	favorites, err := s.store.GetFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get favorites: %w", err)
	}
	return favorites, nil
}

// IsFavorite reports whether the user has favorited the book.
func (s *FavoritesService) IsFavorite(ctx context.Context, userID, bookID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	favorites, err := s.store.GetFavorites(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("get favorites: %w", err)
	}
	return favorites.Contains(bookID), nil
}

// Add puts a book into the user's set. Adding twice is a no-op.
func (s *FavoritesService) Add(ctx context.Context, userID, bookID string) error {
	if userID == "" {
		return nil
	}
	favorites, err := s.store.GetFavorites(ctx, userID)
	if err != nil {
		return fmt.Errorf("get favorites: %w", err)
	}
	if !favorites.Add(bookID, time.Now()) {
		return nil
	}
	return s.store.SaveFavorites(ctx, favorites)
}

// Remove drops a book from the user's set. Removing an absent book is a no-op.
func (s *FavoritesService) Remove(ctx context.Context, userID, bookID string) error {
	if userID == "" {
		return nil
	}
	favorites, err := s.store.GetFavorites(ctx, userID)
	if err != nil {
		return fmt.Errorf("get favorites: %w", err)
	}
	if !favorites.Remove(bookID, time.Now()) {
		return nil
	}
	return s.store.SaveFavorites(ctx, favorites)
}

// Toggle flips a book's membership and reports the new state.
// Anonymous visitors always get false and nothing is stored.
func (s *FavoritesService) Toggle(ctx context.Context, userID, bookID string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	favorites, err := s.store.GetFavorites(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("get favorites: %w", err)
	}

	favorited := favorites.Toggle(bookID, time.Now())
	if err := s.store.SaveFavorites(ctx, favorites); err != nil {
		return false, fmt.Errorf("save favorites: %w", err)
	}

	return favorited, nil
}
