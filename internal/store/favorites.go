package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/bookhavenapp/bookhaven-server/internal/domain"
)

// GetFavorites retrieves a user's favorites set.
// A user with no saved favorites gets an empty set, never an error.
func (s *Store) GetFavorites(_ context.Context, userID string) (*domain.Favorites, error) {
	key := []byte(favoritesPrefix + userID)

	var favorites domain.Favorites
	if err := s.get(key, &favorites); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return &domain.Favorites{UserID: userID}, nil
		}
		return nil, fmt.Errorf("get favorites: %w", err)
	}

	return &favorites, nil
}

// SaveFavorites persists a user's favorites set.
func (s *Store) SaveFavorites(_ context.Context, favorites *domain.Favorites) error {
	key := []byte(favoritesPrefix + favorites.UserID)

	if err := s.set(key, favorites); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}

	return nil
}

// RemoveBookFromAllFavorites drops a deleted book from every user's set.
// Called when a book is removed from the catalog so favorites don't dangle.
func (s *Store) RemoveBookFromAllFavorites(ctx context.Context, bookID string) error {
	all, err := listPrefixInto[domain.Favorites](s, favoritesPrefix)
	if err != nil {
		return err
	}

	for _, favorites := range all {
		if !favorites.Contains(bookID) {
			continue
		}
		favorites.Remove(bookID, time.Now())
		if err := s.SaveFavorites(ctx, favorites); err != nil {
			return fmt.Errorf("update favorites for %s: %w", favorites.UserID, err)
		}
	}

	return nil
}
