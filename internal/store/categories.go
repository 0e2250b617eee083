package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/bookhavenapp/bookhaven-server/internal/domain"
)

// CreateCategory adds a category. Slugs are unique.
func (s *Store) CreateCategory(_ context.Context, category *domain.Category) error {
	key := []byte(categoryPrefix + category.ID)
	slugKey := []byte(categoryBySlugPrefix + category.Slug)

	return s.db.Update(func(txn *badger.Txn) error {
		// Check slug uniqueness
		_, err := txn.Get(slugKey)
		if err == nil {
			return ErrCategoryExists
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check category slug: %w", err)
		}

		data, err := json.Marshal(category)
		if err != nil {
			return fmt.Errorf("marshal category: %w", err)
		}

		if err := txn.Set(key, data); err != nil {
			return err
		}

		return txn.Set(slugKey, []byte(category.ID))
	})
}

// GetCategory retrieves a category by ID.
func (s *Store) GetCategory(_ context.Context, id string) (*domain.Category, error) {
	key := []byte(categoryPrefix + id)

	var category domain.Category
	if err := s.get(key, &category); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	return &category, nil
}

// GetCategoryBySlug retrieves a category by its slug.
func (s *Store) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	slugKey := []byte(categoryBySlugPrefix + slug)

	var categoryID string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(slugKey)
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			categoryID = string(val)
			return nil
		})
	})

	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("lookup category by slug: %w", err)
	}

	return s.GetCategory(ctx, categoryID)
}

// ListCategories returns all categories.
func (s *Store) ListCategories(_ context.Context) ([]*domain.Category, error) {
	return listPrefixInto[domain.Category](s, categoryPrefix)
}
