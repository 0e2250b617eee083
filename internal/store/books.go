package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/bookhavenapp/bookhaven-server/internal/domain"
)

// CreateBook adds a book to the catalog and indexes it for search.
func (s *Store) CreateBook(ctx context.Context, book *domain.Book) error {
	key := []byte(bookPrefix + book.ID)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check book exists: %w", err)
	}
	if exists {
		return errors.New("book already exists")
	}

	if err := s.set(key, book); err != nil {
		return fmt.Errorf("create book: %w", err)
	}

	s.indexBook(ctx, book)
	return nil
}

// GetBook retrieves a book by ID.
func (s *Store) GetBook(_ context.Context, id string) (*domain.Book, error) {
	key := []byte(bookPrefix + id)

	var book domain.Book
	if err := s.get(key, &book); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("get book: %w", err)
	}

	return &book, nil
}

// UpdateBook updates an existing book and refreshes the search index.
func (s *Store) UpdateBook(ctx context.Context, book *domain.Book) error {
	key := []byte(bookPrefix + book.ID)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check book exists: %w", err)
	}
	if !exists {
		return ErrBookNotFound
	}

	book.UpdatedAt = time.Now()

	if err := s.set(key, book); err != nil {
		return fmt.Errorf("update book: %w", err)
	}

	s.indexBook(ctx, book)
	return nil
}

// DeleteBook removes a book from the catalog.
// Deleting an absent book is not an error.
func (s *Store) DeleteBook(ctx context.Context, id string) error {
	key := []byte(bookPrefix + id)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check book exists: %w", err)
	}
	if !exists {
		return nil // Already gone
	}

	if err := s.delete(key); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	if s.searchIndexer != nil {
		if err := s.searchIndexer.DeleteBook(ctx, id); err != nil && s.logger != nil {
			s.logger.Warn("failed to remove book from search index", "book_id", id, "error", err)
		}
	}

	return nil
}

// ListBooks returns all books in the catalog.
func (s *Store) ListBooks(_ context.Context) ([]*domain.Book, error) {
	return listPrefixInto[domain.Book](s, bookPrefix)
}

// indexBook pushes a book into the search index, logging on failure.
// Index staleness is tolerable; losing the write is not.
func (s *Store) indexBook(ctx context.Context, book *domain.Book) {
	if s.searchIndexer == nil {
		return
	}
	if err := s.searchIndexer.IndexBook(ctx, book); err != nil && s.logger != nil {
		s.logger.Warn("failed to index book for search", "book_id", book.ID, "error", err)
	}
}
