package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bookhavenapp/bookhaven-server/internal/search"
	"github.com/bookhavenapp/bookhaven-server/internal/store"
)

// SearchService exposes full-text catalog search.
type SearchService struct {
	index  *search.SearchIndex
	store  *store.Store
	logger *slog.Logger
}

// NewSearchService creates a new search service and wires the index into
// the store so writes keep it in sync.
func NewSearchService(index *search.SearchIndex, st *store.Store, logger *slog.Logger) *SearchService {
	svc := &SearchService{
		index:  index,
		store:  st,
		logger: logger,
	}
	st.SetSearchIndexer(index)
	return svc
}

// Reindex rebuilds the search index from the store.
// Called on startup so a fresh index catches up with existing books.
func (s *SearchService) Reindex(ctx context.Context) error {
	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return fmt.Errorf("list books for reindex: %w", err)
	}

	if err := s.index.IndexBooks(ctx, books); err != nil {
		return fmt.Errorf("index books: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("Search index rebuilt", "books", len(books))
	}
	return nil
}

// DocumentCount reports how many books are indexed.
func (s *SearchService) DocumentCount() (uint64, error) {
	return s.index.DocumentCount()
}

// Search executes a full-text query over the catalog.
func (s *SearchService) Search(ctx context.Context, params search.SearchParams) (*search.SearchResult, error) {
	if params.Limit <= 0 {
		params.Limit = search.DefaultSearchParams().Limit
	}
	return s.index.Search(ctx, params)
}
