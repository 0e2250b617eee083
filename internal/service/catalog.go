package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bookhavenapp/bookhaven-server/internal/domain"
	domainerrors "github.com/bookhavenapp/bookhaven-server/internal/errors"
	"github.com/bookhavenapp/bookhaven-server/internal/id"
	"github.com/bookhavenapp/bookhaven-server/internal/store"
	"github.com/bookhavenapp/bookhaven-server/internal/util"
)

// CatalogService manages the book catalog and its categories.
type CatalogService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(st *store.Store, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:  st,
		logger: logger,
	}
}

// AddBookRequest contains the data for a new catalog entry.
type AddBookRequest struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Description string `json:"description" validate:"required"`
	CategoryID  string `json:"category_id"`
	Year        *int   `json:"year,omitempty"`
	PageCount   int    `json:"page_count" validate:"gte=0"`
	CoverURL    string `json:"cover_url"`
}

// AddBook adds a book to the catalog. Any authenticated user may add books.
func (s *CatalogService) AddBook(ctx context.Context, userID string, req AddBookRequest) (*domain.Book, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	if req.CategoryID != "" {
		if _, err := s.store.GetCategory(ctx, req.CategoryID); err != nil {
			if errors.Is(err, store.ErrCategoryNotFound) {
				return nil, domainerrors.Validation("unknown category")
			}
			return nil, fmt.Errorf("get category: %w", err)
		}
	}

	bookID, err := id.Generate("book")
	if err != nil {
		return nil, fmt.Errorf("generate book ID: %w", err)
	}

	now := time.Now()
	book := &domain.Book{
		ID:          bookID,
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Year:        req.Year,
		PageCount:   req.PageCount,
		CoverURL:    req.CoverURL,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.CreateBook(ctx, book); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("Book added to catalog", "book_id", bookID, "title", book.Title, "user_id", userID)
	}

	return book, nil
}

// GetBook retrieves a single book.
func (s *CatalogService) GetBook(ctx context.Context, bookID string) (*domain.Book, error) {
	book, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return nil, domainerrors.NotFound("book not found")
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return book, nil
}

// UpdateBook merges the given fields into an existing book.
func (s *CatalogService) UpdateBook(ctx context.Context, bookID string, update domain.BookUpdate) (*domain.Book, error) {
	book, err := s.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	book.Merge(update)

	if err := book.Validate(); err != nil {
		return nil, err
	}

	if update.CategoryID != nil && *update.CategoryID != "" {
		if _, err := s.store.GetCategory(ctx, *update.CategoryID); err != nil {
			if errors.Is(err, store.ErrCategoryNotFound) {
				return nil, domainerrors.Validation("unknown category")
			}
			return nil, fmt.Errorf("get category: %w", err)
		}
	}

	if err := s.store.UpdateBook(ctx, book); err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return nil, domainerrors.NotFound("book not found")
		}
		return nil, fmt.Errorf("update book: %w", err)
	}

	return book, nil
}

// DeleteBook removes a book from the catalog. Admin only.
// Deleting a book that is already gone succeeds, and the book is dropped
// from every user's favorites.
func (s *CatalogService) DeleteBook(ctx context.Context, user *domain.User, bookID string) error {
	if !user.IsAdmin() {
		return domainerrors.Forbidden("admin access required")
	}

	if err := s.store.DeleteBook(ctx, bookID); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	if err := s.store.RemoveBookFromAllFavorites(ctx, bookID); err != nil {
		return fmt.Errorf("remove book from favorites: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("Book deleted", "book_id", bookID, "user_id", user.ID)
	}

	return nil
}

// ListBooksParams configures catalog listing.
type ListBooksParams struct {
	SortBy     domain.SortField
	Direction  domain.SortDirection
	CategoryID string
	Query      string // Substring match on title, author, or description
}

// ListBooks returns the catalog filtered, matched, and sorted.
// Defaults: sort by title ascending.
func (s *CatalogService) ListBooks(ctx context.Context, params ListBooksParams) ([]domain.Book, error) {
	if params.SortBy == "" {
		params.SortBy = domain.SortByTitle
	}
	if !params.SortBy.Valid() {
		return nil, domainerrors.Validation("sort must be title, author, or year")
	}
	if params.Direction == "" {
		params.Direction = domain.SortAsc
	}
	if !params.Direction.Valid() {
		return nil, domainerrors.Validation("direction must be asc or desc")
	}

	stored, err := s.store.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	books := make([]domain.Book, 0, len(stored))
	for _, b := range stored {
		books = append(books, *b)
	}

	books = domain.FilterByCategory(books, params.CategoryID)
	books = domain.MatchBooks(books, params.Query)
	domain.SortBooks(books, params.SortBy, params.Direction)

	return books, nil
}

// CreateCategoryRequest contains the data for a new category.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateCategory adds a category. Admin only. The slug is derived from the name.
func (s *CatalogService) CreateCategory(ctx context.Context, user *domain.User, req CreateCategoryRequest) (*domain.Category, error) {
	if !user.IsAdmin() {
		return nil, domainerrors.Forbidden("admin access required")
	}
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	categoryID, err := id.Generate("category")
	if err != nil {
		return nil, fmt.Errorf("generate category ID: %w", err)
	}

	category := &domain.Category{
		ID:        categoryID,
		Name:      req.Name,
		Slug:      util.Slugify(req.Name),
		CreatedAt: time.Now(),
	}

	if err := s.store.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, store.ErrCategoryExists) {
			return nil, domainerrors.AlreadyExists("category already exists")
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	return category, nil
}

// GetCategoryBySlug returns a single category addressed by its URL slug.
func (s *CatalogService) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	category, err := s.store.GetCategoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			return nil, domainerrors.NotFoundf("category %q not found", slug)
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

// ListCategories returns all categories.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	stored, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(stored))
	for _, c := range stored {
		categories = append(categories, *c)
	}
	return categories, nil
}
