// Package seed populates a fresh database with starter content.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bookhavenapp/bookhaven-server/internal/auth"
	"github.com/bookhavenapp/bookhaven-server/internal/domain"
	"github.com/bookhavenapp/bookhaven-server/internal/id"
	"github.com/bookhavenapp/bookhaven-server/internal/store"
	"github.com/bookhavenapp/bookhaven-server/internal/util"
)

// Seeder writes starter categories, books, and an optional admin account.
type Seeder struct {
	store  *store.Store
	logger *slog.Logger
}

// New creates a new seeder.
func New(st *store.Store, logger *slog.Logger) *Seeder {
	return &Seeder{store: st, logger: logger}
}

var categoryNames = []string{
	"Fantasy",
	"Thriller",
	"Romance",
	"Historical",
	"Sci-Fi",
}

type seedBook struct {
	title       string
	author      string
	description string
	category    string // Slug
	year        int
	pageCount   int
}

var seedBooks = []seedBook{
	{
		title:       "Harry Potter and the Sorcerer's Stone",
		author:      "J.K. Rowling",
		description: "An orphaned boy discovers on his eleventh birthday that he is a wizard.",
		category:    "fantasy",
		year:        1997,
		pageCount:   309,
	},
	{
		title:       "1984",
		author:      "George Orwell",
		description: "A man rebels against a totalitarian state that watches everything.",
		category:    "thriller",
		year:        1949,
		pageCount:   328,
	},
	{
		title:       "Crime and Punishment",
		author:      "Fyodor Dostoevsky",
		description: "A destitute student commits murder and wrestles with his conscience.",
		category:    "historical",
		year:        1866,
		pageCount:   671,
	},
}

// Run seeds categories and books. It is idempotent: existing categories
// are reused and books are only inserted into an empty catalog.
func (s *Seeder) Run(ctx context.Context) error {
	categoryIDs := make(map[string]string, len(categoryNames))

	for _, name := range categoryNames {
		slug := util.Slugify(name)

		existing, err := s.store.GetCategoryBySlug(ctx, slug)
		if err == nil {
			categoryIDs[slug] = existing.ID
			continue
		}

		categoryID, err := id.Generate("category")
		if err != nil {
			return fmt.Errorf("generate category ID: %w", err)
		}

		category := &domain.Category{
			ID:        categoryID,
			Name:      name,
			Slug:      slug,
			CreatedAt: time.Now(),
		}
		if err := s.store.CreateCategory(ctx, category); err != nil {
			return fmt.Errorf("create category %s: %w", name, err)
		}
		categoryIDs[slug] = categoryID
	}

	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return fmt.Errorf("list books: %w", err)
	}
	if len(books) > 0 {
		if s.logger != nil {
			s.logger.Info("Catalog not empty, skipping book seed", "books", len(books))
		}
		return nil
	}

	for _, sb := range seedBooks {
		bookID, err := id.Generate("book")
		if err != nil {
			return fmt.Errorf("generate book ID: %w", err)
		}

		year := sb.year
		now := time.Now()
		book := &domain.Book{
			ID:          bookID,
			Title:       sb.title,
			Author:      sb.author,
			Description: sb.description,
			CategoryID:  categoryIDs[sb.category],
			Year:        &year,
			PageCount:   sb.pageCount,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.store.CreateBook(ctx, book); err != nil {
			return fmt.Errorf("create book %s: %w", sb.title, err)
		}
	}

	if s.logger != nil {
		s.logger.Info("Seeded catalog", "categories", len(categoryNames), "books", len(seedBooks))
	}

	return nil
}

// CreateAdmin creates an admin account if the email isn't taken.
// Used by the seed command so a fresh install has someone who can
// delete books and manage categories.
func (s *Seeder) CreateAdmin(ctx context.Context, email, password, displayName string) (*domain.User, error) {
	if existing, err := s.store.GetUserByEmail(ctx, email); err == nil {
		if s.logger != nil {
			s.logger.Info("Admin account already exists", "email", email)
		}
		return existing, nil
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	userID, err := id.Generate("user")
	if err != nil {
		return nil, fmt.Errorf("generate user ID: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:            userID,
		Email:         email,
		PasswordHash:  passwordHash,
		DisplayName:   displayName,
		Role:          domain.RoleAdmin,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create admin user: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("Admin account created", "user_id", userID, "email", email)
	}

	return user, nil
}
