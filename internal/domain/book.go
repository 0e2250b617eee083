package domain

import (
	"strings"
	"time"

	"github.com/bookhavenapp/bookhaven-server/internal/errors"
)

// Earliest publication year the catalog accepts. Anything older than
// movable type is assumed to be a data entry mistake.
const MinPublicationYear = 1000

// Book represents a catalog entry.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Description string    `json:"description"`
	CategoryID  string    `json:"category_id,omitempty"`
	Year        *int      `json:"year,omitempty"` // Publication year, optional
	PageCount   int       `json:"page_count"`
	CoverURL    string    `json:"cover_url,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty"` // User ID that added the book
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks the book's required fields and value ranges.
func (b *Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return errors.Validation("title is required")
	}
	if strings.TrimSpace(b.Author) == "" {
		return errors.Validation("author is required")
	}
	if strings.TrimSpace(b.Description) == "" {
		return errors.Validation("description is required")
	}
	if b.Year != nil {
		currentYear := time.Now().Year()
		if *b.Year < MinPublicationYear || *b.Year > currentYear {
			return errors.Validationf("year must be between %d and %d", MinPublicationYear, currentYear)
		}
	}
	if b.PageCount < 0 {
		return errors.Validation("page count cannot be negative")
	}
	return nil
}

// Merge applies the non-zero fields of update onto the book.
// A nil Year in the update leaves the existing year untouched.
func (b *Book) Merge(update BookUpdate) {
	if update.Title != nil {
		b.Title = *update.Title
	}
	if update.Author != nil {
		b.Author = *update.Author
	}
	if update.Description != nil {
		b.Description = *update.Description
	}
	if update.CategoryID != nil {
		b.CategoryID = *update.CategoryID
	}
	if update.Year != nil {
		b.Year = update.Year
	}
	if update.PageCount != nil {
		b.PageCount = *update.PageCount
	}
	if update.CoverURL != nil {
		b.CoverURL = *update.CoverURL
	}
}

// BookUpdate carries a partial update to a book. Nil fields are left unchanged.
type BookUpdate struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	Description *string `json:"description,omitempty"`
	CategoryID  *string `json:"category_id,omitempty"`
	Year        *int    `json:"year,omitempty"`
	PageCount   *int    `json:"page_count,omitempty"`
	CoverURL    *string `json:"cover_url,omitempty"`
}
