// Package search provides full-text book search using Bleve.
package search

import (
	"github.com/bookhavenapp/bookhaven-server/internal/domain"
)

// BookDocument is the document structure stored in the Bleve index.
type BookDocument struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description,omitempty"`
	CategoryID  string `json:"category_id,omitempty"`
	PublishYear int    `json:"publish_year,omitempty"`
	PageCount   int    `json:"page_count,omitempty"`
	CreatedAt   int64  `json:"created_at"` // Unix millis
	UpdatedAt   int64  `json:"updated_at"` // Unix millis
}

// FromBook builds a search document from a catalog book.
func FromBook(book *domain.Book) *BookDocument {
	doc := &BookDocument{
		ID:          book.ID,
		Title:       book.Title,
		Author:      book.Author,
		Description: book.Description,
		CategoryID:  book.CategoryID,
		PageCount:   book.PageCount,
		CreatedAt:   book.CreatedAt.UnixMilli(),
		UpdatedAt:   book.UpdatedAt.UnixMilli(),
	}
	if book.Year != nil {
		doc.PublishYear = *book.Year
	}
	return doc
}

// ToMap converts the document to a map with lowercase field names.
// Bleve by default uses Go struct field names (capitalized), but our
// mapping uses lowercase names, so we convert explicitly.
func (d *BookDocument) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":         d.ID,
		"title":      d.Title,
		"author":     d.Author,
		"created_at": d.CreatedAt,
		"updated_at": d.UpdatedAt,
	}
	if d.Description != "" {
		m["description"] = d.Description
	}
	if d.CategoryID != "" {
		m["category_id"] = d.CategoryID
	}
	if d.PublishYear != 0 {
		m["publish_year"] = d.PublishYear
	}
	if d.PageCount != 0 {
		m["page_count"] = d.PageCount
	}
	return m
}
