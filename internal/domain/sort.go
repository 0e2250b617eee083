package domain

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField selects which book attribute to order by.
type SortField string

const (
	SortByTitle  SortField = "title"
	SortByAuthor SortField = "author"
	SortByYear   SortField = "year"
)

// Valid reports whether the sort field is one of the known values.
func (f SortField) Valid() bool {
	return f == SortByTitle || f == SortByAuthor || f == SortByYear
}

// SortDirection is ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Valid reports whether the direction is one of the known values.
func (d SortDirection) Valid() bool {
	return d == SortAsc || d == SortDesc
}

// SortBooks orders books in place. The sort is stable, string fields
// compare with locale-aware case-insensitive collation, and books with
// no year sort after all dated books in both directions.
func SortBooks(books []Book, field SortField, dir SortDirection) {
	c := collate.New(language.English, collate.IgnoreCase)

	sort.SliceStable(books, func(i, j int) bool {
		a, b := &books[i], &books[j]

		switch field {
		case SortByAuthor:
			cmp := c.CompareString(a.Author, b.Author)
			if dir == SortDesc {
				return cmp > 0
			}
			return cmp < 0

		case SortByYear:
			// Undated books always trail, regardless of direction.
			switch {
			case a.Year == nil && b.Year == nil:
				return false
			case a.Year == nil:
				return false
			case b.Year == nil:
				return true
			}
			if dir == SortDesc {
				return *a.Year > *b.Year
			}
			return *a.Year < *b.Year

		default: // SortByTitle
			cmp := c.CompareString(a.Title, b.Title)
			if dir == SortDesc {
				return cmp > 0
			}
			return cmp < 0
		}
	})
}

// FilterByCategory returns the books belonging to categoryID.
// An empty categoryID returns the input unchanged.
func FilterByCategory(books []Book, categoryID string) []Book {
	if categoryID == "" {
		return books
	}
	filtered := make([]Book, 0, len(books))
	for _, b := range books {
		if b.CategoryID == categoryID {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// MatchBooks returns the books whose title, author, or description contains
// the query, case-insensitively. An empty query returns the input unchanged.
func MatchBooks(books []Book, query string) []Book {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return books
	}
	matched := make([]Book, 0, len(books))
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), query) ||
			strings.Contains(strings.ToLower(b.Author), query) ||
			strings.Contains(strings.ToLower(b.Description), query) {
			matched = append(matched, b)
		}
	}
	return matched
}
