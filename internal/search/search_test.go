package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhavenapp/bookhaven-server/internal/domain"
)

func newTestIndex(t *testing.T) *SearchIndex {
	t.Helper()

	idx, err := NewSearchIndex(Options{DataPath: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = idx.Close()
	})
	return idx
}

func testBook(id, title, author string, year int) *domain.Book {
	now := time.Now()
	return &domain.Book{
		ID:        id,
		Title:     title,
		Author:    author,
		Year:      &year,
		PageCount: 300,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSearch_FindsByTitle(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.IndexBook(ctx, testBook("book-1", "Crime and Punishment", "Fyodor Dostoevsky", 1866)))
	require.NoError(t, idx.IndexBook(ctx, testBook("book-2", "1984", "George Orwell", 1949)))

	params := DefaultSearchParams()
	params.Query = "punishment"

	result, err := idx.Search(ctx, params)
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "book-1", result.Hits[0].ID)
	assert.Equal(t, "Crime and Punishment", result.Hits[0].Title)
}

func TestSearch_FindsByAuthor(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.IndexBook(ctx, testBook("book-1", "Crime and Punishment", "Fyodor Dostoevsky", 1866)))
	require.NoError(t, idx.IndexBook(ctx, testBook("book-2", "1984", "George Orwell", 1949)))

	params := DefaultSearchParams()
	params.Query = "orwell"

	result, err := idx.Search(ctx, params)
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "book-2", result.Hits[0].ID)
}

func TestSearch_YearRangeFilter(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.IndexBooks(ctx, []*domain.Book{
		testBook("book-1", "Crime and Punishment", "Fyodor Dostoevsky", 1866),
		testBook("book-2", "1984", "George Orwell", 1949),
		testBook("book-3", "Harry Potter and the Sorcerer's Stone", "J.K. Rowling", 1997),
	}))

	params := DefaultSearchParams()
	params.MinYear = 1900
	params.MaxYear = 1960

	result, err := idx.Search(ctx, params)
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "book-2", result.Hits[0].ID)
}

func TestDeleteBook_RemovesFromResults(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.IndexBook(ctx, testBook("book-1", "1984", "George Orwell", 1949)))
	require.NoError(t, idx.DeleteBook(ctx, "book-1"))

	count, err := idx.DocumentCount()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestIndexBook_UpdateReplacesDocument(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	book := testBook("book-1", "1984", "George Orwell", 1949)
	require.NoError(t, idx.IndexBook(ctx, book))

	book.Title = "Nineteen Eighty-Four"
	require.NoError(t, idx.IndexBook(ctx, book))

	count, err := idx.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	params := DefaultSearchParams()
	params.Query = "nineteen"

	result, err := idx.Search(ctx, params)
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "book-1", result.Hits[0].ID)
}
