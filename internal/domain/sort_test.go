package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestSortBooks_TitleAscIgnoresCase(t *testing.T) {
	books := []Book{
		{ID: "b1", Title: "zebra"},
		{ID: "b2", Title: "Apple"},
		{ID: "b3", Title: "mango"},
	}

	SortBooks(books, SortByTitle, SortAsc)

	assert.Equal(t, []string{"b2", "b3", "b1"}, bookIDs(books))
}

func TestSortBooks_AuthorDesc(t *testing.T) {
	books := []Book{
		{ID: "b1", Author: "Austen"},
		{ID: "b2", Author: "Tolstoy"},
		{ID: "b3", Author: "Dostoevsky"},
	}

	SortBooks(books, SortByAuthor, SortDesc)

	assert.Equal(t, []string{"b2", "b3", "b1"}, bookIDs(books))
}

func TestSortBooks_MissingYearAlwaysLast(t *testing.T) {
	books := []Book{
		{ID: "b1", Year: intPtr(1997)},
		{ID: "b2"},
		{ID: "b3", Year: intPtr(1866)},
	}

	asc := append([]Book(nil), books...)
	SortBooks(asc, SortByYear, SortAsc)
	assert.Equal(t, []string{"b3", "b1", "b2"}, bookIDs(asc))

	desc := append([]Book(nil), books...)
	SortBooks(desc, SortByYear, SortDesc)
	assert.Equal(t, []string{"b1", "b3", "b2"}, bookIDs(desc))
}

func TestSortBooks_StableOnTies(t *testing.T) {
	books := []Book{
		{ID: "b1", Title: "Dune", Year: intPtr(1965)},
		{ID: "b2", Title: "Dune Messiah", Year: intPtr(1965)},
		{ID: "b3", Title: "Emma", Year: intPtr(1965)},
	}

	SortBooks(books, SortByYear, SortAsc)

	// Equal years keep their original relative order.
	assert.Equal(t, []string{"b1", "b2", "b3"}, bookIDs(books))
}

func TestFilterByCategory(t *testing.T) {
	books := []Book{
		{ID: "b1", CategoryID: "category-fantasy"},
		{ID: "b2", CategoryID: "category-scifi"},
		{ID: "b3", CategoryID: "category-fantasy"},
	}

	assert.Equal(t, []string{"b1", "b3"}, bookIDs(FilterByCategory(books, "category-fantasy")))
	assert.Len(t, FilterByCategory(books, ""), 3)
	assert.Empty(t, FilterByCategory(books, "category-missing"))
}

func TestMatchBooks(t *testing.T) {
	books := []Book{
		{ID: "b1", Title: "Crime and Punishment", Author: "Fyodor Dostoevsky"},
		{ID: "b2", Title: "1984", Author: "George Orwell", Description: "Surveillance state"},
	}

	assert.Equal(t, []string{"b1"}, bookIDs(MatchBooks(books, "PUNISH")))
	assert.Equal(t, []string{"b2"}, bookIDs(MatchBooks(books, "orwell")))
	assert.Equal(t, []string{"b2"}, bookIDs(MatchBooks(books, "surveillance")))
	assert.Len(t, MatchBooks(books, "  "), 2)
	assert.Empty(t, MatchBooks(books, "tolkien"))
}

func bookIDs(books []Book) []string {
	ids := make([]string, len(books))
	for i, b := range books {
		ids[i] = b.ID
	}
	return ids
}
