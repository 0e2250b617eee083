package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFavorites_SetSemantics(t *testing.T) {
	now := time.Now()
	f := &Favorites{UserID: "user-1"}

	assert.True(t, f.Add("book-1", now))
	assert.False(t, f.Add("book-1", now), "adding twice is a no-op")
	assert.Len(t, f.Items, 1)

	assert.True(t, f.Contains("book-1"))
	assert.False(t, f.Contains("book-2"))

	assert.False(t, f.Remove("book-2", now), "removing an absent book is a no-op")
	assert.True(t, f.Remove("book-1", now))
	assert.Empty(t, f.Items)
}

func TestFavorites_Toggle(t *testing.T) {
	now := time.Now()
	f := &Favorites{UserID: "user-1"}

	assert.True(t, f.Toggle("book-1", now), "toggle on")
	assert.True(t, f.Contains("book-1"))

	assert.False(t, f.Toggle("book-1", now), "toggle off")
	assert.False(t, f.Contains("book-1"))
}

func TestFavorites_BookIDsInsertionOrder(t *testing.T) {
	now := time.Now()
	f := &Favorites{UserID: "user-1"}
	f.Add("book-3", now)
	f.Add("book-1", now)
	f.Add("book-2", now)

	assert.Equal(t, []string{"book-3", "book-1", "book-2"}, f.BookIDs())
}
