package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhavenapp/bookhaven-server/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func testUser(id, email string) *domain.User {
	now := time.Now()
	return &domain.User{
		ID:          id,
		Email:       email,
		DisplayName: "Test Reader",
		Role:        domain.RoleUser,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCreateUser_AndGetByEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := testUser("user-1", "reader@example.com")
	require.NoError(t, s.CreateUser(ctx, user))

	got, err := s.GetUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", got.Email)

	// Email lookup is case-insensitive.
	got, err = s.GetUserByEmail(ctx, "READER@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.ID)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, testUser("user-1", "reader@example.com")))

	err := s.CreateUser(ctx, testUser("user-2", "Reader@Example.COM"))
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestGetUser_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetUser(context.Background(), "user-missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUser_ChangesEmailIndex(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := testUser("user-1", "old@example.com")
	require.NoError(t, s.CreateUser(ctx, user))

	user.Email = "new@example.com"
	require.NoError(t, s.UpdateUser(ctx, user))

	_, err := s.GetUserByEmail(ctx, "old@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	got, err := s.GetUserByEmail(ctx, "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.ID)
}

func TestSessions_TokenLookupAndLazyExpiry(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	active := &domain.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		TokenHash: "hash-active",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, s.CreateSession(ctx, active))

	expired := &domain.Session{
		ID:        "sess-2",
		UserID:    "user-1",
		TokenHash: "hash-expired",
		CreatedAt: time.Now().Add(-8 * 24 * time.Hour),
		ExpiresAt: time.Now().Add(-24 * time.Hour),
	}
	require.NoError(t, s.CreateSession(ctx, expired))

	got, err := s.GetSessionByToken(ctx, "hash-active")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", got.ID)

	// Expired session reads as expired and is removed.
	_, err = s.GetSessionByToken(ctx, "hash-expired")
	assert.ErrorIs(t, err, ErrSessionExpired)

	_, err = s.GetSessionByToken(ctx, "hash-expired")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteSession_Idempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	session := &domain.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		TokenHash: "hash-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, s.CreateSession(ctx, session))

	require.NoError(t, s.DeleteSession(ctx, "sess-1"))
	require.NoError(t, s.DeleteSession(ctx, "sess-1"), "second delete is a no-op")

	_, err := s.GetSessionByToken(ctx, "hash-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteExpiredSessions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateSession(ctx, &domain.Session{
		ID: "sess-live", UserID: "user-1", TokenHash: "h1", ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, s.CreateSession(ctx, &domain.Session{
		ID: "sess-dead", UserID: "user-1", TokenHash: "h2", ExpiresAt: time.Now().Add(-time.Hour),
	}))

	count, err := s.DeleteExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = s.GetSession(ctx, "sess-live")
	assert.NoError(t, err)
}

func TestBooks_CRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	year := 1949
	book := &domain.Book{
		ID:        "book-1",
		Title:     "1984",
		Author:    "George Orwell",
		Year:      &year,
		PageCount: 328,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, s.CreateBook(ctx, book))

	got, err := s.GetBook(ctx, "book-1")
	require.NoError(t, err)
	assert.Equal(t, "1984", got.Title)

	got.Description = "Dystopian classic"
	require.NoError(t, s.UpdateBook(ctx, got))

	got, err = s.GetBook(ctx, "book-1")
	require.NoError(t, err)
	assert.Equal(t, "Dystopian classic", got.Description)

	require.NoError(t, s.DeleteBook(ctx, "book-1"))
	_, err = s.GetBook(ctx, "book-1")
	assert.ErrorIs(t, err, ErrBookNotFound)

	// Deleting again is a no-op.
	require.NoError(t, s.DeleteBook(ctx, "book-1"))
}

func TestUpdateBook_NotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateBook(context.Background(), &domain.Book{ID: "book-missing", Title: "X", Author: "Y"})
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestCategories_SlugUnique(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateCategory(ctx, &domain.Category{ID: "category-1", Name: "Fantasy", Slug: "fantasy"}))

	err := s.CreateCategory(ctx, &domain.Category{ID: "category-2", Name: "Fantasy Again", Slug: "fantasy"})
	assert.ErrorIs(t, err, ErrCategoryExists)

	got, err := s.GetCategoryBySlug(ctx, "fantasy")
	require.NoError(t, err)
	assert.Equal(t, "category-1", got.ID)

	_, err = s.GetCategoryBySlug(ctx, "horror")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestFavorites_RoundTripAndCascade(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Unknown user gets an empty set.
	favorites, err := s.GetFavorites(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, favorites.Items)

	now := time.Now()
	favorites.Add("book-1", now)
	favorites.Add("book-2", now)
	require.NoError(t, s.SaveFavorites(ctx, favorites))

	got, err := s.GetFavorites(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, got.Contains("book-1"))
	assert.True(t, got.Contains("book-2"))

	// Removing a deleted book drops it from every user's set.
	require.NoError(t, s.RemoveBookFromAllFavorites(ctx, "book-1"))

	got, err = s.GetFavorites(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, got.Contains("book-1"))
	assert.True(t, got.Contains("book-2"))
}
