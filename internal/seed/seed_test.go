package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhavenapp/bookhaven-server/internal/domain"
	"github.com/bookhavenapp/bookhaven-server/internal/store"
)

func newTestSeeder(t *testing.T) (*Seeder, *store.Store) {
	t.Helper()

	st, err := store.New(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})

	return New(st, nil), st
}

func TestRun_SeedsCategoriesAndBooks(t *testing.T) {
	seeder, st := newTestSeeder(t)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx))

	categories, err := st.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 5)

	books, err := st.ListBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 3)

	// Every seeded book belongs to a seeded category.
	for _, book := range books {
		_, err := st.GetCategory(ctx, book.CategoryID)
		assert.NoError(t, err, book.Title)
	}
}

func TestRun_Idempotent(t *testing.T) {
	seeder, st := newTestSeeder(t)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx))
	require.NoError(t, seeder.Run(ctx))

	categories, err := st.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 5)

	books, err := st.ListBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 3)
}

func TestCreateAdmin(t *testing.T) {
	seeder, st := newTestSeeder(t)
	ctx := context.Background()

	admin, err := seeder.CreateAdmin(ctx, "admin@example.com", "Adminpass1", "Admin")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.True(t, admin.EmailVerified)

	// Second call reuses the existing account.
	again, err := seeder.CreateAdmin(ctx, "admin@example.com", "Otherpass1", "Admin")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, again.ID)

	stored, err := st.GetUserByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, stored.ID)
}
