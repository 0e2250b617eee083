package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhavenapp/bookhaven-server/internal/domain"
	"github.com/bookhavenapp/bookhaven-server/internal/store"
)

func newTestReaderService(t *testing.T) (*ReaderService, *CatalogService) {
	t.Helper()

	st, err := store.New(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})

	catalog := NewCatalogService(st, nil)
	return NewReaderService(catalog, nil), catalog
}

func TestReader_Get_DefaultsAndUnknownBook(t *testing.T) {
	svc, catalog := newTestReaderService(t)
	ctx := context.Background()

	book, err := catalog.AddBook(ctx, "user-1", AddBookRequest{Title: "1984", Author: "George Orwell", Description: "Dystopian classic", PageCount: 328})
	require.NoError(t, err)

	view, err := svc.Get(ctx, "user-1", book.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 328, view.PageCount)
	assert.Equal(t, domain.DefaultFontSize, view.FontSize)
	assert.Equal(t, domain.ThemeLight, view.Theme)

	_, err = svc.Get(ctx, "user-1", "book-missing")
	assert.Error(t, err)
}

func TestReader_PagingIsPerUserAndPerBook(t *testing.T) {
	svc, catalog := newTestReaderService(t)
	ctx := context.Background()

	book, err := catalog.AddBook(ctx, "user-1", AddBookRequest{Title: "1984", Author: "George Orwell", Description: "Dystopian classic", PageCount: 10})
	require.NoError(t, err)

	view, err := svc.NextPage(ctx, "user-1", book.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Page)

	// Another user starts fresh.
	view, err = svc.Get(ctx, "user-2", book.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Page)
}

func TestReader_ClampsAtBounds(t *testing.T) {
	svc, catalog := newTestReaderService(t)
	ctx := context.Background()

	book, err := catalog.AddBook(ctx, "user-1", AddBookRequest{Title: "Short", Author: "A", Description: "Tiny", PageCount: 2})
	require.NoError(t, err)

	view, err := svc.PrevPage(ctx, "user-1", book.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Page)

	_, err = svc.NextPage(ctx, "user-1", book.ID)
	require.NoError(t, err)
	view, err = svc.NextPage(ctx, "user-1", book.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Page, "clamped at last page")

	view, err = svc.SetPage(ctx, "user-1", book.ID, 99)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Page)
}

func TestReader_UpdatePrefs(t *testing.T) {
	svc, catalog := newTestReaderService(t)
	ctx := context.Background()

	book, err := catalog.AddBook(ctx, "user-1", AddBookRequest{Title: "1984", Author: "George Orwell", Description: "Dystopian classic", PageCount: 10})
	require.NoError(t, err)

	size := 20
	theme := domain.ThemeDark
	view, err := svc.UpdatePrefs(ctx, "user-1", book.ID, domain.ReaderPrefs{FontSize: &size, Theme: &theme})
	require.NoError(t, err)
	assert.Equal(t, 20, view.FontSize)
	assert.Equal(t, domain.ThemeDark, view.Theme)

	bad := 99
	_, err = svc.UpdatePrefs(ctx, "user-1", book.ID, domain.ReaderPrefs{FontSize: &bad})
	assert.Error(t, err)

	// Failed update left the state untouched.
	view, err = svc.Get(ctx, "user-1", book.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, view.FontSize)
}
