package providers

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bookhavenapp/bookhaven-server/internal/domain"
	"github.com/bookhavenapp/bookhaven-server/internal/logger"
	"github.com/bookhavenapp/bookhaven-server/internal/store"
)

func TestSessionCleanupSweepsExpired(t *testing.T) {
	st, err := store.New(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	expired := &domain.Session{
		ID:        "session-expired",
		UserID:    "user-1",
		TokenHash: "hash-1",
		CreatedAt: time.Now().Add(-8 * 24 * time.Hour),
		ExpiresAt: time.Now().Add(-24 * time.Hour),
	}
	live := &domain.Session{
		ID:        "session-live",
		UserID:    "user-1",
		TokenHash: "hash-2",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, st.CreateSession(ctx, expired))
	require.NoError(t, st.CreateSession(ctx, live))

	log := logger.New(logger.Config{Writer: io.Discard})

	jobCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	startSessionCleanup(jobCtx, st, log, 10*time.Millisecond)

	// The sweep deletes the expired session outright, so a later read
	// reports it absent rather than expired.
	require.Eventually(t, func() bool {
		_, err := st.GetSession(ctx, expired.ID)
		return errors.Is(err, store.ErrSessionNotFound)
	}, 2*time.Second, 10*time.Millisecond)

	got, err := st.GetSession(ctx, live.ID)
	require.NoError(t, err)
	require.Equal(t, live.ID, got.ID)
}
