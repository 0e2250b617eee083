package providers

import (
	"context"
	"time"

	"github.com/samber/do/v2"

	"github.com/bookhavenapp/bookhaven-server/internal/logger"
	"github.com/bookhavenapp/bookhaven-server/internal/store"
)

// sessionCleanupInterval is how often expired sessions are swept.
// Expiry is also enforced lazily on every read; the sweep reclaims
// sessions nobody reads again.
const sessionCleanupInterval = 1 * time.Hour

// SessionCleanupJob runs periodic session cleanup.
type SessionCleanupJob struct {
	cancel context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (j *SessionCleanupJob) Shutdown() error {
	j.cancel()
	return nil
}

// startSessionCleanup sweeps once immediately and then on every tick until
// the context is cancelled.
func startSessionCleanup(ctx context.Context, st *store.Store, log *logger.Logger, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		if count, err := st.DeleteExpiredSessions(ctx); err != nil {
			log.Warn("Initial session cleanup failed", "error", err)
		} else if count > 0 {
			log.Info("Initial session cleanup completed", "deleted", count)
		}

		for {
			select {
			case <-ticker.C:
				if count, err := st.DeleteExpiredSessions(ctx); err != nil {
					log.Warn("Session cleanup failed", "error", err)
				} else if count > 0 {
					log.Info("Session cleanup completed", "deleted", count)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// ProvideSessionCleanupJob provides the periodic session cleanup job.
func ProvideSessionCleanupJob(i do.Injector) (*SessionCleanupJob, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	ctx, cancel := context.WithCancel(context.Background())
	startSessionCleanup(ctx, storeHandle.Store, log, sessionCleanupInterval)

	log.Info("Session cleanup job started")

	return &SessionCleanupJob{cancel: cancel}, nil
}
