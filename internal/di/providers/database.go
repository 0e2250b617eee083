package providers

import (
	"context"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/bookhavenapp/bookhaven-server/internal/config"
	"github.com/bookhavenapp/bookhaven-server/internal/logger"
	"github.com/bookhavenapp/bookhaven-server/internal/seed"
	"github.com/bookhavenapp/bookhaven-server/internal/store"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the database store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.Data.BasePath, "db")
	db, err := store.New(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Database initialized", "path", dbPath)

	return &StoreHandle{Store: db}, nil
}

// ProvideSeeder provides the catalog seeder.
func ProvideSeeder(i do.Injector) (*seed.Seeder, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return seed.New(storeHandle.Store, log.Logger), nil
}

// RunSeed populates the starter catalog on first boot.
// Should be called after the search indexer is wired so seeded books get indexed.
func RunSeed(i do.Injector) error {
	seeder := do.MustInvoke[*seed.Seeder](i)
	return seeder.Run(context.Background())
}
