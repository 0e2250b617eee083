// Package di provides dependency injection configuration for the BookHaven server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/bookhavenapp/bookhaven-server/internal/auth"
	"github.com/bookhavenapp/bookhaven-server/internal/config"
	"github.com/bookhavenapp/bookhaven-server/internal/di/providers"
	"github.com/bookhavenapp/bookhaven-server/internal/logger"
	"github.com/bookhavenapp/bookhaven-server/internal/seed"
	"github.com/bookhavenapp/bookhaven-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideAuthKey)

	// Database layer
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideSeeder)

	// Search layer
	do.Provide(injector, providers.ProvideSearchIndex)
	do.Provide(injector, providers.ProvideSearchService)

	// Auth layer
	do.Provide(injector, providers.ProvideTokenService)

	// Business services
	do.Provide(injector, providers.ProvideAuthService)
	do.Provide(injector, providers.ProvideCatalogService)
	do.Provide(injector, providers.ProvideFavoritesService)
	do.Provide(injector, providers.ProvideReaderService)

	// Workers
	do.Provide(injector, providers.ProvideSessionCleanupJob)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once the server is running.
// This triggers lazy initialization of every provider in dependency order.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[providers.AuthKey](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)
	_ = do.MustInvoke[*service.SearchService](injector)
	_ = do.MustInvoke[*auth.TokenService](injector)

	// Business services
	_ = do.MustInvoke[*service.AuthService](injector)
	_ = do.MustInvoke[*service.CatalogService](injector)
	_ = do.MustInvoke[*service.FavoritesService](injector)
	_ = do.MustInvoke[*service.ReaderService](injector)

	// Seed the starter catalog. Runs after the search service wires the
	// indexer so seeded books land in the index too.
	_ = do.MustInvoke[*seed.Seeder](injector)
	if err := providers.RunSeed(injector); err != nil {
		return err
	}

	// Workers
	_ = do.MustInvoke[*providers.SessionCleanupJob](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	// Catch up the index with any books written before the indexer was wired
	providers.TriggerSearchReindexIfNeeded(injector)

	return nil
}
