package providers

import (
	"github.com/samber/do/v2"

	"github.com/bookhavenapp/bookhaven-server/internal/auth"
	"github.com/bookhavenapp/bookhaven-server/internal/logger"
	"github.com/bookhavenapp/bookhaven-server/internal/service"
)

// ProvideAuthService provides the authentication service.
func ProvideAuthService(i do.Injector) (*service.AuthService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	tokenService := do.MustInvoke[*auth.TokenService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAuthService(storeHandle.Store, tokenService, log.Logger), nil
}

// ProvideCatalogService provides the book catalog service.
func ProvideCatalogService(i do.Injector) (*service.CatalogService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCatalogService(storeHandle.Store, log.Logger), nil
}

// ProvideFavoritesService provides the favorites service.
func ProvideFavoritesService(i do.Injector) (*service.FavoritesService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewFavoritesService(storeHandle.Store, log.Logger), nil
}

// ProvideReaderService provides the reader view state service.
func ProvideReaderService(i do.Injector) (*service.ReaderService, error) {
	catalog := do.MustInvoke[*service.CatalogService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewReaderService(catalog, log.Logger), nil
}
