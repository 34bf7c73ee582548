package app

import (
	"context"

	"mimedefaults/internal/adapters"
	"mimedefaults/internal/core"
	"mimedefaults/internal/ports"
)

// Config carries the settings the CLI resolves from flags and viper.
type Config struct {
	Locale          string
	IncludeObserved bool
}

// Service owns one instance of each component. Every request reloads
// the catalog and the store before resolving.
type Service struct {
	Paths     ports.PathsPort
	Catalog   ports.ApplicationCatalogPort
	Store     ports.AssociationStorePort
	UserLayer ports.UserLayerPort
	Resolver  core.AssociationResolver
}

func NewService(cfg Config) Service {
	return NewServiceWithPaths(cfg, adapters.NewXDGPaths())
}

func NewServiceWithPaths(cfg Config, paths ports.PathsPort) Service {
	catalog := adapters.NewDesktopCatalogAdapter(paths)
	store := adapters.NewMimeappsStoreAdapter(paths)
	mimeTypes := adapters.NewSharedMimeInfoAdapter(paths)
	if cfg.IncludeObserved {
		mimeTypes.Observed = adapters.ObservedTypes(catalog, store)
	}
	return Service{
		Paths:     paths,
		Catalog:   catalog,
		Store:     store,
		UserLayer: store,
		Resolver:  core.NewAssociationResolver(catalog, store, mimeTypes, core.NewCollation(cfg.Locale)),
	}
}

// DisplayName returns the catalog name for id.
func (s Service) DisplayName(id string) string {
	return s.Catalog.DisplayName(id)
}

func (s Service) load(ctx context.Context) {
	s.Catalog.Load(ctx)
	s.Store.Reload(ctx)
}
