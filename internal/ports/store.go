package ports

import (
	"context"

	"mimedefaults/internal/types"
)

// AssociationStorePort reads the layered mimeapps.list tables and writes
// the user layer.
type AssociationStorePort interface {
	Reload(ctx context.Context)
	UserDefaults() types.AssociationMap
	SystemDefaults() types.AssociationMap
	UserAssociations() types.AssociationMap
	SystemAssociations() types.AssociationMap

	// SetUserDefault makes appID the first default for mime in the user
	// layer and reloads.
	SetUserDefault(ctx context.Context, mime string, appID string) error
}

// UserLayerPort exposes the user mimeapps.list for previews.
type UserLayerPort interface {
	UserPath() string
	PreviewUserDefault(mime string, appID string) (before []string, after []string)
}
