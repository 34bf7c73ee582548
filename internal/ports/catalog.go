package ports

import (
	"context"

	"mimedefaults/internal/types"
)

// ApplicationCatalogPort indexes installed applications by desktop id
// and by declared content type.
type ApplicationCatalogPort interface {
	Load(ctx context.Context)
	FindByID(id string) (types.ApplicationDescriptor, bool)
	DisplayName(id string) string
	AppsForMime(mime string) []string
	All() []types.ApplicationDescriptor
}

// MimeCatalogPort lists the known content types.
type MimeCatalogPort interface {
	MimeTypes(ctx context.Context) []types.MimeType
}
