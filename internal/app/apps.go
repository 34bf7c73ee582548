package app

import (
	"context"
	"strings"

	"mimedefaults/internal/types"
)

// Apps lists installed applications, or the candidates for one content
// type in resolved order.
func (s Service) Apps(ctx context.Context, req AppsRequest) (AppsResult, error) {
	s.load(ctx)
	mime := strings.TrimSpace(req.MimeType)
	if mime == "" {
		return AppsResult{Apps: s.Catalog.All()}, nil
	}
	entry, ok := s.Resolver.EntryFor(ctx, mime)
	if !ok {
		return AppsResult{}, nil
	}
	apps := make([]types.ApplicationDescriptor, 0, len(entry.AssociatedAppIDs))
	for _, id := range entry.AssociatedAppIDs {
		if app, found := s.Catalog.FindByID(id); found {
			apps = append(apps, app)
		}
	}
	return AppsResult{Apps: apps}, nil
}
