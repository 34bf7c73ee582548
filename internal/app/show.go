package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

func (s Service) Show(ctx context.Context, req ShowRequest) (ShowResult, error) {
	mime := strings.TrimSpace(req.MimeType)
	if mime == "" {
		return ShowResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("mime type is required")
	}
	s.load(ctx)
	entry, ok := s.Resolver.EntryFor(ctx, mime)
	if !ok {
		return ShowResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("unknown mime type %s", mime))
	}
	apps := make([]AppSummary, 0, len(entry.AssociatedAppIDs))
	for _, id := range entry.AssociatedAppIDs {
		apps = append(apps, AppSummary{
			ID:        id,
			Name:      s.Catalog.DisplayName(id),
			IsDefault: id == entry.DefaultAppID,
		})
	}
	return ShowResult{Entry: entry, Apps: apps}, nil
}
