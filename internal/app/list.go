package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"mimedefaults/internal/core"
	"mimedefaults/internal/types"
)

func (s Service) List(ctx context.Context, req ListRequest) (ListResult, error) {
	s.load(ctx)
	entries := s.Resolver.BuildEntries(ctx)
	if !req.All {
		entries = withAssociations(entries)
	}
	entries = core.FilterEntries(entries, req.Filter, s.Catalog.DisplayName)
	log.Ctx(ctx).Debug().Int("entries", len(entries)).Str("filter", req.Filter).Msg("entries listed")

	result := ListResult{Entries: entries}
	if req.Group {
		result.Categories = core.GroupByMedia(entries)
	}
	return result, nil
}

func withAssociations(entries []types.MimeEntry) []types.MimeEntry {
	var kept []types.MimeEntry
	for _, entry := range entries {
		if entry.HasAssociations() {
			kept = append(kept, entry)
		}
	}
	return kept
}
