package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"mimedefaults/internal/adapters"
)

func (s Service) SetDefault(ctx context.Context, req SetDefaultRequest) (SetDefaultResult, error) {
	mime := strings.TrimSpace(req.MimeType)
	appID := strings.TrimSpace(req.AppID)
	if mime == "" {
		return SetDefaultResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("mime type is required")
	}
	if appID == "" {
		return SetDefaultResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("application id is required")
	}

	s.load(ctx)
	_, installed := s.Catalog.FindByID(appID)
	if !installed {
		log.Ctx(ctx).Warn().Str("app", appID).Msg("application is not installed; default will be ignored until it is")
	}

	result := SetDefaultResult{Path: s.UserLayer.UserPath(), Installed: installed}
	if req.DryRun {
		before, after := s.UserLayer.PreviewUserDefault(mime, appID)
		result.Diff = adapters.LineDiff(before, after)
		return result, nil
	}

	if err := s.Resolver.SetDefault(ctx, mime, appID); err != nil {
		return SetDefaultResult{}, err
	}
	if entry, ok := s.Resolver.EntryFor(ctx, mime); ok {
		result.Entry = entry
	}
	log.Ctx(ctx).Info().Str("mime", mime).Str("app", appID).Msg("default updated")
	return result, nil
}
