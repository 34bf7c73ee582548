package adapters

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"mimedefaults/internal/ports"
	"mimedefaults/internal/shared"
	"mimedefaults/internal/types"
)

// MimeappsStoreAdapter holds the association tables read from the user
// and system mimeapps.list files.
type MimeappsStoreAdapter struct {
	Paths ports.PathsPort

	tables types.AssociationTables
}

func NewMimeappsStoreAdapter(paths ports.PathsPort) *MimeappsStoreAdapter {
	return &MimeappsStoreAdapter{
		Paths:  paths,
		tables: emptyTables(),
	}
}

// Reload rebuilds all four tables. Missing or unreadable files contribute
// nothing.
func (a *MimeappsStoreAdapter) Reload(ctx context.Context) {
	tables := emptyTables()

	userLines := readLinesQuiet(ctx, a.Paths.UserMimeappsPath())
	tables.UserDefaults = parseAssociationSection(userLines, types.SectionDefaultApplications)
	tables.UserAssociations = parseAssociationSection(userLines, types.SectionAddedAssociations)

	for _, path := range a.Paths.SystemMimeappsPaths() {
		lines := readLinesQuiet(ctx, path)
		if lines == nil {
			continue
		}
		for mime, ids := range parseAssociationSection(lines, types.SectionDefaultApplications) {
			if _, claimed := tables.SystemDefaults[mime]; !claimed {
				tables.SystemDefaults[mime] = ids
			}
		}
		for mime, ids := range parseAssociationSection(lines, types.SectionAddedAssociations) {
			tables.SystemAssociations[mime] = shared.AppendUnique(tables.SystemAssociations[mime], ids...)
		}
	}

	a.tables = tables
	log.Ctx(ctx).Debug().
		Int("user_defaults", len(tables.UserDefaults)).
		Int("system_defaults", len(tables.SystemDefaults)).
		Int("user_associations", len(tables.UserAssociations)).
		Int("system_associations", len(tables.SystemAssociations)).
		Msg("association tables reloaded")
}

// UserDefaults returns a copy of the user [Default Applications] table.
// The other table getters also return copies.
func (a *MimeappsStoreAdapter) UserDefaults() types.AssociationMap {
	return a.tables.UserDefaults.Clone()
}

func (a *MimeappsStoreAdapter) SystemDefaults() types.AssociationMap {
	return a.tables.SystemDefaults.Clone()
}

func (a *MimeappsStoreAdapter) UserAssociations() types.AssociationMap {
	return a.tables.UserAssociations.Clone()
}

func (a *MimeappsStoreAdapter) SystemAssociations() types.AssociationMap {
	return a.tables.SystemAssociations.Clone()
}

func (a *MimeappsStoreAdapter) UserPath() string {
	return a.Paths.UserMimeappsPath()
}

// PreviewUserDefault returns the user layer before and after the patch
// SetUserDefault would apply. Nothing is written.
func (a *MimeappsStoreAdapter) PreviewUserDefault(mime string, appID string) ([]string, []string) {
	before, _ := readLines(a.Paths.UserMimeappsPath())
	return before, patchDefaultApplication(before, mime, appID)
}

func (a *MimeappsStoreAdapter) SetUserDefault(ctx context.Context, mime string, appID string) error {
	path := a.Paths.UserMimeappsPath()
	assert.NotEmpty(ctx, path, "user mimeapps path must be set")

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create user config directory").
			WithCause(err)
	}

	lines, err := readLines(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Ctx(ctx).Error().Err(err).Str("path", path).
			Msg("user mimeapps.list is unreadable; its previous contents will be lost")
	}
	patched := patchDefaultApplication(lines, mime, appID)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		code := errbuilder.CodeInternal
		if errors.Is(err, fs.ErrPermission) {
			code = errbuilder.CodePermissionDenied
		}
		return errbuilder.New().
			WithCode(code).
			WithMsg("failed to open user mimeapps.list for writing").
			WithCause(err)
	}
	_, writeErr := file.WriteString(joinLines(patched))
	closeErr := file.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write user mimeapps.list").
			WithCause(err)
	}
	log.Ctx(ctx).Debug().Str("mime", mime).Str("app", appID).Str("path", path).Msg("user default written")

	a.Reload(ctx)
	return nil
}

// parseAssociationSection maps each key of section to its id list.
// A key repeated within the file keeps its last value.
func parseAssociationSection(lines []string, section string) types.AssociationMap {
	result := types.AssociationMap{}
	for _, entry := range sectionEntries(lines, section) {
		result[entry.Key] = shared.Dedupe(shared.SplitList(entry.Value))
	}
	return result
}

func readLinesQuiet(ctx context.Context, path string) []string {
	lines, err := readLines(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Ctx(ctx).Debug().Err(err).Str("path", path).Msg("skipping unreadable mimeapps.list")
		}
		return nil
	}
	return lines
}

func joinLines(lines []string) string {
	var builder strings.Builder
	for _, line := range lines {
		builder.WriteString(line)
		builder.WriteByte('\n')
	}
	return builder.String()
}

func emptyTables() types.AssociationTables {
	return types.AssociationTables{
		UserDefaults:       types.AssociationMap{},
		SystemDefaults:     types.AssociationMap{},
		UserAssociations:   types.AssociationMap{},
		SystemAssociations: types.AssociationMap{},
	}
}

var (
	_ ports.AssociationStorePort = (*MimeappsStoreAdapter)(nil)
	_ ports.UserLayerPort        = (*MimeappsStoreAdapter)(nil)
)
