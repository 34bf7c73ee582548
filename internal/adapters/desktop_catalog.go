package adapters

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"mimedefaults/internal/ports"
	"mimedefaults/internal/shared"
	"mimedefaults/internal/types"
)

// DesktopCatalogAdapter indexes the .desktop files found under the
// application roots. Roots listed first win when two files share an id.
type DesktopCatalogAdapter struct {
	Paths ports.PathsPort

	apps       map[string]types.ApplicationDescriptor
	mimeToApps map[string][]string
}

func NewDesktopCatalogAdapter(paths ports.PathsPort) *DesktopCatalogAdapter {
	return &DesktopCatalogAdapter{
		Paths:      paths,
		apps:       map[string]types.ApplicationDescriptor{},
		mimeToApps: map[string][]string{},
	}
}

func (a *DesktopCatalogAdapter) Load(ctx context.Context) {
	a.apps = map[string]types.ApplicationDescriptor{}
	a.mimeToApps = map[string][]string{}

	for _, root := range a.Paths.ApplicationDirs() {
		before := len(a.apps)
		// WalkDir does not descend into a root that is itself a symlink.
		resolved, err := filepath.EvalSymlinks(root)
		if err != nil {
			log.Ctx(ctx).Debug().Err(err).Str("root", root).Msg("skipping unresolvable application root")
			continue
		}
		_ = filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				log.Ctx(ctx).Debug().Err(err).Str("path", path).Msg("skipping unreadable path")
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), types.DesktopFileSuffix) {
				return nil
			}
			id, ok := desktopID(resolved, path)
			if !ok {
				return nil
			}
			if _, claimed := a.apps[id]; claimed {
				return nil
			}
			a.index(ctx, id, path, filepath.Join(root, strings.TrimPrefix(path, resolved)))
			return nil
		})
		log.Ctx(ctx).Debug().
			Str("root", root).
			Int("indexed", len(a.apps)-before).
			Msg("scanned application root")
	}
}

func (a *DesktopCatalogAdapter) FindByID(id string) (types.ApplicationDescriptor, bool) {
	app, ok := a.apps[id]
	return app, ok
}

func (a *DesktopCatalogAdapter) DisplayName(id string) string {
	app, ok := a.apps[id]
	if !ok || app.Name == "" {
		return id
	}
	return app.Name
}

func (a *DesktopCatalogAdapter) AppsForMime(mime string) []string {
	return append([]string(nil), a.mimeToApps[mime]...)
}

// All returns every indexed application ordered by id.
func (a *DesktopCatalogAdapter) All() []types.ApplicationDescriptor {
	apps := make([]types.ApplicationDescriptor, 0, len(a.apps))
	for _, app := range a.apps {
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].ID < apps[j].ID
	})
	return apps
}

// MimeTypes returns every content type declared by an indexed
// application.
func (a *DesktopCatalogAdapter) MimeTypes() []string {
	mimes := make([]string, 0, len(a.mimeToApps))
	for mime := range a.mimeToApps {
		mimes = append(mimes, mime)
	}
	sort.Strings(mimes)
	return mimes
}

// index reads the file at path and records it under id. displayPath is
// the location reported in the descriptor, below the unresolved root.
func (a *DesktopCatalogAdapter) index(ctx context.Context, id string, path string, displayPath string) {
	lines, err := readLines(path)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("path", path).Msg("failed to read desktop file")
		return
	}
	app, ok := parseDesktopEntry(lines)
	if !ok {
		return
	}
	app.ID = id
	app.Path = displayPath
	if app.Name == "" {
		app.Name = id
	}
	a.apps[id] = app
	for _, mime := range app.MimeTypes {
		a.mimeToApps[mime] = shared.AppendUnique(a.mimeToApps[mime], id)
	}
}

// desktopID derives the desktop file id of path under root.
func desktopID(root string, path string) (string, bool) {
	relative, err := filepath.Rel(root, path)
	if err != nil {
		return "", false
	}
	relative = filepath.ToSlash(relative)
	if relative == "" || relative == "." || relative == ".." || strings.HasPrefix(relative, "../") {
		return "", false
	}
	return strings.ReplaceAll(relative, "/", "-"), true
}

// parseDesktopEntry reads the [Desktop Entry] group. It rejects entries
// that are not applications or are hidden. MimeType is matched without
// regard to case; other keys are exact.
func parseDesktopEntry(lines []string) (types.ApplicationDescriptor, bool) {
	values := map[string]string{}
	mimeTypes, haveMimeTypes := "", false
	for _, entry := range sectionEntries(lines, types.SectionDesktopEntry) {
		if _, seen := values[entry.Key]; !seen {
			values[entry.Key] = entry.Value
		}
		if !haveMimeTypes && strings.EqualFold(entry.Key, "MimeType") {
			mimeTypes, haveMimeTypes = entry.Value, true
		}
	}

	if kind := values["Type"]; kind != "" && !strings.EqualFold(kind, types.ApplicationType) {
		return types.ApplicationDescriptor{}, false
	}
	if parseBool(values["NoDisplay"]) || parseBool(values["Hidden"]) {
		return types.ApplicationDescriptor{}, false
	}
	return types.ApplicationDescriptor{
		Name:      values["Name"],
		Exec:      values["Exec"],
		Icon:      values["Icon"],
		MimeTypes: shared.Dedupe(shared.SplitList(mimeTypes)),
	}, true
}

// parseBool treats every value except "", "0" and "false" as true.
func parseBool(value string) bool {
	value = strings.TrimSpace(value)
	return value != "" && value != "0" && !strings.EqualFold(value, "false")
}

var _ ports.ApplicationCatalogPort = (*DesktopCatalogAdapter)(nil)
