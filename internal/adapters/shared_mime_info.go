package adapters

import (
	"context"
	"encoding/xml"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"mimedefaults/internal/ports"
	"mimedefaults/internal/shared"
	"mimedefaults/internal/types"
)

// SharedMimeInfoAdapter lists content types from the shared-mime-info
// database under the XDG data directories.
type SharedMimeInfoAdapter struct {
	Paths ports.PathsPort

	// Observed, when set, contributes content types the database does
	// not know, such as types declared only by a desktop file.
	Observed func() []string
}

func NewSharedMimeInfoAdapter(paths ports.PathsPort) SharedMimeInfoAdapter {
	return SharedMimeInfoAdapter{Paths: paths}
}

// ObservedTypes collects every content type named by the catalog or the
// association tables.
func ObservedTypes(catalog *DesktopCatalogAdapter, store ports.AssociationStorePort) func() []string {
	return func() []string {
		mimes := catalog.MimeTypes()
		for _, table := range []types.AssociationMap{
			store.UserDefaults(),
			store.SystemDefaults(),
			store.UserAssociations(),
			store.SystemAssociations(),
		} {
			for mime := range table {
				mimes = shared.AppendUnique(mimes, mime)
			}
		}
		return mimes
	}
}

func (a SharedMimeInfoAdapter) MimeTypes(ctx context.Context) []types.MimeType {
	roots := a.mimeRoots()
	known := map[string]types.MimeType{}
	for _, root := range roots {
		lines, err := readLines(filepath.Join(root, "types"))
		if err != nil {
			continue
		}
		for _, line := range lines {
			name := strings.TrimSpace(line)
			if name == "" || strings.HasPrefix(name, "#") {
				continue
			}
			if _, seen := known[name]; seen {
				continue
			}
			known[name] = types.MimeType{Name: name, Description: describe(roots, name)}
		}
	}
	fromDatabase := len(known)

	if a.Observed != nil {
		for _, name := range a.Observed() {
			if _, seen := known[name]; !seen {
				known[name] = types.MimeType{Name: name}
			}
		}
	}

	mimes := make([]types.MimeType, 0, len(known))
	for _, mime := range known {
		mimes = append(mimes, mime)
	}
	sort.Slice(mimes, func(i, j int) bool {
		return mimes[i].Name < mimes[j].Name
	})
	log.Ctx(ctx).Debug().
		Int("database", fromDatabase).
		Int("observed", len(mimes)-fromDatabase).
		Msg("content types listed")
	return mimes
}

func (a SharedMimeInfoAdapter) mimeRoots() []string {
	var roots []string
	if dir := filepath.Join(a.Paths.DataHome(), "mime"); isDir(dir) {
		roots = append(roots, dir)
	}
	for _, dataDir := range a.Paths.DataDirs() {
		if dir := filepath.Join(dataDir, "mime"); isDir(dir) {
			roots = append(roots, dir)
		}
	}
	return shared.Dedupe(roots)
}

type mimeTypeXML struct {
	Type     string           `xml:"type,attr"`
	Comments []mimeCommentXML `xml:"comment"`
}

type mimeCommentXML struct {
	Lang string `xml:"http://www.w3.org/XML/1998/namespace lang,attr"`
	Text string `xml:",chardata"`
}

// describe returns the untranslated comment of the first per-type XML
// file found for name.
func describe(roots []string, name string) string {
	for _, root := range roots {
		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)+".xml"))
		if err != nil {
			continue
		}
		var doc mimeTypeXML
		if err := xml.Unmarshal(content, &doc); err != nil {
			continue
		}
		if comment := pickComment(doc.Comments); comment != "" {
			return comment
		}
	}
	return ""
}

func pickComment(comments []mimeCommentXML) string {
	for _, comment := range comments {
		if comment.Lang == "" {
			return strings.TrimSpace(comment.Text)
		}
	}
	if len(comments) > 0 {
		return strings.TrimSpace(comments[0].Text)
	}
	return ""
}

var _ ports.MimeCatalogPort = SharedMimeInfoAdapter{}
