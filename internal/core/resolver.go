package core

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"mimedefaults/internal/ports"
	"mimedefaults/internal/types"
)

// AssociationResolver computes the MimeEntry of every known content type
// from the application catalog and the layered association store.
type AssociationResolver struct {
	Catalog   ports.ApplicationCatalogPort
	Store     ports.AssociationStorePort
	MimeTypes ports.MimeCatalogPort
	Collation Collation
}

func NewAssociationResolver(catalog ports.ApplicationCatalogPort, store ports.AssociationStorePort, mimeTypes ports.MimeCatalogPort, collation Collation) AssociationResolver {
	return AssociationResolver{
		Catalog:   catalog,
		Store:     store,
		MimeTypes: mimeTypes,
		Collation: collation,
	}
}

func (r AssociationResolver) BuildEntries(ctx context.Context) []types.MimeEntry {
	compare := r.Collation.comparer()

	known := r.MimeTypes.MimeTypes(ctx)
	sort.SliceStable(known, func(i, j int) bool {
		if cmp := compare(known[i].Name, known[j].Name); cmp != 0 {
			return cmp < 0
		}
		return known[i].Name < known[j].Name
	})

	userDefaults := r.Store.UserDefaults()
	systemDefaults := r.Store.SystemDefaults()
	userAssoc := r.Store.UserAssociations()
	systemAssoc := r.Store.SystemAssociations()

	entries := make([]types.MimeEntry, 0, len(known))
	for _, mime := range known {
		defaultID := r.firstInstalled(userDefaults.Lookup(mime.Name))
		if defaultID == "" {
			defaultID = r.firstInstalled(systemDefaults.Lookup(mime.Name))
		}

		set := map[string]struct{}{}
		for _, id := range r.Catalog.AppsForMime(mime.Name) {
			set[id] = struct{}{}
		}
		for _, id := range userAssoc.Lookup(mime.Name) {
			if r.installed(id) {
				set[id] = struct{}{}
			}
		}
		for _, id := range systemAssoc.Lookup(mime.Name) {
			if r.installed(id) {
				set[id] = struct{}{}
			}
		}
		if defaultID != "" {
			set[defaultID] = struct{}{}
		}

		entries = append(entries, types.MimeEntry{
			MimeType:         mime.Name,
			Description:      mime.Description,
			DefaultAppID:     defaultID,
			AssociatedAppIDs: r.sortByDisplayName(set, compare),
		})
	}

	log.Ctx(ctx).Debug().Int("entries", len(entries)).Msg("mime entries resolved")
	return entries
}

// EntryFor returns the entry for mime, or false when the content type
// is unknown.
func (r AssociationResolver) EntryFor(ctx context.Context, mime string) (types.MimeEntry, bool) {
	for _, entry := range r.BuildEntries(ctx) {
		if entry.MimeType == mime {
			return entry, true
		}
	}
	return types.MimeEntry{}, false
}

// SetDefault forwards to the store. The id is not checked against the
// catalog.
func (r AssociationResolver) SetDefault(ctx context.Context, mime string, appID string) error {
	return r.Store.SetUserDefault(ctx, mime, appID)
}

func (r AssociationResolver) firstInstalled(ids []string) string {
	for _, id := range ids {
		if r.installed(id) {
			return id
		}
	}
	return ""
}

func (r AssociationResolver) installed(id string) bool {
	_, ok := r.Catalog.FindByID(id)
	return ok
}

func (r AssociationResolver) sortByDisplayName(set map[string]struct{}, compare func(a, b string) int) []string {
	if len(set) == 0 {
		return nil
	}
	ids := make([]string, 0, len(set))
	names := make(map[string]string, len(set))
	for id := range set {
		ids = append(ids, id)
		names[id] = r.Catalog.DisplayName(id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if cmp := compare(names[ids[i]], names[ids[j]]); cmp != 0 {
			return cmp < 0
		}
		return ids[i] < ids[j]
	})
	return ids
}
