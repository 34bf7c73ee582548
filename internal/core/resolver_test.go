package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mimedefaults/internal/types"
)

func newTestResolver(catalog *fakeCatalog, tables types.AssociationTables, mimes ...types.MimeType) (AssociationResolver, *fakeStore) {
	store := &fakeStore{tables: tables}
	return NewAssociationResolver(catalog, store, fakeMimeTypes(mimes), NewCollation("en")), store
}

func TestResolverUserDefaultWins(t *testing.T) {
	catalog := newFakeCatalog(app("user.desktop", "User"), app("system.desktop", "System"))
	resolver, _ := newTestResolver(catalog, types.AssociationTables{
		UserDefaults:   types.AssociationMap{"text/plain": {"user.desktop"}},
		SystemDefaults: types.AssociationMap{"text/plain": {"system.desktop"}},
	}, types.MimeType{Name: "text/plain"})

	entry, ok := resolver.EntryFor(t.Context(), "text/plain")
	require.True(t, ok)
	assert.Equal(t, "user.desktop", entry.DefaultAppID)
	if diff := cmp.Diff([]string{"user.desktop"}, entry.AssociatedAppIDs); diff != "" {
		t.Fatalf("unexpected associations (-want +got):\n%s", diff)
	}
}

func TestResolverSkipsUninstalledDefaults(t *testing.T) {
	tests := []struct {
		name   string
		tables types.AssociationTables
		want   string
	}{
		{
			name: "first installed user id",
			tables: types.AssociationTables{
				UserDefaults:   types.AssociationMap{"text/plain": {"gone.desktop", "second.desktop"}},
				SystemDefaults: types.AssociationMap{"text/plain": {"system.desktop"}},
			},
			want: "second.desktop",
		},
		{
			name: "falls through to system",
			tables: types.AssociationTables{
				UserDefaults:   types.AssociationMap{"text/plain": {"gone.desktop"}},
				SystemDefaults: types.AssociationMap{"text/plain": {"missing.desktop", "system.desktop"}},
			},
			want: "system.desktop",
		},
		{
			name: "nothing installed",
			tables: types.AssociationTables{
				UserDefaults:   types.AssociationMap{"text/plain": {"gone.desktop"}},
				SystemDefaults: types.AssociationMap{"text/plain": {"missing.desktop"}},
			},
			want: "",
		},
		{
			name: "empty user list",
			tables: types.AssociationTables{
				UserDefaults:   types.AssociationMap{"text/plain": nil},
				SystemDefaults: types.AssociationMap{"text/plain": {"system.desktop"}},
			},
			want: "system.desktop",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := newFakeCatalog(app("second.desktop", "Second"), app("system.desktop", "System"))
			resolver, _ := newTestResolver(catalog, tt.tables, types.MimeType{Name: "text/plain"})

			entry, ok := resolver.EntryFor(t.Context(), "text/plain")
			require.True(t, ok)
			assert.Equal(t, tt.want, entry.DefaultAppID)
			assert.NotContains(t, entry.AssociatedAppIDs, "gone.desktop")
			assert.NotContains(t, entry.AssociatedAppIDs, "missing.desktop")
		})
	}
}

func TestResolverAssociatedSetIsComplete(t *testing.T) {
	catalog := newFakeCatalog(
		app("a.desktop", "Alpha", "text/x-t"),
		app("b.desktop", "Bravo", "text/x-t"),
		app("c.desktop", "Charlie"),
		app("d.desktop", "Delta"),
	)
	resolver, _ := newTestResolver(catalog, types.AssociationTables{
		UserAssociations:   types.AssociationMap{"text/x-t": {"c.desktop", "a.desktop", "ghost.desktop"}},
		SystemAssociations: types.AssociationMap{"text/x-t": {"phantom.desktop"}},
		SystemDefaults:     types.AssociationMap{"text/x-t": {"d.desktop"}},
	}, types.MimeType{Name: "text/x-t", Description: "test type"})

	entry, ok := resolver.EntryFor(t.Context(), "text/x-t")
	require.True(t, ok)
	want := types.MimeEntry{
		MimeType:         "text/x-t",
		Description:      "test type",
		DefaultAppID:     "d.desktop",
		AssociatedAppIDs: []string{"a.desktop", "b.desktop", "c.desktop", "d.desktop"},
	}
	if diff := cmp.Diff(want, entry); diff != "" {
		t.Fatalf("unexpected entry (-want +got):\n%s", diff)
	}
}

func TestResolverSortsByDisplayNameThenID(t *testing.T) {
	catalog := newFakeCatalog(
		app("zeta.desktop", "editor", "text/plain"),
		app("alpha.desktop", "Editor", "text/plain"),
		app("mid.desktop", "Browser", "text/plain"),
		app("late.desktop", "émacs", "text/plain"),
	)
	resolver, _ := newTestResolver(catalog, types.AssociationTables{}, types.MimeType{Name: "text/plain"})

	entry, ok := resolver.EntryFor(t.Context(), "text/plain")
	require.True(t, ok)
	want := []string{"mid.desktop", "alpha.desktop", "zeta.desktop", "late.desktop"}
	if diff := cmp.Diff(want, entry.AssociatedAppIDs); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestResolverOrdersTypesCaseInsensitively(t *testing.T) {
	resolver, _ := newTestResolver(newFakeCatalog(), types.AssociationTables{},
		types.MimeType{Name: "text/plain"},
		types.MimeType{Name: "Application/x-Upper"},
		types.MimeType{Name: "audio/ogg"},
		types.MimeType{Name: "application/json"},
	)

	var got []string
	for _, entry := range resolver.BuildEntries(t.Context()) {
		got = append(got, entry.MimeType)
	}
	want := []string{"application/json", "Application/x-Upper", "audio/ogg", "text/plain"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestResolverEntryForUnknownType(t *testing.T) {
	resolver, _ := newTestResolver(newFakeCatalog(), types.AssociationTables{}, types.MimeType{Name: "text/plain"})
	_, ok := resolver.EntryFor(t.Context(), "image/png")
	assert.False(t, ok)
}

func TestResolverSetDefaultDelegates(t *testing.T) {
	resolver, store := newTestResolver(newFakeCatalog(), types.AssociationTables{})
	require.NoError(t, resolver.SetDefault(t.Context(), "text/plain", "not-installed.desktop"))
	assert.Equal(t, [][2]string{{"text/plain", "not-installed.desktop"}}, store.calls)
}

func TestResolverEmptyCatalog(t *testing.T) {
	resolver, _ := newTestResolver(newFakeCatalog(), types.AssociationTables{}, types.MimeType{Name: "text/plain"})
	entries := resolver.BuildEntries(t.Context())
	require.Len(t, entries, 1)
	assert.False(t, entries[0].HasAssociations())
}
