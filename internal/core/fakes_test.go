package core

import (
	"context"

	"mimedefaults/internal/types"
)

type fakeCatalog struct {
	apps       map[string]types.ApplicationDescriptor
	mimeToApps map[string][]string
}

func newFakeCatalog(apps ...types.ApplicationDescriptor) *fakeCatalog {
	c := &fakeCatalog{
		apps:       map[string]types.ApplicationDescriptor{},
		mimeToApps: map[string][]string{},
	}
	for _, app := range apps {
		c.apps[app.ID] = app
		for _, mime := range app.MimeTypes {
			c.mimeToApps[mime] = append(c.mimeToApps[mime], app.ID)
		}
	}
	return c
}

func (c *fakeCatalog) Load(context.Context) {}

func (c *fakeCatalog) FindByID(id string) (types.ApplicationDescriptor, bool) {
	app, ok := c.apps[id]
	return app, ok
}

func (c *fakeCatalog) DisplayName(id string) string {
	if app, ok := c.apps[id]; ok && app.Name != "" {
		return app.Name
	}
	return id
}

func (c *fakeCatalog) AppsForMime(mime string) []string {
	return c.mimeToApps[mime]
}

func (c *fakeCatalog) All() []types.ApplicationDescriptor {
	var apps []types.ApplicationDescriptor
	for _, app := range c.apps {
		apps = append(apps, app)
	}
	return apps
}

type fakeStore struct {
	tables types.AssociationTables
	calls  [][2]string
}

func (s *fakeStore) Reload(context.Context) {}

func (s *fakeStore) UserDefaults() types.AssociationMap       { return s.tables.UserDefaults }
func (s *fakeStore) SystemDefaults() types.AssociationMap     { return s.tables.SystemDefaults }
func (s *fakeStore) UserAssociations() types.AssociationMap   { return s.tables.UserAssociations }
func (s *fakeStore) SystemAssociations() types.AssociationMap { return s.tables.SystemAssociations }

func (s *fakeStore) SetUserDefault(_ context.Context, mime string, appID string) error {
	s.calls = append(s.calls, [2]string{mime, appID})
	return nil
}

type fakeMimeTypes []types.MimeType

func (f fakeMimeTypes) MimeTypes(context.Context) []types.MimeType {
	return append([]types.MimeType(nil), f...)
}

func app(id string, name string, mimes ...string) types.ApplicationDescriptor {
	return types.ApplicationDescriptor{ID: id, Name: name, MimeTypes: mimes}
}
