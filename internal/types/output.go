package types

// MimeType is one record of the system content-type catalog.
type MimeType struct {
	Name        string
	Description string
}

// MimeEntry is the resolved view of a single content type.
type MimeEntry struct {
	MimeType         string   `yaml:"mime_type" json:"mime_type"`
	Description      string   `yaml:"description,omitempty" json:"description,omitempty"`
	DefaultAppID     string   `yaml:"default_app,omitempty" json:"default_app,omitempty"`
	AssociatedAppIDs []string `yaml:"associated_apps,omitempty" json:"associated_apps,omitempty"`
}

// HasAssociations reports whether the entry names any application.
func (e MimeEntry) HasAssociations() bool {
	return e.DefaultAppID != "" || len(e.AssociatedAppIDs) > 0
}

// MimeCategory groups entries sharing a media type such as "text".
type MimeCategory struct {
	Name    string      `yaml:"name" json:"name"`
	Entries []MimeEntry `yaml:"entries" json:"entries"`
}
