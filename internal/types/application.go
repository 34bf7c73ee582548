package types

// ApplicationDescriptor is one installed application parsed from a
// .desktop file.
type ApplicationDescriptor struct {
	// ID is the desktop file id: the path relative to the application
	// root with separators replaced by '-'.
	ID        string   `yaml:"id" json:"id"`
	Name      string   `yaml:"name" json:"name"`
	Exec      string   `yaml:"exec,omitempty" json:"exec,omitempty"`
	Icon      string   `yaml:"icon,omitempty" json:"icon,omitempty"`
	MimeTypes []string `yaml:"mime_types,omitempty" json:"mime_types,omitempty"`
	Path      string   `yaml:"path" json:"path"`
}
