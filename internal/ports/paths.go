package ports

// PathsPort resolves the XDG search paths. Multi-directory lists only
// contain directories that exist.
type PathsPort interface {
	ConfigHome() string
	ConfigDirs() []string
	DataHome() string
	DataDirs() []string

	// ApplicationDirs returns the existing application roots, data home
	// first, deduplicated.
	ApplicationDirs() []string

	UserMimeappsPath() string

	// SystemMimeappsPaths returns the system association files in
	// precedence order: config dirs, then data dirs.
	SystemMimeappsPaths() []string
}
