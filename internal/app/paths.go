package app

func (s Service) SearchPaths() PathsResult {
	return PathsResult{
		ConfigHome:      s.Paths.ConfigHome(),
		ConfigDirs:      s.Paths.ConfigDirs(),
		DataHome:        s.Paths.DataHome(),
		DataDirs:        s.Paths.DataDirs(),
		ApplicationDirs: s.Paths.ApplicationDirs(),
		UserMimeapps:    s.Paths.UserMimeappsPath(),
		SystemMimeapps:  s.Paths.SystemMimeappsPaths(),
	}
}
