package adapters

import (
	"os"
	"path/filepath"

	"mimedefaults/internal/ports"
	"mimedefaults/internal/shared"
	"mimedefaults/internal/types"
)

const (
	defaultConfigDirs = "/etc/xdg"
	defaultDataDirs   = "/usr/local/share:/usr/share"
)

// XDGPaths resolves the base directories from an environment lookup.
type XDGPaths struct {
	Getenv func(string) string
	Home   string
}

func NewXDGPaths() XDGPaths {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return XDGPaths{Getenv: os.Getenv, Home: home}
}

func (p XDGPaths) ConfigHome() string {
	return p.home("XDG_CONFIG_HOME", filepath.Join(p.Home, ".config"))
}

func (p XDGPaths) ConfigDirs() []string {
	return p.dirs("XDG_CONFIG_DIRS", defaultConfigDirs)
}

func (p XDGPaths) DataHome() string {
	return p.home("XDG_DATA_HOME", filepath.Join(p.Home, ".local", "share"))
}

func (p XDGPaths) DataDirs() []string {
	return p.dirs("XDG_DATA_DIRS", defaultDataDirs)
}

func (p XDGPaths) ApplicationDirs() []string {
	var dirs []string
	if userApps := filepath.Join(p.DataHome(), "applications"); isDir(userApps) {
		dirs = append(dirs, userApps)
	}
	for _, dir := range p.DataDirs() {
		if apps := filepath.Join(dir, "applications"); isDir(apps) {
			dirs = append(dirs, apps)
		}
	}
	return shared.Dedupe(dirs)
}

func (p XDGPaths) UserMimeappsPath() string {
	return filepath.Join(p.ConfigHome(), types.MimeappsFileName)
}

func (p XDGPaths) SystemMimeappsPaths() []string {
	var paths []string
	for _, dir := range p.ConfigDirs() {
		paths = append(paths, filepath.Join(dir, types.MimeappsFileName))
	}
	for _, dir := range p.DataDirs() {
		paths = append(paths, filepath.Join(dir, "applications", types.MimeappsFileName))
	}
	return paths
}

func (p XDGPaths) home(key string, fallback string) string {
	value := p.lookup(key)
	if value == "" {
		return fallback
	}
	return shared.ExpandHome(value, p.Home)
}

func (p XDGPaths) dirs(key string, fallback string) []string {
	value := p.lookup(key)
	if value == "" {
		value = fallback
	}
	var dirs []string
	for _, dir := range shared.SplitPaths(value) {
		dir = shared.ExpandHome(dir, p.Home)
		if isDir(dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func (p XDGPaths) lookup(key string) string {
	if p.Getenv == nil {
		return ""
	}
	return p.Getenv(key)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

var _ ports.PathsPort = XDGPaths{}
