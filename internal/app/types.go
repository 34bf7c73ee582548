package app

import "mimedefaults/internal/types"

type ListRequest struct {
	Filter string
	Group  bool
	All    bool
}

type ListResult struct {
	Entries    []types.MimeEntry
	Categories []types.MimeCategory
}

type ShowRequest struct {
	MimeType string
}

type AppSummary struct {
	ID        string `yaml:"id" json:"id"`
	Name      string `yaml:"name" json:"name"`
	IsDefault bool   `yaml:"default" json:"default"`
}

type ShowResult struct {
	Entry types.MimeEntry
	Apps  []AppSummary
}

type SetDefaultRequest struct {
	MimeType string
	AppID    string
	DryRun   bool
}

type SetDefaultResult struct {
	Path      string
	Diff      string
	Installed bool
	Entry     types.MimeEntry
}

type AppsRequest struct {
	MimeType string
}

type AppsResult struct {
	Apps []types.ApplicationDescriptor
}

type PathsResult struct {
	ConfigHome      string
	ConfigDirs      []string
	DataHome        string
	DataDirs        []string
	ApplicationDirs []string
	UserMimeapps    string
	SystemMimeapps  []string
}
