// Package shared provides small string and path helpers used by the
// adapters and the resolver.
package shared

import (
	"path/filepath"
	"strings"
)

// SplitList splits a ';'-separated value, trimming every item and
// dropping blank ones.
func SplitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ";") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// AppendUnique appends the values not already present in list, keeping
// first-seen order.
func AppendUnique(list []string, values ...string) []string {
	for _, value := range values {
		if !contains(list, value) {
			list = append(list, value)
		}
	}
	return list
}

// Dedupe returns values with later duplicates removed.
func Dedupe(values []string) []string {
	return AppendUnique(nil, values...)
}

// ExpandHome replaces a leading '~' with home.
func ExpandHome(path string, home string) string {
	if strings.HasPrefix(path, "~") {
		return home + path[1:]
	}
	return path
}

// SplitPaths splits a ':'-separated search path, trimming entries and
// dropping blank ones.
func SplitPaths(value string) []string {
	var paths []string
	for _, part := range filepath.SplitList(value) {
		part = strings.TrimSpace(part)
		if part != "" {
			paths = append(paths, part)
		}
	}
	return paths
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
