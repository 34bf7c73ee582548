package core

import (
	"strings"

	"mimedefaults/internal/types"
)

// FilterEntries keeps the entries whose content type, default
// application name or description contains text, ignoring case. Blank
// text keeps everything.
func FilterEntries(entries []types.MimeEntry, text string, names func(id string) string) []types.MimeEntry {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return entries
	}
	var kept []types.MimeEntry
	for _, entry := range entries {
		defaultName := entry.DefaultAppID
		if defaultName != "" && names != nil {
			defaultName = names(defaultName)
		}
		for _, field := range []string{entry.MimeType, defaultName, entry.Description} {
			if strings.Contains(strings.ToLower(field), needle) {
				kept = append(kept, entry)
				break
			}
		}
	}
	return kept
}

// GroupByMedia groups entries by the media type before '/'. Groups keep
// first-seen order and entries keep their input order.
func GroupByMedia(entries []types.MimeEntry) []types.MimeCategory {
	var categories []types.MimeCategory
	index := map[string]int{}
	for _, entry := range entries {
		media := entry.MimeType
		if slash := strings.Index(media, "/"); slash >= 0 {
			media = media[:slash]
		}
		i, ok := index[media]
		if !ok {
			i = len(categories)
			index[media] = i
			categories = append(categories, types.MimeCategory{Name: media})
		}
		categories[i].Entries = append(categories[i].Entries, entry)
	}
	return categories
}
