package adapters

import (
	"slices"
	"strings"

	"mimedefaults/internal/shared"
	"mimedefaults/internal/types"
)

// patchDefaultApplication returns lines with appID placed first in the
// [Default Applications] value for mime. Every other line is returned
// unchanged and in the same order.
func patchDefaultApplication(lines []string, mime string, appID string) []string {
	out := append([]string(nil), lines...)

	inSection := false
	foundSection := false
	updated := false
	insertAt := -1

	for i, line := range out {
		trimmed := strings.TrimSpace(line)
		if name, ok := sectionName(trimmed); ok {
			if inSection && insertAt == -1 {
				insertAt = i
			}
			inSection = strings.EqualFold(name, types.SectionDefaultApplications)
			if inSection {
				foundSection = true
			}
			continue
		}
		if !inSection || isCommentOrBlank(trimmed) {
			continue
		}
		entry, ok := splitAssignment(trimmed)
		if !ok || entry.Key != mime {
			continue
		}
		out[i] = defaultLine(entry.Key, appID, shared.SplitList(entry.Value))
		updated = true
		break
	}

	switch {
	case updated:
	case !foundSection:
		if len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, "["+types.SectionDefaultApplications+"]", defaultLine(mime, appID, nil))
	default:
		if insertAt == -1 {
			insertAt = len(out)
		}
		out = slices.Insert(out, insertAt, defaultLine(mime, appID, nil))
	}
	return out
}

// defaultLine renders "mime=appID;rest;" with appID removed from rest.
func defaultLine(mime string, appID string, rest []string) string {
	ids := []string{appID}
	for _, id := range rest {
		if id != appID {
			ids = shared.AppendUnique(ids, id)
		}
	}
	return mime + "=" + strings.Join(ids, ";") + ";"
}
