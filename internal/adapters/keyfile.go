package adapters

import (
	"os"
	"strings"
)

// keyFileEntry is one key=value assignment inside a section.
type keyFileEntry struct {
	Key   string
	Value string
}

// readLines returns the lines of path without line terminators. A
// trailing newline does not produce an empty final line.
func readLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return splitLines(string(content)), nil
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func isCommentOrBlank(trimmed string) bool {
	return trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";")
}

// sectionName reports the bracketed name of a section header line.
func sectionName(trimmed string) (string, bool) {
	if len(trimmed) < 2 || trimmed[0] != '[' || trimmed[len(trimmed)-1] != ']' {
		return "", false
	}
	return strings.TrimSpace(trimmed[1 : len(trimmed)-1]), true
}

// splitAssignment splits on the first '='. Lines without a key are
// rejected.
func splitAssignment(trimmed string) (keyFileEntry, bool) {
	eq := strings.Index(trimmed, "=")
	if eq <= 0 {
		return keyFileEntry{}, false
	}
	key := strings.TrimSpace(trimmed[:eq])
	if key == "" {
		return keyFileEntry{}, false
	}
	return keyFileEntry{Key: key, Value: strings.TrimSpace(trimmed[eq+1:])}, true
}

// sectionEntries returns the assignments of every section whose name
// matches section case-insensitively, in file order.
func sectionEntries(lines []string, section string) []keyFileEntry {
	var entries []keyFileEntry
	inSection := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if isCommentOrBlank(trimmed) {
			continue
		}
		if name, ok := sectionName(trimmed); ok {
			inSection = strings.EqualFold(name, section)
			continue
		}
		if !inSection {
			continue
		}
		if entry, ok := splitAssignment(trimmed); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}
