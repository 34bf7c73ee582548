package adapters

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineDiff renders a line-oriented diff of before and after. Unchanged
// lines are prefixed with two spaces, removals with "- " and additions
// with "+ ". It returns "" when nothing changed.
func LineDiff(before []string, after []string) string {
	oldText := joinLines(before)
	newText := joinLines(after)
	if oldText == newText {
		return ""
	}

	dmp := diffmatchpatch.New()
	oldChars, newChars, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(oldChars, newChars, false), lineArray)

	var builder strings.Builder
	for _, diff := range diffs {
		prefix := "  "
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range splitLines(diff.Text) {
			builder.WriteString(prefix)
			builder.WriteString(line)
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}
