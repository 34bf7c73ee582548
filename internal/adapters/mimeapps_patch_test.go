package adapters

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"

	"mimedefaults/internal/shared"
	"mimedefaults/internal/types"
)

func TestPatchDefaultApplication(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		mime  string
		app   string
		want  []string
	}{
		{
			name: "empty file gets section",
			mime: "text/plain",
			app:  "editor.desktop",
			want: []string{"[Default Applications]", "text/plain=editor.desktop;"},
		},
		{
			name:  "missing section appended after blank line",
			lines: []string{"[Added Associations]", "text/plain=viewer.desktop;"},
			mime:  "text/plain",
			app:   "editor.desktop",
			want: []string{
				"[Added Associations]", "text/plain=viewer.desktop;",
				"",
				"[Default Applications]", "text/plain=editor.desktop;",
			},
		},
		{
			name:  "existing key moves app first",
			lines: []string{"[Default Applications]", "text/plain=a.desktop;editor.desktop;b.desktop"},
			mime:  "text/plain",
			app:   "editor.desktop",
			want:  []string{"[Default Applications]", "text/plain=editor.desktop;a.desktop;b.desktop;"},
		},
		{
			name:  "section match ignores case",
			lines: []string{"[default applications]", "text/plain=a.desktop;"},
			mime:  "text/plain",
			app:   "editor.desktop",
			want:  []string{"[default applications]", "text/plain=editor.desktop;a.desktop;"},
		},
		{
			name: "new key inserted before next section",
			lines: []string{
				"[Default Applications]",
				"image/png=viewer.desktop;",
				"[Added Associations]",
				"text/plain=viewer.desktop;",
			},
			mime: "text/plain",
			app:  "editor.desktop",
			want: []string{
				"[Default Applications]",
				"image/png=viewer.desktop;",
				"text/plain=editor.desktop;",
				"[Added Associations]",
				"text/plain=viewer.desktop;",
			},
		},
		{
			name:  "new key appended when section is last",
			lines: []string{"# prefs", "[Default Applications]", "image/png=viewer.desktop;"},
			mime:  "text/plain",
			app:   "editor.desktop",
			want:  []string{"# prefs", "[Default Applications]", "image/png=viewer.desktop;", "text/plain=editor.desktop;"},
		},
		{
			name:  "same key in other section is not touched",
			lines: []string{"[Added Associations]", "text/plain=viewer.desktop;", "[Default Applications]"},
			mime:  "text/plain",
			app:   "editor.desktop",
			want:  []string{"[Added Associations]", "text/plain=viewer.desktop;", "[Default Applications]", "text/plain=editor.desktop;"},
		},
		{
			name:  "comments inside section are kept",
			lines: []string{"[Default Applications]", "# text/plain=commented.desktop;", "text/plain = a.desktop"},
			mime:  "text/plain",
			app:   "editor.desktop",
			want:  []string{"[Default Applications]", "# text/plain=commented.desktop;", "text/plain=editor.desktop;a.desktop;"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := patchDefaultApplication(tt.lines, tt.mime, tt.app)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected lines (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPatchDefaultApplicationDoesNotMutateInput(t *testing.T) {
	lines := []string{"[Default Applications]", "text/plain=a.desktop;"}
	_ = patchDefaultApplication(lines, "text/plain", "b.desktop")
	if diff := cmp.Diff([]string{"[Default Applications]", "text/plain=a.desktop;"}, lines); diff != "" {
		t.Fatalf("input was modified (-want +got):\n%s", diff)
	}
}

var (
	genID   = rapid.SampledFrom([]string{"a.desktop", "b.desktop", "editor.app", "viewer.desktop"})
	genMime = rapid.SampledFrom([]string{"text/plain", "image/png", "text/html"})
	genLine = rapid.OneOf(
		rapid.Just("[Default Applications]"),
		rapid.Just("[Added Associations]"),
		rapid.Just("[Other]"),
		rapid.Just(""),
		rapid.Just("# comment"),
		rapid.Custom(func(t *rapid.T) string {
			ids := rapid.SliceOfN(genID, 0, 3).Draw(t, "ids")
			return genMime.Draw(t, "key") + "=" + strings.Join(ids, ";")
		}),
	)
)

func TestPatchDefaultApplicationIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(genLine, 0, 12).Draw(t, "lines")
		mime := genMime.Draw(t, "mime")
		app := genID.Draw(t, "app")

		once := patchDefaultApplication(lines, mime, app)
		twice := patchDefaultApplication(once, mime, app)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Fatalf("second patch changed lines (-once +twice):\n%s", diff)
		}

		if countKey(lines, mime) > 1 {
			return
		}
		got := parseAssociationSection(once, types.SectionDefaultApplications).Lookup(mime)
		if len(got) == 0 || got[0] != app {
			t.Fatalf("expected %s first for %s, got %v", app, mime, got)
		}
		if diff := cmp.Diff(got, shared.Dedupe(got)); diff != "" {
			t.Fatalf("duplicate ids in value (-got +deduped):\n%s", diff)
		}
	})
}

func TestPatchDefaultApplicationPreservesOtherLines(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(genLine, 0, 12).Draw(t, "lines")
		mime := genMime.Draw(t, "mime")
		app := genID.Draw(t, "app")
		added := mime + "=" + app + ";"

		patched := patchDefaultApplication(lines, mime, app)
		switch len(patched) - len(lines) {
		case 0:
			differing := 0
			for i := range lines {
				if lines[i] != patched[i] {
					differing++
					if !strings.HasPrefix(patched[i], mime+"="+app+";") {
						t.Fatalf("unexpected rewrite %q -> %q", lines[i], patched[i])
					}
				}
			}
			if differing > 1 {
				t.Fatalf("%d lines changed, want at most one", differing)
			}
		case 1:
			if !removesTo(patched, lines, added) {
				t.Fatalf("insertion changed other lines:\n%v\n%v", lines, patched)
			}
		default:
			if diff := cmp.Diff(lines, patched[:len(lines)]); diff != "" && len(lines) > 0 {
				t.Fatalf("appended section changed existing lines (-want +got):\n%s", diff)
			}
			if patched[len(patched)-1] != added {
				t.Fatalf("last line = %q, want %q", patched[len(patched)-1], added)
			}
		}
	})
}

// countKey counts the assignments of key inside [Default Applications].
func countKey(lines []string, key string) int {
	count := 0
	for _, entry := range sectionEntries(lines, types.SectionDefaultApplications) {
		if entry.Key == key {
			count++
		}
	}
	return count
}

// removesTo reports whether dropping one occurrence of line from patched
// yields original.
func removesTo(patched []string, original []string, line string) bool {
	for i := range patched {
		if patched[i] != line {
			continue
		}
		rest := append(append([]string{}, patched[:i]...), patched[i+1:]...)
		if cmp.Equal(rest, original) {
			return true
		}
	}
	return false
}
