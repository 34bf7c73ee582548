package core

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collation compares strings the way the user's locale sorts them,
// ignoring case.
type Collation struct {
	Tag language.Tag
}

// NewCollation parses a BCP 47 tag or a POSIX locale name such as
// "de_DE.UTF-8". Unparseable or empty locales use the root collation.
func NewCollation(locale string) Collation {
	return Collation{Tag: ParseLocale(locale)}
}

// ParseLocale converts a POSIX or BCP 47 locale name to a language tag.
func ParseLocale(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}

// comparer returns a compare function backed by a fresh collator. The
// collator is not safe for concurrent use, so each build gets its own.
func (c Collation) comparer() func(a, b string) int {
	collator := collate.New(c.Tag, collate.IgnoreCase)
	return collator.CompareString
}
