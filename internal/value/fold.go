package value

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Folder applies the stable lowercase transformation used for
// case-insensitive matching: NFC normalization followed by Unicode lower
// casing with no language-specific rules.
//
// Exact Unicode case-folding edge cases (for example the German sharp s
// against "SS") are not covered.
//
// Thread-safety: a Folder wraps a stateful cases.Caser and must not be
// shared between goroutines. Create one per operation.
type Folder struct {
	caser cases.Caser
}

// NewFolder creates a Folder.
func NewFolder() *Folder {
	return &Folder{caser: cases.Lower(language.Und)}
}

// Fold returns the lowercase form of s.
func (f *Folder) Fold(s string) string {
	return f.caser.String(norm.NFC.String(s))
}

// Contains reports whether query is a substring of s after both are folded.
// An empty query is contained in every string.
func (f *Folder) Contains(s, query string) bool {
	return strings.Contains(f.Fold(s), f.Fold(query))
}
