// Package slug provides URL-friendly slug derivation for categories and
// posts. Slugs are derived from titles when absent and must be unique at the
// storage layer; derivation itself never disambiguates.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches anything that isn't a lowercase letter, digit,
	// space, or hyphen after normalization.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)

	// stripMarks decomposes accented characters and drops the combining
	// marks, so "Café" slugs to "cafe" instead of losing the rune.
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// IsValid reports whether s is already in canonical slug form, i.e. Make
// would return it unchanged.
func IsValid(s string) bool {
	return s != "" && Make(s) == s
}

// Make derives a URL-friendly slug from the given string.
// Example: "Hello, World! 2026" -> "hello-world-2026".
func Make(s string) string {
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
