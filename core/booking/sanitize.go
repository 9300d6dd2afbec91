package booking

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	markupTagPattern    = regexp.MustCompile(`<[^>]*>`)
	scriptSchemePattern = regexp.MustCompile(`(?i)(javascript|vbscript)[\s\p{Z}]*:`)
)

// Sanitize strips control characters and markup from free text while keeping
// readable content in any script. Whitespace runs collapse to a single space.
// Sanitize(Sanitize(s)) == Sanitize(s) for every s.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.Map(func(r rune) rune {
		if r == unicode.ReplacementChar || unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)

	s = markupTagPattern.ReplaceAllString(s, "")
	s = strings.NewReplacer("<", "", ">", "").Replace(s)

	// removing one scheme can join two halves into another
	for scriptSchemePattern.MatchString(s) {
		s = scriptSchemePattern.ReplaceAllString(s, "")
	}

	return strings.Join(strings.Fields(s), " ")
}
