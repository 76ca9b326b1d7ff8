// Package text implements the normalization cascade that turns raw English
// sentences into the reduced orthographic form consumed by the pronunciation
// mixer: reduced punctuation, spoken-word numerals, expanded abbreviations,
// and single interior spaces.
package text

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// sentencePunctuation is the set of terminators that already end a sentence.
const sentencePunctuation = "!,.:;?"

// Normalize runs the full cascade. Ordering matters: punctuation reduction
// runs before numeral expansion so currency and ordinal patterns see their
// original neighbors, and whitespace collapse runs last because every
// earlier rewrite may leave doubled spaces behind.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSpace(s)

	s = NormalizePunctuation(s)
	s = EnsureTerminator(s)
	s = ExpandNumbers(s)
	s = ExpandAbbreviations(s)
	s = CollapseWhitespace(s)

	return s
}

// EnsureTerminator appends a full stop when the text does not already end in
// sentence punctuation, so the decoder is told explicitly where to stop.
func EnsureTerminator(s string) string {
	if s == "" {
		return s
	}
	if strings.ContainsRune(sentencePunctuation, rune(s[len(s)-1])) {
		return s
	}
	return s + "."
}

// CollapseWhitespace replaces every whitespace run with a single space.
func CollapseWhitespace(s string) string {
	return whitespaceRe.ReplaceAllString(s, " ")
}
