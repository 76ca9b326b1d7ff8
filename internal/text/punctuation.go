package text

import (
	"regexp"
	"strings"
)

// The reference rules use lookaround, which RE2 does not support; the
// sentence-punctuation context is captured and re-emitted instead.
var (
	dashAfterSentenceRe = regexp.MustCompile(`([.,!?] )-- `)
	openAfterSentenceRe = regexp.MustCompile(`([.,!?] )[(\[]`)
	closeBeforePunctRe  = regexp.MustCompile(`[)\]]([.,!?])`)
	openAtStartRe       = regexp.MustCompile(`^[(\[]`)
	closeAtEndRe        = regexp.MustCompile(`[)\]]$`)
)

// NormalizePunctuation rewrites punctuation into the reduced set the symbol
// vocabulary carries. The rules run in a fixed order since later rules
// operate on the output of earlier ones:
//  1. Semicolons and colons become commas.
//  2. A "--" following sentence punctuation is dropped; other " --"
//     become commas, and " - " becomes ", ".
//  3. Remaining hyphens split into spaces.
//  4. Parentheses and brackets adjacent to sentence punctuation or at the
//     string boundaries are dropped; the rest become commas.
//
// Empty input yields empty output.
func NormalizePunctuation(s string) string {
	// Step 1: semicolons and colons.
	s = strings.ReplaceAll(s, ";", ",")
	s = strings.ReplaceAll(s, ":", ",")

	// Step 2: dashes.
	s = dashAfterSentenceRe.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, " --", ",")
	s = strings.ReplaceAll(s, " - ", ", ")

	// Step 3: hyphen splitting.
	s = strings.ReplaceAll(s, "-", " ")

	// Step 4: parentheses and brackets.
	s = openAfterSentenceRe.ReplaceAllString(s, "$1")
	s = closeBeforePunctRe.ReplaceAllString(s, "$1")
	s = openAtStartRe.ReplaceAllString(s, "")
	s = closeAtEndRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, ")", ",")
	s = strings.ReplaceAll(s, " (", ", ")
	s = strings.ReplaceAll(s, "]", ",")
	s = strings.ReplaceAll(s, " [", ", ")

	return s
}
