// Package testutil provides shared fixtures for frontend, server, and CLI
// tests: a small in-memory pronunciation resource in the cmudict wire format
// so no test needs the real 3 MB dictionary on disk.
package testutil

import (
	"strings"
	"testing"

	"github.com/example/go-tts-frontend/internal/cmudict"
)

// fixtureHeaderLines is the number of comment lines preceding the data in
// DictionarySource, mirroring the real resource's license header.
const fixtureHeaderLines = 2

// dictionarySource is a miniature dictionary in the real wire format:
// header lines, then "HEADWORD  TRANSCRIPTION" with a two-space delimiter,
// including a homograph pair for READ.
const dictionarySource = `;;; fixture pronunciation dictionary
;;; format: HEADWORD  TRANSCRIPTION
HELLO  HH AH0 L OW1
WORLD  W ER1 L D
READ  R IY1 D
READ(2)  R EH1 D
DOCTOR  D AA1 K T ER0
SMITH  S M IH1 TH
PRINTING  P R IH1 N T IH0 NG
`

// DictionarySource returns the fixture resource text.
func DictionarySource() string {
	return dictionarySource
}

// FixtureWindow returns the line window selecting the fixture's data lines.
func FixtureWindow() cmudict.Window {
	return cmudict.Window{
		Start: fixtureHeaderLines,
		Stop:  fixtureHeaderLines + strings.Count(dictionarySource, "\n"),
	}
}

// LoadDictionary parses the fixture resource, failing the test on error.
func LoadDictionary(tb testing.TB) *cmudict.Dictionary {
	tb.Helper()

	dict, err := cmudict.Load(strings.NewReader(dictionarySource), FixtureWindow())
	if err != nil {
		tb.Fatalf("load fixture dictionary: %v", err)
	}
	return dict
}
