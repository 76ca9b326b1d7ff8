// Package cmudict loads the CMU pronunciation dictionary: a line-oriented
// resource mapping uppercase headwords to ARPAbet transcriptions.
package cmudict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Window selects the contiguous data-line range of the resource, skipping
// header and trailer lines. Lines are 0-indexed and the range is half-open,
// [Start, Stop).
type Window struct {
	Start int
	Stop  int
}

// DefaultWindow covers the data lines of cmudict-0.7b, whose first 126 lines
// are a license header and whose trailer is non-entry material.
func DefaultWindow() Window {
	return Window{Start: 126, Stop: 133905}
}

// altEntryRe matches the homograph marker: a parenthesized single digit
// directly following a word, e.g. "READ(2)".
var altEntryRe = regexp.MustCompile(`(\w)\((\d)\)`)

// Dictionary is an immutable headword → transcription table. It is built
// once by Load and is safe for concurrent lookups.
type Dictionary struct {
	entries map[string][]string
}

// Load parses the data lines of r selected by w. Each line is
// "HEADWORD  TRANSCRIPTION" with a two-space delimiter; the transcription is
// a space-separated run of phonetic-unit tokens. An alternate-entry marker
// on the headword is folded into the key ("READ(2)" → "READ{2}") so each
// homograph variant stays addressable. A line without the delimiter is a
// fatal error: the dictionary never loads partially.
func Load(r io.Reader, w Window) (*Dictionary, error) {
	entries := make(map[string][]string)

	scanner := bufio.NewScanner(r)
	for line := 0; scanner.Scan(); line++ {
		if line < w.Start {
			continue
		}
		if line >= w.Stop {
			break
		}

		headword, transcription, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "  ")
		if !ok {
			return nil, fmt.Errorf("cmudict: line %d: missing double-space delimiter", line+1)
		}

		key := altEntryRe.ReplaceAllString(headword, "$1{$2}")
		entries[key] = strings.Fields(transcription)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cmudict: read: %w", err)
	}

	return &Dictionary{entries: entries}, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string, w Window) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cmudict: open: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Load(f, w)
}

// Lookup returns the phonetic-unit tokens for an exact headword key.
// Alternate entries are addressable only under their normalized key
// ("READ{2}"), never the raw source form.
func (d *Dictionary) Lookup(headword string) ([]string, bool) {
	units, ok := d.entries[headword]
	return units, ok
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}
