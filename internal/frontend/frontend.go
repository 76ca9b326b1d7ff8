// Package frontend converts normalized text into the integer symbol sequence
// consumed by the synthesis models. It owns the two stages downstream of
// normalization: probabilistic pronunciation mixing and escape-aware
// encoding against the closed symbol vocabulary.
package frontend

import (
	"math/rand/v2"
	"strings"

	"github.com/example/go-tts-frontend/internal/cmudict"
	"github.com/example/go-tts-frontend/internal/symbols"
	"github.com/example/go-tts-frontend/internal/text"
)

// Rand supplies the uniform draws that decide word/phoneme substitution.
// It is the only source of nondeterminism in the pipeline; tests and
// reproducible callers inject a seeded or fixed implementation.
type Rand interface {
	Float64() float64
}

// unseededRand draws from the shared math/rand/v2 generator.
type unseededRand struct{}

func (unseededRand) Float64() float64 { return rand.Float64() }

// NeverMix is a Rand that never selects the phonetic substitution, making
// the whole pipeline a pure function of (dictionary, text).
type NeverMix struct{}

func (NeverMix) Float64() float64 { return 1 }

// Processor is the frontend entry point. The dictionary is shared read-only;
// a Processor is safe for concurrent use when its Rand is.
type Processor struct {
	dict *cmudict.Dictionary
	rng  Rand
	prob float64
}

// Option configures a Processor.
type Option func(*Processor)

// WithMixProbability overrides the per-word substitution probability.
// Values are clamped to [0, 1]: Float64 draws live in [0, 1), so an
// out-of-range probability would make every mixer decision one-sided
// regardless of the injected Rand.
func WithMixProbability(p float64) Option {
	return func(pr *Processor) { pr.prob = min(max(p, 0), 1) }
}

// NewProcessor builds a Processor over a loaded dictionary. A nil rng falls
// back to the shared, unseeded math/rand generator.
func NewProcessor(dict *cmudict.Dictionary, rng Rand, opts ...Option) *Processor {
	if rng == nil {
		rng = unseededRand{}
	}
	p := &Processor{dict: dict, rng: rng, prob: 0.5}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// TextToSequence runs a raw sentence through normalization, pronunciation
// mixing, and encoding. The result is non-empty and ends with exactly one
// end-of-sequence ID; its values index the fixed symbol vocabulary.
func (p *Processor) TextToSequence(raw string) []int {
	normalized := text.Normalize(raw)
	mixed := p.MixPronunciation(normalized)
	return Encode(mixed)
}

// MixPronunciation independently substitutes each space-delimited word with
// its bracketed phonetic transcription. Words absent from the dictionary are
// always kept literal; known words are substituted with probability prob.
// Token order and separators are preserved.
func (p *Processor) MixPronunciation(s string) string {
	if s == "" {
		return s
	}

	words := strings.Split(s, " ")
	for i, word := range words {
		units, ok := p.dict.Lookup(strings.ToUpper(word))
		if !ok {
			continue
		}
		if p.rng.Float64() < p.prob {
			words[i] = "{" + strings.Join(units, " ") + "}"
		}
	}

	return strings.Join(words, " ")
}

// Encode scans mixed text left to right, alternating between literal spans
// and brace-delimited phonetic spans, and emits symbol IDs. Literal runes
// outside the vocabulary are dropped, not substituted. An unterminated brace
// consumes the remainder of the text as a phonetic span; that quirk is part
// of the encoder's contract since nothing upstream validates brace nesting.
// Exactly one end-of-sequence ID is appended, even for empty input.
func Encode(mixed string) []int {
	seq := make([]int, 0, len(mixed)+1)

	rest := mixed
	for len(rest) > 0 {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			seq = appendLiteral(seq, rest)
			break
		}

		seq = appendLiteral(seq, rest[:open])

		body := rest[open+1:]
		end := strings.IndexByte(body, '}')
		if end < 0 {
			seq = appendPhonetic(seq, body)
			break
		}

		seq = appendPhonetic(seq, body[:end])
		rest = body[end+1:]
	}

	return append(seq, symbols.EOSID)
}

func appendLiteral(seq []int, span string) []int {
	for _, r := range span {
		if id, ok := symbols.ID(string(r)); ok {
			seq = append(seq, id)
		}
	}
	return seq
}

func appendPhonetic(seq []int, span string) []int {
	for _, unit := range strings.Fields(span) {
		if id, ok := symbols.PhoneticID(unit); ok {
			seq = append(seq, id)
		}
	}
	return seq
}
