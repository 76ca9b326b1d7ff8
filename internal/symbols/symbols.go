// Package symbols defines the closed symbol vocabulary of the text frontend.
//
// The vocabulary is the concatenation, in fixed order, of the control
// symbols, the English letter set, the punctuation set, and the ARPAbet
// phonetic units. IDs index into that concatenation and are stable for the
// lifetime of a trained model; reordering or inserting symbols invalidates
// every checkpoint trained against the table.
package symbols

// Control symbols. Pad and EOS are never produced for literal input text;
// EOS is appended once by the encoder as the sequence terminator.
const (
	Pad     = "_PAD_"
	EOS     = "_EOS_"
	Unknown = "_UNK_"
)

// phoneticPrefix keeps ARPAbet units distinct from uppercase letters with
// the same spelling (e.g. "B" the letter vs "B" the consonant).
const phoneticPrefix = "@"

const (
	letters     = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	punctuation = "!'(),-.:;? "
)

// arpabet lists the CMU phonetic units, vowels carrying 0/1/2 stress
// variants alongside the bare form.
var arpabet = []string{
	"AA", "AA0", "AA1", "AA2", "AE", "AE0", "AE1", "AE2", "AH", "AH0", "AH1",
	"AH2", "AO", "AO0", "AO1", "AO2", "AW", "AW0", "AW1", "AW2", "AY", "AY0",
	"AY1", "AY2", "B", "CH", "D", "DH", "EH", "EH0", "EH1", "EH2", "ER", "ER0",
	"ER1", "ER2", "EY", "EY0", "EY1", "EY2", "F", "G", "HH", "IH", "IH0",
	"IH1", "IH2", "IY", "IY0", "IY1", "IY2", "JH", "K", "L", "M", "N", "NG",
	"OW", "OW0", "OW1", "OW2", "OY", "OY0", "OY1", "OY2", "P", "R", "S", "SH",
	"T", "TH", "UH", "UH0", "UH1", "UH2", "UW", "UW0", "UW1", "UW2", "V", "W",
	"Y", "Z", "ZH",
}

var all = buildVocabulary()

var toID = indexVocabulary(all)

func buildVocabulary() []string {
	v := make([]string, 0, 3+len(letters)+len(punctuation)+len(arpabet))
	v = append(v, Pad, EOS, Unknown)
	for _, r := range letters {
		v = append(v, string(r))
	}
	for _, r := range punctuation {
		v = append(v, string(r))
	}
	for _, unit := range arpabet {
		v = append(v, phoneticPrefix+unit)
	}
	return v
}

func indexVocabulary(v []string) map[string]int {
	m := make(map[string]int, len(v))
	for i, s := range v {
		m[s] = i
	}
	if len(m) != len(v) {
		panic("symbols: vocabulary contains duplicate entries")
	}
	return m
}

// PadID, EOSID and UnknownID are the IDs of the control symbols.
var (
	PadID     = mustID(Pad)
	EOSID     = mustID(EOS)
	UnknownID = mustID(Unknown)
)

func mustID(sym string) int {
	id, ok := toID[sym]
	if !ok {
		panic("symbols: missing control symbol " + sym)
	}
	return id
}

// ID returns the integer ID of a symbol, exactly as it appears in the
// vocabulary (phonetic units must already carry their prefix).
func ID(sym string) (int, bool) {
	id, ok := toID[sym]
	return id, ok
}

// PhoneticID returns the ID of an ARPAbet unit given by its bare name,
// e.g. "HH" or "AH0".
func PhoneticID(unit string) (int, bool) {
	id, ok := toID[phoneticPrefix+unit]
	return id, ok
}

// IsSymbol reports whether tok is a member of the vocabulary.
func IsSymbol(tok string) bool {
	_, ok := toID[tok]
	return ok
}

// Count returns the vocabulary size.
func Count() int {
	return len(all)
}

// All returns a copy of the vocabulary in ID order.
func All() []string {
	return append([]string(nil), all...)
}
