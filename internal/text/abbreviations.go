package text

import "regexp"

// abbreviationTable pairs each abbreviation stem with its spoken expansion.
// Matching is whole-word, case-insensitive, and anchored to the trailing
// period, so stems that prefix one another ("dr"/"drs", "st"/"sgt") cannot
// partially match.
var abbreviationTable = []struct {
	stem      string
	expansion string
}{
	{"mrs", "Missis"},
	{"mr", "Mister"},
	{"dr", "Doctor"},
	{"st", "Saint"},
	{"co", "Company"},
	{"jr", "Junior"},
	{"maj", "Major"},
	{"gen", "General"},
	{"drs", "Doctors"},
	{"rev", "Reverend"},
	{"lt", "Lieutenant"},
	{"hon", "Honorable"},
	{"sgt", "Sergeant"},
	{"capt", "Captain"},
	{"esq", "Esquire"},
	{"ltd", "Limited"},
	{"col", "Colonel"},
	{"ft", "Fort"},
	{"etc", "etcetera"},
}

var abbreviationRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(abbreviationTable))
	for i, a := range abbreviationTable {
		res[i] = regexp.MustCompile(`(?i)\b` + a.stem + `\.`)
	}
	return res
}()

// ExpandAbbreviations replaces known abbreviated titles and words with their
// expanded spoken form, leaving surrounding text untouched.
func ExpandAbbreviations(s string) string {
	for i, re := range abbreviationRes {
		s = re.ReplaceAllString(s, abbreviationTable[i].expansion)
	}
	return s
}
