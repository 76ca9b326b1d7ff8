package text

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	commaNumberRe = regexp.MustCompile(`[0-9][0-9,]+[0-9]`)
	poundsRe      = regexp.MustCompile(`£([0-9,]*[0-9]+)`)
	dollarsRe     = regexp.MustCompile(`\$[0-9.,]*[0-9]+`)
	decimalRe     = regexp.MustCompile(`[0-9]+\.[0-9]+`)
	ordinalRe     = regexp.MustCompile(`[0-9]+(?:st|nd|rd|th)`)
	numberRe      = regexp.MustCompile(`[0-9]+`)
)

// ExpandNumbers rewrites numerals into their spoken-word form. The passes
// run in a fixed order: thousands commas are stripped first so the currency
// and cardinal passes see plain digit runs, currency before decimals so
// "$5.50" is read as dollars and cents rather than "five point five zero",
// and ordinals before bare integers so the suffix is still attached.
// Running it again on fully expanded text is a no-op.
func ExpandNumbers(s string) string {
	s = commaNumberRe.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ReplaceAll(m, ",", "")
	})
	s = poundsRe.ReplaceAllString(s, "$1 pounds")
	s = dollarsRe.ReplaceAllStringFunc(s, expandDollars)
	s = decimalRe.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ReplaceAll(m, ".", " point ")
	})
	s = ordinalRe.ReplaceAllStringFunc(s, expandOrdinal)
	s = numberRe.ReplaceAllStringFunc(s, expandInteger)

	return s
}

// expandDollars spells a dollar amount as digit-form "N dollars, M cents";
// the trailing integer pass turns the digits into words. Amounts with more
// than one decimal point pass through with " dollars" appended.
func expandDollars(m string) string {
	amount := strings.ReplaceAll(strings.TrimPrefix(m, "$"), ",", "")

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return amount + " dollars"
	}

	dollars := 0
	if parts[0] != "" {
		dollars, _ = strconv.Atoi(parts[0])
	}
	cents := 0
	if len(parts) > 1 && parts[1] != "" {
		cents, _ = strconv.Atoi(parts[1])
	}

	switch {
	case dollars != 0 && cents != 0:
		return strconv.Itoa(dollars) + " " + pluralize("dollar", dollars) +
			", " + strconv.Itoa(cents) + " " + pluralize("cent", cents)
	case dollars != 0:
		return strconv.Itoa(dollars) + " " + pluralize("dollar", dollars)
	case cents != 0:
		return strconv.Itoa(cents) + " " + pluralize("cent", cents)
	default:
		return "zero dollars"
	}
}

func pluralize(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

func expandOrdinal(m string) string {
	n, err := strconv.ParseInt(strings.TrimRight(m, "sndrth"), 10, 64)
	if err != nil {
		return m
	}
	return ordinalWords(n)
}

// expandInteger spells a bare integer, with the spoken-year conventions for
// values between 1001 and 2999. Digit runs too long for int64 pass through.
func expandInteger(m string) string {
	n, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return m
	}

	if n > 1000 && n < 3000 {
		switch {
		case n == 2000:
			return "two thousand"
		case n > 2000 && n < 2010:
			return "two thousand " + cardinalWords(n%100)
		case n%100 == 0:
			return cardinalWords(n/100) + " hundred"
		default:
			// Paired two-digit reading: 1984 → "nineteen eighty-four",
			// zero-valued tens spoken as "oh": 1906 → "nineteen oh six".
			lo := n % 100
			if lo < 10 {
				return cardinalWords(n/100) + " oh " + cardinalWords(lo)
			}
			return cardinalWords(n/100) + " " + cardinalWords(lo)
		}
	}

	return cardinalWords(n)
}

var onesWords = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tensWords = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

var scaleWords = []string{
	"", "thousand", "million", "billion", "trillion", "quadrillion",
	"quintillion",
}

// cardinalWords spells n without "and" conjunctions:
// 1234 → "one thousand two hundred thirty-four".
func cardinalWords(n int64) string {
	if n == 0 {
		return "zero"
	}

	var groups []string
	for scale := 0; n > 0; scale++ {
		if g := n % 1000; g > 0 {
			word := hundredsWords(g)
			if scaleWords[scale] != "" {
				word += " " + scaleWords[scale]
			}
			groups = append([]string{word}, groups...)
		}
		n /= 1000
	}

	return strings.Join(groups, " ")
}

func hundredsWords(n int64) string {
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, onesWords[h], "hundred")
	}
	if r := n % 100; r > 0 {
		parts = append(parts, tensUnitsWords(r))
	}
	return strings.Join(parts, " ")
}

func tensUnitsWords(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	if u := n % 10; u > 0 {
		return tensWords[n/10] + "-" + onesWords[u]
	}
	return tensWords[n/10]
}

var irregularOrdinals = map[string]string{
	"one": "first", "two": "second", "three": "third", "five": "fifth",
	"eight": "eighth", "nine": "ninth", "twelve": "twelfth",
}

// ordinalWords spells n as an ordinal: 3 → "third", 21 → "twenty-first".
func ordinalWords(n int64) string {
	cardinal := cardinalWords(n)

	// Only the final word changes form.
	cut := strings.LastIndexAny(cardinal, " -") + 1
	head, last := cardinal[:cut], cardinal[cut:]

	switch {
	case irregularOrdinals[last] != "":
		last = irregularOrdinals[last]
	case strings.HasSuffix(last, "y"):
		last = strings.TrimSuffix(last, "y") + "ieth"
	default:
		last += "th"
	}

	return head + last
}
