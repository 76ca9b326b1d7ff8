package text

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "plain sentence gains terminator",
			input: "hello world",
			want:  "hello world.",
		},
		{
			name:  "terminator preserved",
			input: "hello world!",
			want:  "hello world!",
		},
		{
			name:  "full cascade",
			input: "Dr. Smith paid $5.50 on the 3rd",
			want:  "Doctor Smith paid five dollars, fifty cents on the third.",
		},
		{
			name:  "punctuation reduced before expansion",
			input: "the well-known year: 1984",
			want:  "the well known year, nineteen eighty-four.",
		},
		{
			name:  "whitespace collapsed",
			input: "too   many \t spaces",
			want:  "too many spaces.",
		},
		{
			name:  "line endings become single spaces",
			input: "line one\r\nline two",
			want:  "line one line two.",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  padded  ",
			want:  "padded.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q; want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeLeavesOnlyReducedPunctuationAndSingleSpaces(t *testing.T) {
	inputs := []string{
		"A tricky -- one; with (lots) of 1,234 oddities: yes-no",
		"Mrs. Robinson owes $12.05 -- still",
	}

	for _, in := range inputs {
		got := Normalize(in)
		if strings.ContainsAny(got, ";:-0123456789") {
			t.Errorf("Normalize(%q) = %q; deprecated characters remain", in, got)
		}
		if strings.Contains(got, "  ") {
			t.Errorf("Normalize(%q) = %q; doubled space remains", in, got)
		}
	}
}

func TestEnsureTerminator(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"done", "done."},
		{"done.", "done."},
		{"done!", "done!"},
		{"done?", "done?"},
		{"done,", "done,"},
	}

	for _, tt := range tests {
		if got := EnsureTerminator(tt.input); got != tt.want {
			t.Errorf("EnsureTerminator(%q) = %q; want %q", tt.input, got, tt.want)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("a \t b\n\nc"); got != "a b c" {
		t.Errorf(`CollapseWhitespace = %q; want "a b c"`, got)
	}
}
