package symbols

import "testing"

func TestControlSymbolsComeFirst(t *testing.T) {
	if PadID != 0 {
		t.Errorf("PadID = %d; want 0", PadID)
	}
	if EOSID != 1 {
		t.Errorf("EOSID = %d; want 1", EOSID)
	}
	if UnknownID != 2 {
		t.Errorf("UnknownID = %d; want 2", UnknownID)
	}
}

func TestCount(t *testing.T) {
	// 3 controls + 52 letters + 11 punctuation + 84 phonetic units.
	want := 3 + 52 + 11 + 84
	if got := Count(); got != want {
		t.Errorf("Count() = %d; want %d", got, want)
	}
}

func TestIDCoversEveryMember(t *testing.T) {
	for wantID, sym := range All() {
		id, ok := ID(sym)
		if !ok {
			t.Fatalf("ID(%q) not found", sym)
		}
		if id != wantID {
			t.Errorf("ID(%q) = %d; want %d", sym, id, wantID)
		}
	}
}

func TestPhoneticUnitsDistinctFromLetters(t *testing.T) {
	// "B" spells both a letter and a consonant; the prefix keeps them apart.
	letterID, ok := ID("B")
	if !ok {
		t.Fatal(`ID("B") not found`)
	}

	unitID, ok := PhoneticID("B")
	if !ok {
		t.Fatal(`PhoneticID("B") not found`)
	}

	if letterID == unitID {
		t.Errorf("letter B and phonetic unit B share ID %d", letterID)
	}
}

func TestPhoneticIDStressVariants(t *testing.T) {
	tests := []struct {
		unit string
		want bool
	}{
		{"AH", true},
		{"AH0", true},
		{"AH1", true},
		{"AH2", true},
		{"OW1", true},
		{"ZH", true},
		{"AH3", false},
		{"XX", false},
		{"", false},
	}

	for _, tt := range tests {
		if _, ok := PhoneticID(tt.unit); ok != tt.want {
			t.Errorf("PhoneticID(%q) found = %v; want %v", tt.unit, ok, tt.want)
		}
	}
}

func TestIsSymbol(t *testing.T) {
	tests := []struct {
		tok  string
		want bool
	}{
		{"a", true},
		{"Z", true},
		{" ", true},
		{"!", true},
		{"@AA1", true},
		{Pad, true},
		{EOS, true},
		{Unknown, true},
		{"AA1", false}, // bare unit name without prefix
		{"{", false},
		{"}", false},
		{"é", false},
		{"3", false},
	}

	for _, tt := range tests {
		if got := IsSymbol(tt.tok); got != tt.want {
			t.Errorf("IsSymbol(%q) = %v; want %v", tt.tok, got, tt.want)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0] = "mutated"
	if All()[0] != Pad {
		t.Error("All() exposes internal table")
	}
}
