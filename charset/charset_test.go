package charset

import (
	"errors"
	"testing"
)

func TestLookupBuiltins(t *testing.T) {
	en, err := Lookup(ModeEnglish)
	if err != nil {
		t.Fatalf("Lookup(en) failed: %v", err)
	}
	if len(en.Symbols) != 26 {
		t.Errorf("Expected 26 English symbols, got %d", len(en.Symbols))
	}
	if en.Phonetic() {
		t.Error("English set must use direct input")
	}

	zh, err := Lookup(ModeZhuyin)
	if err != nil {
		t.Fatalf("Lookup(zh) failed: %v", err)
	}
	if len(zh.Symbols) != 31 {
		t.Errorf("Expected 31 Zhuyin symbols, got %d", len(zh.Symbols))
	}
	if !zh.Phonetic() {
		t.Error("Zhuyin set must use phonetic input")
	}
}

func TestLookupUnknownMode(t *testing.T) {
	_, err := Lookup("fr")
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Expected ErrUnknownMode, got %v", err)
	}
}

// TestZhuyinMappingTotal verifies every phonetic symbol has exactly one canonical key
func TestZhuyinMappingTotal(t *testing.T) {
	zh, _ := Lookup(ModeZhuyin)
	for _, sym := range zh.Symbols {
		key, ok := zh.Keys[sym]
		if !ok {
			t.Errorf("Symbol %q has no key", sym)
			continue
		}
		if Canonical(key) != key {
			t.Errorf("Symbol %q maps to non-canonical key %q", sym, key)
		}
	}
	if len(zh.Keys) != len(zh.Symbols) {
		t.Errorf("Expected %d mapping entries, got %d", len(zh.Symbols), len(zh.Keys))
	}
}

func TestZhuyinKnownKeys(t *testing.T) {
	zh, _ := Lookup(ModeZhuyin)
	tests := []struct {
		sym rune
		key rune
	}{
		{'ㄅ', '1'},
		{'ㄆ', 'Q'},
		{'ㄇ', 'A'},
		{'ㄓ', '5'},
		{'ㄙ', 'N'},
		{'0', '0'},
	}
	for _, tt := range tests {
		if got := zh.Keys[tt.sym]; got != tt.key {
			t.Errorf("Key for %q: expected %q, got %q", tt.sym, tt.key, got)
		}
	}
}

func TestValidateDefects(t *testing.T) {
	tests := []struct {
		name string
		set  Set
		want error
	}{
		{"empty", Set{Mode: "x"}, ErrEmptySet},
		{"duplicate", Set{Mode: "x", Symbols: []rune("AA")}, ErrDuplicate},
		{"missing key", Set{Mode: "x", Symbols: []rune("ab"), Keys: map[rune]rune{'a': 'A'}}, ErrMissingKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.set.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateRejectsLowercaseKey(t *testing.T) {
	s := Set{Mode: "x", Symbols: []rune("a"), Keys: map[rune]rune{'a': 'q'}}
	if err := s.Validate(); err == nil {
		t.Error("Expected error for non-canonical key")
	}
}

func TestMustRegisterPanicsOnDefect(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for a set with a missing key")
		}
	}()
	MustRegister(Set{Mode: "broken", Symbols: []rune("ㄅ"), Keys: map[rune]rune{}})
}

func TestDrawStaysInSet(t *testing.T) {
	rng := NewSeededRand(7)
	for _, mode := range Modes() {
		s, _ := Lookup(mode)
		for i := 0; i < 500; i++ {
			if sym := s.Draw(rng); !s.Contains(sym) {
				t.Fatalf("Mode %s drew %q outside the set", mode, sym)
			}
		}
	}
}

func TestDrawCoversSet(t *testing.T) {
	rng := NewSeededRand(11)
	s, _ := Lookup(ModeEnglish)
	seen := make(map[rune]bool)
	for i := 0; i < 5000; i++ {
		seen[s.Draw(rng)] = true
	}
	if len(seen) != len(s.Symbols) {
		t.Errorf("Expected all %d symbols drawn, got %d", len(s.Symbols), len(seen))
	}
}

func TestCanonical(t *testing.T) {
	if Canonical('a') != 'A' {
		t.Error("Expected 'a' to fold to 'A'")
	}
	if Canonical('1') != '1' {
		t.Error("Digits must be unchanged")
	}
	if Canonical('ㄅ') != 'ㄅ' {
		t.Error("Zhuyin must be unchanged")
	}
}

func TestModesOrder(t *testing.T) {
	modes := Modes()
	if len(modes) < 2 || modes[0] != ModeEnglish || modes[1] != ModeZhuyin {
		t.Errorf("Unexpected mode order: %v", modes)
	}
}
