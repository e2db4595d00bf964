// Package charset supplies the symbol alphabets for each input mode and, for
// phonetic modes, the symbol to keyboard key table used for matching.
package charset

import (
	"errors"
	"fmt"
	"unicode"
)

// Mode identifies a character set
type Mode string

const (
	// ModeEnglish is the direct-input Latin alphabet
	ModeEnglish Mode = "en"
	// ModeZhuyin is the phonetic-input Zhuyin (Bopomofo) set
	ModeZhuyin Mode = "zh"
)

// Sentinel errors
var (
	ErrUnknownMode = errors.New("unknown character set mode")
	ErrEmptySet    = errors.New("character set is empty")
	ErrMissingKey  = errors.New("phonetic symbol has no key mapping")
	ErrDuplicate   = errors.New("character set contains a duplicate symbol")
)

// Set is an ordered alphabet for one mode
// Keys is non-nil only for modes that require indirect (phonetic) input
type Set struct {
	Mode    Mode
	Label   string
	Symbols []rune
	Keys    map[rune]rune
}

// Phonetic reports whether matching goes through the Keys table
func (s Set) Phonetic() bool {
	return s.Keys != nil
}

// Validate reports configuration defects: empty alphabet, duplicate symbols or,
// for phonetic sets, a symbol without exactly one mapped key
func (s Set) Validate() error {
	if len(s.Symbols) == 0 {
		return fmt.Errorf("mode %q: %w", s.Mode, ErrEmptySet)
	}

	seen := make(map[rune]struct{}, len(s.Symbols))
	for _, sym := range s.Symbols {
		if _, dup := seen[sym]; dup {
			return fmt.Errorf("mode %q symbol %q: %w", s.Mode, sym, ErrDuplicate)
		}
		seen[sym] = struct{}{}

		if s.Keys == nil {
			continue
		}
		key, ok := s.Keys[sym]
		if !ok || key == 0 {
			return fmt.Errorf("mode %q symbol %q: %w", s.Mode, sym, ErrMissingKey)
		}
		if Canonical(key) != key {
			return fmt.Errorf("mode %q symbol %q: key %q is not canonical", s.Mode, sym, key)
		}
	}
	return nil
}

// Draw returns a uniformly random symbol from the set
func (s Set) Draw(rng Rand) rune {
	return s.Symbols[rng.IntN(len(s.Symbols))]
}

// Contains reports whether sym belongs to the set
func (s Set) Contains(sym rune) bool {
	for _, r := range s.Symbols {
		if r == sym {
			return true
		}
	}
	return false
}

// Canonical folds a key or symbol to the case used for comparisons
func Canonical(r rune) rune {
	return unicode.ToUpper(r)
}
