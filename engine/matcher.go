package engine

import (
	"fmt"

	"github.com/lixenwraith/keyfall/charset"
)

// Matcher decides whether a canonical key clears a target symbol
// Implementations are DirectMatch and IndirectMatch, chosen once per session
type Matcher interface {
	Match(symbol, key rune) bool
	Kind() string
}

// DirectMatch clears a target whose symbol, canonicalized, equals the key
type DirectMatch struct{}

// Match implements Matcher
func (DirectMatch) Match(symbol, key rune) bool {
	return charset.Canonical(symbol) == key
}

// Kind implements Matcher
func (DirectMatch) Kind() string { return "direct" }

// IndirectMatch clears a target whose symbol maps to the key through a phonetic table
type IndirectMatch struct {
	Keys map[rune]rune
}

// Match implements Matcher
// A symbol absent from the table is a setup defect and panics
func (m IndirectMatch) Match(symbol, key rune) bool {
	expected, ok := m.Keys[symbol]
	if !ok {
		panic(fmt.Sprintf("engine: phonetic symbol %q has no key mapping", symbol))
	}
	return expected == key
}

// Kind implements Matcher
func (IndirectMatch) Kind() string { return "phonetic" }

// MatcherFor selects the matcher variant for a character set
func MatcherFor(set charset.Set) Matcher {
	if set.Phonetic() {
		return IndirectMatch{Keys: set.Keys}
	}
	return DirectMatch{}
}

// Resolve finds the oldest target cleared by key
// Returns the cleared target, the remaining targets in order, and whether a match occurred
// On no match the input slice is returned unchanged
func Resolve(key rune, targets []Target, m Matcher) (Target, []Target, bool) {
	key = charset.Canonical(key)
	for i, t := range targets {
		if !m.Match(t.Symbol, key) {
			continue
		}
		remaining := make([]Target, 0, len(targets)-1)
		remaining = append(remaining, targets[:i]...)
		remaining = append(remaining, targets[i+1:]...)
		return t, remaining, true
	}
	return Target{}, targets, false
}
