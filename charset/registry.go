package charset

import "fmt"

// Zhuyin initials in keyboard order followed by digits
const (
	englishSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	zhuyinSymbols  = "ㄅㄆㄇㄈㄉㄊㄋㄌㄍㄎㄏㄐㄑㄒㄓㄔㄕㄖㄗㄘㄙ1234567890"
)

// zhuyinKeys follows the standard (Dachen) Zhuyin keyboard layout
var zhuyinKeys = map[rune]rune{
	'ㄅ': '1', 'ㄆ': 'Q', 'ㄇ': 'A', 'ㄈ': 'Z',
	'ㄉ': '2', 'ㄊ': 'W', 'ㄋ': 'S', 'ㄌ': 'X',
	'ㄍ': 'E', 'ㄎ': 'D', 'ㄏ': 'C',
	'ㄐ': 'R', 'ㄑ': 'F', 'ㄒ': 'V',
	'ㄓ': '5', 'ㄔ': 'T', 'ㄕ': 'G', 'ㄖ': 'B',
	'ㄗ': 'Y', 'ㄘ': 'H', 'ㄙ': 'N',
	'1': '1', '2': '2', '3': '3', '4': '4', '5': '5',
	'6': '6', '7': '7', '8': '8', '9': '9', '0': '0',
}

var (
	registry = map[Mode]Set{}
	order    []Mode
)

func init() {
	MustRegister(Set{
		Mode:    ModeEnglish,
		Label:   "English",
		Symbols: []rune(englishSymbols),
	})
	MustRegister(Set{
		Mode:    ModeZhuyin,
		Label:   "Zhuyin",
		Symbols: []rune(zhuyinSymbols),
		Keys:    zhuyinKeys,
	})
}

// MustRegister adds a set to the registry, panicking on a configuration defect
func MustRegister(s Set) {
	if err := s.Validate(); err != nil {
		panic(fmt.Sprintf("charset: %v", err))
	}
	if _, exists := registry[s.Mode]; !exists {
		order = append(order, s.Mode)
	}
	registry[s.Mode] = s
}

// Lookup returns the set registered for mode
func Lookup(mode Mode) (Set, error) {
	s, ok := registry[mode]
	if !ok {
		return Set{}, fmt.Errorf("%q: %w", mode, ErrUnknownMode)
	}
	return s, nil
}

// Modes returns registered modes in registration order
func Modes() []Mode {
	out := make([]Mode, len(order))
	copy(out, order)
	return out
}
