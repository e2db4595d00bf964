package input

import "github.com/lixenwraith/keyfall/charset"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit // Ctrl+C anywhere, Esc outside the tier menu

	// Menus
	IntentSelectMode // mode hotkey
	IntentClearMode  // Esc in the tier menu
	IntentSelectTier // 1-9

	// Playing
	IntentTypeKey // any rune

	// Name entry
	IntentTextChar
	IntentTextBackspace
	IntentTextConfirm

	// Leaderboard
	IntentRestart // Enter or r
)

// Intent is a translated key press
type Intent struct {
	Type  IntentType
	Rune  rune
	Mode  charset.Mode
	Index int
}
