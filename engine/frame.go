package engine

import (
	"unicode"

	"github.com/lixenwraith/keyfall/charset"
	"github.com/lixenwraith/keyfall/difficulty"
	"github.com/lixenwraith/keyfall/leaderboard"
)

// State names a lifecycle state
type State string

const (
	StateSelectMode  State = "select-mode"
	StatePlaying     State = "playing"
	StateGameOver    State = "game-over-entry"
	StateLeaderboard State = "leaderboard"
)

// ModeOption is one entry of the mode menu
type ModeOption struct {
	Mode  charset.Mode
	Label string
}

// Hotkey is the menu key that picks this mode: the lower-cased first rune of the label
func (o ModeOption) Hotkey() rune {
	for _, r := range o.Label {
		return unicode.ToLower(r)
	}
	return 0
}

// Frame is a read-only copy of everything the renderer draws
type Frame struct {
	State State

	// Menus
	Modes      []ModeOption
	Tiers      []difficulty.Tier
	Mode       charset.Mode
	ModeLabel  string
	ModeChosen bool

	// Playing
	SessionID   string
	TierIndex   int
	Tier        difficulty.Tier
	Score       int
	Lives       int
	Cleared     int
	ClearTarget int
	Targets     []Target
	Phonetic    bool

	// Game over and leaderboard
	FinalScore  int
	Name        string
	Leaderboard []leaderboard.Entry
	LastEntry   leaderboard.Entry
	LastRank    int
}
