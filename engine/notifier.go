package engine

import (
	"time"

	"github.com/lixenwraith/keyfall/core"
	"github.com/lixenwraith/keyfall/difficulty"
	"github.com/lixenwraith/keyfall/leaderboard"
)

// Notifier receives lifecycle announcements
// Methods are called with the game lock held and must not call back into Game
type Notifier interface {
	LevelComplete(completed, next difficulty.Tier)
	GameOver(score int)
	StateChanged(from, to State)
}

// NopNotifier discards all notifications
type NopNotifier struct{}

func (NopNotifier) LevelComplete(difficulty.Tier, difficulty.Tier) {}
func (NopNotifier) GameOver(int)                                   {}
func (NopNotifier) StateChanged(State, State)                      {}

// SoundPlayer plays one effect without blocking
type SoundPlayer interface {
	Play(core.SoundType) error
}

type silentPlayer struct{}

func (silentPlayer) Play(core.SoundType) error { return nil }

// Leaderboard is the ranked score list the game submits to
type Leaderboard interface {
	Entries() []leaderboard.Entry
	Submit(name string, score int, at time.Time) (leaderboard.Entry, int)
}
