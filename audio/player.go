// Package audio synthesizes the game's sound effects with beep.
package audio

import (
	"errors"

	"github.com/lixenwraith/keyfall/core"
)

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio device not initialized")
	ErrUnknownSound   = errors.New("unknown sound")
)

// Player plays one effect without blocking the caller
type Player interface {
	Play(core.SoundType) error
}

// Silent is the Player used when audio is disabled
type Silent struct{}

// Play implements Player
func (Silent) Play(core.SoundType) error { return nil }
