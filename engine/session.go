package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/keyfall/charset"
	"github.com/lixenwraith/keyfall/constants"
)

// Session is the state of one play-through, created on entering playing
type Session struct {
	ID        string
	Set       charset.Set
	Matcher   Matcher
	TierIndex int
	Score     int
	Lives     int
	Cleared   int
	Targets   []Target
	StartedAt time.Time
}

// newSession creates a fresh session with full lives and no targets
func newSession(set charset.Set, tierIndex int, now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Set:       set,
		Matcher:   MatcherFor(set),
		TierIndex: tierIndex,
		Lives:     constants.InitialLives,
		StartedAt: now,
	}
}
