package core

// SoundType represents the game's sound effects
type SoundType int

const (
	SoundHit      SoundType = iota // Target cleared
	SoundFail                      // Target reached the floor
	SoundGameOver                  // Last life lost
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundHit:      "hit",
	SoundFail:     "fail",
	SoundGameOver: "gameover",
}

// String returns the effect name used in logs
func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
