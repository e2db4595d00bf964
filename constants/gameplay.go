package constants

// Session
const (
	// InitialLives is the number of lives at the start of every session
	InitialLives = 10

	// DropStep is the Y increment applied to every live target per drop tick
	DropStep = 10
)

// Tier Progression
const (
	// TierAdvanceThreshold is the number of targets cleared within a tier that completes it
	TierAdvanceThreshold = 50
)

// Spawn Placement
const (
	// SpawnMaxAttempts is the placement retry budget for a single candidate
	SpawnMaxAttempts = 50
)

// Leaderboard
const (
	// LeaderboardSize is the maximum number of persisted entries
	LeaderboardSize = 10

	// DefaultPlayerName replaces an empty name on submission
	DefaultPlayerName = "Anonymous"

	// MaxNameLength is the maximum number of runes accepted in the name prompt
	MaxNameLength = 16

	// LeaderboardDateLayout formats the entry timestamp
	LeaderboardDateLayout = "2006-01-02 15:04:05"
)
