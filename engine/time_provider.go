package engine

import "time"

// TimeProvider supplies wall-clock time for session and leaderboard timestamps
type TimeProvider interface {
	Now() time.Time
}

// SystemTime is the TimeProvider backed by time.Now
type SystemTime struct{}

// Now returns the current time
func (SystemTime) Now() time.Time {
	return time.Now()
}
