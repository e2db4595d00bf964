// Package leaderboard ranks, persists and serves the top score entries.
package leaderboard

import (
	"sort"
	"strings"
	"time"

	"github.com/lixenwraith/keyfall/constants"
)

// Entry is one leaderboard row
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// NewEntry builds an entry, substituting the placeholder for an empty name
func NewEntry(name string, score int, at time.Time) Entry {
	name = strings.TrimSpace(name)
	if name == "" {
		name = constants.DefaultPlayerName
	}
	return Entry{
		Name:  name,
		Score: score,
		Date:  at.Format(constants.LeaderboardDateLayout),
	}
}

// Normalize returns a copy sorted by score descending and capped at max
// Equal scores keep their relative order
func Normalize(entries []Entry, max int) []Entry {
	out := append([]Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > max {
		out = out[:max]
	}
	return out
}

// Insert merges e into entries and returns the ranked, capped list with the
// 1-based rank of e, or 0 when e did not make the cut
// e is placed after existing entries with an equal score
func Insert(entries []Entry, e Entry, max int) ([]Entry, int) {
	ranked := Normalize(entries, len(entries))

	pos := len(ranked)
	for i, existing := range ranked {
		if existing.Score < e.Score {
			pos = i
			break
		}
	}

	merged := make([]Entry, 0, len(ranked)+1)
	merged = append(merged, ranked[:pos]...)
	merged = append(merged, e)
	merged = append(merged, ranked[pos:]...)

	if len(merged) > max {
		merged = merged[:max]
	}
	if pos >= max {
		return merged, 0
	}
	return merged, pos + 1
}
