package engine

import (
	"math"

	"github.com/lixenwraith/keyfall/charset"
	"github.com/lixenwraith/keyfall/constants"
	"github.com/lixenwraith/keyfall/difficulty"
)

// Spawner creates non-overlapping targets at the top of the field
// IDs are issued from a single counter for the spawner's lifetime and never reused
type Spawner struct {
	rng    charset.Rand
	nextID uint64
}

// NewSpawner creates a spawner drawing positions and symbols from rng
func NewSpawner(rng charset.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn returns up to tier.SpawnCount new targets at Y=0
// A candidate that cannot be placed within SpawnMaxAttempts is dropped, so the
// result may be shorter than requested; existing is never modified
func (s *Spawner) Spawn(tier difficulty.Tier, existing []Target, set charset.Set) []Target {
	batch := make([]Target, 0, tier.SpawnCount)

	for i := 0; i < tier.SpawnCount; i++ {
		x, ok := s.place(existing, batch)
		if !ok {
			continue
		}
		s.nextID++
		batch = append(batch, Target{
			ID:     s.nextID,
			Symbol: set.Draw(s.rng),
			X:      x,
			Y:      0,
		})
	}
	return batch
}

// place draws X until the candidate clears every existing and batched target
func (s *Spawner) place(existing, batch []Target) (float64, bool) {
	const (
		minX = float64(constants.TargetRadius)
		span = float64(constants.FieldWidth - 2*constants.TargetRadius)
	)

	for attempt := 0; attempt < constants.SpawnMaxAttempts; attempt++ {
		x := minX + s.rng.Float64()*span
		if clearOf(x, existing) && clearOf(x, batch) {
			return x, true
		}
	}
	return 0, false
}

// clearOf reports whether a candidate at (x, 0) keeps MinSpawnSeparation from all targets
func clearOf(x float64, targets []Target) bool {
	for _, t := range targets {
		if math.Hypot(t.X-x, t.Y) < constants.MinSpawnSeparation {
			return false
		}
	}
	return true
}
