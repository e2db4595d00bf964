// Package status holds lock-free runtime counters shared between the engine
// and the debug HUD.
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Well-known metric keys
const (
	DropTicks      = "engine.ticks.drop"
	FloorChecks    = "engine.ticks.floor"
	Spawned        = "engine.spawn.placed"
	SpawnDropped   = "engine.spawn.dropped"
	Hits           = "engine.input.hits"
	Misses         = "engine.input.misses"
	LivesLost      = "engine.lives.lost"
	Sessions       = "engine.sessions"
	Accuracy       = "engine.input.accuracy"
	State          = "engine.state"
	AudioFailures  = "audio.failures"
	SaveFailures   = "leaderboard.save.failures"
	SaveCompleted  = "leaderboard.save.completed"
	StaleCallbacks = "engine.ticks.stale"
)

// Registry groups metric maps by value type
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Summary renders all metrics as "key=value" pairs in sorted order, ints first
func (r *Registry) Summary() string {
	var parts []string
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", shortKey(key), v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.2f", shortKey(key), v.Get()))
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		parts = append(parts, fmt.Sprintf("%s=%s", shortKey(key), v.Load()))
	})
	return strings.Join(parts, " ")
}

// shortKey drops the leading subsystem segment for compact display
func shortKey(key string) string {
	if i := strings.IndexByte(key, '.'); i >= 0 && i+1 < len(key) {
		return key[i+1:]
	}
	return key
}
