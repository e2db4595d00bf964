// Package difficulty defines the ordered tier table that sets drop cadence and
// spawn count.
package difficulty

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Sentinel errors
var (
	ErrEmptyTable  = errors.New("difficulty table has no tiers")
	ErrInvalidTier = errors.New("invalid difficulty tier")
)

// Tier is one difficulty level
type Tier struct {
	Name         string
	TickInterval time.Duration
	SpawnCount   int
}

// Table is an ordered, immutable list of tiers
type Table struct {
	tiers []Tier
}

// Default returns the built-in easy/medium/hard table
func Default() Table {
	return Table{tiers: []Tier{
		{Name: "easy", TickInterval: 2000 * time.Millisecond, SpawnCount: 1},
		{Name: "medium", TickInterval: 1500 * time.Millisecond, SpawnCount: 2},
		{Name: "hard", TickInterval: 1000 * time.Millisecond, SpawnCount: 3},
	}}
}

// New validates and copies tiers into a Table
func New(tiers []Tier) (Table, error) {
	t := Table{tiers: append([]Tier(nil), tiers...)}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// Validate checks the table is usable
func (t Table) Validate() error {
	if len(t.tiers) == 0 {
		return ErrEmptyTable
	}
	for i, tier := range t.tiers {
		if tier.TickInterval <= 0 {
			return fmt.Errorf("tier %d (%s): interval %v: %w", i, tier.Name, tier.TickInterval, ErrInvalidTier)
		}
		if tier.SpawnCount < 1 {
			return fmt.Errorf("tier %d (%s): spawn count %d: %w", i, tier.Name, tier.SpawnCount, ErrInvalidTier)
		}
	}
	return nil
}

// Len returns the number of tiers
func (t Table) Len() int {
	return len(t.tiers)
}

// At returns the tier at index i; ok is false when i is out of range
func (t Table) At(i int) (Tier, bool) {
	if i < 0 || i >= len(t.tiers) {
		return Tier{}, false
	}
	return t.tiers[i], true
}

// LastIndex returns the index of the hardest tier
func (t Table) LastIndex() int {
	return len(t.tiers) - 1
}

// Tiers returns a copy of the tiers in order
func (t Table) Tiers() []Tier {
	return append([]Tier(nil), t.tiers...)
}

// Names returns tier names in order
func (t Table) Names() []string {
	names := make([]string, len(t.tiers))
	for i, tier := range t.tiers {
		names[i] = tier.Name
	}
	return names
}

// fileConfig mirrors the TOML layout
//
//	[[tier]]
//	name = "easy"
//	interval = "2s"
//	spawn = 1
type fileConfig struct {
	Tier []struct {
		Name     string `toml:"name"`
		Interval string `toml:"interval"`
		Spawn    int    `toml:"spawn"`
	} `toml:"tier"`
}

// Parse decodes a TOML tier table
func Parse(data []byte) (Table, error) {
	var cfg fileConfig
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Table{}, fmt.Errorf("failed to decode tier table: %w", err)
	}

	tiers := make([]Tier, 0, len(cfg.Tier))
	for i, raw := range cfg.Tier {
		d, err := time.ParseDuration(raw.Interval)
		if err != nil {
			return Table{}, fmt.Errorf("tier %d (%s): %w", i, raw.Name, err)
		}
		tiers = append(tiers, Tier{Name: raw.Name, TickInterval: d, SpawnCount: raw.Spawn})
	}
	return New(tiers)
}

// Load reads a TOML tier table from path
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read tier table: %w", err)
	}
	return Parse(data)
}
