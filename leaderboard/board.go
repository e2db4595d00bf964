package leaderboard

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/keyfall/constants"
	"github.com/lixenwraith/keyfall/core"
	"github.com/lixenwraith/keyfall/status"
)

// Board is the in-memory ranked list with a background writer
// Submit never blocks on disk; the writer persists the latest snapshot
type Board struct {
	mu      sync.Mutex
	entries []Entry
	closed  bool

	store  Store
	logger *log.Logger
	reg    *status.Registry

	pending   chan []Entry
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewBoard loads the store and starts the writer
// Load failures are logged and the board starts empty
func NewBoard(store Store, logger *log.Logger, reg *status.Registry) *Board {
	b := &Board{
		store:   store,
		logger:  logger,
		reg:     reg,
		pending: make(chan []Entry, 1),
	}

	entries, err := store.Load()
	if err != nil {
		logger.Warn("leaderboard load failed, starting empty", "err", err)
		entries = nil
	}
	b.entries = Normalize(entries, constants.LeaderboardSize)

	b.wg.Add(1)
	core.Go(b.writer)
	return b
}

// Entries returns a copy of the ranked list
func (b *Board) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Entry(nil), b.entries...)
}

// Submit records a finished game and schedules persistence
// Returns the stored entry and its 1-based rank (0 if it missed the top list)
func (b *Board) Submit(name string, score int, at time.Time) (Entry, int) {
	entry := NewEntry(name, score, at)

	b.mu.Lock()
	defer b.mu.Unlock()

	ranked, rank := Insert(b.entries, entry, constants.LeaderboardSize)
	b.entries = ranked

	if b.closed {
		b.logger.Warn("leaderboard closed, entry not persisted", "name", entry.Name, "score", score)
		return entry, rank
	}
	b.enqueue(append([]Entry(nil), ranked...))
	return entry, rank
}

// enqueue replaces any unwritten snapshot with the newer one, caller holds mu
func (b *Board) enqueue(snapshot []Entry) {
	for {
		select {
		case b.pending <- snapshot:
			return
		default:
			select {
			case <-b.pending:
			default:
			}
		}
	}
}

// writer persists snapshots until Close
func (b *Board) writer() {
	defer b.wg.Done()
	for snapshot := range b.pending {
		if err := b.store.Save(snapshot); err != nil {
			b.logger.Error("leaderboard save failed", "err", err)
			if b.reg != nil {
				b.reg.Ints.Get(status.SaveFailures).Add(1)
			}
			continue
		}
		if b.reg != nil {
			b.reg.Ints.Get(status.SaveCompleted).Add(1)
		}
	}
}

// Close flushes the pending snapshot and stops the writer
func (b *Board) Close() {
	b.closeOnce.Do(func() {
		b.mu.Lock()
		b.closed = true
		close(b.pending)
		b.mu.Unlock()

		b.wg.Wait()
	})
}
