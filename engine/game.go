package engine

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/keyfall/charset"
	"github.com/lixenwraith/keyfall/constants"
	"github.com/lixenwraith/keyfall/core"
	"github.com/lixenwraith/keyfall/difficulty"
	"github.com/lixenwraith/keyfall/engine/fsm"
	"github.com/lixenwraith/keyfall/leaderboard"
	"github.com/lixenwraith/keyfall/status"
)

//go:embed lifecycle.toml
var lifecycleGraph []byte

// Lifecycle events
const (
	EventTierChosen     fsm.Event = "tier_chosen"
	EventLivesExhausted fsm.Event = "lives_exhausted"
	EventNameSubmitted  fsm.Event = "name_submitted"
	EventRestart        fsm.Event = "restart"
)

// Options configures a Game; zero fields fall back to production defaults
type Options struct {
	Tiers  difficulty.Table
	Modes  []charset.Mode
	Lookup func(charset.Mode) (charset.Set, error)

	Audio       SoundPlayer
	Notifier    Notifier
	Leaderboard Leaderboard

	Rand          charset.Rand
	NewTicker     TickerFunc
	FloorInterval time.Duration
	Time          TimeProvider

	Logger *log.Logger
	Status *status.Registry
}

// Game is the lifecycle manager
// One mutex serializes keystrokes, timer callbacks and snapshots
type Game struct {
	mu      sync.Mutex
	machine *fsm.Machine[*Game]

	tiers   difficulty.Table
	modes   []ModeOption
	lookup  func(charset.Mode) (charset.Set, error)
	spawner *Spawner
	clock   *Clock
	time    TimeProvider

	audio    SoundPlayer
	notifier Notifier
	board    Leaderboard

	logger *log.Logger
	reg    *status.Registry

	// Bumped whenever playing is left; callbacks from older runs are ignored
	generation uint64

	// Selection
	set         charset.Set
	modeChosen  bool
	pendingTier int

	session *Session
	slog    *log.Logger

	// Game over and leaderboard
	finalScore int
	name       []rune
	lastEntry  leaderboard.Entry
	lastRank   int

	hits, misses   *atomic.Int64
	dropTicks      *atomic.Int64
	floorChecks    *atomic.Int64
	spawned        *atomic.Int64
	spawnDropped   *atomic.Int64
	livesLost      *atomic.Int64
	sessions       *atomic.Int64
	staleCallbacks *atomic.Int64
	audioFailures  *atomic.Int64
	accuracy       *status.AtomicFloat
	stateName      *status.AtomicString
}

// NewGame builds a game in select-mode
func NewGame(opts Options) (*Game, error) {
	if opts.Leaderboard == nil {
		return nil, fmt.Errorf("engine: leaderboard is required")
	}
	if opts.Tiers.Len() == 0 {
		opts.Tiers = difficulty.Default()
	}
	if err := opts.Tiers.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if opts.Lookup == nil {
		opts.Lookup = charset.Lookup
	}
	if len(opts.Modes) == 0 {
		opts.Modes = charset.Modes()
	}
	if opts.Audio == nil {
		opts.Audio = silentPlayer{}
	}
	if opts.Notifier == nil {
		opts.Notifier = NopNotifier{}
	}
	if opts.Rand == nil {
		opts.Rand = charset.NewRand()
	}
	if opts.FloorInterval <= 0 {
		opts.FloorInterval = constants.FloorCheckInterval
	}
	if opts.Time == nil {
		opts.Time = SystemTime{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}

	modes := make([]ModeOption, 0, len(opts.Modes))
	for _, mode := range opts.Modes {
		set, err := opts.Lookup(mode)
		if err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
		modes = append(modes, ModeOption{Mode: mode, Label: set.Label})
	}

	g := &Game{
		tiers:    opts.Tiers,
		modes:    modes,
		lookup:   opts.Lookup,
		spawner:  NewSpawner(opts.Rand),
		clock:    NewClock(opts.NewTicker, opts.FloorInterval),
		time:     opts.Time,
		audio:    opts.Audio,
		notifier: opts.Notifier,
		board:    opts.Leaderboard,
		logger:   opts.Logger,
		reg:      opts.Status,
	}
	g.slog = g.logger
	g.bindMetrics()

	g.machine = fsm.NewMachine[*Game]()
	g.machine.RegisterGuard("mode_selected", func(g *Game) bool { return g.modeChosen })
	g.machine.RegisterAction("clear_selection", (*Game).clearSelection)
	g.machine.RegisterAction("reset_session", (*Game).resetSession)
	g.machine.RegisterAction("start_clock", (*Game).startClock)
	g.machine.RegisterAction("stop_clock", (*Game).stopClock)
	g.machine.RegisterAction("capture_score", (*Game).captureScore)
	g.machine.RegisterAction("announce_game_over", (*Game).announceGameOver)
	g.machine.RegisterAction("record_entry", (*Game).recordEntry)
	if err := g.machine.LoadConfig(lifecycleGraph); err != nil {
		return nil, fmt.Errorf("engine: lifecycle graph: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.machine.Init(g); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	g.stateName.Store(g.machine.Current())
	return g, nil
}

func (g *Game) bindMetrics() {
	ints := g.reg.Ints
	g.hits = ints.Get(status.Hits)
	g.misses = ints.Get(status.Misses)
	g.dropTicks = ints.Get(status.DropTicks)
	g.floorChecks = ints.Get(status.FloorChecks)
	g.spawned = ints.Get(status.Spawned)
	g.spawnDropped = ints.Get(status.SpawnDropped)
	g.livesLost = ints.Get(status.LivesLost)
	g.sessions = ints.Get(status.Sessions)
	g.staleCallbacks = ints.Get(status.StaleCallbacks)
	g.audioFailures = ints.Get(status.AudioFailures)
	g.accuracy = g.reg.Floats.Get(status.Accuracy)
	g.stateName = g.reg.Strings.Get(status.State)
}

// State returns the current lifecycle state
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state()
}

func (g *Game) state() State {
	return State(g.machine.Current())
}

// SelectMode chooses the character set for the next session
func (g *Game) SelectMode(mode charset.Mode) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state() != StateSelectMode {
		return fmt.Errorf("select mode in %s: %w", g.state(), ErrInvalidAction)
	}
	set, err := g.lookup(mode)
	if err != nil {
		return fmt.Errorf("select mode: %w", err)
	}
	g.set = set
	g.modeChosen = true
	g.logger.Debug("mode selected", "mode", mode)
	return nil
}

// ClearMode returns to the mode choice without leaving select-mode
func (g *Game) ClearMode() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state() != StateSelectMode {
		return fmt.Errorf("clear mode in %s: %w", g.state(), ErrInvalidAction)
	}
	g.set = charset.Set{}
	g.modeChosen = false
	return nil
}

// SelectTier starts a session at tier index i
func (g *Game) SelectTier(i int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state() != StateSelectMode {
		return fmt.Errorf("select tier in %s: %w", g.state(), ErrInvalidAction)
	}
	if !g.modeChosen {
		return fmt.Errorf("select tier: %w: %w", ErrInvalidAction, ErrNoMode)
	}
	if _, ok := g.tiers.At(i); !ok {
		return fmt.Errorf("select tier %d: %w", i, ErrUnknownTier)
	}

	g.pendingTier = i
	if !g.dispatch(EventTierChosen) {
		return fmt.Errorf("select tier: %w", ErrInvalidAction)
	}
	return nil
}

// HandleKey resolves a keystroke against the live targets
// Returns true if a target was cleared; keys outside playing are ignored
func (g *Game) HandleKey(key rune) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state() != StatePlaying || g.session == nil {
		return false
	}
	s := g.session

	target, remaining, ok := Resolve(key, s.Targets, s.Matcher)
	if !ok {
		g.misses.Add(1)
		g.updateAccuracy()
		return false
	}

	s.Targets = remaining
	s.Score++
	s.Cleared++
	g.hits.Add(1)
	g.updateAccuracy()
	g.signal(core.SoundHit)
	g.slog.Debug("target cleared", "id", target.ID, "symbol", string(target.Symbol), "score", s.Score)

	if s.Cleared >= constants.TierAdvanceThreshold {
		g.advanceTier()
	}
	return true
}

// advanceTier resets the cleared counter and moves up one tier when possible
func (g *Game) advanceTier() {
	s := g.session
	s.Cleared = 0
	if s.TierIndex >= g.tiers.LastIndex() {
		return
	}

	completed, _ := g.tiers.At(s.TierIndex)
	s.TierIndex++
	next, _ := g.tiers.At(s.TierIndex)
	g.clock.SetInterval(next.TickInterval)
	g.slog.Info("tier advanced", "from", completed.Name, "to", next.Name)
	g.notifier.LevelComplete(completed, next)
}

func (g *Game) updateAccuracy() {
	hits, misses := g.hits.Load(), g.misses.Load()
	if total := hits + misses; total > 0 {
		g.accuracy.Set(float64(hits) / float64(total))
	}
}

// Tick runs one drop tick for the current run
func (g *Game) Tick() {
	g.mu.Lock()
	token := g.generation
	g.mu.Unlock()
	g.onDrop(token)
}

// CheckFloor runs one floor heartbeat for the current run
func (g *Game) CheckFloor() {
	g.mu.Lock()
	token := g.generation
	g.mu.Unlock()
	g.onFloor(token)
}

// live reports whether a callback carrying token belongs to the active run, caller holds mu
func (g *Game) live(token uint64) bool {
	if token != g.generation || g.state() != StatePlaying || g.session == nil {
		g.staleCallbacks.Add(1)
		return false
	}
	return true
}

// onDrop advances every target, then spawns the tier's batch
func (g *Game) onDrop(token uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.live(token) {
		return
	}
	g.dropTicks.Add(1)

	s := g.session
	for i := range s.Targets {
		s.Targets[i].Y += constants.DropStep
	}

	tier, _ := g.tiers.At(s.TierIndex)
	batch := g.spawner.Spawn(tier, s.Targets, s.Set)
	s.Targets = append(s.Targets, batch...)

	g.spawned.Add(int64(len(batch)))
	if dropped := tier.SpawnCount - len(batch); dropped > 0 {
		g.spawnDropped.Add(int64(dropped))
		g.slog.Debug("spawn placement failed", "dropped", dropped, "live", len(s.Targets))
	}
}

// onFloor retires targets at the floor, one life each
func (g *Game) onFloor(token uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.live(token) {
		return
	}
	g.floorChecks.Add(1)

	s := g.session
	kept := make([]Target, 0, len(s.Targets))
	lost := 0
	for _, t := range s.Targets {
		if t.Y >= constants.FloorThreshold {
			lost++
			continue
		}
		kept = append(kept, t)
	}
	if lost == 0 {
		return
	}
	s.Targets = kept

	for i := 0; i < lost && s.Lives > 0; i++ {
		s.Lives--
		g.livesLost.Add(1)
		g.signal(core.SoundFail)
	}
	g.slog.Debug("targets reached floor", "lost", lost, "lives", s.Lives)

	if s.Lives == 0 {
		g.dispatch(EventLivesExhausted)
	}
}

// AppendName adds a rune to the name buffer on the game-over screen
func (g *Game) AppendName(r rune) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state() != StateGameOver || !unicode.IsPrint(r) {
		return false
	}
	if len(g.name) >= constants.MaxNameLength {
		return false
	}
	g.name = append(g.name, r)
	return true
}

// BackspaceName removes the last rune of the name buffer
func (g *Game) BackspaceName() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state() != StateGameOver || len(g.name) == 0 {
		return false
	}
	g.name = g.name[:len(g.name)-1]
	return true
}

// SubmitName records the final score under the buffered name and shows the leaderboard
func (g *Game) SubmitName() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.dispatch(EventNameSubmitted) {
		return fmt.Errorf("submit name in %s: %w", g.state(), ErrInvalidAction)
	}
	return nil
}

// Restart leaves the leaderboard for a fresh mode selection
func (g *Game) Restart() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.dispatch(EventRestart) {
		return fmt.Errorf("restart in %s: %w", g.state(), ErrInvalidAction)
	}
	return nil
}

// Snapshot copies the state the renderer needs
func (g *Game) Snapshot() Frame {
	g.mu.Lock()
	defer g.mu.Unlock()

	f := Frame{
		State:       g.state(),
		Modes:       append([]ModeOption(nil), g.modes...),
		Tiers:       g.tiers.Tiers(),
		ModeChosen:  g.modeChosen,
		ClearTarget: constants.TierAdvanceThreshold,
		FinalScore:  g.finalScore,
		Name:        string(g.name),
		LastEntry:   g.lastEntry,
		LastRank:    g.lastRank,
	}
	if g.modeChosen {
		f.Mode = g.set.Mode
		f.ModeLabel = g.set.Label
		f.Phonetic = g.set.Phonetic()
	}
	if s := g.session; s != nil {
		f.SessionID = s.ID
		f.Mode = s.Set.Mode
		f.ModeLabel = s.Set.Label
		f.Phonetic = s.Set.Phonetic()
		f.TierIndex = s.TierIndex
		f.Tier, _ = g.tiers.At(s.TierIndex)
		f.Score = s.Score
		f.Lives = s.Lives
		f.Cleared = s.Cleared
		f.Targets = append([]Target(nil), s.Targets...)
	}
	if f.State == StateLeaderboard || f.State == StateSelectMode {
		f.Leaderboard = g.board.Entries()
	}
	return f
}

// Close stops the clock drivers, waits for them and flushes the leaderboard
func (g *Game) Close() {
	g.mu.Lock()
	g.generation++
	g.clock.Stop()
	g.mu.Unlock()

	g.clock.Wait()

	if c, ok := g.board.(interface{ Close() }); ok {
		c.Close()
	}
}

// dispatch fires ev and announces the state change, caller holds mu
func (g *Game) dispatch(ev fsm.Event) bool {
	from := g.state()
	if !g.machine.HandleEvent(g, ev) {
		return false
	}
	to := g.state()
	g.stateName.Store(string(to))
	g.logger.Debug("state changed", "from", from, "to", to, "event", ev)
	g.notifier.StateChanged(from, to)
	return true
}

// signal plays an effect; playback failures never affect gameplay
func (g *Game) signal(sound core.SoundType) {
	if err := g.audio.Play(sound); err != nil {
		g.audioFailures.Add(1)
		g.slog.Debug("sound playback failed", "sound", sound, "err", err)
	}
}

// Lifecycle actions

func (g *Game) clearSelection() {
	g.set = charset.Set{}
	g.modeChosen = false
	g.pendingTier = 0
	g.name = nil
}

func (g *Game) resetSession() {
	g.session = newSession(g.set, g.pendingTier, g.time.Now())
	g.slog = g.logger.With("session", g.session.ID)
	g.sessions.Add(1)

	tier, _ := g.tiers.At(g.session.TierIndex)
	g.slog.Info("session started", "mode", g.set.Mode, "tier", tier.Name, "matcher", g.session.Matcher.Kind())
}

func (g *Game) startClock() {
	g.generation++
	tier, _ := g.tiers.At(g.session.TierIndex)
	g.clock.Start(tier.TickInterval, g.generation, g.onDrop, g.onFloor)
}

func (g *Game) stopClock() {
	g.generation++
	g.clock.Stop()
}

func (g *Game) captureScore() {
	g.finalScore = g.session.Score
	g.name = nil
	g.slog.Info("session ended", "score", g.finalScore, "duration", g.time.Now().Sub(g.session.StartedAt).Round(time.Millisecond))
	g.session = nil
}

func (g *Game) announceGameOver() {
	g.signal(core.SoundGameOver)
	g.notifier.GameOver(g.finalScore)
}

func (g *Game) recordEntry() {
	name := strings.TrimSpace(string(g.name))
	g.lastEntry, g.lastRank = g.board.Submit(name, g.finalScore, g.time.Now())
	g.slog.Info("score recorded", "name", g.lastEntry.Name, "score", g.finalScore, "rank", g.lastRank)
	g.slog = g.logger
	g.name = nil
}
