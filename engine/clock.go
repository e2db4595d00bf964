package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/keyfall/core"
)

// Ticker is a periodic time source the clock drivers read from
type Ticker interface {
	C() <-chan time.Time
	Reset(d time.Duration)
	Stop()
}

// TickerFunc creates a ticker with the given period
type TickerFunc func(d time.Duration) Ticker

// realTicker adapts time.Ticker to Ticker
type realTicker struct {
	t *time.Ticker
}

// NewRealTicker is the production TickerFunc
func NewRealTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

func (r *realTicker) C() <-chan time.Time    { return r.t.C }
func (r *realTicker) Reset(d time.Duration) { r.t.Reset(d) }
func (r *realTicker) Stop()                 { r.t.Stop() }

// TickCallback receives the generation token of the run that fired it
type TickCallback func(token uint64)

// Clock runs the drop driver and the floor heartbeat for one playing run at a time
// Start and Stop are called with the owner's lock held; Stop never blocks
type Clock struct {
	newTicker TickerFunc
	heartbeat time.Duration

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	drop    Ticker
	floor   Ticker

	wg sync.WaitGroup
}

// NewClock creates a stopped clock
func NewClock(newTicker TickerFunc, heartbeat time.Duration) *Clock {
	if newTicker == nil {
		newTicker = NewRealTicker
	}
	return &Clock{
		newTicker: newTicker,
		heartbeat: heartbeat,
	}
}

// Start launches both drivers for a run identified by token
// A running clock is stopped first
func (c *Clock) Start(interval time.Duration, token uint64, onDrop, onFloor TickCallback) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		c.stopLocked()
	}

	c.stop = make(chan struct{})
	c.drop = c.newTicker(interval)
	c.floor = c.newTicker(c.heartbeat)
	c.running = true

	stop, drop, floor := c.stop, c.drop, c.floor
	c.wg.Add(2)
	core.Go(func() { c.drive(drop, stop, token, onDrop) })
	core.Go(func() { c.drive(floor, stop, token, onFloor) })
}

// SetInterval retunes the drop driver of the current run
func (c *Clock) SetInterval(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		c.drop.Reset(d)
	}
}

// Stop closes the stop channel and halts both tickers without waiting
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		c.stopLocked()
	}
}

func (c *Clock) stopLocked() {
	close(c.stop)
	c.drop.Stop()
	c.floor.Stop()
	c.running = false
}

// Running reports whether a run is active
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Wait blocks until every driver goroutine has exited
// Must not be called with the owner's lock held
func (c *Clock) Wait() {
	c.wg.Wait()
}

// drive delivers ticks until stop closes, stop wins over a pending tick
func (c *Clock) drive(t Ticker, stop <-chan struct{}, token uint64, fn TickCallback) {
	defer c.wg.Done()
	for {
		select {
		case <-stop:
			return
		case <-t.C():
			select {
			case <-stop:
				return
			default:
			}
			fn(token)
		}
	}
}
