package engine

import (
	"sync"
	"time"
)

// ManualTicker is a Ticker that fires only when told to
type ManualTicker struct {
	ch chan time.Time

	mu       sync.Mutex
	interval time.Duration
	stopped  bool
}

// NewManualTicker creates a ticker with the given nominal period
func NewManualTicker(d time.Duration) *ManualTicker {
	return &ManualTicker{
		ch:       make(chan time.Time),
		interval: d,
	}
}

// C implements Ticker
func (m *ManualTicker) C() <-chan time.Time { return m.ch }

// Reset implements Ticker
func (m *ManualTicker) Reset(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interval = d
}

// Stop implements Ticker
func (m *ManualTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

// Interval returns the period last set by construction or Reset
func (m *ManualTicker) Interval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interval
}

// Stopped reports whether Stop was called
func (m *ManualTicker) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

// Fire delivers one tick, returning false if no reader took it within timeout
func (m *ManualTicker) Fire(timeout time.Duration) bool {
	select {
	case m.ch <- time.Now():
		return true
	case <-time.After(timeout):
		return false
	}
}

// ManualTickers is a TickerFunc source that records every ticker it creates
type ManualTickers struct {
	mu      sync.Mutex
	tickers []*ManualTicker
}

// New implements TickerFunc
func (s *ManualTickers) New(d time.Duration) Ticker {
	t := NewManualTicker(d)
	s.mu.Lock()
	s.tickers = append(s.tickers, t)
	s.mu.Unlock()
	return t
}

// All returns created tickers in creation order
// Clock creates the drop ticker before the floor ticker on each Start
func (s *ManualTickers) All() []*ManualTicker {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*ManualTicker(nil), s.tickers...)
}

// Latest returns the drop and floor tickers of the most recent run
func (s *ManualTickers) Latest() (drop, floor *ManualTicker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.tickers)
	if n < 2 {
		return nil, nil
	}
	return s.tickers[n-2], s.tickers[n-1]
}
