package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a TimeProvider that only moves when told to
type MockTimeProvider struct {
	base    time.Time
	elapsed atomic.Int64
}

// NewMockTimeProvider starts the mock at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{base: start}
}

// Now returns the start time plus all advances
func (m *MockTimeProvider) Now() time.Time {
	return m.base.Add(time.Duration(m.elapsed.Load()))
}

// Advance moves the mock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.elapsed.Add(int64(d))
}
