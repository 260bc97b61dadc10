package engine

import (
	"sync"
	"time"
)

// MockClock provides a controllable time source for testing. Every Now
// call advances the clock by a fixed step so spin-waits that poll the
// clock make progress; Sleep advances by the full requested duration.
type MockClock struct {
	mu     sync.Mutex
	now    time.Time
	step   time.Duration
	sleeps []time.Duration
}

// NewMockClock creates a mock clock starting at startTime. step is added
// on every Now call.
func NewMockClock(startTime time.Time, step time.Duration) *MockClock {
	return &MockClock{now: startTime, step: step}
}

// Now advances the clock by the configured step and returns it.
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(m.step)
	return m.now
}

// Sleep advances the clock by d and records the request.
func (m *MockClock) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	m.sleeps = append(m.sleeps, d)
}

// Advance moves the clock forward by d without recording a sleep.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Sleeps returns every duration passed to Sleep, in order.
func (m *MockClock) Sleeps() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.sleeps...)
}
