// Package engine runs the frame loop: poll input, update the game, present
// the framebuffer, then sleep off the frame's remainder to hold the target
// rate. Time is injected so pacing is testable without real sleeps.
package engine

import "time"

// Clock is the loop's time source.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock reads the monotonic system clock.
type SystemClock struct{}

// Now returns the current time with monotonic clock reading.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for the given duration.
func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
