package game

// Timer tracks one fixed-duration animation. A timer is animating while
// Remaining is positive; Step clamps at zero so a late frame cannot leave
// the timer negative.
type Timer struct {
	Remaining float32
	Duration  float32
}

// Begin restarts the timer at its full duration.
func (t *Timer) Begin() {
	t.Remaining = t.Duration
}

// End expires the timer immediately.
func (t *Timer) End() {
	t.Remaining = 0
}

// Animating reports whether the timer is still running.
func (t *Timer) Animating() bool {
	return t.Remaining > 0
}

// Step advances the timer by one frame's elapsed seconds.
func (t *Timer) Step(seconds float32) {
	t.Remaining -= seconds
	if t.Remaining < 0 {
		t.Remaining = 0
	}
}

// Progress returns how far the animation has advanced, in [0, 1].
func (t *Timer) Progress() float32 {
	if t.Duration <= 0 {
		return 1
	}
	p := 1 - t.Remaining/t.Duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
