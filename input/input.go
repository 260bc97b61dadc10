// Package input models frame-coherent button state. The host translates
// key events into Set calls between frames; the game reads held state and
// frame edges through Pressed and JustPressed. Terminal autorepeat arrives
// as repeated press events, which re-arm the edge exactly like the key
// repeat behavior the game tunes its movement around.
package input

// Button holds one control's state for the current frame. IsPressed tracks
// the last delivered key state; ChangedState marks that at least one
// transition event arrived since BeginFrame.
type Button struct {
	IsPressed    bool
	ChangedState bool
}

// Action enumerates the game controls a key can bind to.
type Action uint8

const (
	Confirm Action = iota
	Pause
	Cancel
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Dash
	Charge
	Undo
	Reload
	Next
	Previous
	ActionCount
)

// FunctionKeyCount reserves slots for F1..F16.
const FunctionKeyCount = 16

var actionNames = [ActionCount]string{
	Confirm:   "confirm",
	Pause:     "pause",
	Cancel:    "cancel",
	MoveUp:    "move_up",
	MoveDown:  "move_down",
	MoveLeft:  "move_left",
	MoveRight: "move_right",
	Dash:      "dash",
	Charge:    "charge",
	Undo:      "undo",
	Reload:    "reload",
	Next:      "next",
	Previous:  "previous",
}

// String returns the configuration name of the action.
func (a Action) String() string {
	if a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction maps a configuration name back to its action.
func ParseAction(name string) (Action, bool) {
	for action, candidate := range actionNames {
		if candidate == name {
			return Action(action), true
		}
	}
	return 0, false
}

// Snapshot is the complete input state for one frame.
type Snapshot struct {
	Buttons      [ActionCount]Button
	FunctionKeys [FunctionKeyCount]Button
}

// BeginFrame clears the per-frame transition flags. Held state persists
// until a release event arrives.
func (s *Snapshot) BeginFrame() {
	for i := range s.Buttons {
		s.Buttons[i].ChangedState = false
	}
	for i := range s.FunctionKeys {
		s.FunctionKeys[i].ChangedState = false
	}
}

// Set records a key transition delivered by the host.
func (s *Snapshot) Set(action Action, pressed bool) {
	s.Buttons[action].ChangedState = true
	s.Buttons[action].IsPressed = pressed
}

// SetFunctionKey records a transition on Fn, where n counts from 1.
// Out-of-range keys are ignored.
func (s *Snapshot) SetFunctionKey(n int, pressed bool) {
	if n < 1 || n > FunctionKeyCount {
		return
	}
	s.FunctionKeys[n-1].ChangedState = true
	s.FunctionKeys[n-1].IsPressed = pressed
}

// Pressed reports whether the control is currently held.
func (s *Snapshot) Pressed(action Action) bool {
	return s.Buttons[action].IsPressed
}

// JustPressed reports whether the control went down this frame.
func (s *Snapshot) JustPressed(action Action) bool {
	button := s.Buttons[action]
	return button.IsPressed && button.ChangedState
}

// FunctionKeyJustPressed reports whether Fn went down this frame.
func (s *Snapshot) FunctionKeyJustPressed(n int) bool {
	if n < 1 || n > FunctionKeyCount {
		return false
	}
	button := s.FunctionKeys[n-1]
	return button.IsPressed && button.ChangedState
}
