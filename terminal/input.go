package terminal

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lawkern/sokoban/input"
)

// bindingTable is the resolved form of the configuration's key bindings.
// Modifier bindings are separate: terminals never deliver a bare Ctrl or
// Shift press, so those actions are inferred from the modifier flags of
// whatever key event carries them.
type bindingTable struct {
	runes map[rune][]input.Action
	keys  map[tcell.Key][]input.Action
	ctrl  []input.Action
	shift []input.Action
}

// resolveBindings validates and indexes the configured bindings. Escape
// and Ctrl+C are not bindable; they always quit.
func resolveBindings(spec map[string][]string) (bindingTable, error) {
	table := bindingTable{
		runes: make(map[rune][]input.Action),
		keys:  make(map[tcell.Key][]input.Action),
	}

	for name, keyNames := range spec {
		action, ok := input.ParseAction(name)
		if !ok {
			return bindingTable{}, fmt.Errorf("terminal: unknown action %q in bindings", name)
		}
		for _, keyName := range keyNames {
			if err := table.bind(action, keyName); err != nil {
				return bindingTable{}, err
			}
		}
	}

	return table, nil
}

func (t *bindingTable) bind(action input.Action, keyName string) error {
	switch strings.ToLower(keyName) {
	case "ctrl", "control":
		t.ctrl = append(t.ctrl, action)
		return nil
	case "shift":
		t.shift = append(t.shift, action)
		return nil
	case "enter", "return":
		t.bindKey(tcell.KeyEnter, action)
		return nil
	case "tab":
		t.bindKey(tcell.KeyTab, action)
		return nil
	case "space":
		t.runes[' '] = append(t.runes[' '], action)
		return nil
	case "up":
		t.bindKey(tcell.KeyUp, action)
		return nil
	case "down":
		t.bindKey(tcell.KeyDown, action)
		return nil
	case "left":
		t.bindKey(tcell.KeyLeft, action)
		return nil
	case "right":
		t.bindKey(tcell.KeyRight, action)
		return nil
	case "home":
		t.bindKey(tcell.KeyHome, action)
		return nil
	case "end":
		t.bindKey(tcell.KeyEnd, action)
		return nil
	case "pgup", "pageup":
		t.bindKey(tcell.KeyPgUp, action)
		return nil
	case "pgdn", "pagedown":
		t.bindKey(tcell.KeyPgDn, action)
		return nil
	case "insert":
		t.bindKey(tcell.KeyInsert, action)
		return nil
	case "delete", "del":
		t.bindKey(tcell.KeyDelete, action)
		return nil
	case "backspace":
		// Terminals disagree on BS versus DEL; accept both.
		t.bindKey(tcell.KeyBackspace, action)
		t.bindKey(tcell.KeyBackspace2, action)
		return nil
	}

	runes := []rune(keyName)
	if len(runes) == 1 {
		r := unicode.ToLower(runes[0])
		t.runes[r] = append(t.runes[r], action)
		return nil
	}
	return fmt.Errorf("terminal: unknown key %q bound to %s", keyName, action)
}

func (t *bindingTable) bindKey(key tcell.Key, action input.Action) {
	t.keys[key] = append(t.keys[key], action)
}

// deliveredSet collects which controls this poll's events touched, so the
// release pass below knows what was not re-delivered.
type deliveredSet struct {
	actions [input.ActionCount]bool
	fn      [input.FunctionKeyCount]bool
}

// Poll drains pending terminal events into the snapshot and reports
// whether the session should keep running. It never blocks: a frame with
// no events is the common case at 60Hz.
//
// Release synthesis: terminals only deliver presses, so any control held
// from an earlier poll that this poll's events did not re-deliver is
// released now. Key autorepeat keeps a physically held key delivering.
func (h *Host) Poll(in *input.Snapshot) bool {
	in.BeginFrame()

	var delivered deliveredSet
	running := true

	for h.screen.HasPendingEvent() {
		event := h.screen.PollEvent()
		if event == nil {
			return false
		}

		switch ev := event.(type) {
		case *tcell.EventResize:
			cols, rows := ev.Size()
			h.resize(cols, rows)
			h.logger.Debug("terminal resized", "cols", cols, "rows", rows)
		case *tcell.EventKey:
			if !h.translate(ev, in, &delivered) {
				running = false
			}
		}
	}

	for action := input.Action(0); action < input.ActionCount; action++ {
		if h.held[action] && !delivered.actions[action] {
			h.held[action] = false
			in.Set(action, false)
		}
	}
	for i := range h.heldFn {
		if h.heldFn[i] && !delivered.fn[i] {
			h.heldFn[i] = false
			in.SetFunctionKey(i+1, false)
		}
	}

	return running
}

// translate applies one key event to the snapshot. Returns false for the
// quit keys.
func (h *Host) translate(ev *tcell.EventKey, in *input.Snapshot, delivered *deliveredSet) bool {
	key := ev.Key()
	mods := ev.Modifiers()

	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return false
	}

	if key >= tcell.KeyF1 && key < tcell.KeyF1+input.FunctionKeyCount {
		h.pressFn(int(key-tcell.KeyF1)+1, in, delivered)
		return true
	}

	r := ev.Rune()
	ctrl := mods&tcell.ModCtrl != 0

	// Ctrl chords arrive as named control keys; recover the letter so rune
	// bindings still see it. Enter, Tab, and Backspace share control codes
	// (Ctrl+M, Ctrl+I, Ctrl+H) and stay named.
	switch {
	case key == tcell.KeyEnter || key == tcell.KeyTab || key == tcell.KeyBackspace:
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
		ctrl = true
		r = rune('a' + key - tcell.KeyCtrlA)
		key = tcell.KeyRune
	}

	shift := mods&tcell.ModShift != 0
	if key == tcell.KeyRune && unicode.IsUpper(r) {
		shift = true
		r = unicode.ToLower(r)
	}

	if ctrl {
		for _, action := range h.bindings.ctrl {
			h.press(action, in, delivered)
		}
	}
	if shift {
		for _, action := range h.bindings.shift {
			h.press(action, in, delivered)
		}
	}

	var actions []input.Action
	if key == tcell.KeyRune {
		actions = h.bindings.runes[r]
	} else {
		actions = h.bindings.keys[key]
	}
	for _, action := range actions {
		h.press(action, in, delivered)
	}

	return true
}

func (h *Host) press(action input.Action, in *input.Snapshot, delivered *deliveredSet) {
	delivered.actions[action] = true
	h.held[action] = true
	in.Set(action, true)
}

func (h *Host) pressFn(n int, in *input.Snapshot, delivered *deliveredSet) {
	delivered.fn[n-1] = true
	h.heldFn[n-1] = true
	in.SetFunctionKey(n, true)
}
