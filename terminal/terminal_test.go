package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lawkern/sokoban/config"
	"github.com/lawkern/sokoban/input"
	"github.com/lawkern/sokoban/raster"
)

// newTestHost builds a host over a simulation screen with the default
// bindings, resized to the requested cell grid.
func newTestHost(t *testing.T, cols, rows int) (*Host, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	host, err := New(Options{
		ColorMode: ColorModeTrueColor,
		Bindings:  config.Default().Bindings,
		screen:    screen,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := host.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(host.Fini)

	var in input.Snapshot
	host.Poll(&in) // drain startup events

	screen.SetSize(cols, rows)
	host.Poll(&in)

	if c, r := host.Size(); c != cols || r != rows {
		t.Fatalf("Expected host size %dx%d after resize, got %dx%d", cols, rows, c, r)
	}
	return host, screen
}

// TestViewportLetterboxWidthLimited verifies the mapping when the
// framebuffer is wider than the pixel grid's aspect allows.
func TestViewportLetterboxWidthLimited(t *testing.T) {
	v := viewport{cols: 40, rows: 20} // pixel grid 40x40
	v.remap(30, 20)

	// dest 40x26, letterboxed vertically with 7 gutter pixels above.
	if v.colToSrc[0] != 0 {
		t.Errorf("Expected column 0 to sample source 0, got %d", v.colToSrc[0])
	}
	if v.colToSrc[39] != 29 {
		t.Errorf("Expected column 39 to sample source 29, got %d", v.colToSrc[39])
	}
	if v.rowToSrc[6] != -1 {
		t.Errorf("Expected row 6 in the gutter, got %d", v.rowToSrc[6])
	}
	if v.rowToSrc[7] != 0 {
		t.Errorf("Expected row 7 to sample source 0, got %d", v.rowToSrc[7])
	}
	if v.rowToSrc[32] != 19 {
		t.Errorf("Expected row 32 to sample source 19, got %d", v.rowToSrc[32])
	}
	if v.rowToSrc[33] != -1 {
		t.Errorf("Expected row 33 in the gutter, got %d", v.rowToSrc[33])
	}
}

// TestViewportLetterboxHeightLimited verifies the centered horizontal
// gutter when the pixel grid is wider than the framebuffer's aspect.
func TestViewportLetterboxHeightLimited(t *testing.T) {
	v := viewport{cols: 120, rows: 20} // pixel grid 120x40
	v.remap(30, 20)

	// dest 60x40, 30 gutter pixels on each side.
	if v.colToSrc[29] != -1 {
		t.Errorf("Expected column 29 in the gutter, got %d", v.colToSrc[29])
	}
	if v.colToSrc[30] != 0 {
		t.Errorf("Expected column 30 to sample source 0, got %d", v.colToSrc[30])
	}
	if v.colToSrc[89] != 29 {
		t.Errorf("Expected column 89 to sample source 29, got %d", v.colToSrc[89])
	}
	if v.colToSrc[90] != -1 {
		t.Errorf("Expected column 90 in the gutter, got %d", v.colToSrc[90])
	}
	if v.rowToSrc[0] != 0 || v.rowToSrc[39] != 19 {
		t.Errorf("Expected rows to span the full source, got %d and %d",
			v.rowToSrc[0], v.rowToSrc[39])
	}
}

// TestPresentPairsPixels checks that each cell renders the upper pixel as
// foreground and the lower pixel as background of a half block.
func TestPresentPairsPixels(t *testing.T) {
	host, screen := newTestHost(t, 30, 20)

	fb := raster.New(30, 40) // exactly the 30x40 pixel grid
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			fb.Pixels[y*fb.Width+x] = 0xFF000040 | uint32(x)<<16 | uint32(y)<<8
		}
	}
	host.Present(fb)

	cells, w, h := screen.GetContents()
	if w != 30 || h != 20 {
		t.Fatalf("Expected 30x20 cells, got %dx%d", w, h)
	}

	cell := cells[5*w+3]
	if len(cell.Runes) == 0 || cell.Runes[0] != halfBlock {
		t.Fatalf("Expected half-block rune in cell (3,5), got %q", cell.Runes)
	}
	fg, bg, _ := cell.Style.Decompose()
	if want := tcell.NewRGBColor(3, 10, 0x40); fg != want {
		t.Errorf("Expected foreground of pixel (3,10), got %v", fg)
	}
	if want := tcell.NewRGBColor(3, 11, 0x40); bg != want {
		t.Errorf("Expected background of pixel (3,11), got %v", bg)
	}
}

// TestPresentLetterboxFillsGutter checks that cells outside the scaled
// framebuffer render black.
func TestPresentLetterboxFillsGutter(t *testing.T) {
	host, screen := newTestHost(t, 30, 20)

	fb := raster.New(30, 20) // scales to 30x20 pixels, centered in 30x40
	for i := range fb.Pixels {
		fb.Pixels[i] = 0xFFFFFFFF
	}
	host.Present(fb)

	cells, w, _ := screen.GetContents()

	fg, bg, _ := cells[0].Style.Decompose()
	black := tcell.NewRGBColor(0, 0, 0)
	if fg != black || bg != black {
		t.Errorf("Expected gutter cell (0,0) black, got fg %v bg %v", fg, bg)
	}

	fg, bg, _ = cells[5*w].Style.Decompose()
	white := tcell.NewRGBColor(255, 255, 255)
	if fg != white || bg != white {
		t.Errorf("Expected content cell (0,5) white, got fg %v bg %v", fg, bg)
	}
}

// TestPollTranslatesBindings runs the default bindings through the key
// translation paths: plain runes, named keys, uppercase shift, and Ctrl
// chords.
func TestPollTranslatesBindings(t *testing.T) {
	host, screen := newTestHost(t, 30, 20)
	var in input.Snapshot

	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	if !host.Poll(&in) {
		t.Fatal("Expected Poll to keep running on a movement key")
	}
	if !in.JustPressed(input.MoveUp) {
		t.Error("Expected 'w' to press move_up")
	}
	if in.Pressed(input.Charge) || in.Pressed(input.Dash) {
		t.Error("Expected no modifier from a plain rune")
	}

	screen.InjectKey(tcell.KeyRune, 'W', tcell.ModNone)
	host.Poll(&in)
	if !in.JustPressed(input.MoveUp) || !in.Pressed(input.Charge) {
		t.Error("Expected uppercase 'W' to press move_up with charge")
	}

	screen.InjectKey(tcell.KeyCtrlD, 0, tcell.ModCtrl)
	host.Poll(&in)
	if !in.JustPressed(input.MoveRight) || !in.Pressed(input.Dash) {
		t.Error("Expected Ctrl+D to press move_right with dash")
	}

	screen.InjectKey(tcell.KeyEnter, '\r', tcell.ModNone)
	host.Poll(&in)
	if !in.JustPressed(input.Confirm) {
		t.Error("Expected Enter to press confirm")
	}

	screen.InjectKey(tcell.KeyUp, 0, tcell.ModShift)
	host.Poll(&in)
	if !in.JustPressed(input.MoveUp) || !in.Pressed(input.Charge) {
		t.Error("Expected Shift+Up to press move_up with charge")
	}

	screen.InjectKey(tcell.KeyRune, '.', tcell.ModNone)
	host.Poll(&in)
	if !in.JustPressed(input.Next) {
		t.Error("Expected '.' to press next")
	}

	screen.InjectKey(tcell.KeyF3, 0, tcell.ModNone)
	host.Poll(&in)
	if !in.FunctionKeyJustPressed(3) {
		t.Error("Expected F3 to press function key 3")
	}
}

// TestPollQuitKeys checks the unbindable quit keys.
func TestPollQuitKeys(t *testing.T) {
	host, screen := newTestHost(t, 30, 20)
	var in input.Snapshot

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	if host.Poll(&in) {
		t.Error("Expected Escape to stop the session")
	}

	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	if host.Poll(&in) {
		t.Error("Expected Ctrl+C to stop the session")
	}
}

// TestPollSynthesizesReleases checks that a key held on one poll releases
// on the next poll that does not re-deliver it.
func TestPollSynthesizesReleases(t *testing.T) {
	host, screen := newTestHost(t, 30, 20)
	var in input.Snapshot

	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	host.Poll(&in)
	if !in.Pressed(input.MoveLeft) {
		t.Fatal("Expected move_left held after delivery")
	}

	host.Poll(&in)
	if in.Pressed(input.MoveLeft) {
		t.Error("Expected move_left released when not re-delivered")
	}
	if !in.Buttons[input.MoveLeft].ChangedState {
		t.Error("Expected the release to mark a transition")
	}

	host.Poll(&in)
	if in.Buttons[input.MoveLeft].ChangedState {
		t.Error("Expected no transition on an idle poll")
	}
}

// TestPollAutorepeatRearmsEdge mirrors terminal key repeat, which arrives
// as repeated press events and must re-arm JustPressed each time.
func TestPollAutorepeatRearmsEdge(t *testing.T) {
	host, screen := newTestHost(t, 30, 20)
	var in input.Snapshot

	screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	host.Poll(&in)
	if !in.JustPressed(input.MoveRight) {
		t.Fatal("Expected initial press edge")
	}

	screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	host.Poll(&in)
	if !in.JustPressed(input.MoveRight) {
		t.Error("Expected repeat delivery to re-arm the press edge")
	}
}

// TestResolveBindingsRejectsUnknownNames covers both halves of binding
// validation: action names and key names.
func TestResolveBindingsRejectsUnknownNames(t *testing.T) {
	_, err := New(Options{Bindings: map[string][]string{"warp": {"w"}}})
	if err == nil {
		t.Error("Expected an error for an unknown action name")
	}

	_, err = New(Options{Bindings: map[string][]string{"undo": {"meta"}}})
	if err == nil {
		t.Error("Expected an error for an unknown key name")
	}
}

// TestQuantize256 spot-checks the xterm cube and grey ramp mapping.
func TestQuantize256(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		want    uint8
	}{
		{255, 0, 0, 196},     // cube corner red
		{0, 255, 0, 46},      // cube corner green
		{0, 0, 255, 21},      // cube corner blue
		{255, 128, 0, 214},   // orange lands mid-cube
		{0, 0, 0, 232},       // black belongs to the grey ramp
		{255, 255, 255, 255}, // white clamps to the ramp's top
		{128, 128, 128, 244}, // mid grey picks the nearest ramp step
	}
	for _, c := range cases {
		if got := quantize256(c.r, c.g, c.b); got != c.want {
			t.Errorf("Expected palette index %d for (%d,%d,%d), got %d",
				c.want, c.r, c.g, c.b, got)
		}
	}
}

// TestParseColorMode checks the configuration names and the auto
// fallthrough.
func TestParseColorMode(t *testing.T) {
	if mode, err := ParseColorMode("truecolor"); err != nil || mode != ColorModeTrueColor {
		t.Errorf("Expected truecolor mode, got %v (err %v)", mode, err)
	}
	if mode, err := ParseColorMode("256"); err != nil || mode != ColorMode256 {
		t.Errorf("Expected 256-color mode, got %v (err %v)", mode, err)
	}
	if mode, err := ParseColorMode("greyscale"); err != nil || mode != ColorModeGreyscale {
		t.Errorf("Expected greyscale mode, got %v (err %v)", mode, err)
	}
	if _, err := ParseColorMode("auto"); err != nil {
		t.Errorf("Expected auto to resolve, got error %v", err)
	}
	if _, err := ParseColorMode("cga"); err == nil {
		t.Error("Expected an error for an unknown mode name")
	}
}

// TestDetectColorMode pins the environment markers the detection reads.
func TestDetectColorMode(t *testing.T) {
	for _, name := range []string{
		"COLORTERM", "KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID", "WEZTERM_PANE", "TERM",
	} {
		t.Setenv(name, "")
	}

	if mode := DetectColorMode(); mode != ColorMode256 {
		t.Errorf("Expected 256-color fallback in a bare environment, got %v", mode)
	}

	t.Setenv("COLORTERM", "truecolor")
	if mode := DetectColorMode(); mode != ColorModeTrueColor {
		t.Errorf("Expected COLORTERM=truecolor to detect truecolor, got %v", mode)
	}
}
