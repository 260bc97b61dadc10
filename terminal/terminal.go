// Package terminal hosts the game in a terminal emulator. It owns the
// screen for the lifetime of a session: the framebuffer presents as
// half-block cells (two vertical pixels per cell) letterboxed to the
// terminal's dimensions, and key events translate into game actions
// through a configurable binding table.
//
// The host is confined to the goroutine that created it. Terminals never
// report key releases, so held state is synthesized: an action not
// re-delivered by the next Poll releases. Frame edges stay exact, which is
// what the movement code keys off.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lawkern/sokoban/input"
)

// ColorMode selects how framebuffer pixels map to terminal colors.
type ColorMode uint8

const (
	// ColorModeTrueColor emits 24-bit colors directly.
	ColorModeTrueColor ColorMode = iota
	// ColorMode256 quantizes into the xterm 6x6x6 cube and grey ramp.
	ColorMode256
	// ColorModeGreyscale maps luma onto the 24-step grey ramp.
	ColorModeGreyscale
)

// DetectColorMode reads the terminal's color capability from the
// environment. Truecolor-capable emulators advertise inconsistently, so
// several known markers are checked before falling back to 256 colors.
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// ParseColorMode resolves a configuration string. "auto" defers to
// DetectColorMode.
func ParseColorMode(name string) (ColorMode, error) {
	switch name {
	case "auto", "":
		return DetectColorMode(), nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	case "256", "indexed":
		return ColorMode256, nil
	case "greyscale", "grayscale", "grey", "gray":
		return ColorModeGreyscale, nil
	}
	return 0, fmt.Errorf("terminal: unknown color mode %q", name)
}

// Options configures a Host.
type Options struct {
	// ColorMode selects the pixel-to-color conversion.
	ColorMode ColorMode

	// Bindings maps action names to key names. Nil leaves every action
	// unbound; unknown names are an error at construction.
	Bindings map[string][]string

	// Logger receives host diagnostics. Nil discards them.
	Logger *log.Logger

	// screen overrides the tcell screen, used by tests to substitute a
	// simulation screen.
	screen tcell.Screen
}

// Host owns the terminal for one game session.
type Host struct {
	screen tcell.Screen
	logger *log.Logger

	colorMode ColorMode
	colors    map[uint32]tcell.Color

	bindings bindingTable
	held     [input.ActionCount]bool
	heldFn   [input.FunctionKeyCount]bool

	view    viewport
	front   []cellColors
	repaint bool

	initialized bool
}

// New builds a host. The terminal is not touched until Init.
func New(opts Options) (*Host, error) {
	bindings, err := resolveBindings(opts.Bindings)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Host{
		screen:    opts.screen,
		logger:    logger,
		colorMode: opts.ColorMode,
		colors:    make(map[uint32]tcell.Color),
		bindings:  bindings,
	}, nil
}

// Init claims the terminal: raw mode, alternate screen, hidden cursor.
// Failure here is the exit-code-1 path; the terminal is left untouched.
func (h *Host) Init() error {
	if h.initialized {
		return nil
	}

	if h.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: opening screen: %w", err)
		}
		h.screen = screen
	}
	if err := h.screen.Init(); err != nil {
		return fmt.Errorf("terminal: initializing screen: %w", err)
	}

	h.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	h.screen.HideCursor()
	h.screen.Clear()

	cols, rows := h.screen.Size()
	if cols < 1 || rows < 1 {
		h.screen.Fini()
		return errors.New("terminal: screen reports zero size")
	}
	h.resize(cols, rows)

	h.initialized = true
	h.logger.Info("terminal ready", "cols", cols, "rows", rows, "colors", h.colorMode)
	return nil
}

// Fini restores the terminal. Safe to call more than once.
func (h *Host) Fini() {
	if !h.initialized {
		return
	}
	h.initialized = false
	h.screen.Fini()
}

// Size returns the present surface in cells.
func (h *Host) Size() (cols, rows int) {
	return h.view.cols, h.view.rows
}

// resize recomputes the letterbox mapping and forces a full repaint.
func (h *Host) resize(cols, rows int) {
	h.view.cols = cols
	h.view.rows = rows
	h.view.sourceW = 0 // invalidate the cached pixel mapping

	h.front = make([]cellColors, cols*rows)
	h.repaint = true

	h.screen.Clear()
	h.screen.Sync()
}
