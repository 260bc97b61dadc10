package terminal

import (
	"io"
	"os"
)

// Raw sequences for crash recovery. Normal teardown goes through tcell;
// these exist for the path where the screen state is unknown.
var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
	csiRIS           = []byte("\x1bc")
)

// EmergencyReset writes raw reset sequences to w, bypassing tcell. Call it
// from panic recovery when Fini cannot run normally; the panic message
// printed afterward lands on a readable screen.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone do not restore termios; best-effort, errors
	// ignored in a crash context.
	resetTerminalMode()
}
