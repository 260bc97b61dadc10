package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lawkern/sokoban/input"
	"github.com/lawkern/sokoban/queue"
	"github.com/lawkern/sokoban/raster"
)

// Host supplies input events and displays finished frames. Both calls
// must not block: Poll drains whatever is pending and returns false when
// the session should end.
type Host interface {
	Poll(in *input.Snapshot) bool
	Present(fb *raster.Bitmap)
}

// Updater advances the game by one frame. dt is the previous frame's
// total duration in seconds, zero on the first frame.
type Updater interface {
	Update(fb *raster.Bitmap, in *input.Snapshot, workers *queue.Queue, dt float32)
}

// Loop paces frames at TargetFPS. The zero value targets 60 frames per
// second on the system clock.
type Loop struct {
	TargetFPS int
	Clock     Clock
	Logger    *log.Logger
}

// Run drives the session until the host reports quit. Each frame polls,
// updates, and presents, then sleeps off 90% of the frame's remaining
// budget and spin-waits the rest; sleep wakeups overshoot too far for a
// sleep alone to hold the rate steady. The measured frame total becomes
// the next update's dt, so a dropped frame slows animation instead of
// skipping it.
func (l *Loop) Run(host Host, game Updater, fb *raster.Bitmap, workers *queue.Queue) {
	clock := l.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	logger := l.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fps := l.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	target := time.Second / time.Duration(fps)

	logger.Info("frame loop running", "fps", fps, "budget", target)

	var in input.Snapshot
	var dt float32

	frameStart := clock.Now()
	for frame := 0; ; frame++ {
		if !host.Poll(&in) {
			logger.Info("frame loop stopped", "frames", frame)
			return
		}

		game.Update(fb, &in, workers, dt)
		host.Present(fb)

		end := clock.Now()
		elapsed := end.Sub(frameStart)
		if elapsed < target {
			clock.Sleep((target - elapsed) * 9 / 10)
			for elapsed < target {
				end = clock.Now()
				elapsed = end.Sub(frameStart)
			}
		}
		frameStart = end
		dt = float32(elapsed.Seconds())

		if frame%30 == 0 {
			logger.Debug("frame", "count", frame, "ms", float64(elapsed.Microseconds())/1000.0)
		}
	}
}
