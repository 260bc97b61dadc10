package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lawkern/sokoban/game"
)

// tone is one synthesized segment: a sine that glides between two
// frequencies under an attack/release envelope.
type tone struct {
	startHz  float64
	endHz    float64
	duration time.Duration
	volume   float64
}

// effectTones scores each effect as a tone sequence.
var effectTones = [game.SoundEffectCount][]tone{
	game.SoundPush: {
		{startHz: 180, endHz: 90, duration: 90 * time.Millisecond, volume: 0.30},
	},
	game.SoundUndo: {
		{startHz: 520, endHz: 520, duration: 50 * time.Millisecond, volume: 0.22},
		{startHz: 370, endHz: 370, duration: 70 * time.Millisecond, volume: 0.22},
	},
	game.SoundComplete: {
		{startHz: 523.25, endHz: 523.25, duration: 90 * time.Millisecond, volume: 0.25},
		{startHz: 659.25, endHz: 659.25, duration: 90 * time.Millisecond, volume: 0.25},
		{startHz: 783.99, endHz: 783.99, duration: 90 * time.Millisecond, volume: 0.25},
		{startHz: 1046.50, endHz: 1046.50, duration: 180 * time.Millisecond, volume: 0.25},
	},
	game.SoundMenu: {
		{startHz: 880, endHz: 880, duration: 45 * time.Millisecond, volume: 0.20},
	},
}

// synthesize renders an effect's tone sequence into a playback buffer.
func synthesize(effect game.SoundEffect) *beep.Buffer {
	buffer := beep.NewBuffer(bufferFormat)
	for _, t := range effectTones[effect] {
		buffer.Append(newToneStreamer(t))
	}
	return buffer
}

// toneStreamer generates one tone. The phase accumulates sample by sample
// so a frequency glide stays click-free.
type toneStreamer struct {
	tone  tone
	total int
	pos   int
	phase float64
}

func newToneStreamer(t tone) *toneStreamer {
	return &toneStreamer{tone: t, total: sampleRate.N(t.duration)}
}

func (g *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	if g.pos >= g.total {
		return 0, false
	}

	attack := sampleRate.N(4 * time.Millisecond)
	release := g.total / 4

	n := 0
	for i := range samples {
		if g.pos >= g.total {
			break
		}

		u := float64(g.pos) / float64(g.total)
		freq := g.tone.startHz + (g.tone.endHz-g.tone.startHz)*u
		g.phase += 2 * math.Pi * freq / float64(sampleRate)

		envelope := 1.0
		if g.pos < attack {
			envelope = float64(g.pos) / float64(attack)
		}
		if remaining := g.total - g.pos; remaining < release {
			envelope = math.Min(envelope, float64(remaining)/float64(release))
		}

		sample := g.tone.volume * envelope * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
		n++
	}
	return n, true
}

func (g *toneStreamer) Err() error {
	return nil
}
