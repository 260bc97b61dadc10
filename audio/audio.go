// Package audio plays the game's sound effects through the system mixer.
// Effects synthesize into in-memory buffers up front; WAV files in a
// configured directory replace individual effects. Playback is one-shot
// and never blocks the frame loop.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/lawkern/sokoban/game"
)

const sampleRate = beep.SampleRate(48000)

var bufferFormat = beep.Format{
	SampleRate:  sampleRate,
	NumChannels: 2,
	Precision:   2,
}

// effectFiles names the override file for each effect.
var effectFiles = [game.SoundEffectCount]string{
	game.SoundPush:     "push.wav",
	game.SoundUndo:     "undo.wav",
	game.SoundComplete: "complete.wav",
	game.SoundMenu:     "menu.wav",
}

// Config selects playback behavior.
type Config struct {
	Enabled bool
	Dir     string // directory of WAV overrides, empty for synthesized only
}

// Player implements game.SoundPlayer. The zero value is unusable; construct
// with New and call Init before expecting sound.
type Player struct {
	mu      sync.Mutex
	enabled bool
	ready   bool
	buffers [game.SoundEffectCount]*beep.Buffer
}

// New synthesizes the effect set and applies any WAV overrides. The speaker
// stays closed until Init, so construction works without an audio device.
func New(cfg Config) (*Player, error) {
	p := &Player{enabled: cfg.Enabled}
	if !cfg.Enabled {
		return p, nil
	}

	for effect := game.SoundEffect(0); effect < game.SoundEffectCount; effect++ {
		p.buffers[effect] = synthesize(effect)
	}

	if cfg.Dir != "" {
		for effect, name := range effectFiles {
			path := filepath.Join(cfg.Dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			buffer, err := loadOverride(path)
			if err != nil {
				return nil, err
			}
			p.buffers[effect] = buffer
		}
	}
	return p, nil
}

// Init opens the system mixer. Without it Play stays a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: opening speaker: %w", err)
	}
	p.ready = true
	return nil
}

// Play queues one effect. Safe to call every frame from the host goroutine;
// overlapping requests mix.
func (p *Player) Play(effect game.SoundEffect) {
	p.mu.Lock()
	ready := p.ready
	buffer := p.buffers[effect]
	p.mu.Unlock()

	if !ready || buffer == nil {
		return
	}
	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

// Close releases the system mixer.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Close()
	p.ready = false
}

// loadOverride decodes a WAV file into a playback buffer, resampling to the
// mixer rate when the file disagrees.
func loadOverride(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: opening override: %w", err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: decoding %s: %w", path, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(bufferFormat)
	if format.SampleRate == sampleRate {
		buffer.Append(streamer)
	} else {
		buffer.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	}
	return buffer, nil
}
