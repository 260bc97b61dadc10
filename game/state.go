package game

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lawkern/sokoban/arena"
	"github.com/lawkern/sokoban/input"
	"github.com/lawkern/sokoban/noise"
	"github.com/lawkern/sokoban/queue"
	"github.com/lawkern/sokoban/raster"
)

const (
	moveSeconds       = 0.0666666
	transitionSeconds = 0.333333

	grassCellDimension = TileDimension / 2
	grassGridWidth     = ScreenWidth / grassCellDimension
	grassGridHeight    = ScreenHeight / grassCellDimension

	backgroundColor = 0xFF222034
	grassColor      = 0xFF3F3F74
)

// Config wires a State to its assets and services. Levels, Tiles, Font,
// Arena, and Entropy are required; Sounds and Logger may be nil.
type Config struct {
	Levels  []*Level
	Tiles   Tileset
	Font    *raster.Font
	Sounds  SoundPlayer
	Logger  *log.Logger
	Arena   *arena.Arena
	Entropy *noise.Source
}

// State owns one play session: the level list, menu and animation state,
// and the scratch bitmaps the renderer composites between frames.
type State struct {
	arena   *arena.Arena
	entropy *noise.Source
	logger  *log.Logger
	sounds  SoundPlayer

	levels     []*Level
	levelIndex int

	tiles Tileset
	font  *raster.Font

	grass []noise.Point

	menu menuScreen

	playerMovement  Timer
	levelTransition Timer
	movement        MovementResult

	snapshot *raster.Bitmap
}

// New builds a ready-to-run session. Play begins on the title menu with
// the first level's board as its backdrop.
func New(cfg Config) (*State, error) {
	if len(cfg.Levels) == 0 {
		return nil, errors.New("game: at least one level is required")
	}
	if !cfg.Tiles.Complete() {
		return nil, errors.New("game: tileset is missing sprites")
	}
	if cfg.Font == nil {
		return nil, errors.New("game: font is required")
	}
	if cfg.Arena == nil {
		return nil, errors.New("game: arena is required")
	}
	if cfg.Entropy == nil {
		return nil, errors.New("game: entropy source is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &State{
		arena:   cfg.Arena,
		entropy: cfg.Entropy,
		logger:  logger,
		sounds:  cfg.Sounds,
		levels:  cfg.Levels,
		tiles:   cfg.Tiles,
		font:    cfg.Font,
		menu:    menuTitle,
	}
	s.playerMovement.Duration = moveSeconds
	s.levelTransition.Duration = transitionSeconds
	s.snapshot = raster.NewArena(cfg.Arena, ScreenWidth, ScreenHeight)

	// Grass placements generate once at startup. Scattering fresh noise on
	// every level would read better but costs too much on a transition
	// frame to hold 60Hz.
	samples := make([]noise.Point, grassGridWidth*grassGridHeight)
	count := noise.BlueNoise(samples, cfg.Entropy, cfg.Arena,
		grassGridWidth, grassGridHeight, grassCellDimension)
	s.grass = samples[:count]

	s.logger.Info("session ready", "levels", len(s.levels), "grass", count)

	return s, nil
}

// Level returns the level currently in play.
func (s *State) Level() *Level {
	return s.levels[s.levelIndex]
}

// Update advances one frame: menu handling, movement resolution, and the
// full render pass into fb. dt is the frame's elapsed seconds.
func (s *State) Update(fb *raster.Bitmap, in *input.Snapshot, workers *queue.Queue, dt float32) {
	switch {
	case s.menu == menuTitle:
		s.titleMenu(fb, in, workers)
		return
	case s.menu == menuPause:
		s.pauseMenu(fb, in)
		return
	case in.JustPressed(input.Pause):
		// The pause menu composites over this frame's output, so the
		// framebuffer stays untouched until next frame.
		s.menu = menuPause
		s.snapshotScreen(fb)
		return
	}

	level := s.levels[s.levelIndex]

	if s.animating() {
		s.stepTimers(dt)
	} else {
		s.movement = MovementResult{}

		modifier := Walk
		if in.Pressed(input.Dash) {
			modifier = Dash
		} else if in.Pressed(input.Charge) {
			modifier = Charge
		}

		switch {
		case in.JustPressed(input.MoveUp):
			s.movement = level.MovePlayer(Up, modifier)
		case in.JustPressed(input.MoveDown):
			s.movement = level.MovePlayer(Down, modifier)
		case in.JustPressed(input.MoveLeft):
			s.movement = level.MovePlayer(Left, modifier)
		case in.JustPressed(input.MoveRight):
			s.movement = level.MovePlayer(Right, modifier)
		}

		if s.movement.PlayerTileDelta > 0 {
			s.playerMovement.Begin()
			if s.boxMoving() {
				s.play(SoundPush)
			}
		}

		switch {
		case in.JustPressed(input.Undo):
			if level.PopUndo() {
				s.play(SoundUndo)
			}
		case in.JustPressed(input.Reload):
			s.ReloadLevel(fb)
		case in.JustPressed(input.Next):
			s.NextLevel(fb)
			level = s.levels[s.levelIndex]
		case in.JustPressed(input.Previous):
			s.PreviousLevel(fb)
			level = s.levels[s.levelIndex]
		}
	}

	fb.Clear(backgroundColor)
	s.renderStationaryTiles(fb, workers)
	s.renderMovingTiles(fb, level)
	s.renderHUD(fb, level)

	if s.levelTransition.Animating() {
		fb.Screen(s.snapshot, s.levelTransition.Remaining/s.levelTransition.Duration)
	}

	// Completion waits for the end of the frame so the final push renders
	// before the fade to the next level starts from the solved board.
	if s.Complete() {
		s.play(SoundComplete)
		s.NextLevel(fb)
	}
}

// Complete reports whether the current level is solved. Completion holds
// off while animations play out.
func (s *State) Complete() bool {
	if s.animating() {
		return false
	}
	return s.levels[s.levelIndex].Completed()
}

// SetLevel jumps to the level at index, reloading it from source and
// fading out from whatever the framebuffer last held.
func (s *State) SetLevel(index int, fb *raster.Bitmap) {
	s.levelIndex = index
	s.beginLevelTransition(fb)
	s.playerMovement.End()
	s.movement = MovementResult{}
	s.levels[index].Reset(s.entropy)
	s.logger.Debug("level loaded", "index", index, "name", s.levels[index].Name)
}

// NextLevel advances to the following level, wrapping at the end.
func (s *State) NextLevel(fb *raster.Bitmap) {
	s.SetLevel((s.levelIndex+1)%len(s.levels), fb)
}

// PreviousLevel steps back one level, wrapping at the start.
func (s *State) PreviousLevel(fb *raster.Bitmap) {
	index := s.levelIndex - 1
	if index < 0 {
		index = len(s.levels) - 1
	}
	s.SetLevel(index, fb)
}

// ReloadLevel restarts the current level from its source.
func (s *State) ReloadLevel(fb *raster.Bitmap) {
	s.SetLevel(s.levelIndex, fb)
}

func (s *State) beginLevelTransition(fb *raster.Bitmap) {
	s.snapshotScreen(fb)
	s.levelTransition.Begin()
}

// snapshotScreen copies the framebuffer so menus and transitions can
// composite against the previous frame.
func (s *State) snapshotScreen(fb *raster.Bitmap) {
	if len(fb.Pixels) != len(s.snapshot.Pixels) {
		panic("game: framebuffer does not match the snapshot dimensions")
	}
	copy(s.snapshot.Pixels, fb.Pixels)
}

func (s *State) animating() bool {
	return s.playerMovement.Animating() || s.levelTransition.Animating()
}

func (s *State) stepTimers(dt float32) {
	s.playerMovement.Step(dt)
	s.levelTransition.Step(dt)
}

// boxMoving reports whether the current movement drags a box along.
// Distinct from the box being mid-slide: a charge can animate the player
// before contact is made.
func (s *State) boxMoving() bool {
	return s.playerMovement.Animating() && s.movement.BoxTileDelta > 0
}

// boxMovingAt narrows boxMoving to the cell the sliding box will land on.
func (s *State) boxMovingAt(x, y int) bool {
	return s.boxMoving() && x == s.movement.FinalBoxX && y == s.movement.FinalBoxY
}

func (s *State) play(effect SoundEffect) {
	if s.sounds != nil {
		s.sounds.Play(effect)
	}
}
