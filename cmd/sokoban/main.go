// sokoban plays the classic box-pushing puzzle in a terminal emulator.
//
// Usage:
//
//	sokoban                  - Play
//	sokoban levels           - List the levels the game will run
//	sokoban config           - Print the default configuration
//	sokoban version          - Print build information
//
// The root command owns the terminal for the session. Escape or Ctrl+C
// quits; everything else is rebindable through the configuration file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lawkern/sokoban/arena"
	"github.com/lawkern/sokoban/asset"
	"github.com/lawkern/sokoban/audio"
	"github.com/lawkern/sokoban/config"
	"github.com/lawkern/sokoban/content"
	"github.com/lawkern/sokoban/engine"
	"github.com/lawkern/sokoban/game"
	"github.com/lawkern/sokoban/noise"
	"github.com/lawkern/sokoban/queue"
	"github.com/lawkern/sokoban/raster"
	"github.com/lawkern/sokoban/terminal"
)

// arenaSize backs the framebuffers and per-frame temporaries.
const arenaSize = 64 << 20

// The playfield is unreadable below this; refuse to start rather than
// letterbox into a postage stamp.
const (
	minColumns = 40
	minRows    = 12
)

var (
	flagConfig  string
	flagColor   string
	flagFPS     int
	flagWorkers int
	flagAssets  string
	flagLevels  string
	flagSounds  string
	flagNoAudio bool
	flagSeed    uint64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Push every box onto a goal without wedging one in a corner",
	Long: `Sokoban is a terminal rendition of the classic box-pushing puzzle.
The board renders as half-block pixels, so any terminal with 256 colors
or better shows the full tile art.

Controls (defaults):
  wasd / arrows   move
  Ctrl + move     dash to the next obstacle (won't push)
  Shift + move    charge to the next obstacle (will push)
  u               undo
  r               restart level
  p               pause menu
  Escape, Ctrl+C  quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a configuration file")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of extra .sok levels")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Seed for cosmetic randomness")

	rootCmd.Flags().StringVar(&flagColor, "color", "auto", "Color mode: auto, truecolor, 256, greyscale")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Target frame rate")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Render workers (0 = one per CPU, max 8)")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory of replacement tile sprites (.bmp)")
	rootCmd.Flags().StringVar(&flagSounds, "sounds", "", "Directory of sound overrides (.wav)")
	rootCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Append diagnostics to a file")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the configuration file and lays explicitly set
// flags over it.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Display.ColorMode = flagColor
	}
	if flags.Changed("fps") {
		cfg.Display.FPS = flagFPS
	}
	if flags.Changed("workers") {
		cfg.Display.Workers = flagWorkers
	}
	if flags.Changed("assets") {
		cfg.Assets.TileDir = flagAssets
	}
	if flags.Changed("levels") {
		cfg.Assets.LevelDir = flagLevels
	}
	if flags.Changed("sounds") {
		cfg.Audio.Dir = flagSounds
	}
	if flags.Changed("seed") {
		cfg.Assets.Seed = flagSeed
	}
	if flagNoAudio {
		cfg.Audio.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", err
	}
	return cfg, source, nil
}

// openLogger builds the session logger. The game owns the screen while it
// runs, so diagnostics go to a file or nowhere.
func openLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{ReportTimestamp: true})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}

// preflight rejects environments the session cannot run in before tcell
// takes over the screen.
func preflight() error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("sokoban needs an interactive terminal (the levels subcommand works anywhere)")
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("reading terminal size: %w", err)
	}
	if cols < minColumns || rows < minRows {
		return fmt.Errorf("terminal is %dx%d cells, need at least %dx%d", cols, rows, minColumns, minRows)
	}
	return nil
}

// crash restores the terminal before reporting so the trace lands on a
// readable screen. Shared by the main goroutine's recover and the worker
// pool. The \r\n pairs keep lines aligned if raw mode is still active.
func crash(r any) {
	terminal.EmergencyReset(os.Stdout)
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSOKOBAN CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

func runGame(cmd *cobra.Command, args []string) error {
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("configuration resolved", "source", source)

	if err := preflight(); err != nil {
		return err
	}

	colorMode, err := terminal.ParseColorMode(cfg.Display.ColorMode)
	if err != nil {
		return err
	}

	entropy := noise.NewSource(cfg.Assets.Seed)
	mem := arena.New(arenaSize)

	tiles, err := asset.LoadTileset(cfg.Assets.TileDir)
	if err != nil {
		return err
	}
	levels, err := asset.LoadLevels(cfg.Assets.LevelDir, &entropy, logger)
	if err != nil {
		return err
	}

	sounds, err := audio.New(audio.Config{Enabled: cfg.Audio.Enabled, Dir: cfg.Audio.Dir})
	if err != nil {
		return err
	}
	if err := sounds.Init(); err != nil {
		// No mixer is not fatal; the game plays silently.
		logger.Warn("audio unavailable", "error", err)
	}
	defer sounds.Close()

	state, err := game.New(game.Config{
		Levels:  levels,
		Tiles:   tiles,
		Font:    content.Font(),
		Sounds:  sounds,
		Logger:  logger,
		Arena:   mem,
		Entropy: &entropy,
	})
	if err != nil {
		return err
	}

	workers := cfg.Display.Workers
	if workers == 0 {
		workers = queue.DefaultWorkerCount()
	}
	pool := queue.New()
	pool.Start(workers, crash)
	logger.Info("worker pool started", "workers", workers)

	host, err := terminal.New(terminal.Options{
		ColorMode: colorMode,
		Bindings:  cfg.Bindings,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	if err := host.Init(); err != nil {
		return err
	}
	defer host.Fini()

	fb := raster.NewArena(mem, game.ScreenWidth, game.ScreenHeight)

	loop := engine.Loop{TargetFPS: cfg.Display.FPS, Logger: logger}
	loop.Run(host, state, fb, pool)
	return nil
}
