// Package asset resolves the game's runtime assets. A configured tile
// directory replaces the built-in art wholesale; a configured level
// directory appends its levels after the bundled set.
package asset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/image/bmp"
	"golang.org/x/sync/errgroup"

	"github.com/lawkern/sokoban/content"
	"github.com/lawkern/sokoban/game"
	"github.com/lawkern/sokoban/noise"
	"github.com/lawkern/sokoban/raster"
)

// tileFiles lists the sprite files an external tile directory must supply.
// Indices 4 through 8 follow the wall variant order; 9 through 12 are the
// floor variants.
var tileFiles = [...]string{
	"player.bmp",
	"box.bmp",
	"box_on_goal.bmp",
	"goal.bmp",
	"wall_interior.bmp",
	"wall_nw.bmp",
	"wall_ne.bmp",
	"wall_se.bmp",
	"wall_sw.bmp",
	"floor_00.bmp",
	"floor_01.bmp",
	"floor_02.bmp",
	"floor_03.bmp",
}

// LoadTileset returns the built-in sprites when dir is empty, otherwise
// decodes the full BMP set from dir, one file per goroutine.
func LoadTileset(dir string) (game.Tileset, error) {
	if dir == "" {
		return content.Tiles(), nil
	}

	var bitmaps [len(tileFiles)]*raster.Bitmap
	var group errgroup.Group
	for i, name := range tileFiles {
		path := filepath.Join(dir, name)
		group.Go(func() error {
			sprite, err := loadTile(path)
			if err != nil {
				return err
			}
			bitmaps[i] = sprite
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return game.Tileset{}, err
	}

	ts := game.Tileset{
		Player:    bitmaps[0],
		Box:       bitmaps[1],
		BoxOnGoal: bitmaps[2],
		Goal:      bitmaps[3],
	}
	for kind := range ts.Wall {
		ts.Wall[kind] = bitmaps[4+kind]
	}
	for i := range ts.Floor {
		ts.Floor[i] = bitmaps[4+int(game.WallKindCount)+i]
	}
	return ts, nil
}

func loadTile(path string) (*raster.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("asset: opening tile: %w", err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("asset: decoding %s: %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != content.SpriteDimension || bounds.Dy() != content.SpriteDimension {
		return nil, fmt.Errorf("asset: %s is %dx%d, want %dx%d",
			path, bounds.Dx(), bounds.Dy(), content.SpriteDimension, content.SpriteDimension)
	}
	return raster.FromImage(img), nil
}

// LoadLevels returns the bundled level set, followed by every .sok file in
// dir in name order when dir is non-empty. Level names keep their file
// extension. A malformed bundled level is an error; a malformed user level
// is logged and skipped so one bad file cannot block the game. Parsing
// shares the entropy source, so levels load serially.
func LoadLevels(dir string, entropy *noise.Source, logger *log.Logger) ([]*game.Level, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	bundled := content.Levels()
	levels := make([]*game.Level, 0, len(bundled))
	for _, b := range bundled {
		level, err := game.LoadLevel(b.Name, b.Source, entropy)
		if err != nil {
			return nil, fmt.Errorf("asset: bundled level %s: %w", b.Name, err)
		}
		levels = append(levels, level)
	}
	if dir == "" {
		return levels, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("asset: reading level directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".sok") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	if len(names) == 0 {
		logger.Warn("no levels found", "dir", dir)
	}

	for _, name := range names {
		source, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("asset: reading level: %w", err)
		}
		level, err := game.LoadLevel(name, string(source), entropy)
		if err != nil {
			logger.Warn("skipping malformed level", "file", name, "error", err)
			continue
		}
		levels = append(levels, level)
	}
	return levels, nil
}
