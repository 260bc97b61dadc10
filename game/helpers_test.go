package game

import (
	"testing"

	"github.com/lawkern/sokoban/raster"
)

// levelFromRows builds a level directly from glyph rows, bypassing the
// parser so tests control exact tile coordinates. The last row lands on
// y=0 and the first column on x=0; everything else stays floor.
func levelFromRows(t *testing.T, rows ...string) *Level {
	t.Helper()

	l := &Level{Name: "test"}
	players := 0
	for r, row := range rows {
		y := len(rows) - 1 - r
		for x := 0; x < len(row); x++ {
			kind := tileForGlyph(row[x])
			l.Map.Tiles[y][x] = kind
			if kind == TilePlayer || kind == TilePlayerOnGoal {
				l.Map.PlayerX = x
				l.Map.PlayerY = y
				players++
			}
		}
	}
	if players != 1 {
		t.Fatalf("Expected exactly 1 player in test rows, got %d", players)
	}
	return l
}

// assertRow compares one board row against a glyph string starting at x=0.
func assertRow(t *testing.T, l *Level, y int, want string) {
	t.Helper()

	for x := 0; x < len(want); x++ {
		expected := tileForGlyph(want[x])
		if got := l.Map.Tiles[y][x]; got != expected {
			t.Errorf("Expected tile (%d,%d) to be %v, got %v", x, y, expected, got)
		}
	}
}

// solidSprite returns an opaque bordered bitmap sized like the real tile
// art: content pixels surrounded by a one-pixel transparent margin.
func solidSprite(color uint32) *raster.Bitmap {
	bmp := raster.New(18, 18)
	for y := 1; y < bmp.Height-1; y++ {
		for x := 1; x < bmp.Width-1; x++ {
			bmp.Pixels[y*bmp.Width+x] = color
		}
	}
	return bmp
}

// testTileset builds a sprite set with distinct solid colors per kind.
func testTileset() Tileset {
	ts := Tileset{
		Player:    solidSprite(0xFFFF0000),
		Box:       solidSprite(0xFF00FF00),
		BoxOnGoal: solidSprite(0xFF008800),
		Goal:      solidSprite(0xFF0000FF),
	}
	for i := range ts.Wall {
		ts.Wall[i] = solidSprite(0xFF888888)
	}
	for i := range ts.Floor {
		ts.Floor[i] = solidSprite(0xFF444444)
	}
	return ts
}

// testFont builds a minimal fixed-advance font: 4x4 glyphs with a 2x2
// opaque content region.
func testFont() *raster.Font {
	font := &raster.Font{Ascent: 2, Descent: -1, LineGap: 1}
	for i := range font.Glyphs {
		glyph := raster.New(4, 4)
		for y := 1; y < 3; y++ {
			for x := 1; x < 3; x++ {
				glyph.Pixels[y*glyph.Width+x] = 0xFFFFFFFF
			}
		}
		glyph.OffsetY = -2
		font.Glyphs[i] = *glyph
	}
	font.PairDistances = make([]float32, len(font.Glyphs)*len(font.Glyphs))
	for i := range font.PairDistances {
		font.PairDistances[i] = 3
	}
	return font
}
