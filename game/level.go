package game

import (
	"fmt"

	"github.com/lawkern/sokoban/noise"
)

// Level is one playable board plus its progress counters and undo history.
// The source text is retained so a reload starts from a clean parse with
// freshly rolled floor decorations.
type Level struct {
	Name   string
	source string

	Map        TileMap
	Attributes [MapHeight][MapWidth]Attributes

	MoveCount int
	PushCount int

	Undo UndoRing
}

// LoadLevel parses a level from its textual form:
//
//	@ player    + player on goal
//	$ box       * box on goal
//	# wall      . goal
//
// Spaces are floor tiles and so is any unrecognized glyph, which keeps
// column alignment intact for files decorated with markers the format does
// not know. Carriage returns and tabs are skipped outright. The final row
// counts even when the file lacks a trailing newline. Rows and columns are
// centered on the board.
//
// A level wider or taller than the board, without a player, or with more
// than one player is rejected.
func LoadLevel(name, source string, entropy *noise.Source) (*Level, error) {
	level := &Level{Name: name, source: source}
	if err := level.parse(entropy); err != nil {
		return nil, err
	}
	return level, nil
}

// Reset reloads the level from its source text, discarding all progress
// and undo history.
func (l *Level) Reset(entropy *noise.Source) {
	if err := l.parse(entropy); err != nil {
		// The source parsed once already; a reload cannot fail.
		panic("game: reloading a validated level failed: " + err.Error())
	}
}

// Completed reports whether every goal is covered by a box. A goal under
// the player still counts as uncovered.
func (l *Level) Completed() bool {
	for y := 0; y < MapHeight; y++ {
		for x := 0; x < MapWidth; x++ {
			kind := l.Map.Tiles[y][x]
			if kind == TileGoal || kind == TilePlayerOnGoal {
				return false
			}
		}
	}
	return true
}

func tileForGlyph(glyph byte) TileKind {
	switch glyph {
	case '@':
		return TilePlayer
	case '+':
		return TilePlayerOnGoal
	case '$':
		return TileBox
	case '*':
		return TileBoxOnGoal
	case '#':
		return TileWall
	case '.':
		return TileGoal
	default:
		return TileFloor
	}
}

func (l *Level) parse(entropy *noise.Source) error {
	l.Map = TileMap{}
	l.Attributes = [MapHeight][MapWidth]Attributes{}
	l.MoveCount = 0
	l.PushCount = 0
	l.Undo.Reset()

	var rows [][]TileKind
	var row []TileKind
	for i := 0; i < len(l.source); i++ {
		switch c := l.source[i]; c {
		case '\n':
			rows = append(rows, row)
			row = nil
		case '\r', '\t', '\f', '\v':
			// Skipped without occupying a column.
		default:
			row = append(row, tileForGlyph(c))
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	height := len(rows)
	width := 0
	for _, cells := range rows {
		if len(cells) > width {
			width = len(cells)
		}
	}
	if width > MapWidth || height > MapHeight {
		return fmt.Errorf("level %q is %dx%d tiles, larger than the %dx%d board",
			l.Name, width, height, MapWidth, MapHeight)
	}

	// Rows arrive top first, while tile y grows upward; the flip and the
	// centering offsets happen together here.
	players := 0
	offsetX := (MapWidth - width) / 2
	topMargin := (MapHeight - height) / 2
	for r, cells := range rows {
		y := MapHeight - 1 - topMargin - r
		for c, kind := range cells {
			x := offsetX + c
			l.Map.Tiles[y][x] = kind
			if kind == TilePlayer || kind == TilePlayerOnGoal {
				players++
				l.Map.PlayerX = x
				l.Map.PlayerY = y
			}
		}
	}

	if players == 0 {
		return fmt.Errorf("level %q has no player start", l.Name)
	}
	if players > 1 {
		return fmt.Errorf("level %q has %d player starts", l.Name, players)
	}

	// Roll the cosmetic attributes now that the tiles are in place.
	for y := 0; y < MapHeight; y++ {
		for x := 0; x < MapWidth; x++ {
			attr := &l.Attributes[y][x]
			attr.FloorIndex = uint8(entropy.Range(0, FloorVariantCount-1))
			if l.Map.Tiles[y][x] == TileWall {
				attr.WallIndex = wallType(&l.Map, x, y)
			}
		}
	}

	return nil
}

// wallType classifies a wall cell by which of its neighbors sit outside
// the wall run, so corner sprites follow the level outline. Off-board
// neighbors count as walls.
func wallType(m *TileMap, x, y int) WallKind {
	emptyAbove := InBounds(x, y+1) && m.Tiles[y+1][x] != TileWall
	emptyBelow := InBounds(x, y-1) && m.Tiles[y-1][x] != TileWall
	emptyLeft := InBounds(x-1, y) && m.Tiles[y][x-1] != TileWall
	emptyRight := InBounds(x+1, y) && m.Tiles[y][x+1] != TileWall

	switch {
	case emptyAbove && emptyLeft && !emptyBelow && !emptyRight:
		return WallCornerNW
	case emptyAbove && emptyRight && !emptyBelow && !emptyLeft:
		return WallCornerNE
	case emptyBelow && emptyRight && !emptyAbove && !emptyLeft:
		return WallCornerSE
	case emptyBelow && emptyLeft && !emptyAbove && !emptyRight:
		return WallCornerSW
	default:
		return WallInterior
	}
}
