// Package game implements the sokoban rules: the tile board, player
// movement, the per-level undo ring, level parsing, and the per-frame
// update that drives rendering, menus, and sound triggers.
//
// Tile coordinates grow rightward in x and upward in y, so moving up
// increments y. The renderer flips the y axis when mapping tiles onto the
// framebuffer, which keeps the rules code free of screen-space concerns.
package game

const (
	// MapWidth and MapHeight fix the board size in tiles. Levels smaller
	// than the board are centered; larger ones are rejected at load.
	MapWidth  = 30
	MapHeight = 20

	// TileDimension is the on-screen size of one tile in pixels.
	TileDimension = 32

	// BitmapScale is the factor from source bitmap pixels to screen pixels.
	BitmapScale = 2

	// ScreenWidth and ScreenHeight are the fixed framebuffer dimensions.
	ScreenWidth  = MapWidth * TileDimension
	ScreenHeight = MapHeight * TileDimension
)

// TileKind identifies the occupant of one board cell.
type TileKind uint8

const (
	TileFloor TileKind = iota
	TilePlayer
	TilePlayerOnGoal
	TileBox
	TileBoxOnGoal
	TileWall
	TileGoal
)

var tileNames = [...]string{
	TileFloor:        "floor",
	TilePlayer:       "player",
	TilePlayerOnGoal: "player-on-goal",
	TileBox:          "box",
	TileBoxOnGoal:    "box-on-goal",
	TileWall:         "wall",
	TileGoal:         "goal",
}

func (t TileKind) String() string {
	if int(t) >= len(tileNames) {
		return "unknown"
	}
	return tileNames[t]
}

// WallKind selects the wall sprite variant for a wall cell, named for the
// on-screen corner the wall turns around.
type WallKind uint8

const (
	WallInterior WallKind = iota
	WallCornerNW
	WallCornerNE
	WallCornerSE
	WallCornerSW
	WallKindCount
)

// FloorVariantCount is the number of floor sprite variants a cell can
// choose from at load time.
const FloorVariantCount = 4

// Attributes carries the per-cell cosmetic state rolled when a level loads.
type Attributes struct {
	FloorIndex uint8
	WallIndex  WallKind
}

// TileMap is the mutable board state: the tile grid plus a cached player
// position kept in sync by the movement code.
type TileMap struct {
	PlayerX int
	PlayerY int
	Tiles   [MapHeight][MapWidth]TileKind
}

// InBounds reports whether a tile coordinate lies on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < MapWidth && y >= 0 && y < MapHeight
}
