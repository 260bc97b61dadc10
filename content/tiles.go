// Package content holds the built-in assets: the bundled level set, the
// procedural sprite tiles, and the bitmap font. Everything here is baked
// into the binary so the game runs without an asset directory; the asset
// package swaps in external art when a directory is configured.
package content

import (
	"fmt"

	"github.com/lawkern/sokoban/game"
	"github.com/lawkern/sokoban/raster"
)

// SpriteDimension is the edge size of a sprite bitmap. Sprites carry a
// one-pixel margin around a 16x16 content block; the scaler's sampling
// never touches the margin, so external art only has to match the size.
const SpriteDimension = 18

const (
	tileDimension    = SpriteDimension
	contentDimension = 16
)

// buildTile converts rows of glyph art into a bordered bitmap. Legend maps
// each glyph to a premultiplied pixel value.
func buildTile(legend map[byte]uint32, rows ...string) *raster.Bitmap {
	if len(rows) != contentDimension {
		panic(fmt.Sprintf("content: tile art needs %d rows, got %d", contentDimension, len(rows)))
	}

	bmp := raster.New(tileDimension, tileDimension)
	for y, row := range rows {
		if len(row) != contentDimension {
			panic(fmt.Sprintf("content: tile art row %d is %d wide, want %d", y, len(row), contentDimension))
		}
		for x := 0; x < len(row); x++ {
			color, ok := legend[row[x]]
			if !ok {
				panic(fmt.Sprintf("content: tile art row %d has unmapped glyph %q", y, row[x]))
			}
			bmp.Pixels[(y+1)*tileDimension+(x+1)] = color
		}
	}
	return bmp
}

var playerLegend = map[byte]uint32{
	'.': 0,
	'r': 0xFF801818,
	'R': 0xFFC03028,
	'S': 0xFFE8B088,
	'E': 0xFF201018,
}

func playerTile() *raster.Bitmap {
	return buildTile(playerLegend,
		"................",
		"......rrrr......",
		".....rRRRRr.....",
		"....rRRRRRRr....",
		"....rRRRRRRr....",
		"....rSSSSSSr....",
		"....rSESSESr....",
		"....rSSSSSSr....",
		".....rRRRRr.....",
		"....rRRRRRRr....",
		"...rRRrRRrRRr...",
		"...rRRrRRrRRr...",
		".....rRRRRr.....",
		".....rR..Rr.....",
		"....rr....rr....",
		"................",
	)
}

// crateArt is shared by the box and box-on-goal tiles; the legend supplies
// the wood or goal-tinted palette.
var crateArt = []string{
	"................",
	".wwwwwwwwwwwwww.",
	".wWWWWWWWWWWWWw.",
	".wWwWWWWWWWWwWw.",
	".wWWwWWWWWWwWWw.",
	".wWWWwWWWWwWWWw.",
	".wWWWWwWWwWWWWw.",
	".wWWWWWwwWWWWWw.",
	".wWWWWWwwWWWWWw.",
	".wWWWWwWWwWWWWw.",
	".wWWWwWWWWwWWWw.",
	".wWWwWWWWWWwWWw.",
	".wWwWWWWWWWWwWw.",
	".wWWWWWWWWWWWWw.",
	".wwwwwwwwwwwwww.",
	"................",
}

var boxLegend = map[byte]uint32{
	'.': 0,
	'w': 0xFF7A4E24,
	'W': 0xFFB07840,
}

var boxOnGoalLegend = map[byte]uint32{
	'.': 0,
	'w': 0xFF376837,
	'W': 0xFF58A058,
}

func boxTile() *raster.Bitmap {
	return buildTile(boxLegend, crateArt...)
}

func boxOnGoalTile() *raster.Bitmap {
	return buildTile(boxOnGoalLegend, crateArt...)
}

var goalLegend = map[byte]uint32{
	'.': 0,
	'y': 0xFFA08810,
	'Y': 0xFFE8C820,
}

func goalTile() *raster.Bitmap {
	return buildTile(goalLegend,
		"................",
		"................",
		"................",
		"................",
		"................",
		".......yy.......",
		"......yYYy......",
		".....yYYYYy.....",
		".....yYYYYy.....",
		"......yYYy......",
		".......yy.......",
		"................",
		"................",
		"................",
		"................",
		"................",
	)
}

var wallLegend = map[byte]uint32{
	'x': 0xFF5A5A66,
	'X': 0xFF8A8A96,
}

const wallHighlight = 0xFFB0B0BC

var wallArt = []string{
	"XXXXXXXxXXXXXXXx",
	"XXXXXXXxXXXXXXXx",
	"xxxxxxxxxxxxxxxx",
	"XXXxXXXXXXXxXXXX",
	"XXXxXXXXXXXxXXXX",
	"xxxxxxxxxxxxxxxx",
	"XXXXXXXxXXXXXXXx",
	"XXXXXXXxXXXXXXXx",
	"xxxxxxxxxxxxxxxx",
	"XXXxXXXXXXXxXXXX",
	"XXXxXXXXXXXxXXXX",
	"xxxxxxxxxxxxxxxx",
	"XXXXXXXxXXXXXXXx",
	"XXXXXXXxXXXXXXXx",
	"xxxxxxxxxxxxxxxx",
	"XXXxXXXXXXXxXXXX",
}

// wallTile bakes the brick pattern and highlights the edges that face away
// from the wall run, which is what makes the corner variants read as
// corners on screen.
func wallTile(top, bottom, left, right bool) *raster.Bitmap {
	bmp := buildTile(wallLegend, wallArt...)

	if top {
		for x := 1; x <= contentDimension; x++ {
			bmp.Pixels[1*tileDimension+x] = wallHighlight
		}
	}
	if bottom {
		for x := 1; x <= contentDimension; x++ {
			bmp.Pixels[contentDimension*tileDimension+x] = wallHighlight
		}
	}
	if left {
		for y := 1; y <= contentDimension; y++ {
			bmp.Pixels[y*tileDimension+1] = wallHighlight
		}
	}
	if right {
		for y := 1; y <= contentDimension; y++ {
			bmp.Pixels[y*tileDimension+contentDimension] = wallHighlight
		}
	}

	return bmp
}

// floorAccents scatters a few darker pixels per variant so floors do not
// tile into a perfectly flat field.
var floorAccents = [game.FloorVariantCount][][2]int{
	{{3, 4}, {11, 6}, {6, 12}},
	{{5, 3}, {13, 9}, {2, 13}},
	{{8, 5}, {4, 10}, {12, 14}},
	{{10, 2}, {2, 8}, {9, 11}},
}

func floorTile(variant int) *raster.Bitmap {
	const base = 0xFF3A3A54
	const accent = 0xFF32324A

	bmp := raster.New(tileDimension, tileDimension)
	for y := 1; y <= contentDimension; y++ {
		for x := 1; x <= contentDimension; x++ {
			bmp.Pixels[y*tileDimension+x] = base
		}
	}
	for _, offset := range floorAccents[variant] {
		bmp.Pixels[(offset[1]+1)*tileDimension+(offset[0]+1)] = accent
	}
	return bmp
}

// Tiles builds the full built-in sprite set.
func Tiles() game.Tileset {
	ts := game.Tileset{
		Player:    playerTile(),
		Box:       boxTile(),
		BoxOnGoal: boxOnGoalTile(),
		Goal:      goalTile(),
	}

	ts.Wall[game.WallInterior] = wallTile(false, false, false, false)
	ts.Wall[game.WallCornerNW] = wallTile(true, false, true, false)
	ts.Wall[game.WallCornerNE] = wallTile(true, false, false, true)
	ts.Wall[game.WallCornerSE] = wallTile(false, true, false, true)
	ts.Wall[game.WallCornerSW] = wallTile(false, true, true, false)

	for i := range ts.Floor {
		ts.Floor[i] = floorTile(i)
	}

	return ts
}
