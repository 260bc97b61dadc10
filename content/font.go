package content

import (
	"fmt"

	"github.com/lawkern/sokoban/raster"
)

// The built-in font is a 5x7 pixel face with a uniform advance. Lowercase
// letters share the uppercase bitmaps, and any byte without art renders as
// empty space while still advancing the pen.
const (
	glyphWidth   = 5
	glyphHeight  = 7
	glyphAdvance = 6
	glyphInk     = 0xFFFFFFFF
)

var glyphArt = map[byte][glyphHeight]string{
	'A': {".###.", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	'B': {"####.", "#...#", "#...#", "####.", "#...#", "#...#", "####."},
	'C': {".###.", "#...#", "#....", "#....", "#....", "#...#", ".###."},
	'D': {"####.", "#...#", "#...#", "#...#", "#...#", "#...#", "####."},
	'E': {"#####", "#....", "#....", "####.", "#....", "#....", "#####"},
	'F': {"#####", "#....", "#....", "####.", "#....", "#....", "#...."},
	'G': {".###.", "#...#", "#....", "#.###", "#...#", "#...#", ".###."},
	'H': {"#...#", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	'I': {"#####", "..#..", "..#..", "..#..", "..#..", "..#..", "#####"},
	'J': {"....#", "....#", "....#", "....#", "....#", "#...#", ".###."},
	'K': {"#...#", "#..#.", "#.#..", "##...", "#.#..", "#..#.", "#...#"},
	'L': {"#....", "#....", "#....", "#....", "#....", "#....", "#####"},
	'M': {"#...#", "##.##", "#.#.#", "#.#.#", "#...#", "#...#", "#...#"},
	'N': {"#...#", "##..#", "#.#.#", "#..##", "#...#", "#...#", "#...#"},
	'O': {".###.", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."},
	'P': {"####.", "#...#", "#...#", "####.", "#....", "#....", "#...."},
	'Q': {".###.", "#...#", "#...#", "#...#", "#.#.#", "#..#.", ".##.#"},
	'R': {"####.", "#...#", "#...#", "####.", "#.#..", "#..#.", "#...#"},
	'S': {".####", "#....", "#....", ".###.", "....#", "....#", "####."},
	'T': {"#####", "..#..", "..#..", "..#..", "..#..", "..#..", "..#.."},
	'U': {"#...#", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."},
	'V': {"#...#", "#...#", "#...#", "#...#", "#...#", ".#.#.", "..#.."},
	'W': {"#...#", "#...#", "#...#", "#.#.#", "#.#.#", "##.##", "#...#"},
	'X': {"#...#", "#...#", ".#.#.", "..#..", ".#.#.", "#...#", "#...#"},
	'Y': {"#...#", "#...#", ".#.#.", "..#..", "..#..", "..#..", "..#.."},
	'Z': {"#####", "....#", "...#.", "..#..", ".#...", "#....", "#####"},
	'0': {".###.", "#...#", "#..##", "#.#.#", "##..#", "#...#", ".###."},
	'1': {"..#..", ".##..", "..#..", "..#..", "..#..", "..#..", "#####"},
	'2': {".###.", "#...#", "....#", "...#.", "..#..", ".#...", "#####"},
	'3': {"####.", "....#", "....#", ".###.", "....#", "....#", "####."},
	'4': {"...#.", "..##.", ".#.#.", "#..#.", "#####", "...#.", "...#."},
	'5': {"#####", "#....", "#....", "####.", "....#", "....#", "####."},
	'6': {".###.", "#....", "#....", "####.", "#...#", "#...#", ".###."},
	'7': {"#####", "....#", "...#.", "..#..", "..#..", "..#..", "..#.."},
	'8': {".###.", "#...#", "#...#", ".###.", "#...#", "#...#", ".###."},
	'9': {".###.", "#...#", "#...#", ".####", "....#", "....#", ".###."},
	'.': {".....", ".....", ".....", ".....", ".....", ".##..", ".##.."},
	',': {".....", ".....", ".....", ".....", "..##.", "..##.", ".#..."},
	':': {".....", ".##..", ".##..", ".....", ".##..", ".##..", "....."},
	';': {".....", "..##.", "..##.", ".....", "..##.", "..##.", ".#..."},
	'\'': {"..#..", "..#..", ".....", ".....", ".....", ".....", "....."},
	'!': {"..#..", "..#..", "..#..", "..#..", "..#..", ".....", "..#.."},
	'?': {".###.", "#...#", "....#", "...#.", "..#..", ".....", "..#.."},
	'(': {"...#.", "..#..", ".#...", ".#...", ".#...", "..#..", "...#."},
	')': {".#...", "..#..", "...#.", "...#.", "...#.", "..#..", ".#..."},
	'<': {"...#.", "..#..", ".#...", "#....", ".#...", "..#..", "...#."},
	'>': {".#...", "..#..", "...#.", "....#", "...#.", "..#..", ".#..."},
	'-': {".....", ".....", ".....", "#####", ".....", ".....", "....."},
	'+': {".....", "..#..", "..#..", "#####", "..#..", "..#..", "....."},
	'=': {".....", ".....", "#####", ".....", "#####", ".....", "....."},
	'/': {"....#", "....#", "...#.", "..#..", ".#...", "#....", "#...."},
	'_': {".....", ".....", ".....", ".....", ".....", ".....", "#####"},
}

func buildGlyph(rows [glyphHeight]string) raster.Bitmap {
	bmp := raster.New(glyphWidth+2, glyphHeight+2)
	bmp.OffsetY = -glyphHeight

	for y, row := range rows {
		if len(row) != glyphWidth {
			panic(fmt.Sprintf("content: glyph art row %d is %d wide, want %d", y, len(row), glyphWidth))
		}
		for x := 0; x < len(row); x++ {
			if row[x] != '.' {
				bmp.Pixels[(y+1)*(glyphWidth+2)+(x+1)] = glyphInk
			}
		}
	}
	return *bmp
}

// Font builds the built-in face. All glyphs sit on the baseline and every
// pair advances by the same distance.
func Font() *raster.Font {
	font := &raster.Font{
		Ascent:  glyphHeight,
		Descent: -2,
		LineGap: 2,
	}

	count := len(font.Glyphs)
	font.PairDistances = make([]float32, count*count)
	for i := range font.PairDistances {
		font.PairDistances[i] = glyphAdvance
	}

	for c, art := range glyphArt {
		font.Glyphs[c] = buildGlyph(art)
	}
	for c := byte('a'); c <= 'z'; c++ {
		font.Glyphs[c] = font.Glyphs[c-'a'+'A']
	}

	return font
}
