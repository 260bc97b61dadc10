package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lawkern/sokoban/raster"
)

// halfBlock stacks two pixels per cell: the foreground paints the upper
// half and the background the lower.
const halfBlock = '▀'

// gutter is the letterbox fill outside the scaled framebuffer.
const gutter uint32 = 0xFF000000

// viewport caches the mapping from the cell grid onto framebuffer pixels.
// The pixel grid is cols wide and 2*rows tall; the framebuffer scales into
// the largest centered region that preserves its aspect ratio. colToSrc
// and rowToSrc hold the nearest-neighbor source coordinate per destination
// pixel, with -1 marking the gutter.
type viewport struct {
	cols, rows int

	sourceW, sourceH int
	colToSrc         []int
	rowToSrc         []int
}

// cellColors records what one cell last flushed, keyed by the packed
// upper and lower pixel values so a repaint only touches changed cells.
type cellColors struct {
	upper uint32
	lower uint32
}

// remap rebuilds the sampling tables for a framebuffer of the given size.
func (v *viewport) remap(sourceW, sourceH int) {
	v.sourceW = sourceW
	v.sourceH = sourceH

	pixelW := v.cols
	pixelH := v.rows * 2

	// Fit the framebuffer into the pixel grid preserving aspect. Integer
	// cross-multiplication keeps the width/height-limited choice exact.
	destW := pixelW
	destH := sourceH * pixelW / sourceW
	if destH > pixelH {
		destH = pixelH
		destW = sourceW * pixelH / sourceH
	}
	if destW < 1 {
		destW = 1
	}
	if destH < 1 {
		destH = 1
	}
	offsetX := (pixelW - destW) / 2
	offsetY := (pixelH - destH) / 2

	v.colToSrc = make([]int, pixelW)
	for x := range v.colToSrc {
		v.colToSrc[x] = -1
		if x >= offsetX && x < offsetX+destW {
			source := (x - offsetX) * sourceW / destW
			if source > sourceW-1 {
				source = sourceW - 1
			}
			v.colToSrc[x] = source
		}
	}

	v.rowToSrc = make([]int, pixelH)
	for y := range v.rowToSrc {
		v.rowToSrc[y] = -1
		if y >= offsetY && y < offsetY+destH {
			source := (y - offsetY) * sourceH / destH
			if source > sourceH-1 {
				source = sourceH - 1
			}
			v.rowToSrc[y] = source
		}
	}
}

// sample returns the framebuffer pixel behind destination pixel (x, y),
// or the gutter color outside the letterboxed region.
func (v *viewport) sample(fb *raster.Bitmap, x, y int) uint32 {
	sx := v.colToSrc[x]
	sy := v.rowToSrc[y]
	if sx < 0 || sy < 0 {
		return gutter
	}
	return fb.Pixels[sy*fb.Width+sx]
}

// Present scales the framebuffer onto the cell grid and flushes the cells
// that changed since the previous frame. Pixel pairs share one cell: row
// 2k becomes the foreground of cell row k and row 2k+1 the background.
func (h *Host) Present(fb *raster.Bitmap) {
	if h.view.sourceW != fb.Width || h.view.sourceH != fb.Height {
		h.view.remap(fb.Width, fb.Height)
	}

	for cy := 0; cy < h.view.rows; cy++ {
		rowBase := cy * h.view.cols
		for cx := 0; cx < h.view.cols; cx++ {
			cell := cellColors{
				upper: h.view.sample(fb, cx, cy*2),
				lower: h.view.sample(fb, cx, cy*2+1),
			}
			if !h.repaint && h.front[rowBase+cx] == cell {
				continue
			}
			h.front[rowBase+cx] = cell

			style := tcell.StyleDefault.
				Foreground(h.color(cell.upper)).
				Background(h.color(cell.lower))
			h.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}

	h.repaint = false
	h.screen.Show()
}

// color converts a packed BGRA pixel to a terminal color in the host's
// color mode. Conversions memoize; the game's palette is small.
func (h *Host) color(pixel uint32) tcell.Color {
	if c, ok := h.colors[pixel]; ok {
		return c
	}

	r := (pixel >> 16) & 0xFF
	g := (pixel >> 8) & 0xFF
	b := pixel & 0xFF

	var c tcell.Color
	switch h.colorMode {
	case ColorMode256:
		c = tcell.PaletteColor(int(quantize256(uint8(r), uint8(g), uint8(b))))
	case ColorModeGreyscale:
		c = tcell.PaletteColor(int(greyRamp(luma(uint8(r), uint8(g), uint8(b)))))
	default:
		c = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}

	h.colors[pixel] = c
	return c
}

// quantize256 maps RGB onto the xterm palette: near-neutral colors use the
// grey ramp for its finer steps, everything else the 6x6x6 cube
// (index = 16 + 36r + 6g + b).
func quantize256(r, g, b uint8) uint8 {
	maxc, minc := r, r
	for _, c := range [2]uint8{g, b} {
		if c > maxc {
			maxc = c
		}
		if c < minc {
			minc = c
		}
	}
	if maxc-minc < 24 {
		return greyRamp(luma(r, g, b))
	}

	qr := (uint32(r)*5 + 127) / 255
	qg := (uint32(g)*5 + 127) / 255
	qb := (uint32(b)*5 + 127) / 255
	return uint8(16 + 36*qr + 6*qg + qb)
}

// greyRamp maps a luma value onto palette indices 232-255, whose levels
// run 8 to 238 in steps of 10.
func greyRamp(level uint8) uint8 {
	if level < 8 {
		return 232
	}
	step := (uint32(level) - 8 + 5) / 10
	if step > 23 {
		step = 23
	}
	return uint8(232 + step)
}

// luma computes the BT.601 brightness of an RGB triple.
func luma(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000)
}
