// Package raster implements the CPU rasterizer the game draws with: a BGRA
// pixel bitmap plus the operations that composite tiles, rectangles, text,
// and full-screen overlays into it each frame. Pixels pack as 0xAARRGGBB in
// a uint32 (blue in the low byte) with premultiplied alpha. The full-frame
// operations step four pixels at a time through the simd package.
package raster

import (
	"image"

	"github.com/lawkern/sokoban/arena"
)

// Bitmap is a rectangle of packed pixels. Framebuffers and sprites share
// the type; OffsetX and OffsetY carry glyph bearing and are zero for
// everything else. Sprite bitmaps keep a one-pixel transparent border
// around their content so the scaled sampling in Blit never reads past an
// edge.
type Bitmap struct {
	Width  int
	Height int

	OffsetX int
	OffsetY int

	Pixels []uint32
}

// New allocates a zeroed bitmap on the Go heap.
func New(width, height int) *Bitmap {
	return &Bitmap{Width: width, Height: height, Pixels: make([]uint32, width*height)}
}

// NewArena allocates a zeroed bitmap from arena-backed storage. The bitmap
// stays valid until the arena resets beneath it.
func NewArena(mem *arena.Arena, width, height int) *Bitmap {
	return &Bitmap{Width: width, Height: height, Pixels: mem.AllocUint32(width * height)}
}

// Premultiply packs straight RGBA channels into a premultiplied pixel,
// rounding half up.
func Premultiply(r, g, b, a uint8) uint32 {
	an := float32(a) / 255.0
	pr := uint32(float32(r)*an + 0.5)
	pg := uint32(float32(g)*an + 0.5)
	pb := uint32(float32(b)*an + 0.5)
	return uint32(a)<<24 | pr<<16 | pg<<8 | pb
}

// FromImage converts a decoded image into a bitmap. Color.RGBA already
// reports alpha-premultiplied channels, so the packed pixels come out
// premultiplied regardless of the source color model.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	bmp := New(bounds.Dx(), bounds.Dy())
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			bmp.Pixels[i] = (a>>8)<<24 | (r>>8)<<16 | (g>>8)<<8 | b>>8
			i++
		}
	}
	return bmp
}

// ToRGBA copies the bitmap into a standard premultiplied RGBA image.
func (bmp *Bitmap) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, bmp.Width, bmp.Height))
	for i, p := range bmp.Pixels {
		out.Pix[i*4+0] = uint8(p >> 16)
		out.Pix[i*4+1] = uint8(p >> 8)
		out.Pix[i*4+2] = uint8(p)
		out.Pix[i*4+3] = uint8(p >> 24)
	}
	return out
}
