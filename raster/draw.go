package raster

import (
	"github.com/lawkern/sokoban/simd"
	"github.com/lawkern/sokoban/vmath"
)

// Clear floods every pixel with color using four-wide stores. No scalar
// tail exists, so the width must be divisible by four; framebuffers and
// snapshots are sized to keep that true.
func (dst *Bitmap) Clear(color uint32) {
	if dst.Width%4 != 0 {
		panic("raster: Clear requires a bitmap width divisible by 4")
	}

	wide := simd.SplatU32(color)
	for y := 0; y < dst.Height; y++ {
		row := y * dst.Width
		for x := 0; x < dst.Width; x += 4 {
			simd.StoreU32x4(dst.Pixels, row+x, wide)
		}
	}
}

// Rectangle fills the region between min and max with a solid color. The
// corners truncate to integer pixels and both are included in the fill,
// clamped to the bitmap. A degenerate region fills nothing.
func (dst *Bitmap) Rectangle(min, max vmath.Vec2, color uint32) {
	minx := int(min.X)
	miny := int(min.Y)
	maxx := int(max.X)
	maxy := int(max.Y)

	if minx < 0 {
		minx = 0
	}
	if miny < 0 {
		miny = 0
	}
	if maxx > dst.Width-1 {
		maxx = dst.Width - 1
	}
	if maxy > dst.Height-1 {
		maxy = dst.Height - 1
	}

	for y := miny; y <= maxy; y++ {
		row := y * dst.Width
		for x := minx; x <= maxx; x++ {
			dst.Pixels[row+x] = color
		}
	}
}

// Outline strokes the border of the region between min and max as four
// filled rectangles of the given thickness.
func (dst *Bitmap) Outline(min, max vmath.Vec2, color uint32, thickness float32) {
	top := vmath.Vec2{X: max.X, Y: min.Y + thickness}
	dst.Rectangle(min, top, color)

	bottom := vmath.Vec2{X: min.X, Y: max.Y - thickness}
	dst.Rectangle(bottom, max, color)

	left := vmath.Vec2{X: min.X + thickness, Y: max.Y}
	dst.Rectangle(min, left, color)

	right := vmath.Vec2{X: max.X - thickness, Y: min.Y}
	dst.Rectangle(right, max, color)
}

// Blit scale-samples src onto a renderWidth by renderHeight region anchored
// at the subpixel position (posX, posY), compositing straight alpha-over.
//
// A 32x32 render area aligned to pixel boundaries covers destination
// columns 0..31; anchored at 0.5 it covers 0..32, one extra column, which
// is why the bounds floor the min corner and ceil the max.
func (dst *Bitmap) Blit(src *Bitmap, posX, posY float32, renderWidth, renderHeight int) {
	minx := vmath.FloorInt(posX)
	miny := vmath.FloorInt(posY)
	maxx := vmath.CeilInt(posX + float32(renderWidth-1))
	maxy := vmath.CeilInt(posY + float32(renderHeight-1))

	if minx < 0 {
		minx = 0
	}
	if miny < 0 {
		miny = 0
	}
	if maxx > dst.Width-1 {
		maxx = dst.Width - 1
	}
	if maxy > dst.Height-1 {
		maxy = dst.Height - 1
	}

	for dy := miny; dy <= maxy; dy++ {
		for dx := minx; dx <= maxx; dx++ {
			// An aligned 32x32 tile walks u through 0/31, 1/31, .. 31/31.
			u := float32(dx-minx) / float32(renderWidth-1)
			v := float32(dy-miny) / float32(renderHeight-1)

			if u < 0 {
				u = 0
			}
			if u > 1 {
				u = 1
			}
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}

			// Map u and v onto the bitmap content inside the transparent
			// border: u of 0 samples column 1, u of 1 samples width-2.
			sourcex := 1 + int(u*float32(src.Width-3)+0.5)
			sourcey := 1 + int(v*float32(src.Height-3)+0.5)

			s := src.Pixels[(sourcey*src.Width)+sourcex]
			sr := float32((s >> 16) & 0xFF)
			sg := float32((s >> 8) & 0xFF)
			sb := float32((s >> 0) & 0xFF)
			sa := float32((s >> 24) & 0xFF)

			di := (dy * dst.Width) + dx
			d := dst.Pixels[di]
			dr := float32((d >> 16) & 0xFF)
			dg := float32((d >> 8) & 0xFF)
			db := float32((d >> 0) & 0xFF)
			da := float32((d >> 24) & 0xFF)

			inverse := 1 - (sa / 255.0)

			r := (inverse * dr) + sr
			g := (inverse * dg) + sg
			b := (inverse * db) + sb
			a := (inverse * da) + sa

			dst.Pixels[di] = uint32(a+0.5)<<24 | uint32(r+0.5)<<16 | uint32(g+0.5)<<8 | uint32(b+0.5)
		}
	}
}

// Screen composites src over the whole destination with an extra alpha
// modulation factor, four pixels per step. Color channels pre-scale by the
// modulation and blend as alpha-over. The output alpha term does not
// redistribute the same way because of the modulation; the formula below
// is load-bearing for the level-transition fade, so keep it as is.
func (dst *Bitmap) Screen(src *Bitmap, alphaModulation float32) {
	if dst.Width != src.Width || dst.Height != src.Height {
		panic("raster: Screen requires bitmaps of equal dimensions")
	}

	mask255 := simd.SplatU32(0xFF)
	one := simd.SplatF32(1.0)
	wide255 := simd.SplatF32(255.0)
	oneOver255 := simd.SplatF32(1.0 / 255.0)
	half := simd.SplatF32(0.5)

	modulation := simd.SplatF32(alphaModulation)
	modulationOver255 := simd.SplatF32(alphaModulation / 255.0)

	for y := 0; y < dst.Height; y++ {
		row := y * dst.Width
		for x := 0; x < dst.Width; x += 4 {
			s := simd.LoadU32x4(src.Pixels, row+x)
			d := simd.LoadU32x4(dst.Pixels, row+x)

			sr := s.Shr(16).And(mask255).ToF32x4()
			sg := s.Shr(8).And(mask255).ToF32x4()
			sb := s.And(mask255).ToF32x4()
			sa := s.Shr(24).And(mask255).ToF32x4()

			dr := d.Shr(16).And(mask255).ToF32x4()
			dg := d.Shr(8).And(mask255).ToF32x4()
			db := d.And(mask255).ToF32x4()
			da := d.Shr(24).And(mask255).ToF32x4()

			sr = sr.Mul(modulation)
			sg = sg.Mul(modulation)
			sb = sb.Mul(modulation)

			saNormal := modulationOver255.Mul(sa)
			daNormal := oneOver255.Mul(da)
			inverse := one.Sub(saNormal)

			r := inverse.Mul(dr).Add(sr)
			g := inverse.Mul(dg).Add(sg)
			b := inverse.Mul(db).Add(sb)

			a := saNormal.Mul(daNormal)
			a = a.Add(saNormal)
			a = a.Add(saNormal)
			a = a.Mul(wide255)

			out := r.Add(half).ToU32x4().Shl(16)
			out = out.Or(g.Add(half).ToU32x4().Shl(8))
			out = out.Or(b.Add(half).ToU32x4())
			out = out.Or(a.Add(half).ToU32x4().Shl(24))

			simd.StoreU32x4(dst.Pixels, row+x, out)
		}
	}
}
