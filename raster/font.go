package raster

// Font is a fixed bitmap glyph set covering 7-bit ASCII. Glyph bitmaps are
// bordered like every other sprite; OffsetX and OffsetY position a glyph
// relative to the baseline pen. PairDistances holds the pen advance for
// every ordered glyph pair at 1x scale, indexed left*128+right, so narrow
// punctuation packs tighter than full-width letters.
type Font struct {
	Ascent  float32
	Descent float32
	LineGap float32

	Glyphs        [128]Bitmap
	PairDistances []float32
}

// LineHeight returns the vertical distance between successive lines of
// text at the given scale.
func (f *Font) LineHeight(scale float32) float32 {
	return (f.Ascent - f.Descent + f.LineGap) * scale
}

// Text draws one line of text with its top-left corner at (posX, posY).
// Bytes outside the glyph table render as '?'.
func (dst *Bitmap) Text(font *Font, posX, posY, scale float32, text string) {
	posY += font.Ascent * scale

	for i := 0; i < len(text); i++ {
		cp := text[i]
		if cp >= 128 {
			cp = '?'
		}

		glyph := &font.Glyphs[cp]
		minX := posX + float32(glyph.OffsetX)*scale
		minY := posY + float32(glyph.OffsetY)*scale
		renderWidth := int(float32(glyph.Width-2) * scale)
		renderHeight := int(float32(glyph.Height-2) * scale)

		dst.Blit(glyph, minX, minY, renderWidth, renderHeight)

		if i+1 < len(text) {
			next := text[i+1]
			if next >= 128 {
				next = '?'
			}
			pair := (int(cp) * len(font.Glyphs)) + int(next)
			posX += font.PairDistances[pair] * scale
		}
	}
}
