// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// GlyphCount is the number of glyphs in a font table, one per ASCII code.
const GlyphCount = 128

// Font is a fixed-cell bitmap font. Glyphs holds GlyphCount glyphs of
// Height rows by Width cells each; a non-zero cell is lit.
type Font struct {
	Width  int
	Height int
	Glyphs []byte
}

// Valid reports whether the glyph table is large enough for the font size.
func (f Font) Valid() bool {
	return f.Width > 0 && f.Height > 0 && len(f.Glyphs) >= GlyphCount*f.Width*f.Height
}

// Glyph returns the cells of glyph code, or nil when code has no table entry.
func (f Font) Glyph(code int) []byte {
	if code < 0 || code >= GlyphCount || !f.Valid() {
		return nil
	}
	n := f.Width * f.Height
	return f.Glyphs[code*n : (code+1)*n]
}

// Text renders codes left to right starting at (tx, ty). Each lit glyph cell
// becomes a size by size rectangle blended with color. Every code advances
// the pen by one glyph width, including codes without a glyph.
func Text(c Canvas, codes []int, tx, ty int, font Font, size int, color uint32) {
	if size <= 0 || !font.Valid() {
		return
	}
	for i, code := range codes {
		glyph := font.Glyph(code)
		if glyph == nil {
			continue
		}
		gx := tx + i*font.Width*size
		gy := ty
		for dy := 0; dy < font.Height; dy++ {
			for dx := 0; dx < font.Width; dx++ {
				px := gx + dx*size
				py := gy + dy*size
				if !c.Contains(px, py) {
					continue
				}
				if glyph[dy*font.Width+dx] != 0 {
					Rect(c, px, py, size, size, color)
				}
			}
		}
	}
}
