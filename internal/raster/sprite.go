// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// SpriteBlend scales sprite into the rectangle (x, y, w, h) with nearest
// neighbor sampling and blends it over c. A negative w or h mirrors the
// sprite along that axis.
func SpriteBlend(c Canvas, x, y, w, h int, sprite Canvas) {
	spriteBlit(c, x, y, w, h, sprite, c.Blend)
}

// SpriteCopy is SpriteBlend with the sprite pixels assigned instead of
// blended.
func SpriteCopy(c Canvas, x, y, w, h int, sprite Canvas) {
	spriteBlit(c, x, y, w, h, sprite, c.Set)
}

func spriteBlit(c Canvas, x, y, w, h int, sprite Canvas, put func(x, y int, color uint32)) {
	if sprite.IsNull() {
		return
	}
	nr, ok := NormalizeRect(x, y, w, h, c.Width, c.Height)
	if !ok {
		return
	}

	xa := nr.OX1
	if w < 0 {
		xa = nr.OX2
	}
	ya := nr.OY1
	if h < 0 {
		ya = nr.OY2
	}
	for py := nr.Y1; py <= nr.Y2; py++ {
		for px := nr.X1; px <= nr.X2; px++ {
			nx := (px - xa) * sprite.Width / w
			ny := (py - ya) * sprite.Height / h
			put(px, py, sprite.At(nx, ny))
		}
	}
}

// SpriteCopyBilinear scales sprite into the rectangle (x, y, w, h) with
// bilinear sampling. Only positive sizes are supported; other sizes draw
// nothing.
func SpriteCopyBilinear(c Canvas, x, y, w, h int, sprite Canvas) {
	if sprite.IsNull() || w <= 0 || h <= 0 {
		return
	}
	nr, ok := NormalizeRect(x, y, w, h, c.Width, c.Height)
	if !ok {
		return
	}
	for py := nr.Y1; py <= nr.Y2; py++ {
		for px := nr.X1; px <= nr.X2; px++ {
			nx := (px - nr.OX1) * sprite.Width
			ny := (py - nr.OY1) * sprite.Height
			c.Set(px, py, PixelBilinear(sprite, nx, ny, w, h))
		}
	}
}

// PixelBilinear samples sprite at the fixed-point position (nx/w, ny/h),
// where w and h are the number of sub-pixel steps per texel. The four
// neighboring texels are clamped into the sprite. It returns 0 for an empty
// sprite or a non-positive w or h.
func PixelBilinear(sprite Canvas, nx, ny, w, h int) uint32 {
	if sprite.IsNull() || w <= 0 || h <= 0 {
		return 0
	}
	nx = clampRange(nx, 0, sprite.Width*w-1)
	ny = clampRange(ny, 0, sprite.Height*h-1)

	px := nx % w
	py := ny % h
	x1, x2 := nx/w, nx/w
	y1, y2 := ny/h, ny/h

	if px < w/2 {
		px += w / 2
		x1--
	} else {
		px -= w / 2
		x2++
	}
	if py < h/2 {
		py += h / 2
		y1--
	} else {
		py -= h / 2
		y2++
	}
	x1 = clampRange(x1, 0, sprite.Width-1)
	x2 = clampRange(x2, 0, sprite.Width-1)
	y1 = clampRange(y1, 0, sprite.Height-1)
	y2 = clampRange(y2, 0, sprite.Height-1)

	top := mixColors2(sprite.At(x1, y1), sprite.At(x2, y1), px, w)
	bottom := mixColors2(sprite.At(x1, y2), sprite.At(x2, y2), px, w)
	return mixColors2(top, bottom, py, h)
}

func clampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
