// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "testing"

const white = 0xFFFFFFFF

// quadSprite returns a 2x2 sprite with red, green on top and blue, white below.
func quadSprite() Canvas {
	s := newTestCanvas(2, 2)
	s.Set(0, 0, red)
	s.Set(1, 0, green)
	s.Set(0, 1, blue)
	s.Set(1, 1, white)
	return s
}

func TestSpriteCopyScales(t *testing.T) {
	c := newTestCanvas(4, 4)
	SpriteCopy(c, 0, 0, 4, 4, quadSprite())

	tests := []struct {
		x, y int
		want uint32
	}{
		{0, 0, red}, {1, 1, red},
		{2, 0, green}, {3, 1, green},
		{0, 2, blue}, {1, 3, blue},
		{2, 2, white}, {3, 3, white},
	}
	for _, tt := range tests {
		if got := c.At(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %#x, want %#x", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSpriteCopyMirrors(t *testing.T) {
	c := newTestCanvas(4, 4)
	SpriteCopy(c, 3, 0, -4, 4, quadSprite())

	if got := c.At(0, 0); got != green {
		t.Errorf("mirrored left = %#x, want green", got)
	}
	if got := c.At(3, 0); got != red {
		t.Errorf("mirrored right = %#x, want red", got)
	}
	if got := c.At(3, 3); got != blue {
		t.Errorf("mirrored bottom right = %#x, want blue", got)
	}
}

func TestSpriteCopyClipped(t *testing.T) {
	c := newTestCanvas(4, 4)
	SpriteCopy(c, -2, -2, 4, 4, quadSprite())

	if got := c.At(0, 0); got != white {
		t.Errorf("pixel (0,0) = %#x, want white", got)
	}
	if got := c.At(2, 2); got != 0 {
		t.Errorf("pixel (2,2) = %#x, want untouched", got)
	}
}

func TestSpriteBlend(t *testing.T) {
	c := opaqueCanvas(2, 2)
	s := newTestCanvas(1, 1)
	s.Set(0, 0, Pack(255, 255, 255, 128))

	SpriteBlend(c, 0, 0, 2, 2, s)
	want := Pack(128, 128, 128, 255)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := c.At(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestSpriteNull(t *testing.T) {
	c := opaqueCanvas(4, 4)
	SpriteBlend(c, 0, 0, 4, 4, Canvas{})
	SpriteCopy(c, 0, 0, 4, 4, Canvas{})
	SpriteCopyBilinear(c, 0, 0, 4, 4, Canvas{})
	if n := countColor(c, black); n != 16 {
		t.Errorf("untouched pixels = %d, want 16", n)
	}
}

func TestSpriteCopyBilinear(t *testing.T) {
	s := newTestCanvas(3, 3)
	Fill(s, blue)

	c := newTestCanvas(6, 6)
	SpriteCopyBilinear(c, 1, 1, 4, 4, s)
	if n := countColor(c, blue); n != 16 {
		t.Errorf("blue pixels = %d, want 16", n)
	}

	SpriteCopyBilinear(c, 0, 0, -4, 4, quadSprite())
	SpriteCopyBilinear(c, 0, 0, 4, 0, quadSprite())
	if n := countColor(c, blue); n != 16 {
		t.Errorf("non-positive sizes drew: blue pixels = %d, want 16", n)
	}
}

func TestPixelBilinear(t *testing.T) {
	s := newTestCanvas(2, 1)
	s.Set(0, 0, Pack(0, 0, 0, 255))
	s.Set(1, 0, Pack(200, 0, 0, 255))

	tests := []struct {
		name   string
		nx, ny int
		w, h   int
		want   uint32
	}{
		{"between texels", 100, 50, 100, 100, Pack(100, 0, 0, 255)},
		{"left edge", 0, 0, 100, 100, Pack(0, 0, 0, 255)},
		{"clamped negative", -500, -500, 100, 100, Pack(0, 0, 0, 255)},
		{"clamped past end", 5000, 5000, 100, 100, Pack(200, 0, 0, 255)},
		{"zero step", 10, 10, 0, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PixelBilinear(s, tt.nx, tt.ny, tt.w, tt.h); got != tt.want {
				t.Errorf("PixelBilinear = %#x, want %#x", got, tt.want)
			}
		})
	}

	if got := PixelBilinear(Canvas{}, 0, 0, 1, 1); got != 0 {
		t.Errorf("PixelBilinear on null sprite = %#x, want 0", got)
	}
}
