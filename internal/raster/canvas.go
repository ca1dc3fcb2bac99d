// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster is the olive rasterization kernel.
//
// Everything here operates on a flat Canvas descriptor (pixels, width,
// height, stride) passed by value, in the style of a C drawing library.
// Functions never index outside the descriptor: caller coordinates are
// clipped through NormalizeRect or NormalizeTriangle, and sampling indices
// are clamped into the source canvas. The descriptor itself is trusted, so
// callers must build it with len(Pixels) >= (Height-1)*Stride + Width.
package raster

// Canvas describes a rectangular region of packed RGBA pixels.
// Pixel (x, y) lives at Pixels[y*Stride+x]. The zero value is the null canvas.
type Canvas struct {
	Pixels []uint32
	Width  int
	Height int
	Stride int
}

// New builds a canvas descriptor over pixels.
func New(pixels []uint32, width, height, stride int) Canvas {
	return Canvas{
		Pixels: pixels,
		Width:  width,
		Height: height,
		Stride: stride,
	}
}

// IsNull reports whether c has no addressable pixels.
func (c Canvas) IsNull() bool {
	return c.Width <= 0 || c.Height <= 0
}

// At returns the pixel at (x, y). Coordinates must be inside the canvas.
func (c Canvas) At(x, y int) uint32 {
	return c.Pixels[y*c.Stride+x]
}

// Set assigns the pixel at (x, y). Coordinates must be inside the canvas.
func (c Canvas) Set(x, y int, color uint32) {
	c.Pixels[y*c.Stride+x] = color
}

// Blend blends color over the pixel at (x, y).
func (c Canvas) Blend(x, y int, color uint32) {
	i := y*c.Stride + x
	c.Pixels[i] = BlendColor(c.Pixels[i], color)
}

// Contains reports whether (x, y) addresses a pixel of c.
func (c Canvas) Contains(x, y int) bool {
	return 0 <= x && x < c.Width && 0 <= y && y < c.Height
}

// NormalizedRect is a rectangle clipped to canvas bounds.
// X1..X2 and Y1..Y2 are inclusive ranges that are safe to iterate.
// OX1..OY2 keep the unclipped corners.
type NormalizedRect struct {
	X1, X2, Y1, Y2     int
	OX1, OX2, OY1, OY2 int
}

// NormalizeRect converts (x, y, w, h) into inclusive corner form and clips it
// to a canvasWidth by canvasHeight area. Negative w or h extend the rectangle
// to the left or up. It reports false when the rectangle is empty or lies
// entirely outside the canvas.
func NormalizeRect(x, y, w, h, canvasWidth, canvasHeight int) (NormalizedRect, bool) {
	var nr NormalizedRect
	if w == 0 || h == 0 {
		return nr, false
	}

	nr.OX1 = x
	nr.OY1 = y
	nr.OX2 = nr.OX1 + sign(w)*(abs(w)-1)
	if nr.OX1 > nr.OX2 {
		nr.OX1, nr.OX2 = nr.OX2, nr.OX1
	}
	nr.OY2 = nr.OY1 + sign(h)*(abs(h)-1)
	if nr.OY1 > nr.OY2 {
		nr.OY1, nr.OY2 = nr.OY2, nr.OY1
	}

	if nr.OX1 >= canvasWidth || nr.OX2 < 0 {
		return nr, false
	}
	if nr.OY1 >= canvasHeight || nr.OY2 < 0 {
		return nr, false
	}

	nr.X1, nr.Y1 = nr.OX1, nr.OY1
	nr.X2, nr.Y2 = nr.OX2, nr.OY2
	if nr.X1 < 0 {
		nr.X1 = 0
	}
	if nr.X2 >= canvasWidth {
		nr.X2 = canvasWidth - 1
	}
	if nr.Y1 < 0 {
		nr.Y1 = 0
	}
	if nr.Y2 >= canvasHeight {
		nr.Y2 = canvasHeight - 1
	}
	return nr, true
}

// Subcanvas returns a view of the region (x, y, w, h) of c that shares its
// pixel memory. The region is clipped to c. The null canvas is returned when
// nothing of the region is visible.
func Subcanvas(c Canvas, x, y, w, h int) Canvas {
	nr, ok := NormalizeRect(x, y, w, h, c.Width, c.Height)
	if !ok {
		return Canvas{}
	}
	return Canvas{
		Pixels: c.Pixels[nr.Y1*c.Stride+nr.X1:],
		Width:  nr.X2 - nr.X1 + 1,
		Height: nr.Y2 - nr.Y1 + 1,
		Stride: c.Stride,
	}
}

// Fill assigns color to every pixel of c.
func Fill(c Canvas, color uint32) {
	for y := 0; y < c.Height; y++ {
		row := c.Pixels[y*c.Stride : y*c.Stride+c.Width]
		for x := range row {
			row[x] = color
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
