// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

// bilinearPrecision is the fixed-point scale used when Triangle3UVBilinear
// hands texture coordinates to PixelBilinear.
const bilinearPrecision = 100

// Barycentric computes integer barycentric coordinates of (xp, yp) relative
// to the triangle. The weight of the third vertex is det-u1-u2. It reports
// whether the point lies inside the triangle or on its edge.
func Barycentric(x1, y1, x2, y2, x3, y3, xp, yp int) (u1, u2, det int, inside bool) {
	det = (x1-x3)*(y2-y3) - (x2-x3)*(y1-y3)
	u1 = (y2-y3)*(xp-x3) + (x3-x2)*(yp-y3)
	u2 = (y3-y1)*(xp-x3) + (x1-x3)*(yp-y3)
	u3 := det - u1 - u2
	sd := sign(det)
	inside = (sign(u1) == sd || u1 == 0) &&
		(sign(u2) == sd || u2 == 0) &&
		(sign(u3) == sd || u3 == 0)
	return u1, u2, det, inside
}

// NormalizeTriangle computes the bounding box of the triangle clipped to a
// width by height area. It reports false when the box lies outside the area.
func NormalizeTriangle(width, height, x1, y1, x2, y2, x3, y3 int) (lx, hx, ly, hy int, ok bool) {
	lx = min(x1, x2, x3)
	hx = max(x1, x2, x3)
	if lx < 0 {
		lx = 0
	}
	if lx >= width || hx < 0 {
		return 0, 0, 0, 0, false
	}
	if hx >= width {
		hx = width - 1
	}

	ly = min(y1, y2, y3)
	hy = max(y1, y2, y3)
	if ly < 0 {
		ly = 0
	}
	if ly >= height || hy < 0 {
		return 0, 0, 0, 0, false
	}
	if hy >= height {
		hy = height - 1
	}
	return lx, hx, ly, hy, true
}

// triangleFragment visits every pixel of c covered by the triangle together
// with its barycentric coordinates.
func triangleFragment(c Canvas, x1, y1, x2, y2, x3, y3 int, visit func(x, y, u1, u2, det int)) {
	lx, hx, ly, hy, ok := NormalizeTriangle(c.Width, c.Height, x1, y1, x2, y2, x3, y3)
	if !ok {
		return
	}
	for y := ly; y <= hy; y++ {
		for x := lx; x <= hx; x++ {
			if u1, u2, det, inside := Barycentric(x1, y1, x2, y2, x3, y3, x, y); inside {
				visit(x, y, u1, u2, det)
			}
		}
	}
}

// Triangle blends a flat colored triangle.
func Triangle(c Canvas, x1, y1, x2, y2, x3, y3 int, color uint32) {
	triangleFragment(c, x1, y1, x2, y2, x3, y3, func(x, y, _, _, _ int) {
		c.Blend(x, y, color)
	})
}

// Triangle3C blends a triangle whose color is interpolated between the
// vertex colors c1, c2 and c3.
func Triangle3C(c Canvas, x1, y1, x2, y2, x3, y3 int, c1, c2, c3 uint32) {
	triangleFragment(c, x1, y1, x2, y2, x3, y3, func(x, y, u1, u2, det int) {
		c.Blend(x, y, mixColors3(c1, c2, c3, u1, u2, det))
	})
}

// Triangle3Z writes the interpolated depth of every covered pixel as the raw
// bits of a float32.
func Triangle3Z(c Canvas, x1, y1, x2, y2, x3, y3 int, z1, z2, z3 float32) {
	triangleFragment(c, x1, y1, x2, y2, x3, y3, func(x, y, u1, u2, det int) {
		z := interpolate(z1, z2, z3, u1, u2, det)
		c.Set(x, y, math.Float32bits(z))
	})
}

// Triangle3UV maps texture onto the triangle with perspective-corrected
// coordinates (tx/z, ty/z) and nearest texel sampling.
func Triangle3UV(c Canvas, x1, y1, x2, y2, x3, y3 int, tx1, ty1, tx2, ty2, tx3, ty3, z1, z2, z3 float32, texture Canvas) {
	if texture.IsNull() {
		return
	}
	triangleFragment(c, x1, y1, x2, y2, x3, y3, func(x, y, u1, u2, det int) {
		z := interpolate(z1, z2, z3, u1, u2, det)
		tx := interpolate(tx1, tx2, tx3, u1, u2, det)
		ty := interpolate(ty1, ty2, ty3, u1, u2, det)

		texX := clampIndex(tx/z*float32(texture.Width), texture.Width)
		texY := clampIndex(ty/z*float32(texture.Height), texture.Height)
		c.Set(x, y, texture.At(texX, texY))
	})
}

// Triangle3UVBilinear is Triangle3UV with bilinear texel sampling.
func Triangle3UVBilinear(c Canvas, x1, y1, x2, y2, x3, y3 int, tx1, ty1, tx2, ty2, tx3, ty3, z1, z2, z3 float32, texture Canvas) {
	if texture.IsNull() {
		return
	}
	triangleFragment(c, x1, y1, x2, y2, x3, y3, func(x, y, u1, u2, det int) {
		z := interpolate(z1, z2, z3, u1, u2, det)
		tx := interpolate(tx1, tx2, tx3, u1, u2, det)
		ty := interpolate(ty1, ty2, ty3, u1, u2, det)

		texX := tx / z * float32(texture.Width)
		texY := ty / z * float32(texture.Height)
		c.Set(x, y, PixelBilinear(texture,
			toInt(texX*bilinearPrecision), toInt(texY*bilinearPrecision),
			bilinearPrecision, bilinearPrecision))
	})
}

func interpolate(a1, a2, a3 float32, u1, u2, det int) float32 {
	d := float32(det)
	return a1*float32(u1)/d + a2*float32(u2)/d + a3*float32(det-u1-u2)/d
}

// clampIndex truncates v and clamps it into [0, n-1]. NaN maps to 0.
func clampIndex(v float32, n int) int {
	i := toInt(v)
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// toInt truncates v toward zero, saturating infinities and mapping NaN to 0
// so that degenerate depth values stay well defined.
func toInt(v float32) int {
	switch {
	case math.IsNaN(float64(v)):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}
