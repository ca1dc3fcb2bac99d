// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// aaRes is the per-axis supersampling factor used by Circle.
const aaRes = 2

// Rect blends color over the rectangle (x, y, w, h).
func Rect(c Canvas, x, y, w, h int, color uint32) {
	nr, ok := NormalizeRect(x, y, w, h, c.Width, c.Height)
	if !ok {
		return
	}
	for py := nr.Y1; py <= nr.Y2; py++ {
		for px := nr.X1; px <= nr.X2; px++ {
			c.Blend(px, py, color)
		}
	}
}

// Frame draws the outline of (x, y, w, h) with thickness t, centered on the
// rectangle's edge pixels.
func Frame(c Canvas, x, y, w, h, t int, color uint32) {
	if t <= 0 {
		return
	}

	x1, y1 := x, y
	x2 := x1 + sign(w)*(abs(w)-1)
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y2 := y1 + sign(h)*(abs(h)-1)
	if y1 > y2 {
		y1, y2 = y2, y1
	}

	half := t / 2
	Rect(c, x1-half, y1-half, (x2-x1+1)+half*2, t, color)  // top
	Rect(c, x1-half, y1-half, t, (y2-y1+1)+half*2, color)  // left
	Rect(c, x1-half, y2+half, (x2-x1+1)+half*2, -t, color) // bottom
	Rect(c, x2+half, y1-half, -t, (y2-y1+1)+half*2, color) // right
}

// Circle draws a filled circle of radius r centered at (cx, cy). Edge pixels
// are supersampled and their coverage scales the alpha of color.
func Circle(c Canvas, cx, cy, r int, color uint32) {
	r1 := r + sign(r)
	nr, ok := NormalizeRect(cx-r1, cy-r1, 2*r1, 2*r1, c.Width, c.Height)
	if !ok {
		return
	}

	covered := circleCoverage(cx, cy, r)
	for py := nr.Y1; py <= nr.Y2; py++ {
		for px := nr.X1; px <= nr.X2; px++ {
			count := uint32(0)
			for sox := 0; sox < aaRes; sox++ {
				for soy := 0; soy < aaRes; soy++ {
					if covered(px, py, sox, soy) {
						count++
					}
				}
			}
			alpha := Alpha(color) * count / aaRes / aaRes
			c.Blend(px, py, color&0x00FFFFFF|alpha<<24)
		}
	}
}

// exactCircleLimit bounds |cx|, |cy| and |r| for which squared sample
// distances fit in int64.
const exactCircleLimit = 1 << 26

// circleCoverage returns the sample test for a circle. Sample coordinates
// are scaled by 2*(aaRes+1) so that they stay integral. The test is exact
// in int64 while the operands are below exactCircleLimit and falls back to
// float64 for larger circles.
func circleCoverage(cx, cy, r int) func(px, py, sox, soy int) bool {
	const res1 = aaRes + 1
	small := func(v int) bool { return -exactCircleLimit < v && v < exactCircleLimit }
	if small(cx) && small(cy) && small(r) {
		limit := int64(res1) * res1 * int64(r) * int64(r) * 4
		return func(px, py, sox, soy int) bool {
			dx := int64(px*res1*2 + 2 + sox*2 - res1*cx*2 - res1)
			dy := int64(py*res1*2 + 2 + soy*2 - res1*cy*2 - res1)
			return dx*dx+dy*dy <= limit
		}
	}
	fr := float64(r)
	limit := float64(res1) * res1 * fr * fr * 4
	return func(px, py, sox, soy int) bool {
		dx := float64(px*res1*2+2+sox*2-res1) - float64(cx)*res1*2
		dy := float64(py*res1*2+2+soy*2-res1) - float64(cy)*res1*2
		return dx*dx+dy*dy <= limit
	}
}

// Ellipse fills the ellipse with radii rx and ry centered at (cx, cy).
// Covered pixels are assigned, not blended.
func Ellipse(c Canvas, cx, cy, rx, ry int, color uint32) {
	rx1 := rx + sign(rx)
	ry1 := ry + sign(ry)
	nr, ok := NormalizeRect(cx-rx1, cy-ry1, 2*rx1, 2*ry1, c.Width, c.Height)
	if !ok {
		return
	}

	for py := nr.Y1; py <= nr.Y2; py++ {
		for px := nr.X1; px <= nr.X2; px++ {
			nx := (float32(px) + 0.5 - float32(nr.OX1)) / (2 * float32(rx1))
			ny := (float32(py) + 0.5 - float32(nr.OY1)) / (2 * float32(ry1))
			dx := nx - 0.5
			dy := ny - 0.5
			if dx*dx+dy*dy <= 0.5*0.5 {
				c.Set(px, py, color)
			}
		}
	}
}

// Line draws a one pixel wide line from (x1, y1) to (x2, y2), stepping along
// the major axis. The major axis range is clipped to c; pixels whose minor
// coordinate falls outside c are skipped.
func Line(c Canvas, x1, y1, x2, y2 int, color uint32) {
	dx := x2 - x1
	dy := y2 - y1

	if dx == 0 && dy == 0 {
		if c.Contains(x1, y1) {
			c.Blend(x1, y1, color)
		}
		return
	}

	if abs(dx) > abs(dy) {
		if x1 > x2 {
			x1, x2 = x2, x1
			y1, y2 = y2, y1
		}
		for x := max(x1, 0); x <= min(x2, c.Width-1); x++ {
			y := dy*(x-x1)/dx + y1
			if c.Contains(x, y) {
				c.Blend(x, y, color)
			}
		}
		return
	}

	if y1 > y2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}
	for y := max(y1, 0); y <= min(y2, c.Height-1); y++ {
		x := dx*(y-y1)/dy + x1
		if c.Contains(x, y) {
			c.Blend(x, y, color)
		}
	}
}
