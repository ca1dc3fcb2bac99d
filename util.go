package olive

import "github.com/gogpu/olive/internal/raster"

// NormalizedRect is a rectangle clipped to a canvas.
// X1..X2 and Y1..Y2 are inclusive pixel ranges inside the canvas.
// OX1..OY2 are the corners before clipping.
type NormalizedRect = raster.NormalizedRect

// NormalizeRect converts (x, y, w, h) into inclusive corners clipped to a
// canvasWidth by canvasHeight area. Negative w or h extend the rectangle
// left or up. It reports false when nothing of the rectangle is visible.
func NormalizeRect(x, y, w, h, canvasWidth, canvasHeight int) (NormalizedRect, bool) {
	return raster.NormalizeRect(x, y, w, h, canvasWidth, canvasHeight)
}

// NormalizeTriangle returns the bounding box of a triangle clipped to a
// width by height area, or false when it lies entirely outside.
func NormalizeTriangle(width, height, x1, y1, x2, y2, x3, y3 int) (lx, hx, ly, hy int, ok bool) {
	return raster.NormalizeTriangle(width, height, x1, y1, x2, y2, x3, y3)
}

// Barycentric computes the barycentric weights of (xp, yp) in a triangle as
// u1/det and u2/det; the third weight is (det-u1-u2)/det. It reports
// whether the point lies inside the triangle or on its edge.
func Barycentric(x1, y1, x2, y2, x3, y3, xp, yp int) (u1, u2, det int, ok bool) {
	return raster.Barycentric(x1, y1, x2, y2, x3, y3, xp, yp)
}
