package olive

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"

	"github.com/gogpu/olive/internal/raster"
)

// Drawable is the drawing surface shared by *Canvas and *SubCanvas.
//
// All coordinates are in pixels relative to the top-left of the drawable.
// Shapes are clipped to its bounds; calls that would touch no pixel do
// nothing. Colors are packed as described in RGBA.
//
// Every Drawable is also a draw.Image in the color.NRGBA model, so the
// image/draw and golang.org/x/image/draw packages can paint on it directly.
type Drawable interface {
	draw.Image

	Width() int
	Height() int
	Stride() int

	// Subcanvas returns a view of the region (x, y, w, h) clipped to the
	// drawable, or nil when the region is empty or entirely outside.
	Subcanvas(x, y, w, h int) *SubCanvas

	Fill(color uint32)
	Rect(x, y, w, h int, color uint32)
	Frame(x, y, w, h, thickness int, color uint32)
	Circle(cx, cy, r int, color uint32)
	Ellipse(cx, cy, rx, ry int, color uint32)
	Line(x1, y1, x2, y2 int, color uint32)
	Triangle(x1, y1, x2, y2, x3, y3 int, color uint32)
	Triangle3C(x1, y1, x2, y2, x3, y3 int, c1, c2, c3 uint32)
	Triangle3Z(x1, y1, x2, y2, x3, y3 int, z1, z2, z3 float32)
	Triangle3UV(x1, y1, x2, y2, x3, y3 int, tx1, ty1, tx2, ty2, tx3, ty3, z1, z2, z3 float32, texture Drawable)
	Triangle3UVBilinear(x1, y1, x2, y2, x3, y3 int, tx1, ty1, tx2, ty2, tx3, ty3, z1, z2, z3 float32, texture Drawable)
	Text(text string, x, y int, font *Font, size int, color uint32)
	DrawString(face font.Face, s string, x, y int, color uint32)
	DrawShaped(face *ShapedFace, s string, x, y int, color uint32)
	SpriteBlend(x, y, w, h int, sprite Drawable)
	SpriteCopy(x, y, w, h int, sprite Drawable)
	SpriteCopyBilinear(x, y, w, h int, sprite Drawable)
	DrawImage(img image.Image, x, y, w, h int, interp Interpolation)
	PixelBilinear(nx, ny, w, h int) uint32

	SetPixel(x, y int, color uint32)
	Pixel(x, y int) uint32
	NormalizeRect(x, y, w, h int) (NormalizedRect, bool)
	Data() []byte
	Image() *image.NRGBA

	descriptor() raster.Canvas
}

var (
	_ Drawable = (*Canvas)(nil)
	_ Drawable = (*SubCanvas)(nil)
)

// view implements Drawable over a raster descriptor. It is embedded by
// Canvas and SubCanvas.
type view struct {
	rc raster.Canvas
}

// descriptorOf returns the raster descriptor of d, or the null canvas for a
// nil drawable.
func descriptorOf(d Drawable) raster.Canvas {
	switch v := d.(type) {
	case nil:
		return raster.Canvas{}
	case *Canvas:
		if v == nil {
			return raster.Canvas{}
		}
	case *SubCanvas:
		if v == nil {
			return raster.Canvas{}
		}
	}
	return d.descriptor()
}

// source resolves a sprite or texture argument, logging when it is empty.
func source(op string, d Drawable) (raster.Canvas, bool) {
	rc := descriptorOf(d)
	if rc.IsNull() {
		Logger().Debug("olive: empty source skipped", "op", op)
		return rc, false
	}
	return rc, true
}

func (v *view) descriptor() raster.Canvas { return v.rc }

// Width returns the width in pixels.
func (v *view) Width() int { return v.rc.Width }

// Height returns the height in pixels.
func (v *view) Height() int { return v.rc.Height }

// Stride returns the distance between rows of the underlying buffer, in
// pixels.
func (v *view) Stride() int { return v.rc.Stride }

func (v *view) subcanvas(parent Drawable, x, y, w, h int) *SubCanvas {
	sub := raster.Subcanvas(v.rc, x, y, w, h)
	if sub.IsNull() {
		Logger().Debug("olive: subcanvas outside parent",
			"x", x, "y", y, "w", w, "h", h,
			"width", v.rc.Width, "height", v.rc.Height)
		return nil
	}
	return &SubCanvas{view: view{rc: sub}, parent: parent}
}

// Fill sets every pixel to color without blending.
func (v *view) Fill(color uint32) {
	raster.Fill(v.rc, color)
}

// Rect blends a filled rectangle. Negative w or h extend it left or up.
func (v *view) Rect(x, y, w, h int, color uint32) {
	raster.Rect(v.rc, x, y, w, h, color)
}

// Frame draws the outline of a rectangle with the given thickness, centered
// on its edges.
func (v *view) Frame(x, y, w, h, thickness int, color uint32) {
	raster.Frame(v.rc, x, y, w, h, thickness, color)
}

// Circle blends an anti-aliased filled circle.
func (v *view) Circle(cx, cy, r int, color uint32) {
	raster.Circle(v.rc, cx, cy, r, color)
}

// Ellipse fills an axis-aligned ellipse without blending.
func (v *view) Ellipse(cx, cy, rx, ry int, color uint32) {
	raster.Ellipse(v.rc, cx, cy, rx, ry, color)
}

// Line blends a one pixel wide line.
func (v *view) Line(x1, y1, x2, y2 int, color uint32) {
	raster.Line(v.rc, x1, y1, x2, y2, color)
}

// Triangle blends a flat colored triangle.
func (v *view) Triangle(x1, y1, x2, y2, x3, y3 int, color uint32) {
	raster.Triangle(v.rc, x1, y1, x2, y2, x3, y3, color)
}

// Triangle3C blends a triangle whose color is interpolated from its corners.
func (v *view) Triangle3C(x1, y1, x2, y2, x3, y3 int, c1, c2, c3 uint32) {
	raster.Triangle3C(v.rc, x1, y1, x2, y2, x3, y3, c1, c2, c3)
}

// Triangle3Z writes interpolated depth values into the pixels covered by the
// triangle. Each pixel holds the IEEE 754 bits of a float32, which makes the
// drawable usable as a depth buffer.
func (v *view) Triangle3Z(x1, y1, x2, y2, x3, y3 int, z1, z2, z3 float32) {
	raster.Triangle3Z(v.rc, x1, y1, x2, y2, x3, y3, z1, z2, z3)
}

// Triangle3UV maps texture onto a triangle with nearest sampling. Texture
// coordinates are in [0, 1] and are divided by the per-corner z for
// perspective correction.
func (v *view) Triangle3UV(x1, y1, x2, y2, x3, y3 int, tx1, ty1, tx2, ty2, tx3, ty3, z1, z2, z3 float32, texture Drawable) {
	tex, ok := source("Triangle3UV", texture)
	if !ok {
		return
	}
	raster.Triangle3UV(v.rc, x1, y1, x2, y2, x3, y3, tx1, ty1, tx2, ty2, tx3, ty3, z1, z2, z3, tex)
}

// Triangle3UVBilinear is Triangle3UV with bilinear texture sampling.
func (v *view) Triangle3UVBilinear(x1, y1, x2, y2, x3, y3 int, tx1, ty1, tx2, ty2, tx3, ty3, z1, z2, z3 float32, texture Drawable) {
	tex, ok := source("Triangle3UVBilinear", texture)
	if !ok {
		return
	}
	raster.Triangle3UVBilinear(v.rc, x1, y1, x2, y2, x3, y3, tx1, ty1, tx2, ty2, tx3, ty3, z1, z2, z3, tex)
}

// SpriteBlend scales sprite into (x, y, w, h) with nearest sampling and
// blends it. Negative w or h mirror the sprite.
func (v *view) SpriteBlend(x, y, w, h int, sprite Drawable) {
	src, ok := source("SpriteBlend", sprite)
	if !ok {
		return
	}
	raster.SpriteBlend(v.rc, x, y, w, h, src)
}

// SpriteCopy is like SpriteBlend but overwrites the destination pixels.
func (v *view) SpriteCopy(x, y, w, h int, sprite Drawable) {
	src, ok := source("SpriteCopy", sprite)
	if !ok {
		return
	}
	raster.SpriteCopy(v.rc, x, y, w, h, src)
}

// SpriteCopyBilinear scales sprite into (x, y, w, h) with bilinear
// sampling, overwriting the destination. w and h must be positive.
func (v *view) SpriteCopyBilinear(x, y, w, h int, sprite Drawable) {
	src, ok := source("SpriteCopyBilinear", sprite)
	if !ok {
		return
	}
	raster.SpriteCopyBilinear(v.rc, x, y, w, h, src)
}

// PixelBilinear samples the drawable at the fixed-point position
// (nx/w, ny/h). It returns 0 for non-positive w or h.
func (v *view) PixelBilinear(nx, ny, w, h int) uint32 {
	return raster.PixelBilinear(v.rc, nx, ny, w, h)
}

// SetPixel assigns color to (x, y). Out of range coordinates are ignored.
func (v *view) SetPixel(x, y int, color uint32) {
	if v.rc.Contains(x, y) {
		v.rc.Set(x, y, color)
	}
}

// Pixel returns the color at (x, y), or 0 outside the drawable.
func (v *view) Pixel(x, y int) uint32 {
	if !v.rc.Contains(x, y) {
		return 0
	}
	return v.rc.At(x, y)
}

// NormalizeRect clips (x, y, w, h) to the drawable.
func (v *view) NormalizeRect(x, y, w, h int) (NormalizedRect, bool) {
	return NormalizeRect(x, y, w, h, v.rc.Width, v.rc.Height)
}

// Data returns the pixels as RGBA bytes in row order, without stride
// padding.
func (v *view) Data() []byte {
	buf := make([]byte, 4*v.rc.Width*v.rc.Height)
	i := 0
	for y := 0; y < v.rc.Height; y++ {
		for x := 0; x < v.rc.Width; x++ {
			binary.LittleEndian.PutUint32(buf[i:], v.rc.At(x, y))
			i += 4
		}
	}
	return buf
}

// ColorModel implements image.Image.
func (v *view) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (v *view) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.rc.Width, v.rc.Height)
}

// At implements image.Image.
func (v *view) At(x, y int) color.Color {
	return NRGBA(v.Pixel(x, y))
}

// Set implements draw.Image. The color is assigned, not blended.
func (v *view) Set(x, y int, c color.Color) {
	v.SetPixel(x, y, ColorOf(c))
}
