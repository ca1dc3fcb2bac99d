// Package olive is a small software 2D canvas for Go.
//
// # Overview
//
// olive draws into plain memory: a canvas is a rectangle of packed RGBA
// pixels that can be handed to any image consumer. It follows the design of
// the olive.c single-header library: integer coordinates, a handful of
// primitives (rectangles, frames, circles, ellipses, lines, triangles,
// bitmap text, sprites) and no hidden state.
//
// # Quick Start
//
//	import "github.com/gogpu/olive"
//
//	c := olive.New(900, 600, olive.WithFill(olive.RGB(255, 255, 255)))
//	c.Circle(450, 300, 180, olive.RGB(0xBC, 0x00, 0x2D))
//	if err := c.SavePNG("japan.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Canvases and Sub-canvases
//
// A Canvas owns its buffer. Subcanvas returns a SubCanvas, a window into
// the same memory with its own origin and clipping. Both implement
// Drawable, so every drawing call, and every sprite or texture argument,
// accepts either.
//
// # Colors
//
// A color is a uint32 holding R | G<<8 | B<<16 | A<<24, not premultiplied.
// Use RGBA, RGB or Hex to build one. Rect, Circle, Triangle, Triangle3C,
// Text and SpriteBlend blend the color over the destination; Fill, Ellipse,
// Line and the copy operations assign it.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Shapes partly outside a drawable are clipped; shapes entirely outside
// are ignored. Drawing never fails.
//
// # Image Interop
//
// Every Drawable implements draw.Image, and Image, FromImage and DrawImage
// convert to and from the standard image types. Encode, Save and Load
// read and write PNG, JPEG, BMP, TIFF and GIF; WebP can be loaded.
//
// # Text
//
// Text draws with a fixed-cell glyph table (DefaultFont, or a Font built
// with NewFont). DrawString draws with any font.Face. DrawShaped draws with
// a ShapedFace, whose layout applies the kerning and ligatures of the font.
//
// # Logging
//
// olive is silent by default. See SetLogger.
package olive
