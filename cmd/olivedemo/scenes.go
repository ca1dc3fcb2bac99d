package main

import (
	"github.com/gogpu/olive"
	"github.com/gogpu/olive/recording"
)

// scenes maps scene names to functions that record them at the recorder's
// size.
var scenes = map[string]func(*recording.Recorder){
	"japan":     japan,
	"subcanvas": subcanvas,
	"shapes":    shapes,
	"text":      text,
}

// japan draws the flag of Japan, with the disc sized as on the official
// flag (three fifths of the height).
func japan(rec *recording.Recorder) {
	w, h := rec.Width(), rec.Height()
	rec.SetBackground(olive.RGB(0xFF, 0xFF, 0xFF))
	rec.Circle(w/2, h/2, h*3/10, olive.RGB(0xBC, 0x00, 0x2D))
}

// subcanvas draws a blue box with a red outline by filling an inset
// sub-canvas.
func subcanvas(rec *recording.Recorder) {
	w, h := rec.Width(), rec.Height()
	rec.SetBackground(olive.RGB(255, 0, 0))
	rec.Region(20, 20, w-40, h-40, func(r *recording.Recorder) {
		r.Fill(olive.RGB(50, 50, 255))
	})
}

func shapes(rec *recording.Recorder) {
	w, h := rec.Width(), rec.Height()
	rec.SetBackground(olive.RGB(0x18, 0x18, 0x18))

	rec.AddImage("checker", checker(8, olive.RGB(0xE0, 0xE0, 0xE0), olive.RGB(0x40, 0x40, 0x40)))

	cw, ch := w/3, h/2
	rec.Region(0, 0, cw, ch, func(r *recording.Recorder) {
		r.Triangle3C(cw/2, ch/8, cw/8, ch*7/8, cw*7/8, ch*7/8,
			olive.RGB(255, 0, 0), olive.RGB(0, 255, 0), olive.RGB(0, 0, 255))
	})
	rec.Region(cw, 0, cw, ch, func(r *recording.Recorder) {
		r.Circle(cw/2, ch/2, min(cw, ch)/3, olive.RGBA(0xFF, 0x80, 0x00, 0xC0))
		r.Circle(cw/2+min(cw, ch)/6, ch/2, min(cw, ch)/3, olive.RGBA(0x00, 0x80, 0xFF, 0x80))
		r.Frame(8, 8, cw-16, ch-16, 4, olive.RGB(0xFF, 0xFF, 0xFF))
	})
	rec.Region(2*cw, 0, w-2*cw, ch, func(r *recording.Recorder) {
		for i := 0; i <= 16; i++ {
			r.Line(0, ch*i/16, (w-2*cw)*i/16, ch, olive.RGB(0x80, 0xFF, 0x80))
		}
	})
	rec.Region(0, ch, cw, h-ch, func(r *recording.Recorder) {
		r.Ellipse(cw/2, (h-ch)/2, cw*2/5, (h-ch)/4, olive.RGB(0xFF, 0xD7, 0x00))
	})
	rec.Region(cw, ch, cw, h-ch, func(r *recording.Recorder) {
		r.SpriteCopyBilinear(8, 8, cw-16, h-ch-16, "checker")
	})
	rec.Region(2*cw, ch, w-2*cw, h-ch, func(r *recording.Recorder) {
		r.SpriteBlend(8, 8, w-2*cw-16, h-ch-16, "checker")
		r.Rect(8, 8, w-2*cw-16, h-ch-16, olive.RGBA(0xBC, 0x00, 0x2D, 0x60))
	})
}

func text(rec *recording.Recorder) {
	rec.SetBackground(olive.RGB(0, 0, 0))
	size := max(rec.Width()/(7*14), 1)
	lines := []string{"Hello, olive!", "0123456789", "crème brûlée"}
	for i, line := range lines {
		rec.Text(line, size*7, size*7+i*size*16, size, olive.RGB(0xFF, 0xFF, 0xFF))
	}
}

// checker returns an n x n checkerboard of a and b cells.
func checker(n int, a, b uint32) *olive.Canvas {
	c := olive.New(n, n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if (x+y)%2 == 0 {
				c.SetPixel(x, y, a)
			} else {
				c.SetPixel(x, y, b)
			}
		}
	}
	return c
}
