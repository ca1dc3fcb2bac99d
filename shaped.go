package olive

import (
	"bytes"
	"fmt"
	"image"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// HarfbuzzShaper keeps mutable buffers, so each call takes its own.
var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

// ShapedFace is an OpenType font at a fixed pixel size whose text is laid
// out by a HarfBuzz shaper: kerning, ligatures and contextual forms are
// applied the way the font defines them. Glyph outlines are filled with
// anti-aliasing.
//
// A ShapedFace is immutable and safe for concurrent use.
type ShapedFace struct {
	font    *gtfont.Font
	outline *sfnt.Font
	size    fixed.Int26_6
}

// ShapedGlyph is one positioned glyph of shaped text.
type ShapedGlyph struct {
	// ID is the glyph index in the font.
	ID uint16
	// Cluster is the index of the first rune this glyph was shaped from.
	Cluster int
	// X and Y locate the glyph origin relative to the start of the
	// baseline, in pixels. Y grows downwards.
	X, Y float64
	// Advance is the horizontal pen advance in pixels.
	Advance float64
}

// LoadShapedFace parses TrueType or OpenType data for shaped text at size
// pixels per em.
func LoadShapedFace(data []byte, size float64) (*ShapedFace, error) {
	if size <= 0 {
		return nil, fmt.Errorf("olive: invalid face size %v", size)
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("olive: parse font: %w", err)
	}
	outline, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("olive: parse outlines: %w", err)
	}
	return &ShapedFace{
		font:    face.Font,
		outline: outline,
		size:    fixed.Int26_6(size * 64),
	}, nil
}

// DefaultShapedFace returns Go Regular at size pixels per em.
func DefaultShapedFace(size float64) (*ShapedFace, error) {
	return LoadShapedFace(goregular.TTF, size)
}

// Size returns the face size in pixels per em.
func (f *ShapedFace) Size() float64 {
	return float64(f.size) / 64
}

func (f *ShapedFace) shape(s string) shaping.Output {
	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(f.font),
		Size:      f.size,
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)
	return out
}

// Shape lays out s on a single line and returns its glyphs in visual order.
func (f *ShapedFace) Shape(s string) []ShapedGlyph {
	if s == "" {
		return nil
	}
	out := f.shape(s)
	glyphs := make([]ShapedGlyph, len(out.Glyphs))
	var pen fixed.Int26_6
	for i, g := range out.Glyphs {
		// Shaper offsets point up, canvas rows grow down.
		glyphs[i] = ShapedGlyph{
			ID:      uint16(g.GlyphID), //nolint:gosec // sfnt glyph indices are 16-bit
			Cluster: g.TextIndex(),
			X:       fixedToFloat(pen + g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: fixedToFloat(g.Advance),
		}
		pen += g.Advance
	}
	return glyphs
}

// Measure returns the advance width of shaped s in whole pixels.
func (f *ShapedFace) Measure(s string) int {
	if s == "" {
		return 0
	}
	return f.shape(s).Advance.Ceil()
}

// DrawShaped shapes s with face and blends it over the drawable.
// (x, y) is the start of the baseline. Glyphs without an outline, such as
// spaces, only advance the pen.
func (v *view) DrawShaped(face *ShapedFace, s string, x, y int, color uint32) {
	if face == nil || s == "" || v.rc.IsNull() {
		return
	}
	glyphs := face.Shape(s)
	if len(glyphs) == 0 {
		return
	}

	bounds := v.Bounds()
	rz := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	var buf sfnt.Buffer
	for _, g := range glyphs {
		segments, err := face.outline.LoadGlyph(&buf, sfnt.GlyphIndex(g.ID), face.size, nil)
		if err != nil || len(segments) == 0 {
			continue
		}
		addOutline(rz, segments, float32(x)+float32(g.X), float32(y)+float32(g.Y))
	}

	mask := image.NewAlpha(bounds)
	rz.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	xdraw.DrawMask(v, bounds, image.NewUniform(NRGBA(color)), image.Point{}, mask, bounds.Min, xdraw.Over)
}

// addOutline appends glyph contours with their origin at (ox, oy).
func addOutline(rz *vector.Rasterizer, segments sfnt.Segments, ox, oy float32) {
	pt := func(p fixed.Point26_6) (float32, float32) {
		return ox + float32(p.X)/64, oy + float32(p.Y)/64
	}
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				rz.ClosePath()
			}
			rz.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			rz.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			rz.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			rz.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		rz.ClosePath()
	}
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
