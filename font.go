package olive

import (
	"fmt"
	"image"
	"sync"
	"unicode"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/olive/internal/raster"
)

// GlyphCount is the number of glyphs in a font table, one per ASCII code.
const GlyphCount = raster.GlyphCount

// Font is a fixed-cell bitmap font used by Text.
//
// The glyph table holds GlyphCount glyphs. Glyph i starts at byte
// i*width*height and stores height rows of width cells; a non-zero cell is
// drawn.
type Font struct {
	f raster.Font
}

// NewFont builds a font from a glyph table of GlyphCount*width*height
// bytes. The table is not copied.
func NewFont(width, height int, glyphs []byte) (*Font, error) {
	f := raster.Font{Width: width, Height: height, Glyphs: glyphs}
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %dx%d glyphs need %d bytes, have %d",
			ErrInvalidFont, width, height, GlyphCount*max(width, 0)*max(height, 0), len(glyphs))
	}
	return &Font{f: f}, nil
}

// Width returns the glyph cell width.
func (f *Font) Width() int { return f.f.Width }

// Height returns the glyph cell height.
func (f *Font) Height() int { return f.f.Height }

// Glyph returns the cells of the glyph for code, or nil when the table has
// no entry for it.
func (f *Font) Glyph(code int) []byte { return f.f.Glyph(code) }

// TextWidth returns the width in pixels of s drawn with Text at size.
func (f *Font) TextWidth(s string, size int) int {
	return len(glyphCodes(s)) * f.f.Width * size
}

// DefaultFont returns the built-in font: the printable ASCII range of
// basicfont.Face7x13, in 7x13 cells.
func DefaultFont() *Font {
	return defaultFont()
}

var defaultFont = sync.OnceValue(func() *Font {
	return fontFromFace(basicfont.Face7x13)
})

// fontFromFace rasterizes the printable ASCII glyphs of a basicfont face
// into a glyph table. Cells are one advance wide so that adjacent glyphs
// keep the face's spacing.
func fontFromFace(face *basicfont.Face) *Font {
	width := face.Advance
	height := face.Ascent + face.Descent
	glyphs := make([]byte, GlyphCount*width*height)

	dot := fixed.P(0, face.Ascent)
	for r := rune(0x21); r < 0x7f; r++ {
		dr, mask, maskp, _, ok := face.Glyph(dot, r)
		if !ok {
			continue
		}
		cells := glyphs[int(r)*width*height : (int(r)+1)*width*height]
		for dy := 0; dy < dr.Dy(); dy++ {
			row := dr.Min.Y + dy
			if row < 0 || row >= height {
				continue
			}
			for dx := 0; dx < dr.Dx(); dx++ {
				col := dr.Min.X + dx
				if col < 0 || col >= width {
					continue
				}
				if lit(mask, maskp.X+dx, maskp.Y+dy) {
					cells[row*width+col] = 1
				}
			}
		}
	}
	return &Font{f: raster.Font{Width: width, Height: height, Glyphs: glyphs}}
}

func lit(mask image.Image, x, y int) bool {
	_, _, _, a := mask.At(x, y).RGBA()
	return a >= 0x8000
}

// glyphCodes maps s to glyph codes. Compatibility decomposition folds
// ligatures and accented letters to their ASCII base, and combining marks
// are dropped.
func glyphCodes(s string) []int {
	codes := make([]int, 0, len(s))
	for _, r := range norm.NFKD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		codes = append(codes, int(r))
	}
	return codes
}

// Text draws s with a bitmap font, each font cell scaled to a size by size
// square, starting with the top-left of the first glyph at (x, y).
// A nil font selects DefaultFont. Characters without a glyph leave an empty
// cell.
func (v *view) Text(text string, x, y int, font *Font, size int, color uint32) {
	if font == nil {
		font = DefaultFont()
	}
	raster.Text(v.rc, glyphCodes(text), x, y, font.f, size, color)
}
