package olive

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// LoadFace parses TrueType or OpenType data and returns a face at size
// points, rendered at 72 DPI so that one point is one pixel.
func LoadFace(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("olive: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("olive: create face: %w", err)
	}
	return face, nil
}

// DefaultFace returns Go Regular at size points.
func DefaultFace(size float64) (font.Face, error) {
	return LoadFace(goregular.TTF, size)
}

// MeasureString returns the advance width of s in whole pixels.
func MeasureString(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// DrawString draws s with an outline face, anti-aliased and blended over
// the drawable. (x, y) is the start of the baseline.
func (v *view) DrawString(face font.Face, s string, x, y int, color uint32) {
	if face == nil || s == "" {
		return
	}
	d := &font.Drawer{
		Dst:  v,
		Src:  image.NewUniform(NRGBA(color)),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
