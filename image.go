package olive

import (
	"encoding/binary"
	"image"

	xdraw "golang.org/x/image/draw"
)

// Interpolation selects the resampling kernel used by DrawImage.
type Interpolation uint8

const (
	// InterpNearest selects the closest source pixel.
	InterpNearest Interpolation = iota

	// InterpApproxBilinear is a fast approximation of bilinear filtering.
	InterpApproxBilinear

	// InterpBilinear interpolates between the four neighboring pixels.
	InterpBilinear

	// InterpCatmullRom uses a Catmull-Rom cubic kernel.
	// Highest quality but slowest.
	InterpCatmullRom
)

// String returns a string representation of the interpolation mode.
func (i Interpolation) String() string {
	switch i {
	case InterpNearest:
		return "Nearest"
	case InterpApproxBilinear:
		return "ApproxBilinear"
	case InterpBilinear:
		return "Bilinear"
	case InterpCatmullRom:
		return "CatmullRom"
	default:
		return "Unknown"
	}
}

func (i Interpolation) scaler() xdraw.Scaler {
	switch i {
	case InterpApproxBilinear:
		return xdraw.ApproxBiLinear
	case InterpBilinear:
		return xdraw.BiLinear
	case InterpCatmullRom:
		return xdraw.CatmullRom
	default:
		return xdraw.NearestNeighbor
	}
}

// FromImage copies img into a new canvas of the same size. The canvas
// origin is the top-left of img.Bounds().
func FromImage(img image.Image) *Canvas {
	b := img.Bounds()
	c := New(b.Dx(), b.Dy())
	if n, ok := img.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			row := n.Pix[n.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < b.Dx(); x++ {
				c.rc.Set(x, y, binary.LittleEndian.Uint32(row[4*x:]))
			}
		}
		return c
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c.rc.Set(x, y, ColorOf(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return c
}

// Image returns a copy of the drawable as an *image.NRGBA.
func (v *view) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, v.rc.Width, v.rc.Height))
	for y := 0; y < v.rc.Height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < v.rc.Width; x++ {
			binary.LittleEndian.PutUint32(row[4*x:], v.rc.At(x, y))
		}
	}
	return img
}

// DrawImage scales img into the rectangle (x, y, w, h) and composites it
// over the drawable. Negative w or h extend the rectangle left or up; the
// image is not mirrored.
func (v *view) DrawImage(img image.Image, x, y, w, h int, interp Interpolation) {
	if img == nil || img.Bounds().Empty() {
		Logger().Debug("olive: empty source skipped", "op", "DrawImage")
		return
	}
	nr, ok := v.NormalizeRect(x, y, w, h)
	if !ok {
		return
	}
	dr := image.Rect(nr.OX1, nr.OY1, nr.OX2+1, nr.OY2+1)
	interp.scaler().Scale(v, dr, img, img.Bounds(), xdraw.Over, nil)
}
