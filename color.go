package olive

import (
	"fmt"
	"image/color"

	"github.com/gogpu/olive/internal/raster"
)

// Colors are packed into a uint32 as R | G<<8 | B<<16 | A<<24, which is the
// byte order of image.NRGBA pixels on little-endian machines. Channels are
// not premultiplied.

// RGBA packs four channels into a color.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// RGB packs an opaque color.
func RGB(r, g, b uint8) uint32 {
	return RGBA(r, g, b, 0xFF)
}

// Red returns the red channel of c.
func Red(c uint32) uint8 { return uint8(raster.Red(c)) }

// Green returns the green channel of c.
func Green(c uint32) uint8 { return uint8(raster.Green(c)) }

// Blue returns the blue channel of c.
func Blue(c uint32) uint8 { return uint8(raster.Blue(c)) }

// Alpha returns the alpha channel of c.
func Alpha(c uint32) uint8 { return uint8(raster.Alpha(c)) }

// BlendColor composites c2 over c1. The result keeps the alpha of c1.
func BlendColor(c1, c2 uint32) uint32 {
	return raster.BlendColor(c1, c2)
}

// BlendColorInPlace composites c2 over *c1.
func BlendColorInPlace(c1 *uint32, c2 uint32) {
	*c1 = raster.BlendColor(*c1, c2)
}

// NRGBA converts a packed color to a color.NRGBA.
func NRGBA(c uint32) color.NRGBA {
	return color.NRGBA{R: Red(c), G: Green(c), B: Blue(c), A: Alpha(c)}
}

// ColorOf converts any color.Color to a packed color.
func ColorOf(c color.Color) uint32 {
	if n, ok := c.(color.NRGBA); ok {
		return RGBA(n.R, n.G, n.B, n.A)
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

// Hex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without '#'.
// Malformed strings yield opaque black.
func Hex(hex string) uint32 {
	c, err := ParseHex(hex)
	if err != nil {
		return RGB(0, 0, 0)
	}
	return c
}

// ParseHex is like Hex but reports malformed strings with ErrInvalidColor.
func ParseHex(hex string) (uint32, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var digits [8]uint8
	for i := 0; i < len(s) && i < len(digits); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
		digits[i] = d
	}

	switch len(s) {
	case 3: // RGB
		return RGB(digits[0]*17, digits[1]*17, digits[2]*17), nil
	case 4: // RGBA
		return RGBA(digits[0]*17, digits[1]*17, digits[2]*17, digits[3]*17), nil
	case 6: // RRGGBB
		return RGB(digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]), nil
	case 8: // RRGGBBAA
		return RGBA(digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5], digits[6]<<4|digits[7]), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
}

// FormatHex returns c as "#RRGGBBAA".
func FormatHex(c uint32) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", Red(c), Green(c), Blue(c), Alpha(c))
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
