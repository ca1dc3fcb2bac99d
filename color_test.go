package olive

import (
	"errors"
	"image/color"
	"testing"
)

func TestRGBAPacking(t *testing.T) {
	c := RGBA(0x11, 0x22, 0x33, 0x44)
	if c != 0x44332211 {
		t.Fatalf("RGBA = %#08x, want 0x44332211", c)
	}
	if Red(c) != 0x11 || Green(c) != 0x22 || Blue(c) != 0x33 || Alpha(c) != 0x44 {
		t.Errorf("channels = %#x %#x %#x %#x", Red(c), Green(c), Blue(c), Alpha(c))
	}
	if RGB(1, 2, 3) != RGBA(1, 2, 3, 255) {
		t.Error("RGB is not opaque RGBA")
	}
}

func TestBlendColor(t *testing.T) {
	tests := []struct {
		name   string
		c1, c2 uint32
		want   uint32
	}{
		{"opaque over", red, blue, blue},
		{"transparent over", red, RGBA(0, 0, 255, 0), red},
		{"half over black", black, RGBA(255, 255, 255, 128), RGBA(128, 128, 128, 255)},
		{"keeps destination alpha", RGBA(0, 0, 0, 10), RGBA(255, 0, 0, 255), RGBA(255, 0, 0, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlendColor(tt.c1, tt.c2); got != tt.want {
				t.Errorf("BlendColor(%#08x, %#08x) = %#08x, want %#08x", tt.c1, tt.c2, got, tt.want)
			}
			c := tt.c1
			BlendColorInPlace(&c, tt.c2)
			if c != tt.want {
				t.Errorf("BlendColorInPlace = %#08x, want %#08x", c, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		hex  string
		want uint32
	}{
		{"#f00", RGB(255, 0, 0)},
		{"0f08", RGBA(0, 255, 0, 136)},
		{"#BC002D", RGB(0xBC, 0x00, 0x2D)},
		{"#11223344", RGBA(0x11, 0x22, 0x33, 0x44)},
		{"", RGB(0, 0, 0)},
		{"#12345", RGB(0, 0, 0)},
		{"#gg0000", RGB(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			if got := Hex(tt.hex); got != tt.want {
				t.Errorf("Hex(%q) = %#08x, want %#08x", tt.hex, got, tt.want)
			}
		})
	}

	if _, err := ParseHex("#xyz"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("ParseHex(#xyz) error = %v, want ErrInvalidColor", err)
	}
	c, err := ParseHex(FormatHex(RGBA(1, 2, 254, 128)))
	if err != nil || c != RGBA(1, 2, 254, 128) {
		t.Errorf("FormatHex round trip = %#08x, %v", c, err)
	}
}

func TestColorConversion(t *testing.T) {
	c := RGBA(10, 20, 30, 40)
	if got := NRGBA(c); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 40}) {
		t.Errorf("NRGBA = %v", got)
	}
	if got := ColorOf(color.NRGBA{R: 10, G: 20, B: 30, A: 40}); got != c {
		t.Errorf("ColorOf(NRGBA) = %#08x, want %#08x", got, c)
	}
	// Premultiplied input is converted back to straight alpha.
	if got := ColorOf(color.RGBA{R: 128, A: 128}); got != RGBA(255, 0, 0, 128) {
		t.Errorf("ColorOf(RGBA) = %#08x", got)
	}
	if got := ColorOf(color.Gray{Y: 7}); got != RGB(7, 7, 7) {
		t.Errorf("ColorOf(Gray) = %#08x", got)
	}
}
