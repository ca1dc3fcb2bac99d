package olive

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testPattern() *Canvas {
	c := New(5, 4, WithFill(RGB(10, 20, 30)))
	c.Rect(1, 1, 3, 2, RGB(200, 0, 0))
	c.SetPixel(4, 3, RGB(0, 255, 128))
	return c
}

func samePixels(t *testing.T, got, want Drawable) {
	t.Helper()
	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Fatalf("size = %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	for y := 0; y < want.Height(); y++ {
		for x := 0; x < want.Width(); x++ {
			if got.Pixel(x, y) != want.Pixel(x, y) {
				t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, got.Pixel(x, y), want.Pixel(x, y))
			}
		}
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	src := testPattern()
	for _, name := range []string{"out.png", "out.bmp", "out.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := src.Save(path); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			samePixels(t, got, src)
		})
	}
}

func TestSavePNGKeepsAlpha(t *testing.T) {
	c := New(2, 1)
	c.SetPixel(0, 0, RGBA(255, 0, 0, 100))
	path := filepath.Join(t.TempDir(), "alpha.data")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	samePixels(t, got, c)
}

func TestSaveSubcanvas(t *testing.T) {
	src := testPattern()
	sub := src.Subcanvas(1, 1, 3, 2)
	path := filepath.Join(t.TempDir(), "sub.png")
	if err := sub.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	samePixels(t, got, sub)
}

func TestSaveErrors(t *testing.T) {
	c := testPattern()
	dir := t.TempDir()
	for _, name := range []string{"out.webp", "out.svg", "noext"} {
		err := c.Save(filepath.Join(dir, name))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Save(%q) error = %v, want ErrUnsupportedFormat", name, err)
		}
		if _, statErr := os.Stat(filepath.Join(dir, name)); statErr == nil {
			t.Errorf("Save(%q) left a file behind", name)
		}
	}
	if err := c.Save(filepath.Join(dir, "missing", "out.png")); err == nil {
		t.Error("Save into a missing directory succeeded")
	}
}

func TestEncodeDecode(t *testing.T) {
	src := testPattern()
	var buf bytes.Buffer
	if err := src.Encode(&buf, FormatBMP); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	samePixels(t, got, src)

	if _, err := Decode(bytes.NewReader([]byte("garbage"))); err == nil {
		t.Error("Decode accepted garbage")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}
