package olive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/olive/internal/codec"
)

// Format identifies an image file format for Encode and Save.
type Format = codec.Format

// Supported image formats. WebP can only be decoded.
const (
	FormatPNG  = codec.FormatPNG
	FormatJPEG = codec.FormatJPEG
	FormatBMP  = codec.FormatBMP
	FormatTIFF = codec.FormatTIFF
	FormatGIF  = codec.FormatGIF
	FormatWebP = codec.FormatWebP
)

// ErrUnsupportedFormat is returned for unknown formats and for formats that
// cannot be encoded.
var ErrUnsupportedFormat = codec.ErrUnsupportedFormat

// Encode writes the drawable to w in format f.
func (v *view) Encode(w io.Writer, f Format) error {
	return codec.Encode(w, v.Image(), f, nil)
}

// Save writes the drawable to path, choosing the format from the file
// extension.
func (v *view) Save(path string) error {
	f, err := codec.FormatFromPath(path)
	if err != nil {
		return err
	}
	return v.save(path, f)
}

// SavePNG writes the drawable to path as PNG, whatever the extension.
func (v *view) SavePNG(path string) error {
	return v.save(path, FormatPNG)
}

func (v *view) save(path string, format Format) error {
	if !format.CanEncode() {
		return fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, format)
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("olive: create file: %w", err)
	}
	if err := v.Encode(f, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("olive: close file: %w", err)
	}
	Logger().Info("olive: saved image", "path", path, "format", format.String(),
		"width", v.rc.Width, "height", v.rc.Height)
	return nil
}

// Decode reads an image in any supported format into a new canvas.
func Decode(r io.Reader) (*Canvas, error) {
	img, _, err := codec.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// Load reads an image file into a new canvas.
func Load(path string) (*Canvas, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("olive: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("olive: load %s: %w", path, err)
	}
	Logger().Info("olive: loaded image", "path", path,
		"width", c.Width(), "height", c.Height())
	return c, nil
}
