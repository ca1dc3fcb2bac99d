// Package codec encodes and decodes canvas images through the standard
// library and golang.org/x/image codecs.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // registers the WebP decoder
)

// Codec errors.
var (
	// ErrUnsupportedFormat is returned when a format is unknown or cannot be
	// encoded.
	ErrUnsupportedFormat = errors.New("codec: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("codec: empty data")
)

// Format identifies an image file format.
type Format uint8

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatBMP
	FormatTIFF
	FormatGIF
	FormatWebP
)

var formatNames = [...]string{
	FormatPNG:  "png",
	FormatJPEG: "jpeg",
	FormatBMP:  "bmp",
	FormatTIFF: "tiff",
	FormatGIF:  "gif",
	FormatWebP: "webp",
}

// String returns the format name as used by image.RegisterFormat.
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// CanEncode reports whether images can be written in this format.
func (f Format) CanEncode() bool {
	return f <= FormatGIF
}

// ParseFormat maps a format name or file extension (with or without the
// leading dot) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	case "gif":
		return FormatGIF, nil
	case "webp":
		return FormatWebP, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// FormatFromPath picks a format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Options tune encoding.
type Options struct {
	// JPEGQuality ranges from 1 to 100. Zero selects jpeg.DefaultQuality.
	JPEGQuality int
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format, opts *Options) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		quality := jpeg.DefaultQuality
		if opts != nil && opts.JPEGQuality != 0 {
			quality = min(max(opts.JPEGQuality, 1), 100)
		}
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case FormatGIF:
		err = gif.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("codec: encode %s: %w", f, err)
	}
	return nil
}

// Decode reads an image from r, detecting its format from the content.
func Decode(r io.Reader) (image.Image, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, 0, fmt.Errorf("codec: decode: %w", err)
	}
	f, err := ParseFormat(name)
	if err != nil {
		return nil, 0, err
	}
	return img, f, nil
}

// DecodeBytes decodes an in-memory image.
func DecodeBytes(data []byte) (image.Image, Format, error) {
	if len(data) == 0 {
		return nil, 0, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}
