package olive

import "errors"

// Errors returned by canvas and font construction.
var (
	// ErrBufferTooSmall is returned by FromBuffer when the supplied pixel
	// buffer cannot hold stride*height pixels.
	ErrBufferTooSmall = errors.New("olive: pixel buffer too small")

	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("olive: invalid dimensions")

	// ErrInvalidStride is returned when the stride is smaller than the width.
	ErrInvalidStride = errors.New("olive: stride smaller than width")

	// ErrInvalidFont is returned when a glyph table does not match the font
	// size.
	ErrInvalidFont = errors.New("olive: invalid font")

	// ErrInvalidColor is returned by ParseHex for malformed color strings.
	ErrInvalidColor = errors.New("olive: invalid color")
)
