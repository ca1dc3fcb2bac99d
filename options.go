package olive

// Option configures a Canvas during creation.
//
// Example:
//
//	// Rows padded to 1024 pixels, cleared to opaque white.
//	c := olive.New(1000, 600, olive.WithStride(1024), olive.WithFill(olive.RGB(255, 255, 255)))
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	stride  int
	fill    uint32
	hasFill bool
}

// defaultOptions returns options for a tightly packed, untouched buffer.
func defaultOptions(width int) options {
	return options{stride: width}
}

func buildOptions(width int, opts []Option) options {
	o := defaultOptions(width)
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithStride sets the row pitch of the pixel buffer, in pixels.
// The stride must be at least the canvas width. Zero keeps the default,
// which equals the width.
func WithStride(stride int) Option {
	return func(o *options) {
		if stride != 0 {
			o.stride = stride
		}
	}
}

// WithFill fills the canvas with color after it is created.
// Without it, New returns transparent black pixels and FromBuffer keeps the
// buffer contents.
func WithFill(color uint32) Option {
	return func(o *options) {
		o.fill = color
		o.hasFill = true
	}
}
