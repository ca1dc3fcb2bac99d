package olive

import (
	"fmt"
	"math"

	"github.com/gogpu/olive/internal/raster"
)

// Canvas is a rectangular grid of packed RGBA pixels that owns its buffer.
//
// A Canvas is not safe for concurrent use. Sub-canvases obtained from it
// share its memory, so writes through either are visible to both.
type Canvas struct {
	view
	pixels []uint32
}

// SubCanvas is a rectangular window into the memory of another canvas.
// It does not own pixels; pixel (0, 0) of the SubCanvas is the top-left of
// the window in its parent.
type SubCanvas struct {
	view
	parent Drawable
}

// New allocates a width x height canvas with transparent black pixels.
//
// New panics if the dimensions are negative or the stride is smaller than
// the width. Use FromBuffer to handle those cases as errors.
func New(width, height int, opts ...Option) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("olive: negative canvas size %dx%d", width, height))
	}
	o := buildOptions(width, opts)
	if o.stride < width {
		panic(fmt.Sprintf("olive: stride %d smaller than width %d", o.stride, width))
	}
	n, ok := bufferLen(o.stride, height)
	if !ok {
		panic(fmt.Sprintf("olive: canvas size %dx%d (stride %d) overflows int", width, height, o.stride))
	}
	c, err := FromBuffer(make([]uint32, n), width, height, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// FromBuffer wraps an existing pixel buffer. The buffer must have capacity
// for stride*height pixels (stride defaults to width); it is resliced to
// exactly that length and used without copying.
func FromBuffer(pixels []uint32, width, height int, opts ...Option) (*Canvas, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	o := buildOptions(width, opts)
	if o.stride < width {
		return nil, fmt.Errorf("%w: stride %d, width %d", ErrInvalidStride, o.stride, width)
	}

	need, ok := bufferLen(o.stride, height)
	if !ok {
		return nil, fmt.Errorf("%w: %dx%d with stride %d overflows int", ErrInvalidDimensions, width, height, o.stride)
	}
	if cap(pixels) < need {
		Logger().Debug("olive: buffer rejected",
			"width", width, "height", height, "stride", o.stride,
			"have", cap(pixels), "need", need)
		return nil, fmt.Errorf("%w: have %d pixels, need %d", ErrBufferTooSmall, cap(pixels), need)
	}

	pixels = pixels[:need]
	c := &Canvas{pixels: pixels}
	c.rc = raster.New(pixels, width, height, o.stride)
	if o.hasFill {
		raster.Fill(c.rc, o.fill)
	}
	return c, nil
}

// bufferLen returns stride*height, or false when the product overflows int.
func bufferLen(stride, height int) (int, bool) {
	if height > 0 && stride > math.MaxInt/height {
		return 0, false
	}
	return stride * height, true
}

// Pixels returns the backing buffer, stride*height pixels long.
func (c *Canvas) Pixels() []uint32 {
	return c.pixels
}

// Clone returns a deep copy of c with a tightly packed buffer.
func (c *Canvas) Clone() *Canvas {
	dst := New(c.rc.Width, c.rc.Height)
	raster.SpriteCopy(dst.rc, 0, 0, c.rc.Width, c.rc.Height, c.rc)
	return dst
}

// Subcanvas returns a view of the region (x, y, w, h) clipped to c that
// shares its memory. It returns nil when the region is empty or lies
// entirely outside c.
func (c *Canvas) Subcanvas(x, y, w, h int) *SubCanvas {
	return c.subcanvas(c, x, y, w, h)
}

// Subcanvas returns a nested view; see Canvas.Subcanvas.
func (s *SubCanvas) Subcanvas(x, y, w, h int) *SubCanvas {
	return s.subcanvas(s, x, y, w, h)
}

// Parent returns the drawable this sub-canvas was cut from.
func (s *SubCanvas) Parent() Drawable {
	return s.parent
}
