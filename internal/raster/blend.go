// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Packed colors are R | G<<8 | B<<16 | A<<24.

// Red returns the red channel of a packed color.
func Red(c uint32) uint32 { return c & 0xFF }

// Green returns the green channel of a packed color.
func Green(c uint32) uint32 { return (c >> 8) & 0xFF }

// Blue returns the blue channel of a packed color.
func Blue(c uint32) uint32 { return (c >> 16) & 0xFF }

// Alpha returns the alpha channel of a packed color.
func Alpha(c uint32) uint32 { return (c >> 24) & 0xFF }

// Pack builds a packed color from channels. Each channel is masked to 8 bits.
func Pack(r, g, b, a uint32) uint32 {
	return (r & 0xFF) | (g&0xFF)<<8 | (b&0xFF)<<16 | (a&0xFF)<<24
}

// BlendColor blends c2 over c1 using the alpha of c2 and returns the result.
// The alpha channel of c1 is preserved.
func BlendColor(c1, c2 uint32) uint32 {
	a2 := Alpha(c2)
	r := min((Red(c1)*(255-a2)+Red(c2)*a2)/255, 255)
	g := min((Green(c1)*(255-a2)+Green(c2)*a2)/255, 255)
	b := min((Blue(c1)*(255-a2)+Blue(c2)*a2)/255, 255)
	return Pack(r, g, b, Alpha(c1))
}

// mixColors2 interpolates from c1 to c2 by u1/det.
// A zero det yields transparent black.
func mixColors2(c1, c2 uint32, u1, det int) uint32 {
	if det == 0 {
		return 0
	}
	u2 := int64(det - u1)
	w1, d := int64(u1), int64(det)
	mix := func(a, b uint32) uint32 {
		return uint32((int64(a)*u2 + int64(b)*w1) / d)
	}
	return Pack(
		mix(Red(c1), Red(c2)),
		mix(Green(c1), Green(c2)),
		mix(Blue(c1), Blue(c2)),
		mix(Alpha(c1), Alpha(c2)),
	)
}

// mixColors3 weights three colors by barycentric coordinates u1, u2 and
// det-u1-u2.
func mixColors3(c1, c2, c3 uint32, u1, u2, det int) uint32 {
	if det == 0 {
		return 0
	}
	w1, w2, w3, d := int64(u1), int64(u2), int64(det-u1-u2), int64(det)
	mix := func(a, b, c uint32) uint32 {
		return uint32((int64(a)*w1 + int64(b)*w2 + int64(c)*w3) / d)
	}
	return Pack(
		mix(Red(c1), Red(c2), Red(c3)),
		mix(Green(c1), Green(c2), Green(c3)),
		mix(Blue(c1), Blue(c2), Blue(c3)),
		mix(Alpha(c1), Alpha(c2), Alpha(c3)),
	)
}
