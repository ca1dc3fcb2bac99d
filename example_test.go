package olive_test

import (
	"fmt"
	"image/png"
	"io"

	"github.com/gogpu/olive"
)

func Example() {
	const width, height = 900, 600

	c := olive.New(width, height)
	c.Fill(olive.RGB(0xFF, 0xFF, 0xFF))
	c.Circle(width/2, height/2, 180, olive.RGB(0xBC, 0x00, 0x2D))

	fmt.Printf("center %s\n", olive.FormatHex(c.Pixel(width/2, height/2)))
	fmt.Printf("corner %s\n", olive.FormatHex(c.Pixel(0, 0)))
	// Output:
	// center #bc002dff
	// corner #ffffffff
}

func ExampleCanvas_Subcanvas() {
	const width, height = 900, 600

	c := olive.New(width, height)
	c.Fill(olive.RGB(255, 0, 0))

	// A window inset 20 pixels from each side.
	sub := c.Subcanvas(20, 20, width-40, height-40)
	sub.Fill(olive.RGB(50, 50, 255))

	fmt.Println(sub.Width(), sub.Height())
	fmt.Println(olive.FormatHex(c.Pixel(19, 19)), olive.FormatHex(c.Pixel(20, 20)))
	fmt.Println(c.Subcanvas(width, 0, 10, 10) == nil)
	// Output:
	// 860 560
	// #ff0000ff #3232ffff
	// true
}

func ExampleFromBuffer() {
	pixels := make([]uint32, 4*3)
	c, err := olive.FromBuffer(pixels, 4, 3, olive.WithFill(olive.Hex("#0f0")))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Width(), c.Height(), olive.FormatHex(pixels[11]))

	_, err = olive.FromBuffer(pixels, 5, 3)
	fmt.Println(err)
	// Output:
	// 4 3 #00ff00ff
	// olive: pixel buffer too small: have 12 pixels, need 15
}

func ExampleDrawable_Text() {
	c := olive.New(7*5, 13, olive.WithFill(olive.RGB(0, 0, 0)))
	c.Text("olive", 0, 0, nil, 1, olive.RGB(255, 255, 255))
	if err := png.Encode(io.Discard, c); err != nil {
		fmt.Println(err)
	}
	fmt.Println(c.Bounds())
	// Output:
	// (0,0)-(35,13)
}
