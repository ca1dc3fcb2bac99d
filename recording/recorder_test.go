package recording

import (
	"errors"
	"testing"

	"github.com/gogpu/olive"
)

var (
	white = olive.RGB(255, 255, 255)
	red   = olive.RGB(255, 0, 0)
	blue  = olive.RGB(50, 50, 255)
)

func samePixels(t *testing.T, got, want olive.Drawable) {
	t.Helper()
	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Fatalf("size %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	for y := 0; y < want.Height(); y++ {
		for x := 0; x < want.Width(); x++ {
			if got.Pixel(x, y) != want.Pixel(x, y) {
				t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, got.Pixel(x, y), want.Pixel(x, y))
			}
		}
	}
}

func TestNewRecorder(t *testing.T) {
	rec := NewRecorder(800, 600)
	if rec.Width() != 800 || rec.Height() != 600 {
		t.Errorf("size = %dx%d, want 800x600", rec.Width(), rec.Height())
	}
	if rec.Len() != 0 {
		t.Errorf("Len() = %d, want 0", rec.Len())
	}
	if rec.resources == nil {
		t.Error("resources should not be nil")
	}
}

func TestRecorderFinishRecording(t *testing.T) {
	rec := NewRecorder(100, 50)
	rec.SetBackground(white)
	rec.Circle(50, 25, 10, red)
	rec.Region(0, 0, 10, 10, func(r *Recorder) {
		r.Fill(blue)
		r.SetPixel(1, 1, red)
	})

	r := rec.FinishRecording()
	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("recording size = %dx%d", r.Width(), r.Height())
	}
	if bg, ok := r.Background(); !ok || bg != white {
		t.Errorf("Background() = %#08x, %v", bg, ok)
	}
	cmds := r.Commands()
	if len(cmds) != 2 {
		t.Fatalf("len(Commands) = %d, want 2", len(cmds))
	}
	region, ok := cmds[1].(RegionCommand)
	if !ok || len(region.Commands) != 2 {
		t.Fatalf("second command = %#v", cmds[1])
	}
	if region.Commands[1] != (PixelCommand{X: 1, Y: 1, Color: red}) {
		t.Errorf("region pixel = %#v", region.Commands[1])
	}
}

// TestPlaybackMatchesDirectDrawing replays every command kind and compares
// the result with the same calls made directly on a canvas.
func TestPlaybackMatchesDirectDrawing(t *testing.T) {
	sprite := olive.New(2, 2, olive.WithFill(red))
	sprite.SetPixel(1, 1, blue)

	draw := func(d olive.Drawable) {
		d.Fill(white)
		d.Rect(2, 2, 10, 6, olive.RGBA(0, 128, 0, 128))
		d.Frame(20, 2, 10, 10, 3, red)
		d.Circle(40, 20, 8, blue)
		d.Ellipse(10, 30, 8, 4, red)
		d.Line(0, 39, 63, 0, blue)
		d.Triangle(30, 30, 50, 38, 35, 39, red)
		d.Triangle3C(50, 2, 62, 2, 56, 12, red, blue, white)
		d.Text("ok", 2, 14, nil, 1, blue)
		d.SetPixel(63, 39, red)
		d.SpriteBlend(44, 28, 8, 8, sprite)
		d.SpriteCopy(54, 28, -8, 8, sprite)
		d.SpriteCopyBilinear(0, 0, 6, 6, sprite)
		if sub := d.Subcanvas(16, 24, 12, 12); sub != nil {
			sub.Fill(blue)
			sub.Circle(6, 6, 20, red)
		}
	}

	rec := NewRecorder(64, 40)
	rec.AddImage("sprite", sprite)
	rec.Fill(white)
	rec.Rect(2, 2, 10, 6, olive.RGBA(0, 128, 0, 128))
	rec.Frame(20, 2, 10, 10, 3, red)
	rec.Circle(40, 20, 8, blue)
	rec.Ellipse(10, 30, 8, 4, red)
	rec.Line(0, 39, 63, 0, blue)
	rec.Triangle(30, 30, 50, 38, 35, 39, red)
	rec.Triangle3C(50, 2, 62, 2, 56, 12, red, blue, white)
	rec.Text("ok", 2, 14, 1, blue)
	rec.SetPixel(63, 39, red)
	rec.SpriteBlend(44, 28, 8, 8, "sprite")
	rec.SpriteCopy(54, 28, -8, 8, "sprite")
	rec.SpriteCopyBilinear(0, 0, 6, 6, "sprite")
	rec.Region(16, 24, 12, 12, func(r *Recorder) {
		r.Fill(blue)
		r.Circle(6, 6, 20, red)
	})

	got, err := rec.FinishRecording().Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := olive.New(64, 40)
	draw(want)
	samePixels(t, got, want)
}

func TestAddImageIsCopied(t *testing.T) {
	sprite := olive.New(1, 1, olive.WithFill(red))
	rec := NewRecorder(2, 2)
	rec.AddImage("s", sprite)
	rec.SpriteCopy(0, 0, 2, 2, "s")
	r := rec.FinishRecording()

	sprite.Fill(blue)
	c, err := r.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if c.Pixel(1, 1) != red {
		t.Errorf("pixel = %#08x, want the image as it was when added", c.Pixel(1, 1))
	}
}

func TestPlaybackRegionOutside(t *testing.T) {
	rec := NewRecorder(4, 4)
	rec.Fill(white)
	rec.Region(10, 10, 2, 2, func(r *Recorder) { r.Fill(red) })
	c, err := rec.FinishRecording().Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c.Pixel(x, y) != white {
				t.Fatalf("pixel (%d,%d) changed by an off-canvas region", x, y)
			}
		}
	}
}

func TestPlaybackOntoSubcanvas(t *testing.T) {
	rec := NewRecorder(2, 2)
	rec.SetBackground(red)
	rec.Rect(-5, -5, 50, 50, blue)
	r := rec.FinishRecording()

	c := olive.New(6, 6, olive.WithFill(white))
	if err := r.Playback(c.Subcanvas(2, 2, 2, 2)); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	n := 0
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if c.Pixel(x, y) != white {
				n++
			}
		}
	}
	if n != 4 {
		t.Errorf("changed pixels = %d, want 4", n)
	}
}

type bogusCommand struct{}

func (bogusCommand) Type() CommandType { return CommandType(99) }

func TestPlaybackUnknownCommand(t *testing.T) {
	r := &Recording{
		width: 1, height: 1,
		commands:  []Command{bogusCommand{}},
		resources: NewResourcePool(),
	}
	if _, err := r.Render(); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Render error = %v, want ErrUnknownCommand", err)
	}
	if _, err := r.MarshalScript(); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("MarshalScript error = %v, want ErrUnknownCommand", err)
	}
}

func TestPlaybackLoader(t *testing.T) {
	rec := NewRecorder(4, 4)
	rec.SpriteCopy(0, 0, 4, 4, "tile")
	rec.SpriteCopy(0, 0, 2, 2, "tile")
	r := rec.FinishRecording()

	calls := 0
	loader := func(name string) (olive.Drawable, error) {
		calls++
		if name != "tile" {
			return nil, errors.New("no such tile")
		}
		return olive.New(1, 1, olive.WithFill(blue)), nil
	}
	c, err := r.Render(WithLoader(loader))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if calls != 1 {
		t.Errorf("loader called %d times, want 1", calls)
	}
	if c.Pixel(3, 3) != blue {
		t.Errorf("pixel = %#08x, want blue", c.Pixel(3, 3))
	}

	rec = NewRecorder(4, 4)
	rec.SpriteBlend(0, 0, 4, 4, "missing")
	_, err = rec.FinishRecording().Render(WithLoader(loader))
	if !errors.Is(err, ErrMissingSource) {
		t.Errorf("Render error = %v, want ErrMissingSource", err)
	}
}

func TestPlaybackFont(t *testing.T) {
	glyphs := make([]byte, olive.GlyphCount)
	glyphs['x'] = 1
	font, err := olive.NewFont(1, 1, glyphs)
	if err != nil {
		t.Fatal(err)
	}

	rec := NewRecorder(3, 1)
	rec.SetBackground(white)
	rec.Text("xax", 0, 0, 1, red)
	c, err := rec.FinishRecording().Render(WithFont(font))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if c.Pixel(0, 0) != red || c.Pixel(1, 0) != white || c.Pixel(2, 0) != red {
		t.Errorf("pixels = %#08x %#08x %#08x", c.Pixel(0, 0), c.Pixel(1, 0), c.Pixel(2, 0))
	}
}
