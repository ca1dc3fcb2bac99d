package recording

import (
	"image"
)

// Recorder captures drawing operations as commands.
// It mirrors the olive.Drawable drawing API but appends commands instead
// of touching pixels. Use FinishRecording to obtain a Recording that can be
// replayed onto any drawable.
//
// Example:
//
//	rec := recording.NewRecorder(900, 600)
//	rec.Fill(olive.RGB(0xFF, 0xFF, 0xFF))
//	rec.Circle(450, 300, 180, olive.RGB(0xBC, 0x00, 0x2D))
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	background    uint32
	hasBackground bool
	commands      []Command
	resources     *ResourcePool
}

// NewRecorder creates a new Recorder for the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
	}
}

// FinishRecording returns a Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:         r.width,
		height:        r.height,
		background:    r.background,
		hasBackground: r.hasBackground,
		commands:      r.commands,
		resources:     r.resources,
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Len returns the number of top-level commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// SetBackground sets the color the target is cleared to before playback.
func (r *Recorder) SetBackground(color uint32) {
	r.background = color
	r.hasBackground = true
}

// AddImage registers img under name for use by sprite commands.
func (r *Recorder) AddImage(name string, img image.Image) {
	r.resources.AddImage(name, img)
}

// Fill records a fill of the whole target.
func (r *Recorder) Fill(color uint32) {
	r.commands = append(r.commands, FillCommand{Color: color})
}

// Rect records a filled rectangle.
func (r *Recorder) Rect(x, y, w, h int, color uint32) {
	r.commands = append(r.commands, RectCommand{X: x, Y: y, W: w, H: h, Color: color})
}

// Frame records a rectangle outline.
func (r *Recorder) Frame(x, y, w, h, thickness int, color uint32) {
	r.commands = append(r.commands, FrameCommand{X: x, Y: y, W: w, H: h, Thickness: thickness, Color: color})
}

// Circle records a filled circle.
func (r *Recorder) Circle(cx, cy, radius int, color uint32) {
	r.commands = append(r.commands, CircleCommand{CX: cx, CY: cy, R: radius, Color: color})
}

// Ellipse records a filled ellipse.
func (r *Recorder) Ellipse(cx, cy, rx, ry int, color uint32) {
	r.commands = append(r.commands, EllipseCommand{CX: cx, CY: cy, RX: rx, RY: ry, Color: color})
}

// Line records a line.
func (r *Recorder) Line(x1, y1, x2, y2 int, color uint32) {
	r.commands = append(r.commands, LineCommand{X1: x1, Y1: y1, X2: x2, Y2: y2, Color: color})
}

// Triangle records a flat triangle.
func (r *Recorder) Triangle(x1, y1, x2, y2, x3, y3 int, color uint32) {
	r.commands = append(r.commands, TriangleCommand{
		X1: x1, Y1: y1, X2: x2, Y2: y2, X3: x3, Y3: y3, Color: color,
	})
}

// Triangle3C records a triangle with per-corner colors.
func (r *Recorder) Triangle3C(x1, y1, x2, y2, x3, y3 int, c1, c2, c3 uint32) {
	r.commands = append(r.commands, Triangle3CCommand{
		X1: x1, Y1: y1, X2: x2, Y2: y2, X3: x3, Y3: y3, C1: c1, C2: c2, C3: c3,
	})
}

// Text records bitmap text drawn with the playback font.
func (r *Recorder) Text(text string, x, y, size int, color uint32) {
	r.commands = append(r.commands, TextCommand{Text: text, X: x, Y: y, Size: size, Color: color})
}

// SetPixel records a single pixel write.
func (r *Recorder) SetPixel(x, y int, color uint32) {
	r.commands = append(r.commands, PixelCommand{X: x, Y: y, Color: color})
}

// SpriteBlend records a blended, nearest sampled sprite.
func (r *Recorder) SpriteBlend(x, y, w, h int, source string) {
	r.sprite(x, y, w, h, source, SpriteBlend)
}

// SpriteCopy records a copied, nearest sampled sprite.
func (r *Recorder) SpriteCopy(x, y, w, h int, source string) {
	r.sprite(x, y, w, h, source, SpriteCopy)
}

// SpriteCopyBilinear records a copied, bilinearly sampled sprite.
func (r *Recorder) SpriteCopyBilinear(x, y, w, h int, source string) {
	r.sprite(x, y, w, h, source, SpriteBilinear)
}

func (r *Recorder) sprite(x, y, w, h int, source string, mode SpriteMode) {
	r.commands = append(r.commands, SpriteCommand{Source: source, X: x, Y: y, W: w, H: h, Mode: mode})
}

// Region records the commands issued by fn against the sub-canvas
// (x, y, w, h). Coordinates inside fn are relative to the region, and the
// region clips everything drawn in it.
func (r *Recorder) Region(x, y, w, h int, fn func(*Recorder)) {
	sub := &Recorder{
		width:     w,
		height:    h,
		resources: r.resources,
	}
	fn(sub)
	r.commands = append(r.commands, RegionCommand{X: x, Y: y, W: w, H: h, Commands: sub.commands})
}
