package recording

import "strings"

// CommandType identifies the type of a command.
// Each command type corresponds to one olive drawing operation.
type CommandType uint8

const (
	CmdFill       CommandType = iota // Fill the whole drawable
	CmdRect                          // Blend a filled rectangle
	CmdFrame                         // Rectangle outline
	CmdCircle                        // Anti-aliased filled circle
	CmdEllipse                       // Filled ellipse
	CmdLine                          // One pixel line
	CmdTriangle                      // Flat triangle
	CmdTriangle3C                    // Triangle with per-corner colors
	CmdText                          // Bitmap text
	CmdPixel                         // Single pixel
	CmdSprite                        // Scaled image
	CmdRegion                        // Commands scoped to a sub-canvas
)

// commandTypeNames maps CommandType values to their script names.
var commandTypeNames = [...]string{
	CmdFill:       "fill",
	CmdRect:       "rect",
	CmdFrame:      "frame",
	CmdCircle:     "circle",
	CmdEllipse:    "ellipse",
	CmdLine:       "line",
	CmdTriangle:   "triangle",
	CmdTriangle3C: "triangle3c",
	CmdText:       "text",
	CmdPixel:      "pixel",
	CmdSprite:     "sprite",
	CmdRegion:     "region",
}

// String returns the script name of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "unknown"
}

// ParseCommandType returns the CommandType for a script name. Matching is
// case-insensitive.
func ParseCommandType(name string) (CommandType, bool) {
	name = strings.ToLower(name)
	for i, n := range commandTypeNames {
		if n == name {
			return CommandType(i), true
		}
	}
	return 0, false
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// SpriteMode selects how a sprite command samples and writes its source.
type SpriteMode uint8

const (
	// SpriteBlend samples the nearest texel and blends it.
	SpriteBlend SpriteMode = iota
	// SpriteCopy samples the nearest texel and overwrites.
	SpriteCopy
	// SpriteBilinear samples bilinearly and overwrites.
	SpriteBilinear
)

var spriteModeNames = [...]string{
	SpriteBlend:    "blend",
	SpriteCopy:     "copy",
	SpriteBilinear: "bilinear",
}

// String returns the script name of a SpriteMode.
func (m SpriteMode) String() string {
	if int(m) < len(spriteModeNames) {
		return spriteModeNames[m]
	}
	return "unknown"
}

func parseSpriteMode(name string) (SpriteMode, bool) {
	if name == "" {
		return SpriteBlend, true
	}
	for i, n := range spriteModeNames {
		if n == strings.ToLower(name) {
			return SpriteMode(i), true
		}
	}
	return 0, false
}

// FillCommand fills the whole drawable.
type FillCommand struct {
	Color uint32
}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// RectCommand blends a filled rectangle.
type RectCommand struct {
	X, Y, W, H int
	Color      uint32
}

// Type implements Command.
func (RectCommand) Type() CommandType { return CmdRect }

// FrameCommand draws a rectangle outline.
type FrameCommand struct {
	X, Y, W, H int
	Thickness  int
	Color      uint32
}

// Type implements Command.
func (FrameCommand) Type() CommandType { return CmdFrame }

// CircleCommand draws a filled circle.
type CircleCommand struct {
	CX, CY, R int
	Color     uint32
}

// Type implements Command.
func (CircleCommand) Type() CommandType { return CmdCircle }

// EllipseCommand draws a filled ellipse.
type EllipseCommand struct {
	CX, CY, RX, RY int
	Color          uint32
}

// Type implements Command.
func (EllipseCommand) Type() CommandType { return CmdEllipse }

// LineCommand draws a line between two points.
type LineCommand struct {
	X1, Y1, X2, Y2 int
	Color          uint32
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

// TriangleCommand draws a flat colored triangle.
type TriangleCommand struct {
	X1, Y1, X2, Y2, X3, Y3 int
	Color                  uint32
}

// Type implements Command.
func (TriangleCommand) Type() CommandType { return CmdTriangle }

// Triangle3CCommand draws a triangle interpolating C1, C2 and C3.
type Triangle3CCommand struct {
	X1, Y1, X2, Y2, X3, Y3 int
	C1, C2, C3             uint32
}

// Type implements Command.
func (Triangle3CCommand) Type() CommandType { return CmdTriangle3C }

// TextCommand draws bitmap text with the playback font.
type TextCommand struct {
	Text  string
	X, Y  int
	Size  int
	Color uint32
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }

// PixelCommand sets one pixel.
type PixelCommand struct {
	X, Y  int
	Color uint32
}

// Type implements Command.
func (PixelCommand) Type() CommandType { return CmdPixel }

// SpriteCommand draws the image named Source scaled into (X, Y, W, H).
// Source is resolved at playback, first against images added to the
// recording, then through the playback loader.
type SpriteCommand struct {
	Source     string
	X, Y, W, H int
	Mode       SpriteMode
}

// Type implements Command.
func (SpriteCommand) Type() CommandType { return CmdSprite }

// RegionCommand replays Commands on the sub-canvas (X, Y, W, H).
type RegionCommand struct {
	X, Y, W, H int
	Commands   []Command
}

// Type implements Command.
func (RegionCommand) Type() CommandType { return CmdRegion }
