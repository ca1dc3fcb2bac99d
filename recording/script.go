package recording

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/olive"
)

// Scripts are YAML documents describing a recording:
//
//	width: 900
//	height: 600
//	background: "#ffffff"
//	commands:
//	  - op: circle
//	    cx: 450
//	    cy: 300
//	    r: 180
//	    color: "#bc002d"
//	  - op: region
//	    x: 20
//	    y: 20
//	    w: 100
//	    h: 50
//	    commands:
//	      - op: fill
//	        color: "#3232ff"
//
// Colors are hex strings in the forms accepted by olive.ParseHex.

// script is the YAML form of a Recording.
type script struct {
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	Background string       `yaml:"background,omitempty"`
	Commands   []scriptNode `yaml:"commands,omitempty"`
}

// scriptNode is the YAML form of one command. Fields that an op does not
// use are left empty.
type scriptNode struct {
	Op        string       `yaml:"op"`
	X         int          `yaml:"x,omitempty"`
	Y         int          `yaml:"y,omitempty"`
	W         int          `yaml:"w,omitempty"`
	H         int          `yaml:"h,omitempty"`
	Thickness int          `yaml:"thickness,omitempty"`
	CX        int          `yaml:"cx,omitempty"`
	CY        int          `yaml:"cy,omitempty"`
	R         int          `yaml:"r,omitempty"`
	RX        int          `yaml:"rx,omitempty"`
	RY        int          `yaml:"ry,omitempty"`
	X1        int          `yaml:"x1,omitempty"`
	Y1        int          `yaml:"y1,omitempty"`
	X2        int          `yaml:"x2,omitempty"`
	Y2        int          `yaml:"y2,omitempty"`
	X3        int          `yaml:"x3,omitempty"`
	Y3        int          `yaml:"y3,omitempty"`
	Size      *int         `yaml:"size,omitempty"`
	Text      string       `yaml:"text,omitempty"`
	Source    string       `yaml:"source,omitempty"`
	Mode      string       `yaml:"mode,omitempty"`
	Color     string       `yaml:"color,omitempty"`
	Colors    []string     `yaml:"colors,omitempty,flow"`
	Commands  []scriptNode `yaml:"commands,omitempty"`
}

// Parse decodes a YAML script. Unknown fields are rejected.
func Parse(data []byte) (*Recording, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("recording: empty script")
		}
		return nil, fmt.Errorf("recording: parse script: %w", err)
	}
	if s.Width < 0 || s.Height < 0 {
		return nil, fmt.Errorf("recording: invalid size %dx%d", s.Width, s.Height)
	}

	rec := &Recording{
		width:     s.Width,
		height:    s.Height,
		resources: NewResourcePool(),
	}
	if s.Background != "" {
		bg, err := olive.ParseHex(s.Background)
		if err != nil {
			return nil, fmt.Errorf("recording: background: %w", err)
		}
		rec.background, rec.hasBackground = bg, true
	}
	cmds, err := decodeNodes(s.Commands, "")
	if err != nil {
		return nil, err
	}
	rec.commands = cmds
	return rec, nil
}

// LoadScript reads and parses a YAML script file.
func LoadScript(path string) (*Recording, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("recording: read script: %w", err)
	}
	return Parse(data)
}

// MarshalScript encodes the recording as a YAML script. Images added with
// AddImage are referenced by name only.
func (r *Recording) MarshalScript() ([]byte, error) {
	s := script{Width: r.width, Height: r.height}
	if r.hasBackground {
		s.Background = olive.FormatHex(r.background)
	}
	nodes, err := encodeCommands(r.commands, "")
	if err != nil {
		return nil, err
	}
	s.Commands = nodes

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&s); err != nil {
		return nil, fmt.Errorf("recording: encode script: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("recording: encode script: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeNodes(nodes []scriptNode, path string) ([]Command, error) {
	cmds := make([]Command, 0, len(nodes))
	for i, n := range nodes {
		at := fmt.Sprintf("%s%d", path, i)
		cmd, err := n.command(at)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func (n scriptNode) command(at string) (Command, error) {
	typ, ok := ParseCommandType(n.Op)
	if !ok {
		return nil, fmt.Errorf("%w %q at %s", ErrUnknownCommand, n.Op, at)
	}

	color := func() (uint32, error) {
		if n.Color == "" {
			return 0, fmt.Errorf("recording: command %s (%s): color is required", at, typ)
		}
		c, err := olive.ParseHex(n.Color)
		if err != nil {
			return 0, fmt.Errorf("recording: command %s (%s): %w", at, typ, err)
		}
		return c, nil
	}

	switch typ {
	case CmdSprite:
		mode, ok := parseSpriteMode(n.Mode)
		if !ok {
			return nil, fmt.Errorf("recording: command %s (sprite): unknown mode %q", at, n.Mode)
		}
		if n.Source == "" {
			return nil, fmt.Errorf("recording: command %s (sprite): source is required", at)
		}
		return SpriteCommand{Source: n.Source, X: n.X, Y: n.Y, W: n.W, H: n.H, Mode: mode}, nil
	case CmdRegion:
		sub, err := decodeNodes(n.Commands, at+".")
		if err != nil {
			return nil, err
		}
		return RegionCommand{X: n.X, Y: n.Y, W: n.W, H: n.H, Commands: sub}, nil
	case CmdTriangle3C:
		if len(n.Colors) != 3 {
			return nil, fmt.Errorf("recording: command %s (triangle3c): want 3 colors, got %d", at, len(n.Colors))
		}
		var cs [3]uint32
		for i, s := range n.Colors {
			c, err := olive.ParseHex(s)
			if err != nil {
				return nil, fmt.Errorf("recording: command %s (triangle3c): %w", at, err)
			}
			cs[i] = c
		}
		return Triangle3CCommand{
			X1: n.X1, Y1: n.Y1, X2: n.X2, Y2: n.Y2, X3: n.X3, Y3: n.Y3,
			C1: cs[0], C2: cs[1], C3: cs[2],
		}, nil
	}

	c, err := color()
	if err != nil {
		return nil, err
	}
	switch typ {
	case CmdFill:
		return FillCommand{Color: c}, nil
	case CmdRect:
		return RectCommand{X: n.X, Y: n.Y, W: n.W, H: n.H, Color: c}, nil
	case CmdFrame:
		return FrameCommand{X: n.X, Y: n.Y, W: n.W, H: n.H, Thickness: n.Thickness, Color: c}, nil
	case CmdCircle:
		return CircleCommand{CX: n.CX, CY: n.CY, R: n.R, Color: c}, nil
	case CmdEllipse:
		return EllipseCommand{CX: n.CX, CY: n.CY, RX: n.RX, RY: n.RY, Color: c}, nil
	case CmdLine:
		return LineCommand{X1: n.X1, Y1: n.Y1, X2: n.X2, Y2: n.Y2, Color: c}, nil
	case CmdTriangle:
		return TriangleCommand{X1: n.X1, Y1: n.Y1, X2: n.X2, Y2: n.Y2, X3: n.X3, Y3: n.Y3, Color: c}, nil
	case CmdText:
		size := 1
		if n.Size != nil {
			size = *n.Size
		}
		return TextCommand{Text: n.Text, X: n.X, Y: n.Y, Size: size, Color: c}, nil
	case CmdPixel:
		return PixelCommand{X: n.X, Y: n.Y, Color: c}, nil
	}
	return nil, fmt.Errorf("%w %q at %s", ErrUnknownCommand, n.Op, at)
}

func encodeCommands(cmds []Command, path string) ([]scriptNode, error) {
	nodes := make([]scriptNode, 0, len(cmds))
	for i, cmd := range cmds {
		n := scriptNode{Op: cmd.Type().String()}
		switch c := cmd.(type) {
		case FillCommand:
			n.Color = olive.FormatHex(c.Color)
		case RectCommand:
			n.X, n.Y, n.W, n.H = c.X, c.Y, c.W, c.H
			n.Color = olive.FormatHex(c.Color)
		case FrameCommand:
			n.X, n.Y, n.W, n.H, n.Thickness = c.X, c.Y, c.W, c.H, c.Thickness
			n.Color = olive.FormatHex(c.Color)
		case CircleCommand:
			n.CX, n.CY, n.R = c.CX, c.CY, c.R
			n.Color = olive.FormatHex(c.Color)
		case EllipseCommand:
			n.CX, n.CY, n.RX, n.RY = c.CX, c.CY, c.RX, c.RY
			n.Color = olive.FormatHex(c.Color)
		case LineCommand:
			n.X1, n.Y1, n.X2, n.Y2 = c.X1, c.Y1, c.X2, c.Y2
			n.Color = olive.FormatHex(c.Color)
		case TriangleCommand:
			n.X1, n.Y1, n.X2, n.Y2, n.X3, n.Y3 = c.X1, c.Y1, c.X2, c.Y2, c.X3, c.Y3
			n.Color = olive.FormatHex(c.Color)
		case Triangle3CCommand:
			n.X1, n.Y1, n.X2, n.Y2, n.X3, n.Y3 = c.X1, c.Y1, c.X2, c.Y2, c.X3, c.Y3
			n.Colors = []string{olive.FormatHex(c.C1), olive.FormatHex(c.C2), olive.FormatHex(c.C3)}
		case TextCommand:
			size := c.Size
			n.Text, n.X, n.Y, n.Size = c.Text, c.X, c.Y, &size
			n.Color = olive.FormatHex(c.Color)
		case PixelCommand:
			n.X, n.Y = c.X, c.Y
			n.Color = olive.FormatHex(c.Color)
		case SpriteCommand:
			n.Source, n.X, n.Y, n.W, n.H = c.Source, c.X, c.Y, c.W, c.H
			n.Mode = c.Mode.String()
		case RegionCommand:
			n.X, n.Y, n.W, n.H = c.X, c.Y, c.W, c.H
			sub, err := encodeCommands(c.Commands, fmt.Sprintf("%s%d.", path, i))
			if err != nil {
				return nil, err
			}
			n.Commands = sub
		default:
			return nil, fmt.Errorf("%w: %T at %s%d", ErrUnknownCommand, cmd, path, i)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
