package recording

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gogpu/olive"
)

// Playback errors.
var (
	// ErrUnknownCommand is returned for commands playback cannot execute
	// and for unknown ops in scripts.
	ErrUnknownCommand = errors.New("recording: unknown command")

	// ErrMissingSource is returned when a sprite source cannot be resolved.
	ErrMissingSource = errors.New("recording: missing sprite source")
)

// Recording is a finished list of drawing commands.
// It can be replayed onto any olive.Drawable any number of times.
type Recording struct {
	width, height int
	background    uint32
	hasBackground bool
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Background returns the background color and whether one is set.
func (r *Recording) Background() (uint32, bool) {
	return r.background, r.hasBackground
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Loader resolves a sprite source name to a drawable.
type Loader func(name string) (olive.Drawable, error)

// PlaybackOption configures Playback.
type PlaybackOption func(*playbackOptions)

type playbackOptions struct {
	loader  Loader
	baseDir string
	font    *olive.Font
}

// WithLoader resolves sprite sources that are not in the recording's
// resource pool. It replaces the default file loader.
func WithLoader(l Loader) PlaybackOption {
	return func(o *playbackOptions) {
		o.loader = l
	}
}

// WithBaseDir sets the directory relative sprite paths are loaded from by
// the default loader.
func WithBaseDir(dir string) PlaybackOption {
	return func(o *playbackOptions) {
		o.baseDir = dir
	}
}

// WithFont sets the font used by text commands. The default is
// olive.DefaultFont.
func WithFont(f *olive.Font) PlaybackOption {
	return func(o *playbackOptions) {
		o.font = f
	}
}

// player holds the state of one playback.
type player struct {
	rec     *Recording
	opts    playbackOptions
	sources map[string]olive.Drawable
}

// Playback replays the recording onto dst, clearing it to the background
// color first when one is set. Commands are executed in order; playback
// stops at the first command that fails.
func (r *Recording) Playback(dst olive.Drawable, opts ...PlaybackOption) error {
	p := &player{
		rec:     r,
		sources: make(map[string]olive.Drawable),
	}
	for _, opt := range opts {
		opt(&p.opts)
	}
	if p.opts.loader == nil {
		p.opts.loader = p.loadFile
	}

	if r.hasBackground {
		dst.Fill(r.background)
	}
	return p.run(dst, r.commands, "")
}

// Render plays the recording onto a new canvas of the recording's size.
func (r *Recording) Render(opts ...PlaybackOption) (*olive.Canvas, error) {
	c := olive.New(r.width, r.height)
	if err := r.Playback(c, opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (p *player) run(dst olive.Drawable, commands []Command, path string) error {
	for i, cmd := range commands {
		if err := p.exec(dst, cmd, fmt.Sprintf("%s%d", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (p *player) exec(dst olive.Drawable, cmd Command, at string) error {
	switch c := cmd.(type) {
	case FillCommand:
		dst.Fill(c.Color)
	case RectCommand:
		dst.Rect(c.X, c.Y, c.W, c.H, c.Color)
	case FrameCommand:
		dst.Frame(c.X, c.Y, c.W, c.H, c.Thickness, c.Color)
	case CircleCommand:
		dst.Circle(c.CX, c.CY, c.R, c.Color)
	case EllipseCommand:
		dst.Ellipse(c.CX, c.CY, c.RX, c.RY, c.Color)
	case LineCommand:
		dst.Line(c.X1, c.Y1, c.X2, c.Y2, c.Color)
	case TriangleCommand:
		dst.Triangle(c.X1, c.Y1, c.X2, c.Y2, c.X3, c.Y3, c.Color)
	case Triangle3CCommand:
		dst.Triangle3C(c.X1, c.Y1, c.X2, c.Y2, c.X3, c.Y3, c.C1, c.C2, c.C3)
	case TextCommand:
		dst.Text(c.Text, c.X, c.Y, p.opts.font, c.Size, c.Color)
	case PixelCommand:
		dst.SetPixel(c.X, c.Y, c.Color)
	case SpriteCommand:
		src, err := p.source(c.Source)
		if err != nil {
			return fmt.Errorf("recording: command %s (%s): %w", at, c.Type(), err)
		}
		switch c.Mode {
		case SpriteCopy:
			dst.SpriteCopy(c.X, c.Y, c.W, c.H, src)
		case SpriteBilinear:
			dst.SpriteCopyBilinear(c.X, c.Y, c.W, c.H, src)
		default:
			dst.SpriteBlend(c.X, c.Y, c.W, c.H, src)
		}
	case RegionCommand:
		sub := dst.Subcanvas(c.X, c.Y, c.W, c.H)
		if sub == nil {
			olive.Logger().Warn("recording: region outside target, commands skipped",
				"command", at, "x", c.X, "y", c.Y, "w", c.W, "h", c.H,
				"skipped", len(c.Commands))
			return nil
		}
		return p.run(sub, c.Commands, at+".")
	default:
		return fmt.Errorf("%w: %T at %s", ErrUnknownCommand, cmd, at)
	}
	return nil
}

// source resolves a sprite source, loading each name at most once per
// playback.
func (p *player) source(name string) (olive.Drawable, error) {
	if img := p.rec.resources.GetImage(name); img != nil {
		return img, nil
	}
	if d, ok := p.sources[name]; ok {
		return d, nil
	}
	d, err := p.opts.loader(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrMissingSource, name, err)
	}
	p.sources[name] = d
	return d, nil
}

func (p *player) loadFile(name string) (olive.Drawable, error) {
	path := name
	if p.opts.baseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(p.opts.baseDir, path)
	}
	c, err := loadCached(path)
	if err != nil {
		return nil, err
	}
	return c, nil
}
