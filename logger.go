package olive

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false, so the
// attributes of disabled Debug calls on hot drawing paths are never built.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var activeLogger atomic.Pointer[slog.Logger]

func init() {
	activeLogger.Store(slog.New(discardHandler{}))
}

// SetLogger routes the diagnostics of olive and of package recording to l.
// Drawing never fails, so these records are the only trace of calls that
// were clipped away or ignored. Pass nil to silence them again, which is
// the default. SetLogger may be called concurrently with drawing.
//
// Records, by level:
//
//   - Debug "olive: buffer rejected": FromBuffer refused a buffer
//     (width, height, stride, have, need).
//   - Debug "olive: subcanvas outside parent": Subcanvas returned nil
//     (x, y, w, h, and the parent width and height).
//   - Debug "olive: empty source skipped": a sprite, texture or DrawImage
//     source had no pixels (op).
//   - Info "olive: saved image" and "olive: loaded image" (path, width,
//     height; format when saving).
//   - Warn "recording: region outside target, commands skipped": a recorded
//     region fell outside the playback target (command, x, y, w, h,
//     skipped).
//
// A typical setup for debugging a scene:
//
//	olive.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	activeLogger.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent one.
func Logger() *slog.Logger {
	return activeLogger.Load()
}
