package olive

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// captureLogs routes olive's records to a buffer for the rest of the test.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestDiscardHandler(t *testing.T) {
	h := discardHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "val")}).(discardHandler); !ok {
		t.Error("WithAttrs() did not return a discardHandler")
	}
	if _, ok := h.WithGroup("group").(discardHandler); !ok {
		t.Error("WithGroup() did not return a discardHandler")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger is enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	buf := captureLogs(t, slog.LevelInfo)
	Logger().Info("hello", "key", "value")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("log output = %q, want the message", buf.String())
	}

	SetLogger(nil)
	if Logger() == nil || Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

func TestLoggerRecords(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		do    func(t *testing.T)
		want  []string
	}{
		{
			name:  "rejected buffer",
			level: slog.LevelDebug,
			do: func(t *testing.T) {
				if _, err := FromBuffer(make([]uint32, 3), 2, 2); err == nil {
					t.Fatal("FromBuffer accepted a short buffer")
				}
			},
			want: []string{"level=DEBUG", "buffer rejected", "have=3", "need=4"},
		},
		{
			name:  "culled subcanvas",
			level: slog.LevelDebug,
			do: func(t *testing.T) {
				if New(4, 4).Subcanvas(10, 10, 2, 2) != nil {
					t.Fatal("Subcanvas outside the canvas returned non-nil")
				}
			},
			want: []string{"subcanvas outside parent", "x=10", "width=4"},
		},
		{
			name:  "empty sprite",
			level: slog.LevelDebug,
			do: func(t *testing.T) {
				New(4, 4).SpriteBlend(0, 0, 2, 2, New(0, 0))
			},
			want: []string{"empty source skipped", "op=SpriteBlend"},
		},
		{
			name:  "save and load",
			level: slog.LevelInfo,
			do: func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "c.png")
				if err := New(3, 2).SavePNG(path); err != nil {
					t.Fatalf("SavePNG: %v", err)
				}
				if _, err := Load(path); err != nil {
					t.Fatalf("Load: %v", err)
				}
			},
			want: []string{"saved image", "format=png", "loaded image", "width=3"},
		},
		{
			name:  "debug records stay below info",
			level: slog.LevelInfo,
			do: func(t *testing.T) {
				New(4, 4).Subcanvas(10, 10, 2, 2)
			},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t, tt.level)
			tt.do(t)
			out := buf.String()
			if tt.want == nil && out != "" {
				t.Errorf("unexpected output %q", out)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("log output %q does not contain %q", out, w)
				}
			}
		})
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 100
	for range goroutines {
		wg.Add(2)
		go func() {
			defer wg.Done()
			New(2, 2).Subcanvas(5, 5, 1, 1)
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}
