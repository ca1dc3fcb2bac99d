// Command olivedemo renders olive demo scenes and YAML scripts to image files.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gogpu/olive"
	"github.com/gogpu/olive/recording"
)

func main() {
	var (
		scene   = flag.String("scene", "japan", "demo scene: "+sceneList())
		script  = flag.String("script", "", "render a YAML script instead of a scene")
		width   = flag.Int("width", 900, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "olive.png", "output file; the extension selects the format")
		dump    = flag.String("dump", "", "also write the scene as a YAML script")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		olive.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	rec, err := load(*scene, *script, *width, *height)
	if err != nil {
		log.Fatalf("olivedemo: %v", err)
	}

	if *dump != "" {
		data, err := rec.MarshalScript()
		if err != nil {
			log.Fatalf("olivedemo: %v", err)
		}
		if err := os.WriteFile(*dump, data, 0o600); err != nil {
			log.Fatalf("olivedemo: write script: %v", err)
		}
	}

	var opts []recording.PlaybackOption
	if *script != "" {
		opts = append(opts, recording.WithBaseDir(filepath.Dir(*script)))
	}
	c, err := rec.Render(opts...)
	if err != nil {
		log.Fatalf("olivedemo: %v", err)
	}
	if err := c.Save(*output); err != nil {
		log.Fatalf("olivedemo: failed to save: %v", err)
	}

	log.Printf("saved %s (%dx%d)\n", *output, c.Width(), c.Height())
}

func load(scene, script string, width, height int) (*recording.Recording, error) {
	if script != "" {
		return recording.LoadScript(script)
	}
	build, ok := scenes[scene]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (want one of %s)", scene, sceneList())
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", width, height)
	}
	rec := recording.NewRecorder(width, height)
	build(rec)
	return rec.FinishRecording(), nil
}

func sceneList() string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}
