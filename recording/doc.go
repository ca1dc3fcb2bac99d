// Package recording captures olive drawing operations as commands that can
// be replayed later, saved as YAML scripts, and loaded back.
//
// # Architecture
//
// The package has three parts:
//
//   - Recorder: captures drawing calls as typed commands
//   - Recording: stores commands and sprite images for playback
//   - Scripts: the YAML form of a Recording
//
// # Basic Usage
//
//	rec := recording.NewRecorder(900, 600)
//	rec.Fill(olive.RGB(255, 0, 0))
//	rec.Region(20, 20, 860, 560, func(r *recording.Recorder) {
//	    r.Fill(olive.RGB(50, 50, 255))
//	})
//	r := rec.FinishRecording()
//
//	c := olive.New(r.Width(), r.Height())
//	if err := r.Playback(c); err != nil {
//	    log.Fatal(err)
//	}
//
// # Sprites
//
// Sprite commands refer to their image by name. At playback the name is
// looked up among images added with Recorder.AddImage, then passed to the
// loader (WithLoader). The default loader reads image files with
// olive.Load, relative to WithBaseDir. Decoded files are shared between
// playbacks until the file on disk changes.
//
// # Scripts
//
// Parse and LoadScript read YAML scripts; Recording.MarshalScript writes
// them. Each command is a mapping with an "op" key naming the command
// ("fill", "rect", "frame", "circle", "ellipse", "line", "triangle",
// "triangle3c", "text", "pixel", "sprite", "region") and the fields of the
// matching command struct in lower case.
package recording
