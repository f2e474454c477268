// Package svgextruder converts directories of 2D vector glyph outlines
// (SVG) into extruded 3D mesh assets (glTF 2.0), for turning font, logo and
// vector artwork into flat signage-style geometry.
//
// The CLI lives in cmd/svg-extruder; this root package exposes the same
// batch pipeline as a Go API so that callers can embed the conversion in
// their own asset tooling.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named svgextruder:
//
//	import "github.com/hellenic-development/svg-extruder" // package svgextruder
//
// # Quick start
//
//	result, err := svgextruder.Run(svgextruder.Options{
//	    InputDir:  "glyphs",
//	    OutputDir: "meshes",
//	    Format:    "glb",
//	    Extrude:   0.02,
//	    Mode:      "curve",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Printf("%d exported, %d skipped, %d failed",
//	    result.Exported, result.Skipped, result.Failed)
//
// # Pipeline
//
// Every input file is processed against a freshly reset scene: import
// (curve-based, stroke-path-based, or auto with fallback), curve fill
// configuration so counters and holes survive, joining into a single
// object, conversion to a true polygon mesh, best-effort repair of any
// non-face topology, extrusion along +Z, and export. A file that fails at
// any step is reported and skipped; it never aborts the batch. Only a
// missing input directory aborts the run.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
//	type myLogger struct{}
//	func (l *myLogger) Infof(f string, a ...any)  { log.Printf("[INFO]  "+f, a...) }
//	func (l *myLogger) Warnf(f string, a ...any)  { log.Printf("[WARN]  "+f, a...) }
//	func (l *myLogger) Errorf(f string, a ...any) { log.Printf("[ERROR] "+f, a...) }
//
// # Formats
//
// "glb" exports a single self-contained binary file; "gltf" exports the
// JSON document plus a .bin buffer side-car. Unrecognized format strings
// fall back to the separate variant.
package svgextruder
