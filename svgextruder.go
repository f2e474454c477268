package svgextruder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hellenic-development/svg-extruder/pkg/importer"
	"github.com/hellenic-development/svg-extruder/pkg/scene"
)

// Version is the tool version reported by the CLI.
const Version = "0.1.0"

// Options configures a batch run.
type Options struct {
	InputDir  string  // directory of .svg files, required, must exist
	OutputDir string  // created if absent
	Format    string  // "glb" (binary) or "gltf" (separate); default "glb"
	Extrude   float64 // extrusion depth in meters, non-negative; 0 is legal
	Mode      string  // "curve", "gp" or "auto"; default "curve"
	Logger    Logger  // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Outcome is the terminal state of one input file's pipeline.
type Outcome int

const (
	OutcomeExported Outcome = iota
	OutcomeSkipped
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExported:
		return "exported"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// FileResult reports the terminal state of a single source file.
type FileResult struct {
	Source   string // input file path
	Outcome  Outcome
	Artifact string // output path, set when Outcome is OutcomeExported
	Err      error  // reason, set for Skipped and Failed
}

// Result contains the per-file outcomes of a batch run.
type Result struct {
	Files    []FileResult
	Exported int
	Skipped  int
	Failed   int
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

// Run converts every .svg file in the input directory into an extruded mesh
// artifact in the output directory. Each file runs through the full
// pipeline against a freshly reset scene; a failing file is reported in the
// Result and never aborts the batch. Only setup problems (missing input
// directory, uncreatable output directory, negative depth) return an error.
func Run(opts Options) (*Result, error) {
	// Apply defaults.
	if opts.Format == "" {
		opts.Format = "glb"
	}
	if opts.Mode == "" {
		opts.Mode = "curve"
	}
	if opts.Extrude < 0 {
		return nil, fmt.Errorf("extrude depth must be non-negative, got %g", opts.Extrude)
	}

	info, err := os.Stat(opts.InputDir)
	if err != nil {
		return nil, fmt.Errorf("input directory %s: %w", opts.InputDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input path %s is not a directory", opts.InputDir)
	}
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", opts.OutputDir, err)
	}

	svgs, err := discoverSVGs(opts.InputDir)
	if err != nil {
		return nil, fmt.Errorf("read input directory %s: %w", opts.InputDir, err)
	}

	result := &Result{}
	if len(svgs) == 0 {
		opts.logInfo("No SVGs found in %s", opts.InputDir)
		return result, nil
	}

	opts.logInfo("Processing %d SVG(s) (%s) from %s -> %s as %s",
		len(svgs), opts.Mode, opts.InputDir, opts.OutputDir, opts.Format)

	im := importer.New()
	if opts.Logger != nil {
		im.Logger = opts.Logger
	}
	p := &pipeline{
		scene:    scene.New(),
		importer: im,
		opts:     &opts,
	}

	for _, path := range svgs {
		fr := p.process(path)
		result.Files = append(result.Files, fr)
		switch fr.Outcome {
		case OutcomeExported:
			result.Exported++
		case OutcomeSkipped:
			result.Skipped++
		case OutcomeFailed:
			result.Failed++
		}
	}

	opts.logInfo("Done. %d exported, %d skipped, %d failed.",
		result.Exported, result.Skipped, result.Failed)
	return result, nil
}

// discoverSVGs lists the .svg files (case-insensitive) directly inside dir,
// in lexicographic order.
func discoverSVGs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".svg") {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out, nil
}
