package svgextruder

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hellenic-development/svg-extruder/pkg/gltfout"
	"github.com/hellenic-development/svg-extruder/pkg/importer"
	"github.com/hellenic-development/svg-extruder/pkg/mesher"
	"github.com/hellenic-development/svg-extruder/pkg/scene"
)

// Recoverable per-file conditions; both end the file in OutcomeSkipped.
var (
	ErrEmptyImport = errors.New("no objects imported")
	ErrJoinFailed  = errors.New("join produced no object")
)

// pipeline carries the per-run state shared by every file: the single
// working scene and the import strategy. The scene is reset before each
// file, so no state leaks between source assets.
type pipeline struct {
	scene    *scene.Scene
	importer *importer.Importer
	opts     *Options
}

// process runs one source file through the full conversion pipeline and
// returns its terminal state. Every exit path logs the outcome with the
// offending file named; nothing is dropped silently.
func (p *pipeline) process(path string) FileResult {
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	p.opts.logInfo("=== %s ===", name)

	p.scene.Reset()

	mode := importer.ParseMode(p.opts.Mode)
	imported := p.importer.Import(p.scene, path, mode)
	if len(imported) == 0 {
		p.opts.logWarn("%s: %v, skipping", name, ErrEmptyImport)
		return FileResult{Source: path, Outcome: OutcomeSkipped, Err: ErrEmptyImport}
	}

	// Fill settings are per-curve-data, so normalize before joining.
	for _, o := range imported {
		mesher.ConfigureFill(o)
	}

	joined := mesher.Join(p.scene, imported)
	if joined == nil {
		p.opts.logWarn("%s: %v, skipping", name, ErrJoinFailed)
		return FileResult{Source: path, Outcome: OutcomeSkipped, Err: ErrJoinFailed}
	}

	mesh, err := mesher.ToMesh(p.scene, joined)
	if err != nil {
		return p.fail(path, name, fmt.Errorf("convert: %w", err))
	}

	mesher.Repair(mesh)

	if err := mesher.Extrude(mesh, float32(p.opts.Extrude)); err != nil {
		return p.fail(path, name, fmt.Errorf("extrude: %w", err))
	}

	// Export scope is selection-driven: select exactly the working mesh.
	p.scene.SelectOnly(mesh)
	p.scene.SetActive(mesh)

	format := gltfout.ParseFormat(p.opts.Format)
	artifact := filepath.Join(p.opts.OutputDir, stem+"."+format.Ext())
	if err := gltfout.Export(p.scene, artifact, format); err != nil {
		return p.fail(path, name, fmt.Errorf("export: %w", err))
	}

	p.opts.logInfo("✓ Exported %s", artifact)
	return FileResult{Source: path, Outcome: OutcomeExported, Artifact: artifact}
}

func (p *pipeline) fail(path, name string, err error) FileResult {
	p.opts.logError("%s: %v", name, err)
	return FileResult{Source: path, Outcome: OutcomeFailed, Err: err}
}
