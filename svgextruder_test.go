package svgextruder

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const squareSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100" viewBox="0 0 100 100">
  <path d="M10 10 H90 V90 H10 Z"/>
</svg>`

const holeSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100" viewBox="0 0 100 100">
  <path d="M10 10 H90 V90 H10 Z M35 35 H65 V65 H35 Z"/>
</svg>`

func writeSVG(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRunSingleOutline(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeSVG(t, in, "a.svg", squareSVG)

	result, err := Run(Options{
		InputDir:  in,
		OutputDir: out,
		Format:    "glb",
		Extrude:   0.02,
		Mode:      "curve",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Exported != 1 || result.Skipped != 0 || result.Failed != 0 {
		t.Fatalf("outcomes = %d/%d/%d, want 1 exported only",
			result.Exported, result.Skipped, result.Failed)
	}

	artifact := filepath.Join(out, "a.glb")
	if result.Files[0].Artifact != artifact {
		t.Errorf("Artifact = %q, want %q", result.Files[0].Artifact, artifact)
	}
	data, err := os.ReadFile(artifact)
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	if len(data) < 12 || string(data[:4]) != "glTF" {
		t.Error("artifact is not a GLB container")
	}
}

func TestRunGlyphWithHole(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeSVG(t, in, "b.svg", holeSVG)

	result, err := Run(Options{InputDir: in, OutputDir: out, Mode: "curve", Extrude: 0.01})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Exported != 1 {
		t.Fatalf("Exported = %d, want 1", result.Exported)
	}
	if _, err := os.Stat(filepath.Join(out, "b.glb")); err != nil {
		t.Errorf("b.glb missing: %v", err)
	}
}

func TestRunSeparateFormat(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeSVG(t, in, "a.svg", squareSVG)

	result, err := Run(Options{InputDir: in, OutputDir: out, Format: "gltf"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Exported != 1 {
		t.Fatalf("Exported = %d, want 1", result.Exported)
	}
	for _, name := range []string{"a.gltf", "a.bin"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("%s missing: %v", name, err)
		}
	}
}

func TestRunIsolatesBadFiles(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeSVG(t, in, "bad.svg", "this is not an svg")
	writeSVG(t, in, "good.svg", squareSVG)

	result, err := Run(Options{InputDir: in, OutputDir: out, Mode: "auto"})
	if err != nil {
		t.Fatalf("Run() error = %v, want batch to complete", err)
	}
	if result.Exported != 1 || result.Skipped != 1 || result.Failed != 0 {
		t.Fatalf("outcomes = %d/%d/%d, want 1 exported and 1 skipped",
			result.Exported, result.Skipped, result.Failed)
	}

	// Lexicographic order: bad.svg first, skipped with the import sentinel.
	if result.Files[0].Outcome != OutcomeSkipped || !errors.Is(result.Files[0].Err, ErrEmptyImport) {
		t.Errorf("Files[0] = %+v, want skip with ErrEmptyImport", result.Files[0])
	}
	if _, err := os.Stat(filepath.Join(out, "good.glb")); err != nil {
		t.Errorf("good.glb missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "bad.glb")); err == nil {
		t.Error("bad.glb exists, want no artifact for a skipped file")
	}
}

func TestRunEmptyInputDir(t *testing.T) {
	result, err := Run(Options{InputDir: t.TempDir(), OutputDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Run() error = %v, want empty dir to be a no-op success", err)
	}
	if len(result.Files) != 0 {
		t.Errorf("Files = %d, want 0", len(result.Files))
	}
}

func TestRunMissingInputDir(t *testing.T) {
	_, err := Run(Options{InputDir: filepath.Join(t.TempDir(), "nope"), OutputDir: t.TempDir()})
	if err == nil {
		t.Fatal("Run() error = nil for missing input directory, want error")
	}
}

func TestRunNegativeDepth(t *testing.T) {
	_, err := Run(Options{InputDir: t.TempDir(), OutputDir: t.TempDir(), Extrude: -0.1})
	if err == nil {
		t.Fatal("Run() error = nil for negative depth, want error")
	}
}

func TestRunIdempotentArtifactNames(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeSVG(t, in, "a.svg", squareSVG)
	writeSVG(t, in, "b.svg", holeSVG)

	names := func() []string {
		entries, err := os.ReadDir(out)
		if err != nil {
			t.Fatal(err)
		}
		var list []string
		for _, e := range entries {
			list = append(list, e.Name())
		}
		return list
	}

	if _, err := Run(Options{InputDir: in, OutputDir: out}); err != nil {
		t.Fatal(err)
	}
	first := names()

	if _, err := Run(Options{InputDir: in, OutputDir: out}); err != nil {
		t.Fatal(err)
	}
	second := names()

	if len(first) != 2 {
		t.Fatalf("artifacts = %v, want 2 files", first)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("artifact names changed between runs: %v vs %v", first, second)
		}
	}
}

func TestRunSkipsNonSVGFiles(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeSVG(t, in, "a.SVG", squareSVG) // extension match is case-insensitive
	writeSVG(t, in, "notes.txt", "ignore me")

	result, err := Run(Options{InputDir: in, OutputDir: out})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Files) != 1 || result.Exported != 1 {
		t.Fatalf("files/exported = %d/%d, want 1/1", len(result.Files), result.Exported)
	}
	if _, err := os.Stat(filepath.Join(out, "a.glb")); err != nil {
		t.Errorf("a.glb missing: %v", err)
	}
}
