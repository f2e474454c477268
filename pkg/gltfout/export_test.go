package gltfout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hellenic-development/svg-extruder/pkg/scene"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"glb", FormatBinary},
		{"GLB", FormatBinary},
		{"gltf", FormatSeparate},
		{"obj", FormatSeparate},
		{"", FormatSeparate},
	}
	for _, tt := range tests {
		if got := ParseFormat(tt.in); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// slabScene builds a scene whose active selection is a one-triangle mesh.
func slabScene(t *testing.T) (*scene.Scene, *scene.Object) {
	t.Helper()
	sc := scene.New()
	o := sc.AddCurve("slab")
	md := &scene.MeshData{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Indices:  []uint32{0, 1, 2},
	}
	sc.SetMeshData(o, md)
	sc.SelectOnly(o)
	sc.SetActive(o)
	return sc, o
}

func TestExportBinary(t *testing.T) {
	sc, _ := slabScene(t)
	path := filepath.Join(t.TempDir(), "slab.glb")

	if err := Export(sc, path, FormatBinary); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 12 || string(data[:4]) != "glTF" {
		t.Errorf("artifact does not start with the GLB magic")
	}
}

func TestExportSeparateWritesSideCar(t *testing.T) {
	sc, _ := slabScene(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "slab.gltf")

	if err := Export(sc, path, FormatSeparate); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("document missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "slab.bin")); err != nil {
		t.Errorf("buffer side-car missing: %v", err)
	}
}

func TestExportRequiresActiveMeshSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.glb")

	t.Run("no active object", func(t *testing.T) {
		sc := scene.New()
		if err := Export(sc, path, FormatBinary); err == nil {
			t.Error("Export() error = nil, want error")
		}
	})

	t.Run("active object not a mesh", func(t *testing.T) {
		sc := scene.New()
		o := sc.AddCurve("c")
		sc.SelectOnly(o)
		sc.SetActive(o)
		if err := Export(sc, path, FormatBinary); err == nil {
			t.Error("Export() error = nil, want error")
		}
	})

	t.Run("selection wider than active mesh", func(t *testing.T) {
		sc, o := slabScene(t)
		extra := sc.AddCurve("extra")
		sc.Select(extra)
		sc.SetActive(o)
		if err := Export(sc, path, FormatBinary); err == nil {
			t.Error("Export() error = nil, want error")
		}
	})

	t.Run("mesh without faces", func(t *testing.T) {
		sc := scene.New()
		o := sc.AddCurve("edges")
		sc.SetMeshData(o, &scene.MeshData{
			Vertices: []float32{0, 0, 0, 1, 0, 0},
			Edges:    []uint32{0, 1},
		})
		sc.SelectOnly(o)
		sc.SetActive(o)
		if err := Export(sc, path, FormatBinary); err == nil {
			t.Error("Export() error = nil, want error")
		}
	})
}
