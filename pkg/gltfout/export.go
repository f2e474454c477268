// Package gltfout writes the working mesh to glTF 2.0, either as a single
// self-contained binary .glb or as a .gltf document with a side-car .bin
// buffer.
package gltfout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/hellenic-development/svg-extruder/pkg/scene"
)

// Format selects the export container.
type Format string

const (
	FormatBinary   Format = "glb"  // single self-contained file
	FormatSeparate Format = "gltf" // JSON document plus .bin side-car
)

// ParseFormat maps a format string to a Format. Only "glb" (any case)
// selects the binary container; everything else, including unrecognized
// strings, falls back to the separate variant.
func ParseFormat(s string) Format {
	if strings.EqualFold(s, "glb") {
		return FormatBinary
	}
	return FormatSeparate
}

// Ext returns the artifact file extension for the format, without the dot.
func (f Format) Ext() string {
	if f == FormatBinary {
		return "glb"
	}
	return "gltf"
}

// Export writes the scene's active object to path. Export scope is
// selection-driven: the selection set must be exactly the active mesh,
// which the pipeline establishes immediately before calling.
func Export(sc *scene.Scene, path string, format Format) error {
	o := sc.Active()
	if o == nil || o.Kind() != scene.KindMesh {
		return errors.New("export: active object is not a mesh")
	}
	if sel := sc.Selected(); len(sel) != 1 || sel[0] != o {
		return errors.New("export: selection is not exactly the active mesh")
	}
	md := o.Mesh
	if md.TriangleCount() == 0 {
		return fmt.Errorf("export: mesh %s has no faces", o.Name())
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "svg-extruder"

	positions := make([][3]float32, 0, md.VertexCount())
	for i := 0; i+2 < len(md.Vertices); i += 3 {
		positions = append(positions, [3]float32{md.Vertices[i], md.Vertices[i+1], md.Vertices[i+2]})
	}
	posAccessor := modeler.WritePosition(doc, positions)
	idxAccessor := modeler.WriteIndices(doc, md.Indices)

	doc.Meshes = []*gltf.Mesh{{
		Name: o.Name(),
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idxAccessor),
			Attributes: map[string]int{gltf.POSITION: posAccessor},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: o.Name(), Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	if format == FormatBinary {
		if err := gltf.SaveBinary(doc, path); err != nil {
			return fmt.Errorf("save glb: %w", err)
		}
		return nil
	}

	// Separate variant: buffer payload goes to a .bin next to the document.
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	binName := stem + ".bin"
	buf := doc.Buffers[0]
	if err := os.WriteFile(filepath.Join(filepath.Dir(path), binName), buf.Data, 0644); err != nil {
		return fmt.Errorf("write buffer side-car: %w", err)
	}
	buf.URI = binName
	if err := gltf.Save(doc, path); err != nil {
		return fmt.Errorf("save gltf: %w", err)
	}
	return nil
}
