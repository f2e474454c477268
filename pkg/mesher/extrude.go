package mesher

import (
	"fmt"

	"github.com/hellenic-development/svg-extruder/pkg/scene"
)

// Extrude solidifies a flat mesh into a volume of the given depth along +Z:
// every vertex is duplicated and translated by depth, side walls connect
// the boundary, and the original faces become the bottom cap. depth 0 is
// legal and produces a degenerate zero-thickness solid. The object is
// returned to a non-edit state on every exit path.
func Extrude(o *scene.Object, depth float32) error {
	if o == nil || o.Kind() != scene.KindMesh {
		return fmt.Errorf("extrude: object is not a mesh")
	}
	o.BeginEdit()
	defer o.EndEdit()

	if depth < 0 {
		return fmt.Errorf("extrude: negative depth %g", depth)
	}
	md := o.Mesh
	n := uint32(md.VertexCount())
	if n == 0 {
		// Nothing selected to extrude; matches the host operator's no-op.
		return nil
	}

	boundary := boundaryEdges(md)

	top := make([]float32, len(md.Vertices))
	copy(top, md.Vertices)
	for i := 2; i < len(top); i += 3 {
		top[i] += depth
	}

	indices := make([]uint32, 0, 2*len(md.Indices)+6*len(boundary))
	// Bottom cap: original faces, winding reversed to face -Z.
	for i := 0; i+2 < len(md.Indices); i += 3 {
		indices = append(indices, md.Indices[i], md.Indices[i+2], md.Indices[i+1])
	}
	// Top cap: translated copy keeps the original winding.
	for i := 0; i+2 < len(md.Indices); i += 3 {
		indices = append(indices, md.Indices[i]+n, md.Indices[i+1]+n, md.Indices[i+2]+n)
	}
	// Side walls: one quad (two triangles) per boundary edge.
	for _, e := range boundary {
		a, b := e[0], e[1]
		indices = append(indices, a, b, b+n, a, b+n, a+n)
	}

	md.Vertices = append(md.Vertices, top...)
	md.Indices = indices

	// Loose edges are duplicated onto the top layer like the vertices.
	if len(md.Edges) > 0 {
		dup := make([]uint32, len(md.Edges))
		for i, e := range md.Edges {
			dup[i] = e + n
		}
		md.Edges = append(md.Edges, dup...)
	}
	return nil
}

// boundaryEdges returns the edges owned by exactly one face, plus all loose
// edges: the open border the side walls must seal.
func boundaryEdges(md *scene.MeshData) [][2]uint32 {
	type key [2]uint32
	mk := func(a, b uint32) key {
		if a > b {
			a, b = b, a
		}
		return key{a, b}
	}

	count := make(map[key]int)
	first := make(map[key][2]uint32) // original orientation of first sighting
	add := func(a, b uint32) {
		k := mk(a, b)
		if count[k] == 0 {
			first[k] = [2]uint32{a, b}
		}
		count[k]++
	}
	for i := 0; i+2 < len(md.Indices); i += 3 {
		add(md.Indices[i], md.Indices[i+1])
		add(md.Indices[i+1], md.Indices[i+2])
		add(md.Indices[i+2], md.Indices[i])
	}

	var out [][2]uint32
	for k, c := range count {
		if c == 1 {
			out = append(out, first[k])
		}
	}
	for i := 0; i+1 < len(md.Edges); i += 2 {
		k := mk(md.Edges[i], md.Edges[i+1])
		if count[k] == 0 {
			out = append(out, [2]uint32{md.Edges[i], md.Edges[i+1]})
		}
	}
	return out
}
