package scene

import "github.com/chewxy/math32"

// Dimensions is the spatial dimensionality of a curve.
type Dimensions int

const (
	Dim3D Dimensions = iota
	Dim2D
)

func (d Dimensions) String() string {
	if d == Dim2D {
		return "2D"
	}
	return "3D"
}

// FillMode controls how closed sub-paths of a 2D curve are filled when the
// curve is converted to a mesh. FillBoth fills both faces and treats nested
// sub-paths as holes, which is what glyph outlines with counters need.
type FillMode int

const (
	FillNone FillMode = iota
	FillFront
	FillBack
	FillBoth
)

func (f FillMode) String() string {
	switch f {
	case FillFront:
		return "FRONT"
	case FillBack:
		return "BACK"
	case FillBoth:
		return "BOTH"
	}
	return "NONE"
}

// Contour is one sub-path of a curve: flat x,y pairs in meters.
type Contour struct {
	Points []float32 // [x0,y0, x1,y1, ...]
	Closed bool
}

// PointCount returns the number of 2D points in the contour.
func (c Contour) PointCount() int { return len(c.Points) / 2 }

// CurveData is the data block behind curve and stroke-path objects.
type CurveData struct {
	Contours     []Contour
	Dimensions   Dimensions
	FillMode     FillMode
	BevelDepth   float32
	ExtrudeDepth float32 // extrude-along-path thickness, not the batch extrusion
}

// NewCurveData returns curve data with host defaults: a 3D, unfilled curve.
func NewCurveData() *CurveData {
	return &CurveData{Dimensions: Dim3D, FillMode: FillNone}
}

// MeshData is the data block behind mesh objects. All arrays are flat:
// vertices hold 3 floats per vertex (x,y,z), indices 3 uint32s per triangle,
// edges 2 uint32s per loose edge (edges not owned by any face).
type MeshData struct {
	Vertices []float32 // [x0,y0,z0, x1,y1,z1, ...]
	Indices  []uint32  // [i0,i1,i2, ...] triangles
	Edges    []uint32  // [a0,b0, a1,b1, ...] loose edges
}

// VertexCount returns the number of vertices.
func (m *MeshData) VertexCount() int { return len(m.Vertices) / 3 }

// TriangleCount returns the number of triangle faces.
func (m *MeshData) TriangleCount() int { return len(m.Indices) / 3 }

// EdgeCount returns the number of loose edges.
func (m *MeshData) EdgeCount() int { return len(m.Edges) / 2 }

// IsEmpty reports whether the mesh has no geometry at all.
func (m *MeshData) IsEmpty() bool { return len(m.Vertices) == 0 }

// Bounds returns the axis-aligned bounding box of the mesh. ok is false for
// an empty mesh.
func (m *MeshData) Bounds() (min, max [3]float32, ok bool) {
	if m.IsEmpty() {
		return min, max, false
	}
	for i := range min {
		min[i] = math32.Inf(1)
		max[i] = math32.Inf(-1)
	}
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		for a := 0; a < 3; a++ {
			v := m.Vertices[i+a]
			min[a] = math32.Min(min[a], v)
			max[a] = math32.Max(max[a], v)
		}
	}
	return min, max, true
}
