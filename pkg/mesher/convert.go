package mesher

import (
	"errors"

	"github.com/tchayen/triangolatte"

	"github.com/hellenic-development/svg-extruder/pkg/scene"
)

// ErrNotMesh is returned when conversion leaves the active object
// non-mesh-typed. The batch driver treats it as fatal for that file.
var ErrNotMesh = errors.New("convert to mesh failed: active object is not a mesh")

// ToMesh converts a curve or stroke-path object into a true polygon mesh in
// place: the object keeps its name and identity, its data block is replaced.
// A filled curve is triangulated with its holes preserved; unfilled geometry
// becomes vertices and loose edges for the repair step to close.
func ToMesh(sc *scene.Scene, o *scene.Object) (*scene.Object, error) {
	sc.DeselectAll()
	sc.Select(o)
	sc.SetActive(o)

	switch o.Kind() {
	case scene.KindMesh:
		// already a mesh, nothing to convert
	case scene.KindCurve, scene.KindStrokePath:
		md := &scene.MeshData{}
		filled := o.Kind() == scene.KindCurve && o.Curve.FillMode != scene.FillNone
		if filled {
			verts, indices, err := fillContours(o.Curve.Contours)
			if err == nil && len(indices) > 0 {
				md.Vertices, md.Indices = verts, indices
			} else {
				// Fill produced nothing; keep the outline as loose edges
				// so repair can still attempt to close it.
				md.Vertices, md.Edges = contourEdges(o.Curve.Contours)
			}
		} else {
			md.Vertices, md.Edges = contourEdges(o.Curve.Contours)
		}
		sc.SetMeshData(o, md)
	}

	m := sc.Active()
	if m == nil || m.Kind() != scene.KindMesh {
		return nil, ErrNotMesh
	}
	return m, nil
}

// contourEdges lowers contours to flat vertices (z=0) and consecutive loose
// edges, closing each closed contour back to its first point.
func contourEdges(contours []scene.Contour) (verts []float32, edges []uint32) {
	for _, c := range contours {
		pts := ringPoints(c)
		if len(pts) < 2 {
			continue
		}
		base := uint32(len(verts) / 3)
		for _, p := range pts {
			verts = append(verts, float32(p.X), float32(p.Y), 0)
		}
		n := uint32(len(pts))
		for i := uint32(0); i+1 < n; i++ {
			edges = append(edges, base+i, base+i+1)
		}
		if c.Closed && n > 2 {
			edges = append(edges, base+n-1, base)
		}
	}
	return verts, edges
}

// ringPoints extracts a contour's points, dropping a duplicated closing
// point so rings never carry a zero-length segment.
func ringPoints(c scene.Contour) []triangolatte.Point {
	pts := make([]triangolatte.Point, 0, c.PointCount())
	for i := 0; i+1 < len(c.Points); i += 2 {
		pts = append(pts, triangolatte.Point{X: float64(c.Points[i]), Y: float64(c.Points[i+1])})
	}
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	return pts
}

type ring struct {
	pts  []triangolatte.Point
	area float64 // signed, positive = counter-clockwise
}

// fillContours triangulates the contours as filled regions: rings nested at
// odd depth become holes of the innermost ring containing them. Triangle
// vertices are deduplicated into an indexed mesh with z=0.
func fillContours(contours []scene.Contour) (verts []float32, indices []uint32, err error) {
	var rings []ring
	for _, c := range contours {
		pts := ringPoints(c)
		if len(pts) < 3 {
			continue
		}
		rings = append(rings, ring{pts: pts, area: signedArea(pts)})
	}
	if len(rings) == 0 {
		return nil, nil, errors.New("fill: no usable contours")
	}

	// Classify rings as outers or holes by containment depth, then group
	// each hole with its innermost containing outer.
	holes := make(map[int][]int)
	outer := make([]bool, len(rings))
	for i, r := range rings {
		depth := 0
		parent := -1
		for j, other := range rings {
			if i == j || !contains(other.pts, r.pts[0]) {
				continue
			}
			depth++
			if parent < 0 || abs(other.area) < abs(rings[parent].area) {
				parent = j
			}
		}
		if depth%2 == 0 {
			outer[i] = true
		} else {
			holes[parent] = append(holes[parent], i)
		}
	}

	index := make(map[[2]float64]uint32)
	var lastErr error
	for i := range rings {
		if !outer[i] {
			continue
		}
		coords, gErr := triangulateGroup(rings[i], pick(rings, holes[i]))
		if gErr != nil {
			lastErr = gErr
			continue
		}
		for c := 0; c+1 < len(coords); c += 2 {
			key := [2]float64{coords[c], coords[c+1]}
			vi, ok := index[key]
			if !ok {
				vi = uint32(len(verts) / 3)
				index[key] = vi
				verts = append(verts, float32(key[0]), float32(key[1]), 0)
			}
			indices = append(indices, vi)
		}
	}
	if len(indices) == 0 {
		if lastErr != nil {
			return nil, nil, lastErr
		}
		return nil, nil, errors.New("fill: produced no faces")
	}
	return verts, indices, nil
}

func pick(rings []ring, idx []int) []ring {
	out := make([]ring, 0, len(idx))
	for _, i := range idx {
		out = append(out, rings[i])
	}
	return out
}

// triangulateGroup fills one outer ring with its holes. The outer ring is
// oriented counter-clockwise and holes clockwise before the hole cut; the
// reverse winding is tried when the triangulator rejects the input or the
// filled area does not match the ring areas (which is what a fill that
// swallowed a hole looks like).
func triangulateGroup(outer ring, holeRings []ring) ([]float64, error) {
	want := abs(outer.area)
	for _, h := range holeRings {
		want -= abs(h.area)
	}

	var lastErr error
	for _, flip := range []bool{false, true} {
		coords, err := tryGroup(outer, holeRings, flip)
		if err != nil {
			lastErr = err
			continue
		}
		if got := triangleArea(coords); abs(got-want) <= want*0.01+1e-12 {
			return coords, nil
		}
		lastErr = errors.New("fill: triangulated area does not match contours")
	}
	return nil, lastErr
}

// triangleArea sums the unsigned area of the triangles in a flat coordinate
// list (6 floats per triangle).
func triangleArea(coords []float64) float64 {
	var a float64
	for i := 0; i+5 < len(coords); i += 6 {
		a += abs((coords[i+2]-coords[i])*(coords[i+5]-coords[i+1]) -
			(coords[i+4]-coords[i])*(coords[i+3]-coords[i+1]))
	}
	return a / 2
}

func tryGroup(outer ring, holeRings []ring, flip bool) ([]float64, error) {
	polys := [][]triangolatte.Point{orient(outer, !flip)}
	for _, h := range holeRings {
		polys = append(polys, orient(h, flip))
	}
	joined := polys[0]
	if len(polys) > 1 {
		var err error
		joined, err = triangolatte.JoinHoles(polys)
		if err != nil {
			return nil, err
		}
	}
	return triangolatte.Polygon(joined)
}

// orient returns the ring's points with the requested winding.
func orient(r ring, ccw bool) []triangolatte.Point {
	if (r.area > 0) == ccw {
		return r.pts
	}
	out := make([]triangolatte.Point, len(r.pts))
	for i, p := range r.pts {
		out[len(out)-1-i] = p
	}
	return out
}

// signedArea is the shoelace area; positive for counter-clockwise rings.
func signedArea(pts []triangolatte.Point) float64 {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// contains reports whether p is inside the ring by even-odd ray casting.
func contains(pts []triangolatte.Point, p triangolatte.Point) bool {
	in := false
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				in = !in
			}
		}
	}
	return in
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
