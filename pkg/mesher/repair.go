package mesher

import (
	"github.com/tchayen/triangolatte"

	"github.com/hellenic-development/svg-extruder/pkg/scene"
)

// Repair attempts to close non-face topology left after conversion: loose
// edges forming closed loops are triangulated into faces, and any remaining
// open chains get a generic fan fill. Both attempts are independently
// best-effort; a loop the triangulator rejects is simply left alone. The
// object is returned to a non-edit state on every exit path. Curve fill
// normally makes this a no-op.
func Repair(o *scene.Object) {
	if o == nil || o.Kind() != scene.KindMesh {
		return
	}
	o.BeginEdit()
	defer o.EndEdit()

	md := o.Mesh
	if md.TriangleCount() > 0 || md.EdgeCount() == 0 {
		return
	}

	closed, open := edgeLoops(md)
	made := false
	for _, loop := range closed {
		if tris, ok := triangulateLoop(md, loop); ok {
			md.Indices = append(md.Indices, tris...)
			made = true
		}
	}
	for _, chain := range open {
		if len(chain) < 3 {
			continue
		}
		for i := 1; i+1 < len(chain); i++ {
			md.Indices = append(md.Indices, chain[0], chain[i], chain[i+1])
		}
		made = true
	}
	if made {
		// Edges are now owned by faces.
		md.Edges = nil
	}
}

// triangulateLoop fills one closed vertex loop, mapping the triangulator's
// coordinate output back onto the existing vertices. ok is false when the
// loop cannot be filled or a coordinate no longer matches a loop vertex.
func triangulateLoop(md *scene.MeshData, loop []uint32) ([]uint32, bool) {
	if len(loop) < 3 {
		return nil, false
	}
	pts := make([]triangolatte.Point, len(loop))
	index := make(map[[2]float64]uint32, len(loop))
	for i, vi := range loop {
		x := float64(md.Vertices[vi*3])
		y := float64(md.Vertices[vi*3+1])
		pts[i] = triangolatte.Point{X: x, Y: y}
		index[[2]float64{x, y}] = vi
	}

	r := ring{pts: pts, area: signedArea(pts)}
	want := abs(r.area)
	var coords []float64
	for _, ccw := range []bool{true, false} {
		c, err := triangolatte.Polygon(orient(r, ccw))
		if err != nil {
			continue
		}
		if abs(triangleArea(c)-want) <= want*0.01+1e-12 {
			coords = c
			break
		}
	}
	if coords == nil {
		return nil, false
	}

	out := make([]uint32, 0, len(coords)/2)
	for c := 0; c+1 < len(coords); c += 2 {
		vi, ok := index[[2]float64{coords[c], coords[c+1]}]
		if !ok {
			return nil, false
		}
		out = append(out, vi)
	}
	return out, true
}

// edgeLoops partitions the loose edges into closed vertex loops and open
// chains. Vertices with degree other than 2 terminate chains.
func edgeLoops(md *scene.MeshData) (closed, open [][]uint32) {
	adj := make(map[uint32][]uint32)
	for i := 0; i+1 < len(md.Edges); i += 2 {
		a, b := md.Edges[i], md.Edges[i+1]
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}

	used := make(map[[2]uint32]bool, len(md.Edges)/2)
	edgeKey := func(a, b uint32) [2]uint32 {
		if a > b {
			a, b = b, a
		}
		return [2]uint32{a, b}
	}
	walk := func(start uint32) ([]uint32, bool) {
		path := []uint32{start}
		cur := start
		for {
			next, ok := uint32(0), false
			for _, n := range adj[cur] {
				if !used[edgeKey(cur, n)] {
					next, ok = n, true
					break
				}
			}
			if !ok {
				return path, false
			}
			used[edgeKey(cur, next)] = true
			if next == start {
				return path, true
			}
			path = append(path, next)
			cur = next
		}
	}

	// Open chains start at odd-degree vertices.
	for v, ns := range adj {
		if len(ns)%2 == 1 {
			if p, _ := walk(v); len(p) > 1 {
				open = append(open, p)
			}
		}
	}
	// What remains are loops.
	for i := 0; i+1 < len(md.Edges); i += 2 {
		a, b := md.Edges[i], md.Edges[i+1]
		if used[edgeKey(a, b)] {
			continue
		}
		p, loop := walk(a)
		if loop && len(p) >= 3 {
			closed = append(closed, p)
		} else if len(p) > 1 {
			open = append(open, p)
		}
	}
	return closed, open
}
