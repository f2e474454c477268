// Package mesher normalizes imported geometry and turns it into an
// exportable polygon mesh: curve fill configuration, object joining,
// mesh conversion, best-effort repair and extrusion.
package mesher

import (
	"github.com/hellenic-development/svg-extruder/pkg/scene"
)

// ConfigureFill normalizes a curve object so filled regions (including
// holes) convert correctly: planar dimensionality, fill on both sides of
// every sub-path, and no bevel or along-path thickness so the curve stays
// flat until the explicit extrusion step. No-op for non-curve objects.
// Must run before joining, while fill settings are still per-object.
func ConfigureFill(o *scene.Object) {
	if o.Kind() != scene.KindCurve {
		return
	}
	c := o.Curve
	c.Dimensions = scene.Dim2D
	c.FillMode = scene.FillBoth
	c.BevelDepth = 0
	c.ExtrudeDepth = 0
}

// Join merges the given objects into a single object, using the first as
// the merge target: its name and scene identity survive. Objects no longer
// present in the scene are ignored. Returns nil when nothing is left to
// join, the object unchanged when there is exactly one.
func Join(sc *scene.Scene, objs []*scene.Object) *scene.Object {
	live := objs[:0:0]
	for _, o := range objs {
		if o != nil && sc.Contains(o) {
			live = append(live, o)
		}
	}
	if len(live) == 0 {
		return nil
	}
	if len(live) == 1 {
		return live[0]
	}

	sc.DeselectAll()
	for _, o := range live {
		sc.Select(o)
	}
	target := live[0]
	sc.SetActive(target)

	for _, o := range live[1:] {
		if o.Kind() == target.Kind() || bothCurveLike(o, target) {
			merge(target, o)
		}
		sc.Remove(o)
	}
	return target
}

// bothCurveLike reports whether both objects carry curve data, so their
// contours can merge even across the curve / stroke-path kinds.
func bothCurveLike(a, b *scene.Object) bool {
	return a.Curve != nil && b.Curve != nil
}

func merge(dst, src *scene.Object) {
	if dst.Curve != nil && src.Curve != nil {
		dst.Curve.Contours = append(dst.Curve.Contours, src.Curve.Contours...)
		return
	}
	if dst.Mesh != nil && src.Mesh != nil {
		off := uint32(dst.Mesh.VertexCount())
		dst.Mesh.Vertices = append(dst.Mesh.Vertices, src.Mesh.Vertices...)
		for _, i := range src.Mesh.Indices {
			dst.Mesh.Indices = append(dst.Mesh.Indices, i+off)
		}
		for _, e := range src.Mesh.Edges {
			dst.Mesh.Edges = append(dst.Mesh.Edges, e+off)
		}
	}
}
