package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/hellenic-development/svg-extruder/pkg/scene"
)

// SVG user units are interpreted at the CSS reference 96 dpi and converted
// to meters. The Y axis is flipped: SVG grows downward, the scene up.
const metersPerUnit = 0.0254 / 96

// Bezier segments are flattened with uniform subdivision. 16 chords per
// segment keeps glyph outlines smooth at signage scale.
const bezierSteps = 16

// CurveImport parses an SVG file into curve objects, one per path element,
// with each sub-path captured as a separate contour. Shapes (rect, circle,
// polygon...) arrive pre-converted to paths by the parser.
func CurveImport(sc *scene.Scene, path string) ([]*scene.Object, error) {
	return importPaths(sc, path, false)
}

// StrokePathImport parses an SVG file into stroke-path objects: the same
// outlines as CurveImport but with stroke semantics, so no fill rule and no
// hole support.
func StrokePathImport(sc *scene.Scene, path string) ([]*scene.Object, error) {
	return importPaths(sc, path, true)
}

func importPaths(sc *scene.Scene, path string, asStroke bool) ([]*scene.Object, error) {
	// Strict mode so unparsable input surfaces as an error; the strategy
	// layer downgrades it to a warning naming the file.
	icon, err := oksvg.ReadIcon(path, oksvg.StrictErrorMode)
	if err != nil {
		return nil, fmt.Errorf("read svg: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var out []*scene.Object
	for _, sp := range icon.SVGPaths {
		contours := flattenPath(sp.Path)
		if len(contours) == 0 {
			continue
		}
		var o *scene.Object
		if asStroke {
			o = sc.AddStrokePath(stem)
		} else {
			o = sc.AddCurve(stem)
		}
		o.Curve.Contours = contours
		out = append(out, o)
	}
	return out, nil
}

// contourBuilder implements rasterx.Adder, collecting flattened contours
// from a path's move/line/bezier/close operations.
type contourBuilder struct {
	contours []scene.Contour
	cur      []float32
	cx, cy   float32
}

func toScene(p fixed.Point26_6) (float32, float32) {
	x := float32(p.X) / 64 * metersPerUnit
	y := -float32(p.Y) / 64 * metersPerUnit
	return x, y
}

func (b *contourBuilder) point(x, y float32) {
	// Drop zero-length segments so degenerate chords never reach the fill.
	if n := len(b.cur); n >= 2 && b.cur[n-2] == x && b.cur[n-1] == y {
		return
	}
	b.cur = append(b.cur, x, y)
	b.cx, b.cy = x, y
}

func (b *contourBuilder) flush(closed bool) {
	if len(b.cur) >= 6 { // a contour needs at least 3 points
		b.contours = append(b.contours, scene.Contour{Points: b.cur, Closed: closed})
	}
	b.cur = nil
}

func (b *contourBuilder) Start(a fixed.Point26_6) {
	b.flush(false)
	x, y := toScene(a)
	b.point(x, y)
}

func (b *contourBuilder) Line(p fixed.Point26_6) {
	x, y := toScene(p)
	b.point(x, y)
}

func (b *contourBuilder) QuadBezier(c, e fixed.Point26_6) {
	x0, y0 := b.cx, b.cy
	cx, cy := toScene(c)
	ex, ey := toScene(e)
	for i := 1; i <= bezierSteps; i++ {
		t := float32(i) / bezierSteps
		u := 1 - t
		x := u*u*x0 + 2*u*t*cx + t*t*ex
		y := u*u*y0 + 2*u*t*cy + t*t*ey
		b.point(x, y)
	}
}

func (b *contourBuilder) CubeBezier(c1, c2, e fixed.Point26_6) {
	x0, y0 := b.cx, b.cy
	c1x, c1y := toScene(c1)
	c2x, c2y := toScene(c2)
	ex, ey := toScene(e)
	for i := 1; i <= bezierSteps; i++ {
		t := float32(i) / bezierSteps
		u := 1 - t
		x := u*u*u*x0 + 3*u*u*t*c1x + 3*u*t*t*c2x + t*t*t*ex
		y := u*u*u*y0 + 3*u*u*t*c1y + 3*u*t*t*c2y + t*t*t*ey
		b.point(x, y)
	}
}

func (b *contourBuilder) Stop(closeLoop bool) {
	b.flush(closeLoop)
}

// flattenPath converts a parsed path into flat polygonal contours, one per
// sub-path.
func flattenPath(p rasterx.Path) []scene.Contour {
	var b contourBuilder
	p.AddTo(&b)
	b.flush(false)
	return b.contours
}
