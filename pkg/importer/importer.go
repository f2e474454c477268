// Package importer turns SVG files into scene objects. Two import
// capabilities exist: curve-based (parametric curves, supports fill rules
// with holes) and stroke-path (annotation-style strokes, no fill). A Mode
// selects which capabilities are attempted and in which order.
package importer

import "github.com/hellenic-development/svg-extruder/pkg/scene"

// Mode selects the import strategy.
type Mode string

const (
	ModeCurve      Mode = "curve"
	ModeStrokePath Mode = "gp"
	ModeAuto       Mode = "auto"
)

// ParseMode maps a mode string to a Mode. "curve" and "gp" map directly;
// anything else selects auto.
func ParseMode(s string) Mode {
	switch s {
	case "curve":
		return ModeCurve
	case "gp":
		return ModeStrokePath
	}
	return ModeAuto
}

// Logger receives fallback diagnostics. A nil Logger means silent operation.
type Logger interface {
	Warnf(format string, args ...any)
}

// ImportFunc imports one file into the scene and returns the objects it
// created. A parse failure returns an error and no objects.
type ImportFunc func(sc *scene.Scene, path string) ([]*scene.Object, error)

// Importer holds the available import capabilities. Stroke is optional: a
// nil Stroke means the host has no stroke-path importer and requests for it
// fall back to the curve importer.
type Importer struct {
	Curve  ImportFunc
	Stroke ImportFunc
	Logger Logger
}

// New returns an Importer with both native capabilities wired.
func New() *Importer {
	return &Importer{Curve: CurveImport, Stroke: StrokePathImport}
}

func (im *Importer) warnf(format string, args ...any) {
	if im.Logger != nil {
		im.Logger.Warnf(format, args...)
	}
}

type attempt struct {
	name string
	fn   ImportFunc
}

// attempts returns the ordered fallback chain for a mode. The chain is
// evaluated until an attempt yields a non-empty object set.
func (im *Importer) attempts(mode Mode) []attempt {
	switch mode {
	case ModeStrokePath:
		if im.Stroke == nil {
			// Host has no stroke-path importer; curves carry the file.
			return []attempt{{"curve", im.Curve}}
		}
		return []attempt{{"stroke-path", im.Stroke}}
	case ModeAuto:
		chain := []attempt{{"curve", im.Curve}}
		if im.Stroke != nil {
			chain = append(chain, attempt{"stroke-path", im.Stroke})
		}
		return chain
	default:
		return []attempt{{"curve", im.Curve}}
	}
}

// Import runs the fallback chain for mode against path. It returns the
// objects created by the first attempt that produced any; an empty result
// means every attempt failed or produced nothing, which callers treat as a
// recoverable skip. Attempt errors are downgraded to warnings because the
// next attempt may still succeed.
func (im *Importer) Import(sc *scene.Scene, path string, mode Mode) []*scene.Object {
	if mode == ModeStrokePath && im.Stroke == nil {
		im.warnf("stroke-path importer unavailable, falling back to curve import")
	}
	for _, a := range im.attempts(mode) {
		objs, err := a.fn(sc, path)
		if err != nil {
			im.warnf("%s import of %s: %v", a.name, path, err)
			continue
		}
		if len(objs) > 0 {
			return objs
		}
	}
	return nil
}
