package scene

import (
	"errors"
	"fmt"
)

// Kind identifies the geometry type an Object carries.
type Kind int

const (
	KindCurve Kind = iota
	KindStrokePath
	KindMesh
)

func (k Kind) String() string {
	switch k {
	case KindCurve:
		return "CURVE"
	case KindStrokePath:
		return "STROKE_PATH"
	case KindMesh:
		return "MESH"
	}
	return "UNKNOWN"
}

// Object is a named entry in the scene. Exactly one of Curve or Mesh is
// non-nil, matching Kind. Curve and stroke-path objects both carry CurveData;
// the kind decides whether fill settings apply.
type Object struct {
	name     string
	kind     Kind
	Curve    *CurveData
	Mesh     *MeshData
	selected bool
	inEdit   bool
}

// Name returns the scene-unique object name.
func (o *Object) Name() string { return o.name }

// Kind returns the object's geometry type.
func (o *Object) Kind() Kind { return o.kind }

// Selected reports whether the object is in the current selection set.
func (o *Object) Selected() bool { return o.selected }

// BeginEdit puts the object into edit mode. Nested calls are not tracked;
// EndEdit always leaves edit mode.
func (o *Object) BeginEdit() { o.inEdit = true }

// EndEdit returns the object to object mode.
func (o *Object) EndEdit() { o.inEdit = false }

// InEdit reports whether the object is currently in edit mode.
func (o *Object) InEdit() bool { return o.inEdit }

// Scene is the single working scene: an ordered registry of named objects
// plus selection and active-object state. It also tracks orphaned data
// blocks left behind by removed objects, which Purge reclaims.
type Scene struct {
	objects  []*Object
	active   *Object
	counters map[string]int

	orphans int
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{counters: make(map[string]int)}
}

// uniqueName returns name, or name.001, name.002, ... if already taken.
func (s *Scene) uniqueName(name string) string {
	if name == "" {
		name = "Object"
	}
	n := s.counters[name]
	s.counters[name] = n + 1
	if n == 0 {
		return name
	}
	return fmt.Sprintf("%s.%03d", name, n)
}

// AddCurve creates a curve object with empty curve data.
func (s *Scene) AddCurve(name string) *Object {
	o := &Object{name: s.uniqueName(name), kind: KindCurve, Curve: NewCurveData()}
	s.objects = append(s.objects, o)
	return o
}

// AddStrokePath creates a stroke-path object. It shares the curve data
// representation but carries no fill semantics.
func (s *Scene) AddStrokePath(name string) *Object {
	o := &Object{name: s.uniqueName(name), kind: KindStrokePath, Curve: NewCurveData()}
	s.objects = append(s.objects, o)
	return o
}

// SetMeshData converts an object to a mesh in place: the object keeps its
// name and scene identity, its previous data block becomes an orphan.
func (s *Scene) SetMeshData(o *Object, md *MeshData) {
	if o.Curve != nil || o.Mesh != nil {
		s.orphans++
	}
	o.Curve = nil
	o.Mesh = md
	o.kind = KindMesh
}

// Objects returns the scene's objects in insertion order.
func (s *Scene) Objects() []*Object {
	out := make([]*Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Len returns the number of objects in the scene.
func (s *Scene) Len() int { return len(s.objects) }

// Contains reports whether o is still a live scene entry.
func (s *Scene) Contains(o *Object) bool {
	for _, x := range s.objects {
		if x == o {
			return true
		}
	}
	return false
}

// Get returns the object with the given name, or nil.
func (s *Scene) Get(name string) *Object {
	for _, x := range s.objects {
		if x.name == name {
			return x
		}
	}
	return nil
}

// Remove deletes the object from the scene. Its data block becomes an
// orphan until the next Purge. Removing an object that is not in the scene
// is a no-op.
func (s *Scene) Remove(o *Object) {
	for i, x := range s.objects {
		if x == o {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			s.orphans++
			if s.active == o {
				s.active = nil
			}
			return
		}
	}
}

// Purge frees orphaned data blocks and returns how many were reclaimed.
// It refuses to run while any object is in edit mode.
func (s *Scene) Purge() (int, error) {
	for _, o := range s.objects {
		if o.inEdit {
			return 0, errors.New("purge: object " + o.name + " is in edit mode")
		}
	}
	n := s.orphans
	s.orphans = 0
	return n, nil
}

// OrphanCount returns the number of data blocks awaiting Purge.
func (s *Scene) OrphanCount() int { return s.orphans }

// Reset removes every object and purges orphaned data, leaving the scene
// empty for the next import. Safe on an already-empty scene. A purge
// failure only delays memory reclamation and is swallowed.
func (s *Scene) Reset() {
	for _, o := range s.objects {
		o.selected = false
		o.inEdit = false
		s.orphans++
	}
	s.objects = s.objects[:0]
	s.active = nil
	// Name counters live only until the next reset: with every object and
	// data block gone there is nothing left to collide with, and restarting
	// them keeps artifact-facing names deterministic across batch runs.
	s.counters = make(map[string]int)
	_, _ = s.Purge()
}

// DeselectAll clears the selection set.
func (s *Scene) DeselectAll() {
	for _, o := range s.objects {
		o.selected = false
	}
}

// Select adds o to the selection set.
func (s *Scene) Select(o *Object) { o.selected = true }

// SelectOnly makes the selection set exactly {o}.
func (s *Scene) SelectOnly(o *Object) {
	s.DeselectAll()
	o.selected = true
}

// Selected returns the selected objects in scene order.
func (s *Scene) Selected() []*Object {
	var out []*Object
	for _, o := range s.objects {
		if o.selected {
			out = append(out, o)
		}
	}
	return out
}

// SetActive marks o as the active object.
func (s *Scene) SetActive(o *Object) { s.active = o }

// Active returns the active object, or nil.
func (s *Scene) Active() *Object { return s.active }
