package scene

import (
	"testing"
)

func TestUniqueNames(t *testing.T) {
	s := New()

	tests := []struct {
		add  string
		want string
	}{
		{"O", "O"},
		{"O", "O.001"},
		{"O", "O.002"},
		{"A", "A"},
		{"", "Object"},
	}
	for _, tt := range tests {
		o := s.AddCurve(tt.add)
		if o.Name() != tt.want {
			t.Errorf("AddCurve(%q) name = %q, want %q", tt.add, o.Name(), tt.want)
		}
	}
}

func TestResetLeavesEmptyScene(t *testing.T) {
	s := New()
	a := s.AddCurve("a")
	s.AddStrokePath("b")
	s.Select(a)
	s.SetActive(a)
	a.BeginEdit()

	s.Reset()

	if s.Len() != 0 {
		t.Fatalf("Len() = %d after Reset, want 0", s.Len())
	}
	if s.Active() != nil {
		t.Errorf("Active() = %v after Reset, want nil", s.Active())
	}
	if s.OrphanCount() != 0 {
		t.Errorf("OrphanCount() = %d after Reset, want 0 (purged)", s.OrphanCount())
	}

	// Idempotent: resetting an empty scene is safe.
	s.Reset()
	if s.Len() != 0 {
		t.Errorf("Len() = %d after second Reset, want 0", s.Len())
	}

	// Name counters restart after a reset.
	if got := s.AddCurve("a").Name(); got != "a" {
		t.Errorf("first name after Reset = %q, want %q", got, "a")
	}
}

func TestRemoveAndPurge(t *testing.T) {
	s := New()
	a := s.AddCurve("a")
	b := s.AddCurve("b")

	s.Remove(a)
	if s.Contains(a) {
		t.Error("Contains(a) = true after Remove")
	}
	if !s.Contains(b) {
		t.Error("Contains(b) = false, want true")
	}
	if s.OrphanCount() != 1 {
		t.Fatalf("OrphanCount() = %d, want 1", s.OrphanCount())
	}

	n, err := s.Purge()
	if err != nil {
		t.Fatalf("Purge() error = %v", err)
	}
	if n != 1 {
		t.Errorf("Purge() = %d, want 1", n)
	}

	// Removing an object twice is a no-op.
	s.Remove(a)
	if s.OrphanCount() != 0 {
		t.Errorf("OrphanCount() = %d after double remove, want 0", s.OrphanCount())
	}
}

func TestPurgeRefusesEditMode(t *testing.T) {
	s := New()
	a := s.AddCurve("a")
	s.Remove(s.AddCurve("b"))
	a.BeginEdit()

	if _, err := s.Purge(); err == nil {
		t.Fatal("Purge() error = nil while object in edit mode, want error")
	}
	if s.OrphanCount() != 1 {
		t.Errorf("OrphanCount() = %d, want 1 (failed purge keeps orphans)", s.OrphanCount())
	}

	a.EndEdit()
	if _, err := s.Purge(); err != nil {
		t.Fatalf("Purge() error = %v after EndEdit", err)
	}
}

func TestSelectionAndActive(t *testing.T) {
	s := New()
	a := s.AddCurve("a")
	b := s.AddCurve("b")

	s.Select(a)
	s.Select(b)
	if got := len(s.Selected()); got != 2 {
		t.Fatalf("Selected() len = %d, want 2", got)
	}

	s.SelectOnly(b)
	sel := s.Selected()
	if len(sel) != 1 || sel[0] != b {
		t.Fatalf("SelectOnly(b): Selected() = %v, want exactly [b]", sel)
	}

	s.SetActive(b)
	if s.Active() != b {
		t.Errorf("Active() != b")
	}
	s.Remove(b)
	if s.Active() != nil {
		t.Errorf("Active() = %v after removing active object, want nil", s.Active())
	}
}

func TestSetMeshDataConvertsInPlace(t *testing.T) {
	s := New()
	o := s.AddCurve("glyph")
	name := o.Name()

	md := &MeshData{Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, Indices: []uint32{0, 1, 2}}
	s.SetMeshData(o, md)

	if o.Kind() != KindMesh {
		t.Fatalf("Kind() = %v, want MESH", o.Kind())
	}
	if o.Curve != nil {
		t.Error("Curve != nil after conversion")
	}
	if o.Name() != name {
		t.Errorf("Name() = %q, want identity preserved as %q", o.Name(), name)
	}
	if s.OrphanCount() != 1 {
		t.Errorf("OrphanCount() = %d, want 1 (replaced curve data)", s.OrphanCount())
	}
}

func TestMeshDataBounds(t *testing.T) {
	m := &MeshData{Vertices: []float32{
		-1, 0, 0,
		2, 3, 0,
		0, -5, 4,
	}}
	min, max, ok := m.Bounds()
	if !ok {
		t.Fatal("Bounds() ok = false")
	}
	wantMin := [3]float32{-1, -5, 0}
	wantMax := [3]float32{2, 3, 4}
	if min != wantMin || max != wantMax {
		t.Errorf("Bounds() = %v, %v, want %v, %v", min, max, wantMin, wantMax)
	}

	var empty MeshData
	if _, _, ok := empty.Bounds(); ok {
		t.Error("Bounds() ok = true for empty mesh, want false")
	}
}
