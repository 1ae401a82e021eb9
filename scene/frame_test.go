package scene

import (
	stdmath "math"
	"testing"

	"hanami/math"
)

func TestCreatePhotoFrame(t *testing.T) {
	border := float32(0.08)
	depth := float32(0.05)
	m := CreatePhotoFrame(border, depth)

	// 4 edges x 3 walls, 4 dedicated vertices per wall.
	if got := len(m.Vertices); got != 48 {
		t.Errorf("expected 48 vertices, got %d", got)
	}
	if got := len(m.Indices); got != 72 {
		t.Errorf("expected 72 indices, got %d", got)
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range: %d", i, idx)
		}
	}

	var maxZ, maxExtent float32
	for _, v := range m.Vertices {
		if !finite(v.Position.X) || !finite(v.Position.Y) || !finite(v.Position.Z) {
			t.Fatalf("non-finite vertex position %+v", v.Position)
		}
		if v.Position.Z > maxZ {
			maxZ = v.Position.Z
		}
		if a := abs32(v.Position.X); a > maxExtent {
			maxExtent = a
		}
	}
	if abs32(maxZ-depth) > 0.0001 {
		t.Errorf("expected frame depth %v, got %v", depth, maxZ)
	}
	if abs32(maxExtent-(0.5+border)) > 0.0001 {
		t.Errorf("expected outer extent %v, got %v", 0.5+border, maxExtent)
	}
}

func TestFrameMeshFallsBack(t *testing.T) {
	if _, err := LoadFrameMesh("/nonexistent/frame.glb"); err == nil {
		t.Error("expected error for missing frame model")
	}
	if m := FrameMesh(""); m.Name != "PhotoFrame" {
		t.Errorf("expected procedural frame without a path, got %q", m.Name)
	}
	if m := FrameMesh("/nonexistent/frame.glb"); m.Name != "PhotoFrame" {
		t.Errorf("expected procedural fallback on load failure, got %q", m.Name)
	}
}

func TestCreateQuad(t *testing.T) {
	q := CreateQuad()
	if len(q.Vertices) != 4 || len(q.Indices) != 6 {
		t.Fatalf("expected 4 vertices / 6 indices, got %d / %d", len(q.Vertices), len(q.Indices))
	}
	for _, v := range q.Vertices {
		if v.Position.Z != 0 {
			t.Errorf("picture quad must be flat, got z=%v", v.Position.Z)
		}
		if v.Normal != math.Vec3Front {
			t.Errorf("expected +Z normal, got %+v", v.Normal)
		}
	}
}

func finite(v float32) bool {
	f := float64(v)
	return !stdmath.IsNaN(f) && !stdmath.IsInf(f, 0)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
