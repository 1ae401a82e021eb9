package core

import (
	stdmath "math"
	"testing"

	"hanami/math"
)

func near(a, b float32) bool {
	return stdmath.Abs(float64(a-b)) < 1e-3
}

func vecNear(a, b math.Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func colorNear(a, b Color) bool {
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B) && near(a.A, b.A)
}

func TestColorLerp(t *testing.T) {
	a := Color{R: 0, G: 0.2, B: 1, A: 1}
	b := Color{R: 1, G: 0.8, B: 0, A: 0.5}

	if got := a.Lerp(b, 0); !colorNear(got, a) {
		t.Errorf("Lerp(0): expected %+v, got %+v", a, got)
	}
	if got := a.Lerp(b, 1); !colorNear(got, b) {
		t.Errorf("Lerp(1): expected %+v, got %+v", b, got)
	}
	mid := a.Lerp(b, 0.5)
	if !colorNear(mid, Color{R: 0.5, G: 0.5, B: 0.5, A: 0.75}) {
		t.Errorf("Lerp(0.5): got %+v", mid)
	}

	// Out-of-range t clamps to the endpoints.
	if got := a.Lerp(b, -2); !colorNear(got, a) {
		t.Errorf("Lerp(-2): expected %+v, got %+v", a, got)
	}
	if got := a.Lerp(b, 3); !colorNear(got, b) {
		t.Errorf("Lerp(3): expected %+v, got %+v", b, got)
	}
}

func TestNewTransformIdentity(t *testing.T) {
	tr := NewTransform()
	if got := tr.GetMatrix(); got != math.Mat4Identity() {
		t.Errorf("identity transform: expected identity matrix, got %v", got)
	}
}

func TestTransformGetMatrixOrder(t *testing.T) {
	tr := Transform{
		Position: math.Vec3{X: 5},
		Rotation: math.QuaternionFromAxisAngle(math.Vec3Up, stdmath.Pi/2),
		Scale:    math.Vec3{X: 2, Y: 2, Z: 2},
	}
	m := tr.GetMatrix()

	// The local origin lands exactly on Position: translation applies last
	// and is never rotated or scaled.
	if got := m.MulVec3(math.Vec3Zero); !vecNear(got, math.Vec3{X: 5}) {
		t.Errorf("origin: expected (5,0,0), got %v", got)
	}

	// A local +X point is scaled to 2, yawed onto -Z, then offset.
	if got := m.MulVec3(math.Vec3Right); !vecNear(got, math.Vec3{X: 5, Z: -2}) {
		t.Errorf("unit x: expected (5,0,-2), got %v", got)
	}
}

func TestTransformAxes(t *testing.T) {
	tr := NewTransform()
	tr.Rotation = math.QuaternionFromAxisAngle(math.Vec3Up, stdmath.Pi/2)

	if got := tr.GetForward(); !vecNear(got, math.Vec3Right) {
		t.Errorf("forward after quarter yaw: expected %v, got %v", math.Vec3Right, got)
	}
	if got := tr.GetRight(); !vecNear(got, math.Vec3{Z: -1}) {
		t.Errorf("right after quarter yaw: expected (0,0,-1), got %v", got)
	}
	if got := tr.GetUp(); !vecNear(got, math.Vec3Up) {
		t.Errorf("up after quarter yaw: expected %v, got %v", math.Vec3Up, got)
	}
}
