package scene

import (
	stdmath "math"
	"testing"

	"hanami/anim"
	"hanami/math"
)

func TestOrbitCameraStartsAtTreeFraming(t *testing.T) {
	cam := NewOrbitCamera(math.Vec3{Y: 12}, 16.0/9.0)
	if got := cam.Distance(); stdmath.Abs(float64(got-orbitNearDistance)) > 0.001 {
		t.Errorf("expected initial distance %v, got %v", float32(orbitNearDistance), got)
	}
}

func TestOrbitCameraSpringConverges(t *testing.T) {
	cam := NewOrbitCamera(math.Vec3{Y: 12}, 16.0/9.0)

	dispersed := anim.Snapshot{Expansion: 1, Polar: 1.15}
	for i := 0; i < 600; i++ {
		cam.Track(dispersed)
	}
	if got := cam.Distance(); stdmath.Abs(float64(got-orbitFarDistance)) > 1 {
		t.Errorf("expected distance near %v after dispersal, got %v", float32(orbitFarDistance), got)
	}

	assembled := anim.Snapshot{Expansion: 0, Polar: 1.15}
	for i := 0; i < 600; i++ {
		cam.Track(assembled)
	}
	if got := cam.Distance(); stdmath.Abs(float64(got-orbitNearDistance)) > 1 {
		t.Errorf("expected distance near %v after collapse, got %v", float32(orbitNearDistance), got)
	}
}

func TestOrbitCameraAzimuthPlacement(t *testing.T) {
	target := math.Vec3{Y: 12}
	cam := NewOrbitCamera(target, 16.0/9.0)

	// Horizontal orbit a quarter turn: the camera should sit on +X.
	cam.Track(anim.Snapshot{Azimuth: stdmath.Pi / 2, Polar: stdmath.Pi / 2})
	d := cam.Distance()
	if got := cam.Position.X - target.X; stdmath.Abs(float64(got-d)) > 0.01 {
		t.Errorf("expected X offset %v, got %v", d, got)
	}
	if got := cam.Position.Z - target.Z; stdmath.Abs(float64(got)) > 0.01 {
		t.Errorf("expected Z offset 0, got %v", got)
	}
	if got := cam.Position.Y - target.Y; stdmath.Abs(float64(got)) > 0.01 {
		t.Errorf("expected level with target at polar pi/2, got Y offset %v", got)
	}
}

func TestOrbitCameraLooksAtTarget(t *testing.T) {
	target := math.Vec3{Y: 12}
	cam := NewOrbitCamera(target, 16.0/9.0)
	cam.Track(anim.Snapshot{Azimuth: 0.8, Polar: 1.3})

	// The target must land straight ahead in view space: x=y=0, z=-distance.
	viewTarget := cam.GetViewMatrix().MulVec3(target)
	if stdmath.Abs(float64(viewTarget.X)) > 0.001 || stdmath.Abs(float64(viewTarget.Y)) > 0.001 {
		t.Errorf("expected target centered in view, got (%v, %v)", viewTarget.X, viewTarget.Y)
	}
	if got := -viewTarget.Z; stdmath.Abs(float64(got-cam.Distance())) > 0.01 {
		t.Errorf("expected view depth %v, got %v", cam.Distance(), got)
	}
}

func TestCameraAspectUpdate(t *testing.T) {
	cam := NewCamera(1.0, 1.0, 0.1, 100)
	before := cam.GetProjectionMatrix()
	cam.UpdateAspectRatio(1920, 1080)
	after := cam.GetProjectionMatrix()
	if before == after {
		t.Error("expected projection matrix to change with aspect ratio")
	}
	cam.UpdateAspectRatio(100, 0)
	if got := cam.AspectRatio; stdmath.Abs(float64(got)-1920.0/1080.0) > 0.0001 {
		t.Errorf("zero height must not change aspect, got %v", got)
	}
}
