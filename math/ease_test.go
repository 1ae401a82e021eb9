package math

import (
	stdmath "math"
	"testing"
)

func TestCubicEaseInOutEndpoints(t *testing.T) {
	if got := CubicEaseInOut(0); got != 0 {
		t.Errorf("CubicEaseInOut(0): expected 0, got %v", got)
	}
	if got := CubicEaseInOut(1); got != 1 {
		t.Errorf("CubicEaseInOut(1): expected 1, got %v", got)
	}
	if got := CubicEaseInOut(0.5); stdmath.Abs(float64(got)-0.5) > 0.0001 {
		t.Errorf("CubicEaseInOut(0.5): expected 0.5, got %v", got)
	}
}

func TestCubicEaseInOutClamps(t *testing.T) {
	if got := CubicEaseInOut(-2); got != 0 {
		t.Errorf("CubicEaseInOut(-2): expected 0, got %v", got)
	}
	if got := CubicEaseInOut(3); got != 1 {
		t.Errorf("CubicEaseInOut(3): expected 1, got %v", got)
	}
}

func TestCubicEaseInOutMonotone(t *testing.T) {
	prev := CubicEaseInOut(0)
	for i := 1; i <= 100; i++ {
		cur := CubicEaseInOut(float32(i) / 100)
		if cur < prev {
			t.Errorf("CubicEaseInOut not monotone at t=%v: %v < %v", float32(i)/100, cur, prev)
		}
		prev = cur
	}
}

func TestLerpBlendEndpoints(t *testing.T) {
	// Mirrors the particle blend mix(rest, target, ease(expansion)): fully
	// collapsed sits on the rest value, fully dispersed on the target.
	if got := Lerp(3, 7, CubicEaseInOut(0)); got != 3 {
		t.Errorf("blend at 0: expected rest 3, got %v", got)
	}
	if got := Lerp(3, 7, CubicEaseInOut(1)); got != 7 {
		t.Errorf("blend at 1: expected target 7, got %v", got)
	}

	rest := Vec3{X: 1, Y: 2, Z: 3}
	target := Vec3{X: -4, Y: 8, Z: 0}
	if got := rest.Lerp(target, CubicEaseInOut(0)); got != rest {
		t.Errorf("vec blend at 0: expected %v, got %v", rest, got)
	}
	if got := rest.Lerp(target, CubicEaseInOut(1)); got != target {
		t.Errorf("vec blend at 1: expected %v, got %v", target, got)
	}
}

func TestDampConverges(t *testing.T) {
	// 300 frames at 60 Hz. Past ~400 frames the remaining gap falls under
	// float32 resolution and the value legitimately stops moving, so the
	// strict-increase window stays below that.
	value := float32(0)
	for i := 0; i < 300; i++ {
		next := Damp(value, 1, 2.0, 1.0/60.0)
		if next <= value {
			t.Fatalf("Damp: expected strict increase at step %d, got %v -> %v", i, value, next)
		}
		if next > 1 {
			t.Fatalf("Damp: overshoot at step %d: %v", i, next)
		}
		value = next
	}
	if value < 0.99 {
		t.Errorf("Damp: expected convergence near 1 after 5s, got %v", value)
	}
}

func TestDampLargeStepLandsOnTarget(t *testing.T) {
	if got := Damp(0, 1, 2.0, 10); got != 1 {
		t.Errorf("Damp with huge dt: expected exactly 1, got %v", got)
	}
}

func TestDampRejectsNonFinite(t *testing.T) {
	nan := float32(stdmath.NaN())
	inf := float32(stdmath.Inf(1))

	if got := Damp(0.5, nan, 2.0, 0.016); got != 0.5 {
		t.Errorf("Damp with NaN target: expected unchanged 0.5, got %v", got)
	}
	if got := Damp(0.5, inf, 2.0, 0.016); got != 0.5 {
		t.Errorf("Damp with Inf target: expected unchanged 0.5, got %v", got)
	}
	if got := Damp(0.5, 1, 2.0, nan); got != 0.5 {
		t.Errorf("Damp with NaN dt: expected unchanged 0.5, got %v", got)
	}
	if got := Damp(0.5, 1, 2.0, -1); got != 0.5 {
		t.Errorf("Damp with negative dt: expected unchanged 0.5, got %v", got)
	}
}

func TestDampVec3(t *testing.T) {
	got := DampVec3(Vec3{0, 0, 0}, Vec3{1, 2, 3}, 1.0, 0.5)
	expected := Vec3{0.5, 1, 1.5}
	if got.Distance(expected) > 0.0001 {
		t.Errorf("DampVec3: expected %v, got %v", expected, got)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Errorf("IsFinite(1.5): expected true")
	}
	if IsFinite(float32(stdmath.NaN())) {
		t.Errorf("IsFinite(NaN): expected false")
	}
	if IsFinite(float32(stdmath.Inf(-1))) {
		t.Errorf("IsFinite(-Inf): expected false")
	}
}

func BenchmarkCubicEaseInOut(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = CubicEaseInOut(float32(i%1000) / 1000)
	}
}

func BenchmarkDamp(b *testing.B) {
	v := float32(0)
	for i := 0; i < b.N; i++ {
		v = Damp(v, 1, 2.0, 0.016)
	}
}
