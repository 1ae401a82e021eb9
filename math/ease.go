package math

import "math"

// CubicEaseInOut maps t onto an S-curve: slow start, fast middle, slow end.
// Inputs outside [0,1] are clamped.
func CubicEaseInOut(t float32) float32 {
	t = Clamp(t, 0, 1)
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Clamp limits v to [min, max].
func Clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Damp moves value toward target by the exponential step
// value += (target - value) * rate * dt.
// The step factor is capped at 1 so a large dt lands exactly on the target
// instead of overshooting. Non-finite or negative inputs leave value
// unchanged; the return value is always finite if value was.
func Damp(value, target, rate, dt float32) float32 {
	if !IsFinite(target) || !IsFinite(rate) || !IsFinite(dt) || dt < 0 || rate < 0 {
		return value
	}
	k := rate * dt
	if k > 1 {
		k = 1
	}
	return value + (target-value)*k
}

// DampVec3 applies Damp component-wise.
func DampVec3(value, target Vec3, rate, dt float32) Vec3 {
	return Vec3{
		X: Damp(value.X, target.X, rate, dt),
		Y: Damp(value.Y, target.Y, rate, dt),
		Z: Damp(value.Z, target.Z, rate, dt),
	}
}
