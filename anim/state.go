// Package anim owns the per-frame animation state of the installation:
// the tree/galaxy expansion factor, the persistent hue offset, the smoothed
// background color and the orbit angles. One State is updated once per
// rendered frame from the latest gesture sample; everything downstream
// consumes the immutable Snapshot it exports.
package anim

import (
	stdmath "math"

	"github.com/lucasb-eyer/go-colorful"

	"hanami/core"
	"hanami/gesture"
	"hanami/math"
)

const (
	expansionRate  = 2.0 // 1/s, approach rate toward the expansion target
	hueRate        = 0.9 // rad/s while the cycle gesture is held
	backgroundRate = 2.0 // 1/s, matches expansionRate so the sky keeps pace

	// Background tint driven by the hue offset: degrees of HSL hue per
	// radian of particle hue rotation, kept slow and dim so the sky only
	// hints at the cycling.
	hueTintScale      = 15.0
	hueTintSaturation = 0.45
	hueTintLightness  = 0.06

	deadZone    = 0.15 // per-axis, around pointer center (0.5, 0.5)
	azimuthRate = 2.0  // rad/s at full deflection
	polarRate   = 1.5  // rad/s at full deflection
	polarMin    = 0.5
	polarMax    = stdmath.Pi - 0.5
)

// State is the mutable animation state. It is owned by the render loop and
// must only be touched from there.
type State struct {
	palette Palette

	time      float32
	expansion float32
	expTarget float32
	hueOffset float32
	reveal    bool

	background core.Color

	azimuth float32
	polar   float32
	pointer math.Vec2
}

// Snapshot is the immutable per-frame view handed to the renderer, gallery,
// audio and HUD.
type Snapshot struct {
	Time       float32
	Expansion  float32
	HueOffset  float32
	Reveal     bool
	Background core.Color
	Azimuth    float32
	Polar      float32
	Glow       float32
}

// Dispersed reports whether the scene currently reads as galaxy rather
// than tree.
func (s Snapshot) Dispersed() bool {
	return s.Expansion >= 0.5
}

func NewState(p Palette) *State {
	return &State{
		palette:    p,
		background: p.TreeSky,
		polar:      1.15,
		pointer:    math.Vec2{X: 0.5, Y: 0.5},
	}
}

// Update advances the state by dt using the given gesture sample. A
// non-finite or negative dt rejects the whole frame; a non-finite pointer
// is ignored while the gesture still applies.
func (s *State) Update(frame gesture.Frame, dt float32) {
	if !math.IsFinite(dt) || dt < 0 {
		return
	}
	s.time += dt

	// The pointer is only absorbed while tracking reports a good sample;
	// dropouts hold the last reading so the camera does not jump.
	if frame.Tracking && math.IsFinite(frame.Pointer.X) && math.IsFinite(frame.Pointer.Y) {
		s.pointer = frame.Pointer
	}

	s.reveal = frame.Gesture == gesture.OneFinger

	switch frame.Gesture {
	case gesture.Fist:
		s.expTarget = 0
	case gesture.OpenHand:
		s.expTarget = 1
	case gesture.TwoFingers:
		s.hueOffset += hueRate * dt
	}

	s.expansion = math.Damp(s.expansion, s.expTarget, expansionRate, dt)
	s.approachBackground(dt)
	s.steerCamera(dt)
}

func (s *State) approachBackground(dt float32) {
	target := s.palette.TreeSky.Lerp(s.palette.GalaxySky, s.expansion)

	hue := stdmath.Mod(float64(s.hueOffset)*hueTintScale, 360)
	tint := colorful.Hsl(hue, hueTintSaturation, hueTintLightness)
	target.R = math.Clamp(target.R+float32(tint.R), 0, 1)
	target.G = math.Clamp(target.G+float32(tint.G), 0, 1)
	target.B = math.Clamp(target.B+float32(tint.B), 0, 1)

	s.background.R = math.Damp(s.background.R, target.R, backgroundRate, dt)
	s.background.G = math.Damp(s.background.G, target.G, backgroundRate, dt)
	s.background.B = math.Damp(s.background.B, target.B, backgroundRate, dt)
	s.background.A = 1
}

func (s *State) steerCamera(dt float32) {
	s.azimuth += axisRate(s.pointer.X) * azimuthRate * dt
	s.polar += axisRate(s.pointer.Y) * polarRate * dt
	s.polar = math.Clamp(s.polar, polarMin, polarMax)
}

// axisRate converts one pointer axis into a signed rate factor in [-1,1]:
// zero inside the dead zone, then a linear ramp reaching full rate at the
// screen edge.
func axisRate(v float32) float32 {
	d := v - 0.5
	excess := float32(stdmath.Abs(float64(d))) - deadZone
	if excess <= 0 {
		return 0
	}
	n := excess / (0.5 - deadZone)
	if n > 1 {
		n = 1
	}
	if d < 0 {
		return -n
	}
	return n
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Time:       s.time,
		Expansion:  s.expansion,
		HueOffset:  s.hueOffset,
		Reveal:     s.reveal,
		Background: s.background,
		Azimuth:    s.azimuth,
		Polar:      s.polar,
		Glow:       s.palette.Glow,
	}
}
