package tree

import (
	"hanami/core"
	"hanami/math"
)

// ParticleSet holds the flattened attribute arrays for one material class
// (wood or blossom). All arrays are index-aligned: entry i in every array
// describes the same particle. Built once by Generate, immutable afterwards,
// laid out ready for GPU upload (tightly packed float32).
type ParticleSet struct {
	Positions []float32 // xyz per particle — rest position, tree configuration
	Targets   []float32 // xyz per particle — galaxy configuration destination
	Colors    []float32 // rgb per particle
	Sizes     []float32 // base sprite scale, world units
	Phases    []float32 // sprite rotation offset in radians
	Drifts    []float32 // xyz per particle — direction for secondary motion
}

func newParticleSet(hint int) *ParticleSet {
	return &ParticleSet{
		Positions: make([]float32, 0, hint*3),
		Targets:   make([]float32, 0, hint*3),
		Colors:    make([]float32, 0, hint*3),
		Sizes:     make([]float32, 0, hint),
		Phases:    make([]float32, 0, hint),
		Drifts:    make([]float32, 0, hint*3),
	}
}

// Count returns the number of particles in the set.
func (s *ParticleSet) Count() int { return len(s.Sizes) }

func (s *ParticleSet) push(pos, target math.Vec3, c core.Color, size, phase float32, drift math.Vec3) {
	s.Positions = append(s.Positions, pos.X, pos.Y, pos.Z)
	s.Targets = append(s.Targets, target.X, target.Y, target.Z)
	s.Colors = append(s.Colors, c.R, c.G, c.B)
	s.Sizes = append(s.Sizes, size)
	s.Phases = append(s.Phases, phase)
	s.Drifts = append(s.Drifts, drift.X, drift.Y, drift.Z)
}

// Position returns particle i's rest position.
func (s *ParticleSet) Position(i int) math.Vec3 {
	return math.Vec3{X: s.Positions[i*3], Y: s.Positions[i*3+1], Z: s.Positions[i*3+2]}
}

// Target returns particle i's galaxy destination.
func (s *ParticleSet) Target(i int) math.Vec3 {
	return math.Vec3{X: s.Targets[i*3], Y: s.Targets[i*3+1], Z: s.Targets[i*3+2]}
}

// ColorAt returns particle i's base color with full alpha.
func (s *ParticleSet) ColorAt(i int) core.Color {
	return core.Color{R: s.Colors[i*3], G: s.Colors[i*3+1], B: s.Colors[i*3+2], A: 1}
}
