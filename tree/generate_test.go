package tree

import (
	stdmath "math"
	"testing"

	"hanami/math"
)

func checkParallelArrays(t *testing.T, name string, s *ParticleSet) {
	t.Helper()
	n := s.Count()
	if n == 0 {
		t.Fatalf("%s: expected particles, got none", name)
	}
	if len(s.Positions) != n*3 {
		t.Errorf("%s: expected %d position floats, got %d", name, n*3, len(s.Positions))
	}
	if len(s.Targets) != n*3 {
		t.Errorf("%s: expected %d target floats, got %d", name, n*3, len(s.Targets))
	}
	if len(s.Colors) != n*3 {
		t.Errorf("%s: expected %d color floats, got %d", name, n*3, len(s.Colors))
	}
	if len(s.Phases) != n {
		t.Errorf("%s: expected %d phases, got %d", name, n, len(s.Phases))
	}
	if len(s.Drifts) != n*3 {
		t.Errorf("%s: expected %d drift floats, got %d", name, n*3, len(s.Drifts))
	}
}

func TestGenerateValidation(t *testing.T) {
	cases := []struct {
		name string
		p    Params
	}{
		{"negative depth", Params{Depth: -1, BranchLength: 10}},
		{"zero length", Params{Depth: 2, BranchLength: 0}},
		{"negative length", Params{Depth: 2, BranchLength: -5}},
		{"nan length", Params{Depth: 2, BranchLength: float32(stdmath.NaN())}},
		{"inf length", Params{Depth: 2, BranchLength: float32(stdmath.Inf(1))}},
		{"nan start", Params{Depth: 2, BranchLength: 10, Start: math.Vec3{X: float32(stdmath.NaN())}}},
	}
	for _, tc := range cases {
		if _, err := Generate(tc.p); err == nil {
			t.Errorf("%s: expected validation error, got nil", tc.name)
		}
	}
}

func TestGenerateParallelArrays(t *testing.T) {
	tr, err := Generate(Params{Depth: 3, BranchLength: 10, Seed: 7})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	checkParallelArrays(t, "wood", tr.Wood)
	checkParallelArrays(t, "blossom", tr.Blossom)
}

func TestGenerateTargetsOnShell(t *testing.T) {
	tr, err := Generate(Params{Depth: 2, BranchLength: 10, Seed: 11})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, s := range []*ParticleSet{tr.Wood, tr.Blossom} {
		for i := 0; i < s.Count(); i++ {
			r := s.Target(i).Length()
			if r < shellMinRadius-0.001 || r > shellMaxRadius+0.001 {
				t.Fatalf("target %d radius %v outside [%v, %v]", i, r, float32(shellMinRadius), float32(shellMaxRadius))
			}
		}
	}
}

func TestGenerateDepthZero(t *testing.T) {
	tr, err := Generate(Params{Depth: 0, BranchLength: 10, Seed: 3})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(tr.Leaves) != 1 {
		t.Errorf("depth 0: expected exactly 1 leaf, got %d", len(tr.Leaves))
	}
	if tr.Wood.Count() == 0 {
		t.Errorf("depth 0: expected wood particles")
	}
	if tr.Blossom.Count() != clusterCount*clusterParticles {
		t.Errorf("depth 0: expected %d blossom particles, got %d", clusterCount*clusterParticles, tr.Blossom.Count())
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	tr, err := Generate(Params{Depth: 2, BranchLength: 10, Seed: 21})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(tr.Leaves) < 1 {
		t.Errorf("expected at least one leaf node, got %d", len(tr.Leaves))
	}
	if tr.Wood.Count() == 0 {
		t.Errorf("expected wood particles, got none")
	}
	if tr.Blossom.Count() == 0 {
		t.Errorf("expected blossom particles, got none")
	}
}

func TestGenerateSeedReproducible(t *testing.T) {
	a, err := Generate(Params{Depth: 2, BranchLength: 10, Seed: 99})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(Params{Depth: 2, BranchLength: 10, Seed: 99})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a.Wood.Count() != b.Wood.Count() || a.Blossom.Count() != b.Blossom.Count() {
		t.Fatalf("same seed: counts differ (%d/%d vs %d/%d)",
			a.Wood.Count(), a.Blossom.Count(), b.Wood.Count(), b.Blossom.Count())
	}
	for i := range a.Wood.Positions {
		if a.Wood.Positions[i] != b.Wood.Positions[i] {
			t.Fatalf("same seed: wood position %d differs: %v vs %v", i, a.Wood.Positions[i], b.Wood.Positions[i])
		}
	}

	c, err := Generate(Params{Depth: 2, BranchLength: 10, Seed: 100})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if c.Wood.Count() == a.Wood.Count() {
		identical := true
		for i := range a.Wood.Positions {
			if a.Wood.Positions[i] != c.Wood.Positions[i] {
				identical = false
				break
			}
		}
		if identical {
			t.Errorf("different seeds produced identical wood buffers")
		}
	}
}

func TestTrunkFlare(t *testing.T) {
	// A depth-0 tree is a bare trunk, so the bottom quarter should spread
	// visibly wider than the mid section.
	tr, err := Generate(Params{Depth: 0, BranchLength: 10, Seed: 5})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	var maxBase, maxMid float32
	for i := 0; i < tr.Wood.Count(); i++ {
		p := tr.Wood.Position(i)
		horiz := float32(stdmath.Sqrt(float64(p.X*p.X + p.Z*p.Z)))
		switch {
		case p.Y < 1.2:
			if horiz > maxBase {
				maxBase = horiz
			}
		case p.Y > 4.0 && p.Y < 7.0:
			if horiz > maxMid {
				maxMid = horiz
			}
		}
	}
	if maxBase <= maxMid*1.2 {
		t.Errorf("expected flared base: base max %v, mid max %v", maxBase, maxMid)
	}
}

func TestGenerateNoNaN(t *testing.T) {
	tr, err := Generate(Params{Depth: 3, BranchLength: 10, Seed: 13})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, s := range []*ParticleSet{tr.Wood, tr.Blossom} {
		for _, arr := range [][]float32{s.Positions, s.Targets, s.Colors, s.Sizes, s.Phases, s.Drifts} {
			for i, v := range arr {
				if !math.IsFinite(v) {
					t.Fatalf("non-finite value at index %d: %v", i, v)
				}
			}
		}
	}
}

func BenchmarkGenerate(b *testing.B) {
	p := Params{Depth: 4, BranchLength: 10, Seed: 1}
	for i := 0; i < b.N; i++ {
		if _, err := Generate(p); err != nil {
			b.Fatal(err)
		}
	}
}
