package tree

import (
	"fmt"
	stdmath "math"
	"math/rand"
	"time"

	"hanami/core"
	"hanami/math"
)

// Params configures one tree generation run. All values are fixed at scene
// construction; Generate never mutates them.
type Params struct {
	Depth        int       // branching levels, >= 0 (0 = bare trunk with blossoms)
	BranchLength float32   // trunk length in world units, > 0
	Start        math.Vec3 // trunk base position
	Seed         int64     // 0 = time-based entropy (fresh tree every run)
}

// Tree is the immutable output of one generation run.
type Tree struct {
	Wood    *ParticleSet
	Blossom *ParticleSet
	Leaves  []math.Vec3 // terminal branch endpoints, anchors for blossoms and photos
}

// branchSegment drives one step of the recursive growth. Transient: never
// retained after generation.
type branchSegment struct {
	start  math.Vec3
	dir    math.Vec3 // must be normalised
	length float32
	radius float32
	depth  int // branching levels remaining; 0 = terminal
}

// Growth shape constants. Length/radius ratios govern convergence: each
// level shrinks, so particle counts stay bounded for any depth.
const (
	trunkRadiusRatio = 0.12 // trunk radius as a fraction of trunk length
	childLengthRatio = 0.82
	childRadiusRatio = 0.65

	woodDensity       = 8.0 // particles per unit length x radius
	trunkDensityBoost = 2.7

	trunkFlareSpan  = 0.25 // bottom fraction of the trunk that flares out
	trunkFlarePower = 2.2
	trunkFlareGain  = 1.8 // radius multiplier at the very base = 1 + gain

	trunkUpwardBias  = 0.35 // phototropism: children pulled toward +Y
	branchUpwardBias = 0.12

	shellMinRadius = 80.0 // galaxy destination shell
	shellMaxRadius = 200.0

	clusterCount     = 5  // blossom sub-clusters per leaf
	clusterParticles = 90 // particles per sub-cluster
	weepingBias      = 0.55
)

var (
	woodDark  = core.Color{R: 0.23, G: 0.14, B: 0.07, A: 1}
	woodLight = core.Color{R: 0.43, G: 0.28, B: 0.15, A: 1}

	// Five fixed blossom tones, white through deep pink.
	blossomPalette = [5]core.Color{
		{R: 1.00, G: 0.97, B: 0.98, A: 1},
		{R: 1.00, G: 0.85, B: 0.90, A: 1},
		{R: 0.98, G: 0.72, B: 0.82, A: 1},
		{R: 0.95, G: 0.56, B: 0.72, A: 1},
		{R: 0.88, G: 0.44, B: 0.62, A: 1},
	}
)

type generator struct {
	rng     *rand.Rand
	wood    *ParticleSet
	blossom *ParticleSet
	leaves  []math.Vec3
}

// Generate grows a particle tree. Structure is deterministic for a given
// seed; Seed 0 draws time entropy so every run produces a different but
// statistically similar tree.
func Generate(p Params) (*Tree, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &generator{
		rng:     rand.New(rand.NewSource(seed)),
		wood:    newParticleSet(4096),
		blossom: newParticleSet(8192),
	}
	g.grow(branchSegment{
		start:  p.Start,
		dir:    math.Vec3Up,
		length: p.BranchLength,
		radius: p.BranchLength * trunkRadiusRatio,
		depth:  p.Depth,
	}, true)
	return &Tree{Wood: g.wood, Blossom: g.blossom, Leaves: g.leaves}, nil
}

func (p Params) validate() error {
	if p.Depth < 0 {
		return fmt.Errorf("tree: depth must be >= 0, got %d", p.Depth)
	}
	if !math.IsFinite(p.BranchLength) || p.BranchLength <= 0 {
		return fmt.Errorf("tree: branch length must be positive and finite, got %v", p.BranchLength)
	}
	if !math.IsFinite(p.Start.X) || !math.IsFinite(p.Start.Y) || !math.IsFinite(p.Start.Z) {
		return fmt.Errorf("tree: start position must be finite, got %v", p.Start)
	}
	return nil
}

// grow emits wood along one segment, then either recurses into children or,
// at depth 0, terminates the branch with blossom clusters. The depth counter
// is the only termination condition.
func (g *generator) grow(seg branchSegment, isTrunk bool) {
	end := seg.start.Add(seg.dir.Mul(seg.length))
	g.emitWood(seg, isTrunk)

	if seg.depth == 0 {
		g.leaves = append(g.leaves, end)
		g.emitBlossoms(end, seg.length)
		return
	}

	children := 2 + g.rng.Intn(3) // 2-4
	if isTrunk {
		children = 3 + g.rng.Intn(3) // 3-5
	}
	azStep := 2 * stdmath.Pi / float64(children)
	azBase := g.rng.Float64() * 2 * stdmath.Pi

	upBias := float32(branchUpwardBias)
	if isTrunk {
		upBias = trunkUpwardBias
	}

	for i := 0; i < children; i++ {
		azimuth := float32(azBase + azStep*float64(i) + float64(g.rng.Float32()-0.5)*azStep*0.6)
		dir := fanDirection(seg.dir, g.childSpread(seg.depth, isTrunk), azimuth)
		dir = dir.Add(math.Vec3Up.Mul(upBias)).Normalize()
		g.grow(branchSegment{
			start:  end,
			dir:    dir,
			length: seg.length * childLengthRatio,
			radius: seg.radius * childRadiusRatio,
			depth:  seg.depth - 1,
		}, false)
	}
}

// childSpread returns the divergence half-angle from the parent direction.
// The trunk and near-terminal branches fan wider than mid-tree branches.
func (g *generator) childSpread(depth int, isTrunk bool) float32 {
	switch {
	case isTrunk:
		return 0.40 + g.rng.Float32()*0.50
	case depth <= 1:
		return 0.45 + g.rng.Float32()*0.50
	default:
		return 0.30 + g.rng.Float32()*0.35
	}
}

// emitWood fills a cylinder from seg.start along seg.dir with bark
// particles. Count scales with length x radius; the trunk is denser and
// flares super-linearly over its bottom quarter to suggest root spread.
func (g *generator) emitWood(seg branchSegment, isTrunk bool) {
	density := float32(woodDensity)
	if isTrunk {
		density *= trunkDensityBoost
	}
	count := int(seg.length * seg.radius * density)
	if count < 2 {
		count = 2
	}

	u, v := orthonormalBasis(seg.dir)
	for i := 0; i < count; i++ {
		t := g.rng.Float32()
		radius := seg.radius
		if isTrunk && t < trunkFlareSpan {
			// proximity^power grows toward the base
			prox := (trunkFlareSpan - t) / trunkFlareSpan
			radius *= 1 + trunkFlareGain*float32(stdmath.Pow(float64(prox), trunkFlarePower))
		}

		angle := g.rng.Float64() * 2 * stdmath.Pi
		r := g.rng.Float32() * radius
		offset := u.Mul(r * float32(stdmath.Cos(angle))).Add(v.Mul(r * float32(stdmath.Sin(angle))))
		pos := seg.start.Add(seg.dir.Mul(t * seg.length)).Add(offset)

		// Cubic bias keeps most bark near the dark end of the gradient.
		shade := g.rng.Float32()
		shade = shade * shade * shade
		c := woodDark.Lerp(woodLight, shade)

		size := 0.30 + 0.25*float32(stdmath.Sqrt(float64(seg.radius))) + 0.10*g.rng.Float32()
		phase := g.rng.Float32() * 2 * stdmath.Pi
		drift := g.randomUnitVector().Mul(0.2)

		g.wood.push(pos, g.shellTarget(shellMinRadius, shellMaxRadius), c, size, phase, drift)
	}
}

// emitBlossoms surrounds a leaf endpoint with clusterCount ellipsoidal
// petal clouds. scale is the terminal branch length and sets cluster size.
func (g *generator) emitBlossoms(center math.Vec3, scale float32) {
	for c := 0; c < clusterCount; c++ {
		clusterCenter := center.Add(g.randomUnitVector().Mul(g.rng.Float32() * scale * 0.45))
		// Per-cluster randomized ellipsoid radii.
		rx := scale * (0.50 + g.rng.Float32()*0.50)
		ry := scale * (0.40 + g.rng.Float32()*0.45)
		rz := scale * (0.50 + g.rng.Float32()*0.50)

		for i := 0; i < clusterParticles; i++ {
			// Cube-root radius + uniform angles = uniform in the ellipsoid volume.
			r := float32(stdmath.Cbrt(float64(g.rng.Float32())))
			dir := g.randomUnitVector()
			offset := math.Vec3{X: dir.X * r * rx, Y: dir.Y * r * ry, Z: dir.Z * r * rz}

			pos := clusterCenter.Add(offset)
			horiz := float32(stdmath.Sqrt(float64(offset.X*offset.X + offset.Z*offset.Z)))
			pos.Y -= horiz * weepingBias // weeping habit: outer petals hang lower

			col := blossomPalette[g.rng.Intn(len(blossomPalette))]
			size := 0.55*(1-0.40*r) + 0.08*g.rng.Float32()
			phase := g.rng.Float32() * 2 * stdmath.Pi
			drift := g.randomUnitVector()

			g.blossom.push(pos, g.shellTarget(shellMinRadius, shellMaxRadius), col, size, phase, drift)
		}
	}
}

// shellTarget samples the galaxy destination: a point uniformly distributed
// over directions, radius uniform in [min, max].
func (g *generator) shellTarget(min, max float32) math.Vec3 {
	return g.randomUnitVector().Mul(min + g.rng.Float32()*(max-min))
}

// randomUnitVector returns a uniformly-distributed direction on the unit
// sphere (uniform cos-theta, uniform azimuth).
func (g *generator) randomUnitVector() math.Vec3 {
	return randomDirection(g.rng)
}

// fanDirection tilts axis by spread radians toward the given azimuth in the
// plane perpendicular to axis.
func fanDirection(axis math.Vec3, spread, azimuth float32) math.Vec3 {
	u, v := orthonormalBasis(axis)
	sinS := float32(stdmath.Sin(float64(spread)))
	cosS := float32(stdmath.Cos(float64(spread)))
	cosA := float32(stdmath.Cos(float64(azimuth)))
	sinA := float32(stdmath.Sin(float64(azimuth)))
	return axis.Mul(cosS).
		Add(u.Mul(sinS * cosA)).
		Add(v.Mul(sinS * sinA)).
		Normalize()
}

// orthonormalBasis builds two unit vectors perpendicular to axis and to
// each other.
func orthonormalBasis(axis math.Vec3) (math.Vec3, math.Vec3) {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	if stdmath.Abs(float64(axis.Dot(up))) > 0.99 {
		up = math.Vec3{X: 1, Y: 0, Z: 0}
	}
	u := axis.Cross(up).Normalize()
	v := u.Cross(axis).Normalize()
	return u, v
}
