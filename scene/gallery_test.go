package scene

import (
	stdmath "math"
	"math/rand"
	"testing"

	"hanami/anim"
	"hanami/math"
	"hanami/tree"
)

const galleryDt = float32(1.0 / 60.0)

func testGallery(t *testing.T, n int) (*Gallery, *OrbitCamera) {
	t.Helper()
	rng := rand.New(rand.NewSource(3))
	leaves := make([]math.Vec3, n)
	for i := range leaves {
		leaves[i] = math.Vec3{X: float32(i) * 4, Y: 15, Z: float32(i%2) * 3}
	}
	anchors := tree.AssignPhotos(leaves, n, rng)
	if len(anchors) != n {
		t.Fatalf("expected %d anchors, got %d", n, len(anchors))
	}
	return NewGallery(anchors, rng), NewOrbitCamera(math.Vec3{Y: 12}, 16.0/9.0)
}

func quatAligned(a, b math.Quaternion) bool {
	dot := a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
	return stdmath.Abs(float64(dot)) > 0.999
}

func TestGalleryHangsAtAnchors(t *testing.T) {
	g, cam := testGallery(t, 4)
	snap := anim.Snapshot{Expansion: 0}
	for i := 0; i < 600; i++ {
		g.Update(snap, cam, galleryDt)
	}
	for i, p := range g.Photos {
		if d := p.Position.Distance(p.Anchor.TreePos); d > 0.01 {
			t.Errorf("photo %d: expected hung at anchor, off by %v", i, d)
		}
		if stdmath.Abs(float64(p.Scale.X-treeScale)) > 0.01 {
			t.Errorf("photo %d: expected scale %v, got %v", i, float32(treeScale), p.Scale.X)
		}
		if p.Scale.X != p.Scale.Y || p.Scale.Y != p.Scale.Z {
			t.Errorf("photo %d: expected uniform scale, got %+v", i, p.Scale)
		}
		if !quatAligned(p.Rotation, p.Anchor.TreeRot) {
			t.Errorf("photo %d: rotation did not settle on tree anchor", i)
		}
	}
}

func TestGalleryDispersesToGalaxy(t *testing.T) {
	g, cam := testGallery(t, 4)
	snap := anim.Snapshot{Expansion: 1}
	for i := 0; i < 900; i++ {
		g.Update(snap, cam, galleryDt)
	}
	for i, p := range g.Photos {
		if d := p.Position.Distance(p.Anchor.GalaxyPos); d > 0.5 {
			t.Errorf("photo %d: expected at galaxy anchor, off by %v", i, d)
		}
		if stdmath.Abs(float64(p.Scale.X-galaxyScale)) > 0.01 {
			t.Errorf("photo %d: expected scale %v, got %v", i, float32(galaxyScale), p.Scale.X)
		}
	}
}

func TestGalleryRevealArc(t *testing.T) {
	g, cam := testGallery(t, 5)
	snap := anim.Snapshot{Expansion: 0, Reveal: true}
	for i := 0; i < 600; i++ {
		g.Update(snap, cam, galleryDt)
	}
	for i, p := range g.Photos {
		d := p.Position.Distance(cam.Position)
		if d < revealDistance-3 || d > revealDistance+3 {
			t.Errorf("photo %d: expected ~%v from camera, got %v", i, float32(revealDistance), d)
		}
		if stdmath.Abs(float64(p.Scale.X-revealScale)) > 0.01 {
			t.Errorf("photo %d: expected scale %v, got %v", i, float32(revealScale), p.Scale.X)
		}
		// Each photo faces the camera.
		normal := p.Rotation.RotateVector(math.Vec3Front)
		toCam := cam.Position.Sub(p.Position).Normalize()
		if dot := normal.Dot(toCam); dot < 0.99 {
			t.Errorf("photo %d: expected to face camera, dot %v", i, dot)
		}
	}
	// Arc neighbors must not stack.
	for i := 0; i < len(g.Photos); i++ {
		for j := i + 1; j < len(g.Photos); j++ {
			if d := g.Photos[i].Position.Distance(g.Photos[j].Position); d < 1 {
				t.Errorf("photos %d and %d overlap in the arc: %v apart", i, j, d)
			}
		}
	}
}

func TestGalleryReturnsToHungAfterReveal(t *testing.T) {
	g, cam := testGallery(t, 3)
	reveal := anim.Snapshot{Expansion: 0, Reveal: true}
	for i := 0; i < 300; i++ {
		g.Update(reveal, cam, galleryDt)
	}
	moved := g.Photos[0].Position.Distance(g.Photos[0].Anchor.TreePos)
	if moved < 1 {
		t.Fatalf("expected reveal to move photo off its anchor, moved %v", moved)
	}

	hang := anim.Snapshot{Expansion: 0}
	for i := 0; i < 900; i++ {
		g.Update(hang, cam, galleryDt)
	}
	for i, p := range g.Photos {
		if d := p.Position.Distance(p.Anchor.TreePos); d > 0.05 {
			t.Errorf("photo %d: expected return to anchor, off by %v", i, d)
		}
	}
}

func TestRenderPositionBob(t *testing.T) {
	g, _ := testGallery(t, 2)
	p := g.Photos[0]

	offsets := make([]float32, 0, 3)
	for _, tm := range []float32{0, 0.7, 1.9} {
		off := p.RenderPosition(tm).Y - p.Position.Y
		if stdmath.Abs(float64(off)) > bobAmplitude+0.0001 {
			t.Errorf("bob at t=%v exceeds amplitude: %v", tm, off)
		}
		offsets = append(offsets, off)
	}
	if offsets[0] == offsets[1] && offsets[1] == offsets[2] {
		t.Error("expected bob to move over time")
	}

	// X and Z are untouched by the bob.
	rp := p.RenderPosition(0.7)
	if rp.X != p.Position.X || rp.Z != p.Position.Z {
		t.Errorf("bob must be vertical only, got (%v, %v)", rp.X-p.Position.X, rp.Z-p.Position.Z)
	}
}

func TestGalleryEmpty(t *testing.T) {
	g := NewGallery(nil, rand.New(rand.NewSource(1)))
	if len(g.Photos) != 0 {
		t.Fatalf("expected no photos, got %d", len(g.Photos))
	}
	cam := NewOrbitCamera(math.Vec3{Y: 12}, 16.0/9.0)
	g.Update(anim.Snapshot{Reveal: true}, cam, galleryDt)
}

func TestFaceTowards(t *testing.T) {
	cases := []struct {
		to       math.Vec3
		expected math.Vec3
	}{
		{math.Vec3{Z: 5}, math.Vec3{Z: 1}},
		{math.Vec3{X: 5}, math.Vec3{X: 1}},
		{math.Vec3{Y: 5}, math.Vec3{Y: 1}},
		{math.Vec3{X: 3, Z: 3}, math.Vec3{X: 0.7071, Z: 0.7071}},
	}
	for _, c := range cases {
		q := faceTowards(math.Vec3Zero, c.to)
		got := q.RotateVector(math.Vec3Front)
		if got.Distance(c.expected) > 0.001 {
			t.Errorf("faceTowards(origin, %v): expected normal %v, got %v", c.to, c.expected, got)
		}
	}
}
