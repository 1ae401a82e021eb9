package scene

import (
	"fmt"
	stdmath "math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hanami/anim"
	"hanami/math"
	"hanami/tree"
)

const (
	// Revealed photos stand in an arc this far in front of the camera,
	// neighbors separated by up to revealStep radians, alternating a
	// vertical zig-zag so rows do not occlude each other.
	revealDistance = 16.0
	revealArcSpan  = 1.9
	revealStepMax  = 0.30
	zigzagOffset   = 1.3

	treeScale   = 1.0
	galaxyScale = 0.8
	revealScale = 2.4

	revealRate = 3.0 // 1/s while revealed
	idleRate   = 1.5 // 1/s hanging or dispersed

	bobAmplitude = 0.35
	bobSpeed     = 1.1
)

// Gallery drives every photo entity toward its per-frame target: hung in
// the tree, dispersed into the galaxy, or presented to the visitor.
type Gallery struct {
	Photos []*Photo
}

// NewGallery wraps assigned anchors in runtime entities. rng seeds the
// per-entity bob phases so the photos do not float in lockstep; nil uses
// time entropy.
func NewGallery(anchors []tree.PhotoAnchor, rng *rand.Rand) *Gallery {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	photos := make([]*Photo, len(anchors))
	for i, a := range anchors {
		photos[i] = newPhoto(a, rng.Float32()*2*stdmath.Pi)
	}
	return &Gallery{Photos: photos}
}

// Update picks each entity's target from (reveal, dispersed) and eases the
// smoothed transform toward it. Revealed entities move faster so the
// gallery answers the gesture promptly.
func (g *Gallery) Update(snap anim.Snapshot, cam *OrbitCamera, dt float32) {
	for i, p := range g.Photos {
		var targetPos math.Vec3
		var targetRot math.Quaternion
		var targetScale float32

		switch {
		case snap.Reveal:
			targetPos, targetRot = g.revealTarget(i, cam)
			targetScale = revealScale
		case snap.Dispersed():
			targetPos = p.Anchor.GalaxyPos
			targetRot = p.Anchor.GalaxyRot
			targetScale = galaxyScale
		default:
			targetPos = p.Anchor.TreePos
			targetRot = p.Anchor.TreeRot
			targetScale = treeScale
		}

		rate := float32(idleRate)
		if snap.Reveal {
			rate = revealRate
		}
		p.Position = math.DampVec3(p.Position, targetPos, rate, dt)
		p.Rotation = p.Rotation.Slerp(targetRot, math.Clamp(rate*dt, 0, 1))
		p.Scale = math.DampVec3(p.Scale, math.Vec3One.Mul(targetScale), rate, dt)
	}
}

// revealTarget places entity i on the presentation arc, facing the camera.
func (g *Gallery) revealTarget(i int, cam *OrbitCamera) (math.Vec3, math.Quaternion) {
	n := len(g.Photos)
	step := float32(revealArcSpan) / float32(n)
	if step > revealStepMax {
		step = revealStepMax
	}
	angle := (float32(i) - float32(n-1)/2) * step

	dir := math.QuaternionFromAxisAngle(math.Vec3Up, angle).RotateVector(cam.GetForward())
	pos := cam.Position.Add(dir.Mul(revealDistance))
	if i%2 == 1 {
		pos.Y += zigzagOffset
	} else {
		pos.Y -= zigzagOffset
	}
	return pos, faceTowards(pos, cam.Position)
}

// RenderPosition is the drawn position: the smoothed transform plus the
// per-entity bob.
func (p *Photo) RenderPosition(time float32) math.Vec3 {
	bob := float32(stdmath.Sin(float64(time*bobSpeed+p.bobPhase))) * bobAmplitude
	return math.Vec3{X: p.Position.X, Y: p.Position.Y + bob, Z: p.Position.Z}
}

// faceTowards orients a +Z-facing quad at from so it looks at to.
func faceTowards(from, to math.Vec3) math.Quaternion {
	dir := to.Sub(from)
	horiz := float32(stdmath.Sqrt(float64(dir.X*dir.X + dir.Z*dir.Z)))
	yaw := float32(stdmath.Atan2(float64(dir.X), float64(dir.Z)))
	pitch := -float32(stdmath.Atan2(float64(dir.Y), float64(horiz)))
	return math.QuaternionFromAxisAngle(math.Vec3Up, yaw).
		Mul(math.QuaternionFromAxisAngle(math.Vec3Right, pitch)).
		Normalize()
}

// LoadPhotosFrom starts async loads for every entity, cycling through the
// image files found in dir in name order.
func (g *Gallery) LoadPhotosFrom(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read photo dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg":
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no images in %s", dir)
	}
	for _, p := range g.Photos {
		p.LoadImageAsync(filepath.Join(dir, files[p.Anchor.ImageIndex%len(files)]))
	}
	return nil
}
