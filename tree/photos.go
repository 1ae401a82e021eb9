package tree

import (
	stdmath "math"
	"math/rand"
	"time"

	"hanami/math"
)

// PhotoAnchor pairs a leaf node with the two display transforms a hanging
// photo needs: hung below the branch in tree mode, adrift on a wide shell in
// galaxy mode. The revealed (camera-facing) transform is computed per frame
// from the live camera and is never stored.
type PhotoAnchor struct {
	ID         int
	TreePos    math.Vec3
	TreeRot    math.Quaternion
	GalaxyPos  math.Vec3
	GalaxyRot  math.Quaternion
	ImageIndex int // deterministic asset reference, assigned in order
}

const (
	photoHangOffset = 1.6  // how far below the leaf the photo hangs
	photoTiltMax    = 0.18 // radians of random tilt around X and Z
	photoShellMin   = 100.0
	photoShellMax   = 200.0
)

// AssignPhotos picks min(count, len(leaves)) distinct leaves without
// replacement and builds an anchor for each. Zero leaves or a non-positive
// count yields an empty result, not an error. A nil rng draws time entropy.
func AssignPhotos(leaves []math.Vec3, count int, rng *rand.Rand) []PhotoAnchor {
	if count <= 0 || len(leaves) == 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	n := count
	if n > len(leaves) {
		n = len(leaves)
	}

	anchors := make([]PhotoAnchor, 0, n)
	for i, li := range rng.Perm(len(leaves))[:n] {
		leaf := leaves[li]

		yaw := rng.Float32() * 2 * stdmath.Pi
		tiltX := (rng.Float32()*2 - 1) * photoTiltMax
		tiltZ := (rng.Float32()*2 - 1) * photoTiltMax

		galaxyDir := randomDirection(rng)
		galaxyRadius := float32(photoShellMin) + rng.Float32()*(photoShellMax-photoShellMin)

		anchors = append(anchors, PhotoAnchor{
			ID:      i,
			TreePos: leaf.Add(math.Vec3{Y: -photoHangOffset}),
			TreeRot: math.QuaternionFromEuler(math.Vec3{X: tiltX, Y: yaw, Z: tiltZ}),

			GalaxyPos: galaxyDir.Mul(galaxyRadius),
			GalaxyRot: math.QuaternionFromEuler(math.Vec3{
				X: rng.Float32() * 2 * stdmath.Pi,
				Y: rng.Float32() * 2 * stdmath.Pi,
				Z: rng.Float32() * 2 * stdmath.Pi,
			}),

			ImageIndex: i,
		})
	}
	return anchors
}

func randomDirection(rng *rand.Rand) math.Vec3 {
	cosTheta := rng.Float64()*2 - 1
	sinTheta := stdmath.Sqrt(1 - cosTheta*cosTheta)
	phi := rng.Float64() * 2 * stdmath.Pi
	return math.Vec3{
		X: float32(sinTheta * stdmath.Cos(phi)),
		Y: float32(cosTheta),
		Z: float32(sinTheta * stdmath.Sin(phi)),
	}
}
