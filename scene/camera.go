package scene

import (
	stdmath "math"

	"github.com/charmbracelet/harmonica"

	"hanami/anim"
	"hanami/math"
)

const (
	cameraFOV  = 55.0 * stdmath.Pi / 180.0
	cameraNear = 0.1
	cameraFar  = 1000.0

	// Framing distances for the two modes. The galaxy shell reaches radius
	// 200, so the far framing sits outside most of it without leaving the
	// bright core tiny.
	orbitNearDistance = 46.0
	orbitFarDistance  = 260.0

	// Spring tuned for a 60 Hz step: slow enough that the tree->galaxy pull
	// back reads as a camera move, damped under 1 so it settles with a
	// slight float.
	orbitSpringFrequency = 1.6
	orbitSpringDamping   = 0.9
)

// Camera holds the view/projection pair consumed by every draw pass.
type Camera struct {
	Position    math.Vec3
	Target      math.Vec3
	FOV         float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	viewMatrix       math.Mat4
	projectionMatrix math.Mat4
	projDirty        bool
}

func NewCamera(fov, aspectRatio, nearPlane, farPlane float32) *Camera {
	return &Camera{
		Position:    math.Vec3Zero,
		FOV:         fov,
		AspectRatio: aspectRatio,
		NearPlane:   nearPlane,
		FarPlane:    farPlane,
		viewMatrix:  math.Mat4Identity(),
		projDirty:   true,
	}
}

func (c *Camera) UpdateAspectRatio(width, height float32) {
	if height > 0 {
		c.AspectRatio = width / height
		c.projDirty = true
	}
}

// LookAt aims the camera at target with a world-up reference and caches the
// resulting view matrix.
func (c *Camera) LookAt(target math.Vec3) {
	c.Target = target
	c.viewMatrix = math.Mat4LookAt(c.Position, target, math.Vec3Up)
}

func (c *Camera) GetViewMatrix() math.Mat4 {
	return c.viewMatrix
}

func (c *Camera) GetProjectionMatrix() math.Mat4 {
	if c.projDirty {
		c.projectionMatrix = math.Mat4Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
		c.projDirty = false
	}
	return c.projectionMatrix
}

// GetForward returns the unit vector from the camera toward its target.
func (c *Camera) GetForward() math.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// GetRight returns the camera's horizontal basis vector.
func (c *Camera) GetRight() math.Vec3 {
	return c.GetForward().Cross(math.Vec3Up).Normalize()
}

func (c *Camera) GetUp() math.Vec3 {
	return c.GetRight().Cross(c.GetForward()).Normalize()
}

// OrbitCamera orbits a fixed point above the tree base. Azimuth and polar
// come straight from the animation state each frame; only the distance has
// local dynamics, easing through a spring between the tree and galaxy
// framings.
type OrbitCamera struct {
	Camera

	distance float32
	velocity float32
	spring   harmonica.Spring
}

func NewOrbitCamera(target math.Vec3, aspectRatio float32) *OrbitCamera {
	c := &OrbitCamera{
		distance: orbitNearDistance,
		spring:   harmonica.NewSpring(harmonica.FPS(60), orbitSpringFrequency, orbitSpringDamping),
	}
	c.Camera = *NewCamera(cameraFOV, aspectRatio, cameraNear, cameraFar)
	c.Target = target
	c.Track(anim.Snapshot{Polar: 1.15})
	return c
}

// Track positions the camera for this frame's snapshot.
func (c *OrbitCamera) Track(snap anim.Snapshot) {
	far := float64(orbitFarDistance)
	near := float64(orbitNearDistance)
	goal := near
	if snap.Dispersed() {
		goal = far
	}
	pos, vel := c.spring.Update(float64(c.distance), float64(c.velocity), goal)
	c.distance = float32(pos)
	c.velocity = float32(vel)

	sinPolar := float32(stdmath.Sin(float64(snap.Polar)))
	cosPolar := float32(stdmath.Cos(float64(snap.Polar)))
	sinAz := float32(stdmath.Sin(float64(snap.Azimuth)))
	cosAz := float32(stdmath.Cos(float64(snap.Azimuth)))

	offset := math.Vec3{
		X: c.distance * sinPolar * sinAz,
		Y: c.distance * cosPolar,
		Z: c.distance * sinPolar * cosAz,
	}
	c.Position = c.Target.Add(offset)
	c.LookAt(c.Target)
}

// Distance reports the current sprung orbit radius.
func (c *OrbitCamera) Distance() float32 {
	return c.distance
}
