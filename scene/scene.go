package scene

import (
	"fmt"
	"math/rand"

	"hanami/anim"
	"hanami/math"
	"hanami/tree"
)

// Installation assembles everything the renderer draws: the generated
// particle tree, the photo gallery, the orbit camera and the frame mesh.
type Installation struct {
	Tree      *tree.Tree
	Gallery   *Gallery
	Camera    *OrbitCamera
	FrameMesh *Mesh
	Quad      *Mesh
}

// Params configures construction. PhotoCount 0 hangs no photos; FramePath
// empty selects the procedural frame.
type Params struct {
	Tree       tree.Params
	PhotoCount int
	PhotosDir  string
	FramePath  string
	Aspect     float32
}

// NewInstallation generates the tree, assigns and wraps the photos, and
// aims the orbit camera at the crown. Generation runs once here; nothing
// is regenerated per frame.
func NewInstallation(p Params) (*Installation, error) {
	t, err := tree.Generate(p.Tree)
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if p.Tree.Seed != 0 {
		// Distinct deterministic stream for photo placement.
		rng = rand.New(rand.NewSource(p.Tree.Seed + 1))
	}
	anchors := tree.AssignPhotos(t.Leaves, p.PhotoCount, rng)
	gallery := NewGallery(anchors, rng)

	inst := &Installation{
		Tree:      t,
		Gallery:   gallery,
		Camera:    NewOrbitCamera(treeFocus(t), p.Aspect),
		FrameMesh: FrameMesh(p.FramePath),
		Quad:      CreateQuad(),
	}

	if p.PhotosDir != "" && len(gallery.Photos) > 0 {
		if err := gallery.LoadPhotosFrom(p.PhotosDir); err != nil {
			fmt.Printf("photos: %v\n", err)
		}
	}
	return inst, nil
}

// Update advances the camera and gallery for this frame's snapshot.
func (inst *Installation) Update(snap anim.Snapshot, dt float32) {
	inst.Camera.Track(snap)
	inst.Gallery.Update(snap, inst.Camera, dt)
}

// treeFocus picks the orbit target on the trunk line, level with the crown
// centroid, so both framings keep the silhouette centered.
func treeFocus(t *tree.Tree) math.Vec3 {
	if len(t.Leaves) == 0 {
		return math.Vec3{Y: 10}
	}
	var sum math.Vec3
	for _, l := range t.Leaves {
		sum = sum.Add(l)
	}
	c := sum.Mul(1 / float32(len(t.Leaves)))
	return math.Vec3{Y: c.Y * 0.8}
}
