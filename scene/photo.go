package scene

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"sync/atomic"

	_ "image/jpeg"
	_ "image/png"

	"hanami/core"
	"hanami/math"
	"hanami/tree"
)

// Photo is the runtime entity for one framed picture hanging in the tree.
// The embedded Transform holds the smoothed values the renderer draws; the
// anchor keeps the fixed tree/galaxy targets. The decoded image arrives
// asynchronously and is published through an atomic pointer, so the render
// loop polls it without locks.
type Photo struct {
	Anchor tree.PhotoAnchor

	core.Transform

	bobPhase float32
	image    atomic.Pointer[image.RGBA]
}

func newPhoto(anchor tree.PhotoAnchor, bobPhase float32) *Photo {
	return &Photo{
		Anchor: anchor,
		Transform: core.Transform{
			Position: anchor.TreePos,
			Rotation: anchor.TreeRot,
			Scale:    math.Vec3One,
		},
		bobPhase: bobPhase,
	}
}

// LoadImageAsync decodes the file off the render thread and publishes the
// RGBA result. On any failure the placeholder simply stays; the loop is
// never interrupted.
func (p *Photo) LoadImageAsync(path string) {
	go func() {
		f, err := os.Open(path)
		if err != nil {
			fmt.Printf("photo %d: %v\n", p.Anchor.ID, err)
			return
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			fmt.Printf("photo %d: decode %s: %v\n", p.Anchor.ID, path, err)
			return
		}
		p.image.Store(toRGBA(img))
	}()
}

// Image returns the decoded picture once a load has completed, nil before.
func (p *Photo) Image() *image.RGBA {
	return p.image.Load()
}

// setImage publishes an already-decoded picture (placeholders, tests).
func (p *Photo) setImage(img *image.RGBA) {
	p.image.Store(img)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
