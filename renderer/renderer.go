// Package renderer drives the OpenGL backend for the installation. One call
// per frame draws the framed photos, both particle sets and the HDR resolve;
// everything else (input, animation, photo loading) happens upstream.
package renderer

import (
	"fmt"

	"hanami/anim"
	"hanami/core"
	"hanami/internal/opengl"
	"hanami/math"
	"hanami/scene"
	"hanami/textures"
)

// Options selects the optional parts of the render path.
type Options struct {
	Bloom    bool    // HDR bright-pass glow for the blossom stars
	Exposure float32 // tone-mapping exposure, 0 means the default 1.0
}

// Renderer owns all GPU state: the mesh and particle programs, the uploaded
// textures and the post chain. Construct it once after the window exists and
// call Frame from the main goroutine only.
type Renderer struct {
	gl        *opengl.Renderer
	particles *opengl.ParticleRenderer
	window    *core.Window

	frameTex   uint32
	photoTex   []uint32
	photoReady []bool
}

// New initializes the backend and uploads everything static: particle
// buffers, the petal sprite, the bark tile and one placeholder card per
// photo. Real photos replace their placeholders as the async loads land.
func New(window *core.Window, inst *scene.Installation, texman *textures.Manager, opts Options) (*Renderer, error) {
	glr, err := opengl.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenGL renderer: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	glr.SetViewport(fbw, fbh)

	if opts.Bloom {
		if err := glr.EnablePostProcess(fbw, fbh); err != nil {
			return nil, fmt.Errorf("post-process: %w", err)
		}
		if err := glr.EnableBloom(); err != nil {
			return nil, fmt.Errorf("bloom: %w", err)
		}
	}
	if opts.Exposure > 0 {
		glr.SetExposure(opts.Exposure)
	}

	pr, err := opengl.NewParticleRenderer()
	if err != nil {
		return nil, fmt.Errorf("particle renderer: %w", err)
	}
	pr.Upload(inst.Tree.Wood, inst.Tree.Blossom, texman.Petal())

	r := &Renderer{
		gl:        glr,
		particles: pr,
		window:    window,
		frameTex:  opengl.UploadTexture(texman.Bark()),
	}

	photos := inst.Gallery.Photos
	r.photoTex = make([]uint32, len(photos))
	r.photoReady = make([]bool, len(photos))
	for i, p := range photos {
		img := p.Image()
		if img == nil {
			img = texman.Placeholder(p.Anchor.ImageIndex)
		} else {
			r.photoReady[i] = true
		}
		r.photoTex[i] = opengl.UploadTexture(img)
	}

	fmt.Println("Renderer initialized (OpenGL)")
	return r, nil
}

// Frame renders one complete frame: clear to the sky color, the photo cards
// with their frames, both particle sets, then the HDR blit.
func (r *Renderer) Frame(snap anim.Snapshot, inst *scene.Installation) {
	view := inst.Camera.GetViewMatrix()
	proj := inst.Camera.GetProjectionMatrix()

	r.gl.BeginFrame(snap.Background, ambientFor(snap))

	// Photos draw opaque with depth writes so particles can layer over them.
	for i, p := range inst.Gallery.Photos {
		r.refreshPhotoTex(i, p)

		model := photoModel(p, snap.Time)
		mvp := model.Mul(view).Mul(proj)
		r.gl.DrawMesh(inst.FrameMesh, mvp, model, r.frameTex)
		r.gl.DrawMesh(inst.Quad, mvp, model, r.photoTex[i])
	}

	r.particles.Draw(opengl.ParticleFrame{
		View:       view,
		Projection: proj,
		Expansion:  snap.Expansion,
		Time:       snap.Time,
		HueOffset:  snap.HueOffset,
		PixelRatio: r.window.ContentScale(),
		Glow:       snap.Glow,
	})

	r.gl.BlitPostProcess()
}

// Resize tracks framebuffer size changes (window drag, monitor swap).
func (r *Renderer) Resize(width, height int) {
	r.gl.SetViewport(width, height)
	r.gl.ResizePostProcess(width, height)
}

// SetBloomStrength adjusts the additive glow, e.g. when palettes change.
func (r *Renderer) SetBloomStrength(s float32) {
	r.gl.SetBloomStrength(s)
}

// Destroy frees all GPU resources. The GL context must still be current.
func (r *Renderer) Destroy() {
	r.particles.Destroy()
	opengl.DeleteTexture(r.frameTex)
	for _, tex := range r.photoTex {
		opengl.DeleteTexture(tex)
	}
	r.gl.Destroy()
}

// refreshPhotoTex swaps a placeholder for the real picture once its async
// decode has published. Uploads happen here, on the GL thread.
func (r *Renderer) refreshPhotoTex(i int, p *scene.Photo) {
	if r.photoReady[i] {
		return
	}
	img := p.Image()
	if img == nil {
		return
	}
	opengl.DeleteTexture(r.photoTex[i])
	r.photoTex[i] = opengl.UploadTexture(img)
	r.photoReady[i] = true
}

// photoModel is the card's smoothed transform with the per-entity bob folded
// into the position.
func photoModel(p *scene.Photo, time float32) math.Mat4 {
	t := p.Transform
	t.Position = p.RenderPosition(time)
	return t.GetMatrix()
}

// ambientFor dims the fill light as the tree disperses; the slight blue lift
// keeps the galaxy cold while the tree stays warm.
func ambientFor(snap anim.Snapshot) core.Color {
	a := 0.42 - 0.26*snap.Expansion
	return core.Color{R: a, G: a, B: a * 1.08, A: 1}
}
