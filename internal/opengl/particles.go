package opengl

import (
	"fmt"
	"image"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"hanami/math"
	"hanami/tree"
)

// ── Particle shaders ─────────────────────────────────────────────────────────

// Point-sprite vertex shader: every particle carries both of its homes (rest
// position in the tree, target position in the galaxy) and the interpolation
// between them happens entirely on the GPU. The CPU only updates uniforms.
const particleVertSrc = `
#version 410 core
layout(location = 0) in vec3 inRest;
layout(location = 1) in vec3 inTarget;
layout(location = 2) in vec3 inColor;
layout(location = 3) in float inSize;
layout(location = 4) in float inPhase;
layout(location = 5) in vec3 inDrift;

uniform mat4  view;
uniform mat4  projection;
uniform float expansion;  // 0 = tree, 1 = galaxy
uniform float time;       // seconds since start
uniform float hueOffset;  // radians, rotation about the grey axis
uniform float pixelRatio; // framebuffer px per logical px
uniform float woodFade;   // 1 for the wood set, 0 for blossom

out vec3  vColor;
out float vAlpha;
out float vAngle;

// Cubic ease-in-out; the dispersal accelerates out of the tree and
// settles gently into orbit.
float easeCubic(float t) {
    return t < 0.5 ? 4.0 * t * t * t : 1.0 - pow(-2.0 * t + 2.0, 3.0) / 2.0;
}

// Rodrigues rotation of an RGB color about the grey axis (1,1,1)/sqrt(3).
vec3 hueRotate(vec3 c, float angle) {
    const vec3 k = vec3(0.57735027);
    float ca = cos(angle);
    float sa = sin(angle);
    return c * ca + cross(k, c) * sa + k * dot(k, c) * (1.0 - ca);
}

void main() {
    float t   = clamp(expansion, 0.0, 1.0);
    vec3  pos = mix(inRest, inTarget, easeCubic(t));

    if (t < 0.5) {
        // Tree at rest: branches sway, a little more the higher they sit.
        float sway = 0.06 + inRest.y * 0.010;
        pos.x += sin(time * 1.1 + inRest.y * 0.35 + inPhase) * sway;
        pos.z += cos(time * 0.9 + inRest.x * 0.30 + inPhase) * sway;
    } else {
        // Galaxy: differential rotation, inner particles orbit faster.
        float radius = length(pos.xz);
        float theta  = atan(pos.z, pos.x) + time * 12.0 / (radius + 10.0);
        pos.x  = cos(theta) * radius;
        pos.z  = sin(theta) * radius;
        pos   += inDrift * sin(time * 0.7 + inPhase) * 0.9;
    }

    vec3 tinted = inColor;
    if (abs(hueOffset) > 0.001) {
        // Height feeds the angle so a single offset still bands the colors.
        tinted = clamp(hueRotate(inColor, hueOffset + pos.y * 0.002), 0.0, 1.0);
    }
    vColor = tinted;

    vec4 viewPos = view * vec4(pos, 1.0);
    gl_Position  = projection * viewPos;

    float depth  = max(-viewPos.z, 0.1);
    gl_PointSize = clamp(inSize * pixelRatio * 220.0 / depth, 1.0, 96.0);

    // Fade instead of clipping through the near plane, and fade the wood
    // away once the blossom set starts its journey outward.
    float nearFade = smoothstep(1.5, 6.0, depth);
    float woodKeep = 1.0 - woodFade * smoothstep(0.10, 0.45, t);
    vAlpha = nearFade * woodKeep;

    vAngle = inPhase + time * (0.4 + 0.8 * t);
}
` + "\x00"

// Fragment shader: rotates the sprite quad by the particle's spin angle and
// samples the petal texture. The sprite raster keeps a transparent border so
// rotated corner samples clamp to nothing.
const particleFragSrc = `
#version 410 core
in vec3  vColor;
in float vAlpha;
in float vAngle;

out vec4 outColor;

uniform sampler2D sprite;
uniform float     glow;

void main() {
    vec2  pc = gl_PointCoord - vec2(0.5);
    float ca = cos(vAngle);
    float sa = sin(vAngle);
    pc = vec2(pc.x * ca - pc.y * sa, pc.x * sa + pc.y * ca);

    vec4 tex = texture(sprite, clamp(pc + vec2(0.5), 0.0, 1.0));
    float a  = tex.a * vAlpha;
    if (a < 0.01) {
        discard;
    }
    outColor = vec4(vColor * tex.rgb * glow, a);
}
` + "\x00"

// ── ParticleRenderer ─────────────────────────────────────────────────────────

// ParticleFrame carries the per-frame uniform values for one particle pass.
type ParticleFrame struct {
	View       math.Mat4
	Projection math.Mat4
	Expansion  float32
	Time       float32
	HueOffset  float32
	PixelRatio float32
	Glow       float32
}

// particleBuffer is one uploaded attribute set (wood or blossom): a VAO with
// one static VBO per attribute array, matching the tree.ParticleSet layout.
type particleBuffer struct {
	vao   uint32
	vbos  [6]uint32
	count int32
}

// ParticleRenderer draws both particle sets as GPU point sprites. Geometry
// is uploaded once after tree generation; per-frame state is uniforms only.
type ParticleRenderer struct {
	prog    uint32
	wood    particleBuffer
	blossom particleBuffer
	sprite  uint32

	viewLoc       int32
	projectionLoc int32
	expansionLoc  int32
	timeLoc       int32
	hueOffsetLoc  int32
	pixelRatioLoc int32
	woodFadeLoc   int32
	glowLoc       int32
	spriteLoc     int32
}

// NewParticleRenderer compiles the point-sprite program and caches its
// uniform locations. Buffers are created later by Upload.
func NewParticleRenderer() (*ParticleRenderer, error) {
	prog, err := newProgram(particleVertSrc, particleFragSrc)
	if err != nil {
		return nil, fmt.Errorf("particle shader: %w", err)
	}

	pr := &ParticleRenderer{
		prog:          prog,
		viewLoc:       gl.GetUniformLocation(prog, gl.Str("view\x00")),
		projectionLoc: gl.GetUniformLocation(prog, gl.Str("projection\x00")),
		expansionLoc:  gl.GetUniformLocation(prog, gl.Str("expansion\x00")),
		timeLoc:       gl.GetUniformLocation(prog, gl.Str("time\x00")),
		hueOffsetLoc:  gl.GetUniformLocation(prog, gl.Str("hueOffset\x00")),
		pixelRatioLoc: gl.GetUniformLocation(prog, gl.Str("pixelRatio\x00")),
		woodFadeLoc:   gl.GetUniformLocation(prog, gl.Str("woodFade\x00")),
		glowLoc:       gl.GetUniformLocation(prog, gl.Str("glow\x00")),
		spriteLoc:     gl.GetUniformLocation(prog, gl.Str("sprite\x00")),
	}
	gl.UseProgram(prog)
	gl.Uniform1i(pr.spriteLoc, 0)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	return pr, nil
}

// Upload pushes both particle sets and the petal sprite to the GPU. The
// attribute arrays are static for the lifetime of the installation.
func (pr *ParticleRenderer) Upload(wood, blossom *tree.ParticleSet, sprite *image.RGBA) {
	pr.wood.upload(wood)
	pr.blossom.upload(blossom)
	if pr.sprite != 0 {
		gl.DeleteTextures(1, &pr.sprite)
	}
	pr.sprite = UploadTexture(sprite)
}

func (b *particleBuffer) upload(set *tree.ParticleSet) {
	if b.vao == 0 {
		gl.GenVertexArrays(1, &b.vao)
		gl.GenBuffers(int32(len(b.vbos)), &b.vbos[0])
	}
	b.count = int32(set.Count())
	if b.count == 0 {
		return
	}

	gl.BindVertexArray(b.vao)
	attrs := []struct {
		data []float32
		size int32
	}{
		{set.Positions, 3},
		{set.Targets, 3},
		{set.Colors, 3},
		{set.Sizes, 1},
		{set.Phases, 1},
		{set.Drifts, 3},
	}
	for i, a := range attrs {
		gl.BindBuffer(gl.ARRAY_BUFFER, b.vbos[i])
		gl.BufferData(gl.ARRAY_BUFFER, len(a.data)*4, gl.Ptr(a.data), gl.STATIC_DRAW)
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointer(uint32(i), a.size, gl.FLOAT, false, 0, gl.PtrOffset(0))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Draw renders the wood set then the blossom set with standard alpha
// blending. Depth is read but never written: particles layer over the
// photo meshes without occluding each other.
func (pr *ParticleRenderer) Draw(frame ParticleFrame) {
	if pr.wood.count == 0 && pr.blossom.count == 0 {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)

	gl.UseProgram(pr.prog)
	gl.UniformMatrix4fv(pr.viewLoc, 1, false, (*float32)(unsafe.Pointer(&frame.View[0][0])))
	gl.UniformMatrix4fv(pr.projectionLoc, 1, false, (*float32)(unsafe.Pointer(&frame.Projection[0][0])))
	gl.Uniform1f(pr.expansionLoc, frame.Expansion)
	gl.Uniform1f(pr.timeLoc, frame.Time)
	gl.Uniform1f(pr.hueOffsetLoc, frame.HueOffset)
	gl.Uniform1f(pr.pixelRatioLoc, frame.PixelRatio)
	gl.Uniform1f(pr.glowLoc, frame.Glow)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, pr.sprite)

	gl.Uniform1f(pr.woodFadeLoc, 1)
	pr.wood.draw()
	gl.Uniform1f(pr.woodFadeLoc, 0)
	pr.blossom.draw()

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

func (b *particleBuffer) draw() {
	if b.count == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.POINTS, 0, b.count)
	gl.BindVertexArray(0)
}

// Destroy releases all GPU resources owned by the renderer.
func (pr *ParticleRenderer) Destroy() {
	pr.wood.destroy()
	pr.blossom.destroy()
	if pr.sprite != 0 {
		gl.DeleteTextures(1, &pr.sprite)
	}
	gl.DeleteProgram(pr.prog)
}

func (b *particleBuffer) destroy() {
	if b.vao == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(int32(len(b.vbos)), &b.vbos[0])
}
