// Package opengl is the OpenGL 4.1 backend for the installation: the mesh
// pass that draws photo cards and their frames, the point-sprite particle
// pass, and the HDR post-process chain that gives the blossom its glow.
// Every entry point must run on the main goroutine with the context current.
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"hanami/core"
	"hanami/math"
	"hanami/scene"
)

// GPUMesh holds the GL objects backing one uploaded mesh.
type GPUMesh struct {
	VAO         uint32
	VBO         uint32
	EBO         uint32
	IndexCount  int32
	VertexCount int32
}

// ── Mesh shaders ─────────────────────────────────────────────────────────────

const meshVertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;
layout(location = 3) in vec4 inColor;

uniform mat4 mvp;
uniform mat4 model;

out vec4 fragColor;
out vec3 fragNormal;
out vec2 fragUV;

void main() {
    gl_Position = mvp * vec4(inPosition, 1.0);
    fragColor   = inColor;
    fragNormal  = mat3(model) * inNormal;
    fragUV      = inUV;
}
` + "\x00"

// Lambert with a fixed key light. Lighting is two-sided: the photo cards stay
// visible from behind while the camera orbits through the galaxy.
const meshFragSrc = `
#version 410 core
in vec4 fragColor;
in vec3 fragNormal;
in vec2 fragUV;

out vec4 outColor;

uniform vec3      lightDir;     // normalized, surface towards light
uniform vec3      lightColor;
uniform vec3      ambientColor;
uniform sampler2D albedoTex;
uniform bool      hasTexture;

void main() {
    vec3 albedo = fragColor.rgb;
    if (hasTexture) {
        albedo *= texture(albedoTex, fragUV).rgb;
    }
    vec3  n    = normalize(fragNormal);
    float diff = abs(dot(n, lightDir));
    outColor   = vec4(albedo * (ambientColor + lightColor * diff), 1.0);
}
` + "\x00"

// ── Renderer ─────────────────────────────────────────────────────────────────

// Renderer owns the mesh program and the optional HDR post chain. Particles
// draw through their own ParticleRenderer between BeginFrame and
// BlitPostProcess so they land in the same HDR buffer and catch bloom.
type Renderer struct {
	program uint32

	mvpLoc          int32
	modelLoc        int32
	lightDirLoc     int32
	lightColorLoc   int32
	ambientColorLoc int32
	albedoTexLoc    int32
	hasTextureLoc   int32

	gpuMeshes map[*scene.Mesh]*GPUMesh

	postProcess *PostProcessFBO
	viewportW   int32
	viewportH   int32
}

// NewRenderer initializes OpenGL bindings and compiles the mesh program.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Printf("OpenGL version: %s\n", version)

	prog, err := newProgram(meshVertSrc, meshFragSrc)
	if err != nil {
		return nil, fmt.Errorf("mesh shader compile: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	r := &Renderer{
		program: prog,

		mvpLoc:          gl.GetUniformLocation(prog, gl.Str("mvp\x00")),
		modelLoc:        gl.GetUniformLocation(prog, gl.Str("model\x00")),
		lightDirLoc:     gl.GetUniformLocation(prog, gl.Str("lightDir\x00")),
		lightColorLoc:   gl.GetUniformLocation(prog, gl.Str("lightColor\x00")),
		ambientColorLoc: gl.GetUniformLocation(prog, gl.Str("ambientColor\x00")),
		albedoTexLoc:    gl.GetUniformLocation(prog, gl.Str("albedoTex\x00")),
		hasTextureLoc:   gl.GetUniformLocation(prog, gl.Str("hasTexture\x00")),

		gpuMeshes: make(map[*scene.Mesh]*GPUMesh),
	}

	// The key light never moves: warm late-afternoon sun from the upper left,
	// the direction the tree's blossom colors were authored against.
	key := math.Vec3{X: 0.35, Y: 0.75, Z: 0.55}.Normalize()
	gl.UseProgram(prog)
	gl.Uniform3f(r.lightDirLoc, key.X, key.Y, key.Z)
	gl.Uniform3f(r.lightColorLoc, 1.0, 0.96, 0.90)
	gl.Uniform1i(r.albedoTexLoc, 0)

	return r, nil
}

// SetViewport records the drawable size in pixels and sets the GL viewport.
func (r *Renderer) SetViewport(width, height int) {
	r.viewportW = int32(width)
	r.viewportH = int32(height)
	gl.Viewport(0, 0, r.viewportW, r.viewportH)
}

// ── Post-processing ──────────────────────────────────────────────────────────

// EnablePostProcess creates the HDR render target. Subsequent frames render
// off-screen and resolve through BlitPostProcess.
func (r *Renderer) EnablePostProcess(width, height int) error {
	if r.postProcess != nil {
		return nil
	}
	pp, err := NewPostProcessFBO(width, height)
	if err != nil {
		return err
	}
	r.postProcess = pp
	return nil
}

// HasPostProcess reports whether the HDR chain is active.
func (r *Renderer) HasPostProcess() bool { return r.postProcess != nil }

// ResizePostProcess tracks framebuffer size changes.
func (r *Renderer) ResizePostProcess(width, height int) {
	if r.postProcess != nil {
		r.postProcess.Resize(width, height)
	}
}

// SetExposure adjusts tone-mapping exposure.
func (r *Renderer) SetExposure(exp float32) {
	if r.postProcess != nil {
		r.postProcess.Exposure = exp
	}
}

// EnableBloom switches on the bright-pass glow. Requires EnablePostProcess.
func (r *Renderer) EnableBloom() error {
	if r.postProcess == nil {
		return fmt.Errorf("bloom requires post-processing")
	}
	return r.postProcess.EnableBloom()
}

// SetBloomThreshold sets the luminance cut-off for the bright pass.
func (r *Renderer) SetBloomThreshold(t float32) {
	if r.postProcess != nil {
		r.postProcess.BloomThreshold = t
	}
}

// SetBloomStrength sets the additive bloom multiplier.
func (r *Renderer) SetBloomStrength(s float32) {
	if r.postProcess != nil {
		r.postProcess.BloomStrength = s
	}
}

// ── Frame ────────────────────────────────────────────────────────────────────

// BeginFrame clears the render target to the sky color and prepares the mesh
// program. Renders into the HDR FBO when post-processing is active.
func (r *Renderer) BeginFrame(sky, ambient core.Color) {
	if r.postProcess != nil {
		gl.BindFramebuffer(gl.FRAMEBUFFER, r.postProcess.FBO)
		gl.Viewport(0, 0, r.postProcess.Width, r.postProcess.Height)
	} else {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	}
	gl.ClearColor(sky.R, sky.G, sky.B, sky.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.Uniform3f(r.ambientColorLoc, ambient.R, ambient.G, ambient.B)
}

// DrawMesh renders a mesh with the given transforms. texture 0 means
// untextured: the vertex color carries the surface on its own.
func (r *Renderer) DrawMesh(mesh *scene.Mesh, mvp, model math.Mat4, texture uint32) {
	gpu := r.ensureUploaded(mesh)
	if gpu == nil {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, (*float32)(unsafe.Pointer(&mvp[0][0])))
	gl.UniformMatrix4fv(r.modelLoc, 1, false, (*float32)(unsafe.Pointer(&model[0][0])))

	if texture != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, texture)
		gl.Uniform1i(r.hasTextureLoc, 1)
	} else {
		gl.Uniform1i(r.hasTextureLoc, 0)
	}

	gl.BindVertexArray(gpu.VAO)
	if gpu.IndexCount > 0 {
		gl.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, gpu.VertexCount)
	}
	gl.BindVertexArray(0)
}

// BlitPostProcess resolves the HDR buffer to the default framebuffer,
// applying tone mapping and bloom. No-op when post-processing is off.
func (r *Renderer) BlitPostProcess() {
	if r.postProcess == nil {
		return
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, r.viewportW, r.viewportH)
	r.postProcess.Blit()
}

// ── Mesh upload ──────────────────────────────────────────────────────────────

func (r *Renderer) ensureUploaded(mesh *scene.Mesh) *GPUMesh {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		return gpu
	}
	if len(mesh.Vertices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gpu := &GPUMesh{
		IndexCount:  int32(len(mesh.Indices)),
		VertexCount: int32(len(mesh.Vertices)),
	}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))
	colorOff := int(unsafe.Offsetof(v.Color))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 4, gl.FLOAT, false, stride, gl.PtrOffset(colorOff))

	if gpu.IndexCount > 0 {
		gl.GenBuffers(1, &gpu.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
			len(mesh.Indices)*4,
			gl.Ptr(mesh.Indices),
			gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)

	r.gpuMeshes[mesh] = gpu
	return gpu
}

// ReleaseMesh frees the GPU buffers for one mesh.
func (r *Renderer) ReleaseMesh(mesh *scene.Mesh) {
	gpu, ok := r.gpuMeshes[mesh]
	if !ok {
		return
	}
	gl.DeleteVertexArrays(1, &gpu.VAO)
	gl.DeleteBuffers(1, &gpu.VBO)
	if gpu.EBO != 0 {
		gl.DeleteBuffers(1, &gpu.EBO)
	}
	delete(r.gpuMeshes, mesh)
}

// Destroy frees every GPU resource the renderer owns.
func (r *Renderer) Destroy() {
	for mesh := range r.gpuMeshes {
		r.ReleaseMesh(mesh)
	}
	if r.postProcess != nil {
		r.postProcess.Destroy()
		r.postProcess = nil
	}
	gl.DeleteProgram(r.program)
}

// ── Shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
