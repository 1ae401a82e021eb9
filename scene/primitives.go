package scene

import (
	"hanami/core"
	"hanami/math"
)

var (
	frameFaceColor = core.Color{R: 0.26, G: 0.17, B: 0.11, A: 1} // lacquered walnut
	frameEdgeColor = core.Color{R: 0.17, G: 0.11, B: 0.07, A: 1}
)

// CreatePhotoFrame generates the fallback beveled picture frame: a flat
// front ring around the unit picture quad with angled outer and inner
// walls. border is the ring width, depth how far the frame stands off the
// picture plane.
func CreatePhotoFrame(border, depth float32) *Mesh {
	var vertices []core.Vertex
	var indices []uint32

	addQuad := func(a, b, c, d, normal math.Vec3, col core.Color) {
		base := uint32(len(vertices))
		uvs := [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
		for i, p := range [4]math.Vec3{a, b, c, d} {
			vertices = append(vertices, core.Vertex{Position: p, Normal: normal, UV: uvs[i], Color: col})
		}
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	inner := float32(0.5)
	outer := inner + border
	backOuter := frameCorners(outer, 0)
	frontOuter := frameCorners(outer, depth)
	frontInner := frameCorners(inner, depth)
	backInner := frameCorners(inner, 0)

	// Side-by-side walls per edge: bottom, right, top, left.
	outward := [4]math.Vec3{
		{X: 0, Y: -1, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: -1, Y: 0, Z: 0},
	}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		// Front ring.
		addQuad(frontOuter[i], frontOuter[j], frontInner[j], frontInner[i], math.Vec3Front, frameFaceColor)
		// Outer wall, angled slightly forward.
		outerNormal := outward[i].Add(math.Vec3{Z: 0.4}).Normalize()
		addQuad(backOuter[i], backOuter[j], frontOuter[j], frontOuter[i], outerNormal, frameEdgeColor)
		// Inner reveal facing the picture.
		innerNormal := outward[i].Negate().Add(math.Vec3{Z: 0.6}).Normalize()
		addQuad(frontInner[i], frontInner[j], backInner[j], backInner[i], innerNormal, frameEdgeColor)
	}

	return CreateMeshFromData("PhotoFrame", vertices, indices)
}

// frameCorners returns the square ring corners at half-extent h and depth
// z, ordered bottom-left, bottom-right, top-right, top-left.
func frameCorners(h, z float32) [4]math.Vec3 {
	return [4]math.Vec3{
		{X: -h, Y: -h, Z: z},
		{X: h, Y: -h, Z: z},
		{X: h, Y: h, Z: z},
		{X: -h, Y: h, Z: z},
	}
}
