package scene

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"hanami/core"
	"hanami/math"
)

// LoadFrameMesh reads an ornamental picture-frame model from a .glb or
// .gltf file, merging every primitive into one mesh. Only geometry is
// taken; the frame is tinted by the photo pass, so materials and embedded
// textures are skipped.
func LoadFrameMesh(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	var vertices []core.Vertex
	var indices []uint32

	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			posIdx, ok := prim.Attributes["POSITION"]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("mesh %d prim %d positions: %w", mi, pi, err)
			}

			var normals [][3]float32
			var uvs [][2]float32
			if idx, ok := prim.Attributes["NORMAL"]; ok {
				normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
			}
			if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
				uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
			}

			base := uint32(len(vertices))
			for i, p := range positions {
				v := core.Vertex{
					Position: math.Vec3{X: p[0], Y: p[1], Z: p[2]},
					Normal:   math.Vec3Front,
					Color:    frameFaceColor,
				}
				if i < len(normals) {
					v.Normal = math.Vec3{X: normals[i][0], Y: normals[i][1], Z: normals[i][2]}
				}
				if i < len(uvs) {
					v.UV = math.Vec2{X: uvs[i][0], Y: uvs[i][1]}
				}
				vertices = append(vertices, v)
			}

			if prim.Indices != nil {
				primIndices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("mesh %d prim %d indices: %w", mi, pi, err)
				}
				for _, idx := range primIndices {
					indices = append(indices, base+idx)
				}
			} else {
				for i := range positions {
					indices = append(indices, base+uint32(i))
				}
			}
		}
	}

	if len(vertices) == 0 {
		return nil, fmt.Errorf("%s contains no geometry", path)
	}
	return CreateMeshFromData(filepath.Base(path), vertices, indices), nil
}

// FrameMesh resolves the frame model for the installation: the given file
// if it loads, otherwise the procedural beveled frame. Asset failure is
// logged once and never stops the loop.
func FrameMesh(path string) *Mesh {
	if path != "" {
		m, err := LoadFrameMesh(path)
		if err == nil {
			return m
		}
		fmt.Printf("frame model %s unavailable, using procedural frame: %v\n", path, err)
	}
	return CreatePhotoFrame(0.08, 0.05)
}
