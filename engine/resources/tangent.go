package resources

import (
	"github.com/prism-engine/prism/engine/model"
)

// ComputeTangents fills the Tangent and Bitangent fields of the given
// vertices from triangle positions and texture coordinates. Each triangle's
// tangent frame is accumulated onto its three vertices and the result is
// averaged by the number of triangles sharing the vertex, so smooth surfaces
// get smooth tangent frames.
//
// The bitangent is negated to account for the flipped V axis of texture
// space relative to OBJ coordinates.
//
// Parameters:
//   - vertices: the vertex slice to mutate
//   - indices: triangle list indices into vertices (length must be a multiple of 3)
func ComputeTangents(vertices []model.GPUVertex, indices []uint32) {
	counts := make([]int, len(vertices))

	for i := 0; i+2 < len(indices); i += 3 {
		v0 := &vertices[indices[i]]
		v1 := &vertices[indices[i+1]]
		v2 := &vertices[indices[i+2]]

		dp1 := [3]float32{
			v1.Position[0] - v0.Position[0],
			v1.Position[1] - v0.Position[1],
			v1.Position[2] - v0.Position[2],
		}
		dp2 := [3]float32{
			v2.Position[0] - v0.Position[0],
			v2.Position[1] - v0.Position[1],
			v2.Position[2] - v0.Position[2],
		}

		du1 := v1.TexCoord[0] - v0.TexCoord[0]
		dv1 := v1.TexCoord[1] - v0.TexCoord[1]
		du2 := v2.TexCoord[0] - v0.TexCoord[0]
		dv2 := v2.TexCoord[1] - v0.TexCoord[1]

		denom := du1*dv2 - dv1*du2
		if denom == 0 {
			// Degenerate UV mapping; this triangle contributes no frame.
			continue
		}
		r := 1.0 / denom

		var tangent, bitangent [3]float32
		for a := range 3 {
			tangent[a] = (dp1[a]*dv2 - dp2[a]*dv1) * r
			bitangent[a] = (dp2[a]*du1 - dp1[a]*du2) * -r
		}

		for _, idx := range []uint32{indices[i], indices[i+1], indices[i+2]} {
			v := &vertices[idx]
			for a := range 3 {
				v.Tangent[a] += tangent[a]
				v.Bitangent[a] += bitangent[a]
			}
			counts[idx]++
		}
	}

	for i := range vertices {
		if counts[i] == 0 {
			continue
		}
		inv := 1.0 / float32(counts[i])
		for a := range 3 {
			vertices[i].Tangent[a] *= inv
			vertices[i].Bitangent[a] *= inv
		}
	}
}
