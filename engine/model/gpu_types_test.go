package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUVertexSize(t *testing.T) {
	v := GPUVertex{}
	assert.Equal(t, 56, v.Size())
}

func TestGPUVertexMarshalOffsets(t *testing.T) {
	v := GPUVertex{
		Position:  [3]float32{1, 0, 0},
		TexCoord:  [2]float32{1, 0},
		Normal:    [3]float32{0, 1, 0},
		Tangent:   [3]float32{1, 0, 0},
		Bitangent: [3]float32{0, 0, 1},
	}

	buf := v.Marshal()
	require.Len(t, buf, 56)

	one := []byte{0x00, 0x00, 0x80, 0x3f}
	assert.Equal(t, one, buf[0:4])   // position.x
	assert.Equal(t, one, buf[12:16]) // texcoord.u
	assert.Equal(t, one, buf[24:28]) // normal.y
	assert.Equal(t, one, buf[32:36]) // tangent.x
	assert.Equal(t, one, buf[52:56]) // bitangent.z
}

func TestMarshalVerticesStride(t *testing.T) {
	vertices := []GPUVertex{
		{Position: [3]float32{1, 2, 3}},
		{Position: [3]float32{4, 5, 6}},
	}

	buf := MarshalVertices(vertices)
	require.Len(t, buf, 112)
	assert.Equal(t, vertices[1].Marshal(), buf[56:112])

	assert.Nil(t, MarshalVertices(nil))
}

func TestMarshalIndicesLittleEndian(t *testing.T) {
	buf := MarshalIndices([]uint32{0, 1, 0x01020304})
	require.Len(t, buf, 12)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf[8:12])
}

func TestVertexBufferLayoutLocations(t *testing.T) {
	layout := VertexBufferLayout()

	assert.Equal(t, uint64(56), layout.ArrayStride)
	require.Len(t, layout.Attributes, 5)

	wantOffsets := []uint64{0, 12, 20, 32, 44}
	for i, attr := range layout.Attributes {
		assert.Equal(t, wantOffsets[i], attr.Offset)
		assert.Equal(t, uint32(i), attr.ShaderLocation)
	}
}

func TestModelMaterialLookup(t *testing.T) {
	mat := NewMaterial("cube-material", nil)
	m := NewModel(
		WithName("cube"),
		WithMeshes([]Mesh{NewMesh("cube_mesh", nil, 0)}),
		WithMaterials([]Material{mat}),
	)

	require.Len(t, m.Meshes(), 1)
	assert.Equal(t, mat, m.Material(0))
	assert.Nil(t, m.Material(1))
	assert.Nil(t, m.Material(-1))
}
