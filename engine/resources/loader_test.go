package resources

import (
	"testing"

	"github.com/prism-engine/prism/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udhos/gwob"
)

const testObj = `mtllib test.mtl
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
g front
usemtl mat_a
f 1/1/1 2/2/1 3/3/1
g back
usemtl mat_b
f 1/1/1 3/3/1 2/2/1
`

const testMtl = `newmtl mat_a
Kd 1.0 1.0 1.0
map_Bump -bm 1.0 normal_a.png
newmtl mat_b
Kd 0.5 0.5 0.5
bump normal_b.png
`

func TestComputeTangentsAxisAlignedTriangle(t *testing.T) {
	vertices := []model.GPUVertex{
		{Position: [3]float32{0, 0, 0}, TexCoord: [2]float32{0, 0}},
		{Position: [3]float32{1, 0, 0}, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{0, 1, 0}, TexCoord: [2]float32{0, 1}},
	}
	indices := []uint32{0, 1, 2}

	ComputeTangents(vertices, indices)

	for _, v := range vertices {
		assert.InDelta(t, 1.0, v.Tangent[0], 1e-6)
		assert.InDelta(t, 0.0, v.Tangent[1], 1e-6)
		assert.InDelta(t, 0.0, v.Tangent[2], 1e-6)

		assert.InDelta(t, 0.0, v.Bitangent[0], 1e-6)
		assert.InDelta(t, -1.0, v.Bitangent[1], 1e-6)
		assert.InDelta(t, 0.0, v.Bitangent[2], 1e-6)
	}
}

func TestComputeTangentsSkipsDegenerateUVs(t *testing.T) {
	vertices := []model.GPUVertex{
		{Position: [3]float32{0, 0, 0}},
		{Position: [3]float32{1, 0, 0}},
		{Position: [3]float32{0, 1, 0}},
	}
	indices := []uint32{0, 1, 2}

	ComputeTangents(vertices, indices)

	for _, v := range vertices {
		assert.Equal(t, [3]float32{}, v.Tangent)
		assert.Equal(t, [3]float32{}, v.Bitangent)
	}
}

func TestScanNormalMaps(t *testing.T) {
	maps := scanNormalMaps([]byte(testMtl))

	assert.Equal(t, "normal_a.png", maps["mat_a"])
	assert.Equal(t, "normal_b.png", maps["mat_b"])
}

func TestBuildVerticesDeinterleavesAndFlipsV(t *testing.T) {
	o, err := gwob.NewObjFromBuf("tri", []byte(testObj), &gwob.ObjParserOptions{})
	require.NoError(t, err)

	vertices := buildVertices(o)
	require.NotEmpty(t, vertices)

	first := vertices[0]
	assert.Equal(t, [3]float32{0, 0, 0}, first.Position)
	assert.Equal(t, [2]float32{0, 1}, first.TexCoord)
	assert.Equal(t, [3]float32{0, 0, 1}, first.Normal)
}

func TestLoadBufBuildsModel(t *testing.T) {
	// No map_Kd statements so fallback textures are used and no files are read.
	mtl := "newmtl mat_a\nKd 1 1 1\nnewmtl mat_b\nKd 0.5 0.5 0.5\n"

	l := NewLoader(WithTextureWorkers(2))
	m, err := l.LoadBuf("test_model", []byte(testObj), []byte(mtl))
	require.NoError(t, err)

	assert.Equal(t, "test_model", m.Name())
	require.Len(t, m.Meshes(), 2)
	require.Len(t, m.Materials(), 2)

	assert.Equal(t, "front", m.Meshes()[0].Name())
	assert.Equal(t, 0, m.Meshes()[0].MaterialIndex())
	assert.Equal(t, "back", m.Meshes()[1].Name())
	assert.Equal(t, 1, m.Meshes()[1].MaterialIndex())

	assert.Equal(t, "mat_a", m.Materials()[0].Name())
	assert.Equal(t, "mat_b", m.Materials()[1].Name())
}

func TestLoadBufCachesByName(t *testing.T) {
	l := NewLoader(WithTextureWorkers(1))

	first, err := l.LoadBuf("cached", []byte(testObj), nil)
	require.NoError(t, err)
	second, err := l.LoadBuf("cached", []byte(testObj), nil)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, first, l.Get("cached"))
	assert.Len(t, l.Models(), 1)
}
