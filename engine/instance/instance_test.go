package instance

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGridCountAndDeterminism(t *testing.T) {
	a := BuildGrid(10, 3.0)
	b := BuildGrid(10, 3.0)

	require.Len(t, a, 100)
	assert.Equal(t, a, b)
}

func TestBuildGridCenteredOnOrigin(t *testing.T) {
	instances := BuildGrid(10, 3.0)

	// With 10 per row the offsets run from -5 to +4 cells, so positions
	// span [-15, 12] on each axis and one instance lands on the origin.
	var minX, maxX float32 = math32.MaxFloat32, -math32.MaxFloat32
	originCount := 0
	for _, inst := range instances {
		minX = math32.Min(minX, inst.Position[0])
		maxX = math32.Max(maxX, inst.Position[0])
		if inst.Position[0] == 0 && inst.Position[1] == 0 && inst.Position[2] == 0 {
			originCount++
		}
	}

	assert.Equal(t, float32(-15), minX)
	assert.Equal(t, float32(12), maxX)
	assert.Equal(t, 1, originCount)
}

func TestBuildGridRotationsAreUnitQuaternions(t *testing.T) {
	for _, inst := range BuildGrid(4, 2.0) {
		q := inst.Rotation
		norm := math32.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
		assert.InDelta(t, float32(1), norm, 1e-5)
	}
}

func TestOriginInstanceRotatesAboutZ(t *testing.T) {
	instances := BuildGrid(2, 1.0) // offsets -1 and 0, so (0, 0, 0) is present

	var origin *Instance
	for i := range instances {
		if instances[i].Position == [3]float32{0, 0, 0} {
			origin = &instances[i]
			break
		}
	}
	require.NotNil(t, origin)

	// 45° about +Z: (sin 22.5°) on z, (cos 22.5°) on w.
	assert.InDelta(t, float32(0), origin.Rotation[0], 1e-6)
	assert.InDelta(t, float32(0), origin.Rotation[1], 1e-6)
	assert.InDelta(t, math32.Sin(math32.Pi/8), origin.Rotation[2], 1e-6)
	assert.InDelta(t, math32.Cos(math32.Pi/8), origin.Rotation[3], 1e-6)
}

func TestToRawCarriesTranslation(t *testing.T) {
	inst := Instance{
		Position: [3]float32{3, -1, 7},
		Rotation: [4]float32{0, 0, 0, 1},
	}
	raw := inst.ToRaw()

	// Identity rotation: upper 3x3 is identity, last column is the position.
	assert.Equal(t, float32(1), raw.Model[0])
	assert.Equal(t, float32(1), raw.Model[5])
	assert.Equal(t, float32(1), raw.Model[10])
	assert.Equal(t, float32(3), raw.Model[12])
	assert.Equal(t, float32(-1), raw.Model[13])
	assert.Equal(t, float32(7), raw.Model[14])
	assert.Equal(t, float32(1), raw.Model[15])
}

func TestMarshalAllLayout(t *testing.T) {
	instances := BuildGrid(3, 2.0)
	raw := FlattenAll(instances)
	require.Len(t, raw, 9)

	buf := MarshalAll(raw)
	require.Len(t, buf, 9*64)

	// Stride check: the second instance's matrix starts at byte 64.
	single := raw[1].Marshal()
	assert.Equal(t, single, buf[64:128])
}

func TestVertexBufferLayout(t *testing.T) {
	layout := VertexBufferLayout()

	assert.Equal(t, uint64(64), layout.ArrayStride)
	require.Len(t, layout.Attributes, 4)
	for i, attr := range layout.Attributes {
		assert.Equal(t, uint64(i*16), attr.Offset)
		assert.Equal(t, uint32(5+i), attr.ShaderLocation)
	}
}
