package light

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight()

	assert.Equal(t, [3]float32{2, 2, 2}, l.Position())
	assert.Equal(t, [3]float32{1, 1, 1}, l.Color())
	require.NotNil(t, l.BindGroupProvider())
}

func TestAdvancePreservesHeightAndRadius(t *testing.T) {
	l := NewLight(WithPosition(3, 4, 0))
	wantRadius := float32(3)

	for i := 0; i < 10; i++ {
		l.Advance()
		p := l.Position()
		assert.InDelta(t, float32(4), p[1], 1e-5)
		radius := math32.Sqrt(p[0]*p[0] + p[2]*p[2])
		assert.InDelta(t, wantRadius, radius, 1e-4)
	}
}

func TestAdvanceFullOrbitReturnsToStart(t *testing.T) {
	l := NewLight(WithPosition(2, 2, 2))

	for i := 0; i < 360; i++ {
		l.Advance()
	}

	p := l.Position()
	assert.InDelta(t, float32(2), p[0], 1e-3)
	assert.InDelta(t, float32(2), p[1], 1e-3)
	assert.InDelta(t, float32(2), p[2], 1e-3)
}

func TestAdvanceSingleStepAngle(t *testing.T) {
	l := NewLight(WithPosition(1, 0, 0))
	l.Advance()

	// One degree about +Y carries +X toward -Z.
	p := l.Position()
	assert.InDelta(t, math32.Cos(math32.Pi/180), p[0], 1e-6)
	assert.InDelta(t, float32(0), p[1], 1e-6)
	assert.InDelta(t, -math32.Sin(math32.Pi/180), p[2], 1e-6)
}

func TestGPULightUniformMarshal(t *testing.T) {
	l := NewLight(WithPosition(1, 2, 3), WithColor(0.5, 0.25, 1))
	u := NewGPULightUniform(l)
	require.Equal(t, 32, u.Size())

	buf := u.Marshal()
	require.Len(t, buf, 32)
	// 1.0f at offset 0, zero padding at offsets 12 and 28.
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[0:4])
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, buf[12:16])
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x3f}, buf[16:20]) // 0.5f
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, buf[28:32])
}
