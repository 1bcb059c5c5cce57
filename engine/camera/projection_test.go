package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestProjectionResizeIgnoresZeroDimensions(t *testing.T) {
	proj := NewProjection(800, 600, math32.Pi/4, 0.1, 100.0)
	want := proj.Aspect()

	proj.Resize(0, 600)
	assert.Equal(t, want, proj.Aspect())

	proj.Resize(800, 0)
	assert.Equal(t, want, proj.Aspect())

	proj.Resize(0, 0)
	assert.Equal(t, want, proj.Aspect())

	proj.Resize(-100, -100)
	assert.Equal(t, want, proj.Aspect())

	// Matrix stays finite through the whole sequence.
	m := proj.Matrix()
	for i, v := range m {
		assert.Falsef(t, math32.IsNaN(v) || math32.IsInf(v, 0), "element %d is not finite", i)
	}
}

func TestProjectionResizeUpdatesAspect(t *testing.T) {
	proj := NewProjection(800, 600, math32.Pi/4, 0.1, 100.0)

	proj.Resize(1920, 1080)
	assert.InDelta(t, float32(1920.0/1080.0), proj.Aspect(), 1e-6)
}

func TestProjectionMatrixDepthRange(t *testing.T) {
	proj := NewProjection(1000, 1000, math32.Pi/4, 0.1, 100.0)
	m := proj.Matrix()

	// Near plane point maps to depth 0, far plane point to depth 1.
	nearClip := [2]float32{
		m[2]*0 + m[6]*0 + m[10]*(-0.1) + m[14],
		m[3]*0 + m[7]*0 + m[11]*(-0.1) + m[15],
	}
	assert.InDelta(t, float32(0), nearClip[0]/nearClip[1], 1e-5)

	farClip := [2]float32{
		m[10]*(-100) + m[14],
		m[11]*(-100) + m[15],
	}
	assert.InDelta(t, float32(1), farClip[0]/farClip[1], 1e-4)
}
