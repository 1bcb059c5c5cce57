package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mulVec4 applies a column-major 4x4 matrix to a 4-component vector.
func mulVec4(m []float32, x, y, z, w float32) [4]float32 {
	return [4]float32{
		m[0]*x + m[4]*y + m[8]*z + m[12]*w,
		m[1]*x + m[5]*y + m[9]*z + m[13]*w,
		m[2]*x + m[6]*y + m[10]*z + m[14]*w,
		m[3]*x + m[7]*y + m[11]*z + m[15]*w,
	}
}

func TestMul4Identity(t *testing.T) {
	var a, id, out [16]float32
	Identity(id[:])
	for i := range a {
		a[i] = float32(i) * 0.5
	}

	Mul4(out[:], id[:], a[:])
	assert.Equal(t, a, out)

	Mul4(out[:], a[:], id[:])
	assert.Equal(t, a, out)
}

func TestMul4InPlace(t *testing.T) {
	var a, b [16]float32
	Identity(a[:])
	a[12] = 3 // translation on x
	Identity(b[:])
	b[13] = 5 // translation on y

	// Writing the result over an operand must not corrupt the product.
	Mul4(a[:], a[:], b[:])
	assert.InDelta(t, float32(3), a[12], 1e-6)
	assert.InDelta(t, float32(5), a[13], 1e-6)
}

func TestPerspectiveReferenceValues(t *testing.T) {
	var p [16]float32
	fovY := float32(45.0) * math32.Pi / 180.0
	Perspective(p[:], fovY, 1.0, 0.1, 100.0)

	f := 1.0 / math32.Tan(fovY/2.0)
	assert.InDelta(t, f, p[0], 1e-5)
	assert.InDelta(t, f, p[5], 1e-5)
	assert.InDelta(t, float32(-1.002002), p[10], 1e-5)
	assert.InDelta(t, float32(-1.0), p[11], 1e-6)
	assert.InDelta(t, float32(-0.2002002), p[14], 1e-5)
	assert.InDelta(t, float32(0), p[15], 1e-6)
}

func TestDepthRangeCorrectionMapsClipDepth(t *testing.T) {
	var p, c, corrected [16]float32
	near, far := float32(0.1), float32(100.0)
	Perspective(p[:], math32.Pi/4, 1.0, near, far)
	DepthRangeCorrection(c[:])
	Mul4(corrected[:], c[:], p[:])

	// A point on the near plane lands on depth 0 after the perspective divide,
	// a point on the far plane on depth 1.
	nearClip := mulVec4(corrected[:], 0, 0, -near, 1)
	assert.InDelta(t, float32(0), nearClip[2]/nearClip[3], 1e-5)

	farClip := mulVec4(corrected[:], 0, 0, -far, 1)
	assert.InDelta(t, float32(1), farClip[2]/farClip[3], 1e-4)
}

func TestLookToTransformsEyeToOrigin(t *testing.T) {
	var view [16]float32
	LookTo(view[:], 3, 4, 5, 0.2, -0.4, -0.8, 0, 1, 0)

	origin := mulVec4(view[:], 3, 4, 5, 1)
	assert.InDelta(t, float32(0), origin[0], 1e-5)
	assert.InDelta(t, float32(0), origin[1], 1e-5)
	assert.InDelta(t, float32(0), origin[2], 1e-5)
	assert.InDelta(t, float32(1), origin[3], 1e-6)
}

func TestLookToFacesNegativeZ(t *testing.T) {
	var view [16]float32
	// Looking straight down -Z from the origin is the identity view.
	LookTo(view[:], 0, 0, 0, 0, 0, -1, 0, 1, 0)

	ahead := mulVec4(view[:], 0, 0, -10, 1)
	assert.InDelta(t, float32(-10), ahead[2], 1e-5)
	assert.InDelta(t, float32(0), ahead[0], 1e-5)
	assert.InDelta(t, float32(0), ahead[1], 1e-5)
}

func TestQuatRotateVec3QuarterTurnY(t *testing.T) {
	q := QuatFromAxisAngle(0, 1, 0, math32.Pi/2)

	x, y, z := QuatRotateVec3(q, 1, 0, 0)
	assert.InDelta(t, float32(0), x, 1e-6)
	assert.InDelta(t, float32(0), y, 1e-6)
	assert.InDelta(t, float32(-1), z, 1e-6)
}

func TestQuatRotateVec3PreservesLength(t *testing.T) {
	q := QuatFromAxisAngle(1, 2, 3, 0.7)
	x, y, z := QuatRotateVec3(q, 4, -5, 6)

	want := math32.Sqrt(4*4 + 5*5 + 6*6)
	got := math32.Sqrt(x*x + y*y + z*z)
	assert.InDelta(t, want, got, 1e-4)
}

func TestMat4FromQuatTranslation(t *testing.T) {
	identityQ := [4]float32{0, 0, 0, 1}
	var m [16]float32
	Mat4FromQuatTranslation(m[:], identityQ, 7, 8, 9)

	moved := mulVec4(m[:], 1, 1, 1, 1)
	assert.InDelta(t, float32(8), moved[0], 1e-6)
	assert.InDelta(t, float32(9), moved[1], 1e-6)
	assert.InDelta(t, float32(10), moved[2], 1e-6)

	// Rotation applies before translation.
	q := QuatFromAxisAngle(0, 1, 0, math32.Pi/2)
	Mat4FromQuatTranslation(m[:], q, 10, 0, 0)
	rotated := mulVec4(m[:], 1, 0, 0, 1)
	assert.InDelta(t, float32(10), rotated[0], 1e-5)
	assert.InDelta(t, float32(-1), rotated[2], 1e-5)
}

func TestSliceToBytesRoundTrip(t *testing.T) {
	data := []float32{1.5, -2.25, 3.75}
	raw := SliceToBytes(data)
	require.Len(t, raw, 12)

	back := SliceToBytes([]float32(nil))
	assert.Nil(t, back)
}
