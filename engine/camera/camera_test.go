package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/prism-engine/prism/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deg(d float32) float32 {
	return d * math32.Pi / 180.0
}

// applyMat4 applies a column-major 4x4 matrix to a point (w = 1).
func applyMat4(m [16]float32, x, y, z float32) [4]float32 {
	return [4]float32{
		m[0]*x + m[4]*y + m[8]*z + m[12],
		m[1]*x + m[5]*y + m[9]*z + m[13],
		m[2]*x + m[6]*y + m[10]*z + m[14],
		m[3]*x + m[7]*y + m[11]*z + m[15],
	}
}

func TestViewMatrixMapsEyeToOrigin(t *testing.T) {
	cases := []struct {
		name       string
		eye        [3]float32
		yaw, pitch float32
	}{
		{"default pose", [3]float32{0, 5, 10}, deg(-90), deg(-20)},
		{"level view", [3]float32{3, 1, -4}, deg(30), 0},
		{"steep pitch", [3]float32{-2, 8, 2}, deg(150), deg(80)},
		{"pitch clamped", [3]float32{1, 1, 1}, deg(-45), deg(120)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cam := NewCamera(tc.eye[0], tc.eye[1], tc.eye[2], tc.yaw, tc.pitch)
			view := cam.ViewMatrix()

			origin := applyMat4(view, tc.eye[0], tc.eye[1], tc.eye[2])
			assert.InDelta(t, float32(0), origin[0], 1e-4)
			assert.InDelta(t, float32(0), origin[1], 1e-4)
			assert.InDelta(t, float32(0), origin[2], 1e-4)
			assert.InDelta(t, float32(1), origin[3], 1e-6)
		})
	}
}

func TestPitchClamp(t *testing.T) {
	cam := NewCamera(0, 0, 0, 0, 0)

	cam.SetPitch(math32.Pi) // far past vertical
	assert.InDelta(t, maxPitch, cam.Pitch(), 1e-6)

	cam.SetPitch(-math32.Pi)
	assert.InDelta(t, -maxPitch, cam.Pitch(), 1e-6)

	cam.SetPitch(0.5)
	assert.InDelta(t, float32(0.5), cam.Pitch(), 1e-6)
}

func TestForwardDirection(t *testing.T) {
	// Yaw -90° looks down -Z, pitch tilts toward -Y.
	cam := NewCamera(0, 0, 0, deg(-90), deg(-20))
	x, y, z := cam.Forward()
	assert.InDelta(t, float32(0), x, 1e-6)
	assert.InDelta(t, -math32.Sin(deg(20)), y, 1e-6)
	assert.InDelta(t, -math32.Cos(deg(20)), z, 1e-6)
}

// TestCombinedMatrixReference checks the full camera transform for a fixed
// pose against independently computed values: eye (0, 5, 10), yaw -90°,
// pitch -20°, 45° fov, 16:9 aspect, near 0.1, far 100.
func TestCombinedMatrixReference(t *testing.T) {
	cam := NewCamera(0, 5, 10, deg(-90), deg(-20))
	proj := NewProjection(1280, 720, deg(45), 0.1, 100.0)

	view := cam.ViewMatrix()
	projection := proj.Matrix()

	var combined [16]float32
	common.Mul4(combined[:], projection[:], view[:])

	want := [16]float32{
		1.3579951, 0, 0, 0,
		0, 2.2686187, -0.3423625, -0.3420201,
		0, -0.8257096, -0.9406332, -0.9396926,
		0, -3.0860000, 11.0180445, 11.1070265,
	}

	for i := range want {
		assert.InDeltaf(t, want[i], combined[i], 1e-4, "element %d", i)
	}
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	u := NewGPUCameraUniform()
	require.Equal(t, 64, u.Size())

	buf := u.Marshal()
	require.Len(t, buf, 64)
	// Identity diagonal: 1.0f at offsets 0, 20, 40, 60.
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[0:4])
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[20:24])
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[40:44])
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[60:64])
}
