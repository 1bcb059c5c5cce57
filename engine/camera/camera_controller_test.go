package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/prism-engine/prism/common"
	"github.com/stretchr/testify/assert"
)

func TestControllerForwardMotionFollowsYaw(t *testing.T) {
	// Yaw -90° faces -Z, so holding forward moves the camera along -Z only.
	cam := NewCamera(0, 5, 10, deg(-90), deg(-20))
	cc := NewCameraController(4.0, 0.4)

	assert.True(t, cc.ProcessKeyboard(common.KeyW, true))
	cc.UpdateCamera(cam, 0.5)

	x, y, z := cam.Position()
	assert.InDelta(t, float32(0), x, 1e-5)
	assert.InDelta(t, float32(5), y, 1e-5)
	assert.InDelta(t, float32(8), z, 1e-5) // 10 - 4.0*0.5

	// Release stops the motion.
	assert.True(t, cc.ProcessKeyboard(common.KeyW, false))
	cc.UpdateCamera(cam, 0.5)
	_, _, z2 := cam.Position()
	assert.InDelta(t, float32(8), z2, 1e-5)
}

func TestControllerUnrecognizedKey(t *testing.T) {
	cc := NewCameraController(4.0, 0.4)
	assert.False(t, cc.ProcessKeyboard(common.KeySpace, true))
	assert.False(t, cc.ProcessKeyboard(999, true))
}

func TestControllerVerticalKeys(t *testing.T) {
	cam := NewCamera(0, 0, 0, 0, 0)
	cc := NewCameraController(2.0, 0.4)

	assert.True(t, cc.ProcessKeyboard(common.KeyQ, true))
	cc.UpdateCamera(cam, 1.0)
	_, y, _ := cam.Position()
	assert.InDelta(t, float32(2), y, 1e-5)

	cc.ProcessKeyboard(common.KeyQ, false)
	assert.True(t, cc.ProcessKeyboard(common.KeyE, true))
	cc.UpdateCamera(cam, 1.0)
	_, y, _ = cam.Position()
	assert.InDelta(t, float32(0), y, 1e-5)
}

func TestControllerMouseDeltasConsumed(t *testing.T) {
	cam := NewCamera(0, 0, 0, 0, 0)
	cc := NewCameraController(4.0, 1.0)

	cc.ProcessMouse(10, -5)
	cc.UpdateCamera(cam, 0.1)

	assert.InDelta(t, float32(1.0), cam.Yaw(), 1e-5)    // 10 * 1.0 * 0.1
	assert.InDelta(t, float32(0.5), cam.Pitch(), 1e-5)  // -(-5) * 1.0 * 0.1

	// Deltas do not accumulate across updates.
	cc.UpdateCamera(cam, 0.1)
	assert.InDelta(t, float32(1.0), cam.Yaw(), 1e-5)
	assert.InDelta(t, float32(0.5), cam.Pitch(), 1e-5)
}

func TestControllerMouseDeltasAccumulateBetweenUpdates(t *testing.T) {
	cam := NewCamera(0, 0, 0, 0, 0)
	cc := NewCameraController(4.0, 1.0)

	// Several motion events can arrive between two updates; their deltas add.
	cc.ProcessMouse(10, 0)
	cc.ProcessMouse(10, -5)
	cc.UpdateCamera(cam, 0.1)

	assert.InDelta(t, float32(2.0), cam.Yaw(), 1e-5)   // (10 + 10) * 1.0 * 0.1
	assert.InDelta(t, float32(0.5), cam.Pitch(), 1e-5) // -(-5) * 1.0 * 0.1
}

func TestControllerScrollDeltasAccumulateBetweenUpdates(t *testing.T) {
	cam := NewCamera(0, 0, 0, 0, 0)
	cc := NewCameraController(4.0, 0.5)

	cc.ProcessScroll(1.0)
	cc.ProcessScroll(1.0)
	cc.UpdateCamera(cam, 1.0)

	x, _, _ := cam.Position()
	assert.InDelta(t, float32(4.0), x, 1e-5) // (1 + 1) * 4.0 * 0.5 * 1.0
}

func TestControllerScrollImpulseConsumed(t *testing.T) {
	// Level camera facing +X: scroll moves straight along +X.
	cam := NewCamera(0, 0, 0, 0, 0)
	cc := NewCameraController(4.0, 0.5)

	cc.ProcessScroll(2.0)
	cc.UpdateCamera(cam, 1.0)
	x, _, _ := cam.Position()
	assert.InDelta(t, float32(4.0), x, 1e-5) // 2.0 * 4.0 * 0.5 * 1.0

	cc.UpdateCamera(cam, 1.0)
	x, _, _ = cam.Position()
	assert.InDelta(t, float32(4.0), x, 1e-5)
}

func TestControllerPitchClampedThroughUpdate(t *testing.T) {
	cam := NewCamera(0, 0, 0, 0, 0)
	cc := NewCameraController(4.0, 100.0)

	cc.ProcessMouse(0, -1000) // huge upward look
	cc.UpdateCamera(cam, 1.0)
	assert.LessOrEqual(t, cam.Pitch(), math32.Pi/2)
	assert.InDelta(t, maxPitch, cam.Pitch(), 1e-6)
}
