package camera

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/prism-engine/prism/common"
)

// cameraControllerImpl is the single implementation of CameraController.
// Movement keys toggle unit velocities along the camera's local axes; mouse
// and scroll input accumulate into deltas consumed on the next update.
type cameraControllerImpl struct {
	mu *sync.Mutex

	// Per-axis unit velocities, 1.0 while the matching key is held.
	amountForward  float32
	amountBackward float32
	amountLeft     float32
	amountRight    float32
	amountUp       float32
	amountDown     float32

	// Accumulated mouse-look deltas, consumed on update.
	rotateHorizontal float32
	rotateVertical   float32

	// Accumulated scroll impulse, consumed on update.
	scroll float32

	speed       float32
	sensitivity float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new camera controller.
//
// Parameters:
//   - speed: movement speed in world units per second
//   - sensitivity: mouse-look sensitivity factor
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(speed, sensitivity float32, options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:          &sync.Mutex{},
		speed:       speed,
		sensitivity: sensitivity,
	}

	for _, option := range options {
		option(cc)
	}

	return cc
}

func (cc *cameraControllerImpl) ProcessKeyboard(key uint32, pressed bool) bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	amount := float32(0)
	if pressed {
		amount = 1.0
	}

	switch key {
	case common.KeyW, common.KeyUp:
		cc.amountForward = amount
	case common.KeyS, common.KeyDown:
		cc.amountBackward = amount
	case common.KeyA, common.KeyLeft:
		cc.amountLeft = amount
	case common.KeyD, common.KeyRight:
		cc.amountRight = amount
	case common.KeyQ:
		cc.amountUp = amount
	case common.KeyE:
		cc.amountDown = amount
	default:
		return false
	}
	return true
}

func (cc *cameraControllerImpl) ProcessMouse(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	// Accumulate: event polling can deliver several motion events per frame.
	cc.rotateHorizontal += dx
	cc.rotateVertical += dy
}

func (cc *cameraControllerImpl) ProcessScroll(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.scroll += delta
}

func (cc *cameraControllerImpl) UpdateCamera(cam Camera, dt float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	yaw := cam.Yaw()
	pitch := cam.Pitch()
	px, py, pz := cam.Position()

	cosYaw := math32.Cos(yaw)
	sinYaw := math32.Sin(yaw)

	// Planar movement along the yaw-only forward and right axes keeps WASD
	// travel horizontal regardless of pitch.
	moveForward := (cc.amountForward - cc.amountBackward) * cc.speed * dt
	moveRight := (cc.amountRight - cc.amountLeft) * cc.speed * dt
	px += cosYaw*moveForward - sinYaw*moveRight
	pz += sinYaw*moveForward + cosYaw*moveRight

	// Scroll moves along the full view direction, pitch included.
	cosPitch := math32.Cos(pitch)
	sinPitch := math32.Sin(pitch)
	scrollward := cc.scroll * cc.speed * cc.sensitivity * dt
	px += cosPitch * cosYaw * scrollward
	py += sinPitch * scrollward
	pz += cosPitch * sinYaw * scrollward
	cc.scroll = 0

	py += (cc.amountUp - cc.amountDown) * cc.speed * dt

	yaw += cc.rotateHorizontal * cc.sensitivity * dt
	pitch += -cc.rotateVertical * cc.sensitivity * dt
	cc.rotateHorizontal = 0
	cc.rotateVertical = 0

	cam.SetPosition(px, py, pz)
	cam.SetYaw(yaw)
	cam.SetPitch(pitch) // clamped by the camera
	cam.Update()
}

func (cc *cameraControllerImpl) Speed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.speed
}

func (cc *cameraControllerImpl) Sensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.sensitivity
}
