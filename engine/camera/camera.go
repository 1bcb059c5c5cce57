package camera

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/chewxy/math32"
	"github.com/prism-engine/prism/common"
	"github.com/prism-engine/prism/engine/renderer/bind_group_provider"
)

// maxPitch keeps the pitch strictly inside ±π/2 so the view direction never
// becomes collinear with the world up vector.
const maxPitch = math32.Pi/2 - 0.0001

// cameraCount is an atomic counter used to generate unique bind group provider names for each camera instance.
var cameraCount atomic.Uint64

type cameraImpl struct {
	mu *sync.Mutex

	position [3]float32
	yaw      float32 // radians, rotation around world Y
	pitch    float32 // radians, clamped to ±maxPitch

	viewMatrix [16]float32

	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Camera is a first-person camera described by a world-space position and
// yaw/pitch view angles. It computes the view matrix consumed by the camera
// uniform each frame via Update().
type Camera interface {
	// Position returns the camera position in world space.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Yaw returns the horizontal view angle in radians.
	//
	// Returns:
	//   - float32: yaw in radians
	Yaw() float32

	// Pitch returns the vertical view angle in radians.
	//
	// Returns:
	//   - float32: pitch in radians
	Pitch() float32

	// Forward returns the unit view direction derived from yaw and pitch.
	//
	// Returns:
	//   - x, y, z: direction components
	Forward() (x, y, z float32)

	// ViewMatrix returns the current 4x4 view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// BindGroupProvider returns the camera's bind group provider for GPU resources.
	// Returns nil if not set.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider or nil
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// Update recomputes the view matrix from the current position and angles.
	// Should be called once per frame after the controller has applied input.
	Update()

	// SetPosition sets the camera position in world space.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetYaw sets the horizontal view angle in radians.
	//
	// Parameters:
	//   - yaw: yaw in radians
	SetYaw(yaw float32)

	// SetPitch sets the vertical view angle in radians.
	// Values outside ±(π/2 − ε) are clamped.
	//
	// Parameters:
	//   - pitch: pitch in radians
	SetPitch(pitch float32)

	// SetBindGroupProvider sets the camera's bind group provider.
	//
	// Parameters:
	//   - provider: the bind group provider to set
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera at the given position with the given view
// angles (radians).
//
// Parameters:
//   - x, y, z: initial position in world space
//   - yaw: initial yaw in radians
//   - pitch: initial pitch in radians
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(x, y, z, yaw, pitch float32, options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:       &sync.Mutex{},
		position: [3]float32{x, y, z},
		yaw:      yaw,
		pitch:    clampPitch(pitch),
		bindGroupProvider: bind_group_provider.NewBindGroupProvider(
			"camera_" + strconv.FormatUint(cameraCount.Load(), 10),
		),
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrix()
	cameraCount.Add(1)
	return c
}

func (c *cameraImpl) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position[0], c.position[1], c.position[2]
}

func (c *cameraImpl) Yaw() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}

func (c *cameraImpl) Pitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *cameraImpl) Forward() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.forward()
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) SetPosition(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = [3]float32{x, y, z}
}

func (c *cameraImpl) SetYaw(yaw float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yaw = yaw
}

func (c *cameraImpl) SetPitch(pitch float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pitch = clampPitch(pitch)
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateMatrix()
}

func (c *cameraImpl) BindGroupProvider() bind_group_provider.BindGroupProvider {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bindGroupProvider
}

func (c *cameraImpl) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindGroupProvider = provider
}

// forward derives the unit view direction from yaw and pitch.
// Caller must hold the mutex.
func (c *cameraImpl) forward() (x, y, z float32) {
	cosPitch := math32.Cos(c.pitch)
	return cosPitch * math32.Cos(c.yaw), math32.Sin(c.pitch), cosPitch * math32.Sin(c.yaw)
}

// updateMatrix recomputes the view matrix from position and view angles.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrix() {
	fx, fy, fz := c.forward()
	common.LookTo(c.viewMatrix[:],
		c.position[0], c.position[1], c.position[2],
		fx, fy, fz,
		0, 1, 0,
	)
}

func clampPitch(pitch float32) float32 {
	if pitch < -maxPitch {
		return -maxPitch
	}
	if pitch > maxPitch {
		return maxPitch
	}
	return pitch
}
