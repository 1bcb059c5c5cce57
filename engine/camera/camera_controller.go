package camera

// CameraController integrates keyboard, mouse, and scroll input into smooth
// camera motion. Key events set per-axis unit velocities that persist until
// release; mouse and scroll events accumulate deltas that are consumed by the
// next UpdateCamera call.
type CameraController interface {
	// ProcessKeyboard applies a key press or release to the movement state.
	// Recognized keys: W/Up (forward), S/Down (backward), A/Left (left),
	// D/Right (right), Q (up), E (down).
	//
	// Parameters:
	//   - key: the virtual key code (see common key code constants)
	//   - pressed: true on press, false on release
	//
	// Returns:
	//   - bool: true if the key is a recognized movement key
	ProcessKeyboard(key uint32, pressed bool) bool

	// ProcessMouse accumulates a mouse-look rotation delta.
	// The delta is consumed (zeroed) by the next UpdateCamera call.
	//
	// Parameters:
	//   - dx: horizontal mouse movement in pixels
	//   - dy: vertical mouse movement in pixels
	ProcessMouse(dx, dy float32)

	// ProcessScroll accumulates a scroll impulse that moves the camera along
	// its view direction. Consumed by the next UpdateCamera call.
	//
	// Parameters:
	//   - delta: scroll amount (positive = forward)
	ProcessScroll(delta float32)

	// UpdateCamera integrates the accumulated input into the camera's position
	// and view angles, scaled by the elapsed time. Rotation and scroll deltas
	// are zeroed; key velocities persist until the matching release event.
	//
	// Parameters:
	//   - cam: the camera to mutate
	//   - dt: elapsed time in seconds since the previous update
	UpdateCamera(cam Camera, dt float32)

	// Speed returns the movement speed in world units per second.
	//
	// Returns:
	//   - float32: the movement speed
	Speed() float32

	// Sensitivity returns the mouse-look sensitivity factor.
	//
	// Returns:
	//   - float32: the sensitivity factor
	Sensitivity() float32
}
