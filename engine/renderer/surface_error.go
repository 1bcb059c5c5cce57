package renderer

import "strings"

// SurfaceErrorAction describes how the frame loop should react to a failed
// swapchain acquire.
type SurfaceErrorAction int

const (
	// SurfaceErrorActionReconfigure means the surface is lost or outdated and
	// should be reconfigured at the current size before the next frame.
	SurfaceErrorActionReconfigure SurfaceErrorAction = iota

	// SurfaceErrorActionFatal means the device is out of memory and the
	// application should shut down.
	SurfaceErrorActionFatal

	// SurfaceErrorActionSkip means the acquire timed out or failed
	// transiently; skip this frame and try again on the next one.
	SurfaceErrorActionSkip
)

// ClassifySurfaceError maps a swapchain acquire error to the action the frame
// loop should take. wgpu-native reports surface status through error text, so
// classification matches on the status keywords.
//
// Parameters:
//   - err: the error returned by BeginFrame
//
// Returns:
//   - SurfaceErrorAction: the action the frame loop should take
func ClassifySurfaceError(err error) SurfaceErrorAction {
	if err == nil {
		return SurfaceErrorActionSkip
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "lost") || strings.Contains(msg, "outdated"):
		return SurfaceErrorActionReconfigure
	case strings.Contains(msg, "out of memory") || strings.Contains(msg, "outofmemory"):
		return SurfaceErrorActionFatal
	default:
		// Timeouts and anything unrecognized: drop the frame and continue.
		return SurfaceErrorActionSkip
	}
}
