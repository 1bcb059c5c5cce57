package camera

import (
	"github.com/prism-engine/prism/engine/renderer/bind_group_provider"
)

type CameraBuilderOption func(*cameraImpl)

// WithBindGroupProvider attaches a bind group provider to the camera.
// The provider describes the GPU binding requirements for the camera uniform.
//
// Parameters:
//   - provider: the bind group provider to attach
//
// Returns:
//   - CameraBuilderOption: functional option to set the bind group provider
func WithBindGroupProvider(provider bind_group_provider.BindGroupProvider) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.bindGroupProvider = provider
	}
}
