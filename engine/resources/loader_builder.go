package resources

import (
	"github.com/prism-engine/prism/engine/renderer"
)

// LoaderBuilderOption is a functional option for configuring a Loader.
// Use the With* functions to create options.
type LoaderBuilderOption func(l *loader)

// WithRenderer attaches a Renderer so imported meshes and material textures
// are uploaded to the GPU during Load. Without a Renderer, models are built
// CPU-side only.
//
// Parameters:
//   - r: the renderer to attach
//
// Returns:
//   - LoaderBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) LoaderBuilderOption {
	return func(l *loader) {
		l.renderer = r
	}
}

// WithTextureWorkers sets the number of worker goroutines used to decode
// material textures during model import. Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of texture decode workers (minimum 1)
//
// Returns:
//   - LoaderBuilderOption: option function to apply
func WithTextureWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		if n < 1 {
			n = 1
		}
		l.textureWorkers = n
	}
}
