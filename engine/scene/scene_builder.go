package scene

import (
	"github.com/prism-engine/prism/engine/instance"
	"github.com/prism-engine/prism/engine/light"
	"github.com/prism-engine/prism/engine/model"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithLight replaces the scene's default point light.
//
// Parameters:
//   - l: the light to attach
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLight(l light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.lightSource = l
	}
}

// WithModel attaches the model drawn by the instanced pass.
//
// Parameters:
//   - m: the model to attach
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithModel(m model.Model) SceneBuilderOption {
	return func(s *scene) {
		s.mdl = m
	}
}

// WithDebugMaterial sets the material substituted for every mesh material
// while the debug toggle is on.
//
// Parameters:
//   - m: the substitution material
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithDebugMaterial(m model.Material) SceneBuilderOption {
	return func(s *scene) {
		s.debugMaterial = m
	}
}

// WithInstances sets the per-instance transforms of the model grid.
//
// Parameters:
//   - instances: the instance list
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithInstances(instances []instance.Instance) SceneBuilderOption {
	return func(s *scene) {
		s.instances = instances
	}
}
