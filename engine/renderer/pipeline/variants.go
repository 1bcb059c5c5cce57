package pipeline

import (
	_ "embed"

	"github.com/prism-engine/prism/engine/camera"
	"github.com/prism-engine/prism/engine/instance"
	"github.com/prism-engine/prism/engine/light"
	"github.com/prism-engine/prism/engine/model"
)

// ModelPipelineKey identifies the lit instanced model pipeline.
const ModelPipelineKey = "model"

// LightPipelineKey identifies the light visualization pipeline.
const LightPipelineKey = "light"

//go:embed assets/model.wgsl
var modelShaderSource string

//go:embed assets/light.wgsl
var lightShaderSource string

// NewModelPipeline creates the lit instanced model pipeline: per-vertex mesh
// data at slot 0, per-instance model matrices at slot 1, and bind groups
// material (0), camera (1), light (2).
//
// Returns:
//   - Pipeline: the configured model pipeline, not yet registered with the Renderer
func NewModelPipeline() Pipeline {
	return NewPipeline(ModelPipelineKey,
		WithShader("Normal Shader", modelShaderSource),
		WithVertexLayouts(model.VertexBufferLayout(), instance.VertexBufferLayout()),
		WithBindGroupLayoutDescriptors(
			model.MaterialBindGroupLayoutDescriptor(),
			camera.BindGroupLayoutDescriptor(),
			light.BindGroupLayoutDescriptor(),
		),
	)
}

// NewLightPipeline creates the light visualization pipeline: per-vertex mesh
// data at slot 0 only, and bind groups camera (0), light (1).
//
// Returns:
//   - Pipeline: the configured light pipeline, not yet registered with the Renderer
func NewLightPipeline() Pipeline {
	return NewPipeline(LightPipelineKey,
		WithShader("Light Shader", lightShaderSource),
		WithVertexLayouts(model.VertexBufferLayout()),
		WithBindGroupLayoutDescriptors(
			camera.BindGroupLayoutDescriptor(),
			light.BindGroupLayoutDescriptor(),
		),
	)
}
