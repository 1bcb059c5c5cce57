package scene

import (
	"github.com/prism-engine/prism/engine/model"
)

// DrawCommand describes one instanced draw within a frame: which cached
// pipeline to use, which mesh of the scene's model to draw, the material to
// bind (nil for the light visualization pass, which has no material group),
// and how many instances to render.
//
// Commands are pure data; Render resolves them against GPU resources. This
// keeps frame composition testable without a device.
type DrawCommand struct {
	// PipelineKey identifies the cached render pipeline.
	PipelineKey string

	// MeshIndex indexes into the model's mesh list.
	MeshIndex int

	// Material is the material bound at group 0, or nil when the pipeline
	// takes no material group.
	Material model.Material

	// InstanceCount is the number of instances to draw.
	InstanceCount uint32
}
