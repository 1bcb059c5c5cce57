package pipeline

import (
	"strings"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("test")

	assert.Equal(t, "test", p.PipelineKey())
	assert.Equal(t, "vs_main", p.VertexEntryPoint())
	assert.Equal(t, "fs_main", p.FragmentEntryPoint())
	assert.True(t, p.DepthTestEnabled())
	assert.True(t, p.DepthWriteEnabled())
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())

	// Replace blend: source only.
	blend := p.BlendState()
	require.NotNil(t, blend)
	assert.Equal(t, wgpu.BlendFactorOne, blend.Color.SrcFactor)
	assert.Equal(t, wgpu.BlendFactorZero, blend.Color.DstFactor)
}

func TestModelPipelineLayouts(t *testing.T) {
	p := NewModelPipeline()

	assert.Equal(t, ModelPipelineKey, p.PipelineKey())
	assert.True(t, strings.Contains(p.ShaderSource(), "vs_main"))
	assert.True(t, strings.Contains(p.ShaderSource(), "fs_main"))

	layouts := p.VertexLayouts()
	require.Len(t, layouts, 2)
	assert.Equal(t, wgpu.VertexStepModeVertex, layouts[0].StepMode)
	assert.Equal(t, wgpu.VertexStepModeInstance, layouts[1].StepMode)

	// material, camera, light
	groups := p.BindGroupLayoutDescriptors()
	require.Len(t, groups, 3)
	assert.Len(t, groups[0].Entries, 4)
	assert.Len(t, groups[1].Entries, 1)
	assert.Len(t, groups[2].Entries, 1)
}

func TestLightPipelineLayouts(t *testing.T) {
	p := NewLightPipeline()

	assert.Equal(t, LightPipelineKey, p.PipelineKey())

	layouts := p.VertexLayouts()
	require.Len(t, layouts, 1)
	assert.Equal(t, wgpu.VertexStepModeVertex, layouts[0].StepMode)

	// camera, light
	groups := p.BindGroupLayoutDescriptors()
	require.Len(t, groups, 2)
	assert.Len(t, groups[0].Entries, 1)
	assert.Len(t, groups[1].Entries, 1)
}

func TestPipelineKeysDistinct(t *testing.T) {
	assert.NotEqual(t, NewModelPipeline().PipelineKey(), NewLightPipeline().PipelineKey())
}
