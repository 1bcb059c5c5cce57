package scene

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/prism-engine/prism/common"
	"github.com/prism-engine/prism/engine/camera"
	"github.com/prism-engine/prism/engine/instance"
	"github.com/prism-engine/prism/engine/model"
	"github.com/prism-engine/prism/engine/renderer"
	"github.com/prism-engine/prism/engine/renderer/bind_group_provider"
	"github.com/prism-engine/prism/engine/renderer/pipeline"
	"github.com/prism-engine/prism/engine/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRenderer records frame lifecycle calls so Render's ordering and error
// handling can be checked without a GPU device.
type stubRenderer struct {
	beginErr error
	drawErr  error

	beginFrames int
	drawCalls   int
	endFrames   int
	aborts      int
	presents    int
}

var _ renderer.Renderer = &stubRenderer{}

func (r *stubRenderer) Pipeline(key string) pipeline.Pipeline          { return nil }
func (r *stubRenderer) Pipelines() map[string]pipeline.Pipeline        { return nil }
func (r *stubRenderer) RegisterPipelines(p ...pipeline.Pipeline) error { return nil }
func (r *stubRenderer) Resize(width, height int)                       {}
func (r *stubRenderer) SetPresentMode(mode renderer.PresentMode)       {}

func (r *stubRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	return nil
}

func (r *stubRenderer) CreateVertexBuffer(label string, data []byte) (*wgpu.Buffer, error) {
	return nil, nil
}

func (r *stubRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error {
	return nil
}

func (r *stubRenderer) InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error {
	return nil
}

func (r *stubRenderer) InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error {
	return nil
}

func (r *stubRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {}
func (r *stubRenderer) BindInstanceBuffer(buf *wgpu.Buffer)                   {}

func (r *stubRenderer) BeginFrame() error {
	r.beginFrames++
	return r.beginErr
}

func (r *stubRenderer) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	r.drawCalls++
	return r.drawErr
}

func (r *stubRenderer) EndFrame()   { r.endFrames++ }
func (r *stubRenderer) AbortFrame() { r.aborts++ }
func (r *stubRenderer) Present()    { r.presents++ }

func newTestScene(options ...SceneBuilderOption) Scene {
	cam := camera.NewCamera(0, 5, 10, -math32.Pi/2, -0.34)
	proj := camera.NewProjection(800, 600, math32.Pi/4, 0.1, 100.0)
	ctrl := camera.NewCameraController(4.0, 0.4)
	return NewScene("test_scene", cam, proj, ctrl, options...)
}

func newTestModel() (model.Model, model.Material, model.Material) {
	matA := model.NewMaterial("mat_a", nil)
	matB := model.NewMaterial("mat_b", nil)
	m := model.NewModel(
		model.WithName("test_model"),
		model.WithMeshes([]model.Mesh{
			model.NewMesh("mesh_0", nil, 0),
			model.NewMesh("mesh_1", nil, 1),
		}),
		model.WithMaterials([]model.Material{matA, matB}),
	)
	return m, matA, matB
}

func TestInputSpaceTogglesDebugMaterial(t *testing.T) {
	s := newTestScene()

	assert.False(t, s.UseDebugMaterial())

	assert.True(t, s.Input(window.KeyEvent{Key: common.KeySpace, Pressed: true}))
	assert.True(t, s.UseDebugMaterial())

	// The release is consumed but does not toggle again.
	assert.True(t, s.Input(window.KeyEvent{Key: common.KeySpace, Pressed: false}))
	assert.True(t, s.UseDebugMaterial())

	assert.True(t, s.Input(window.KeyEvent{Key: common.KeySpace, Pressed: true}))
	assert.False(t, s.UseDebugMaterial())
}

func TestInputMovementKeys(t *testing.T) {
	s := newTestScene()

	assert.True(t, s.Input(window.KeyEvent{Key: common.KeyW, Pressed: true}))
	assert.True(t, s.Input(window.KeyEvent{Key: common.KeyW, Pressed: false}))

	// Unrecognized keys are not consumed.
	assert.False(t, s.Input(window.KeyEvent{Key: 'Z', Pressed: true}))
}

func TestInputScrollAlwaysConsumed(t *testing.T) {
	s := newTestScene()

	assert.True(t, s.Input(window.ScrollEvent{Delta: 1.5}))
	assert.True(t, s.Input(window.ScrollEvent{Delta: -0.25}))
}

func TestInputMouseLookGatedOnLeftButton(t *testing.T) {
	s := newTestScene()
	startYaw := s.Camera().Yaw()

	// Motion before the button is held is ignored.
	assert.False(t, s.Input(window.MouseMoveEvent{DX: 25, DY: 0}))
	s.Update(0.016)
	assert.Equal(t, startYaw, s.Camera().Yaw())

	assert.True(t, s.Input(window.MouseButtonEvent{Button: window.MouseButtonLeft, Pressed: true}))
	assert.True(t, s.Input(window.MouseMoveEvent{DX: 25, DY: 0}))
	s.Update(0.016)
	assert.NotEqual(t, startYaw, s.Camera().Yaw())

	// Releasing the button closes the gate again.
	assert.True(t, s.Input(window.MouseButtonEvent{Button: window.MouseButtonLeft, Pressed: false}))
	assert.False(t, s.Input(window.MouseMoveEvent{DX: 25, DY: 0}))
}

func TestInputOtherMouseButtonsIgnored(t *testing.T) {
	s := newTestScene()

	assert.False(t, s.Input(window.MouseButtonEvent{Button: window.MouseButtonRight, Pressed: true}))
	assert.False(t, s.Input(window.MouseMoveEvent{DX: 10, DY: 10}))
}

func TestUpdateStagesUniformWrites(t *testing.T) {
	s := newTestScene()

	s.Update(0.016)

	writes := s.StagedWrites()
	require.Len(t, writes, 2)

	assert.Equal(t, 0, writes[0].Binding)
	assert.Len(t, writes[0].Data, 64)

	assert.Equal(t, 0, writes[1].Binding)
	assert.Len(t, writes[1].Data, 32)
}

func TestUpdateAdvancesLightOrbit(t *testing.T) {
	s := newTestScene()
	start := s.Light().Position()

	s.Update(0.016)

	pos := s.Light().Position()
	assert.Equal(t, float32(2.0), pos[1])
	assert.False(t, pos[0] == start[0] && pos[2] == start[2])
}

func TestFramePlanOrdering(t *testing.T) {
	m, matA, matB := newTestModel()
	instances := instance.BuildGrid(3, 3.0)
	s := newTestScene(WithModel(m), WithInstances(instances))

	plan := s.FramePlan()
	require.Len(t, plan, 4)

	// Light visualization pass draws first, one instance per mesh, no material.
	for i := range 2 {
		assert.Equal(t, pipeline.LightPipelineKey, plan[i].PipelineKey)
		assert.Equal(t, i, plan[i].MeshIndex)
		assert.Nil(t, plan[i].Material)
		assert.Equal(t, uint32(1), plan[i].InstanceCount)
	}

	// Instanced model pass follows with each mesh's own material.
	assert.Equal(t, pipeline.ModelPipelineKey, plan[2].PipelineKey)
	assert.Equal(t, matA, plan[2].Material)
	assert.Equal(t, uint32(9), plan[2].InstanceCount)

	assert.Equal(t, pipeline.ModelPipelineKey, plan[3].PipelineKey)
	assert.Equal(t, matB, plan[3].Material)
	assert.Equal(t, uint32(9), plan[3].InstanceCount)
}

func TestFramePlanDebugMaterialSubstitution(t *testing.T) {
	m, matA, _ := newTestModel()
	dbg := model.NewMaterial("debug", nil)
	s := newTestScene(WithModel(m), WithInstances(instance.BuildGrid(2, 3.0)), WithDebugMaterial(dbg))

	s.Input(window.KeyEvent{Key: common.KeySpace, Pressed: true})
	plan := s.FramePlan()
	require.Len(t, plan, 4)
	assert.Equal(t, dbg, plan[2].Material)
	assert.Equal(t, dbg, plan[3].Material)

	// Toggling off restores the mesh materials.
	s.Input(window.KeyEvent{Key: common.KeySpace, Pressed: false})
	s.Input(window.KeyEvent{Key: common.KeySpace, Pressed: true})
	plan = s.FramePlan()
	assert.Equal(t, matA, plan[2].Material)
}

func TestFramePlanNilWithoutModel(t *testing.T) {
	s := newTestScene()
	assert.Nil(t, s.FramePlan())
}

func TestRenderExecutesFullFrame(t *testing.T) {
	m, _, _ := newTestModel()
	s := newTestScene(WithModel(m), WithInstances(instance.BuildGrid(2, 3.0)))
	s.Update(0.016)

	r := &stubRenderer{}
	require.NoError(t, s.Render(r))

	assert.Equal(t, 1, r.beginFrames)
	assert.Equal(t, 4, r.drawCalls) // 2 light + 2 model
	assert.Equal(t, 1, r.endFrames)
	assert.Equal(t, 1, r.presents)
	assert.Equal(t, 0, r.aborts)
}

func TestRenderAbortsFrameOnDrawError(t *testing.T) {
	m, _, _ := newTestModel()
	s := newTestScene(WithModel(m), WithInstances(instance.BuildGrid(2, 3.0)))
	s.Update(0.016)

	r := &stubRenderer{drawErr: errors.New("pipeline missing")}
	err := s.Render(r)
	require.Error(t, err)

	// The begun frame is released so the next BeginFrame can acquire again;
	// nothing is submitted or presented.
	assert.Equal(t, 1, r.aborts)
	assert.Equal(t, 0, r.endFrames)
	assert.Equal(t, 0, r.presents)

	// With the error cleared the next frame runs to completion.
	r.drawErr = nil
	s.Update(0.016)
	require.NoError(t, s.Render(r))
	assert.Equal(t, 1, r.aborts)
	assert.Equal(t, 1, r.endFrames)
	assert.Equal(t, 1, r.presents)
}

func TestRenderReturnsBeginFrameErrorUnwrapped(t *testing.T) {
	m, _, _ := newTestModel()
	s := newTestScene(WithModel(m), WithInstances(instance.BuildGrid(2, 3.0)))

	acquireErr := errors.New("Surface timed out")
	r := &stubRenderer{beginErr: acquireErr}

	// The acquire error surfaces as-is for classification; no frame was begun
	// so there is nothing to abort, end, or present.
	assert.Same(t, acquireErr, s.Render(r))
	assert.Equal(t, 0, r.drawCalls)
	assert.Equal(t, 0, r.aborts)
	assert.Equal(t, 0, r.endFrames)
	assert.Equal(t, 0, r.presents)
}
