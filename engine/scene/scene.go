package scene

import (
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/prism-engine/prism/common"
	"github.com/prism-engine/prism/engine/camera"
	"github.com/prism-engine/prism/engine/instance"
	"github.com/prism-engine/prism/engine/light"
	"github.com/prism-engine/prism/engine/model"
	"github.com/prism-engine/prism/engine/renderer"
	"github.com/prism-engine/prism/engine/renderer/bind_group_provider"
	"github.com/prism-engine/prism/engine/renderer/pipeline"
	"github.com/prism-engine/prism/engine/window"
)

// Scene owns the renderable state of one view: a camera with its projection
// and controller, a point light, a model drawn as an instanced grid, and an
// optional debug material that can be substituted for every mesh material at
// runtime. The scene integrates input events, advances per-frame simulation,
// composes a frame plan, and executes it against a Renderer.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Projection returns the scene's perspective projection.
	Projection() *camera.Projection

	// Controller returns the scene's camera controller.
	Controller() camera.CameraController

	// Light returns the scene's point light.
	Light() light.Light

	// Model returns the scene's model, or nil if none has been attached.
	Model() model.Model

	// SetModel attaches the model drawn by the instanced pass.
	//
	// Parameters:
	//   - m: the model to attach
	SetModel(m model.Model)

	// DebugMaterial returns the substitution material, or nil if none is set.
	DebugMaterial() model.Material

	// SetDebugMaterial sets the material substituted for every mesh material
	// while the debug toggle is on.
	//
	// Parameters:
	//   - m: the substitution material
	SetDebugMaterial(m model.Material)

	// UseDebugMaterial returns whether the debug material substitution is
	// currently active.
	//
	// Returns:
	//   - bool: true if the debug material is substituted for mesh materials
	UseDebugMaterial() bool

	// Instances returns the per-instance transforms of the model grid.
	//
	// Returns:
	//   - []instance.Instance: the instance list
	Instances() []instance.Instance

	// Input routes a window event to the scene's input state.
	//
	// The space key toggles the debug material on press; both press and
	// release are consumed. Other keys are forwarded to the camera controller
	// and consumed only if recognized as movement keys. Scroll events are
	// always consumed. Left mouse button events gate mouse-look and are
	// always consumed. Mouse motion is forwarded to the controller only
	// while the left button is held.
	//
	// Parameters:
	//   - event: the window event to process
	//
	// Returns:
	//   - bool: true if the event was consumed
	Input(event window.Event) bool

	// Update advances the scene by one frame: integrates controller input into
	// the camera, steps the light's orbit, and stages the camera and light
	// uniform writes for the next Render call.
	//
	// Parameters:
	//   - dt: elapsed time in seconds since the previous update
	Update(dt float32)

	// StagedWrites returns the buffer writes staged by the last Update and
	// not yet uploaded. The slice is reused across frames; callers must not
	// retain it.
	//
	// Returns:
	//   - []bind_group_provider.BufferWrite: the staged writes
	StagedWrites() []bind_group_provider.BufferWrite

	// FramePlan composes the ordered draw commands for one frame: the light
	// visualization pass first, then the instanced model pass with the debug
	// material substituted when the toggle is on. Returns nil if no model is
	// attached.
	//
	// Returns:
	//   - []DrawCommand: the ordered draw commands
	FramePlan() []DrawCommand

	// InitGPUResources initializes the camera and light bind groups and
	// uploads the instance transform buffer. Must be called once after the
	// model's GPU resources have been initialized and before the first Render.
	//
	// Parameters:
	//   - r: the renderer to create GPU resources with
	//
	// Returns:
	//   - error: error if any resource creation fails
	InitGPUResources(r renderer.Renderer) error

	// Render uploads the staged uniform writes and executes the frame plan
	// within a single BeginFrame/EndFrame block, then presents. A draw error
	// aborts the frame so the renderer can begin a new one on the next call.
	//
	// Parameters:
	//   - r: the renderer to draw with
	//
	// Returns:
	//   - error: the swapchain acquire error from BeginFrame, or a draw error
	Render(r renderer.Renderer) error

	// Resize updates the projection's aspect ratio for a new viewport size.
	//
	// Parameters:
	//   - width: new viewport width in pixels
	//   - height: new viewport height in pixels
	Resize(width, height int)
}

type scene struct {
	mu *sync.RWMutex

	name string

	cam        camera.Camera
	projection *camera.Projection
	controller camera.CameraController

	lightSource light.Light

	mdl              model.Model
	debugMaterial    model.Material
	useDebugMaterial bool

	instances      []instance.Instance
	instanceBuffer *wgpu.Buffer

	// mouseHeld gates mouse-look: motion reaches the controller only while
	// the left button is down.
	mouseHeld bool

	// writePool is reused each frame to avoid per-frame allocations.
	writePool []bind_group_provider.BufferWrite
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera, projection, and
// controller. All three are required and NewScene panics if any is nil.
// The light defaults to a white point light; model, instances, and debug
// material are attached via options or setters.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - projection: the perspective projection (must not be nil)
//   - controller: the camera controller (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, projection *camera.Projection, controller camera.CameraController, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if projection == nil {
		panic("scene: NewScene requires a non-nil Projection")
	}
	if controller == nil {
		panic("scene: NewScene requires a non-nil CameraController")
	}

	s := &scene{
		mu:          &sync.RWMutex{},
		name:        name,
		cam:         cam,
		projection:  projection,
		controller:  controller,
		lightSource: light.NewLight(),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) Projection() *camera.Projection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projection
}

func (s *scene) Controller() camera.CameraController {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.controller
}

func (s *scene) Light() light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lightSource
}

func (s *scene) Model() model.Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mdl
}

func (s *scene) SetModel(m model.Model) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mdl = m
}

func (s *scene) DebugMaterial() model.Material {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.debugMaterial
}

func (s *scene) SetDebugMaterial(m model.Material) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debugMaterial = m
}

func (s *scene) UseDebugMaterial() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.useDebugMaterial
}

func (s *scene) Instances() []instance.Instance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.instances
}

func (s *scene) Input(event window.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev := event.(type) {
	case window.KeyEvent:
		if ev.Key == common.KeySpace {
			// Toggle on press only; the release is consumed so it cannot
			// leak into the movement state.
			if ev.Pressed {
				s.useDebugMaterial = !s.useDebugMaterial
			}
			return true
		}
		return s.controller.ProcessKeyboard(ev.Key, ev.Pressed)
	case window.ScrollEvent:
		s.controller.ProcessScroll(ev.Delta)
		return true
	case window.MouseButtonEvent:
		if ev.Button != window.MouseButtonLeft {
			return false
		}
		s.mouseHeld = ev.Pressed
		return true
	case window.MouseMoveEvent:
		if !s.mouseHeld {
			return false
		}
		s.controller.ProcessMouse(ev.DX, ev.DY)
		return true
	}
	return false
}

func (s *scene) Update(dt float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.controller.UpdateCamera(s.cam, dt)
	s.lightSource.Advance()

	s.writePool = s.writePool[:0]

	// Camera uniform: depth-corrected projection times view, column-major.
	view := s.cam.ViewMatrix()
	proj := s.projection.Matrix()
	camUniform := camera.NewGPUCameraUniform()
	common.Mul4(camUniform.ViewProj[:], proj[:], view[:])
	if bgp := s.cam.BindGroupProvider(); bgp != nil {
		s.writePool = append(s.writePool, bind_group_provider.BufferWrite{
			Provider: bgp,
			Binding:  0,
			Offset:   0,
			Data:     camUniform.Marshal(),
		})
	}

	lightUniform := light.NewGPULightUniform(s.lightSource)
	if bgp := s.lightSource.BindGroupProvider(); bgp != nil {
		s.writePool = append(s.writePool, bind_group_provider.BufferWrite{
			Provider: bgp,
			Binding:  0,
			Offset:   0,
			Data:     lightUniform.Marshal(),
		})
	}
}

func (s *scene) StagedWrites() []bind_group_provider.BufferWrite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writePool
}

func (s *scene) FramePlan() []DrawCommand {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.mdl == nil {
		return nil
	}
	meshes := s.mdl.Meshes()

	plan := make([]DrawCommand, 0, 2*len(meshes))

	// Light visualization pass draws first so the depth buffer holds the
	// marker's depth before the instanced pass.
	for i := range meshes {
		plan = append(plan, DrawCommand{
			PipelineKey:   pipeline.LightPipelineKey,
			MeshIndex:     i,
			InstanceCount: 1,
		})
	}

	instanceCount := uint32(len(s.instances))
	for i, mesh := range meshes {
		mat := s.mdl.Material(mesh.MaterialIndex())
		if s.useDebugMaterial && s.debugMaterial != nil {
			mat = s.debugMaterial
		}
		plan = append(plan, DrawCommand{
			PipelineKey:   pipeline.ModelPipelineKey,
			MeshIndex:     i,
			Material:      mat,
			InstanceCount: instanceCount,
		})
	}

	return plan
}

func (s *scene) InitGPUResources(r renderer.Renderer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bgp := s.cam.BindGroupProvider(); bgp != nil {
		if err := r.InitBindGroup(bgp, camera.BindGroupLayoutDescriptor()); err != nil {
			return fmt.Errorf("scene: failed to init camera bind group: %w", err)
		}
	}

	if bgp := s.lightSource.BindGroupProvider(); bgp != nil {
		if err := r.InitBindGroup(bgp, light.BindGroupLayoutDescriptor()); err != nil {
			return fmt.Errorf("scene: failed to init light bind group: %w", err)
		}
	}

	if len(s.instances) > 0 {
		data := instance.MarshalAll(instance.FlattenAll(s.instances))
		buf, err := r.CreateVertexBuffer("Instance Buffer", data)
		if err != nil {
			return fmt.Errorf("scene: failed to create instance buffer: %w", err)
		}
		s.instanceBuffer = buf
	}

	return nil
}

func (s *scene) Render(r renderer.Renderer) error {
	plan := s.FramePlan()

	if err := r.BeginFrame(); err != nil {
		return err
	}

	s.mu.Lock()
	if len(s.writePool) > 0 {
		r.WriteBuffers(s.writePool)
		s.writePool = s.writePool[:0]
	}
	instanceBuffer := s.instanceBuffer
	mdl := s.mdl
	camBGP := s.cam.BindGroupProvider()
	lightBGP := s.lightSource.BindGroupProvider()
	s.mu.Unlock()

	r.BindInstanceBuffer(instanceBuffer)

	for _, cmd := range plan {
		mesh := mdl.Meshes()[cmd.MeshIndex]

		var groups []bind_group_provider.BindGroupProvider
		if cmd.Material != nil {
			groups = []bind_group_provider.BindGroupProvider{cmd.Material.Provider(), camBGP, lightBGP}
		} else {
			groups = []bind_group_provider.BindGroupProvider{camBGP, lightBGP}
		}

		if err := r.DrawCall(cmd.PipelineKey, mesh.Provider(), cmd.InstanceCount, groups); err != nil {
			// Release the acquired surface and open pass, otherwise the next
			// BeginFrame would fail against the still-held frame state.
			r.AbortFrame()
			return err
		}
	}

	r.EndFrame()
	r.Present()
	return nil
}

func (s *scene) Resize(width, height int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.projection.Resize(width, height)
}
