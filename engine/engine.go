package engine

import (
	"time"

	"github.com/prism-engine/prism/engine/profiler"
	"github.com/prism-engine/prism/engine/renderer"
	"github.com/prism-engine/prism/engine/scene"
	"github.com/prism-engine/prism/engine/window"
	"go.uber.org/zap"
)

// engine implements the Engine interface.
// Drives the single-threaded frame loop: the window's message loop delivers
// input events to the scene, then each iteration updates the scene and
// renders one frame.
type engine struct {
	window   window.Window
	renderer renderer.Renderer
	scn      scene.Scene

	logger *zap.Logger

	profiler         *profiler.Profiler
	profilingEnabled bool

	lastFrame time.Time
}

// Engine is the main entry point: it wires the window, renderer, and scene
// together and runs the frame loop until the window closes.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Renderer returns the renderer driving the frame loop.
	//
	// Returns:
	//   - renderer.Renderer: the renderer instance
	Renderer() renderer.Renderer

	// Scene returns the scene driven by the frame loop.
	//
	// Returns:
	//   - scene.Scene: the scene instance
	Scene() scene.Scene

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Run starts the main frame loop (blocks until the window closes).
	Run()

	// Quit closes the window, which ends the frame loop.
	// Safe to call multiple times.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// A window, renderer, and scene are required; NewEngine panics if any is
// missing after options are applied.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		logger: zap.NewNop(),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		panic("engine: NewEngine requires a Window (use WithWindow)")
	}
	if e.renderer == nil {
		panic("engine: NewEngine requires a Renderer (use WithRenderer)")
	}
	if e.scn == nil {
		panic("engine: NewEngine requires a Scene (use WithScene)")
	}

	e.profiler = profiler.NewProfiler(e.logger)

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Scene() scene.Scene {
	return e.scn
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) Run() {
	e.window.SetEventCallback(func(event window.Event) {
		e.scn.Input(event)
	})

	e.window.SetResizeCallback(func(width, height int) {
		e.renderer.Resize(width, height)
		e.scn.Resize(width, height)
	})

	e.lastFrame = time.Now()
	e.window.SetUpdateCallback(e.frame)

	e.logger.Info("engine running")
	e.window.ProcessMessages()
	e.logger.Info("engine stopped")
}

func (e *engine) Quit() {
	if err := e.window.Close(); err != nil {
		e.logger.Warn("failed to close window", zap.Error(err))
	}
}

// frame advances the scene by the elapsed wall time and renders it, handling
// swapchain acquire failures per their severity: a lost or outdated surface
// is reconfigured at the current window size, an out-of-memory device shuts
// the engine down, and transient failures drop the frame.
func (e *engine) frame() {
	now := time.Now()
	dt := float32(now.Sub(e.lastFrame).Seconds())
	e.lastFrame = now

	e.scn.Update(dt)

	if err := e.scn.Render(e.renderer); err != nil {
		switch renderer.ClassifySurfaceError(err) {
		case renderer.SurfaceErrorActionReconfigure:
			e.logger.Warn("surface lost or outdated, reconfiguring", zap.Error(err))
			e.renderer.Resize(e.window.Width(), e.window.Height())
		case renderer.SurfaceErrorActionFatal:
			e.logger.Error("device out of memory, shutting down", zap.Error(err))
			e.Quit()
		default:
			e.logger.Debug("dropping frame", zap.Error(err))
		}
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
}
