package main

import (
	"flag"

	"github.com/chewxy/math32"
	"github.com/prism-engine/prism/engine"
	"github.com/prism-engine/prism/engine/camera"
	"github.com/prism-engine/prism/engine/config"
	"github.com/prism-engine/prism/engine/instance"
	"github.com/prism-engine/prism/engine/renderer"
	"github.com/prism-engine/prism/engine/renderer/pipeline"
	"github.com/prism-engine/prism/engine/resources"
	"github.com/prism-engine/prism/engine/scene"
	"github.com/prism-engine/prism/engine/window"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
	)

	presentMode := renderer.PresentModeVSync
	if !cfg.Renderer.VSync {
		presentMode = renderer.PresentModeUncapped
	}
	r := renderer.NewRenderer(renderer.BackendTypeWGPU, win,
		renderer.WithPresentMode(presentMode),
		renderer.WithForceSoftwareRenderer(cfg.Renderer.ForceSoftware),
	)

	if err := r.RegisterPipelines(pipeline.NewModelPipeline(), pipeline.NewLightPipeline()); err != nil {
		logger.Fatal("failed to register pipelines", zap.Error(err))
	}

	loader := resources.NewLoader(resources.WithRenderer(r))
	mdl, err := loader.Load(cfg.Model.Path)
	if err != nil {
		logger.Fatal("failed to load model", zap.Error(err), zap.String("path", cfg.Model.Path))
	}

	cam := camera.NewCamera(0.0, 5.0, 10.0, -math32.Pi/2, -20.0*math32.Pi/180.0)
	proj := camera.NewProjection(win.Width(), win.Height(),
		cfg.Camera.FovYDegrees*math32.Pi/180.0, cfg.Camera.Near, cfg.Camera.Far)
	ctrl := camera.NewCameraController(cfg.Camera.Speed, cfg.Camera.Sensitivity)

	sceneOptions := []scene.SceneBuilderOption{
		scene.WithModel(mdl),
		scene.WithInstances(instance.BuildGrid(cfg.Grid.CountPerRow, cfg.Grid.Spacing)),
	}
	if cfg.Model.DebugDiffuse != "" && cfg.Model.DebugNormal != "" {
		dbg, err := loader.LoadMaterial("debug", cfg.Model.DebugDiffuse, cfg.Model.DebugNormal)
		if err != nil {
			logger.Warn("failed to load debug material", zap.Error(err))
		} else {
			sceneOptions = append(sceneOptions, scene.WithDebugMaterial(dbg))
		}
	}

	scn := scene.NewScene("main", cam, proj, ctrl, sceneOptions...)
	if err := scn.InitGPUResources(r); err != nil {
		logger.Fatal("failed to init scene GPU resources", zap.Error(err))
	}

	e := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithScene(scn),
		engine.WithLogger(logger),
		engine.WithProfiling(cfg.Profiling),
	)
	e.Run()
}
