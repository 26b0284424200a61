package engine

import (
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/spaghettifunk/prisma/engine/assets"
	"github.com/spaghettifunk/prisma/engine/config"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/renderer"
	"github.com/spaghettifunk/prisma/engine/renderer/metadata"
	"github.com/spaghettifunk/prisma/engine/systems"
)

type Engine struct {
	Config *config.Config

	CameraSystem   *systems.CameraSystem
	GeometrySystem *systems.GeometrySystem

	renderer      *renderer.Renderer
	shaderWatcher *assets.ShaderWatcher

	meshes     []*metadata.Mesh
	projection math.Mat4

	clock    *core.Clock
	running  atomic.Bool
	lastTime float64
}

func New(cfg *config.Config) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("engine.New requires a non-nil config")
	}
	core.SetLogLevel(cfg.Application.LogLevel)

	return &Engine{
		Config: cfg,
		clock:  core.NewClock(),
	}, nil
}

func (e *Engine) Initialize() error {
	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	cs, err := systems.NewCameraSystem(&systems.CameraSystemConfig{MaxCameraCount: 61})
	if err != nil {
		return err
	}
	e.CameraSystem = cs

	gs, err := systems.NewGeometrySystem(&systems.GeometrySystemConfig{MaxGeometryCount: 4096})
	if err != nil {
		return err
	}
	e.GeometrySystem = gs

	e.renderer = renderer.New(&renderer.NoopBackend{}, e.Config.Renderer.WorkerCount)

	e.projection = math.NewMat4Perspective(
		math.DegToRad(e.Config.Camera.FOV),
		e.Config.AspectRatio(),
		e.Config.Camera.NearClip,
		e.Config.Camera.FarClip,
	)

	watcher, err := assets.NewShaderWatcher(metadata.ForwardShaderConfig())
	if err != nil {
		return err
	}
	if err := watcher.Initialize(filepath.Clean(e.Config.Renderer.ShaderDir)); err != nil {
		// A missing shader dir only disables hot reload; transforms
		// still run.
		core.LogWarn("shader watching disabled: %s", err.Error())
	} else {
		e.shaderWatcher = watcher
		go e.watchShaders()
	}

	if err := e.setupScene(); err != nil {
		return err
	}

	core.LogInfo("engine '%s' initialized", e.Config.Application.Name)
	return nil
}

func (e *Engine) setupScene() error {
	cubeConfig, err := systems.GenerateCubeConfig(10.0, 10.0, 10.0, "test_cube")
	if err != nil {
		return err
	}
	cube, err := e.GeometrySystem.AcquireFromConfig(cubeConfig, true)
	if err != nil {
		return err
	}
	cubeMesh := metadata.NewMesh(cube)
	cubeMesh.Transform.SetPosition(math.NewVec3(0, 0, -30))

	planeConfig, err := systems.GeneratePlaneConfig(50.0, 50.0, 8, 8, "ground_plane")
	if err != nil {
		return err
	}
	plane, err := e.GeometrySystem.AcquireFromConfig(planeConfig, true)
	if err != nil {
		return err
	}
	planeMesh := metadata.NewMesh(plane)
	planeMesh.Transform.SetPosition(math.NewVec3(0, -8, -30))

	e.meshes = []*metadata.Mesh{cubeMesh, planeMesh}

	camera := e.CameraSystem.GetDefault()
	camera.SetPosition(math.NewVec3(0, 2, 0))
	return nil
}

func (e *Engine) watchShaders() {
	for {
		select {
		case path, ok := <-e.shaderWatcher.Reloads():
			if !ok {
				return
			}
			core.LogInfo("shader '%s' ready for recompilation by the GPU backend", path)
		case err, ok := <-e.shaderWatcher.Errors():
			if !ok {
				return
			}
			core.LogError("shader watcher: %s", err.Error())
		}
	}
}

/**
 * @brief Runs the frame loop until Shutdown is called: advance the
 * scene, flatten it into a render packet and hand it to the renderer.
 */
func (e *Engine) Run() error {
	e.running.Store(true)
	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.ElapsedSeconds()

	for e.running.Load() {
		e.clock.Update()
		currentTime := e.clock.ElapsedSeconds()
		deltaTime := currentTime - e.lastTime
		e.lastTime = currentTime

		e.update(deltaTime)

		packet := e.buildPacket(deltaTime)
		if err := e.renderer.DrawFrame(packet); err != nil {
			e.running.Store(false)
			return err
		}

		core.MetricsUpdate(deltaTime)

		// Headless pacing. A windowed host would vsync instead.
		time.Sleep(8 * time.Millisecond)
	}
	return nil
}

func (e *Engine) update(deltaTime float64) {
	// Slowly spin the first mesh so the per-draw model matrix changes
	// every frame.
	if len(e.meshes) > 0 {
		rotation := math.NewQuatFromAxisAngle(math.NewVec3Up(), float32(0.5*deltaTime), false)
		e.meshes[0].Transform.Rotate(rotation)
	}
}

func (e *Engine) buildPacket(deltaTime float64) *metadata.RenderPacket {
	camera := e.CameraSystem.GetDefault()

	geometries := make([]*metadata.GeometryRenderData, 0, len(e.meshes))
	for _, mesh := range e.meshes {
		geometries = append(geometries, metadata.MeshRenderData(mesh)...)
	}

	return &metadata.RenderPacket{
		DeltaTime:        deltaTime,
		ViewMatrix:       camera.GetView(),
		ProjectionMatrix: e.projection,
		ViewPosition:     camera.GetPosition(),
		GeometryCount:    uint32(len(geometries)),
		Geometries:       geometries,
	}
}

func (e *Engine) Shutdown() error {
	e.running.Store(false)
	if e.shaderWatcher != nil {
		if err := e.shaderWatcher.Close(); err != nil {
			core.LogWarn("shader watcher close: %s", err.Error())
		}
	}
	if e.GeometrySystem != nil {
		if err := e.GeometrySystem.Shutdown(); err != nil {
			return err
		}
	}
	if e.CameraSystem != nil {
		if err := e.CameraSystem.Shutdown(); err != nil {
			return err
		}
	}

	fps, frameTime := core.MetricsFrame()
	draws, vertices := core.MetricsVertexThroughput()
	core.LogInfo("shutdown: %.0f fps, %.2f ms/frame, %.0f draws/s, %.0f vertices/s", fps, frameTime, draws, vertices)
	return nil
}
