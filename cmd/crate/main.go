// Command crate renders a textured crate lit by two point lights, explored
// with a first-person camera: the mouse looks around and W/A/S/D walk.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"opengl-labs/config"
	"opengl-labs/core"
	"opengl-labs/internal/opengl"
	"opengl-labs/platform"
	"opengl-labs/renderer"
	"opengl-labs/scene"
)

var clearColor = core.ColorFromRGB(0.1, 0.1, 0.1)

var (
	cratePosition  = mgl32.Vec3{1, 1, 0.5}
	playerPosition = mgl32.Vec3{0, 0, 1.2}
)

var sceneLights = []struct {
	position mgl32.Vec3
	color    core.Color
	strength float32
}{
	{mgl32.Vec3{1, 1.7, 1.5}, core.ColorFromRGB(0.2, 0.7, 0.8), 2},
	{mgl32.Vec3{0, 1.7, 0.5}, core.ColorFromRGB(0.9, 0.4, 0.0), 2},
}

func main() {
	if err := run(); err != nil {
		slog.Error("crate demo failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	wc := cfg.Crate.Window
	window, err := platform.NewWindow(platform.WindowConfig{
		Width:      wc.Width,
		Height:     wc.Height,
		Title:      wc.Title,
		VSync:      wc.VSync,
		HideCursor: true,
	})
	if err != nil {
		return err
	}

	fbW, fbH := window.GetFramebufferSize()
	ctx, err := opengl.NewContext(fbW, fbH, clearColor, true, logger)
	if err != nil {
		window.Destroy()
		return err
	}

	app := renderer.NewApp(window, ctx, renderer.AppConfig{
		QuitKeys:    []core.Key{core.KeyEscape, core.KeyQ},
		FrameTimeMs: cfg.FrameTimeMs,
		Logger:      logger,
	})
	defer app.Close()

	// ── Programs ──────────────────────────────────────────────────────────────

	var watcher *opengl.ShaderWatcher
	if cfg.HotReload {
		if watcher, err = opengl.NewShaderWatcher(logger); err != nil {
			return err
		}
		app.Add(watcher)
	}

	loadProgram := func(name string) (*opengl.Program, error) {
		vert, frag := cfg.ShaderPath(name, "vertex.glsl"), cfg.ShaderPath(name, "fragment.glsl")
		p, err := opengl.LoadProgram(name, vert, frag)
		if err != nil {
			return nil, err
		}
		app.Own(p)
		logger.Debug("program linked", "program", name)
		if watcher != nil {
			if err := watcher.Watch(p, vert, frag); err != nil {
				return nil, fmt.Errorf("hot reload: %w", err)
			}
		}
		return p, nil
	}

	lit, err := loadProgram("lit")
	if err != nil {
		return err
	}
	unlit, err := loadProgram("unlit")
	if err != nil {
		return err
	}

	projection := renderer.ProjectionMatrix(wc.Width, wc.Height)
	renderer.ConfigureLit(lit, projection, renderer.DefaultAmbient)
	renderer.ConfigureUnlit(unlit, projection)

	material, err := opengl.LoadMaterial(cfg.MaterialBase(), cfg.Assets.TextureExt)
	if err != nil {
		return err
	}
	app.Own(material)
	logger.Debug("material uploaded", "base", cfg.MaterialBase())

	// ── Scene ─────────────────────────────────────────────────────────────────

	player := scene.NewPlayer(playerPosition)
	rig := renderer.NewCameraRig(player, wc.Width, wc.Height, cfg.Controls.MoveSpeed, cfg.Controls.LookSensitivity)
	rig.Attach(lit)
	rig.Attach(unlit)
	window.SetCursorPos(float64(wc.Width)/2, float64(wc.Height)/2)
	app.AddController(rig)
	app.Add(rig)

	cubeGeometry, err := opengl.NewGeometryBuffer(scene.CreateTexturedCube())
	if err != nil {
		return err
	}
	app.Add(renderer.NewCube(lit, cubeGeometry, material, cratePosition))

	lights := scene.NewLightArray(lit)
	lights.Reset()
	for _, l := range sceneLights {
		marker, err := opengl.NewGeometryBuffer(scene.CreateColoredCube(
			renderer.MarkerSize, renderer.MarkerSize, renderer.MarkerSize, l.color))
		if err != nil {
			return err
		}
		light, err := renderer.NewLight(lights, unlit, marker, l.position, l.color.RGB(), l.strength)
		if err != nil {
			marker.Destroy()
			return err
		}
		app.Add(light)
	}
	logger.Debug("scene ready", "lights", lights.Registered())

	app.Run()
	return nil
}
