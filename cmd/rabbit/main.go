// Command rabbit draws a 2D rabbit sprite that W/A/S/D move around the
// window.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"opengl-labs/config"
	"opengl-labs/core"
	"opengl-labs/internal/opengl"
	"opengl-labs/platform"
	"opengl-labs/renderer"
	"opengl-labs/scene"
)

var clearColor = core.ColorFromRGB(0.5, 0.5, 0.1)

func main() {
	if err := run(); err != nil {
		slog.Error("rabbit demo failed", "error", err)
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

	wc := cfg.Rabbit.Window
	window, err := platform.NewWindow(platform.WindowConfig{
		Width:  wc.Width,
		Height: wc.Height,
		Title:  wc.Title,
		VSync:  wc.VSync,
	})
	if err != nil {
		return err
	}

	fbW, fbH := window.GetFramebufferSize()
	ctx, err := opengl.NewContext(fbW, fbH, clearColor, false, logger)
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

	vert, frag := cfg.ShaderPath("rabbit", "vertex.glsl"), cfg.ShaderPath("rabbit", "fragment.glsl")
	program, err := opengl.LoadProgram("rabbit", vert, frag)
	if err != nil {
		return err
	}
	app.Own(program)
	logger.Debug("program linked", "program", program.Name())

	fill, err := opengl.NewGeometryBuffer(scene.CreateRabbitFill(core.ColorGreen))
	if err != nil {
		return err
	}
	outline, err := opengl.NewGeometryBuffer(scene.CreateRabbitOutline(core.ColorBlack))
	if err != nil {
		fill.Destroy()
		return err
	}

	rabbit := renderer.NewRabbit(program, fill, outline)
	app.Add(rabbit)
	app.AddController(&renderer.RabbitController{Rabbit: rabbit, Speed: cfg.Controls.RabbitSpeed})

	if cfg.HotReload {
		watcher, err := opengl.NewShaderWatcher(logger)
		if err != nil {
			return err
		}
		app.Add(watcher)
		if err := watcher.Watch(program, vert, frag); err != nil {
			return fmt.Errorf("hot reload: %w", err)
		}
	}

	app.Run()
	return nil
}
