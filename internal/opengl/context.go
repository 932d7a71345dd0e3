// Package opengl implements the renderer interfaces on an OpenGL 4.1 core
// context. Everything here must run on the thread that owns the context.
package opengl

import (
	"log/slog"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"opengl-labs/core"
)

// Context holds the per-frame state of the current GL context.
type Context struct {
	clear core.Color
	depth bool
}

// NewContext loads the GL entry points for the context current on this
// thread and sets the viewport. depth enables depth testing and clearing.
func NewContext(width, height int, clear core.Color, depth bool, logger *slog.Logger) (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, &core.GraphicsContextError{Op: "load OpenGL functions", Err: err}
	}
	logger.Info("OpenGL initialised",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	c := &Context{clear: clear, depth: depth}
	c.SetViewport(width, height)
	if depth {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
	}
	return c, nil
}

func (c *Context) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BeginFrame clears the colour buffer, and the depth buffer when enabled.
func (c *Context) BeginFrame() {
	gl.ClearColor(c.clear.R, c.clear.G, c.clear.B, c.clear.A)
	gl.Clear(clearMask(c.depth))
}

func clearMask(depth bool) uint32 {
	if depth {
		return gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT
	}
	return gl.COLOR_BUFFER_BIT
}
