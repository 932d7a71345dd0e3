// Package platform opens the GLFW window and OpenGL context the demos
// render into.
package platform

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"opengl-labs/core"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	destroyed bool
}

type WindowConfig struct {
	Width      int
	Height     int
	Title      string
	VSync      bool
	HideCursor bool
}

type windowHint struct {
	hint  glfw.Hint
	value int
}

// windowHints requests a fixed-size window: the viewport, projection and
// cursor centre are all derived once from the initial size.
func windowHints() []windowHint {
	return []windowHint{
		{glfw.ContextVersionMajor, 4},
		{glfw.ContextVersionMinor, 1},
		{glfw.OpenGLProfile, glfw.OpenGLCoreProfile},
		{glfw.OpenGLForwardCompatible, glfw.True},
		{glfw.DoubleBuffer, glfw.True},
		{glfw.Resizable, glfw.False},
	}
}

// NewWindow creates a fixed-size double-buffered window with a current
// OpenGL 4.1 core forward-compatible context.
func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, &core.GraphicsContextError{Op: "initialise GLFW", Err: err}
	}

	for _, h := range windowHints() {
		glfw.WindowHint(h.hint, h.value)
	}

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &core.GraphicsContextError{Op: "create window", Err: err}
	}
	handle.MakeContextCurrent()
	glfw.SwapInterval(boolToInt(config.VSync))

	if config.HideCursor {
		handle.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	}

	return &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}, nil
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

// Destroy closes the window and terminates GLFW. Safe to call twice.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.Handle.Destroy()
	glfw.Terminate()
}

func (w *Window) IsKeyPressed(key core.Key) bool {
	k, ok := glfwKey(key)
	if !ok {
		return false
	}
	return w.Handle.GetKey(k) == glfw.Press
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func (w *Window) CursorPos() (float64, float64) {
	return w.Handle.GetCursorPos()
}

func (w *Window) SetCursorPos(x, y float64) {
	w.Handle.SetCursorPos(x, y)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var keyMap = map[core.Key]glfw.Key{
	core.KeyW:      glfw.KeyW,
	core.KeyA:      glfw.KeyA,
	core.KeyS:      glfw.KeyS,
	core.KeyD:      glfw.KeyD,
	core.KeyQ:      glfw.KeyQ,
	core.KeyEscape: glfw.KeyEscape,
}

func glfwKey(k core.Key) (glfw.Key, bool) {
	g, ok := keyMap[k]
	return g, ok
}
