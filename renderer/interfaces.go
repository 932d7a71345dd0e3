// Package renderer holds the frame loop and the demo components. It talks to
// the window and GPU only through the small interfaces below so the whole
// layer runs headless in tests.
package renderer

import (
	"opengl-labs/core"
	"opengl-labs/scene"
)

// Drawable is an object updated and drawn once per frame. Destroy releases
// whatever GPU resources the object owns.
type Drawable interface {
	Update()
	Draw()
	Destroy()
}

// Controller reacts to input once per frame. frameTime is in milliseconds.
type Controller interface {
	Control(in Input, frameTime float32)
}

// Input is the polled keyboard and cursor state of the window.
type Input interface {
	IsKeyPressed(key core.Key) bool
	CursorPos() (x, y float64)
	SetCursorPos(x, y float64)
}

// Surface is the window owning the graphics context.
type Surface interface {
	Input
	PollEvents()
	ShouldClose() bool
	SetTitle(title string)
	SwapBuffers()
	Destroy()
}

// Device clears the framebuffer at the start of a frame.
type Device interface {
	BeginFrame()
}

// Destroyer releases one GPU resource.
type Destroyer interface {
	Destroy()
}

// Program is a linked shader program. Uniform setters activate it.
type Program interface {
	scene.UniformWriter
	Use()
	Destroy()
}

// Geometry is an uploaded mesh.
type Geometry interface {
	Draw(mode scene.Primitive)
	Destroy()
}

// Binder binds a set of textures to their units.
type Binder interface {
	Bind()
	Destroy()
}
