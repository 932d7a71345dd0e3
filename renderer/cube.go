package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"opengl-labs/scene"
)

// Cube is a textured mesh placed by a translation.
type Cube struct {
	Position mgl32.Vec3

	program  Program
	geometry Geometry
	material Binder
}

// NewCube takes ownership of geometry. The material may be shared and is
// released by its owner.
func NewCube(program Program, geometry Geometry, material Binder, position mgl32.Vec3) *Cube {
	return &Cube{
		Position: position,
		program:  program,
		geometry: geometry,
		material: material,
	}
}

func (c *Cube) Update() {
	c.program.SetMat4("model", mgl32.Translate3D(c.Position.X(), c.Position.Y(), c.Position.Z()))
}

func (c *Cube) Draw() {
	c.program.Use()
	c.material.Bind()
	c.geometry.Draw(scene.Triangles)
}

func (c *Cube) Destroy() {
	c.geometry.Destroy()
}
