package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"opengl-labs/core"
	"opengl-labs/scene"
)

// Rabbit is the 2D sprite: a filled body with an outline on top, moved by
// the "trans" uniform.
type Rabbit struct {
	Offset mgl32.Vec3

	program Program
	fill    Geometry
	outline Geometry
}

func NewRabbit(program Program, fill, outline Geometry) *Rabbit {
	return &Rabbit{program: program, fill: fill, outline: outline}
}

func (r *Rabbit) Transform() mgl32.Mat4 {
	return mgl32.Translate3D(r.Offset.X(), r.Offset.Y(), r.Offset.Z())
}

func (r *Rabbit) Update() {
	r.program.SetMat4("trans", r.Transform())
}

func (r *Rabbit) Draw() {
	r.program.Use()
	r.fill.Draw(scene.Triangles)
	r.outline.Draw(scene.Lines)
}

func (r *Rabbit) Destroy() {
	r.outline.Destroy()
	r.fill.Destroy()
}

// RabbitController moves a Rabbit with W/A/S/D at Speed clip units per
// millisecond while the keys are held.
type RabbitController struct {
	Rabbit *Rabbit
	Speed  float32
}

func (c *RabbitController) Control(in Input, frameTime float32) {
	step := c.Speed * frameTime
	if in.IsKeyPressed(core.KeyA) {
		c.Rabbit.Offset[0] -= step
	}
	if in.IsKeyPressed(core.KeyD) {
		c.Rabbit.Offset[0] += step
	}
	if in.IsKeyPressed(core.KeyW) {
		c.Rabbit.Offset[1] += step
	}
	if in.IsKeyPressed(core.KeyS) {
		c.Rabbit.Offset[1] -= step
	}
}
