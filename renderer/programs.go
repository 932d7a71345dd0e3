package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"opengl-labs/scene"
)

// Texture units used by the lit program's material samplers.
const (
	DiffuseUnit  = 0
	SpecularUnit = 1
)

// DefaultAmbient is the lit program's ambient term.
var DefaultAmbient = mgl32.Vec3{0.1, 0.1, 0.1}

// ConfigureLit sets the values the lit program keeps for its lifetime.
func ConfigureLit(p scene.UniformWriter, projection mgl32.Mat4, ambient mgl32.Vec3) {
	p.SetInt("material.diffuse", DiffuseUnit)
	p.SetInt("material.specular", SpecularUnit)
	p.SetVec3("ambient", ambient)
	p.SetMat4("projection", projection)
}

// ConfigureUnlit sets the projection of the marker program.
func ConfigureUnlit(p scene.UniformWriter, projection mgl32.Mat4) {
	p.SetMat4("projection", projection)
}
