package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"opengl-labs/scene"
)

// MarkerSize is the edge length of a light's marker cube.
const MarkerSize = 0.1

// Light is a point light occupying one slot of a LightArray, drawn as a
// small unlit cube at its position.
type Light struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Strength float32

	slot   int
	lights *scene.LightArray
	marker Geometry
	unlit  Program
}

// NewLight claims the next slot of lights. It fails with
// scene.ErrLightCapacity once the array is full.
func NewLight(lights *scene.LightArray, unlit Program, marker Geometry, position, color mgl32.Vec3, strength float32) (*Light, error) {
	slot, err := lights.Register()
	if err != nil {
		return nil, fmt.Errorf("new light: %w", err)
	}
	return &Light{
		Position: position,
		Color:    color,
		Strength: strength,
		slot:     slot,
		lights:   lights,
		marker:   marker,
		unlit:    unlit,
	}, nil
}

// Slot returns the light's index in the shader array.
func (l *Light) Slot() int { return l.slot }

func (l *Light) Update() {
	l.lights.Set(l.slot, scene.LightSlot{
		Position: l.Position,
		Color:    l.Color,
		Strength: l.Strength,
	})
}

func (l *Light) Draw() {
	l.unlit.Use()
	l.unlit.SetMat4("model", mgl32.Translate3D(l.Position.X(), l.Position.Y(), l.Position.Z()))
	l.marker.Draw(scene.Triangles)
}

func (l *Light) Destroy() {
	l.marker.Destroy()
}
