package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"opengl-labs/core"
	"opengl-labs/scene"
)

// Projection defaults of the 3D demo.
const (
	FieldOfView = 45 // degrees
	NearPlane   = 0.1
	FarPlane    = 10
)

// walkKeys maps the held movement keys to directions relative to theta.
var walkKeys = []struct {
	key       core.Key
	direction float32
}{
	{core.KeyW, 0},
	{core.KeyA, 90},
	{core.KeyS, 180},
	{core.KeyD, -90},
}

// ProjectionMatrix returns the perspective projection for a viewport.
func ProjectionMatrix(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, NearPlane, FarPlane)
}

// CameraRig turns input into player motion and publishes the player's view
// to every attached program. It is both a Controller and a Drawable.
type CameraRig struct {
	Player *scene.Player

	programs         []scene.UniformWriter
	centerX, centerY float64
	moveSpeed        float32 // units per millisecond
	lookSensitivity  float32 // degrees per pixel per millisecond
}

// NewCameraRig returns a rig for a width×height window. The cursor is
// pulled back to the window centre every frame.
func NewCameraRig(player *scene.Player, width, height int, moveSpeed, lookSensitivity float32) *CameraRig {
	return &CameraRig{
		Player:          player,
		centerX:         float64(width) / 2,
		centerY:         float64(height) / 2,
		moveSpeed:       moveSpeed,
		lookSensitivity: lookSensitivity,
	}
}

// Attach adds a program that receives view and cameraPos.
func (r *CameraRig) Attach(w scene.UniformWriter) {
	r.programs = append(r.programs, w)
}

func (r *CameraRig) Control(in Input, frameTime float32) {
	x, y := in.CursorPos()
	scale := frameTime * r.lookSensitivity
	r.Player.LookDelta(scale*float32(r.centerX-x), scale*float32(r.centerY-y))
	in.SetCursorPos(r.centerX, r.centerY)

	amount := r.moveSpeed * frameTime
	for _, w := range walkKeys {
		if in.IsKeyPressed(w.key) {
			r.Player.Move(w.direction, amount)
		}
	}
}

// Update computes the view once and pushes it to all attached programs.
func (r *CameraRig) Update() {
	view := r.Player.ViewMatrix()
	for _, p := range r.programs {
		p.SetMat4("view", view)
		p.SetVec3("cameraPos", r.Player.Position)
	}
}

func (r *CameraRig) Draw() {}
func (r *CameraRig) Destroy() {}
