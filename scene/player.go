package scene

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Pitch limits in degrees. Looking straight up or down would make the
// forward vector parallel to WorldUp and flip the view.
const (
	MinPhi = -89
	MaxPhi = 89
)

// Player is a first-person camera walking on the XY plane with Z up.
// Theta (yaw) and Phi (pitch) are in degrees.
type Player struct {
	Position  mgl32.Vec3
	Theta     float32 // [0, 360)
	Phi       float32 // [MinPhi, MaxPhi]
	MoveSpeed float32
	WorldUp   mgl32.Vec3
}

func NewPlayer(position mgl32.Vec3) *Player {
	return &Player{
		Position:  position,
		MoveSpeed: 1,
		WorldUp:   mgl32.Vec3{0, 0, 1},
	}
}

// Move displaces the player by amount along theta+direction on the XY
// plane. amount is expected to be already scaled by the frame time.
func (p *Player) Move(direction, amount float32) {
	walk := mgl32.DegToRad(float32(wrapDegrees(float64(p.Theta) + turn(direction))))
	step := amount * p.MoveSpeed
	p.Position[0] += step * math32.Cos(walk)
	p.Position[1] += step * math32.Sin(walk)
}

// LookDelta turns the player: theta wraps into [0,360), phi is clamped.
func (p *Player) LookDelta(dTheta, dPhi float32) {
	p.Theta = float32(wrapDegrees(float64(p.Theta) + turn(dTheta)))
	p.Phi = mgl32.Clamp(p.Phi+dPhi, MinPhi, MaxPhi)
}

// Forward returns the unit view direction derived from theta and phi.
func (p *Player) Forward() mgl32.Vec3 {
	theta := mgl32.DegToRad(p.Theta)
	phi := mgl32.DegToRad(p.Phi)
	return mgl32.Vec3{
		math32.Cos(theta) * math32.Cos(phi),
		math32.Sin(theta) * math32.Cos(phi),
		math32.Sin(phi),
	}
}

// Right returns WorldUp × Forward.
func (p *Player) Right() mgl32.Vec3 {
	return p.WorldUp.Cross(p.Forward())
}

// Up returns Forward × Right.
func (p *Player) Up() mgl32.Vec3 {
	f := p.Forward()
	return f.Cross(p.WorldUp.Cross(f))
}

// ViewMatrix builds the look-at transform for the current state.
func (p *Player) ViewMatrix() mgl32.Mat4 {
	f := p.Forward()
	up := f.Cross(p.WorldUp.Cross(f))
	return mgl32.LookAtV(p.Position, p.Position.Add(f), up)
}

// turn reduces a delta to less than a full revolution before it is added,
// so whole turns leave theta bit-identical.
func turn(deg float32) float64 {
	return math.Mod(float64(deg), 360)
}

// wrapDegrees maps any angle into [0, 360).
func wrapDegrees(deg float64) float64 {
	w := math.Mod(deg, 360)
	if w < 0 {
		w += 360
	}
	if float32(w) >= 360 {
		return 0
	}
	return w
}
