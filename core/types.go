package core

import "github.com/go-gl/mathgl/mgl32"

// Color is an RGBA colour with unit-range float channels.
type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	ColorGreen = Color{0, 1, 0, 1}
)

// RGB returns the colour as a vec3 for uniform uploads and vertex data.
func (c Color) RGB() mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

// ColorFromRGB builds an opaque colour from three channels.
func ColorFromRGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}
