package scene

import "github.com/go-gl/mathgl/mgl32"

// UniformWriter pushes named values into one shader program. Writes to a
// name the program does not declare are silently ignored.
type UniformWriter interface {
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec3(name string, v mgl32.Vec3)
	SetMat4(name string, m mgl32.Mat4)
}
