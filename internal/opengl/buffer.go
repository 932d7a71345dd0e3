package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"opengl-labs/scene"
)

// GeometryBuffer is a mesh uploaded to a VAO with its VBO and optional EBO.
type GeometryBuffer struct {
	name    string
	vao     uint32
	vbo     uint32
	ebo     uint32
	count   int32 // indices when indexed, vertices otherwise
	indexed bool
}

// NewGeometryBuffer validates mesh and uploads it with STATIC_DRAW. The
// attribute layout is recorded in the VAO once.
func NewGeometryBuffer(mesh *scene.Mesh) (*GeometryBuffer, error) {
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("upload geometry: %w", err)
	}

	g := &GeometryBuffer{name: mesh.Name, indexed: mesh.Indexed()}
	if g.indexed {
		g.count = int32(len(mesh.Indices))
	} else {
		g.count = int32(mesh.VertexCount())
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.BindVertexArray(g.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	stride := mesh.Layout.Stride()
	for i, a := range mesh.Layout.Attributes {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointer(a.Location, a.Components, gl.FLOAT, false, stride, gl.PtrOffset(mesh.Layout.Offset(i)))
	}

	if g.indexed {
		gl.GenBuffers(1, &g.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	return g, nil
}

func (g *GeometryBuffer) Name() string { return g.name }

// Draw issues one draw call over the whole buffer.
func (g *GeometryBuffer) Draw(mode scene.Primitive) {
	if g.vao == 0 {
		return
	}
	gl.BindVertexArray(g.vao)
	if g.indexed {
		gl.DrawElements(glPrimitive(mode), g.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(glPrimitive(mode), 0, g.count)
	}
	gl.BindVertexArray(0)
}

func (g *GeometryBuffer) Destroy() {
	if g.vao == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.vbo)
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
	g.vao, g.vbo, g.ebo = 0, 0, 0
}

func glPrimitive(p scene.Primitive) uint32 {
	if p == scene.Lines {
		return gl.LINES
	}
	return gl.TRIANGLES
}
