package scene

import "fmt"

// Primitive selects how a mesh's vertices (or indices) are assembled.
type Primitive int

const (
	Triangles Primitive = iota // gl.TRIANGLES (default)
	Lines                      // gl.LINES, each index pair is a segment
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	}
	return fmt.Sprintf("Primitive(%d)", int(p))
}

const floatSize = 4

// VertexAttribute is one float attribute of an interleaved vertex.
type VertexAttribute struct {
	Location   uint32
	Components int32
}

// VertexLayout describes an interleaved float32 vertex.
type VertexLayout struct {
	Attributes []VertexAttribute
}

var (
	// LayoutPositionColor is position(3) + flat colour(3), 24 bytes.
	LayoutPositionColor = VertexLayout{Attributes: []VertexAttribute{
		{Location: 0, Components: 3},
		{Location: 1, Components: 3},
	}}
	// LayoutPositionUVNormal is position(3) + texcoord(2) + normal(3), 32 bytes.
	LayoutPositionUVNormal = VertexLayout{Attributes: []VertexAttribute{
		{Location: 0, Components: 3},
		{Location: 1, Components: 2},
		{Location: 2, Components: 3},
	}}
)

// FloatsPerVertex returns the number of float32 values in one vertex.
func (l VertexLayout) FloatsPerVertex() int {
	n := 0
	for _, a := range l.Attributes {
		n += int(a.Components)
	}
	return n
}

// Stride returns the size of one vertex in bytes.
func (l VertexLayout) Stride() int32 {
	return int32(l.FloatsPerVertex() * floatSize)
}

// Offset returns the byte offset of attribute i within a vertex.
func (l VertexLayout) Offset(i int) int {
	off := 0
	for _, a := range l.Attributes[:i] {
		off += int(a.Components) * floatSize
	}
	return off
}

// Mesh holds CPU-side interleaved vertex data and optional indices.
// It is uploaded once and never modified afterwards.
type Mesh struct {
	Name     string
	Layout   VertexLayout
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of whole vertices in the mesh.
func (m *Mesh) VertexCount() int {
	n := m.Layout.FloatsPerVertex()
	if n == 0 {
		return 0
	}
	return len(m.Vertices) / n
}

// Indexed reports whether the mesh is drawn through an index buffer.
func (m *Mesh) Indexed() bool {
	return len(m.Indices) > 0
}

// Validate checks that the vertex data is a whole number of vertices and
// that every index refers to an existing vertex.
func (m *Mesh) Validate() error {
	n := m.Layout.FloatsPerVertex()
	if n == 0 {
		return fmt.Errorf("mesh %q: empty vertex layout", m.Name)
	}
	if len(m.Vertices) == 0 {
		return fmt.Errorf("mesh %q: no vertices", m.Name)
	}
	if len(m.Vertices)%n != 0 {
		return fmt.Errorf("mesh %q: %d floats is not a multiple of %d", m.Name, len(m.Vertices), n)
	}
	count := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= count {
			return fmt.Errorf("mesh %q: index %d at %d out of range (%d vertices)", m.Name, idx, i, count)
		}
	}
	return nil
}
