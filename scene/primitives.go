package scene

import "opengl-labs/core"

// rabbitPoints lists the 2D silhouette points shared by the fill and the
// outline meshes.
var rabbitPoints = [][2]float32{
	// head
	{-0.2, 0.6}, {0.0, 0.6}, {-0.2, 0.4}, {0.0, 0.4},
	// ear
	{0.3, 0.6}, {0.15, 0.75}, {0.45, 0.75},
	// body
	{0.0, 0.0}, {0.4, 0.0}, {0.4, -0.4},
	// leg
	{0.0, -0.2}, {0.0, -0.4}, {0.2, -0.2},
	// front paws
	{-0.15, 0.0}, {0.0, 0.15}, {0.0, -0.15},
}

var rabbitFillIndices = []uint32{
	0, 1, 2, 1, 3, 2, // head
	5, 6, 1, 6, 4, 1, // ear
	3, 8, 7, 7, 8, 9, // body
	12, 9, 11, 10, 12, 11, // leg
	13, 14, 15, // front paw
}

var rabbitLineIndices = []uint32{
	0, 1, 1, 3, 3, 2, 2, 0, // head
	1, 5, 5, 6, 6, 4, 4, 1, // ear
	3, 7, 7, 8, 3, 8, // body
	7, 9, 8, 9, 9, 12, 11, 9, 10, 12, 10, 11, 12, 11, // leg
	14, 13, 13, 15, 15, 7, // paw
}

func rabbitVertices(c core.Color) []float32 {
	v := make([]float32, 0, len(rabbitPoints)*6)
	for _, p := range rabbitPoints {
		v = append(v, p[0], p[1], 0, c.R, c.G, c.B)
	}
	return v
}

// CreateRabbitFill returns the filled rabbit sprite, drawn as triangles.
func CreateRabbitFill(c core.Color) *Mesh {
	return &Mesh{
		Name:     "RabbitFill",
		Layout:   LayoutPositionColor,
		Vertices: rabbitVertices(c),
		Indices:  rabbitFillIndices,
	}
}

// CreateRabbitOutline returns the rabbit's edges, drawn as lines.
func CreateRabbitOutline(c core.Color) *Mesh {
	return &Mesh{
		Name:     "RabbitOutline",
		Layout:   LayoutPositionColor,
		Vertices: rabbitVertices(c),
		Indices:  rabbitLineIndices,
	}
}

// cubeFace describes one face as two triangles of corner signs and UVs.
type cubeFace struct {
	normal  [3]float32
	corners [6][3]float32
	uvs     [6][2]float32
}

var cubeFaces = []cubeFace{
	{normal: [3]float32{0, 0, -1},
		corners: [6][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {1, 1, -1}, {-1, 1, -1}, {-1, -1, -1}},
		uvs:     [6][2]float32{{0, 0}, {1, 0}, {1, 1}, {1, 1}, {0, 1}, {0, 0}}},
	{normal: [3]float32{0, 0, 1},
		corners: [6][3]float32{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}},
		uvs:     [6][2]float32{{0, 0}, {1, 0}, {1, 1}, {1, 1}, {0, 1}, {0, 0}}},
	{normal: [3]float32{-1, 0, 0},
		corners: [6][3]float32{{-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}, {-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}},
		uvs:     [6][2]float32{{1, 0}, {1, 1}, {0, 1}, {0, 1}, {0, 0}, {1, 0}}},
	{normal: [3]float32{1, 0, 0},
		corners: [6][3]float32{{1, 1, 1}, {1, 1, -1}, {1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {1, 1, 1}},
		uvs:     [6][2]float32{{1, 0}, {1, 1}, {0, 1}, {0, 1}, {0, 0}, {1, 0}}},
	{normal: [3]float32{0, -1, 0},
		corners: [6][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {1, -1, 1}, {-1, -1, 1}, {-1, -1, -1}},
		uvs:     [6][2]float32{{0, 1}, {1, 1}, {1, 0}, {1, 0}, {0, 0}, {0, 1}}},
	{normal: [3]float32{0, 1, 0},
		corners: [6][3]float32{{-1, 1, -1}, {1, 1, -1}, {1, 1, 1}, {1, 1, 1}, {-1, 1, 1}, {-1, 1, -1}},
		uvs:     [6][2]float32{{0, 1}, {1, 1}, {1, 0}, {1, 0}, {0, 0}, {0, 1}}},
}

// CreateTexturedCube returns a unit cube centred on the origin with
// texcoords and per-face normals, drawn as 36 non-indexed vertices.
func CreateTexturedCube() *Mesh {
	v := make([]float32, 0, 36*8)
	for _, f := range cubeFaces {
		for i, c := range f.corners {
			v = append(v,
				c[0]*0.5, c[1]*0.5, c[2]*0.5,
				f.uvs[i][0], f.uvs[i][1],
				f.normal[0], f.normal[1], f.normal[2])
		}
	}
	return &Mesh{Name: "TexturedCube", Layout: LayoutPositionUVNormal, Vertices: v}
}

// CreateColoredCube returns an l×w×h box of a single flat colour, used for
// unlit light markers.
func CreateColoredCube(l, w, h float32, c core.Color) *Mesh {
	v := make([]float32, 0, 36*6)
	for _, f := range cubeFaces {
		for _, p := range f.corners {
			v = append(v, p[0]*l/2, p[1]*w/2, p[2]*h/2, c.R, c.G, c.B)
		}
	}
	return &Mesh{Name: "ColoredCube", Layout: LayoutPositionColor, Vertices: v}
}
