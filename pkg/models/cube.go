package models

import "github.com/taigrr/facet/pkg/math3d"

// Face colors of the built-in cube.
const (
	CubeFront  uint32 = 0xFFFF0000
	CubeRight  uint32 = 0xFF00FF00
	CubeBack   uint32 = 0xFF0000FF
	CubeLeft   uint32 = 0xFFFFFF00
	CubeTop    uint32 = 0xFFFF00FF
	CubeBottom uint32 = 0xFF00FFFF
)

var cubeVertices = [8]math3d.Vec3{
	{X: -1, Y: -1, Z: -1}, // 1
	{X: -1, Y: 1, Z: -1},  // 2
	{X: 1, Y: 1, Z: -1},   // 3
	{X: 1, Y: -1, Z: -1},  // 4
	{X: 1, Y: 1, Z: 1},    // 5
	{X: 1, Y: -1, Z: 1},   // 6
	{X: -1, Y: 1, Z: 1},   // 7
	{X: -1, Y: -1, Z: 1},  // 8
}

var cubeFaces = [12]Face{
	// front (z = -1)
	{A: 1, B: 2, C: 3, Color: CubeFront},
	{A: 1, B: 3, C: 4, Color: CubeFront},
	// right
	{A: 4, B: 3, C: 5, Color: CubeRight},
	{A: 4, B: 5, C: 6, Color: CubeRight},
	// back
	{A: 6, B: 5, C: 7, Color: CubeBack},
	{A: 6, B: 7, C: 8, Color: CubeBack},
	// left
	{A: 8, B: 7, C: 2, Color: CubeLeft},
	{A: 8, B: 2, C: 1, Color: CubeLeft},
	// top
	{A: 2, B: 7, C: 5, Color: CubeTop},
	{A: 2, B: 5, C: 3, Color: CubeTop},
	// bottom
	{A: 6, B: 8, C: 1, Color: CubeBottom},
	{A: 6, B: 1, C: 4, Color: CubeBottom},
}

// Cube returns a fresh copy of the built-in 2x2x2 cube centered at the origin.
// Every face winds so that (B-A) x (C-A) points outward.
func Cube() *Mesh {
	m := NewMesh("cube")
	m.Vertices = append(m.Vertices, cubeVertices[:]...)
	m.Faces = append(m.Faces, cubeFaces[:]...)
	return m
}
