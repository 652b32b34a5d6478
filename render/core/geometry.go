package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the on-GPU vertex format. Fields tagged with flycam:"layout"
// become vertex attributes at the given shader location.
type Vertex struct {
	Pos   mgl32.Vec3 `flycam:"layout" location:"0" format:"float3"`
	Color mgl32.Vec4 `flycam:"layout" location:"1" format:"float4"`
}

const (
	CubeVertexCount = 8
	CubeIndexCount  = 36
	DefaultCubeSize = 0.1
)

var (
	Black = mgl32.Vec4{0, 0, 0, 1}

	// two triangles per face, base-relative
	cubeIndices = [CubeIndexCount]uint32{
		0, 1, 2, 0, 2, 3, // front
		4, 5, 6, 4, 6, 7, // back
		0, 1, 5, 0, 5, 4, // left
		2, 3, 7, 2, 7, 6, // right
		1, 2, 6, 1, 6, 5, // top
		0, 3, 7, 0, 7, 4, // bottom
	}

	// scene cube centres
	ScenePositions = []mgl32.Vec3{
		{0, 0, 2},
		{1, 1, 3},
		{-1, -1, 4},
		{1, -1, 2.5},
		{-1, 1, 3.5},
	}
)

// AppendCube appends an axis-aligned cube of half-extent size centred at
// center. Its indices are offset by the number of vertices already present.
func AppendCube(vertices []Vertex, indices []uint32, center mgl32.Vec3, size float32, color mgl32.Vec4) ([]Vertex, []uint32) {
	base := uint32(len(vertices))
	x, y, z := center[0], center[1], center[2]

	vertices = append(vertices,
		Vertex{Pos: mgl32.Vec3{x - size, y - size, z - size}, Color: color},
		Vertex{Pos: mgl32.Vec3{x - size, y + size, z - size}, Color: color},
		Vertex{Pos: mgl32.Vec3{x + size, y + size, z - size}, Color: color},
		Vertex{Pos: mgl32.Vec3{x + size, y - size, z - size}, Color: color},
		Vertex{Pos: mgl32.Vec3{x - size, y - size, z + size}, Color: color},
		Vertex{Pos: mgl32.Vec3{x - size, y + size, z + size}, Color: color},
		Vertex{Pos: mgl32.Vec3{x + size, y + size, z + size}, Color: color},
		Vertex{Pos: mgl32.Vec3{x + size, y - size, z + size}, Color: color},
	)
	for _, i := range cubeIndices {
		indices = append(indices, base+i)
	}
	return vertices, indices
}

// CubeScene builds the static scene: small black cubes at ScenePositions.
func CubeScene() ([]Vertex, []uint32) {
	vertices := make([]Vertex, 0, len(ScenePositions)*CubeVertexCount)
	indices := make([]uint32, 0, len(ScenePositions)*CubeIndexCount)
	for _, p := range ScenePositions {
		vertices, indices = AppendCube(vertices, indices, p, DefaultCubeSize, Black)
	}
	return vertices, indices
}
