package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubeScene_Counts(t *testing.T) {
	vertices, indices := CubeScene()

	assert.Len(t, vertices, len(ScenePositions)*CubeVertexCount)
	assert.Len(t, indices, len(ScenePositions)*CubeIndexCount)
	assert.Zero(t, len(indices)%3, "triangle list")
}

func TestCubeScene_IndicesInRange(t *testing.T) {
	vertices, indices := CubeScene()
	for i, idx := range indices {
		require.Less(t, int(idx), len(vertices), "index %d", i)
	}
}

func TestAppendCube_OffsetsIndices(t *testing.T) {
	vertices, indices := AppendCube(nil, nil, mgl32.Vec3{}, 1, Black)
	vertices, indices = AppendCube(vertices, indices, mgl32.Vec3{5, 0, 0}, 1, Black)

	require.Len(t, indices, 2*CubeIndexCount)
	for _, idx := range indices[CubeIndexCount:] {
		assert.GreaterOrEqual(t, idx, uint32(CubeVertexCount))
	}
	assert.Equal(t, mgl32.Vec3{4, -1, -1}, vertices[CubeVertexCount].Pos)
}

func TestAppendCube_Bounds(t *testing.T) {
	center := mgl32.Vec3{1, -1, 2.5}
	vertices, _ := AppendCube(nil, nil, center, DefaultCubeSize, Black)

	for _, v := range vertices {
		d := v.Pos.Sub(center)
		for axis := 0; axis < 3; axis++ {
			assert.InDelta(t, DefaultCubeSize, absf(d[axis]), 1e-6)
		}
		assert.Equal(t, Black, v.Color)
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
