package gpu

import (
	"testing"

	"github.com/gekko3d/flycam/render/core"
	"github.com/gekko3d/flycam/render/shaders"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexLayoutOf_SceneVertex(t *testing.T) {
	layout, err := VertexLayoutOf(core.Vertex{})
	require.NoError(t, err)

	assert.Equal(t, uint64(28), layout.Stride)
	require.Len(t, layout.Attributes, 2)
	assert.Equal(t, VertexFormatFloat32x3, layout.Attributes[0].Format)
	assert.Equal(t, uint64(12), layout.Attributes[1].Offset)
}

func TestVertexLayoutOf_UntaggedFieldsAdvanceOffset(t *testing.T) {
	type padded struct {
		Pad   float32
		Color mgl32.Vec4 `flycam:"layout" location:"3" format:"float4"`
	}
	layout, err := VertexLayoutOf(padded{})
	require.NoError(t, err)

	assert.Equal(t, uint64(20), layout.Stride)
	assert.Equal(t, []VertexAttribute{{Location: 3, Offset: 4, Format: VertexFormatFloat32x4}}, layout.Attributes)
}

func TestVertexLayoutOf_Errors(t *testing.T) {
	type badFormat struct {
		Pos mgl32.Vec3 `flycam:"layout" location:"0" format:"half3"`
	}
	type mismatched struct {
		Pos mgl32.Vec3 `flycam:"layout" location:"0" format:"float4"`
	}
	type badLocation struct {
		Pos mgl32.Vec3 `flycam:"layout" location:"x" format:"float3"`
	}

	tests := []struct {
		name   string
		vertex any
	}{
		{"not a struct", 42},
		{"nil", nil},
		{"unknown format", badFormat{}},
		{"size mismatch", mismatched{}},
		{"bad location", badLocation{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := VertexLayoutOf(tc.vertex)
			assert.Error(t, err)
		})
	}
}

func TestToBufferBytes(t *testing.T) {
	data, err := toBufferBytes([]core.Vertex{{Pos: mgl32.Vec3{1, 2, 3}, Color: core.Black}})
	require.NoError(t, err)
	assert.Len(t, data, 28)

	data, err = toBufferBytes(Transforms{})
	require.NoError(t, err)
	assert.Len(t, data, TransformsSize)

	_, err = toBufferBytes(map[string]int{})
	assert.Error(t, err)
}

func TestVertexLayout_MatchInputs(t *testing.T) {
	layout, err := VertexLayoutOf(core.Vertex{})
	require.NoError(t, err)

	assert.NoError(t, layout.matchInputs([]shaders.Input{{Location: 0, Components: 3}, {Location: 1, Components: 4}}))
	assert.NoError(t, layout.matchInputs([]shaders.Input{{Location: 1, Components: 4}}), "unused attributes are fine")
	assert.ErrorContains(t, layout.matchInputs([]shaders.Input{{Location: 5, Components: 4}}), "no vertex attribute")
	assert.ErrorContains(t, layout.matchInputs([]shaders.Input{{Location: 0, Components: 4}}), "expects 4 components")
}
