package gpu

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transforms is the per-frame constant block. Matrices are column-major.
type Transforms struct {
	World      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// TransformsSize is exactly three 4x4 float32 matrices.
const TransformsSize = 3 * 16 * 4
