package cesium

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

var (
	_ VariantAppearance = (*MaterialAppearance)(nil)
	_ VariantAppearance = (*PerInstanceColorAppearance)(nil)
	_ VariantAppearance = (*EllipsoidSurfaceAppearance)(nil)
	_ VariantAppearance = (*PolylineColorAppearance)(nil)
	_ VariantAppearance = (*PolylineMaterialAppearance)(nil)
	_ VariantAppearance = (*DebugAppearance)(nil)
)

func TestNewPrimitive_Defaults(t *testing.T) {
	vertices := []float32{0, 0, 0, 0, 0, 1}
	indices := []uint16{0}
	p := NewPrimitive(vertices, indices, NewPerInstanceColorAppearance())

	assert.True(t, p.Show)
	assert.Equal(t, mgl32.Ident4(), p.ModelMatrix)
	assert.Equal(t, vertices, p.Vertices)
	assert.Equal(t, indices, p.Indices)
}
