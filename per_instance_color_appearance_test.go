package cesium

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ududsha/cesium/shaders"
)

func TestPerInstanceColorAppearance_Defaults(t *testing.T) {
	a := NewPerInstanceColorAppearance()

	assert.Nil(t, a.Material(), "per-vertex color needs no material")
	assert.True(t, a.IsTranslucent(), "without a material the translucent flag governs")
	assert.Equal(t, shaders.PerInstanceColorVS, a.VertexShaderSource())
	assert.Equal(t, shaders.PerInstanceColorFS, a.FragmentShaderSource())
	assert.Equal(t, VertexFormat{Position: true, Normal: true, Color: true}, a.VertexFormat())
	assert.True(t, a.FaceForward())
}

func TestPerInstanceColorAppearance_FlatDropsNormal(t *testing.T) {
	a := NewPerInstanceColorAppearance(WithFlat(true))

	if a.VertexShaderSource() != shaders.PerInstanceColorFlatVS {
		t.Error("Expected the flat vertex shader variant")
	}
	assert.Equal(t, VertexFormatPositionAndColor(), a.VertexFormat())

	combined := a.CombinedFragmentShaderSource()
	assert.Contains(t, combined, "return in.color;")
	assert.NotContains(t, combined, "phong_shade")
}

func TestPerInstanceColorAppearance_ShadedUsesLighting(t *testing.T) {
	a := NewPerInstanceColorAppearance()

	combined := a.CombinedFragmentShaderSource()
	assert.Contains(t, combined, "phong_shade")
	assert.NotContains(t, combined, "#", "directives must be fully resolved")
}

func TestPerInstanceColorAppearance_ClosedDisablesFaceForward(t *testing.T) {
	a := NewPerInstanceColorAppearance(WithClosed(true), WithTranslucent(false))

	assert.False(t, a.FaceForward())
	rs := a.DeriveRenderState()
	assert.True(t, rs.Cull.Enabled)
}
