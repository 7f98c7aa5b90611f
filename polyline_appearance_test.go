package cesium

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ududsha/cesium/shaders"
)

func TestPolylineColorAppearance(t *testing.T) {
	a := NewPolylineColorAppearance()

	assert.Nil(t, a.Material())
	assert.Equal(t, shaders.PolylineColorVS, a.VertexShaderSource())
	assert.Equal(t, shaders.PolylineColorFS, a.FragmentShaderSource())
	assert.Equal(t, VertexFormatPositionAndColor(), a.VertexFormat())

	// Lines are unlit: no shading toggles apply.
	assert.False(t, a.Flat())
	assert.False(t, a.FaceForward())
	assert.Empty(t, a.fragmentSource().Defines)

	rs := a.DeriveRenderState()
	assert.False(t, rs.Cull.Enabled, "lines have no faces to cull")
	assert.False(t, rs.DepthMask, "default translucent intent disables depth writes")
	assert.NotNil(t, rs.Blending)
}

func TestPolylineColorAppearance_Opaque(t *testing.T) {
	a := NewPolylineColorAppearance(WithTranslucent(false))

	rs := a.DeriveRenderState()
	assert.True(t, rs.DepthMask)
	assert.Nil(t, rs.Blending)
}

func TestPolylineMaterialAppearance(t *testing.T) {
	a := NewPolylineMaterialAppearance()

	require.NotNil(t, a.Material(), "material polylines default to opaque white")
	assert.Equal(t, shaders.PolylineMaterialVS, a.VertexShaderSource())
	assert.Equal(t, VertexFormatPositionAndST(), a.VertexFormat())

	src := a.fragmentSource()
	require.Len(t, src.Sources, 2)
	assert.Equal(t, a.Material().ShaderSource(), src.Sources[0])
}

func TestPolylineMaterialAppearance_PatternsAlongLine(t *testing.T) {
	stripes := NewStripeMaterial()
	a := NewPolylineMaterialAppearance(WithMaterial(stripes))

	combined := a.CombinedFragmentShaderSource()
	assert.Contains(t, combined, "get_material")
	assert.NotContains(t, combined, "#")
}
