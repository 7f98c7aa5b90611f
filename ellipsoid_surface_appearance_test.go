package cesium

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ududsha/cesium/shaders"
)

func TestEllipsoidSurfaceAppearance_OnGround(t *testing.T) {
	a := NewEllipsoidSurfaceAppearance(false)

	assert.False(t, a.FaceForward(), "an on-ground surface never shows its underside")
	assert.False(t, a.AboveGround())
	assert.Equal(t, VertexFormatPositionAndST(), a.VertexFormat())
	assert.Equal(t, shaders.EllipsoidSurfaceVS, a.VertexShaderSource())

	require.NotNil(t, a.Material())
	assert.False(t, a.IsTranslucent(), "default white material is opaque")

	rs := a.DeriveRenderState()
	assert.True(t, rs.Cull.Enabled, "draped-on-ground geometry culls its backfaces")
	assert.Equal(t, CullFaceBack, rs.Cull.Face)
}

func TestEllipsoidSurfaceAppearance_AboveGround(t *testing.T) {
	a := NewEllipsoidSurfaceAppearance(true)

	assert.True(t, a.FaceForward())
	assert.True(t, a.AboveGround())

	rs := a.DeriveRenderState()
	assert.False(t, rs.Cull.Enabled, "a floating surface keeps both sides visible")
}

func TestEllipsoidSurfaceAppearance_ExplicitFaceForwardSurvives(t *testing.T) {
	a := NewEllipsoidSurfaceAppearance(true, WithFaceForward(false))
	assert.False(t, a.FaceForward())
}

func TestEllipsoidSurfaceAppearance_DerivesNormalFromPosition(t *testing.T) {
	a := NewEllipsoidSurfaceAppearance(false)

	// The vertex stream has no normal; the shader reconstructs it from the
	// position relative to the ellipsoid center.
	assert.False(t, a.VertexFormat().Normal)
	assert.Contains(t, a.VertexShaderSource(), "normalize(in.position)")
}
