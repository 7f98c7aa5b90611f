package cesium

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ududsha/cesium/shaders"
)

func TestMaterialAppearance_Defaults(t *testing.T) {
	a := NewMaterialAppearance(MaterialSupportTextured)

	require.NotNil(t, a.Material())
	assert.IsType(t, &ColorMaterial{}, a.Material())
	assert.False(t, a.IsTranslucent(), "default white material is opaque and governs")
	assert.Equal(t, shaders.MaterialTexturedVS, a.VertexShaderSource())
	assert.Equal(t, shaders.MaterialDefaultFS, a.FragmentShaderSource())
	assert.Equal(t, VertexFormatPositionNormalAndST(), a.VertexFormat())
	assert.Equal(t, MaterialSupportTextured, a.Support())
}

func TestMaterialAppearance_FaceForwardDefaultsToNotClosed(t *testing.T) {
	open := NewMaterialAppearance(MaterialSupportBasic)
	if !open.FaceForward() {
		t.Error("Expected open geometry to default faceForward on")
	}

	closed := NewMaterialAppearance(MaterialSupportBasic, WithClosed(true))
	if closed.FaceForward() {
		t.Error("Expected closed geometry to default faceForward off")
	}

	explicit := NewMaterialAppearance(MaterialSupportBasic, WithClosed(true), WithFaceForward(true))
	if !explicit.FaceForward() {
		t.Error("Expected an explicit faceForward to survive the closed default")
	}
}

func TestMaterialAppearance_VertexShaderPerSupport(t *testing.T) {
	cases := []struct {
		support MaterialSupport
		vs      string
		format  VertexFormat
	}{
		{MaterialSupportBasic, shaders.MaterialBasicVS, VertexFormatPositionAndNormal()},
		{MaterialSupportTextured, shaders.MaterialTexturedVS, VertexFormatPositionNormalAndST()},
		{MaterialSupportAll, shaders.MaterialAllVS, VertexFormatAll()},
	}
	for _, tc := range cases {
		a := NewMaterialAppearance(tc.support)
		if a.VertexShaderSource() != tc.vs {
			t.Errorf("support %d: wrong vertex shader selected", tc.support)
		}
		if a.VertexFormat() != tc.format {
			t.Errorf("support %d: expected format %+v, got %+v", tc.support, tc.format, a.VertexFormat())
		}
	}
}

func TestMaterialAppearance_OpaqueClosedRenderState(t *testing.T) {
	a := NewMaterialAppearance(
		MaterialSupportBasic,
		WithTranslucent(false),
		WithClosed(true),
	)

	rs := a.DeriveRenderState()
	assert.True(t, rs.DepthMask)
	assert.Nil(t, rs.Blending)
	assert.True(t, rs.Cull.Enabled)
	assert.Equal(t, CullFaceBack, rs.Cull.Face)
}

func TestMaterialAppearance_TranslucentMaterialRenderState(t *testing.T) {
	a := NewMaterialAppearance(
		MaterialSupportTextured,
		WithMaterial(NewColorMaterial(Blue.WithAlpha(0.5))),
	)

	rs := a.DeriveRenderState()
	assert.False(t, rs.DepthMask)
	assert.Equal(t, AlphaBlend(), rs.Blending)
	assert.False(t, rs.Cull.Enabled)
}

func TestMaterialAppearance_RenderStateOverrideWins(t *testing.T) {
	override := RenderState{
		DepthTest: DepthTest{Enabled: true, Func: CompareLessOrEqual},
		Cull:      Cull{Enabled: true, Face: CullFaceFront},
	}
	a := NewMaterialAppearance(
		MaterialSupportBasic,
		WithTranslucent(false),
		WithRenderState(override),
	)

	rs := a.DeriveRenderState()
	assert.Equal(t, CompareLessOrEqual, rs.DepthTest.Func)
	assert.Equal(t, CullFaceFront, rs.Cull.Face)
}

func TestMaterialAppearance_CombinedSourceStartsWithMaterial(t *testing.T) {
	a := NewMaterialAppearance(MaterialSupportTextured, WithMaterial(NewCheckerboardMaterial()))

	src := a.fragmentSource()
	require.Len(t, src.Sources, 2)
	assert.Equal(t, shaders.CheckerboardMaterialWGSL, src.Sources[0])
	assert.Equal(t, shaders.MaterialDefaultFS, src.Sources[1])
}

func TestMaterialSupport_UnknownPanics(t *testing.T) {
	require.Panics(t, func() { MaterialSupport(9).VertexFormat() })
}
