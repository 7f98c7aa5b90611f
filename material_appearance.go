package cesium

import (
	"fmt"

	"github.com/ududsha/cesium/shaders"
)

// MaterialSupport selects how much of the vertex stream a MaterialAppearance
// feeds its material.
type MaterialSupport uint8

const (
	// MaterialSupportBasic carries position and normal; materials that read
	// texture coordinates see a zeroed st.
	MaterialSupportBasic MaterialSupport = iota
	// MaterialSupportTextured adds texture coordinates. The common choice.
	MaterialSupportTextured
	// MaterialSupportAll adds tangent and bitangent on top of Textured.
	MaterialSupportAll
)

// VertexFormat returns the vertex attributes this support level consumes.
func (s MaterialSupport) VertexFormat() VertexFormat {
	switch s {
	case MaterialSupportBasic:
		return VertexFormatPositionAndNormal()
	case MaterialSupportTextured:
		return VertexFormatPositionNormalAndST()
	case MaterialSupportAll:
		return VertexFormatAll()
	}
	panic(fmt.Sprintf("unknown material support %d", s))
}

func (s MaterialSupport) vertexShader() string {
	switch s {
	case MaterialSupportBasic:
		return shaders.MaterialBasicVS
	case MaterialSupportTextured:
		return shaders.MaterialTexturedVS
	case MaterialSupportAll:
		return shaders.MaterialAllVS
	}
	panic(fmt.Sprintf("unknown material support %d", s))
}

// MaterialAppearance is the general-purpose appearance for arbitrary
// geometry: any material combined with the shared lit fragment body.
type MaterialAppearance struct {
	*Appearance
	support      MaterialSupport
	vertexFormat VertexFormat
}

// NewMaterialAppearance builds a MaterialAppearance. Without WithMaterial it
// colors with an opaque white ColorMaterial; without WithFaceForward open
// (non-closed) geometry defaults to face-forward normals so backfaces light
// correctly.
func NewMaterialAppearance(support MaterialSupport, opts ...Option) *MaterialAppearance {
	base := &Appearance{translucent: true}
	for _, opt := range opts {
		opt(base)
	}
	if !base.faceForwardSet {
		base.faceForward = !base.closed
	}
	if base.material == nil {
		base.material = NewColorMaterial(White)
	}
	if base.vertexShaderSource == "" {
		base.vertexShaderSource = support.vertexShader()
	}
	if base.fragmentShaderSource == "" {
		base.fragmentShaderSource = shaders.MaterialDefaultFS
	}
	if base.renderState == nil {
		rs := DefaultRenderState(base.translucent, base.closed)
		base.renderState = &rs
	}
	return &MaterialAppearance{
		Appearance:   base,
		support:      support,
		vertexFormat: support.VertexFormat(),
	}
}

func (a *MaterialAppearance) Support() MaterialSupport   { return a.support }
func (a *MaterialAppearance) VertexFormat() VertexFormat { return a.vertexFormat }
