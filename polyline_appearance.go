package cesium

import (
	"github.com/ududsha/cesium/shaders"
)

// PolylineColorAppearance colors polylines from a per-vertex color
// attribute. Lines are never lit.
type PolylineColorAppearance struct {
	*Appearance
	vertexFormat VertexFormat
}

func NewPolylineColorAppearance(opts ...Option) *PolylineColorAppearance {
	base := &Appearance{translucent: true}
	for _, opt := range opts {
		opt(base)
	}
	if base.vertexShaderSource == "" {
		base.vertexShaderSource = shaders.PolylineColorVS
	}
	if base.fragmentShaderSource == "" {
		base.fragmentShaderSource = shaders.PolylineColorFS
	}
	if base.renderState == nil {
		rs := DefaultRenderState(base.translucent, false)
		base.renderState = &rs
	}
	return &PolylineColorAppearance{
		Appearance:   base,
		vertexFormat: VertexFormatPositionAndColor(),
	}
}

func (a *PolylineColorAppearance) VertexFormat() VertexFormat { return a.vertexFormat }

// PolylineMaterialAppearance runs a material along a polyline; st.x carries
// the normalized distance along the line for the material to pattern on.
type PolylineMaterialAppearance struct {
	*Appearance
	vertexFormat VertexFormat
}

func NewPolylineMaterialAppearance(opts ...Option) *PolylineMaterialAppearance {
	base := &Appearance{translucent: true}
	for _, opt := range opts {
		opt(base)
	}
	if base.material == nil {
		base.material = NewColorMaterial(White)
	}
	if base.vertexShaderSource == "" {
		base.vertexShaderSource = shaders.PolylineMaterialVS
	}
	if base.fragmentShaderSource == "" {
		base.fragmentShaderSource = shaders.PolylineMaterialFS
	}
	if base.renderState == nil {
		rs := DefaultRenderState(base.translucent, false)
		base.renderState = &rs
	}
	return &PolylineMaterialAppearance{
		Appearance:   base,
		vertexFormat: VertexFormatPositionAndST(),
	}
}

func (a *PolylineMaterialAppearance) VertexFormat() VertexFormat { return a.vertexFormat }
