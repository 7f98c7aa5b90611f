package cesium

import (
	"github.com/ududsha/cesium/shaders"
)

// PerInstanceColorAppearance colors geometry from a per-vertex color
// attribute instead of a material. WithFlat drops lighting and the normal
// attribute with it.
type PerInstanceColorAppearance struct {
	*Appearance
	vertexFormat VertexFormat
}

func NewPerInstanceColorAppearance(opts ...Option) *PerInstanceColorAppearance {
	base := &Appearance{translucent: true}
	for _, opt := range opts {
		opt(base)
	}
	if !base.faceForwardSet {
		base.faceForward = !base.closed
	}

	vf := VertexFormatPositionAndColor()
	if base.flat {
		if base.vertexShaderSource == "" {
			base.vertexShaderSource = shaders.PerInstanceColorFlatVS
		}
	} else {
		vf.Normal = true
		if base.vertexShaderSource == "" {
			base.vertexShaderSource = shaders.PerInstanceColorVS
		}
	}
	if base.fragmentShaderSource == "" {
		base.fragmentShaderSource = shaders.PerInstanceColorFS
	}
	if base.renderState == nil {
		rs := DefaultRenderState(base.translucent, base.closed)
		base.renderState = &rs
	}
	return &PerInstanceColorAppearance{Appearance: base, vertexFormat: vf}
}

func (a *PerInstanceColorAppearance) VertexFormat() VertexFormat { return a.vertexFormat }
