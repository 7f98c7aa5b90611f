package cesium

import (
	"github.com/ududsha/cesium/shaders"
)

// EllipsoidSurfaceAppearance renders geometry draped on an ellipsoid. The
// vertex stream carries only position and st; the surface normal is derived
// from the position, which points away from the ellipsoid center.
type EllipsoidSurfaceAppearance struct {
	*Appearance
	aboveGround  bool
	vertexFormat VertexFormat
}

// NewEllipsoidSurfaceAppearance builds the draped-surface appearance.
// aboveGround declares that viewers may see the geometry's underside: it
// disables the backface culling an on-ground surface gets by default and
// flips faceForward's default to true so undersides light correctly.
func NewEllipsoidSurfaceAppearance(aboveGround bool, opts ...Option) *EllipsoidSurfaceAppearance {
	base := &Appearance{translucent: true}
	for _, opt := range opts {
		opt(base)
	}
	if !base.faceForwardSet {
		base.faceForward = aboveGround
	}
	if base.material == nil {
		base.material = NewColorMaterial(White)
	}
	if base.vertexShaderSource == "" {
		base.vertexShaderSource = shaders.EllipsoidSurfaceVS
	}
	if base.fragmentShaderSource == "" {
		base.fragmentShaderSource = shaders.EllipsoidSurfaceFS
	}
	if base.renderState == nil {
		rs := DefaultRenderState(base.translucent, !aboveGround)
		base.renderState = &rs
	}
	return &EllipsoidSurfaceAppearance{
		Appearance:   base,
		aboveGround:  aboveGround,
		vertexFormat: VertexFormatPositionAndST(),
	}
}

func (a *EllipsoidSurfaceAppearance) AboveGround() bool          { return a.aboveGround }
func (a *EllipsoidSurfaceAppearance) VertexFormat() VertexFormat { return a.vertexFormat }
