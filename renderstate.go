package cesium

// RenderState describes the fixed-function GPU state a drawable needs:
// depth testing and writes, blending, and face culling. It is a plain
// in-process value with no backend types in it; the gpu package lowers it
// to webgpu pipeline state.
//
// The zero value disables everything: no depth test, no depth writes, no
// blending, no culling.
type RenderState struct {
	DepthTest DepthTest
	DepthMask bool
	// Blending is nil when blending is off.
	Blending *Blending
	Cull     Cull
}

// DepthTest controls depth comparison against the depth buffer.
type DepthTest struct {
	Enabled bool
	Func    CompareFunction
}

// Cull controls which triangle faces are discarded before rasterization.
type Cull struct {
	Enabled bool
	Face    CullFace
}

// Blending holds separate blend equations for the color and alpha channels,
// mirroring the webgpu blend-state shape.
type Blending struct {
	Color BlendComponent
	Alpha BlendComponent
}

type BlendComponent struct {
	Operation BlendOperation
	SrcFactor BlendFactor
	DstFactor BlendFactor
}

// CompareFunction selects the depth comparison. The zero value is
// CompareLess, the conventional default for opaque 3D rendering.
type CompareFunction uint8

const (
	CompareLess CompareFunction = iota
	CompareLessOrEqual
	CompareEqual
	CompareGreaterOrEqual
	CompareGreater
	CompareNotEqual
	CompareNever
	CompareAlways
)

// CullFace selects which face winding gets culled. The zero value is
// CullFaceBack: closed solids cull their interior-facing triangles.
type CullFace uint8

const (
	CullFaceBack CullFace = iota
	CullFaceFront
)

type BlendOperation uint8

const (
	BlendOperationAdd BlendOperation = iota
	BlendOperationSubtract
	BlendOperationReverseSubtract
	BlendOperationMin
	BlendOperationMax
)

type BlendFactor uint8

const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorSrc
	BlendFactorOneMinusSrc
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDst
	BlendFactorOneMinusDst
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
)

// AlphaBlend returns the standard straight-alpha source-over blend:
// color = src.rgb*src.a + dst.rgb*(1-src.a). This library composites
// translucent geometry with straight (non-premultiplied) alpha throughout.
// Each call returns a fresh value so callers can patch it freely.
func AlphaBlend() *Blending {
	return &Blending{
		Color: BlendComponent{
			Operation: BlendOperationAdd,
			SrcFactor: BlendFactorSrcAlpha,
			DstFactor: BlendFactorOneMinusSrcAlpha,
		},
		Alpha: BlendComponent{
			Operation: BlendOperationAdd,
			SrcFactor: BlendFactorOne,
			DstFactor: BlendFactorOneMinusSrcAlpha,
		},
	}
}

// PreMultipliedAlphaBlend returns source-over blending for premultiplied
// color values.
func PreMultipliedAlphaBlend() *Blending {
	return &Blending{
		Color: BlendComponent{
			Operation: BlendOperationAdd,
			SrcFactor: BlendFactorOne,
			DstFactor: BlendFactorOneMinusSrcAlpha,
		},
		Alpha: BlendComponent{
			Operation: BlendOperationAdd,
			SrcFactor: BlendFactorOne,
			DstFactor: BlendFactorOneMinusSrcAlpha,
		},
	}
}

// AdditiveBlend returns additive blending, useful for glows and highlights.
func AdditiveBlend() *Blending {
	return &Blending{
		Color: BlendComponent{
			Operation: BlendOperationAdd,
			SrcFactor: BlendFactorSrcAlpha,
			DstFactor: BlendFactorOne,
		},
		Alpha: BlendComponent{
			Operation: BlendOperationAdd,
			SrcFactor: BlendFactorSrcAlpha,
			DstFactor: BlendFactorOne,
		},
	}
}

// Clone returns a deep copy. Mutating the copy never affects the original.
func (rs RenderState) Clone() RenderState {
	out := rs
	if rs.Blending != nil {
		b := *rs.Blending
		out.Blending = &b
	}
	return out
}

// DefaultRenderState returns the canonical render state for appearance
// variants that do not supply their own override. Depth testing is always
// enabled. Translucent geometry blends with AlphaBlend and leaves the depth
// buffer untouched; closed solids cull their back faces.
func DefaultRenderState(translucent, closed bool) RenderState {
	rs := RenderState{
		DepthTest: DepthTest{Enabled: true, Func: CompareLess},
		DepthMask: true,
	}
	if translucent {
		rs.DepthMask = false
		rs.Blending = AlphaBlend()
	}
	if closed {
		rs.Cull = Cull{Enabled: true, Face: CullFaceBack}
	}
	return rs
}
