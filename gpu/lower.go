package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/ududsha/cesium"
)

// BlendState lowers a blending description to wgpu blend state. Nil in, nil
// out: a nil blend on the color target disables blending.
func BlendState(b *cesium.Blending) *wgpu.BlendState {
	if b == nil {
		return nil
	}
	return &wgpu.BlendState{
		Color: blendComponent(b.Color),
		Alpha: blendComponent(b.Alpha),
	}
}

func blendComponent(c cesium.BlendComponent) wgpu.BlendComponent {
	return wgpu.BlendComponent{
		Operation: blendOperation(c.Operation),
		SrcFactor: blendFactor(c.SrcFactor),
		DstFactor: blendFactor(c.DstFactor),
	}
}

func blendOperation(op cesium.BlendOperation) wgpu.BlendOperation {
	switch op {
	case cesium.BlendOperationAdd:
		return wgpu.BlendOperationAdd
	case cesium.BlendOperationSubtract:
		return wgpu.BlendOperationSubtract
	case cesium.BlendOperationReverseSubtract:
		return wgpu.BlendOperationReverseSubtract
	case cesium.BlendOperationMin:
		return wgpu.BlendOperationMin
	case cesium.BlendOperationMax:
		return wgpu.BlendOperationMax
	}
	panic(fmt.Sprintf("gpu: unknown blend operation %d", op))
}

func blendFactor(f cesium.BlendFactor) wgpu.BlendFactor {
	switch f {
	case cesium.BlendFactorZero:
		return wgpu.BlendFactorZero
	case cesium.BlendFactorOne:
		return wgpu.BlendFactorOne
	case cesium.BlendFactorSrc:
		return wgpu.BlendFactorSrc
	case cesium.BlendFactorOneMinusSrc:
		return wgpu.BlendFactorOneMinusSrc
	case cesium.BlendFactorSrcAlpha:
		return wgpu.BlendFactorSrcAlpha
	case cesium.BlendFactorOneMinusSrcAlpha:
		return wgpu.BlendFactorOneMinusSrcAlpha
	case cesium.BlendFactorDst:
		return wgpu.BlendFactorDst
	case cesium.BlendFactorOneMinusDst:
		return wgpu.BlendFactorOneMinusDst
	case cesium.BlendFactorDstAlpha:
		return wgpu.BlendFactorDstAlpha
	case cesium.BlendFactorOneMinusDstAlpha:
		return wgpu.BlendFactorOneMinusDstAlpha
	}
	panic(fmt.Sprintf("gpu: unknown blend factor %d", f))
}

// CullMode lowers face culling to the wgpu cull mode.
func CullMode(c cesium.Cull) wgpu.CullMode {
	if !c.Enabled {
		return wgpu.CullModeNone
	}
	switch c.Face {
	case cesium.CullFaceBack:
		return wgpu.CullModeBack
	case cesium.CullFaceFront:
		return wgpu.CullModeFront
	}
	panic(fmt.Sprintf("gpu: unknown cull face %d", c.Face))
}

func compareFunction(f cesium.CompareFunction) wgpu.CompareFunction {
	switch f {
	case cesium.CompareLess:
		return wgpu.CompareFunctionLess
	case cesium.CompareLessOrEqual:
		return wgpu.CompareFunctionLessEqual
	case cesium.CompareEqual:
		return wgpu.CompareFunctionEqual
	case cesium.CompareGreaterOrEqual:
		return wgpu.CompareFunctionGreaterEqual
	case cesium.CompareGreater:
		return wgpu.CompareFunctionGreater
	case cesium.CompareNotEqual:
		return wgpu.CompareFunctionNotEqual
	case cesium.CompareNever:
		return wgpu.CompareFunctionNever
	case cesium.CompareAlways:
		return wgpu.CompareFunctionAlways
	}
	panic(fmt.Sprintf("gpu: unknown compare function %d", f))
}

// DepthStencil lowers the depth half of a render state against the given
// depth attachment format. A disabled depth test lowers to CompareAlways so
// depth writes can still happen when the mask asks for them. Stencil is
// pass-through.
func DepthStencil(rs cesium.RenderState, format wgpu.TextureFormat) *wgpu.DepthStencilState {
	compare := wgpu.CompareFunctionAlways
	if rs.DepthTest.Enabled {
		compare = compareFunction(rs.DepthTest.Func)
	}
	passThrough := wgpu.StencilFaceState{
		Compare:     wgpu.CompareFunctionAlways,
		FailOp:      wgpu.StencilOperationKeep,
		DepthFailOp: wgpu.StencilOperationKeep,
		PassOp:      wgpu.StencilOperationKeep,
	}
	return &wgpu.DepthStencilState{
		Format:            format,
		DepthWriteEnabled: rs.DepthMask,
		DepthCompare:      compare,
		StencilFront:      passThrough,
		StencilBack:       passThrough,
		StencilReadMask:   0xFFFFFFFF,
		StencilWriteMask:  0xFFFFFFFF,
	}
}

// VertexLayout derives the interleaved buffer layout for a vertex format.
// Attributes pack as float32 in canonical order (position, normal, st,
// tangent, bitangent, color) and shader locations number the present
// attributes from zero, which is how the bundled vertex shaders declare
// their inputs.
func VertexLayout(vf cesium.VertexFormat) wgpu.VertexBufferLayout {
	table := []struct {
		present bool
		format  wgpu.VertexFormat
		size    uint64
	}{
		{vf.Position, wgpu.VertexFormatFloat32x3, 12},
		{vf.Normal, wgpu.VertexFormatFloat32x3, 12},
		{vf.ST, wgpu.VertexFormatFloat32x2, 8},
		{vf.Tangent, wgpu.VertexFormatFloat32x3, 12},
		{vf.Bitangent, wgpu.VertexFormatFloat32x3, 12},
		{vf.Color, wgpu.VertexFormatFloat32x4, 16},
	}

	var attributes []wgpu.VertexAttribute
	var offset uint64
	var location uint32
	for _, entry := range table {
		if !entry.present {
			continue
		}
		attributes = append(attributes, wgpu.VertexAttribute{
			ShaderLocation: location,
			Offset:         offset,
			Format:         entry.format,
		})
		offset += entry.size
		location++
	}

	return wgpu.VertexBufferLayout{
		ArrayStride: offset,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attributes,
	}
}
