package cesium

import (
	"fmt"

	"github.com/ududsha/cesium/shaders"
)

// DebugAppearance visualizes a geometry attribute as color, remapping the
// eye-space vector from [-1,1] to [0,1]. Meant for inspecting generated
// normals, tangents and bitangents.
type DebugAppearance struct {
	*Appearance
	attributeName string
	vertexFormat  VertexFormat
}

// NewDebugAppearance builds an appearance showing attributeName, one of
// "normal", "tangent" or "bitangent". Unknown names are a programmer error
// and panic.
func NewDebugAppearance(attributeName string, opts ...Option) *DebugAppearance {
	var define string
	switch attributeName {
	case "normal":
		define = "DEBUG_NORMAL"
	case "tangent":
		define = "DEBUG_TANGENT"
	case "bitangent":
		define = "DEBUG_BITANGENT"
	default:
		panic(fmt.Sprintf("cesium: unknown debug attribute %q", attributeName))
	}

	base := &Appearance{}
	for _, opt := range opts {
		opt(base)
	}
	if base.vertexShaderSource == "" {
		base.vertexShaderSource = shaders.DebugVS
	}
	if base.fragmentShaderSource == "" {
		// Specialize the shared debug body for the chosen attribute up
		// front; the appearance-level defines stay reserved for FLAT and
		// FACE_FORWARD.
		base.fragmentShaderSource = shaders.Source{
			Defines: []string{define},
			Sources: []string{shaders.DebugFS},
		}.Combine()
	}
	if base.renderState == nil {
		rs := DefaultRenderState(base.translucent, base.closed)
		base.renderState = &rs
	}
	return &DebugAppearance{
		Appearance:    base,
		attributeName: attributeName,
		vertexFormat:  VertexFormatAll(),
	}
}

func (a *DebugAppearance) AttributeName() string      { return a.attributeName }
func (a *DebugAppearance) VertexFormat() VertexFormat { return a.vertexFormat }
