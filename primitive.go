package cesium

import (
	"github.com/go-gl/mathgl/mgl32"
)

// VariantAppearance is what a concrete appearance variant hands a renderer:
// the base appearance derivations plus the vertex format it declares.
type VariantAppearance interface {
	Material() Material
	VertexShaderSource() string
	FragmentShaderSource() string
	CombinedFragmentShaderSource() string
	IsTranslucent() bool
	DeriveRenderState() RenderState
	Flat() bool
	FaceForward() bool
	VertexFormat() VertexFormat
}

// Primitive pairs geometry with the appearance that renders it. Vertices are
// interleaved float32 in the appearance's vertex format, present attributes
// ordered as the VertexFormat fields are: position, normal, st, tangent,
// bitangent, color.
type Primitive struct {
	Vertices    []float32
	Indices     []uint16
	Appearance  VariantAppearance
	ModelMatrix mgl32.Mat4
	Show        bool
}

func NewPrimitive(vertices []float32, indices []uint16, appearance VariantAppearance) *Primitive {
	return &Primitive{
		Vertices:    vertices,
		Indices:     indices,
		Appearance:  appearance,
		ModelMatrix: mgl32.Ident4(),
		Show:        true,
	}
}
