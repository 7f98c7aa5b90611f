package cesium

// VertexFormat declares which per-vertex attributes a geometry carries and an
// appearance's shaders consume. Attribute order in buffers follows field
// order here; the gpu package derives webgpu vertex layouts from it.
type VertexFormat struct {
	Position  bool
	Normal    bool
	ST        bool
	Tangent   bool
	Bitangent bool
	Color     bool
}

// AttributeCount returns how many attributes the format enables.
func (vf VertexFormat) AttributeCount() int {
	n := 0
	for _, on := range []bool{vf.Position, vf.Normal, vf.ST, vf.Tangent, vf.Bitangent, vf.Color} {
		if on {
			n++
		}
	}
	return n
}

func VertexFormatPositionOnly() VertexFormat {
	return VertexFormat{Position: true}
}

func VertexFormatPositionAndNormal() VertexFormat {
	return VertexFormat{Position: true, Normal: true}
}

func VertexFormatPositionNormalAndST() VertexFormat {
	return VertexFormat{Position: true, Normal: true, ST: true}
}

func VertexFormatPositionAndST() VertexFormat {
	return VertexFormat{Position: true, ST: true}
}

func VertexFormatPositionAndColor() VertexFormat {
	return VertexFormat{Position: true, Color: true}
}

// VertexFormatAll enables every attribute except per-vertex color.
func VertexFormatAll() VertexFormat {
	return VertexFormat{Position: true, Normal: true, ST: true, Tangent: true, Bitangent: true}
}

// DefaultVertexFormat is what most appearances want: position, normal and
// texture coordinates.
func DefaultVertexFormat() VertexFormat {
	return VertexFormatPositionNormalAndST()
}
