package cesium

import (
	"encoding/binary"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/ududsha/cesium/shaders"
)

// MaterialId identifies one material instance. Pipeline caches key on it to
// tell instances apart, so two materials of the same type never share an id.
type MaterialId string

func makeMaterialId() MaterialId {
	return MaterialId(uuid.NewString())
}

// Material is the fragment-coloring half of an appearance. ShaderSource
// returns the WGSL snippet declaring get_material plus whatever group(2)
// bindings the material owns; IsTranslucent reports whether its fragments may
// need alpha blending. Anything satisfying this contract may be assigned to
// an appearance.
type Material interface {
	ShaderSource() string
	IsTranslucent() bool
}

// MaterialIdentifier is implemented by materials carrying a stable instance
// id. Materials without one still render but skip pipeline caching.
type MaterialIdentifier interface {
	Id() MaterialId
}

// UniformProvider is implemented by materials with a uniform block at
// group(2) binding(0). The returned bytes are uploaded verbatim and must
// match the WGSL struct layout of the material's snippet.
type UniformProvider interface {
	UniformData() []byte
}

// TextureProvider is implemented by materials that sample a texture at
// group(2) binding(1) with the sampler at binding(2).
type TextureProvider interface {
	TextureImage() *image.RGBA
}

func putFloat32(buf []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(v))
}

func putVec2(buf []byte, off int, v mgl32.Vec2) {
	putFloat32(buf, off, v[0])
	putFloat32(buf, off+4, v[1])
}

func putColor(buf []byte, off int, c Color) {
	putFloat32(buf, off, c.R)
	putFloat32(buf, off+4, c.G)
	putFloat32(buf, off+8, c.B)
	putFloat32(buf, off+12, c.A)
}

func putBool(buf []byte, off int, b bool) {
	if b {
		putFloat32(buf, off, 1)
	} else {
		putFloat32(buf, off, 0)
	}
}

// ColorMaterial colors every fragment with one uniform color.
type ColorMaterial struct {
	id    MaterialId
	Color Color
}

func NewColorMaterial(color Color) *ColorMaterial {
	return &ColorMaterial{id: makeMaterialId(), Color: color}
}

func (m *ColorMaterial) Id() MaterialId       { return m.id }
func (m *ColorMaterial) ShaderSource() string { return shaders.ColorMaterialWGSL }
func (m *ColorMaterial) IsTranslucent() bool  { return m.Color.Translucent() }

func (m *ColorMaterial) UniformData() []byte {
	buf := make([]byte, 16)
	putColor(buf, 0, m.Color)
	return buf
}

// CheckerboardMaterial alternates two colors in a checkerboard of
// Repeat.X by Repeat.Y cells across the texture coordinates.
type CheckerboardMaterial struct {
	id        MaterialId
	EvenColor Color
	OddColor  Color
	Repeat    mgl32.Vec2
}

func NewCheckerboardMaterial() *CheckerboardMaterial {
	return &CheckerboardMaterial{
		id:        makeMaterialId(),
		EvenColor: White,
		OddColor:  Black,
		Repeat:    mgl32.Vec2{5, 5},
	}
}

func (m *CheckerboardMaterial) Id() MaterialId       { return m.id }
func (m *CheckerboardMaterial) ShaderSource() string { return shaders.CheckerboardMaterialWGSL }

func (m *CheckerboardMaterial) IsTranslucent() bool {
	return m.EvenColor.Translucent() || m.OddColor.Translucent()
}

func (m *CheckerboardMaterial) UniformData() []byte {
	buf := make([]byte, 48)
	putColor(buf, 0, m.EvenColor)
	putColor(buf, 16, m.OddColor)
	putVec2(buf, 32, m.Repeat)
	return buf
}

// StripeMaterial draws alternating stripes. Horizontal stripes vary along
// st.y; Offset shifts the pattern and Repeat counts stripe pairs.
type StripeMaterial struct {
	id         MaterialId
	EvenColor  Color
	OddColor   Color
	Offset     float32
	Repeat     float32
	Horizontal bool
}

func NewStripeMaterial() *StripeMaterial {
	return &StripeMaterial{
		id:        makeMaterialId(),
		EvenColor: White,
		OddColor:  Blue,
		Repeat:    5,
	}
}

func (m *StripeMaterial) Id() MaterialId       { return m.id }
func (m *StripeMaterial) ShaderSource() string { return shaders.StripeMaterialWGSL }

func (m *StripeMaterial) IsTranslucent() bool {
	return m.EvenColor.Translucent() || m.OddColor.Translucent()
}

func (m *StripeMaterial) UniformData() []byte {
	buf := make([]byte, 48)
	putColor(buf, 0, m.EvenColor)
	putColor(buf, 16, m.OddColor)
	putFloat32(buf, 32, m.Offset)
	putFloat32(buf, 36, m.Repeat)
	putBool(buf, 40, m.Horizontal)
	return buf
}

// GridMaterial draws grid lines over cells faded to CellAlpha. LineThickness
// is a fraction of one cell per axis, so it stays proportional under Repeat
// changes.
type GridMaterial struct {
	id            MaterialId
	Color         Color
	CellAlpha     float32
	LineCount     mgl32.Vec2
	LineThickness mgl32.Vec2
}

func NewGridMaterial() *GridMaterial {
	return &GridMaterial{
		id:            makeMaterialId(),
		Color:         White,
		CellAlpha:     0.1,
		LineCount:     mgl32.Vec2{8, 8},
		LineThickness: mgl32.Vec2{0.05, 0.05},
	}
}

func (m *GridMaterial) Id() MaterialId       { return m.id }
func (m *GridMaterial) ShaderSource() string { return shaders.GridMaterialWGSL }

// IsTranslucent is always true: the cells between lines render at CellAlpha.
func (m *GridMaterial) IsTranslucent() bool { return true }

func (m *GridMaterial) UniformData() []byte {
	buf := make([]byte, 48)
	putColor(buf, 0, m.Color)
	putVec2(buf, 16, m.LineCount)
	putVec2(buf, 24, m.LineThickness)
	putFloat32(buf, 32, m.CellAlpha)
	return buf
}

// DotMaterial draws light dots on a dark background, Repeat.X by Repeat.Y
// dots across the texture coordinates.
type DotMaterial struct {
	id         MaterialId
	LightColor Color
	DarkColor  Color
	Repeat     mgl32.Vec2
}

func NewDotMaterial() *DotMaterial {
	return &DotMaterial{
		id:         makeMaterialId(),
		LightColor: White,
		DarkColor:  Black,
		Repeat:     mgl32.Vec2{5, 5},
	}
}

func (m *DotMaterial) Id() MaterialId       { return m.id }
func (m *DotMaterial) ShaderSource() string { return shaders.DotMaterialWGSL }

func (m *DotMaterial) IsTranslucent() bool {
	return m.LightColor.Translucent() || m.DarkColor.Translucent()
}

func (m *DotMaterial) UniformData() []byte {
	buf := make([]byte, 48)
	putColor(buf, 0, m.LightColor)
	putColor(buf, 16, m.DarkColor)
	putVec2(buf, 32, m.Repeat)
	return buf
}
