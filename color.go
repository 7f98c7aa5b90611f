package cesium

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// NewColorRGB returns an opaque color.
func NewColorRGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Transparent = Color{0, 0, 0, 0}
)

// WithAlpha returns the same color with the alpha component replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Translucent reports whether the color needs alpha blending to display.
func (c Color) Translucent() bool {
	return c.A < 1
}

// Vec4 returns the color as an RGBA vector.
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}
