package cesium

import (
	"github.com/ududsha/cesium/shaders"
)

// Appearance combines a swappable material with the structural rendering
// policy of a drawable: shader scaffolding, translucency intent and the
// derived rasterization state. Everything except the material is fixed at
// construction; variants that need different flags build a new instance.
type Appearance struct {
	material             Material
	translucent          bool
	closed               bool
	vertexShaderSource   string
	fragmentShaderSource string
	renderState          *RenderState
	flat                 bool
	faceForward          bool
	// faceForwardSet records an explicit WithFaceForward, so variants whose
	// faceForward default depends on other flags know not to clobber it.
	faceForwardSet bool
}

// Option configures an Appearance at construction.
type Option func(*Appearance)

// WithMaterial sets the initial material. It may be swapped later with
// SetMaterial.
func WithMaterial(m Material) Option {
	return func(a *Appearance) { a.material = m }
}

// WithTranslucent declares whether the geometry is expected to need alpha
// blending. Defaults to true. A present material overrides this intent.
func WithTranslucent(translucent bool) Option {
	return func(a *Appearance) { a.translucent = translucent }
}

// WithClosed declares the geometry a fully enclosed solid, which enables
// backface culling in the default render state. Defaults to false.
func WithClosed(closed bool) Option {
	return func(a *Appearance) { a.closed = closed }
}

func WithVertexShaderSource(src string) Option {
	return func(a *Appearance) { a.vertexShaderSource = src }
}

func WithFragmentShaderSource(src string) Option {
	return func(a *Appearance) { a.fragmentShaderSource = src }
}

// WithRenderState overrides the derived render state's starting point. The
// value is deep-copied; later caller mutation cannot reach the appearance.
func WithRenderState(rs RenderState) Option {
	return func(a *Appearance) {
		clone := rs.Clone()
		a.renderState = &clone
	}
}

// WithFlat selects flat shading: the fragment stage skips lighting.
func WithFlat(flat bool) Option {
	return func(a *Appearance) { a.flat = flat }
}

// WithFaceForward makes the fragment stage flip normals that point away from
// the eye, so back faces light like front faces.
func WithFaceForward(faceForward bool) Option {
	return func(a *Appearance) {
		a.faceForward = faceForward
		a.faceForwardSet = true
	}
}

func NewAppearance(opts ...Option) *Appearance {
	a := &Appearance{translucent: true}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Material returns the current material, which may be nil.
func (a *Appearance) Material() Material { return a.material }

// SetMaterial swaps the coloring logic live. The material reference is the
// single mutable field of an appearance.
func (a *Appearance) SetMaterial(m Material) { a.material = m }

func (a *Appearance) Translucent() bool            { return a.translucent }
func (a *Appearance) Closed() bool                 { return a.closed }
func (a *Appearance) VertexShaderSource() string   { return a.vertexShaderSource }
func (a *Appearance) FragmentShaderSource() string { return a.fragmentShaderSource }
func (a *Appearance) Flat() bool                   { return a.flat }
func (a *Appearance) FaceForward() bool            { return a.faceForward }

// RenderStateOverride returns a copy of the construction-time override, or
// nil if none was supplied.
func (a *Appearance) RenderStateOverride() *RenderState {
	if a.renderState == nil {
		return nil
	}
	clone := a.renderState.Clone()
	return &clone
}

// fragmentSource assembles the combiner input: FLAT and FACE_FORWARD defines
// per the flags, the material snippet (when present) ahead of the
// appearance's own fragment body. Builtins stay suppressed because whoever
// assembles the final program supplies them once, not once per appearance.
func (a *Appearance) fragmentSource() shaders.Source {
	var defines []string
	if a.flat {
		defines = append(defines, "FLAT")
	}
	if a.faceForward {
		defines = append(defines, "FACE_FORWARD")
	}

	var sources []string
	if a.material != nil {
		sources = append(sources, a.material.ShaderSource())
	}
	sources = append(sources, a.fragmentShaderSource)

	return shaders.Source{Defines: defines, Sources: sources}
}

// CombinedFragmentShaderSource builds the complete fragment source for the
// current material and flags. Output is byte-identical across calls until
// the material is swapped.
func (a *Appearance) CombinedFragmentShaderSource() string {
	return a.fragmentSource().Combine()
}

// IsTranslucent reports whether fragments need alpha blending. A present
// material is authoritative about its own alpha behavior; without one the
// constructed translucent flag governs.
func (a *Appearance) IsTranslucent() bool {
	if a.material != nil {
		return a.material.IsTranslucent()
	}
	return a.translucent
}

// DeriveRenderState produces the render state for the current translucency:
// a fresh deep copy of the override (or a zero state), with depth writes
// disabled and alpha blending applied when translucent, and depth writes
// forced on otherwise. Opaque derivation leaves any override blending alone.
func (a *Appearance) DeriveRenderState() RenderState {
	var rs RenderState
	if a.renderState != nil {
		rs = a.renderState.Clone()
	}
	if a.IsTranslucent() {
		rs.DepthMask = false
		rs.Blending = AlphaBlend()
	} else {
		rs.DepthMask = true
	}
	return rs
}
