// Package shaders holds the WGSL sources shared by all appearances and the
// Source combiner that assembles them into complete shader modules.
package shaders

import (
	_ "embed"
)

// BuiltinsWGSL declares the bind groups, varyings and material structs every
// composed program shares. It is included once per program, by whoever
// assembles the final module, never per appearance.
//
//go:embed builtins.wgsl
var BuiltinsWGSL string

// Default vertex shaders for MaterialAppearance, one per material support
// level.
//
//go:embed material_basic_vs.wgsl
var MaterialBasicVS string

//go:embed material_textured_vs.wgsl
var MaterialTexturedVS string

//go:embed material_all_vs.wgsl
var MaterialAllVS string

// MaterialDefaultFS is the shared fragment body for material-driven
// appearances. It honors the FLAT and FACE_FORWARD defines.
//
//go:embed material_default_fs.wgsl
var MaterialDefaultFS string

//go:embed per_instance_color_vs.wgsl
var PerInstanceColorVS string

//go:embed per_instance_color_flat_vs.wgsl
var PerInstanceColorFlatVS string

//go:embed per_instance_color_fs.wgsl
var PerInstanceColorFS string

//go:embed ellipsoid_surface_vs.wgsl
var EllipsoidSurfaceVS string

//go:embed ellipsoid_surface_fs.wgsl
var EllipsoidSurfaceFS string

//go:embed debug_vs.wgsl
var DebugVS string

//go:embed debug_fs.wgsl
var DebugFS string

//go:embed polyline_color_vs.wgsl
var PolylineColorVS string

//go:embed polyline_color_fs.wgsl
var PolylineColorFS string

//go:embed polyline_material_vs.wgsl
var PolylineMaterialVS string

//go:embed polyline_material_fs.wgsl
var PolylineMaterialFS string

// Material snippets. Each defines get_material plus its own group(2)
// bindings.
//
//go:embed material_color.wgsl
var ColorMaterialWGSL string

//go:embed material_image.wgsl
var ImageMaterialWGSL string

//go:embed material_checkerboard.wgsl
var CheckerboardMaterialWGSL string

//go:embed material_stripe.wgsl
var StripeMaterialWGSL string

//go:embed material_grid.wgsl
var GridMaterialWGSL string

//go:embed material_dot.wgsl
var DotMaterialWGSL string
