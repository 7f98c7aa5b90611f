package gpu

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/ududsha/cesium"
)

// Bind group slots the builtin shader prelude declares.
const (
	GroupScene     = 0
	GroupPrimitive = 1
	GroupMaterial  = 2
)

// CreateVertexIndexBuffers uploads a primitive's interleaved vertices and
// indices.
func CreateVertexIndexBuffers(dev *Device, vertices []float32, indices []uint16) (*wgpu.Buffer, *wgpu.Buffer, error) {
	vertexBuf, err := dev.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Vertex Buffer",
		Contents: wgpu.ToBytes(vertices),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create vertex buffer: %w", err)
	}
	indexBuf, err := dev.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Index Buffer",
		Contents: wgpu.ToBytes(indices),
		Usage:    wgpu.BufferUsageIndex,
	})
	if err != nil {
		vertexBuf.Release()
		return nil, nil, fmt.Errorf("create index buffer: %w", err)
	}
	return vertexBuf, indexBuf, nil
}

// NewUniformBuffer creates a uniform buffer with initial contents; update it
// per frame through Queue().WriteBuffer.
func NewUniformBuffer(dev *Device, label string, data []byte) (*wgpu.Buffer, error) {
	buf, err := dev.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: data,
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create uniform buffer %q: %w", label, err)
	}
	return buf, nil
}

// BindUniform exposes one uniform buffer at binding 0 of the given group,
// using the pipeline's reflected layout.
func BindUniform(dev *Device, pipeline *wgpu.RenderPipeline, group uint32, buf *wgpu.Buffer) (*wgpu.BindGroup, error) {
	layout := pipeline.GetBindGroupLayout(group)
	defer layout.Release()

	bindGroup, err := dev.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: buf, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create bind group %d: %w", group, err)
	}
	return bindGroup, nil
}

// MaterialBindings is a material's uploaded GPU state: the group-2 bind group
// plus the uniform buffer behind it, kept so callers can push uniform changes
// without rebuilding bind groups.
type MaterialBindings struct {
	BindGroup *wgpu.BindGroup
	// Uniforms is nil for materials without a uniform block.
	Uniforms *wgpu.Buffer
}

// Update rewrites the uniform block from the material's current fields.
func (mb *MaterialBindings) Update(dev *Device, material cesium.Material) error {
	if mb.Uniforms == nil {
		return nil
	}
	provider, ok := material.(cesium.UniformProvider)
	if !ok {
		return nil
	}
	return dev.queue.WriteBuffer(mb.Uniforms, 0, provider.UniformData())
}

func (mb *MaterialBindings) Release() {
	if mb.BindGroup != nil {
		mb.BindGroup.Release()
		mb.BindGroup = nil
	}
	if mb.Uniforms != nil {
		mb.Uniforms.Release()
		mb.Uniforms = nil
	}
}

// MaterialBindGroup uploads a material's uniform block and, for
// texture-backed materials, its texture and sampler, bound the way material
// snippets declare them: uniforms at binding 0, texture at 1, sampler at 2
// of the material group. A nil material, or one exposing no GPU state,
// yields nil bindings and nothing to set during encoding.
func MaterialBindGroup(dev *Device, pipeline *wgpu.RenderPipeline, material cesium.Material) (*MaterialBindings, error) {
	if material == nil {
		return nil, nil
	}

	var entries []wgpu.BindGroupEntry
	var uniforms *wgpu.Buffer

	if provider, ok := material.(cesium.UniformProvider); ok {
		buf, err := NewUniformBuffer(dev, "Material Uniforms", provider.UniformData())
		if err != nil {
			return nil, err
		}
		uniforms = buf
		entries = append(entries, wgpu.BindGroupEntry{Binding: 0, Buffer: buf, Size: wgpu.WholeSize})
	}

	if provider, ok := material.(cesium.TextureProvider); ok {
		view, err := createTextureRGBA(dev, provider.TextureImage())
		if err != nil {
			if uniforms != nil {
				uniforms.Release()
			}
			return nil, err
		}
		sampler, err := dev.device.CreateSampler(&wgpu.SamplerDescriptor{
			AddressModeU:  wgpu.AddressModeRepeat,
			AddressModeV:  wgpu.AddressModeRepeat,
			AddressModeW:  wgpu.AddressModeRepeat,
			MagFilter:     wgpu.FilterModeLinear,
			MinFilter:     wgpu.FilterModeLinear,
			MipmapFilter:  wgpu.MipmapFilterModeLinear,
			LodMinClamp:   0.,
			LodMaxClamp:   1.,
			Compare:       wgpu.CompareFunctionUndefined,
			MaxAnisotropy: 1,
		})
		if err != nil {
			view.Release()
			if uniforms != nil {
				uniforms.Release()
			}
			return nil, fmt.Errorf("create material sampler: %w", err)
		}
		entries = append(entries,
			wgpu.BindGroupEntry{Binding: 1, TextureView: view, Size: wgpu.WholeSize},
			wgpu.BindGroupEntry{Binding: 2, Sampler: sampler, Size: wgpu.WholeSize},
		)
	}

	if len(entries) == 0 {
		return nil, nil
	}

	layout := pipeline.GetBindGroupLayout(GroupMaterial)
	defer layout.Release()

	bindGroup, err := dev.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout:  layout,
		Entries: entries,
	})
	if err != nil {
		if uniforms != nil {
			uniforms.Release()
		}
		return nil, fmt.Errorf("create material bind group: %w", err)
	}
	return &MaterialBindings{BindGroup: bindGroup, Uniforms: uniforms}, nil
}

func createTextureRGBA(dev *Device, img *image.RGBA) (*wgpu.TextureView, error) {
	bounds := img.Bounds()
	extent := wgpu.Extent3D{
		Width:              uint32(bounds.Dx()),
		Height:             uint32(bounds.Dy()),
		DepthOrArrayLayers: 1,
	}
	texture, err := dev.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "Material Texture",
		Size:          extent,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create material texture: %w", err)
	}
	defer texture.Release()

	view, err := texture.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("create material texture view: %w", err)
	}

	err = dev.queue.WriteTexture(
		texture.AsImageCopy(),
		img.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(img.Stride),
			RowsPerImage: extent.Height,
		},
		&extent,
	)
	if err != nil {
		view.Release()
		return nil, fmt.Errorf("write material texture: %w", err)
	}
	return view, nil
}
