package gpu

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/fnv"
	"sync"
	"sync/atomic"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/ududsha/cesium"
	"github.com/ududsha/cesium/shaders"
)

// PipelineConfig carries the pipeline traits that do not come from the
// appearance itself.
type PipelineConfig struct {
	Label string
	// Lines selects line-list topology instead of triangles; the polyline
	// appearances render with this.
	Lines bool
}

// BuildPipeline compiles the appearance's shaders into a single wgpu module
// and assembles a render pipeline around its derived render state, targeting
// the device's surface and depth formats.
func BuildPipeline(dev *Device, app cesium.VariantAppearance, cfg PipelineConfig) (*wgpu.RenderPipeline, error) {
	code := shaders.Source{
		Sources:         []string{app.VertexShaderSource(), app.CombinedFragmentShaderSource()},
		IncludeBuiltins: true,
	}.Combine()

	shader, err := dev.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          cfg.Label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: code},
	})
	if err != nil {
		return nil, fmt.Errorf("create shader module %q: %w", cfg.Label, err)
	}
	defer shader.Release()

	rs := app.DeriveRenderState()
	topology := wgpu.PrimitiveTopologyTriangleList
	if cfg.Lines {
		topology = wgpu.PrimitiveTopologyLineList
	}

	pipeline, err := dev.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: cfg.Label,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    []wgpu.VertexBufferLayout{VertexLayout(app.VertexFormat())},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    dev.SurfaceFormat(),
					Blend:     BlendState(rs.Blending),
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  topology,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  CullMode(rs.Cull),
		},
		DepthStencil: DepthStencil(rs, DepthFormat),
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create render pipeline %q: %w", cfg.Label, err)
	}
	return pipeline, nil
}

// PipelineKey hashes everything about an appearance that shapes its compiled
// pipeline: material identity, shader sources, shading flags, the derived
// render state, vertex layout and target format. Appearances with equal keys
// can share one pipeline. Materials without a stable id are keyed on their
// snippet text instead.
func PipelineKey(app cesium.VariantAppearance, cfg PipelineConfig, surfaceFormat wgpu.TextureFormat) uint64 {
	h := fnv.New64a()

	if m := app.Material(); m != nil {
		if ident, ok := m.(cesium.MaterialIdentifier); ok {
			hashWriteString(h, string(ident.Id()))
		} else {
			hashWriteString(h, m.ShaderSource())
		}
	}
	hashWriteString(h, app.VertexShaderSource())
	hashWriteString(h, app.FragmentShaderSource())
	hashWriteBool(h, app.Flat())
	hashWriteBool(h, app.FaceForward())

	rs := app.DeriveRenderState()
	hashWriteBool(h, rs.DepthTest.Enabled)
	hashWriteUint32(h, uint32(rs.DepthTest.Func))
	hashWriteBool(h, rs.DepthMask)
	if rs.Blending != nil {
		hashWriteBool(h, true)
		hashWriteUint32(h, uint32(rs.Blending.Color.Operation))
		hashWriteUint32(h, uint32(rs.Blending.Color.SrcFactor))
		hashWriteUint32(h, uint32(rs.Blending.Color.DstFactor))
		hashWriteUint32(h, uint32(rs.Blending.Alpha.Operation))
		hashWriteUint32(h, uint32(rs.Blending.Alpha.SrcFactor))
		hashWriteUint32(h, uint32(rs.Blending.Alpha.DstFactor))
	} else {
		hashWriteBool(h, false)
	}
	hashWriteBool(h, rs.Cull.Enabled)
	hashWriteUint32(h, uint32(rs.Cull.Face))

	vf := app.VertexFormat()
	for _, on := range []bool{vf.Position, vf.Normal, vf.ST, vf.Tangent, vf.Bitangent, vf.Color} {
		hashWriteBool(h, on)
	}

	hashWriteBool(h, cfg.Lines)
	hashWriteUint32(h, uint32(surfaceFormat))
	return h.Sum64()
}

func hashWriteUint32(h hash.Hash64, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, _ = h.Write(buf[:])
}

func hashWriteString(h hash.Hash64, s string) {
	hashWriteUint32(h, uint32(len(s)))
	_, _ = h.Write([]byte(s))
}

func hashWriteBool(h hash.Hash64, v bool) {
	if v {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.Write([]byte{0})
	}
}

// PipelineCache shares compiled pipelines between primitives whose
// appearances lower to identical GPU state. Safe for concurrent use: lookups
// take a read lock and misses double-check under the write lock before
// building.
type PipelineCache struct {
	mu        sync.RWMutex
	pipelines map[uint64]*wgpu.RenderPipeline

	hits   uint64
	misses uint64
}

func NewPipelineCache() *PipelineCache {
	return &PipelineCache{pipelines: make(map[uint64]*wgpu.RenderPipeline)}
}

// GetOrBuild returns the cached pipeline for the appearance, building and
// storing one on first use.
func (c *PipelineCache) GetOrBuild(dev *Device, app cesium.VariantAppearance, cfg PipelineConfig) (*wgpu.RenderPipeline, error) {
	key := PipelineKey(app, cfg, dev.SurfaceFormat())

	c.mu.RLock()
	if pipeline, ok := c.pipelines[key]; ok {
		c.mu.RUnlock()
		atomic.AddUint64(&c.hits, 1)
		return pipeline, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if pipeline, ok := c.pipelines[key]; ok {
		atomic.AddUint64(&c.hits, 1)
		return pipeline, nil
	}

	pipeline, err := BuildPipeline(dev, app, cfg)
	if err != nil {
		return nil, err
	}
	c.pipelines[key] = pipeline
	atomic.AddUint64(&c.misses, 1)
	return pipeline, nil
}

// Stats reports cache hit and miss counts.
func (c *PipelineCache) Stats() (hits, misses uint64) {
	return atomic.LoadUint64(&c.hits), atomic.LoadUint64(&c.misses)
}

// Len reports how many pipelines the cache holds.
func (c *PipelineCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pipelines)
}

// Release frees every cached pipeline and empties the cache.
func (c *PipelineCache) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, pipeline := range c.pipelines {
		pipeline.Release()
		delete(c.pipelines, key)
	}
}
