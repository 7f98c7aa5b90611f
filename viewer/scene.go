package main

import (
	"fmt"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/ududsha/cesium"
	"github.com/ududsha/cesium/gpu"
)

// drawable is one primitive's uploaded GPU state: its pipeline, geometry
// buffers and the bind groups feeding the builtin uniform groups.
type drawable struct {
	prim           *cesium.Primitive
	pipeline       *wgpu.RenderPipeline
	vertexBuf      *wgpu.Buffer
	indexBuf       *wgpu.Buffer
	indexCount     uint32
	sceneGroup     *wgpu.BindGroup
	modelBuf       *wgpu.Buffer
	primitiveGroup *wgpu.BindGroup
	material       *gpu.MaterialBindings
}

func newDrawable(dev *gpu.Device, cache *gpu.PipelineCache, sceneBuf *wgpu.Buffer, prim *cesium.Primitive, label string) (*drawable, error) {
	pipeline, err := cache.GetOrBuild(dev, prim.Appearance, gpu.PipelineConfig{Label: label})
	if err != nil {
		return nil, err
	}
	vertexBuf, indexBuf, err := gpu.CreateVertexIndexBuffers(dev, prim.Vertices, prim.Indices)
	if err != nil {
		return nil, err
	}
	sceneGroup, err := gpu.BindUniform(dev, pipeline, gpu.GroupScene, sceneBuf)
	if err != nil {
		return nil, err
	}
	modelBuf, err := gpu.NewUniformBuffer(dev, label+" Model", matrixBytes(prim.ModelMatrix))
	if err != nil {
		return nil, err
	}
	primitiveGroup, err := gpu.BindUniform(dev, pipeline, gpu.GroupPrimitive, modelBuf)
	if err != nil {
		return nil, err
	}
	material, err := gpu.MaterialBindGroup(dev, pipeline, prim.Appearance.Material())
	if err != nil {
		return nil, err
	}
	return &drawable{
		prim:           prim,
		pipeline:       pipeline,
		vertexBuf:      vertexBuf,
		indexBuf:       indexBuf,
		indexCount:     uint32(len(prim.Indices)),
		sceneGroup:     sceneGroup,
		modelBuf:       modelBuf,
		primitiveGroup: primitiveGroup,
		material:       material,
	}, nil
}

func (d *drawable) writeModel(dev *gpu.Device) error {
	return dev.Queue().WriteBuffer(d.modelBuf, 0, matrixBytes(d.prim.ModelMatrix))
}

func (d *drawable) release() {
	if d.material != nil {
		d.material.Release()
	}
	d.primitiveGroup.Release()
	d.modelBuf.Release()
	d.sceneGroup.Release()
	d.indexBuf.Release()
	d.vertexBuf.Release()
}

type scene struct {
	cache    *gpu.PipelineCache
	sceneBuf *wgpu.Buffer
	cube     *drawable
	// drawables holds the draw order: opaque first, translucent after, so
	// blending composites against resolved color.
	drawables []*drawable
	start     time.Time
}

func buildScene(dev *gpu.Device) (*scene, error) {
	cache := gpu.NewPipelineCache()

	sceneBuf, err := gpu.NewUniformBuffer(dev, "Scene Uniforms", sceneUniformBytes(mgl32.Ident4(), mgl32.Ident4()))
	if err != nil {
		return nil, err
	}

	stripes := cesium.NewStripeMaterial()
	stripes.Repeat = 8
	cubeVertices, cubeIndices := cubeMesh()
	cube, err := newDrawable(dev, cache, sceneBuf,
		cesium.NewPrimitive(cubeVertices, cubeIndices, cesium.NewMaterialAppearance(
			cesium.MaterialSupportTextured,
			cesium.WithMaterial(stripes),
			cesium.WithClosed(true),
			cesium.WithTranslucent(false),
		)),
		"Striped Cube")
	if err != nil {
		return nil, err
	}

	glass := cesium.NewColorMaterial(cesium.Blue.WithAlpha(0.45))
	quadVertices, quadIndices := quadMesh()
	quadPrim := cesium.NewPrimitive(quadVertices, quadIndices, cesium.NewMaterialAppearance(
		cesium.MaterialSupportBasic,
		cesium.WithMaterial(glass),
	))
	quadPrim.ModelMatrix = mgl32.Translate3D(0.4, 0, 1.3).Mul4(mgl32.Scale3D(0.8, 0.8, 1))
	quad, err := newDrawable(dev, cache, sceneBuf, quadPrim, "Glass Quad")
	if err != nil {
		return nil, err
	}

	return &scene{
		cache:     cache,
		sceneBuf:  sceneBuf,
		cube:      cube,
		drawables: []*drawable{cube, quad},
		start:     time.Now(),
	}, nil
}

func (s *scene) release() {
	for _, d := range s.drawables {
		d.release()
	}
	s.sceneBuf.Release()
	s.cache.Release()
}

func (s *scene) frame(dev *gpu.Device, win *glfw.Window) error {
	width, height := win.GetSize()
	if width == 0 || height == 0 {
		return nil
	}

	view := mgl32.LookAtV(mgl32.Vec3{2.2, 1.6, 3.4}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(45), float32(width)/float32(height), 0.1, 100)
	if err := dev.Queue().WriteBuffer(s.sceneBuf, 0, sceneUniformBytes(view, proj)); err != nil {
		return err
	}

	elapsed := float32(time.Since(s.start).Seconds())
	s.cube.prim.ModelMatrix = mgl32.HomogRotate3D(elapsed*0.8, mgl32.Vec3{0, 1, 0})
	if err := s.cube.writeModel(dev); err != nil {
		return err
	}

	nextTexture, err := dev.Surface().GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("acquire frame: %w", err)
	}
	frameView, err := nextTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create frame view: %w", err)
	}
	defer frameView.Release()

	encoder, err := dev.Handle().CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	defer encoder.Release()

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       frameView,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0},
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            dev.DepthView(),
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		},
	})
	defer renderPass.Release()

	for _, d := range s.drawables {
		if !d.prim.Show {
			continue
		}
		renderPass.SetPipeline(d.pipeline)
		renderPass.SetBindGroup(gpu.GroupScene, d.sceneGroup, nil)
		renderPass.SetBindGroup(gpu.GroupPrimitive, d.primitiveGroup, nil)
		if d.material != nil {
			renderPass.SetBindGroup(gpu.GroupMaterial, d.material.BindGroup, nil)
		}
		renderPass.SetVertexBuffer(0, d.vertexBuf, 0, wgpu.WholeSize)
		renderPass.SetIndexBuffer(d.indexBuf, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
		renderPass.DrawIndexed(d.indexCount, 1, 0, 0, 0)
	}

	if err := renderPass.End(); err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish encoder: %w", err)
	}
	defer cmdBuffer.Release()

	dev.Queue().Submit(cmdBuffer)
	dev.Surface().Present()
	return nil
}

func sceneUniformBytes(view, proj mgl32.Mat4) []byte {
	data := make([]float32, 0, 32)
	data = append(data, view[:]...)
	data = append(data, proj[:]...)
	return wgpu.ToBytes(data)
}

func matrixBytes(m mgl32.Mat4) []byte {
	return wgpu.ToBytes(m[:])
}

// cubeMesh returns a unit cube centered on the origin with per-face normals
// and texture coordinates, interleaved position, normal, st.
func cubeMesh() ([]float32, []uint16) {
	type face struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}
	h := float32(0.5)
	faces := []face{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}
	st := [4]mgl32.Vec2{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

	var vertices []float32
	var indices []uint16
	for _, f := range faces {
		base := uint16(len(vertices) / 8)
		for i, c := range f.corners {
			vertices = append(vertices,
				c.X(), c.Y(), c.Z(),
				f.normal.X(), f.normal.Y(), f.normal.Z(),
				st[i].X(), st[i].Y(),
			)
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}

// quadMesh returns a unit quad in the xy plane facing +z, interleaved
// position and normal.
func quadMesh() ([]float32, []uint16) {
	vertices := []float32{
		-1, -1, 0, 0, 0, 1,
		1, -1, 0, 0, 0, 1,
		1, 1, 0, 0, 0, 1,
		-1, 1, 0, 0, 0, 1,
	}
	indices := []uint16{0, 1, 2, 0, 2, 3}
	return vertices, indices
}
