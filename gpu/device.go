// Package gpu lowers appearance render states and vertex formats onto wgpu
// and builds the render pipelines that draw primitives.
package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/ududsha/cesium"
)

// DepthFormat is the depth buffer format every pipeline in this package
// renders against.
const DepthFormat = wgpu.TextureFormatDepth24Plus

// Options configures device creation.
type Options struct {
	Logger cesium.Logger
}

// Device owns the wgpu device, queue and the surface of one window, plus the
// depth buffer sized to it.
type Device struct {
	surface       *wgpu.Surface
	adapter       *wgpu.Adapter
	device        *wgpu.Device
	queue         *wgpu.Queue
	surfaceConfig *wgpu.SurfaceConfiguration
	depthTexture  *wgpu.Texture
	depthView     *wgpu.TextureView
	log           cesium.Logger
}

// NewDevice wraps the window in a wgpu surface and brings up adapter, device
// and queue against it.
func NewDevice(win *glfw.Window, opts Options) (*Device, error) {
	logger := opts.Logger
	if logger == nil {
		logger = cesium.NewNopLogger()
	}

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(win))

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("request adapter: %w", err)
	}

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:            "Appearance Device",
		RequiredFeatures: nil,
		RequiredLimits:   nil,
	})
	if err != nil {
		return nil, fmt.Errorf("request device: %w", err)
	}
	queue := device.GetQueue()

	width, height := win.GetSize()
	caps := surface.GetCapabilities(adapter)
	surfaceConfig := wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo, // vsync
		AlphaMode:   caps.AlphaModes[0],
	}
	surface.Configure(adapter, device, &surfaceConfig)

	d := &Device{
		surface:       surface,
		adapter:       adapter,
		device:        device,
		queue:         queue,
		surfaceConfig: &surfaceConfig,
		log:           logger,
	}
	if err := d.createDepthTexture(); err != nil {
		d.Release()
		return nil, err
	}

	logger.Infof("gpu: device ready, surface %dx%d format %d", width, height, surfaceConfig.Format)
	return d, nil
}

// Resize reconfigures the surface and rebuilds the depth buffer. Zero sizes
// (minimized window) are ignored.
func (d *Device) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	d.surfaceConfig.Width = uint32(width)
	d.surfaceConfig.Height = uint32(height)
	d.surface.Configure(d.adapter, d.device, d.surfaceConfig)
	d.releaseDepthTexture()
	return d.createDepthTexture()
}

func (d *Device) createDepthTexture() error {
	texture, err := d.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              d.surfaceConfig.Width,
			Height:             d.surfaceConfig.Height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        DepthFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("create depth texture: %w", err)
	}
	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return fmt.Errorf("create depth view: %w", err)
	}
	d.depthTexture = texture
	d.depthView = view
	return nil
}

func (d *Device) releaseDepthTexture() {
	if d.depthView != nil {
		d.depthView.Release()
		d.depthView = nil
	}
	if d.depthTexture != nil {
		d.depthTexture.Release()
		d.depthTexture = nil
	}
}

func (d *Device) Handle() *wgpu.Device              { return d.device }
func (d *Device) Queue() *wgpu.Queue                { return d.queue }
func (d *Device) Surface() *wgpu.Surface            { return d.surface }
func (d *Device) SurfaceFormat() wgpu.TextureFormat { return d.surfaceConfig.Format }
func (d *Device) DepthView() *wgpu.TextureView      { return d.depthView }
func (d *Device) Logger() cesium.Logger             { return d.log }

func (d *Device) Release() {
	d.releaseDepthTexture()
	if d.device != nil {
		d.device.Release()
		d.device = nil
	}
	if d.adapter != nil {
		d.adapter.Release()
		d.adapter = nil
	}
	if d.surface != nil {
		d.surface.Release()
		d.surface = nil
	}
}
