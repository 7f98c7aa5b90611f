package gpu

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"

	"github.com/ududsha/cesium"
)

const testSurfaceFormat = wgpu.TextureFormatBGRA8Unorm

func TestPipelineKey_Deterministic(t *testing.T) {
	app := cesium.NewMaterialAppearance(cesium.MaterialSupportTextured)
	cfg := PipelineConfig{Label: "test"}

	k1 := PipelineKey(app, cfg, testSurfaceFormat)
	k2 := PipelineKey(app, cfg, testSurfaceFormat)
	if k1 != k2 {
		t.Errorf("Expected stable key, got %d then %d", k1, k2)
	}
}

func TestPipelineKey_SharedAcrossEqualAppearances(t *testing.T) {
	// Same material instance, same flags: the pipelines are interchangeable.
	material := cesium.NewStripeMaterial()
	a1 := cesium.NewMaterialAppearance(cesium.MaterialSupportAll, cesium.WithMaterial(material), cesium.WithClosed(true))
	a2 := cesium.NewMaterialAppearance(cesium.MaterialSupportAll, cesium.WithMaterial(material), cesium.WithClosed(true))

	cfg := PipelineConfig{}
	assert.Equal(t, PipelineKey(a1, cfg, testSurfaceFormat), PipelineKey(a2, cfg, testSurfaceFormat))
}

func TestPipelineKey_NoMaterialVariantsShare(t *testing.T) {
	a1 := cesium.NewPerInstanceColorAppearance()
	a2 := cesium.NewPerInstanceColorAppearance()

	cfg := PipelineConfig{}
	assert.Equal(t, PipelineKey(a1, cfg, testSurfaceFormat), PipelineKey(a2, cfg, testSurfaceFormat))
}

func TestPipelineKey_DiffersByMaterialInstance(t *testing.T) {
	a1 := cesium.NewMaterialAppearance(cesium.MaterialSupportBasic, cesium.WithMaterial(cesium.NewColorMaterial(cesium.Red)))
	a2 := cesium.NewMaterialAppearance(cesium.MaterialSupportBasic, cesium.WithMaterial(cesium.NewColorMaterial(cesium.Red)))

	cfg := PipelineConfig{}
	assert.NotEqual(t, PipelineKey(a1, cfg, testSurfaceFormat), PipelineKey(a2, cfg, testSurfaceFormat))
}

func TestPipelineKey_DiffersByFlags(t *testing.T) {
	material := cesium.NewColorMaterial(cesium.Green)
	plain := cesium.NewMaterialAppearance(cesium.MaterialSupportTextured, cesium.WithMaterial(material))
	flat := cesium.NewMaterialAppearance(cesium.MaterialSupportTextured, cesium.WithMaterial(material), cesium.WithFlat(true))

	cfg := PipelineConfig{}
	assert.NotEqual(t, PipelineKey(plain, cfg, testSurfaceFormat), PipelineKey(flat, cfg, testSurfaceFormat))
}

func TestPipelineKey_DiffersByTopology(t *testing.T) {
	app := cesium.NewPolylineColorAppearance()

	k1 := PipelineKey(app, PipelineConfig{Lines: true}, testSurfaceFormat)
	k2 := PipelineKey(app, PipelineConfig{}, testSurfaceFormat)
	if k1 == k2 {
		t.Error("Expected topology to change the key")
	}
}

func TestPipelineKey_DiffersBySurfaceFormat(t *testing.T) {
	app := cesium.NewPerInstanceColorAppearance()

	cfg := PipelineConfig{}
	k1 := PipelineKey(app, cfg, wgpu.TextureFormatBGRA8Unorm)
	k2 := PipelineKey(app, cfg, wgpu.TextureFormatRGBA8Unorm)
	if k1 == k2 {
		t.Error("Expected surface format to change the key")
	}
}

func TestPipelineKey_TracksMaterialTranslucency(t *testing.T) {
	// Mutating a material's color across the opaque boundary changes the
	// derived blend state, so the key must move with it.
	material := cesium.NewColorMaterial(cesium.Blue)
	app := cesium.NewMaterialAppearance(cesium.MaterialSupportBasic, cesium.WithMaterial(material))

	cfg := PipelineConfig{}
	opaque := PipelineKey(app, cfg, testSurfaceFormat)

	material.Color = cesium.Blue.WithAlpha(0.5)
	translucent := PipelineKey(app, cfg, testSurfaceFormat)

	assert.NotEqual(t, opaque, translucent)
}

func TestPipelineKey_LabelDoesNotAffectKey(t *testing.T) {
	app := cesium.NewPerInstanceColorAppearance()

	k1 := PipelineKey(app, PipelineConfig{Label: "a"}, testSurfaceFormat)
	k2 := PipelineKey(app, PipelineConfig{Label: "b"}, testSurfaceFormat)
	assert.Equal(t, k1, k2)
}

func TestPipelineCache_StartsEmpty(t *testing.T) {
	cache := NewPipelineCache()
	if cache.Len() != 0 {
		t.Errorf("Expected empty cache, got %d entries", cache.Len())
	}
	hits, misses := cache.Stats()
	if hits != 0 || misses != 0 {
		t.Errorf("Expected zero stats, got hits=%d misses=%d", hits, misses)
	}
}
