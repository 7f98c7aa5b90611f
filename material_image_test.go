package cesium

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidRGBA(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestNewImageMaterial_OpaqueImage(t *testing.T) {
	m := NewImageMaterial(solidRGBA(4, 4, color.RGBA{200, 100, 50, 255}))

	assert.False(t, m.IsTranslucent())
	assert.Equal(t, mgl32.Vec2{1, 1}, m.Repeat)
	require.NotNil(t, m.TextureImage())
}

func TestNewImageMaterial_DetectsAlpha(t *testing.T) {
	img := solidRGBA(4, 4, color.RGBA{200, 100, 50, 255})
	img.SetRGBA(2, 3, color.RGBA{0, 0, 0, 128})

	m := NewImageMaterial(img)
	assert.True(t, m.IsTranslucent())
}

func TestImageMaterial_UniformIsRepeat(t *testing.T) {
	m := NewImageMaterial(solidRGBA(2, 2, color.RGBA{A: 255}))
	m.Repeat = mgl32.Vec2{3, 7}

	data := m.UniformData()
	require.Len(t, data, 16)
	assert.Equal(t, float32(3), f32At(t, data, 0))
	assert.Equal(t, float32(7), f32At(t, data, 4))
}

func TestLoadImageMaterial_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texture.png")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(file, solidRGBA(8, 8, color.RGBA{10, 20, 30, 255})))
	require.NoError(t, file.Close())

	m, err := LoadImageMaterial(path)
	require.NoError(t, err)
	assert.Equal(t, 8, m.Image.Bounds().Dx())
	assert.False(t, m.IsTranslucent())
}

func TestLoadImageMaterial_MissingFile(t *testing.T) {
	_, err := LoadImageMaterial(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}

func TestLoadImageMaterial_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := LoadImageMaterial(path)
	assert.Error(t, err)
}

func TestToRGBA_PassesThroughZeroOrigin(t *testing.T) {
	img := solidRGBA(4, 4, color.RGBA{1, 2, 3, 255})
	if toRGBA(img) != img {
		t.Error("Expected zero-origin RGBA input to pass through unchanged")
	}
}

func TestToRGBA_ConvertsOtherFormats(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	got := toRGBA(src)

	require.IsType(t, &image.RGBA{}, got)
	assert.Equal(t, image.Rect(0, 0, 3, 2), got.Bounds())
}

func TestToRGBA_ClampsOversizeImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, maxImageDim+100, 2))
	got := toRGBA(src)

	assert.Equal(t, maxImageDim, got.Bounds().Dx())
	assert.GreaterOrEqual(t, got.Bounds().Dy(), 1)
}
