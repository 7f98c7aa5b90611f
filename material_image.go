package cesium

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ududsha/cesium/shaders"
)

// maxImageDim caps texture dimensions to the default wgpu device limit.
// Larger images are resampled down on load.
const maxImageDim = 4096

// ImageMaterial samples a texture, tiled Repeat.X by Repeat.Y times across
// the texture coordinates. Translucent is set from the image's alpha channel
// on construction and may be overridden.
type ImageMaterial struct {
	id          MaterialId
	Image       *image.RGBA
	Repeat      mgl32.Vec2
	Translucent bool
}

func NewImageMaterial(img *image.RGBA) *ImageMaterial {
	return &ImageMaterial{
		id:          makeMaterialId(),
		Image:       img,
		Repeat:      mgl32.Vec2{1, 1},
		Translucent: hasTranslucentPixel(img),
	}
}

// LoadImageMaterial reads an image file (png, jpeg, bmp, tiff or webp) and
// wraps it in an ImageMaterial.
func LoadImageMaterial(path string) (*ImageMaterial, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	return NewImageMaterial(toRGBA(img)), nil
}

func (m *ImageMaterial) Id() MaterialId       { return m.id }
func (m *ImageMaterial) ShaderSource() string { return shaders.ImageMaterialWGSL }
func (m *ImageMaterial) IsTranslucent() bool  { return m.Translucent }

func (m *ImageMaterial) TextureImage() *image.RGBA { return m.Image }

func (m *ImageMaterial) UniformData() []byte {
	buf := make([]byte, 16)
	putVec2(buf, 0, m.Repeat)
	return buf
}

// toRGBA converts a decoded image to a zero-origin RGBA, resampling down
// when either side exceeds maxImageDim.
func toRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxImageDim || h > maxImageDim {
		scale := float64(maxImageDim) / float64(max(w, h))
		w = max(int(float64(w)*scale), 1)
		h = max(int(float64(h)*scale), 1)
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
		return dst
	}

	if rgba, ok := img.(*image.RGBA); ok && bounds.Min == (image.Point{}) {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), img, bounds.Min, xdraw.Src)
	return dst
}

func hasTranslucentPixel(img *image.RGBA) bool {
	if img == nil {
		return false
	}
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] < 0xff {
			return true
		}
	}
	return false
}
