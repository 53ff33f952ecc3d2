package preview

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ies-luminaire/internal/geometry"
)

func TestRenderDrawsSomething(t *testing.T) {
	layers := []Layer{{
		Color: color.NRGBA{R: 0xff, A: 0xff},
		Polylines: []geometry.Polyline{
			{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}, {-1, -1, 0}},
		},
	}}

	img := Render(layers, Options{Size: 64, Supersample: 2})
	require.NotNil(t, img)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())

	opaque := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			opaque++
		}
	}
	assert.Greater(t, opaque, 0, "render should produce visible pixels")
}

func TestRenderEmptyScene(t *testing.T) {
	img := Render(nil, Options{Size: 32})
	require.NotNil(t, img)
	assert.Equal(t, 32, img.Bounds().Dx())
	for i := 3; i < len(img.Pix); i += 4 {
		assert.Zero(t, img.Pix[i])
	}
}

func TestRenderDefaultSize(t *testing.T) {
	img := Render(nil, Options{})
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestDownsampleNonSquare(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i] = 0xff
		src.Pix[i+3] = 0xff
	}

	out := Downsample(src, 4, 2)
	assert.Equal(t, 4, out.Bounds().Dx())
	assert.Equal(t, 2, out.Bounds().Dy())
	// An opaque solid color survives the resample untouched.
	for i := 0; i < len(out.Pix); i += 4 {
		assert.Equal(t, uint8(0xff), out.Pix[i])
		assert.Equal(t, uint8(0), out.Pix[i+1])
		assert.Equal(t, uint8(0xff), out.Pix[i+3])
	}
}

func TestDownsampleNoUpscale(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	assert.Same(t, src, Downsample(src, 8, 8))
}
