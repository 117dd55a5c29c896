package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownsampleSize(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 48))
	out := Downsample(img, 32, 24)
	assert.Equal(t, image.Rect(0, 0, 32, 24), out.Bounds())
}

func TestDownsampleNoop(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	assert.Same(t, img, Downsample(img, 16, 16))
	assert.Same(t, img, Downsample(img, 32, 32))
}

func TestDownsampleNoDarkHalo(t *testing.T) {
	// Opaque red next to fully transparent black: the blended edge keeps
	// its hue instead of darkening.
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
		}
	}
	out := Downsample(img, 2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			c := out.NRGBAAt(x, y)
			if c.A > 16 {
				assert.Greater(t, c.R, uint8(200), "pixel %d,%d", x, y)
			}
		}
	}
	assert.Greater(t, out.NRGBAAt(0, 0).A, uint8(200))
}
