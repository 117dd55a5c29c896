package background

import (
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func writeImage(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		require.NoError(t, png.Encode(f, img))
	case ".tga":
		require.NoError(t, tga.Encode(f, img))
	case ".webp":
		require.NoError(t, nativewebp.Encode(f, img, nil))
	case ".jpg":
		require.NoError(t, jpeg.Encode(f, img, &jpeg.Options{Quality: 100}))
	case ".gif":
		// Single-color palette so the frame survives without dithering.
		pal := image.NewPaletted(img.Bounds(), color.Palette{img.At(0, 0)})
		require.NoError(t, gif.Encode(f, pal, nil))
	case ".bmp":
		require.NoError(t, bmp.Encode(f, img))
	default:
		t.Fatalf("no encoder for %s", path)
	}
}

func TestOpenDirectorySortedAndWraps(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "b.tga"), solid(4, 2, color.NRGBA{0, 255, 0, 255}))
	writeImage(t, filepath.Join(dir, "A.png"), solid(4, 2, color.NRGBA{255, 0, 0, 255}))
	writeImage(t, filepath.Join(dir, "c.webp"), solid(4, 2, color.NRGBA{0, 0, 255, 255}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	src, err := Open(dir)
	require.NoError(t, err)
	require.Equal(t, 3, src.Len())
	assert.Equal(t, "A.png", filepath.Base(src.Path(0)))
	assert.Equal(t, "b.tga", filepath.Base(src.Path(1)))
	assert.Equal(t, "c.webp", filepath.Base(src.Path(2)))
	assert.Equal(t, src.Path(0), src.Path(3))
	assert.Equal(t, src.Path(2), src.Path(-1))

	want := []color.NRGBA{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}}
	for i, c := range want {
		img, err := src.Frame(i)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())
		assert.Equal(t, c, img.NRGBAAt(1, 1), "frame %d", i)
	}
}

func TestOpenSingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cam.png")
	writeImage(t, path, solid(2, 2, color.NRGBA{1, 2, 3, 255}))
	src, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1, src.Len())
	assert.Equal(t, path, src.Path(41))
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(dir)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Open(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	txt := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(txt, nil, 0o644))
	_, err = Open(txt)
	assert.Error(t, err)
}

func TestFrameCachesDecodeErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))
	src, err := Open(path)
	require.NoError(t, err)
	_, err = src.Frame(0)
	assert.Error(t, err)
	_, err2 := src.Frame(0)
	assert.Equal(t, err, err2)
}

func TestFrameConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cam.png")
	writeImage(t, path, solid(8, 8, color.NRGBA{9, 9, 9, 255}))
	src, err := Open(path)
	require.NoError(t, err)

	imgs := make([]*image.NRGBA, 16)
	var wg sync.WaitGroup
	for i := range imgs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			imgs[i], _ = src.Frame(i)
		}(i)
	}
	wg.Wait()
	for _, img := range imgs {
		assert.Same(t, imgs[0], img)
	}
}

func TestToNRGBAOffsetOrigin(t *testing.T) {
	gray := image.NewGray(image.Rect(2, 3, 5, 5))
	gray.SetGray(2, 3, color.Gray{Y: 77})
	out := toNRGBA(gray)
	assert.Equal(t, image.Rect(0, 0, 3, 2), out.Bounds())
	assert.Equal(t, color.NRGBA{77, 77, 77, 255}, out.NRGBAAt(0, 0))
}

func TestLoadImageEachFormat(t *testing.T) {
	dir := t.TempDir()
	want := color.NRGBA{200, 40, 40, 255}
	for _, ext := range []string{".png", ".jpg", ".gif", ".bmp", ".webp", ".tga"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, "cam"+ext)
			writeImage(t, path, solid(4, 4, want))
			img, err := LoadImage(path)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
			got := img.NRGBAAt(2, 2)
			assert.InDelta(t, want.R, got.R, 8)
			assert.InDelta(t, want.G, got.G, 8)
			assert.InDelta(t, want.B, got.B, 8)
			assert.Equal(t, uint8(255), got.A)
		})
	}
}

func TestLoadImageUppercaseExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CAM.PNG")
	writeImage(t, path, solid(2, 2, color.NRGBA{5, 6, 7, 255}))
	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{5, 6, 7, 255}, img.NRGBAAt(0, 0))
}
