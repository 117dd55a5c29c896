package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hypercube-ar/internal/frame"
	"hypercube-ar/internal/hypercube"
	"hypercube-ar/internal/mathutil"
	"hypercube-ar/internal/tracking"
)

func uniformsFor(w, h int) frame.Uniforms {
	u := frame.NewUpdater(frame.DefaultSettings(), nil)
	u.Resize(w, h)
	anchor := tracking.AnchorAt(1, mathutil.Vec3{}, 0, 0, 0)
	return u.Update(tracking.DefaultOrbit().Pose(0, w, h), []tracking.Anchor{anchor})
}

func TestDeviceBudget(t *testing.T) {
	dev := NewDevice(1024)
	_, err := hypercube.Build(hypercube.Options{}, dev)
	require.Error(t, err)
	assert.True(t, errors.Is(err, hypercube.ErrAllocation))
	assert.True(t, errors.Is(err, ErrOutOfMemory))
	assert.Equal(t, 0, dev.Used())

	dev = NewDevice(0)
	mesh, err := hypercube.Build(hypercube.Options{}, dev)
	require.NoError(t, err)
	assert.Equal(t, 144*hypercube.VertexStride, dev.Used())
	vb, ok := mesh.Buffer().(*VertexBuffer)
	require.True(t, ok)
	assert.Equal(t, "HypercubeVertexBuffer", vb.Label())
	assert.Equal(t, mesh.VertexCount(), vb.VertexCount())
	assert.Equal(t, mesh.Vertex(17), vb.Vertex(17))
}

func TestRasterizeDepthTest(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	red := [4]float64{1, 0, 0, 1}
	green := [4]float64{0, 1, 0, 1}
	draw := func(z float64, c [4]float64) {
		RasterizeTriangle(fb,
			&ScreenVertex{X: -2, Y: -2, Z: z, Color: c},
			&ScreenVertex{X: 20, Y: -2, Z: z, Color: c},
			&ScreenVertex{X: -2, Y: 20, Z: z, Color: c})
	}

	draw(0.5, red)
	draw(0.2, green)
	draw(0.8, red)

	i := (2*8 + 2) * 4
	assert.Equal(t, []uint8{0, 255, 0, 255}, fb.Color[i:i+4])
	assert.InDelta(t, 0.2, fb.ZBuf[2*8+2], 1e-9)
}

func TestRasterizeInterpolatesColor(t *testing.T) {
	fb := NewFrameBuffer(64, 1)
	a := &ScreenVertex{X: 0, Y: -1, Color: [4]float64{1, 0, 0, 1}}
	b := &ScreenVertex{X: 64, Y: -1, Color: [4]float64{0, 1, 0, 1}}
	c := &ScreenVertex{X: 64, Y: 3, Color: [4]float64{0, 1, 0, 1}}
	d := &ScreenVertex{X: 0, Y: 3, Color: [4]float64{1, 0, 0, 1}}
	RasterizeTriangle(fb, a, b, c)
	RasterizeTriangle(fb, a, c, d)

	left := fb.Color[0:4]
	right := fb.Color[63*4 : 63*4+4]
	assert.Greater(t, left[0], left[1])
	assert.Greater(t, right[1], right[0])
}

func TestVertexRejectsBehindEye(t *testing.T) {
	r := &Renderer{Width: 4, Height: 4}
	v := hypercube.Vertex4D{Position: mathutil.Vec4{0, 0, 0, 1}, Color: hypercube.Red}
	_, ok := r.Vertex(v, mathutil.Mat5Identity(), mathutil.Mat4Identity())
	assert.False(t, ok)

	v.Position = mathutil.Vec4{0, 0, 0, -2}
	sv, ok := r.Vertex(v, mathutil.Mat5Identity(), mathutil.Mat4Identity())
	require.True(t, ok)
	assert.InDelta(t, 2, sv.X, 1e-9)
	assert.InDelta(t, 2, sv.Y, 1e-9)
}

func countDominant(img *image.NRGBA) (red, green int) {
	for i := 0; i < len(img.Pix); i += 4 {
		r, g := int(img.Pix[i]), int(img.Pix[i+1])
		switch {
		case r > 200 && g < 40:
			red++
		case g > 200 && r < 40:
			green++
		}
	}
	return red, green
}

func TestRenderWireframePaintsBothCubes(t *testing.T) {
	const w, h = 256, 256
	mesh, err := hypercube.Build(hypercube.Options{Wireframe: true}, NewDevice(0))
	require.NoError(t, err)

	u := uniformsFor(w, h)
	r := &Renderer{Width: w, Height: h, Clear: [4]uint8{0, 0, 0, 255}}
	img, err := r.Render(mesh, &u, nil)
	require.NoError(t, err)

	red, green := countDominant(img)
	assert.Positive(t, red, "inner cube edges")
	assert.Positive(t, green, "outer cube edges")
	// Corners are far outside the cube.
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, img.NRGBAAt(0, 0))
}

func TestRenderNoInstancesShowsBackground(t *testing.T) {
	mesh, err := hypercube.Build(hypercube.Options{}, NewDevice(0))
	require.NoError(t, err)

	bg := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	for i := 0; i < len(bg.Pix); i += 4 {
		copy(bg.Pix[i:], []uint8{10, 20, 200, 255})
	}
	u := uniformsFor(32, 32)
	u.Instances = nil
	r := &Renderer{Width: 32, Height: 32}
	img, err := r.Render(mesh, &u, bg)
	require.NoError(t, err)
	for _, p := range []image.Point{{0, 0}, {16, 16}, {31, 31}} {
		assert.Equal(t, color.NRGBA{10, 20, 200, 255}, img.NRGBAAt(p.X, p.Y))
	}
}

func TestRenderSolidCoversCenter(t *testing.T) {
	const w, h = 64, 64
	mesh, err := hypercube.Build(hypercube.Options{}, NewDevice(0))
	require.NoError(t, err)
	u := uniformsFor(w, h)
	r := &Renderer{Width: w, Height: h}
	img, err := r.Render(mesh, &u, nil)
	require.NoError(t, err)
	c := img.NRGBAAt(w/2, h/2)
	assert.Equal(t, uint8(255), c.A)
	assert.Zero(t, c.B)
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(0, 0))
}

func TestRenderNilMesh(t *testing.T) {
	r := &Renderer{Width: 4, Height: 4}
	_, err := r.Render(nil, &frame.Uniforms{}, nil)
	assert.ErrorIs(t, err, ErrNoMesh)
}

func TestDrawBackgroundAspectFill(t *testing.T) {
	// Left half black, right half white; a square viewport crops the sides.
	bg := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	copy(bg.Pix, []uint8{
		0, 0, 0, 255, 0, 0, 0, 255,
		255, 255, 255, 255, 255, 255, 255, 255,
	})
	fb := NewFrameBuffer(8, 8)
	DrawBackground(fb, bg)
	assert.Less(t, fb.Color[0], uint8(128))
	last := (8*8 - 1) * 4
	assert.Greater(t, fb.Color[last], uint8(128))
}
