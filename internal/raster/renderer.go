package raster

import (
	"errors"
	"image"

	"hypercube-ar/internal/frame"
	"hypercube-ar/internal/hypercube"
	"hypercube-ar/internal/mathutil"
)

// ErrNoMesh is returned when Render is called without geometry.
var ErrNoMesh = errors.New("raster: nil mesh")

// minClipW rejects vertices at or behind the camera plane.
const minClipW = 1e-6

// Renderer executes the hypercube vertex contract on the CPU.
type Renderer struct {
	Width  int
	Height int
	// Clear is used when no background image is supplied.
	Clear [4]uint8
}

// Vertex runs the vertex stage for one 4D vertex:
//
//	p5   = P4 * MV4 * (x, y, z, w, 1)
//	p3   = p5.xyz / -p5.w
//	clip = mvp3 * (p3, 1)
//
// ok is false when the vertex fails the 4D reduction or lies outside the
// 3D clip depth range.
func (r *Renderer) Vertex(v hypercube.Vertex4D, pv4 mathutil.Mat5, mvp3 mathutil.Mat4) (ScreenVertex, bool) {
	p3, ok := mathutil.Project4To3(pv4.MulVec5(v.Position.Homogeneous()))
	if !ok {
		return ScreenVertex{}, false
	}
	clip := mvp3.MulVec4([4]float32{p3[0], p3[1], p3[2], 1})
	w := float64(clip[3])
	if w <= minClipW {
		return ScreenVertex{}, false
	}
	nx := float64(clip[0]) / w
	ny := float64(clip[1]) / w
	nz := float64(clip[2]) / w
	if nz < -1 || nz > 1 {
		return ScreenVertex{}, false
	}
	return ScreenVertex{
		X: (nx + 1) * 0.5 * float64(r.Width),
		Y: (1 - ny) * 0.5 * float64(r.Height),
		Z: nz,
		Color: [4]float64{
			float64(v.Color[0]), float64(v.Color[1]),
			float64(v.Color[2]), float64(v.Color[3]),
		},
	}, true
}

// Render draws every instance in u over the background (aspect-filled) and
// returns the frame. bg may be nil.
func (r *Renderer) Render(mesh *hypercube.Mesh, u *frame.Uniforms, bg *image.NRGBA) (*image.NRGBA, error) {
	if mesh == nil {
		return nil, ErrNoMesh
	}
	fb := NewFrameBuffer(r.Width, r.Height)
	if bg != nil {
		DrawBackground(fb, bg)
	} else {
		fb.Fill(r.Clear[0], r.Clear[1], r.Clear[2], r.Clear[3])
	}

	verts := meshVertices(mesh)
	p4 := mathutil.Mat5(u.Shared.Projection4D)
	pv3 := mathutil.Mat4Mul(u.Shared.Projection, u.Shared.View)

	screen := make([]ScreenVertex, len(verts))
	valid := make([]bool, len(verts))
	for _, inst := range u.Instances {
		pv4 := mathutil.Mat5Mul(p4, mathutil.Mat5(inst.ModelView4D))
		mvp3 := mathutil.Mat4Mul(pv3, inst.Model)
		for i, v := range verts {
			screen[i], valid[i] = r.Vertex(v, pv4, mvp3)
		}
		for t := 0; t+2 < len(verts); t += 3 {
			if !valid[t] || !valid[t+1] || !valid[t+2] {
				continue
			}
			RasterizeTriangle(fb, &screen[t], &screen[t+1], &screen[t+2])
		}
	}
	return fb.Image(), nil
}

// meshVertices reads vertices back from the device buffer when the mesh was
// allocated here, which checks the interleaved layout end to end.
func meshVertices(mesh *hypercube.Mesh) []hypercube.Vertex4D {
	vb, ok := mesh.Buffer().(*VertexBuffer)
	if !ok || vb.VertexCount() != mesh.VertexCount() {
		return mesh.Vertices()
	}
	return hypercube.Unflatten(vb.data)
}
