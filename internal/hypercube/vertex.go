package hypercube

import (
	"encoding/binary"
	"math"

	"hypercube-ar/internal/mathutil"
)

// Vertex layout in the static vertex buffer: position xyzw, then color rgba.
const (
	FloatsPerVertex = 8
	VertexStride    = FloatsPerVertex * 4
)

// Color is a linear RGBA color with components in [0, 1].
type Color [4]float32

var (
	Red   = Color{1, 0, 0, 1}
	Green = Color{0, 1, 0, 1}
)

// Vertex4D is a colored point in 4-space.
type Vertex4D struct {
	Position mathutil.Vec4
	Color    Color
}

// Floats returns the vertex in buffer layout.
func (v Vertex4D) Floats() [FloatsPerVertex]float32 {
	p, c := v.Position, v.Color
	return [FloatsPerVertex]float32{p[0], p[1], p[2], p[3], c[0], c[1], c[2], c[3]}
}

// Flatten packs vertices into the interleaved float layout.
func Flatten(verts []Vertex4D) []float32 {
	out := make([]float32, 0, len(verts)*FloatsPerVertex)
	for _, v := range verts {
		f := v.Floats()
		out = append(out, f[:]...)
	}
	return out
}

// Unflatten is the inverse of Flatten. Trailing floats that do not fill a
// whole vertex are ignored.
func Unflatten(data []float32) []Vertex4D {
	n := len(data) / FloatsPerVertex
	out := make([]Vertex4D, n)
	for i := range out {
		f := data[i*FloatsPerVertex:]
		out[i] = Vertex4D{
			Position: mathutil.Vec4{f[0], f[1], f[2], f[3]},
			Color:    Color{f[4], f[5], f[6], f[7]},
		}
	}
	return out
}

// EncodeFloats writes float32 values little endian, the byte order of the
// GPU upload.
func EncodeFloats(data []float32) []byte {
	out := make([]byte, len(data)*4)
	for i, f := range data {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(f))
	}
	return out
}
