package mathutil

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Mat5 is a 5×5 matrix stored row-major, acting on homogeneous 4D column
// vectors (x, y, z, w, 1). Row and column 4 carry translation and the
// homogeneous coordinate, the way a 4×4 matrix does for 3D.
type Mat5 [25]float32

// Mat5Size is the number of floats in a serialized Mat5.
const Mat5Size = 25

func Mat5Identity() Mat5 {
	return Mat5{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
		0, 0, 0, 0, 1,
	}
}

// Mat5FromSlice copies a row-major 25-element slice into a Mat5. Any other
// length is a programming error and panics.
func Mat5FromSlice(data []float32) Mat5 {
	if len(data) != Mat5Size {
		panic(fmt.Sprintf("mathutil: Mat5 needs %d elements, got %d", Mat5Size, len(data)))
	}
	return Mat5(data)
}

// Floats returns the fixed-size row-major form uploaded to GPU constant buffers.
func (m Mat5) Floats() [Mat5Size]float32 {
	return [Mat5Size]float32(m)
}

// At returns the element at row r, column c.
func (m Mat5) At(r, c int) float32 {
	return m[r*5+c]
}

// Mat5Mul returns a × b.
func Mat5Mul(a, b Mat5) Mat5 {
	var m Mat5
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			var sum float32
			for k := 0; k < 5; k++ {
				sum += a[i*5+k] * b[k*5+j]
			}
			m[i*5+j] = sum
		}
	}
	return m
}

// MulVec5 returns M × v.
func (m Mat5) MulVec5(v Vec5) Vec5 {
	var out Vec5
	for r := 0; r < 5; r++ {
		out[r] = m[r*5+0]*v[0] + m[r*5+1]*v[1] + m[r*5+2]*v[2] + m[r*5+3]*v[3] + m[r*5+4]*v[4]
	}
	return out
}

// Transform applies M to a 4D point with homogeneous coordinate 1.
func (m Mat5) Transform(p Vec4) Vec4 {
	return m.MulVec5(p.Homogeneous()).Point()
}

func (m Mat5) Transpose() Mat5 {
	var t Mat5
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			t[c*5+r] = m[r*5+c]
		}
	}
	return t
}

// ApproxEqual reports whether every element of a and b differs by at most tol.
func (m Mat5) ApproxEqual(o Mat5, tol float32) bool {
	for i := range m {
		if math32.Abs(m[i]-o[i]) > tol {
			return false
		}
	}
	return true
}

// Rotation5 rotates by angle radians within plane, leaving the orthogonal
// plane and the homogeneous coordinate fixed. The identity selector (or any
// value outside the enumeration) yields the identity matrix.
func Rotation5(angle float32, plane Plane4D) Mat5 {
	m := Mat5Identity()
	a, b, ok := plane.Axes()
	if !ok {
		return m
	}
	c, s := math32.Cos(angle), math32.Sin(angle)
	m[a*5+a], m[a*5+b] = c, s
	m[b*5+a], m[b*5+b] = -s, c
	return m
}

// Translation5 moves points by (tx, ty, tz, tw).
func Translation5(tx, ty, tz, tw float32) Mat5 {
	return Mat5{
		1, 0, 0, 0, tx,
		0, 1, 0, 0, ty,
		0, 0, 1, 0, tz,
		0, 0, 0, 1, tw,
		0, 0, 0, 0, 1,
	}
}

// Perspective4D scales x, y and z by 1/tan(fovY/2). The w row is left as
// identity so w survives as the depth used by the 4D→3D divide.
func Perspective4D(fovY float32) Mat5 {
	s := 1 / math32.Tan(fovY*0.5)
	return Mat5{
		s, 0, 0, 0, 0,
		0, s, 0, 0, 0,
		0, 0, s, 0, 0,
		0, 0, 0, 1, 0,
		0, 0, 0, 0, 1,
	}
}
