package mathutil

import "github.com/chewxy/math32"

// Vec4 is a point or direction in 4-space (x, y, z, w).
type Vec4 [4]float32

func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

func (a Vec4) Dot(b Vec4) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

func (v Vec4) Len() float32 {
	return math32.Sqrt(v.Dot(v))
}

// XYZ drops the fourth component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Homogeneous lifts a 4D point to homogeneous coordinates (h = 1).
func (v Vec4) Homogeneous() Vec5 {
	return Vec5{v[0], v[1], v[2], v[3], 1}
}

// Vec5 is a 4D point in homogeneous coordinates (x, y, z, w, h).
type Vec5 [5]float32

// Point returns the 4D point, dividing by h when it is not 1.
func (v Vec5) Point() Vec4 {
	if v[4] == 1 || v[4] == 0 {
		return Vec4{v[0], v[1], v[2], v[3]}
	}
	inv := 1 / v[4]
	return Vec4{v[0] * inv, v[1] * inv, v[2] * inv, v[3] * inv}
}

// MinEyeDistance4D is the closest a point may be to the 4D eye (along -w)
// and still be reduced to 3D.
const MinEyeDistance4D = 1e-4

// Project4To3 performs the 4D→3D perspective divide. The 4D eye sits at the
// origin looking down -w, so the divisor is the distance -w in front of it.
// ok is false for points at or behind the eye.
func Project4To3(p Vec5) (v Vec3, ok bool) {
	q := p.Point()
	d := -q[3]
	if d < MinEyeDistance4D {
		return Vec3{}, false
	}
	inv := 1 / d
	return Vec3{q[0] * inv, q[1] * inv, q[2] * inv}, true
}
