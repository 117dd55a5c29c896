package hypercube

import (
	"github.com/chewxy/math32"

	"hypercube-ar/internal/mathutil"
)

// DefaultThickness is the tube edge length used for wireframe edges.
const DefaultThickness = 0.1

// TubeTriangles is the number of triangles emitted per wireframe edge.
const TubeTriangles = 13

// Tube corner layout. A–D surround the first endpoint, E–H the second, in
// the same winding around the cross-section.
//
//	  D-------C
//	 /|      /|
//	A-------B |
//	| H-----|-G
//	|/      |/
//	E-------F
const (
	ta = iota
	tb
	tc
	td
	te
	tf
	tg
	th
)

var tubeTriangles = [TubeTriangles][3]int{
	// sides
	{ta, tb, tf}, {ta, tf, te},
	{tb, tc, tg}, {tb, tg, tf},
	{tc, td, th}, {tc, th, tg},
	{td, ta, te}, {td, te, th},
	// caps
	{ta, tc, tb}, {ta, td, tc},
	{te, tf, tg}, {te, tg, th},
	// diagonal web, keeps the tube visible when its cross-section is seen edge-on
	{ta, tc, tg},
}

// signOf returns -1 for negative values and +1 otherwise. Zero coordinates
// are offset as if positive so corners never collapse onto the edge.
func signOf(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}

// crossSection picks the two x/y/z axes orthogonal to the edge direction.
// Edges that only move along w use the x/y plane.
func crossSection(d mathutil.Vec4) (u, v int) {
	k := -1
	var best float32
	for i := 0; i < 3; i++ {
		if a := math32.Abs(d[i]); a > best+1e-6 {
			best, k = a, i
		}
	}
	switch k {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// tubeCorners offsets p by half the thickness along the signed u and v axes.
// The w coordinate is never touched.
func tubeCorners(p Vertex4D, u, v int, half float32) [4]Vertex4D {
	su := signOf(p.Position[u]) * half
	sv := signOf(p.Position[v]) * half
	offsets := [4][2]float32{{-su, -sv}, {su, -sv}, {su, sv}, {-su, sv}}

	var out [4]Vertex4D
	for i, o := range offsets {
		pos := p.Position
		pos[u] += o[0]
		pos[v] += o[1]
		out[i] = Vertex4D{Position: pos, Color: p.Color}
	}
	return out
}

// Tube inflates the edge from a to b into a box-shaped tube of 13 triangles.
func Tube(a, b Vertex4D, thickness float32) []Vertex4D {
	half := thickness * 0.5
	u, v := crossSection(b.Position.Sub(a.Position))

	var corners [8]Vertex4D
	lhs := tubeCorners(a, u, v, half)
	rhs := tubeCorners(b, u, v, half)
	copy(corners[:4], lhs[:])
	copy(corners[4:], rhs[:])

	out := make([]Vertex4D, 0, TubeTriangles*3)
	for _, tri := range tubeTriangles {
		out = append(out, corners[tri[0]], corners[tri[1]], corners[tri[2]])
	}
	return out
}
