package hypercube

import "hypercube-ar/internal/mathutil"

// Named corners of the tesseract. A–H form the outer cube (w = -1),
// I–P the inner cube (w = +1); corner X+8 is the w-partner of corner X.
//
//	L_______________K
//	|\ .            |\ .
//	| \   .         | \   .
//	|  \     .      |  \     .
//	|   \       D_______\_______C
//	|    I______|\______ J      |\
//	|    |  .   | \ |    |  .   | \
//	|    |     .|  \|    |     .|  \
//	P_______________O    |      | . \
//	 \ . |      |    A___|______|____B
//	  \  |.     |    |   |.     |    |
//	   \ |   .  |    |   |   .  |    |
//	    \|      H____|___|______G    |
//	     M_______\_______N       \   |
//	        .     \  |      .     \  |
//	           .   \ |         .   \ |
//	              . \|            . \|
//	                 E_______________F
const (
	A = iota
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
)

// CornerNames labels the corners in index order.
const CornerNames = "ABCDEFGHIJKLMNOP"

// Corners are the 16 vertices of the tesseract.
var Corners = [16]Vertex4D{
	A: {mathutil.Vec4{-1, -1, 1, -1}, Red},
	B: {mathutil.Vec4{1, -1, 1, -1}, Red},
	C: {mathutil.Vec4{1, 1, 1, -1}, Red},
	D: {mathutil.Vec4{-1, 1, 1, -1}, Red},
	E: {mathutil.Vec4{-1, -1, -1, -1}, Red},
	F: {mathutil.Vec4{1, -1, -1, -1}, Red},
	G: {mathutil.Vec4{1, 1, -1, -1}, Red},
	H: {mathutil.Vec4{-1, 1, -1, -1}, Red},
	I: {mathutil.Vec4{-1, -1, 1, 1}, Green},
	J: {mathutil.Vec4{1, -1, 1, 1}, Green},
	K: {mathutil.Vec4{1, 1, 1, 1}, Green},
	L: {mathutil.Vec4{-1, 1, 1, 1}, Green},
	M: {mathutil.Vec4{-1, -1, -1, 1}, Green},
	N: {mathutil.Vec4{1, -1, -1, 1}, Green},
	O: {mathutil.Vec4{1, 1, -1, 1}, Green},
	P: {mathutil.Vec4{-1, 1, -1, 1}, Green},
}

// CellTriangles is the solid boundary: 48 triangles, six fanned from each of
// eight corners, spanning the cubical cells between the two nested cubes.
var CellTriangles = [48][3]int{
	{A, D, B}, {A, D, E}, {A, D, I}, {A, E, I}, {A, E, B}, {A, I, B},
	{M, E, P}, {M, E, N}, {M, E, I}, {M, I, N}, {M, I, P}, {M, N, P},
	{H, D, G}, {H, D, P}, {H, D, E}, {H, E, G}, {H, E, P}, {H, P, G},
	{L, D, K}, {L, D, I}, {L, D, P}, {L, P, K}, {L, P, I}, {L, K, I},
	{O, P, G}, {O, P, K}, {O, P, N}, {O, G, N}, {O, G, K}, {O, N, K},
	{C, D, B}, {C, D, K}, {C, D, G}, {C, B, K}, {C, B, G}, {C, G, K},
	{J, I, K}, {J, I, B}, {J, I, N}, {J, K, B}, {J, K, N}, {J, B, N},
	{F, E, G}, {F, E, B}, {F, E, N}, {F, B, N}, {F, B, G}, {F, N, G},
}

// Edges are the 32 tesseract edges.
var Edges = [32][2]int{
	{A, I}, {I, M}, {M, E}, {E, A},
	{A, D}, {I, L}, {M, P}, {E, H},
	{D, H}, {D, L}, {L, P}, {H, P},
	{D, C}, {H, G}, {E, F}, {A, B},
	{M, N}, {P, O}, {I, J}, {L, K},
	{K, C}, {C, G}, {G, O}, {K, O},
	{K, J}, {O, N}, {C, B}, {G, F},
	{J, B}, {B, F}, {F, N}, {N, J},
}
