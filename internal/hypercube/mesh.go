package hypercube

import (
	"errors"
	"fmt"
	"slices"

	"github.com/chewxy/math32"

	"hypercube-ar/internal/mathutil"
)

// ErrAllocation is returned when the host cannot provide vertex storage.
var ErrAllocation = errors.New("hypercube: vertex buffer allocation failed")

// ErrThickness is returned for a non-positive or non-finite tube thickness.
var ErrThickness = errors.New("hypercube: invalid tube thickness")

// PrimitiveType tells the host how to assemble the vertex stream.
type PrimitiveType uint8

const (
	Triangle PrimitiveType = iota
)

func (p PrimitiveType) String() string {
	if p == Triangle {
		return "triangle"
	}
	return fmt.Sprintf("PrimitiveType(%d)", uint8(p))
}

// Buffer is host-owned vertex storage.
type Buffer interface {
	Label() string
	// Size is the buffer length in bytes.
	Size() int
}

// Allocator uploads vertex data into host storage. data is in the
// FloatsPerVertex interleaved layout.
type Allocator interface {
	Allocate(label string, data []float32) (Buffer, error)
}

// AllocatorFunc adapts a function to Allocator.
type AllocatorFunc func(label string, data []float32) (Buffer, error)

func (f AllocatorFunc) Allocate(label string, data []float32) (Buffer, error) {
	return f(label, data)
}

// Options controls mesh construction.
type Options struct {
	Wireframe bool
	// Thickness of wireframe tubes; zero selects DefaultThickness.
	Thickness float32
	// Label names the vertex buffer; empty selects "HypercubeVertexBuffer".
	Label string
}

// Mesh is the static tesseract geometry. It is never mutated after Build
// and may be shared between frames and goroutines.
type Mesh struct {
	label     string
	primitive PrimitiveType
	wireframe bool
	thickness float32
	vertices  []Vertex4D
	buffer    Buffer
}

// SolidVertices returns the triangle list of the 8 cells.
func SolidVertices() []Vertex4D {
	out := make([]Vertex4D, 0, len(CellTriangles)*3)
	for _, tri := range CellTriangles {
		out = append(out, Corners[tri[0]], Corners[tri[1]], Corners[tri[2]])
	}
	return out
}

// WireframeVertices returns the triangle list of all 32 edge tubes.
func WireframeVertices(thickness float32) []Vertex4D {
	out := make([]Vertex4D, 0, len(Edges)*TubeTriangles*3)
	for _, e := range Edges {
		out = append(out, Tube(Corners[e[0]], Corners[e[1]], thickness)...)
	}
	return out
}

// Build generates the tesseract and hands its vertex data to alloc. Failing
// allocation is fatal: no mesh is returned.
func Build(opts Options, alloc Allocator) (*Mesh, error) {
	thickness := opts.Thickness
	if thickness == 0 {
		thickness = DefaultThickness
	}
	if opts.Wireframe && (thickness < 0 || math32.IsNaN(thickness) || math32.IsInf(thickness, 0)) {
		return nil, fmt.Errorf("%w: %v", ErrThickness, opts.Thickness)
	}
	label := opts.Label
	if label == "" {
		label = "HypercubeVertexBuffer"
	}

	var verts []Vertex4D
	if opts.Wireframe {
		verts = WireframeVertices(thickness)
	} else {
		verts = SolidVertices()
	}

	if alloc == nil {
		return nil, fmt.Errorf("%w: no allocator", ErrAllocation)
	}
	buf, err := alloc.Allocate(label, Flatten(verts))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAllocation, label, err)
	}
	if buf == nil {
		return nil, fmt.Errorf("%w: %s: allocator returned no buffer", ErrAllocation, label)
	}

	return &Mesh{
		label:     label,
		primitive: Triangle,
		wireframe: opts.Wireframe,
		thickness: thickness,
		vertices:  verts,
		buffer:    buf,
	}, nil
}

func (m *Mesh) Label() string              { return m.label }
func (m *Mesh) Primitive() PrimitiveType   { return m.primitive }
func (m *Mesh) Wireframe() bool            { return m.wireframe }
func (m *Mesh) Thickness() float32         { return m.thickness }
func (m *Mesh) Buffer() Buffer             { return m.buffer }
func (m *Mesh) VertexCount() int           { return len(m.vertices) }
func (m *Mesh) TriangleCount() int         { return len(m.vertices) / 3 }
func (m *Mesh) Vertex(i int) Vertex4D      { return m.vertices[i] }
func (m *Mesh) Vertices() []Vertex4D       { return slices.Clone(m.vertices) }
func (m *Mesh) Floats() []float32          { return Flatten(m.vertices) }
func (m *Mesh) Bytes() []byte              { return EncodeFloats(m.Floats()) }
func (m *Mesh) Triangle(i int) [3]Vertex4D { return [3]Vertex4D(m.vertices[i*3 : i*3+3]) }

// Bounds returns the axis-aligned 4D bounding box of the mesh.
func (m *Mesh) Bounds() (lo, hi mathutil.Vec4) {
	if len(m.vertices) == 0 {
		return
	}
	lo, hi = m.vertices[0].Position, m.vertices[0].Position
	for _, v := range m.vertices[1:] {
		for k := 0; k < 4; k++ {
			lo[k] = min(lo[k], v.Position[k])
			hi[k] = max(hi[k], v.Position[k])
		}
	}
	return lo, hi
}
