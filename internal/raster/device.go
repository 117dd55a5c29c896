package raster

import (
	"errors"
	"fmt"
	"sync"

	"hypercube-ar/internal/hypercube"
)

// ErrOutOfMemory is returned when an allocation exceeds the device budget.
var ErrOutOfMemory = errors.New("raster: device out of memory")

// VertexBuffer is CPU-side vertex storage in the hypercube interleaved layout.
type VertexBuffer struct {
	label string
	data  []float32
}

func (b *VertexBuffer) Label() string { return b.label }
func (b *VertexBuffer) Size() int     { return len(b.data) * 4 }

// VertexCount returns the number of whole vertices stored.
func (b *VertexBuffer) VertexCount() int { return len(b.data) / hypercube.FloatsPerVertex }

// Vertex decodes vertex i.
func (b *VertexBuffer) Vertex(i int) hypercube.Vertex4D {
	f := b.data[i*hypercube.FloatsPerVertex : (i+1)*hypercube.FloatsPerVertex]
	return hypercube.Unflatten(f)[0]
}

// Device is the software host's resource allocator.
type Device struct {
	mu      sync.Mutex
	limit   int
	used    int
	buffers []*VertexBuffer
}

// NewDevice returns a device that can hold limit bytes of vertex data;
// limit <= 0 means unbounded.
func NewDevice(limit int) *Device {
	return &Device{limit: limit}
}

// Allocate copies data into a new vertex buffer.
func (d *Device) Allocate(label string, data []float32) (hypercube.Buffer, error) {
	size := len(data) * 4
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.limit > 0 && d.used+size > d.limit {
		return nil, fmt.Errorf("%w: %s needs %d bytes, %d of %d in use", ErrOutOfMemory, label, size, d.used, d.limit)
	}
	buf := &VertexBuffer{label: label, data: append([]float32(nil), data...)}
	d.used += size
	d.buffers = append(d.buffers, buf)
	return buf, nil
}

// Used returns the number of bytes allocated so far.
func (d *Device) Used() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.used
}
