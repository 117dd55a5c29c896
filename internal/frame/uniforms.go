package frame

import (
	"encoding/binary"
	"math"

	"hypercube-ar/internal/mathutil"
)

// Shared holds the per-frame uniforms common to every instance.
type Shared struct {
	Projection   mathutil.Mat4
	Projection4D [mathutil.Mat5Size]float32
	View         mathutil.Mat4
}

// Instance holds the uniforms of one anchored hypercube.
type Instance struct {
	AnchorID    int
	Model       mathutil.Mat4
	ModelView4D [mathutil.Mat5Size]float32
}

// Uniforms is everything the host needs for one frame's draw call.
type Uniforms struct {
	Shared    Shared
	Instances []Instance
}

// Constant buffer layout. 4×4 matrices are 16-byte aligned and written
// column-major; 5×5 matrices are packed row-major as 25 floats.
const (
	mat4Bytes = 16 * 4
	mat5Bytes = mathutil.Mat5Size * 4

	SharedProjectionOffset   = 0
	SharedProjection4DOffset = SharedProjectionOffset + mat4Bytes
	SharedViewOffset         = (SharedProjection4DOffset + mat5Bytes + 15) &^ 15
	SharedSize               = SharedViewOffset + mat4Bytes

	InstanceModelOffset       = 0
	InstanceModelView4DOffset = InstanceModelOffset + mat4Bytes
	InstanceSize              = (InstanceModelView4DOffset + mat5Bytes + 15) &^ 15

	// UniformAlignment is the constant-buffer slot alignment.
	UniformAlignment = 256
)

// AlignedSize rounds n up to the next slot boundary, always leaving at least
// one full slot past the truncated size.
func AlignedSize(n int) int {
	return (n &^ (UniformAlignment - 1)) + UniformAlignment
}

func putFloats(dst []byte, src []float32) {
	for i, f := range src {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(f))
	}
}

// put writes the shared uniforms into dst, which must hold SharedSize bytes.
func (s *Shared) put(dst []byte) {
	proj := s.Projection.ColumnMajor()
	view := s.View.ColumnMajor()
	putFloats(dst[SharedProjectionOffset:], proj[:])
	putFloats(dst[SharedProjection4DOffset:], s.Projection4D[:])
	putFloats(dst[SharedViewOffset:], view[:])
}

// put writes one instance into dst, which must hold InstanceSize bytes.
func (in *Instance) put(dst []byte) {
	model := in.Model.ColumnMajor()
	putFloats(dst[InstanceModelOffset:], model[:])
	putFloats(dst[InstanceModelView4DOffset:], in.ModelView4D[:])
}

// MarshalBinary encodes the shared uniforms into SharedSize bytes.
func (s Shared) MarshalBinary() ([]byte, error) {
	buf := make([]byte, SharedSize)
	s.put(buf)
	return buf, nil
}

// MarshalBinary encodes one instance into InstanceSize bytes.
func (in Instance) MarshalBinary() ([]byte, error) {
	buf := make([]byte, InstanceSize)
	in.put(buf)
	return buf, nil
}

// InstanceBuffer packs instances back to back at InstanceSize stride into a
// slot sized for maxInstances.
func (u *Uniforms) InstanceBuffer(maxInstances int) []byte {
	if maxInstances < len(u.Instances) {
		maxInstances = len(u.Instances)
	}
	buf := make([]byte, AlignedSize(InstanceSize*maxInstances))
	for i := range u.Instances {
		u.Instances[i].put(buf[i*InstanceSize:])
	}
	return buf
}

// SharedBuffer returns the shared uniforms in a full constant-buffer slot.
func (u *Uniforms) SharedBuffer() []byte {
	buf := make([]byte, AlignedSize(SharedSize))
	u.Shared.put(buf)
	return buf
}
