package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	eye := Vec3{0.3, 0.2, 0.5}
	v := LookAt(eye, Vec3{}, WorldUp)
	got := v.MulPoint(eye)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0, got[i], 1e-6)
	}
	// The target lies straight ahead on -z.
	target := v.MulPoint(Vec3{})
	assert.InDelta(t, 0, target[0], 1e-6)
	assert.InDelta(t, 0, target[1], 1e-6)
	assert.InDelta(t, -eye.Len(), target[2], 1e-6)
}

func TestPerspectiveDepthRange(t *testing.T) {
	p := Perspective(Deg2Rad(60), 1.5, Near3D, Far3D)
	near := p.MulVec4([4]float32{0, 0, -Near3D, 1})
	far := p.MulVec4([4]float32{0, 0, -Far3D, 1})
	assert.InDelta(t, -1, near[2]/near[3], 1e-3)
	assert.InDelta(t, 1, far[2]/far[3], 1e-3)
}

func TestColumnMajor(t *testing.T) {
	m := Translation(1, 2, 3)
	cm := m.ColumnMajor()
	assert.Equal(t, [4]float32{1, 2, 3, 1}, [4]float32(cm[12:16]))
	assert.True(t, Mat4Mul(m, Translation(-1, -2, -3)).IsIdentity())
}

func TestQuatIdentity(t *testing.T) {
	assert.Equal(t, Mat3Identity(), QuatToMat3(EulerToQuat(0, 0, 0)))
}
