package mathutil

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = float32(1e-5)

func randomMat5(rng *rand.Rand) Mat5 {
	var m Mat5
	for i := range m {
		m[i] = rng.Float32()*2 - 1
	}
	return m
}

func TestRotation5ZeroIsIdentity(t *testing.T) {
	for _, p := range Planes {
		assert.Equal(t, Mat5Identity(), Rotation5(0, p), "plane %s", p)
	}
}

func TestRotation5Inverse(t *testing.T) {
	angles := []float32{0.1, -0.7, 1.5, math32.Pi, 4.2, -12.5}
	for _, p := range append(Planes[:], PlaneIdentity) {
		for _, a := range angles {
			m := Mat5Mul(Rotation5(a, p), Rotation5(-a, p))
			assert.True(t, m.ApproxEqual(Mat5Identity(), tol), "plane %s angle %v: %v", p, a, m)
		}
	}
}

func TestRotation5Block(t *testing.T) {
	for _, p := range Planes {
		a, b, ok := p.Axes()
		require.True(t, ok)
		m := Rotation5(math32.Pi/2, p)
		for r := 0; r < 5; r++ {
			for c := 0; c < 5; c++ {
				inBlock := (r == a || r == b) && (c == a || c == b)
				if inBlock {
					continue
				}
				want := float32(0)
				if r == c {
					want = 1
				}
				assert.Equal(t, want, m.At(r, c), "plane %s cell (%d,%d)", p, r, c)
			}
		}
		// Quarter turn moves axis a onto axis b.
		var e Vec4
		e[a] = 1
		got := Rotation5(math32.Pi/2, p).Transpose().Transform(e)
		assert.InDelta(t, 1, got[b], 1e-6, "plane %s", p)
		assert.InDelta(t, 0, got[a], 1e-6, "plane %s", p)
	}
}

func TestRotation5PreservesLength(t *testing.T) {
	v := Vec4{0.3, -1.2, 2.5, 0.8}
	for _, p := range Planes {
		got := Rotation5(0.83, p).Transform(v)
		assert.InDelta(t, v.Len(), got.Len(), 1e-5, "plane %s", p)
	}
}

func TestRotation5UnknownPlane(t *testing.T) {
	assert.Equal(t, Mat5Identity(), Rotation5(1.2, PlaneIdentity))
	assert.Equal(t, Mat5Identity(), Rotation5(1.2, Plane4D(42)))
}

func TestMat5MulAssociative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		a, b, c := randomMat5(rng), randomMat5(rng), randomMat5(rng)
		left := Mat5Mul(Mat5Mul(a, b), c)
		right := Mat5Mul(a, Mat5Mul(b, c))
		assert.True(t, left.ApproxEqual(right, 1e-4), "iteration %d", i)
	}
}

func TestMat5MulIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m := randomMat5(rng)
	assert.Equal(t, m, Mat5Mul(Mat5Identity(), m))
	assert.Equal(t, m, Mat5Mul(m, Mat5Identity()))
}

func TestTranslation5Inverse(t *testing.T) {
	m := Mat5Mul(Translation5(1.5, -2, 3.25, -16), Translation5(-1.5, 2, -3.25, 16))
	assert.Equal(t, Mat5Identity(), m)

	p := Translation5(1, 2, 3, 4).Transform(Vec4{1, 1, 1, 1})
	assert.Equal(t, Vec4{2, 3, 4, 5}, p)
}

func TestTranslation5LastRow(t *testing.T) {
	for _, m := range []Mat5{Translation5(1, 2, 3, 4), Rotation5(0.4, PlaneYW)} {
		assert.Equal(t, []float32{0, 0, 0, 0, 1}, m[20:25])
	}
}

func TestPerspective4D(t *testing.T) {
	m := Perspective4D(Deg2Rad(90))
	got := m.MulVec5(Vec5{0.5, -0.25, 1, -3, 1})
	assert.InDelta(t, 0.5, got[0], 1e-6)
	assert.InDelta(t, -0.25, got[1], 1e-6)
	assert.InDelta(t, 1, got[2], 1e-6)
	assert.Equal(t, float32(-3), got[3])
	assert.Equal(t, float32(1), got[4])

	narrow := Perspective4D(Deg2Rad(FOV4DDegrees))
	s := 1 / math32.Tan(Deg2Rad(FOV4DDegrees)/2)
	for r := 0; r < 3; r++ {
		assert.InDelta(t, s, narrow.At(r, r), 1e-6)
	}
	assert.Equal(t, float32(1), narrow.At(3, 3))
	assert.Equal(t, float32(1), narrow.At(4, 4))
}

func TestMat5FromSlice(t *testing.T) {
	id := Mat5Identity()
	assert.Equal(t, id, Mat5FromSlice(id[:]))
	assert.Panics(t, func() { Mat5FromSlice(make([]float32, 16)) })
	assert.Panics(t, func() { Mat5FromSlice(nil) })

	f := Translation5(1, 2, 3, 4).Floats()
	assert.Len(t, f, Mat5Size)
	assert.Equal(t, float32(4), f[19])
}

func TestProject4To3(t *testing.T) {
	v, ok := Project4To3(Vec5{2, -4, 6, -2, 1})
	require.True(t, ok)
	assert.Equal(t, Vec3{1, -2, 3}, v)

	_, ok = Project4To3(Vec5{1, 1, 1, 0, 1})
	assert.False(t, ok)
	_, ok = Project4To3(Vec5{1, 1, 1, 3, 1})
	assert.False(t, ok)
}

func TestFartherInWShrinks(t *testing.T) {
	near, _ := Project4To3(Vec5{1, 1, 1, -4, 1})
	far, _ := Project4To3(Vec5{1, 1, 1, -8, 1})
	assert.Less(t, far.Len(), near.Len())
}
