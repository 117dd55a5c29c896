package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hypercube-ar/internal/mathutil"
)

func TestAnchorsDropOldest(t *testing.T) {
	set := NewAnchors(2)
	for i := 0; i < 5; i++ {
		set.Place(AnchorAt(0, mathutil.Vec3{float32(i), 0, 0}, 0, 0, 0))
	}
	list := set.List()
	require.Len(t, list, 2)
	assert.Equal(t, 4, list[0].ID)
	assert.Equal(t, 5, list[1].ID)
	assert.Equal(t, float32(4), list[1].Transform[3])

	set.Clear()
	assert.Equal(t, 0, set.Len())
	assert.Equal(t, 1, NewAnchors(0).capacity)
}

func TestAnchorAtIdentityRotation(t *testing.T) {
	a := AnchorAt(1, mathutil.Vec3{0.1, 0.2, 0.3}, 0, 0, 0)
	assert.Equal(t, mathutil.Translation(0.1, 0.2, 0.3), a.Transform)
}

func TestOrbitLooksAtCenter(t *testing.T) {
	o := DefaultOrbit()
	for _, i := range []int{0, 45, 180} {
		pose := o.Pose(i, 640, 480)
		c := pose.View.MulPoint(o.Center)
		assert.InDelta(t, 0, c[0], 1e-5)
		assert.InDelta(t, 0, c[1], 1e-5)
		assert.Less(t, c[2], float32(0), "center must be in front of the camera")
	}
}

func TestOrbitAspect(t *testing.T) {
	o := DefaultOrbit()
	wide := o.Pose(0, 200, 100).Projection
	square := o.Pose(0, 0, 0).Projection
	assert.InDelta(t, square[0]/2, wide[0], 1e-6)
}
