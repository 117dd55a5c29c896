package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlane(t *testing.T) {
	cases := map[string]Plane4D{
		"XY":       PlaneXY,
		"yz":       PlaneYZ,
		"ZX":       PlaneZX,
		"xz":       PlaneZX,
		" XW ":     PlaneXW,
		"WX":       PlaneXW,
		"YW":       PlaneYW,
		"zw":       PlaneZW,
		"ID":       PlaneIdentity,
		"identity": PlaneIdentity,
		"":         PlaneIdentity,
	}
	for in, want := range cases {
		got, err := ParsePlane(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePlane("XQ")
	assert.Error(t, err)
}

func TestPlaneText(t *testing.T) {
	for _, p := range Planes {
		b, err := p.MarshalText()
		require.NoError(t, err)
		var q Plane4D
		require.NoError(t, q.UnmarshalText(b))
		assert.Equal(t, p, q)
	}
	assert.Equal(t, "Plane4D(99)", Plane4D(99).String())
}
