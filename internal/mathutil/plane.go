package mathutil

import (
	"fmt"
	"strings"
)

// Plane4D selects one of the six coordinate 2-planes of 4-space in which a
// rotation takes place. PlaneIdentity selects no plane at all.
type Plane4D uint8

const (
	PlaneIdentity Plane4D = iota
	PlaneXY
	PlaneYZ
	PlaneZX
	PlaneXW
	PlaneYW
	PlaneZW
)

// Planes lists the six rotation planes in declaration order.
var Planes = [...]Plane4D{PlaneXY, PlaneYZ, PlaneZX, PlaneXW, PlaneYW, PlaneZW}

var planeNames = [...]string{"ID", "XY", "YZ", "ZX", "XW", "YW", "ZW"}

// planeAxes maps a plane to its ordered axis pair (a, b); the rotation block
// puts +sin at (a, b) and -sin at (b, a).
var planeAxes = [...][2]int{
	PlaneXY: {0, 1},
	PlaneYZ: {1, 2},
	PlaneZX: {2, 0},
	PlaneXW: {0, 3},
	PlaneYW: {1, 3},
	PlaneZW: {2, 3},
}

func (p Plane4D) String() string {
	if int(p) < len(planeNames) {
		return planeNames[p]
	}
	return fmt.Sprintf("Plane4D(%d)", uint8(p))
}

// Axes returns the axis indices spanned by the plane. ok is false for the
// identity selector and unknown values.
func (p Plane4D) Axes() (a, b int, ok bool) {
	if p == PlaneIdentity || int(p) >= len(planeAxes) {
		return 0, 0, false
	}
	ax := planeAxes[p]
	return ax[0], ax[1], true
}

// ParsePlane accepts "XY", "yz", "ZX", "XW", "YW", "ZW" and "ID"/"identity".
// The axis pair may be written in either order ("WX" is XW).
func ParsePlane(s string) (Plane4D, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	switch u {
	case "", "ID", "IDENTITY":
		return PlaneIdentity, nil
	}
	for i, name := range planeNames[1:] {
		if u == name || (len(u) == 2 && u[0] == name[1] && u[1] == name[0]) {
			return Plane4D(i + 1), nil
		}
	}
	return PlaneIdentity, fmt.Errorf("mathutil: unknown plane %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Plane4D) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Plane4D) UnmarshalText(b []byte) error {
	v, err := ParsePlane(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
