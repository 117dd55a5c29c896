// Package tracking stands in for the AR tracking host: it supplies camera
// poses and anchors as plain 4×4 matrices.
package tracking

import (
	"github.com/chewxy/math32"

	"hypercube-ar/internal/mathutil"
)

// CameraPose is the 3D camera for one frame.
type CameraPose struct {
	View       mathutil.Mat4
	Projection mathutil.Mat4
}

// Anchor is a tracked real-world pose the hypercube is attached to.
type Anchor struct {
	ID        int
	Transform mathutil.Mat4
}

// AnchorAt builds an anchor at position with Euler XYZ orientation (radians).
func AnchorAt(id int, position mathutil.Vec3, rx, ry, rz float32) Anchor {
	r := mathutil.QuatToMat3(mathutil.EulerToQuat(rx, ry, rz))
	return Anchor{ID: id, Transform: mathutil.FromMat3Translation(r, position)}
}

// Orbit simulates a handheld device circling the anchor.
type Orbit struct {
	Center mathutil.Vec3
	Radius float32
	Height float32
	// Step is the azimuth advance per frame in radians.
	Step float32
	// FOV is the vertical field of view of the device camera in radians.
	FOV float32
}

// DefaultOrbit circles half a meter from the origin, slightly above it.
func DefaultOrbit() Orbit {
	return Orbit{
		Radius: 0.5,
		Height: 0.15,
		Step:   mathutil.Deg2Rad(1),
		FOV:    mathutil.Deg2Rad(60),
	}
}

// Eye returns the camera position at frame i.
func (o Orbit) Eye(i int) mathutil.Vec3 {
	a := o.Step * float32(i)
	return mathutil.Vec3{
		o.Center[0] + o.Radius*math32.Sin(a),
		o.Center[1] + o.Height,
		o.Center[2] + o.Radius*math32.Cos(a),
	}
}

// Pose returns the camera pose at frame i for a viewport of the given size.
func (o Orbit) Pose(i, width, height int) CameraPose {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return CameraPose{
		View:       mathutil.LookAt(o.Eye(i), o.Center, mathutil.WorldUp),
		Projection: mathutil.Perspective(o.FOV, aspect, mathutil.Near3D, mathutil.Far3D),
	}
}
