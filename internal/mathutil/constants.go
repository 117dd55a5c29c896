package mathutil

// Defaults of the two-stage projection.
const (
	// FOV4DDegrees is the field of view of the 4D→3D perspective.
	FOV4DDegrees = 65

	// ViewDistance4D is how far the hypercube is pushed back along w before
	// foreshortening.
	ViewDistance4D = 16

	// Near3D and Far3D bound the 3D camera frustum (meters).
	Near3D = 0.001
	Far3D  = 1000
)

var (
	// WorldUp is the +Y up vector of the tracked 3D world.
	WorldUp = Vec3{0, 1, 0}
)
