// Package frame turns rotation input and a tracked camera into the uniform
// data the host renderer consumes once per frame.
package frame

import (
	"hypercube-ar/internal/mathutil"
	"hypercube-ar/internal/tracking"
)

// Settings configures an Updater.
type Settings struct {
	HorizontalPlane mathutil.Plane4D
	VerticalPlane   mathutil.Plane4D
	// Distance pushes the hypercube back along w before foreshortening.
	Distance float32
	// FOV is the 4D field of view in radians.
	FOV float32
	// MaxInstances bounds how many anchors are drawn per frame.
	MaxInstances int
}

// DefaultSettings rotates in XW and ZW at distance 16 with a 65° 4D field
// of view and a single anchor instance.
func DefaultSettings() Settings {
	return Settings{
		HorizontalPlane: mathutil.PlaneXW,
		VerticalPlane:   mathutil.PlaneZW,
		Distance:        mathutil.ViewDistance4D,
		FOV:             mathutil.Deg2Rad(mathutil.FOV4DDegrees),
		MaxInstances:    1,
	}
}

// Updater builds per-frame uniforms. It is meant to be driven from a single
// render goroutine; rotation input goes through the shared Interaction.
type Updater struct {
	settings Settings
	state    *Interaction

	projection4D mathutil.Mat5
	projReady    bool
	width        int
	height       int
}

// NewUpdater returns an updater reading rotation from state. A nil state
// gets a private Interaction.
func NewUpdater(settings Settings, state *Interaction) *Updater {
	def := DefaultSettings()
	if settings.Distance == 0 {
		settings.Distance = def.Distance
	}
	if settings.FOV == 0 {
		settings.FOV = def.FOV
	}
	if settings.MaxInstances < 1 {
		settings.MaxInstances = def.MaxInstances
	}
	if state == nil {
		state = &Interaction{}
	}
	return &Updater{settings: settings, state: state}
}

func (u *Updater) Settings() Settings        { return u.settings }
func (u *Updater) Interaction() *Interaction { return u.state }

// SetPlanes changes the rotation planes.
func (u *Updater) SetPlanes(horizontal, vertical mathutil.Plane4D) {
	u.settings.HorizontalPlane = horizontal
	u.settings.VerticalPlane = vertical
}

// Resize records a viewport change and recomputes the cached 4D projection.
func (u *Updater) Resize(width, height int) {
	u.width, u.height = width, height
	u.projection4D = mathutil.Perspective4D(u.settings.FOV)
	u.projReady = true
}

// Viewport returns the size passed to the last Resize.
func (u *Updater) Viewport() (width, height int) { return u.width, u.height }

// Projection4D returns the cached 4D projection.
func (u *Updater) Projection4D() mathutil.Mat5 {
	if !u.projReady {
		u.Resize(u.width, u.height)
	}
	return u.projection4D
}

// ModelView4D composes translation(0,0,0,-distance) × rotation(X, horizontal)
// × rotation(Y, vertical).
func (u *Updater) ModelView4D(r Rotation) mathutil.Mat5 {
	view := mathutil.Translation5(0, 0, 0, -u.settings.Distance)
	model := mathutil.Mat5Mul(
		mathutil.Rotation5(r.X, u.settings.HorizontalPlane),
		mathutil.Rotation5(r.Y, u.settings.VerticalPlane),
	)
	return mathutil.Mat5Mul(view, model)
}

// Update builds the uniforms for the current frame from the shared rotation
// state.
func (u *Updater) Update(pose tracking.CameraPose, anchors []tracking.Anchor) Uniforms {
	return u.UpdateWith(u.state.Snapshot(), pose, anchors)
}

// UpdateWith builds the uniforms for an explicit rotation. Only the newest
// MaxInstances anchors are kept.
func (u *Updater) UpdateWith(r Rotation, pose tracking.CameraPose, anchors []tracking.Anchor) Uniforms {
	out := Uniforms{
		Shared: Shared{
			Projection:   pose.Projection,
			Projection4D: u.Projection4D().Floats(),
			View:         pose.View,
		},
	}

	if len(anchors) > u.settings.MaxInstances {
		anchors = anchors[len(anchors)-u.settings.MaxInstances:]
	}
	if len(anchors) == 0 {
		return out
	}

	mv := u.ModelView4D(r).Floats()
	out.Instances = make([]Instance, len(anchors))
	for i, a := range anchors {
		out.Instances[i] = Instance{
			AnchorID:    a.ID,
			Model:       a.Transform,
			ModelView4D: mv,
		}
	}
	return out
}
