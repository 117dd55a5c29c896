package frame

import "sync"

// PanScale converts pan gesture velocity (points per second) into radians
// per gesture event.
const PanScale = 1.0 / 10000

// Rotation is a snapshot of the accumulated rotation angles in radians.
// X drives the horizontal plane, Y the vertical plane.
type Rotation struct {
	X, Y float32
}

// Interaction owns the rotation accumulators shared between the input
// handler and the frame updater. It is safe for use from multiple goroutines.
type Interaction struct {
	mu  sync.Mutex
	rot Rotation
}

// Pan adds raw angle deltas in radians. Angles are not clamped.
func (s *Interaction) Pan(dx, dy float32) {
	s.mu.Lock()
	s.rot.X += dx
	s.rot.Y += dy
	s.mu.Unlock()
}

// PanVelocity adds a pan gesture reported as a velocity.
func (s *Interaction) PanVelocity(vx, vy float32) {
	s.Pan(vx*PanScale, vy*PanScale)
}

// Set replaces the accumulated angles.
func (s *Interaction) Set(r Rotation) {
	s.mu.Lock()
	s.rot = r
	s.mu.Unlock()
}

// Reset returns the rotation to zero.
func (s *Interaction) Reset() { s.Set(Rotation{}) }

// Snapshot returns the current angles.
func (s *Interaction) Snapshot() Rotation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rot
}
