// Package animation drives per-frame mesh rotation with spring-damped
// velocity.
package animation

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
)

// DefaultFPS is used when a non-positive frame rate is requested.
const DefaultFPS = 60

// Axis tracks position and velocity for one rotation axis with spring decay.
type Axis struct {
	Position float64 // Radians
	Velocity float64 // Radians per frame

	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewAxis creates an axis whose velocity settles to zero without overshoot.
func NewAxis(fps int) Axis {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return Axis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update advances one frame: the velocity is added to the position and then
// pulled toward zero by the spring. spin is a constant extra step that is not
// subject to decay.
func (a *Axis) Update(spin float64) {
	a.Position += a.Velocity + spin
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// RotationState holds the X, Y and Z rotation of a mesh.
type RotationState struct {
	X, Y, Z Axis

	// Spin is added to the positions every frame.
	Spin math3d.Vec3

	fps int
}

// NewRotationState creates a resting rotation state.
func NewRotationState(fps int) *RotationState {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &RotationState{
		X:   NewAxis(fps),
		Y:   NewAxis(fps),
		Z:   NewAxis(fps),
		fps: fps,
	}
}

// Update advances all three axes by one frame.
func (r *RotationState) Update() {
	r.X.Update(r.Spin.X)
	r.Y.Update(r.Spin.Y)
	r.Z.Update(r.Spin.Z)
}

// ApplyImpulse adds to the angular velocity of each axis.
func (r *RotationState) ApplyImpulse(x, y, z float64) {
	r.X.Velocity += x
	r.Y.Velocity += y
	r.Z.Velocity += z
}

// Reset returns every axis to rest at zero. Spin is kept.
func (r *RotationState) Reset() {
	r.X = NewAxis(r.fps)
	r.Y = NewAxis(r.fps)
	r.Z = NewAxis(r.fps)
}

// Rotation returns the current angles.
func (r *RotationState) Rotation() math3d.Vec3 {
	return math3d.V3(r.X.Position, r.Y.Position, r.Z.Position)
}

// Apply copies the current angles into mesh.Rotation.
func (r *RotationState) Apply(mesh *models.Mesh) {
	mesh.Rotation = r.Rotation()
}
