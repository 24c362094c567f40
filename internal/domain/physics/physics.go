// Package physics defines the contracts the controller needs from a physics
// engine. The engine itself (integration, collision resolution) lives
// outside the controller; internal/infrastructure/world is one implementation.
package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
)

// ForceMode selects how AddForce changes a body's velocity
type ForceMode int

const (
	// ForceImpulse adds force/mass to the velocity
	ForceImpulse ForceMode = iota
	// ForceVelocityChange adds the vector to the velocity, ignoring mass
	ForceVelocityChange
)

// Body is a rigid body the controller drives
type Body interface {
	Position() mgl64.Vec3
	Rotation() mgl64.Quat
	SetRotation(q mgl64.Quat)
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
	AddForce(f mgl64.Vec3, mode ForceMode)

	// SetKinematic switches gravity and collision response off (true) or on (false)
	SetKinematic(kinematic bool)
	IsKinematic() bool

	// MovePosition places a kinematic body directly, bypassing forces
	MovePosition(p mgl64.Vec3)
}

// Hit describes the first collider a cast touched
type Hit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
	Bounds   mgl64.Vec3 // Size of the collider's axis-aligned bounds
}

// Probe answers read-only shape casts against collision layers.
// A cast that hits nothing returns false; that is never an error.
type Probe interface {
	SphereCast(origin mgl64.Vec3, radius float64, dir mgl64.Vec3, maxDist float64, mask entity.LayerMask) (Hit, bool)
	CapsuleCast(p1, p2 mgl64.Vec3, radius float64, dir mgl64.Vec3, maxDist float64, mask entity.LayerMask) (Hit, bool)
	Raycast(origin, dir mgl64.Vec3, maxDist float64, mask entity.LayerMask) (Hit, bool)
}
