package world

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/domain/physics"
)

// Body is a capsule rigid body. Its rotation is frozen against physics and
// only changes through SetRotation.
type Body struct {
	pos       mgl64.Vec3
	vel       mgl64.Vec3
	rot       mgl64.Quat
	mass      float64
	capsule   entity.Capsule
	kinematic bool

	onGround bool // Landed on a box during the last step
	driven   bool // Velocity was written since the last step
}

var _ physics.Body = (*Body)(nil)

// Position returns the feet position
func (b *Body) Position() mgl64.Vec3 { return b.pos }

// Rotation returns the facing rotation
func (b *Body) Rotation() mgl64.Quat { return b.rot }

// SetRotation sets the facing rotation
func (b *Body) SetRotation(q mgl64.Quat) { b.rot = q.Normalize() }

// Velocity returns the linear velocity
func (b *Body) Velocity() mgl64.Vec3 { return b.vel }

// SetVelocity overwrites the linear velocity
func (b *Body) SetVelocity(v mgl64.Vec3) {
	b.vel = v
	b.driven = true
}

// AddForce applies an instantaneous force
func (b *Body) AddForce(f mgl64.Vec3, mode physics.ForceMode) {
	switch mode {
	case physics.ForceImpulse:
		b.vel = b.vel.Add(f.Mul(1 / b.mass))
	case physics.ForceVelocityChange:
		b.vel = b.vel.Add(f)
	}
	b.driven = true
}

// SetKinematic toggles kinematic mode. Entering it stops the body.
func (b *Body) SetKinematic(kinematic bool) {
	if kinematic && !b.kinematic {
		b.vel = mgl64.Vec3{}
	}
	b.kinematic = kinematic
}

// IsKinematic reports whether the body ignores gravity and collisions
func (b *Body) IsKinematic() bool { return b.kinematic }

// MovePosition teleports the body
func (b *Body) MovePosition(p mgl64.Vec3) { b.pos = p }

// OnGround reports whether the last step ended resting on a box
func (b *Body) OnGround() bool { return b.onGround }

// Capsule returns the collision shape
func (b *Body) Capsule() entity.Capsule { return b.capsule }

// bounds returns the world-space box around the capsule
func (b *Body) bounds() (mgl64.Vec3, mgl64.Vec3) {
	c := b.pos.Add(b.capsule.Center)
	h := b.capsule.HalfExtents()
	return c.Sub(h), c.Add(h)
}
