package system

import "github.com/go-gl/mathgl/mgl64"

// Intent is one frame of sampled input
type Intent struct {
	Move      mgl64.Vec2 // Axis input clamped to unit length
	Magnitude float64    // Length of Move

	Sprint bool
	Crouch bool
	Jump   bool
	Attack bool

	CrouchPressed bool
	JumpPressed   bool
	AttackPressed bool
}

// Moving reports whether the movement input clears the deadzone
func (i Intent) Moving(deadzone float64) bool {
	return i.Magnitude > 0 && i.Magnitude >= deadzone
}
