package entity

import "github.com/go-gl/mathgl/mgl64"

// VaultPath is the trajectory of an in-progress vault.
// Only meaningful while the character is vaulting.
type VaultPath struct {
	Start    mgl64.Vec3
	End      mgl64.Vec3
	Elapsed  float64
	Duration float64
}

// Character is the mutable controller state of one character.
// It is owned by a single controller; subsystems share it by pointer.
type Character struct {
	Capsule Capsule

	Locomotion Locomotion
	Grounded   bool // Result of the last ground probe
	Airborne   bool // The body has left the ground since the jump fired
	Crouching  bool
	Gait       Gait

	// World-space unit vector of the last movement intent, zero without input
	MoveDirection mgl64.Vec3

	JumpBuffer     Countdown
	CrouchRecovery Countdown
	AttackCooldown Countdown

	Combat Combat
	Vault  VaultPath
}

// NewCharacter creates a grounded, idle character with the given shape
func NewCharacter(capsule Capsule) *Character {
	c := &Character{
		Capsule:    capsule,
		Locomotion: LocomotionGrounded,
		Grounded:   true,
	}
	c.Combat.Reset()
	return c
}

// IsJumping returns true while the jump is rising or airborne
func (c Character) IsJumping() bool {
	return c.Locomotion == LocomotionJumping
}

// IsFalling returns true while airborne without having jumped
func (c Character) IsFalling() bool {
	return c.Locomotion == LocomotionFalling
}

// IsVaulting returns true while the vault maneuver owns the body
func (c Character) IsVaulting() bool {
	return c.Locomotion == LocomotionVaulting
}

// InCombat returns true while the attack cycle is engaged
func (c Character) InCombat() bool {
	return c.Combat.Active
}

// IsWalking returns true when the last movement tick walked
func (c Character) IsWalking() bool {
	return c.Gait == GaitWalk
}

// IsRunning returns true when the last movement tick sprinted
func (c Character) IsRunning() bool {
	return c.Gait == GaitRun
}

// IsSneaking returns true when crouched and moving
func (c Character) IsSneaking() bool {
	return c.Gait == GaitSneak
}

// IsRecovering returns true while the stand-up recovery plays
func (c Character) IsRecovering() bool {
	return c.CrouchRecovery.Active()
}
