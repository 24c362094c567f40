package entity

// Locomotion is the physics-driven movement state of the character.
// Exactly one value holds at a time, so jumping and falling can never be
// set together and vaulting excludes every other state.
type Locomotion int

const (
	LocomotionGrounded Locomotion = iota
	LocomotionJumping
	LocomotionFalling
	LocomotionVaulting
)

// String returns the string representation of the locomotion state
func (l Locomotion) String() string {
	switch l {
	case LocomotionGrounded:
		return "Grounded"
	case LocomotionJumping:
		return "Jumping"
	case LocomotionFalling:
		return "Falling"
	case LocomotionVaulting:
		return "Vaulting"
	default:
		return "Unknown"
	}
}

// Gait is the speed tier chosen by the last movement tick
type Gait int

const (
	GaitIdle Gait = iota
	GaitWalk
	GaitRun
	GaitSneak // Crouched with movement input
)

// String returns the string representation of the gait
func (g Gait) String() string {
	switch g {
	case GaitIdle:
		return "Idle"
	case GaitWalk:
		return "Walk"
	case GaitRun:
		return "Run"
	case GaitSneak:
		return "Sneak"
	default:
		return "Unknown"
	}
}

// Button is a logical input button
type Button int

const (
	ButtonSprint Button = iota
	ButtonCrouch
	ButtonJump
	ButtonAttack
)

// String returns the string representation of the button
func (b Button) String() string {
	switch b {
	case ButtonSprint:
		return "Sprint"
	case ButtonCrouch:
		return "Crouch"
	case ButtonJump:
		return "Jump"
	case ButtonAttack:
		return "Attack"
	default:
		return "Unknown"
	}
}
