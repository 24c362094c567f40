package system

import (
	"github.com/sirupsen/logrus"
	"github.com/younwookim/locomotion/internal/domain/entity"
)

// Event drives the locomotion state machine
type Event int

const (
	EventLostGround Event = iota
	EventLanded
	EventJumped
	EventVaultStarted
	EventVaultFinished
	EventVaultAborted
)

func (e Event) String() string {
	switch e {
	case EventLostGround:
		return "LostGround"
	case EventLanded:
		return "Landed"
	case EventJumped:
		return "Jumped"
	case EventVaultStarted:
		return "VaultStarted"
	case EventVaultFinished:
		return "VaultFinished"
	case EventVaultAborted:
		return "VaultAborted"
	default:
		return "Unknown"
	}
}

// Transition returns the locomotion state that follows from after e.
// Events that do not apply to from leave it unchanged and return false.
func Transition(from entity.Locomotion, e Event) (entity.Locomotion, bool) {
	switch {
	case e == EventLostGround && from == entity.LocomotionGrounded:
		return entity.LocomotionFalling, true
	case e == EventLanded && (from == entity.LocomotionJumping || from == entity.LocomotionFalling):
		return entity.LocomotionGrounded, true
	case e == EventJumped && from == entity.LocomotionGrounded:
		return entity.LocomotionJumping, true
	case e == EventVaultStarted && from == entity.LocomotionGrounded:
		return entity.LocomotionVaulting, true
	case e == EventVaultFinished && from == entity.LocomotionVaulting:
		return entity.LocomotionGrounded, true
	case e == EventVaultAborted && from == entity.LocomotionVaulting:
		return entity.LocomotionFalling, true
	}
	return from, false
}

// apply runs e against the character's locomotion state
func apply(char *entity.Character, e Event, log logrus.FieldLogger) bool {
	next, ok := Transition(char.Locomotion, e)
	if !ok {
		return false
	}
	log.WithFields(logrus.Fields{
		"event": e,
		"from":  char.Locomotion,
		"to":    next,
	}).Debug("locomotion transition")
	char.Locomotion = next
	return true
}
