package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/locomotion/internal/domain/entity"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from entity.Locomotion
		ev   Event
		to   entity.Locomotion
		ok   bool
	}{
		{entity.LocomotionGrounded, EventLostGround, entity.LocomotionFalling, true},
		{entity.LocomotionGrounded, EventJumped, entity.LocomotionJumping, true},
		{entity.LocomotionGrounded, EventVaultStarted, entity.LocomotionVaulting, true},
		{entity.LocomotionJumping, EventLanded, entity.LocomotionGrounded, true},
		{entity.LocomotionFalling, EventLanded, entity.LocomotionGrounded, true},
		{entity.LocomotionVaulting, EventVaultFinished, entity.LocomotionGrounded, true},
		{entity.LocomotionVaulting, EventVaultAborted, entity.LocomotionFalling, true},

		{entity.LocomotionJumping, EventJumped, entity.LocomotionJumping, false},
		{entity.LocomotionFalling, EventVaultStarted, entity.LocomotionFalling, false},
		{entity.LocomotionVaulting, EventLostGround, entity.LocomotionVaulting, false},
		{entity.LocomotionVaulting, EventLanded, entity.LocomotionVaulting, false},
		{entity.LocomotionGrounded, EventVaultFinished, entity.LocomotionGrounded, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.ev.String(), func(t *testing.T) {
			to, ok := Transition(tt.from, tt.ev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.to, to)
		})
	}
}
