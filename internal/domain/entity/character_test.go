package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCharacter(t *testing.T) {
	c := NewCharacter(Capsule{Height: 1.8, Radius: 0.3})

	assert.Equal(t, LocomotionGrounded, c.Locomotion)
	assert.True(t, c.Grounded)
	assert.False(t, c.InCombat())
	assert.Equal(t, NoAttack, c.Combat.Pose)
	assert.Equal(t, AttackRightPunch, c.Combat.Next)
	assert.Equal(t, GaitIdle, c.Gait)
}

func TestCharacter_Accessors(t *testing.T) {
	c := NewCharacter(Capsule{})

	c.Locomotion = LocomotionVaulting
	assert.True(t, c.IsVaulting())
	assert.False(t, c.IsJumping())

	c.Locomotion = LocomotionFalling
	assert.True(t, c.IsFalling())

	c.Gait = GaitSneak
	assert.True(t, c.IsSneaking())
	assert.False(t, c.IsWalking())

	c.CrouchRecovery.Arm(1)
	assert.True(t, c.IsRecovering())
}

func TestCharacter_AccessorsOnCopy(t *testing.T) {
	c := NewCharacter(Capsule{})
	c.Locomotion = LocomotionVaulting
	c.Combat.Active = true
	c.CrouchRecovery.Arm(0.5)

	snapshot := func() Character { return *c }

	assert.True(t, snapshot().IsVaulting())
	assert.True(t, snapshot().InCombat())
	assert.True(t, snapshot().IsRecovering())
}
