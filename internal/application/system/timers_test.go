package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/locomotion/internal/domain/entity"
)

func TestTimerBank_CompletionRunsOnce(t *testing.T) {
	c := entity.NewCharacter(entity.Capsule{})
	b := NewTimerBank(c)

	fired := 0
	b.OnExpire(TimerAttackCooldown, func() { fired++ })

	b.Arm(TimerAttackCooldown, 0.1)
	b.Advance(0.05)
	assert.Equal(t, 0, fired)
	b.Advance(0.05)
	b.Advance(0.05)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0.0, c.AttackCooldown.Remaining)
}

func TestTimerBank_ClearSkipsCompletion(t *testing.T) {
	c := entity.NewCharacter(entity.Capsule{})
	b := NewTimerBank(c)

	fired := false
	b.OnExpire(TimerCrouchRecovery, func() { fired = true })

	b.Arm(TimerCrouchRecovery, 3)
	b.Clear(TimerCrouchRecovery)
	b.Advance(5)

	assert.False(t, fired)
}

func TestTimerBank_IndependentTimers(t *testing.T) {
	c := entity.NewCharacter(entity.Capsule{})
	b := NewTimerBank(c)

	b.Arm(TimerJumpBuffer, 0.2)
	b.Arm(TimerCrouchRecovery, 3)
	b.Advance(0.5)

	assert.False(t, c.JumpBuffer.Active())
	assert.InDelta(t, 2.5, c.CrouchRecovery.Remaining, 1e-9)
	assert.Equal(t, "CrouchRecovery", TimerCrouchRecovery.String())
}
