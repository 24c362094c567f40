package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttackSlot_Next(t *testing.T) {
	assert.Equal(t, AttackLeftPunch, AttackRightPunch.Next())
	assert.Equal(t, AttackKick, AttackLeftPunch.Next())
	assert.Equal(t, AttackRightPunch, AttackKick.Next())
	assert.Equal(t, AttackRightPunch, NoAttack.Next())
}

func TestAttackSlot_String(t *testing.T) {
	assert.Equal(t, "RPunch", AttackRightPunch.String())
	assert.Equal(t, "LPunch", AttackLeftPunch.String())
	assert.Equal(t, "Kick", AttackKick.String())
	assert.Equal(t, "None", NoAttack.String())
}

func TestCombat_Reset(t *testing.T) {
	c := Combat{Active: true, Next: AttackKick, Pose: AttackLeftPunch}
	c.Reset()

	assert.False(t, c.Active)
	assert.Equal(t, AttackRightPunch, c.Next)
	assert.Equal(t, NoAttack, c.Pose)
}
