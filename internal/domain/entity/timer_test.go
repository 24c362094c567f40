package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountdown_Tick(t *testing.T) {
	t.Run("counts down without firing", func(t *testing.T) {
		c := Countdown{}
		c.Arm(0.5)

		fired := c.Tick(0.2)

		assert.False(t, fired)
		assert.InDelta(t, 0.3, c.Remaining, 1e-9)
		assert.True(t, c.Active())
	})

	t.Run("fires once on crossing zero and clamps", func(t *testing.T) {
		c := Countdown{}
		c.Arm(0.1)

		assert.True(t, c.Tick(0.25))
		assert.Equal(t, 0.0, c.Remaining)
		assert.False(t, c.Active())

		assert.False(t, c.Tick(0.25), "an expired countdown is inert")
		assert.Equal(t, 0.0, c.Remaining)
	})

	t.Run("fires when landing exactly on zero", func(t *testing.T) {
		c := Countdown{Remaining: 0.5}

		assert.True(t, c.Tick(0.5))
	})

	t.Run("re-arm overwrites instead of stacking", func(t *testing.T) {
		c := Countdown{}
		c.Arm(1.0)
		c.Tick(0.4)
		c.Arm(0.2)

		assert.InDelta(t, 0.2, c.Remaining, 1e-9)
	})

	t.Run("clear does not fire", func(t *testing.T) {
		c := Countdown{}
		c.Arm(1.0)
		c.Clear()

		assert.False(t, c.Tick(0.1))
		assert.False(t, c.Active())
	})

	t.Run("negative arm clamps to zero", func(t *testing.T) {
		c := Countdown{}
		c.Arm(-1)

		assert.Equal(t, 0.0, c.Remaining)
	})
}
