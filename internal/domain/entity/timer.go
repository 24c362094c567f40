package entity

// Countdown is a non-negative timer counting down to zero.
// A countdown at zero is inert until re-armed.
type Countdown struct {
	Remaining float64
}

// Arm sets the remaining time, overwriting whatever was left
func (c *Countdown) Arm(d float64) {
	if d < 0 {
		d = 0
	}
	c.Remaining = d
}

// Clear stops the countdown without firing its completion
func (c *Countdown) Clear() {
	c.Remaining = 0
}

// Active reports whether time remains
func (c Countdown) Active() bool {
	return c.Remaining > 0
}

// Tick advances the countdown by dt.
// It returns true only on the tick that crosses from positive to zero.
func (c *Countdown) Tick(dt float64) bool {
	if c.Remaining <= 0 {
		return false
	}
	c.Remaining -= dt
	if c.Remaining <= 0 {
		c.Remaining = 0
		return true
	}
	return false
}
