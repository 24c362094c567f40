package entity

// AttackSlot is a position in the three-step attack cycle
type AttackSlot int

const (
	NoAttack AttackSlot = iota - 1
	AttackRightPunch
	AttackLeftPunch
	AttackKick
)

// AttackSlotCount is the length of the attack cycle
const AttackSlotCount = 3

// String returns the animator parameter name of the slot's pose
func (s AttackSlot) String() string {
	switch s {
	case AttackRightPunch:
		return "RPunch"
	case AttackLeftPunch:
		return "LPunch"
	case AttackKick:
		return "Kick"
	case NoAttack:
		return "None"
	default:
		return "Unknown"
	}
}

// Next returns the slot that follows s in the cycle
func (s AttackSlot) Next() AttackSlot {
	if s < 0 {
		return AttackRightPunch
	}
	return (s + 1) % AttackSlotCount
}

// Combat is the combat sub-state, orthogonal to Locomotion
type Combat struct {
	Active bool
	Next   AttackSlot // Slot used by the next landed attack
	Pose   AttackSlot // Pose currently held, NoAttack once the cooldown expires
}

// Reset leaves combat: no pose held and the cycle restarts at the first slot
func (c *Combat) Reset() {
	c.Active = false
	c.Next = AttackRightPunch
	c.Pose = NoAttack
}
