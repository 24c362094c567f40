package system

import "github.com/younwookim/locomotion/internal/domain/entity"

// TimerID names one of the character's countdowns
type TimerID int

const (
	TimerJumpBuffer TimerID = iota
	TimerCrouchRecovery
	TimerAttackCooldown
	timerCount
)

func (id TimerID) String() string {
	switch id {
	case TimerJumpBuffer:
		return "JumpBuffer"
	case TimerCrouchRecovery:
		return "CrouchRecovery"
	case TimerAttackCooldown:
		return "AttackCooldown"
	default:
		return "Unknown"
	}
}

// TimerBank advances the character's countdowns and runs the completion
// action of each one exactly once when it reaches zero.
type TimerBank struct {
	char     *entity.Character
	onExpire [timerCount]func()
}

// NewTimerBank creates a timer bank over the character's countdowns
func NewTimerBank(char *entity.Character) *TimerBank {
	return &TimerBank{char: char}
}

// OnExpire registers the completion action of a timer
func (b *TimerBank) OnExpire(id TimerID, fn func()) {
	b.onExpire[id] = fn
}

// Arm starts (or restarts) a timer
func (b *TimerBank) Arm(id TimerID, d float64) {
	b.timer(id).Arm(d)
}

// Clear stops a timer without running its completion action
func (b *TimerBank) Clear(id TimerID) {
	b.timer(id).Clear()
}

// Advance ticks every timer by dt
func (b *TimerBank) Advance(dt float64) {
	for id := TimerID(0); id < timerCount; id++ {
		if b.timer(id).Tick(dt) && b.onExpire[id] != nil {
			b.onExpire[id]()
		}
	}
}

func (b *TimerBank) timer(id TimerID) *entity.Countdown {
	switch id {
	case TimerJumpBuffer:
		return &b.char.JumpBuffer
	case TimerCrouchRecovery:
		return &b.char.CrouchRecovery
	default:
		return &b.char.AttackCooldown
	}
}
