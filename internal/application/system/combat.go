package system

import (
	"github.com/sirupsen/logrus"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// CombatSystem runs the three-step attack cycle
type CombatSystem struct {
	config *config.ControllerConfig
	char   *entity.Character
	timers *TimerBank
	log    logrus.FieldLogger

	// Event callbacks
	OnAttack func(slot entity.AttackSlot)
	OnExit   func(reason string)
}

// NewCombatSystem creates a new combat system. The attack cooldown's
// completion releases the held pose.
func NewCombatSystem(cfg *config.ControllerConfig, char *entity.Character, timers *TimerBank, log logrus.FieldLogger) *CombatSystem {
	s := &CombatSystem{
		config: cfg,
		char:   char,
		timers: timers,
		log:    log,
	}
	timers.OnExpire(TimerAttackCooldown, s.releasePose)
	return s
}

// Update handles movement exit and attack input for one frame.
// Nothing happens while the cooldown runs or the character is off the ground.
func (s *CombatSystem) Update(in Intent) {
	c := s.char
	if c.IsVaulting() || c.IsJumping() || c.IsFalling() || c.AttackCooldown.Active() {
		return
	}

	if c.InCombat() && (in.Moving(s.config.Input.Deadzone) || in.Sprint) {
		s.Exit("movement")
		return
	}

	if in.AttackPressed && c.Grounded {
		s.attack()
	}
}

// Exit leaves combat: pose cleared, cycle restarted, cooldown zeroed
func (s *CombatSystem) Exit(reason string) {
	wasActive := s.char.InCombat()
	s.char.Combat.Reset()
	s.timers.Clear(TimerAttackCooldown)

	if !wasActive {
		return
	}
	s.log.WithField("reason", reason).Debug("combat exit")
	if s.OnExit != nil {
		s.OnExit(reason)
	}
}

func (s *CombatSystem) attack() {
	cb := &s.char.Combat
	slot := cb.Next

	cb.Active = true
	cb.Pose = slot
	cb.Next = slot.Next()
	s.timers.Arm(TimerAttackCooldown, s.config.AttackCooldown(slot))

	s.log.WithFields(logrus.Fields{
		"slot":     slot,
		"cooldown": s.config.AttackCooldown(slot),
	}).Debug("attack")
	if s.OnAttack != nil {
		s.OnAttack(slot)
	}
}

func (s *CombatSystem) releasePose() {
	s.char.Combat.Pose = entity.NoAttack
}
