package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/domain/physics"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// Vaults shorter than this, or with no finite duration, complete on their
// first tick
const minVaultDuration = 1e-6

// KinematicLease holds a body in kinematic mode. Release restores dynamic
// mode and is safe to call more than once.
type KinematicLease struct {
	body physics.Body
	held bool
}

// AcquireKinematic stops the body and switches it to kinematic mode
func AcquireKinematic(body physics.Body) *KinematicLease {
	body.SetVelocity(mgl64.Vec3{})
	body.SetKinematic(true)
	return &KinematicLease{body: body, held: true}
}

// Held reports whether the lease has not been released yet
func (l *KinematicLease) Held() bool {
	return l != nil && l.held
}

// Release hands the body back to physics
func (l *KinematicLease) Release() {
	if !l.Held() {
		return
	}
	l.held = false
	l.body.SetKinematic(false)
}

// VaultSystem detects vault opportunities and moves the body along the
// vault arc while the character is vaulting.
type VaultSystem struct {
	config *config.ControllerConfig
	char   *entity.Character
	body   physics.Body
	probe  *ProbeSystem
	timers *TimerBank
	combat *CombatSystem
	anim   *AnimationAdapter
	lease  *KinematicLease
	log    logrus.FieldLogger
}

// NewVaultSystem creates a new vault system
func NewVaultSystem(
	cfg *config.ControllerConfig,
	char *entity.Character,
	body physics.Body,
	probe *ProbeSystem,
	timers *TimerBank,
	combat *CombatSystem,
	anim *AnimationAdapter,
	log logrus.FieldLogger,
) *VaultSystem {
	return &VaultSystem{
		config: cfg,
		char:   char,
		body:   body,
		probe:  probe,
		timers: timers,
		combat: combat,
		anim:   anim,
		log:    log,
	}
}

// Detect starts a vault when the character is free to vault and the probe
// finds a target.
func (s *VaultSystem) Detect() bool {
	c := s.char
	if c.IsVaulting() || c.IsJumping() || c.IsFalling() || !c.Grounded || c.Crouching || c.InCombat() {
		return false
	}

	landing, ok := s.probe.DetectVaultTarget()
	if !ok {
		return false
	}
	return s.Begin(landing)
}

// Begin starts a vault from the body's position to landing
func (s *VaultSystem) Begin(landing mgl64.Vec3) bool {
	c := s.char
	if !apply(c, EventVaultStarted, s.log) {
		return false
	}

	s.combat.Exit("vault")

	start := s.body.Position()
	c.Vault = entity.VaultPath{
		Start:    start,
		End:      landing,
		Duration: landing.Sub(start).Len() / s.config.Vault.Speed,
	}
	c.Gait = entity.GaitIdle
	c.MoveDirection = mgl64.Vec3{}
	s.timers.Clear(TimerJumpBuffer)

	s.lease = AcquireKinematic(s.body)
	s.anim.VaultStarted()

	s.log.WithFields(logrus.Fields{
		"start":    start,
		"end":      landing,
		"duration": c.Vault.Duration,
	}).Debug("vault start")
	return true
}

// Progress returns how far along the current vault is, in [0, 1]
func (s *VaultSystem) Progress() float64 {
	v := s.char.Vault
	if !(v.Duration > minVaultDuration) || math.IsInf(v.Duration, 0) {
		return 1
	}
	return mgl64.Clamp(v.Elapsed/v.Duration, 0, 1)
}

// FixedUpdate advances the vault by one physics tick. A panic while the
// body is leased releases the lease before propagating.
func (s *VaultSystem) FixedUpdate(dt float64) {
	c := s.char
	if !c.IsVaulting() {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.Abort()
			panic(r)
		}
	}()

	c.Vault.Elapsed += dt
	p := s.Progress()
	if p >= 1 {
		s.body.MovePosition(c.Vault.End)
		s.finish()
		return
	}
	s.body.MovePosition(ArcPosition(c.Vault.Start, c.Vault.End, p, s.config.Vault.ArcHeight))
}

// ArcPosition returns the point at progress p on the vault arc
func ArcPosition(start, end mgl64.Vec3, p, arcHeight float64) mgl64.Vec3 {
	line := start.Add(end.Sub(start).Mul(p))
	return line.Add(entity.Up.Mul(math.Sin(p*math.Pi) * arcHeight))
}

func (s *VaultSystem) finish() {
	c := s.char
	s.lease.Release()
	apply(c, EventVaultFinished, s.log)
	c.Grounded = true
	c.Airborne = false
	s.anim.VaultFinished()
	s.log.WithField("position", s.body.Position()).Debug("vault finish")
}

// Abort ends an in-progress vault without reaching its landing point and
// hands the body back to physics.
func (s *VaultSystem) Abort() {
	s.lease.Release()
	if apply(s.char, EventVaultAborted, s.log) {
		s.anim.VaultFinished()
		s.log.Warn("vault aborted")
	}
}
