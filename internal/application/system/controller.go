package system

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/domain/physics"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

var (
	ErrMissingBody   = errors.New("controller: physics body is required")
	ErrMissingProbe  = errors.New("controller: physics probe is required")
	ErrMissingConfig = errors.New("controller: config is required")
)

// Dependencies are the collaborators a controller drives or reads.
// Input, Animation and Camera are optional.
type Dependencies struct {
	Body      physics.Body
	Probe     physics.Probe
	Input     InputSource
	Animation AnimationSink
	Camera    CameraRig
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger transitions and vault events are written to
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// Controller coordinates the subsystems of one character. Update runs once
// per visual frame and FixedUpdate once per physics tick, both on the
// caller's goroutine.
type Controller struct {
	config *config.ControllerConfig
	char   *entity.Character
	body   physics.Body
	intent Intent
	log    logrus.FieldLogger

	input      *InputSystem
	probe      *ProbeSystem
	timers     *TimerBank
	combat     *CombatSystem
	locomotion *LocomotionSystem
	vault      *VaultSystem
	anim       *AnimationAdapter
}

// New validates cfg, creates a controller and writes the activation
// animation defaults
func New(cfg *config.ControllerConfig, deps Dependencies, opts ...Option) (*Controller, error) {
	if cfg == nil {
		return nil, ErrMissingConfig
	}
	if deps.Body == nil {
		return nil, ErrMissingBody
	}
	if deps.Probe == nil {
		return nil, ErrMissingProbe
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	c := &Controller{
		config: cfg,
		char:   entity.NewCharacter(cfg.Capsule()),
		body:   deps.Body,
		log:    quiet,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithField("component", "controller")

	c.input = NewInputSystem(deps.Input)
	c.probe = NewProbeSystem(cfg, deps.Probe, deps.Body)
	c.timers = NewTimerBank(c.char)
	c.combat = NewCombatSystem(cfg, c.char, c.timers, c.log)
	c.locomotion = NewLocomotionSystem(cfg, c.char, deps.Body, c.probe, c.timers, c.combat, deps.Camera, c.log)
	c.anim = NewAnimationAdapter(deps.Animation)
	c.vault = NewVaultSystem(cfg, c.char, deps.Body, c.probe, c.timers, c.combat, c.anim, c.log)

	c.anim.Reset()
	return c, nil
}

// Update runs the per-frame logic. It does nothing while vaulting.
func (c *Controller) Update(dt float64) {
	if c.char.IsVaulting() {
		return
	}

	c.locomotion.UpdateGround()
	c.intent = c.input.Sample()
	c.timers.Advance(dt)
	c.locomotion.UpdateJump(c.intent)
	c.locomotion.UpdateCrouch(c.intent)
	c.combat.Update(c.intent)
	c.vault.Detect()
	c.anim.Sync(c.char)
}

// FixedUpdate runs one physics tick. Exactly one of the vault or movement
// logic writes to the body; neither does while in combat.
func (c *Controller) FixedUpdate(dt float64) {
	switch {
	case c.char.IsVaulting():
		c.vault.FixedUpdate(dt)
	case !c.char.InCombat():
		c.locomotion.FixedUpdate(c.intent, dt)
	}
}

// Close releases the body if a vault is in progress
func (c *Controller) Close() error {
	c.vault.Abort()
	return nil
}

// State returns a copy of the character state
func (c *Controller) State() entity.Character {
	return *c.char
}

// Intent returns the input sampled by the last Update
func (c *Controller) Intent() Intent {
	return c.intent
}

// VaultProgress returns the progress of the current vault in [0, 1]
func (c *Controller) VaultProgress() float64 {
	if !c.char.IsVaulting() {
		return 0
	}
	return c.vault.Progress()
}

// Animation returns the animation adapter
func (c *Controller) Animation() *AnimationAdapter {
	return c.anim
}

// Combat returns the combat system so callers can hook its events
func (c *Controller) Combat() *CombatSystem {
	return c.combat
}
