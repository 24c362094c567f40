package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/domain/physics"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// LocomotionSystem handles grounding, jumping, crouching and the
// fixed-tick movement of a character.
type LocomotionSystem struct {
	config *config.ControllerConfig
	char   *entity.Character
	body   physics.Body
	probe  *ProbeSystem
	timers *TimerBank
	combat *CombatSystem
	camera CameraRig
	log    logrus.FieldLogger
}

// NewLocomotionSystem creates a new locomotion system. camera may be nil.
func NewLocomotionSystem(
	cfg *config.ControllerConfig,
	char *entity.Character,
	body physics.Body,
	probe *ProbeSystem,
	timers *TimerBank,
	combat *CombatSystem,
	camera CameraRig,
	log logrus.FieldLogger,
) *LocomotionSystem {
	return &LocomotionSystem{
		config: cfg,
		char:   char,
		body:   body,
		probe:  probe,
		timers: timers,
		combat: combat,
		camera: camera,
		log:    log,
	}
}

// UpdateGround refreshes the grounded flag and the airborne transitions
func (s *LocomotionSystem) UpdateGround() {
	c := s.char
	grounded := s.probe.CheckGround()
	c.Grounded = grounded

	switch c.Locomotion {
	case entity.LocomotionJumping:
		if !grounded {
			c.Airborne = true
			return
		}
		// A jump lands once it has left the ground or started to descend
		if c.Airborne || s.body.Velocity().Y() <= 0 {
			c.Airborne = false
			apply(c, EventLanded, s.log)
		}
	case entity.LocomotionGrounded:
		if !grounded {
			apply(c, EventLostGround, s.log)
		}
	case entity.LocomotionFalling:
		if grounded {
			apply(c, EventLanded, s.log)
		}
	}
}

// UpdateJump buffers jump presses and fires the jump once it can
func (s *LocomotionSystem) UpdateJump(in Intent) {
	c := s.char
	if in.JumpPressed {
		if c.InCombat() {
			s.combat.Exit("jump")
		}
		s.timers.Arm(TimerJumpBuffer, s.config.Timing.JumpBuffer)
	}

	if !c.JumpBuffer.Active() {
		return
	}
	if !c.Grounded || c.IsJumping() || c.IsVaulting() || c.Crouching {
		return
	}
	s.jump()
}

func (s *LocomotionSystem) jump() {
	c := s.char
	if !apply(c, EventJumped, s.log) {
		return
	}

	v := s.body.Velocity()
	s.body.SetVelocity(mgl64.Vec3{v.X(), 0, v.Z()})
	s.body.AddForce(entity.Up.Mul(s.config.Movement.JumpForce), physics.ForceImpulse)

	c.Airborne = false
	s.timers.Clear(TimerJumpBuffer)
}

// UpdateCrouch toggles crouch on the crouch press. Standing up plays the
// recovery.
func (s *LocomotionSystem) UpdateCrouch(in Intent) {
	if !in.CrouchPressed {
		return
	}

	c := s.char
	if c.InCombat() {
		s.combat.Exit("crouch")
	}

	if c.Crouching {
		c.Crouching = false
		if c.Gait == entity.GaitSneak {
			c.Gait = entity.GaitIdle
		}
		s.timers.Arm(TimerCrouchRecovery, s.config.Timing.CrouchRecovery)
		s.log.Debug("stand up")
		return
	}

	c.Crouching = true
	s.log.Debug("crouch")
}

// FixedUpdate turns the character towards the camera-relative input and
// drives its horizontal velocity.
func (s *LocomotionSystem) FixedUpdate(in Intent, dt float64) {
	c := s.char
	m := s.config.Movement
	sprint := in.Sprint && !c.Crouching

	speed := m.WalkSpeed
	switch {
	case c.Crouching:
		speed = m.CrouchSpeed
	case sprint:
		speed = m.RunSpeed
	}

	if !in.Moving(s.config.Input.Deadzone) {
		c.MoveDirection = mgl64.Vec3{}
		c.Gait = entity.GaitIdle
		s.applyMovement(0)
		return
	}

	target := mgl64.RadToDeg(math.Atan2(in.Move.X(), in.Move.Y())) + s.cameraYaw()
	c.MoveDirection = entity.YawRotation(target).Rotate(entity.Forward)

	s.rotate(target, dt)
	s.applyMovement(speed)

	switch {
	case c.Crouching:
		c.Gait = entity.GaitSneak
	case sprint:
		c.Gait = entity.GaitRun
	default:
		c.Gait = entity.GaitWalk
	}
}

func (s *LocomotionSystem) rotate(yaw, dt float64) {
	cur := s.body.Rotation()
	target := entity.YawRotation(yaw)
	if cur.Dot(target) < 0 {
		target = target.Scale(-1)
	}
	t := mgl64.Clamp(s.config.Movement.RotationSpeed*dt, 0, 1)
	s.body.SetRotation(mgl64.QuatSlerp(cur, target, t))
}

// applyMovement changes the horizontal velocity to MoveDirection*speed in
// one step. Vertical velocity is left to physics.
func (s *LocomotionSystem) applyMovement(speed float64) {
	desired := s.char.MoveDirection.Mul(speed)
	current := entity.Horizontal(s.body.Velocity())
	change := entity.Horizontal(desired.Sub(current))
	s.body.AddForce(change, physics.ForceVelocityChange)
}

func (s *LocomotionSystem) cameraYaw() float64 {
	if s.camera == nil {
		return 0
	}
	return s.camera.Yaw()
}
