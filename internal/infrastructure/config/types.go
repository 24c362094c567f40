package config

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
)

// ErrInvalid is returned (wrapped) when a config fails validation
var ErrInvalid = errors.New("invalid controller config")

// ControllerConfig is the root config for controller.json / controller.yaml.
// It is loaded once and never mutated at runtime.
type ControllerConfig struct {
	Display    DisplayConfig    `json:"display" yaml:"display"`
	Character  CharacterConfig  `json:"character" yaml:"character"`
	Movement   MovementConfig   `json:"movement" yaml:"movement"`
	Vault      VaultConfig      `json:"vault" yaml:"vault"`
	Timing     TimingConfig     `json:"timing" yaml:"timing"`
	Combat     CombatConfig     `json:"combat" yaml:"combat"`
	Input      InputConfig      `json:"input" yaml:"input"`
	GroundMask entity.LayerMask `json:"groundMask" yaml:"groundMask"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int `json:"screenHeight" yaml:"screenHeight"`
	Scale        int `json:"scale" yaml:"scale"`
	Framerate    int `json:"framerate" yaml:"framerate"`
	PhysicsRate  int `json:"physicsRate" yaml:"physicsRate"` // Fixed ticks per second
}

type CharacterConfig struct {
	Center [3]float64 `json:"center" yaml:"center"` // Capsule centre offset from the feet
	Height float64    `json:"height" yaml:"height"`
	Radius float64    `json:"radius" yaml:"radius"`
	Mass   float64    `json:"mass" yaml:"mass"`
}

type MovementConfig struct {
	WalkSpeed           float64 `json:"walkSpeed" yaml:"walkSpeed"`
	RunSpeed            float64 `json:"runSpeed" yaml:"runSpeed"`
	CrouchSpeed         float64 `json:"crouchSpeed" yaml:"crouchSpeed"`
	RotationSpeed       float64 `json:"rotationSpeed" yaml:"rotationSpeed"`
	JumpForce           float64 `json:"jumpForce" yaml:"jumpForce"`
	GroundCheckDistance float64 `json:"groundCheckDistance" yaml:"groundCheckDistance"`
}

type VaultConfig struct {
	CheckDistance   float64          `json:"checkDistance" yaml:"checkDistance"`
	MinHeight       float64          `json:"minHeight" yaml:"minHeight"`
	MaxHeight       float64          `json:"maxHeight" yaml:"maxHeight"`
	Speed           float64          `json:"speed" yaml:"speed"`
	ArcHeight       float64          `json:"arcHeight" yaml:"arcHeight"`             // Peak of the half-sine hop
	MaxLandingSlope float64          `json:"maxLandingSlope" yaml:"maxLandingSlope"` // Degrees from up
	ObstacleMask    entity.LayerMask `json:"obstacleMask" yaml:"obstacleMask"`
	LandingMask     entity.LayerMask `json:"landingMask" yaml:"landingMask"`
}

type TimingConfig struct {
	JumpBuffer     float64 `json:"jumpBuffer" yaml:"jumpBuffer"`
	CrouchRecovery float64 `json:"crouchRecovery" yaml:"crouchRecovery"`
}

// CombatConfig holds the attack cycle table, one entry per slot
type CombatConfig struct {
	Attacks []AttackConfig `json:"attacks" yaml:"attacks"`
}

type AttackConfig struct {
	Name     string  `json:"name" yaml:"name"`
	Cooldown float64 `json:"cooldown" yaml:"cooldown"`
}

type InputConfig struct {
	Deadzone float64        `json:"deadzone" yaml:"deadzone"`
	KeyBinds KeyBindsConfig `json:"keyBinds" yaml:"keyBinds"`
}

// KeyBindsConfig maps logical buttons to device keys.
// Keyboard keys use ebiten key names; mouse buttons are MouseLeft,
// MouseRight and MouseMiddle.
type KeyBindsConfig struct {
	Sprint string `json:"sprint" yaml:"sprint"`
	Crouch string `json:"crouch" yaml:"crouch"`
	Jump   string `json:"jump" yaml:"jump"`
	Attack string `json:"attack" yaml:"attack"`
}

// Default returns the tuning the controller ships with
func Default() *ControllerConfig {
	return &ControllerConfig{
		Display: DisplayConfig{
			ScreenWidth:  480,
			ScreenHeight: 320,
			Scale:        2,
			Framerate:    60,
			PhysicsRate:  50,
		},
		Character: CharacterConfig{
			Center: [3]float64{0, 0.9, 0},
			Height: 1.8,
			Radius: 0.3,
			Mass:   1,
		},
		Movement: MovementConfig{
			WalkSpeed:           4,
			RunSpeed:            8,
			CrouchSpeed:         2,
			RotationSpeed:       10,
			JumpForce:           5,
			GroundCheckDistance: 0.2,
		},
		Vault: VaultConfig{
			CheckDistance:   0.5,
			MinHeight:       0.5,
			MaxHeight:       1.5,
			Speed:           5,
			ArcHeight:       1.5,
			MaxLandingSlope: 45,
			ObstacleMask:    entity.LayerDefault,
			LandingMask:     entity.LayerDefault,
		},
		Timing: TimingConfig{
			JumpBuffer:     0.2,
			CrouchRecovery: 3,
		},
		Combat: CombatConfig{
			Attacks: []AttackConfig{
				{Name: "RPunch", Cooldown: 0.97},
				{Name: "LPunch", Cooldown: 0.97},
				{Name: "Kick", Cooldown: 1.63},
			},
		},
		Input: InputConfig{
			Deadzone: 0.1,
			KeyBinds: KeyBindsConfig{
				Sprint: "ShiftLeft",
				Crouch: "ControlLeft",
				Jump:   "Space",
				Attack: "MouseLeft",
			},
		},
		GroundMask: entity.LayerDefault,
	}
}

// ApplyDefaults fills unset collision masks with the Default layer
func (c *ControllerConfig) ApplyDefaults() {
	if c.GroundMask == 0 {
		c.GroundMask = entity.LayerDefault
	}
	if c.Vault.ObstacleMask == 0 {
		c.Vault.ObstacleMask = entity.LayerDefault
	}
	if c.Vault.LandingMask == 0 {
		c.Vault.LandingMask = entity.LayerDefault
	}
	if c.Vault.MaxLandingSlope == 0 {
		c.Vault.MaxLandingSlope = 45
	}
	if c.Display.PhysicsRate == 0 {
		c.Display.PhysicsRate = 50
	}
	if c.Display.Framerate == 0 {
		c.Display.Framerate = 60
	}
}

// Validate checks the tuning for values the controller cannot run with
func (c *ControllerConfig) Validate() error {
	m := c.Movement
	if m.WalkSpeed <= 0 || m.RunSpeed <= 0 || m.CrouchSpeed <= 0 {
		return fmt.Errorf("%w: movement speeds must be positive", ErrInvalid)
	}
	if m.RotationSpeed <= 0 {
		return fmt.Errorf("%w: rotation speed must be positive", ErrInvalid)
	}
	if m.GroundCheckDistance < 0 {
		return fmt.Errorf("%w: ground check distance must not be negative", ErrInvalid)
	}
	if c.Character.Height <= 0 || c.Character.Radius <= 0 || c.Character.Height < 2*c.Character.Radius {
		return fmt.Errorf("%w: capsule height %.2f / radius %.2f", ErrInvalid, c.Character.Height, c.Character.Radius)
	}
	v := c.Vault
	if v.MinHeight < 0 || v.MinHeight > v.MaxHeight {
		return fmt.Errorf("%w: vault height range [%.2f, %.2f]", ErrInvalid, v.MinHeight, v.MaxHeight)
	}
	if v.Speed <= 0 || v.CheckDistance <= 0 {
		return fmt.Errorf("%w: vault speed and check distance must be positive", ErrInvalid)
	}
	if v.ArcHeight < 0 {
		return fmt.Errorf("%w: vault arc height must not be negative", ErrInvalid)
	}
	if c.Timing.JumpBuffer < 0 || c.Timing.CrouchRecovery < 0 {
		return fmt.Errorf("%w: timings must not be negative", ErrInvalid)
	}
	if len(c.Combat.Attacks) != entity.AttackSlotCount {
		return fmt.Errorf("%w: want %d attacks, got %d", ErrInvalid, entity.AttackSlotCount, len(c.Combat.Attacks))
	}
	for i, a := range c.Combat.Attacks {
		if a.Cooldown < 0 {
			return fmt.Errorf("%w: attack %d (%s) has negative cooldown", ErrInvalid, i, a.Name)
		}
	}
	if c.Input.Deadzone < 0 || c.Input.Deadzone >= 1 {
		return fmt.Errorf("%w: deadzone %.2f outside [0, 1)", ErrInvalid, c.Input.Deadzone)
	}
	return nil
}

// Capsule returns the character collision shape
func (c *ControllerConfig) Capsule() entity.Capsule {
	return entity.Capsule{
		Center: mgl64.Vec3(c.Character.Center),
		Height: c.Character.Height,
		Radius: c.Character.Radius,
	}
}

// AttackCooldown returns the cooldown of the given slot
func (c *ControllerConfig) AttackCooldown(slot entity.AttackSlot) float64 {
	if slot < 0 || int(slot) >= len(c.Combat.Attacks) {
		return 0
	}
	return c.Combat.Attacks[slot].Cooldown
}

// FixedDelta returns the fixed physics timestep in seconds
func (c *ControllerConfig) FixedDelta() float64 {
	return 1.0 / float64(c.Display.PhysicsRate)
}

// FrameDelta returns the visual frame timestep in seconds
func (c *ControllerConfig) FrameDelta() float64 {
	return 1.0 / float64(c.Display.Framerate)
}
