package system

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/younwookim/locomotion/internal/domain/entity"
)

// Animator parameter names
const (
	ParamWalking     = "IsWalking"
	ParamRunning     = "IsRunning"
	ParamJumping     = "IsJumping"
	ParamFalling     = "IsFalling"
	ParamGrounded    = "IsGrounded"
	ParamVaulting    = "IsVaulting"
	ParamCrouchMode  = "CrouchMode"
	ParamCrouchSneak = "CrouchP"
	ParamCrouchStand = "CrouchS"
	ParamCombat      = "Combat"
	ParamRightPunch  = "RPunch"
	ParamLeftPunch   = "LPunch"
	ParamKick        = "Kick"
	TriggerVault     = "VaultTrigger"
)

// Param is one animator bool as last written
type Param struct {
	Name  string
	Value bool
}

// AnimationAdapter is the only writer to the animation sink. It projects
// the character state onto animator bools and forwards only changes.
type AnimationAdapter struct {
	sink   AnimationSink
	params *orderedmap.OrderedMap[string, bool]
}

// NewAnimationAdapter creates an adapter. A nil sink turns every write
// into a no-op; the parameter table is still tracked.
func NewAnimationAdapter(sink AnimationSink) *AnimationAdapter {
	return &AnimationAdapter{
		sink:   sink,
		params: orderedmap.NewOrderedMap[string, bool](),
	}
}

// Reset writes the activation defaults: grounded, everything else off
func (a *AnimationAdapter) Reset() {
	for _, name := range []string{
		ParamWalking, ParamRunning, ParamJumping, ParamFalling, ParamVaulting,
		ParamCrouchMode, ParamCrouchSneak, ParamCrouchStand,
		ParamCombat, ParamRightPunch, ParamLeftPunch, ParamKick,
	} {
		a.write(name, false)
	}
	a.write(ParamGrounded, true)
}

// Sync projects the character onto the animator. Nothing is written while
// vaulting; the vault owns its animation.
func (a *AnimationAdapter) Sync(c *entity.Character) {
	if c.IsVaulting() {
		return
	}

	airborne := c.IsJumping() || c.IsFalling()
	moving := !airborne && !c.InCombat()

	a.set(ParamWalking, moving && c.IsWalking())
	a.set(ParamRunning, moving && c.IsRunning())
	a.set(ParamJumping, c.IsJumping())
	a.set(ParamFalling, c.IsFalling())
	a.set(ParamGrounded, c.Grounded && c.Locomotion == entity.LocomotionGrounded)
	a.set(ParamVaulting, false)

	a.set(ParamCrouchMode, c.Crouching)
	a.set(ParamCrouchSneak, c.Crouching && c.IsSneaking())
	a.set(ParamCrouchStand, c.IsRecovering())

	a.set(ParamCombat, c.InCombat())
	a.set(ParamRightPunch, c.Combat.Pose == entity.AttackRightPunch)
	a.set(ParamLeftPunch, c.Combat.Pose == entity.AttackLeftPunch)
	a.set(ParamKick, c.Combat.Pose == entity.AttackKick)
}

// VaultStarted fires the vault trigger and clears every other motion flag
func (a *AnimationAdapter) VaultStarted() {
	if a.sink != nil {
		a.sink.ResetTrigger(TriggerVault)
		a.sink.SetTrigger(TriggerVault)
	}

	a.set(ParamVaulting, true)
	for _, name := range []string{
		ParamWalking, ParamRunning, ParamJumping, ParamFalling, ParamGrounded,
		ParamCrouchMode, ParamCrouchSneak, ParamCrouchStand,
		ParamCombat, ParamRightPunch, ParamLeftPunch, ParamKick,
	} {
		a.set(name, false)
	}
}

// VaultFinished clears the vault flag and settles on grounded idle
func (a *AnimationAdapter) VaultFinished() {
	a.set(ParamVaulting, false)
	a.set(ParamWalking, false)
	a.set(ParamRunning, false)
	a.set(ParamJumping, false)
	a.set(ParamFalling, false)
	a.set(ParamGrounded, true)
}

// Get returns the last written value of a parameter
func (a *AnimationAdapter) Get(name string) (bool, bool) {
	return a.params.Get(name)
}

// Params returns every parameter in first-write order
func (a *AnimationAdapter) Params() []Param {
	out := make([]Param, 0, a.params.Len())
	for _, name := range a.params.Keys() {
		value, _ := a.params.Get(name)
		out = append(out, Param{Name: name, Value: value})
	}
	return out
}

// set forwards a value only when it differs from the last one written
func (a *AnimationAdapter) set(name string, value bool) {
	if prev, ok := a.params.Get(name); ok && prev == value {
		return
	}
	a.write(name, value)
}

func (a *AnimationAdapter) write(name string, value bool) {
	a.params.Set(name, value)
	if a.sink != nil {
		a.sink.SetBool(name, value)
	}
}
