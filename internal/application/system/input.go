package system

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// InputSystem samples an InputSource into an Intent
type InputSystem struct {
	source InputSource
}

// NewInputSystem creates a new input system. A nil source yields empty intents.
func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

// Sample reads the source once
func (s *InputSystem) Sample() Intent {
	if s.source == nil {
		return Intent{}
	}

	move := s.source.Axis()
	mag := move.Len()
	if mag > 1 {
		move = move.Mul(1 / mag)
		mag = 1
	}

	return Intent{
		Move:          move,
		Magnitude:     mag,
		Sprint:        s.source.Held(entity.ButtonSprint),
		Crouch:        s.source.Held(entity.ButtonCrouch),
		Jump:          s.source.Held(entity.ButtonJump),
		Attack:        s.source.Held(entity.ButtonAttack),
		CrouchPressed: s.source.Pressed(entity.ButtonCrouch),
		JumpPressed:   s.source.Pressed(entity.ButtonJump),
		AttackPressed: s.source.Pressed(entity.ButtonAttack),
	}
}

// Binding is a device key or mouse button bound to a logical button
type Binding struct {
	Key     ebiten.Key
	Mouse   ebiten.MouseButton
	IsMouse bool
}

// ParseBinding parses an ebiten key name or MouseLeft / MouseRight / MouseMiddle
func ParseBinding(name string) (Binding, error) {
	switch strings.ToLower(name) {
	case "mouseleft", "mouse0":
		return Binding{Mouse: ebiten.MouseButtonLeft, IsMouse: true}, nil
	case "mouseright", "mouse1":
		return Binding{Mouse: ebiten.MouseButtonRight, IsMouse: true}, nil
	case "mousemiddle", "mouse2":
		return Binding{Mouse: ebiten.MouseButtonMiddle, IsMouse: true}, nil
	}

	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		return Binding{}, fmt.Errorf("failed to parse key binding %q: %w", name, err)
	}
	return Binding{Key: key}, nil
}

// KeyboardSource reads WASD / arrow keys and the configured bindings from ebiten
type KeyboardSource struct {
	binds [4]Binding
}

var _ InputSource = (*KeyboardSource)(nil)

// NewKeyboardSource creates a keyboard source from key bindings
func NewKeyboardSource(cfg config.KeyBindsConfig) (*KeyboardSource, error) {
	names := [4]string{
		entity.ButtonSprint: cfg.Sprint,
		entity.ButtonCrouch: cfg.Crouch,
		entity.ButtonJump:   cfg.Jump,
		entity.ButtonAttack: cfg.Attack,
	}

	k := &KeyboardSource{}
	for i, name := range names {
		b, err := ParseBinding(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entity.Button(i), err)
		}
		k.binds[i] = b
	}
	return k, nil
}

// Axis returns the movement keys as a vector
func (k *KeyboardSource) Axis() mgl64.Vec2 {
	var x, y float64
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		x++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		x--
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		y--
	}
	return mgl64.Vec2{x, y}
}

// Held reports whether the bound key is down
func (k *KeyboardSource) Held(b entity.Button) bool {
	bind, ok := k.binding(b)
	if !ok {
		return false
	}
	if bind.IsMouse {
		return ebiten.IsMouseButtonPressed(bind.Mouse)
	}
	return ebiten.IsKeyPressed(bind.Key)
}

// Pressed reports whether the bound key went down this tick
func (k *KeyboardSource) Pressed(b entity.Button) bool {
	bind, ok := k.binding(b)
	if !ok {
		return false
	}
	if bind.IsMouse {
		return inpututil.IsMouseButtonJustPressed(bind.Mouse)
	}
	return inpututil.IsKeyJustPressed(bind.Key)
}

func (k *KeyboardSource) binding(b entity.Button) (Binding, bool) {
	if b < 0 || int(b) >= len(k.binds) {
		return Binding{}, false
	}
	return k.binds[b], true
}
