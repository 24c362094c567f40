package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
)

// AnimationSink receives named animation parameters. Calls are fire-and-forget.
type AnimationSink interface {
	SetBool(name string, value bool)
	SetTrigger(name string)
	ResetTrigger(name string)
}

// InputSource is polled once per visual frame
type InputSource interface {
	// Axis returns the two-axis movement input, x right and y forward
	Axis() mgl64.Vec2
	// Held reports whether the button is down
	Held(b entity.Button) bool
	// Pressed reports whether the button went down this frame
	Pressed(b entity.Button) bool
}

// CameraRig provides the heading movement input is relative to
type CameraRig interface {
	// Yaw returns the camera heading in degrees around the up axis
	Yaw() float64
}
