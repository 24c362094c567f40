package replay

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/application/system"
	"github.com/younwookim/locomotion/internal/domain/entity"
)

// FrameInput records input state for a single frame.
// It also serves as the InputSource and CameraRig a controller reads
// during that frame.
type FrameInput struct {
	F   int     `json:"f"`             // Frame number
	X   float64 `json:"x,omitempty"`   // Axis right
	Y   float64 `json:"y,omitempty"`   // Axis forward
	Sp  bool    `json:"sp,omitempty"`  // Sprint held
	Cr  bool    `json:"cr,omitempty"`  // Crouch held
	J   bool    `json:"j,omitempty"`   // Jump held
	A   bool    `json:"a,omitempty"`   // Attack held
	CrP bool    `json:"crp,omitempty"` // CrouchPressed
	JP  bool    `json:"jp,omitempty"`  // JumpPressed
	AP  bool    `json:"ap,omitempty"`  // AttackPressed
	Cam float64 `json:"cam,omitempty"` // Camera yaw in degrees
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Arena     string       `json:"arena"`
	StartTime string       `json:"startTime"`
	FrameRate int          `json:"frameRate"`
	Checksum  string       `json:"checksum,omitempty"` // Trajectory checksum at the last frame
	Frames    []FrameInput `json:"frames"`
}

// Axis returns the recorded movement axis
func (f *FrameInput) Axis() mgl64.Vec2 {
	return mgl64.Vec2{f.X, f.Y}
}

// Held returns the recorded held state of a button
func (f *FrameInput) Held(b entity.Button) bool {
	switch b {
	case entity.ButtonSprint:
		return f.Sp
	case entity.ButtonCrouch:
		return f.Cr
	case entity.ButtonJump:
		return f.J
	case entity.ButtonAttack:
		return f.A
	}
	return false
}

// Pressed returns the recorded press edge of a button
func (f *FrameInput) Pressed(b entity.Button) bool {
	switch b {
	case entity.ButtonCrouch:
		return f.CrP
	case entity.ButtonJump:
		return f.JP
	case entity.ButtonAttack:
		return f.AP
	}
	return false
}

// Yaw returns the recorded camera heading
func (f *FrameInput) Yaw() float64 {
	return f.Cam
}

var (
	_ system.InputSource = (*FrameInput)(nil)
	_ system.CameraRig   = (*FrameInput)(nil)
)

// Capture reads every input of src and the camera heading once.
// Either may be nil.
func Capture(frame int, src system.InputSource, cam system.CameraRig) FrameInput {
	fi := FrameInput{F: frame}
	if cam != nil {
		fi.Cam = cam.Yaw()
	}
	if src == nil {
		return fi
	}
	axis := src.Axis()
	return FrameInput{
		F:   frame,
		X:   axis.X(),
		Y:   axis.Y(),
		Sp:  src.Held(entity.ButtonSprint),
		Cr:  src.Held(entity.ButtonCrouch),
		J:   src.Held(entity.ButtonJump),
		A:   src.Held(entity.ButtonAttack),
		CrP: src.Pressed(entity.ButtonCrouch),
		JP:  src.Pressed(entity.ButtonJump),
		AP:  src.Pressed(entity.ButtonAttack),
		Cam: fi.Cam,
	}
}
