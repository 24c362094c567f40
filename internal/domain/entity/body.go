package entity

import "github.com/go-gl/mathgl/mgl64"

// Up is the world up axis. Forward for an unrotated body is +Z.
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
)

// LayerMask selects which collision layers a probe may hit
type LayerMask uint32

// LayerDefault is the layer every collider belongs to unless configured otherwise
const LayerDefault LayerMask = 1

// Has reports whether the mask shares at least one layer with other
func (m LayerMask) Has(other LayerMask) bool {
	return m&other != 0
}

// Capsule is the character's collision shape in body-local space.
// The body origin sits at the character's feet.
type Capsule struct {
	Center mgl64.Vec3 // Offset of the capsule centre from the body origin
	Height float64
	Radius float64
}

// LowerSphereCenter returns the world-space centre of the lower hemisphere
// for a body whose origin is at pos.
func (c Capsule) LowerSphereCenter(pos mgl64.Vec3) mgl64.Vec3 {
	return pos.Add(c.Center).Sub(Up.Mul(c.Height/2 - c.Radius))
}

// HalfExtents returns the half size of the capsule's bounding box
func (c Capsule) HalfExtents() mgl64.Vec3 {
	return mgl64.Vec3{c.Radius, c.Height / 2, c.Radius}
}

// Horizontal drops the vertical component of v
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// YawRotation returns the rotation of yawDeg degrees around the up axis.
// A positive yaw turns +Z towards +X.
func YawRotation(yawDeg float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(yawDeg), Up)
}
