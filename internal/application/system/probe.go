package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/domain/physics"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// Landing ray starts this far above the maximum vault height
const landingRayClearance = 0.1

// ProbeSystem answers the ground and vault-target questions.
// It never mutates the character or the body.
type ProbeSystem struct {
	config  *config.ControllerConfig
	probe   physics.Probe
	body    physics.Body
	capsule entity.Capsule
}

// NewProbeSystem creates a new probe system
func NewProbeSystem(cfg *config.ControllerConfig, probe physics.Probe, body physics.Body) *ProbeSystem {
	return &ProbeSystem{
		config:  cfg,
		probe:   probe,
		body:    body,
		capsule: cfg.Capsule(),
	}
}

// CheckGround casts a sphere slightly narrower than the capsule down from
// its lower hemisphere centre.
func (s *ProbeSystem) CheckGround() bool {
	origin := s.capsule.LowerSphereCenter(s.body.Position())
	_, ok := s.probe.SphereCast(
		origin,
		s.capsule.Radius*0.9,
		entity.Up.Mul(-1),
		s.config.Movement.GroundCheckDistance,
		s.config.GroundMask,
	)
	return ok
}

// Forward returns the body's horizontal facing
func (s *ProbeSystem) Forward() mgl64.Vec3 {
	fwd := entity.Horizontal(s.body.Rotation().Rotate(entity.Forward))
	if fwd.Len() < 1e-9 {
		return entity.Forward
	}
	return fwd.Normalize()
}

// DetectVaultTarget looks for an obstacle in the vaultable height band ahead
// and a walkable landing point beyond it. It returns the landing point.
func (s *ProbeSystem) DetectVaultTarget() (mgl64.Vec3, bool) {
	v := s.config.Vault
	pos := s.body.Position()
	fwd := s.Forward()
	r := s.capsule.Radius

	obstacle, ok := s.probe.CapsuleCast(
		pos.Add(entity.Up.Mul(v.MinHeight)),
		pos.Add(entity.Up.Mul(v.MaxHeight)),
		r*0.5,
		fwd,
		v.CheckDistance,
		v.ObstacleMask,
	)
	if !ok {
		return mgl64.Vec3{}, false
	}

	height := obstacle.Point.Y() - pos.Y()
	if height < v.MinHeight || height > v.MaxHeight {
		return mgl64.Vec3{}, false
	}

	depth := math.Abs(fwd.X())*obstacle.Bounds.X() + math.Abs(fwd.Z())*obstacle.Bounds.Z()
	over := obstacle.Point.Add(fwd.Mul(2*r + depth))

	landing, ok := s.probe.Raycast(
		over.Add(entity.Up.Mul(v.MaxHeight+landingRayClearance)),
		entity.Up.Mul(-1),
		2*v.MaxHeight,
		v.LandingMask,
	)
	if !ok {
		return mgl64.Vec3{}, false
	}

	if slopeAngle(landing.Normal) >= v.MaxLandingSlope {
		return mgl64.Vec3{}, false
	}

	return landing.Point, true
}

// slopeAngle returns the angle between n and up in degrees
func slopeAngle(n mgl64.Vec3) float64 {
	if n.Len() < 1e-9 {
		return 90
	}
	cos := mgl64.Clamp(n.Normalize().Dot(entity.Up), -1, 1)
	return mgl64.RadToDeg(math.Acos(cos))
}
