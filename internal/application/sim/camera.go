package sim

import "github.com/younwookim/locomotion/internal/infrastructure/config"

// Camera is an orbit camera reduced to its heading
type Camera struct {
	yaw       float64
	turnSpeed float64
}

// NewCamera creates a camera from arena config
func NewCamera(cfg config.CameraConfig) *Camera {
	speed := cfg.TurnSpeed
	if speed <= 0 {
		speed = 90
	}
	return &Camera{yaw: cfg.Yaw, turnSpeed: speed}
}

// Yaw returns the heading in degrees
func (c *Camera) Yaw() float64 {
	return c.yaw
}

// Turn rotates the camera; dir is -1, 0 or 1
func (c *Camera) Turn(dir, dt float64) {
	c.yaw += dir * c.turnSpeed * dt
	for c.yaw >= 360 {
		c.yaw -= 360
	}
	for c.yaw < 0 {
		c.yaw += 360
	}
}
