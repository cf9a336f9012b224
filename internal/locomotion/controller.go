package locomotion

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/lowpoly/internal/physics"
)

const (
	DefaultSpeedWalking = 5.0
	DefaultSpeedRunning = 9.0
)

// Controller turns movement intent into a planar velocity. Velocity is written
// directly each step with no acceleration; vertical motion belongs to gravity.
type Controller struct {
	SpeedWalking float64
	SpeedRunning float64
}

func NewController(walking, running float64) Controller {
	return Controller{SpeedWalking: walking, SpeedRunning: running}
}

func (c Controller) ComputeVelocity(input mgl64.Vec2, running bool, orientation mgl64.Quat) physics.Vec3 {
	movement := physics.Vec3{input.X(), 0, input.Y()}
	if running {
		movement = movement.Mul(c.SpeedRunning)
	} else {
		movement = movement.Mul(c.SpeedWalking)
	}
	movement = orientation.Rotate(movement)
	return physics.Vec3{movement.X(), 0, movement.Z()}
}

// YawRotation returns the facing for a yaw in degrees. +Z is forward at yaw 0 and
// yaw 90 faces +X.
func YawRotation(yawDeg float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(yawDeg), physics.Up)
}

func planarSpeedSquared(v physics.Vec3) float64 {
	return v.X()*v.X() + v.Z()*v.Z()
}
