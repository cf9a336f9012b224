package character

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/lowpoly/internal/physics"
)

// Camera is the first-person view rig. Yaw turns about +Y (0 faces +Z, 90
// faces +X); positive pitch looks down.
type Camera struct {
	yaw         float64
	pitch       float64
	eyeHeight   float64
	sensitivity float64
	pitchLimit  float64
	position    physics.Vec3
}

func NewCamera(eyeHeight, sensitivity, pitchLimit float64) *Camera {
	if sensitivity <= 0 {
		sensitivity = 1
	}
	if pitchLimit <= 0 || pitchLimit > 90 {
		pitchLimit = 90
	}
	return &Camera{eyeHeight: eyeHeight, sensitivity: sensitivity, pitchLimit: pitchLimit}
}

// Look applies look deltas in degrees.
func (c *Camera) Look(dYaw, dPitch float64) {
	c.yaw = normalizeYaw(c.yaw + dYaw*c.sensitivity)
	c.pitch = clampPitch(c.pitch+dPitch*c.sensitivity, c.pitchLimit)
}

// SetAngles sets the view angles directly.
func (c *Camera) SetAngles(yaw, pitch float64) {
	c.yaw = normalizeYaw(yaw)
	c.pitch = clampPitch(pitch, c.pitchLimit)
}

// LookAt turns the camera toward a world point.
func (c *Camera) LookAt(target physics.Vec3) {
	d := target.Sub(c.position)
	yaw := math.Atan2(d.X(), d.Z()) * 180 / math.Pi
	horizontal := math.Hypot(d.X(), d.Z())
	pitch := -math.Atan2(d.Y(), horizontal) * 180 / math.Pi
	c.SetAngles(yaw, pitch)
}

// Follow places the eye above the feet of bounds.
func (c *Camera) Follow(bounds physics.AABB) {
	centre := bounds.Center()
	c.position = physics.Vec3{centre.X(), bounds.Min.Y() + c.eyeHeight, centre.Z()}
}

func (c *Camera) Yaw() float64   { return c.yaw }
func (c *Camera) Pitch() float64 { return c.pitch }

func (c *Camera) Position() physics.Vec3 {
	return c.position
}

// Facing is the yaw-only orientation the legs move along.
func (c *Camera) Facing() mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(c.yaw), physics.Up)
}

func (c *Camera) Rotation() mgl64.Quat {
	pitch := mgl64.QuatRotate(mgl64.DegToRad(c.pitch), physics.Vec3{1, 0, 0})
	return c.Facing().Mul(pitch)
}

func (c *Camera) Forward() physics.Vec3 {
	return lookDir(c.yaw, c.pitch)
}

func lookDir(yaw, pitch float64) physics.Vec3 {
	yawRad := yaw * math.Pi / 180.0
	pitchRad := pitch * math.Pi / 180.0
	x := math.Sin(yawRad) * math.Cos(pitchRad)
	y := -math.Sin(pitchRad)
	z := math.Cos(yawRad) * math.Cos(pitchRad)
	return physics.Vec3{x, y, z}
}

func normalizeYaw(yaw float64) float64 {
	for yaw <= -180 {
		yaw += 360
	}
	for yaw > 180 {
		yaw -= 360
	}
	return yaw
}

func clampPitch(pitch, limit float64) float64 {
	if pitch < -limit {
		return -limit
	}
	if pitch > limit {
		return limit
	}
	return pitch
}
