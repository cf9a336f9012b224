package physics

const (
	DefaultGravity = -9.81

	CollisionTolerance = 1e-9

	// DefaultProjectileLifetime bounds how long an unobstructed projectile is simulated, in seconds.
	DefaultProjectileLifetime = 5.0
)
