package weapon

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Presenter,ProjectileSpawner,Camera

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/Versifine/lowpoly/internal/physics"
)

// Animation state names requested from the presentation layer.
const (
	AnimFire        = "Fire"
	AnimFireEmpty   = "Fire Empty"
	AnimReload      = "Reload"
	AnimReloadEmpty = "Reload Empty"
	AnimHolster     = "Holster"
	AnimUnholster   = "Unholster"
)

type Cue uint8

const (
	CueFire Cue = iota
	CueFireEmpty
	CueReload
	CueReloadEmpty
	CueHolster
	CueUnholster
)

func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueFireEmpty:
		return "fire_empty"
	case CueReload:
		return "reload"
	case CueReloadEmpty:
		return "reload_empty"
	case CueHolster:
		return "holster"
	case CueUnholster:
		return "unholster"
	default:
		return "unknown"
	}
}

// Presenter receives named presentation requests. The weapon never touches audio
// or animation resources itself.
type Presenter interface {
	PlayAnimation(weapon, state string)
	PlayCue(weapon string, cue Cue)
	MuzzleEffect(weapon string, position physics.Vec3, rotation mgl64.Quat)
}

type ProjectileSpawn struct {
	ID        uuid.UUID
	Weapon    string
	Position  physics.Vec3
	Rotation  mgl64.Quat
	Direction physics.Vec3
	Impulse   float64
	Mask      physics.LayerMask
}

type ProjectileSpawner interface {
	SpawnProjectile(spawn ProjectileSpawn)
}

// Camera supplies the viewpoint a weapon aims from. Weapons are mounted to the
// camera, so the muzzle follows its rotation.
type Camera interface {
	Position() physics.Vec3
	Forward() physics.Vec3
	Rotation() mgl64.Quat
}

type Clock interface {
	Now() time.Duration
}
