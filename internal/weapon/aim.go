package weapon

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/lowpoly/internal/physics"
)

// convergenceDistance is how far along the camera axis the default aim point sits.
const convergenceDistance = 1000.0

type Aim struct {
	Origin    physics.Vec3
	Target    physics.Vec3
	Direction physics.Vec3
	Rotation  mgl64.Quat
	// Hit is true when the crosshair probe found something within range.
	Hit      bool
	Collider physics.ColliderID
}

// AimSolver corrects for the offset between the camera and the muzzle so shots
// leave the barrel but land under the crosshair.
type AimSolver struct {
	query physics.Query
}

func NewAimSolver(query physics.Query) AimSolver {
	return AimSolver{query: query}
}

func (s AimSolver) ResolveAim(muzzle, cameraPos, cameraForward physics.Vec3, maxRange float64, mask physics.LayerMask) Aim {
	aim := Aim{
		Origin: muzzle,
		Target: cameraPos.Add(cameraForward.Mul(convergenceDistance)),
	}

	if s.query != nil && maxRange > 0 {
		if hit, ok := s.query.Raycast(cameraPos, cameraForward, maxRange, mask); ok {
			aim.Target = hit.Point
			aim.Hit = true
			aim.Collider = hit.Collider
		}
	}

	aim.Direction = aim.Target.Sub(muzzle)
	if l := aim.Direction.Len(); l > physics.CollisionTolerance {
		aim.Direction = aim.Direction.Mul(1 / l)
	} else {
		aim.Direction = cameraForward
	}
	aim.Rotation = LookRotation(aim.Direction, physics.Up)
	return aim
}

// LookRotation returns the rotation that maps +Z onto forward and keeps +Y as
// close to up as possible.
func LookRotation(forward, up physics.Vec3) mgl64.Quat {
	l := forward.Len()
	if l <= physics.CollisionTolerance {
		return mgl64.QuatIdent()
	}
	f := forward.Mul(1 / l)

	right := up.Cross(f)
	if right.Len() <= 1e-6 {
		// forward is parallel to up; any perpendicular will do
		alt := physics.Vec3{0, 0, 1}
		if math.Abs(f.Z()) > 0.9 {
			alt = physics.Vec3{1, 0, 0}
		}
		right = alt.Cross(f)
	}
	right = right.Normalize()
	u := f.Cross(right)

	m := mgl64.Mat4{
		right.X(), right.Y(), right.Z(), 0,
		u.X(), u.Y(), u.Z(), 0,
		f.X(), f.Y(), f.Z(), 0,
		0, 0, 0, 1,
	}
	return mgl64.Mat4ToQuat(m).Normalize()
}
