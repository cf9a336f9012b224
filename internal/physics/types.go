package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Vec3 = mgl64.Vec3

var (
	Up   = Vec3{0, 1, 0}
	Down = Vec3{0, -1, 0}
)

// Layer is a collision layer index in [0, 31].
type Layer uint8

type LayerMask uint32

const AllLayers = ^LayerMask(0)

func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= 1 << (l & 31)
	}
	return m
}

func (m LayerMask) Contains(l Layer) bool {
	return m&(1<<(l&31)) != 0
}

type TriggerInteraction uint8

const (
	TriggersIgnore TriggerInteraction = iota
	TriggersCollide
)

// ColliderID identifies a collider inside a World. Zero means "no collider".
type ColliderID uint32

type Hit struct {
	Collider ColliderID
	Point    Vec3
	Normal   Vec3
	Distance float64
}

// Query is the spatial query surface the gameplay code needs from a physics engine.
type Query interface {
	// SphereCast writes at most len(buf) hits, nearest first, and returns how many
	// were written. Colliders already overlapping the sphere at origin are reported
	// with Distance 0.
	SphereCast(origin Vec3, radius float64, dir Vec3, maxDist float64, mask LayerMask, triggers TriggerInteraction, buf []Hit) int
	Raycast(origin, dir Vec3, maxDist float64, mask LayerMask) (Hit, bool)
}

type AABB struct {
	Min Vec3
	Max Vec3
}

func FromCenterExtents(center, extents Vec3) AABB {
	return AABB{
		Min: center.Sub(extents),
		Max: center.Add(extents),
	}
}

func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b AABB) Extents() Vec3 {
	return b.Max.Sub(b.Min).Mul(0.5)
}

func (b AABB) Translate(d Vec3) AABB {
	return AABB{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

func (b AABB) Expand(r float64) AABB {
	e := Vec3{r, r, r}
	return AABB{Min: b.Min.Sub(e), Max: b.Max.Add(e)}
}

func (b AABB) Intersects(o AABB) bool {
	return b.Min.X() < o.Max.X() &&
		b.Max.X() > o.Min.X() &&
		b.Min.Y() < o.Max.Y() &&
		b.Max.Y() > o.Min.Y() &&
		b.Min.Z() < o.Max.Z() &&
		b.Max.Z() > o.Min.Z()
}

func (b AABB) Contains(p Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// closestPoint clamps p into the box.
func (b AABB) closestPoint(p Vec3) Vec3 {
	var out Vec3
	for i := 0; i < 3; i++ {
		out[i] = math.Max(b.Min[i], math.Min(p[i], b.Max[i]))
	}
	return out
}

// rayIntersect is a slab test. It returns the entry distance and the face normal
// at entry. A ray starting inside the box enters at 0 with a zero normal.
func (b AABB) rayIntersect(origin, dir Vec3, maxDist float64) (float64, Vec3, bool) {
	tMin := 0.0
	tMax := maxDist
	var normal Vec3
	for axis := 0; axis < 3; axis++ {
		if nearlyZero(dir[axis]) {
			if origin[axis] < b.Min[axis] || origin[axis] > b.Max[axis] {
				return 0, Vec3{}, false
			}
			continue
		}
		inv := 1.0 / dir[axis]
		t1 := (b.Min[axis] - origin[axis]) * inv
		t2 := (b.Max[axis] - origin[axis]) * inv
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}
		if t1 > tMin {
			tMin = t1
			normal = Vec3{}
			normal[axis] = sign
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, Vec3{}, false
		}
	}
	return tMin, normal, true
}

func normalizeOrZero(v Vec3) Vec3 {
	l := v.Len()
	if l <= CollisionTolerance {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

func nearlyZero(v float64) bool {
	return math.Abs(v) <= CollisionTolerance
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= CollisionTolerance
}
