package physics

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

type collider struct {
	id      ColliderID
	bounds  AABB
	layer   Layer
	trigger bool
	body    *Body
}

// World is a small in-memory physics scene: axis-aligned colliders, kinematic
// bodies that integrate gravity, and ballistic projectiles. It is driven from a
// single simulation goroutine and does no locking.
type World struct {
	gravity     Vec3
	colliders   map[ColliderID]*collider
	order       []ColliderID
	nextID      ColliderID
	bodies      []*Body
	projectiles []*projectile

	contactHandlers map[*Body][]func(Contact)
	impactHandlers  []func(Impact)
	expireHandlers  []func(uuid.UUID)
}

func NewWorld(gravity float64) *World {
	return &World{
		gravity:         Vec3{0, gravity, 0},
		colliders:       make(map[ColliderID]*collider),
		contactHandlers: make(map[*Body][]func(Contact)),
	}
}

func (w *World) AddCollider(bounds AABB, layer Layer, trigger bool) ColliderID {
	w.nextID++
	id := w.nextID
	w.colliders[id] = &collider{id: id, bounds: bounds, layer: layer, trigger: trigger}
	w.order = append(w.order, id)
	return id
}

func (w *World) RemoveCollider(id ColliderID) {
	c, ok := w.colliders[id]
	if !ok {
		return
	}
	delete(w.colliders, id)
	for i, existing := range w.order {
		if existing == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	if c.body != nil {
		for i, b := range w.bodies {
			if b == c.body {
				w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
				break
			}
		}
		delete(w.contactHandlers, c.body)
	}
}

func (w *World) Bounds(id ColliderID) (AABB, bool) {
	c, ok := w.colliders[id]
	if !ok {
		return AABB{}, false
	}
	return c.bounds, true
}

func (w *World) Layer(id ColliderID) (Layer, bool) {
	c, ok := w.colliders[id]
	if !ok {
		return 0, false
	}
	return c.layer, true
}

func (w *World) eachCollider(fn func(c *collider)) {
	for _, id := range w.order {
		fn(w.colliders[id])
	}
}

// SphereCast sweeps a sphere by testing the ray against every collider expanded by
// the radius. Box corners are treated as square, so hits near edges may be
// reported slightly early.
func (w *World) SphereCast(origin Vec3, radius float64, dir Vec3, maxDist float64, mask LayerMask, triggers TriggerInteraction, buf []Hit) int {
	if w == nil || len(buf) == 0 || radius < 0 || maxDist < 0 {
		return 0
	}
	dir = normalizeOrZero(dir)
	if dir == (Vec3{}) {
		return 0
	}

	hits := make([]Hit, 0, len(buf))
	w.eachCollider(func(c *collider) {
		if !mask.Contains(c.layer) {
			return
		}
		if c.trigger && triggers == TriggersIgnore {
			return
		}

		closest := c.bounds.closestPoint(origin)
		if closest.Sub(origin).Len() <= radius {
			hits = append(hits, Hit{
				Collider: c.id,
				Point:    closest,
				Normal:   dir.Mul(-1),
				Distance: 0,
			})
			return
		}

		t, normal, ok := c.bounds.Expand(radius).rayIntersect(origin, dir, maxDist)
		if !ok {
			return
		}
		center := origin.Add(dir.Mul(t))
		hits = append(hits, Hit{
			Collider: c.id,
			Point:    c.bounds.closestPoint(center),
			Normal:   normal,
			Distance: t,
		})
	})

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return copy(buf, hits)
}

// Raycast returns the nearest non-trigger collider along the ray. Colliders that
// contain the origin are not reported.
func (w *World) Raycast(origin, dir Vec3, maxDist float64, mask LayerMask) (Hit, bool) {
	if w == nil || maxDist <= 0 {
		return Hit{}, false
	}
	dir = normalizeOrZero(dir)
	if dir == (Vec3{}) {
		return Hit{}, false
	}

	best := Hit{Distance: math.Inf(1)}
	found := false
	w.eachCollider(func(c *collider) {
		if c.trigger || !mask.Contains(c.layer) {
			return
		}
		if c.bounds.Contains(origin) {
			return
		}
		t, normal, ok := c.bounds.rayIntersect(origin, dir, maxDist)
		if !ok || t >= best.Distance {
			return
		}
		best = Hit{
			Collider: c.id,
			Point:    origin.Add(dir.Mul(t)),
			Normal:   normal,
			Distance: t,
		}
		found = true
	})
	if !found {
		return Hit{}, false
	}
	return best, true
}
