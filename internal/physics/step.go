package physics

import (
	"github.com/google/uuid"
)

type BodyOptions struct {
	Layer      Layer
	UseGravity bool
}

// Body is a kinematic box that integrates its own velocity and is pushed out of
// static geometry axis by axis.
type Body struct {
	Collider   ColliderID
	Velocity   Vec3
	UseGravity bool

	world *World
}

type Contact struct {
	Body     *Body
	Collider ColliderID
	Normal   Vec3
}

type Impact struct {
	Projectile uuid.UUID
	Collider   ColliderID
	Point      Vec3
	Normal     Vec3
}

type Projectile struct {
	ID       uuid.UUID
	Position Vec3
	Velocity Vec3
	Mask     LayerMask
	Lifetime float64
}

type projectile struct {
	Projectile
	age float64
}

func (w *World) AddBody(bounds AABB, opts BodyOptions) *Body {
	id := w.AddCollider(bounds, opts.Layer, false)
	b := &Body{
		Collider:   id,
		UseGravity: opts.UseGravity,
		world:      w,
	}
	w.colliders[id].body = b
	w.bodies = append(w.bodies, b)
	return b
}

func (b *Body) Bounds() AABB {
	if b == nil || b.world == nil {
		return AABB{}
	}
	bounds, _ := b.world.Bounds(b.Collider)
	return bounds
}

func (b *Body) Position() Vec3 {
	return b.Bounds().Center()
}

func (b *Body) Teleport(center Vec3) {
	if b == nil || b.world == nil {
		return
	}
	c, ok := b.world.colliders[b.Collider]
	if !ok {
		return
	}
	c.bounds = FromCenterExtents(center, c.bounds.Extents())
}

// OnContact registers fn to be called once per step for every collider that
// clipped the body's motion during that step.
func (w *World) OnContact(b *Body, fn func(Contact)) {
	if b == nil || fn == nil {
		return
	}
	w.contactHandlers[b] = append(w.contactHandlers[b], fn)
}

func (w *World) OnImpact(fn func(Impact)) {
	if fn == nil {
		return
	}
	w.impactHandlers = append(w.impactHandlers, fn)
}

// OnExpire registers fn for projectiles that reach their lifetime without
// hitting anything.
func (w *World) OnExpire(fn func(id uuid.UUID)) {
	if fn == nil {
		return
	}
	w.expireHandlers = append(w.expireHandlers, fn)
}

func (w *World) SpawnProjectile(p Projectile) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Lifetime <= 0 {
		p.Lifetime = DefaultProjectileLifetime
	}
	if p.Mask == 0 {
		p.Mask = AllLayers
	}
	w.projectiles = append(w.projectiles, &projectile{Projectile: p})
}

func (w *World) ProjectileCount() int {
	return len(w.projectiles)
}

// Step advances every body, then every projectile, then delivers contact events.
func (w *World) Step(dt float64) {
	if w == nil || dt <= 0 {
		return
	}

	var contacts []Contact
	for _, b := range w.bodies {
		contacts = append(contacts, w.stepBody(b, dt)...)
	}
	w.stepProjectiles(dt)

	for _, c := range contacts {
		for _, fn := range w.contactHandlers[c.Body] {
			fn(c)
		}
	}
}

func (w *World) stepBody(b *Body, dt float64) []Contact {
	self, ok := w.colliders[b.Collider]
	if !ok {
		return nil
	}
	if b.UseGravity {
		b.Velocity = b.Velocity.Add(w.gravity.Mul(dt))
	}

	var contacts []Contact
	seen := make(map[ColliderID]struct{})
	for _, axis := range [3]int{1, 0, 2} {
		delta := b.Velocity[axis] * dt
		allowed, hitID := w.resolveAxis(self, axis, delta)
		var move Vec3
		move[axis] = allowed
		self.bounds = self.bounds.Translate(move)
		if hitID == 0 || nearlyEqual(allowed, delta) {
			continue
		}
		b.Velocity[axis] = 0
		if _, dup := seen[hitID]; dup {
			continue
		}
		seen[hitID] = struct{}{}
		var normal Vec3
		if delta > 0 {
			normal[axis] = -1
		} else {
			normal[axis] = 1
		}
		contacts = append(contacts, Contact{Body: b, Collider: hitID, Normal: normal})
	}
	return contacts
}

// resolveAxis clips delta so the moving box does not enter any solid collider on
// the given axis and reports the collider that limited the motion.
func (w *World) resolveAxis(self *collider, axis int, delta float64) (float64, ColliderID) {
	if nearlyZero(delta) {
		return delta, 0
	}
	box := self.bounds
	allowed := delta
	var hit ColliderID

	w.eachCollider(func(c *collider) {
		if c.id == self.id || c.trigger {
			return
		}
		if !overlapsOnOtherAxes(box, c.bounds, axis) {
			return
		}
		if delta > 0 {
			if c.bounds.Min[axis] < box.Max[axis]-CollisionTolerance {
				return
			}
			candidate := c.bounds.Min[axis] - box.Max[axis]
			if candidate < allowed {
				allowed = candidate
				hit = c.id
			}
			return
		}
		if c.bounds.Max[axis] > box.Min[axis]+CollisionTolerance {
			return
		}
		candidate := c.bounds.Max[axis] - box.Min[axis]
		if candidate > allowed {
			allowed = candidate
			hit = c.id
		}
	})
	return allowed, hit
}

func overlapsOnOtherAxes(a, b AABB, axis int) bool {
	for i := 0; i < 3; i++ {
		if i == axis {
			continue
		}
		if a.Min[i] >= b.Max[i]-CollisionTolerance || a.Max[i] <= b.Min[i]+CollisionTolerance {
			return false
		}
	}
	return true
}

func (w *World) stepProjectiles(dt float64) {
	alive := w.projectiles[:0]
	for _, p := range w.projectiles {
		p.age += dt
		step := p.Velocity.Mul(dt)
		dist := step.Len()
		if dist > 0 {
			if hit, ok := w.Raycast(p.Position, step, dist, p.Mask); ok {
				impact := Impact{
					Projectile: p.ID,
					Collider:   hit.Collider,
					Point:      hit.Point,
					Normal:     hit.Normal,
				}
				for _, fn := range w.impactHandlers {
					fn(impact)
				}
				continue
			}
		}
		p.Position = p.Position.Add(step)
		if p.age >= p.Lifetime {
			for _, fn := range w.expireHandlers {
				fn(p.ID)
			}
			continue
		}
		alive = append(alive, p)
	}
	for i := len(alive); i < len(w.projectiles); i++ {
		w.projectiles[i] = nil
	}
	w.projectiles = alive
}
