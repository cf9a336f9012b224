package sim

import (
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/Versifine/lowpoly/internal/logger"
	"github.com/Versifine/lowpoly/internal/physics"
	"github.com/Versifine/lowpoly/internal/weapon"
)

// Clock is simulation time. It only moves when a fixed step completes.
type Clock struct {
	now time.Duration
}

func (c *Clock) Now() time.Duration {
	if c == nil {
		return 0
	}
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.now += d
}

// Spawner turns weapon fire requests into physics projectiles and remembers
// which weapon fired each one so impacts can be attributed.
type Spawner struct {
	world    *physics.World
	lifetime float64
	owners   map[uuid.UUID]string
	casings  int
	log      *slog.Logger
}

func NewSpawner(world *physics.World, lifetime time.Duration) *Spawner {
	life := lifetime.Seconds()
	if life <= 0 {
		life = physics.DefaultProjectileLifetime
	}
	s := &Spawner{
		world:    world,
		lifetime: life,
		owners:   make(map[uuid.UUID]string),
		log:      logger.Component("spawner"),
	}
	world.OnExpire(s.expire)
	return s
}

// SpawnProjectile launches the projectile with velocity direction * impulse.
func (s *Spawner) SpawnProjectile(p weapon.ProjectileSpawn) {
	s.owners[p.ID] = p.Weapon
	s.world.SpawnProjectile(physics.Projectile{
		ID:       p.ID,
		Position: p.Position,
		Velocity: p.Direction.Mul(p.Impulse),
		Mask:     p.Mask,
		Lifetime: s.lifetime,
	})
	s.log.Debug("projectile spawned", "id", p.ID.String(), "weapon", p.Weapon, "position", p.Position)
}

func (s *Spawner) SpawnCasing(name string, position physics.Vec3, _ mgl64.Quat) {
	s.casings++
	s.log.Debug("casing ejected", "weapon", name, "position", position)
}

// Claim returns the weapon that fired id and forgets the projectile.
func (s *Spawner) Claim(id uuid.UUID) string {
	name := s.owners[id]
	delete(s.owners, id)
	return name
}

func (s *Spawner) expire(id uuid.UUID) {
	if name, ok := s.owners[id]; ok {
		delete(s.owners, id)
		s.log.Debug("projectile expired", "id", id.String(), "weapon", name)
	}
}

func (s *Spawner) InFlight() int {
	return s.world.ProjectileCount()
}

func (s *Spawner) Casings() int {
	return s.casings
}
