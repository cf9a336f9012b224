package locomotion

import (
	"github.com/Versifine/lowpoly/internal/physics"
)

const (
	// GroundProbeBufferSize caps how many hits one probe can see. Extra hits are
	// dropped by the query engine, so in dense scenes a valid ground contact can be
	// missed for a step.
	GroundProbeBufferSize = 8

	groundProbeSkin = 0.01
)

// GroundSensor classifies a character as grounded or airborne. The flag is
// cleared at the start of every physics step and set again by a passing probe.
type GroundSensor struct {
	query    physics.Query
	self     physics.ColliderID
	bounds   func() physics.AABB
	grounded bool
	hits     [GroundProbeBufferSize]physics.Hit
}

// NewGroundSensor builds a sensor for the collider self. bounds supplies the
// collider's current world bounds when the sensor reacts to contact events.
func NewGroundSensor(query physics.Query, self physics.ColliderID, bounds func() physics.AABB) *GroundSensor {
	return &GroundSensor{
		query:  query,
		self:   self,
		bounds: bounds,
	}
}

func (s *GroundSensor) Reset() {
	if s == nil {
		return
	}
	s.grounded = false
}

func (s *GroundSensor) Grounded() bool {
	if s == nil {
		return false
	}
	return s.grounded
}

// Probe casts a sphere slightly narrower than the collider straight down from its
// centre. Any hit other than the character's own collider grounds it. A probe
// never clears the flag.
func (s *GroundSensor) Probe(bounds physics.AABB) bool {
	if s == nil || s.query == nil {
		return false
	}
	extents := bounds.Extents()
	radius := extents.X() - groundProbeSkin
	if radius <= 0 {
		return s.grounded
	}
	distance := extents.Y() - radius*0.5

	buf := s.hits[:]
	for i := range buf {
		buf[i] = physics.Hit{}
	}
	n := s.query.SphereCast(bounds.Center(), radius, physics.Down, distance, physics.AllLayers, physics.TriggersIgnore, buf)
	for _, hit := range buf[:n] {
		if hit.Collider != physics.ColliderID(0) && hit.Collider != s.self {
			s.grounded = true
			break
		}
	}
	return s.grounded
}

// OnContact lets the sensor be registered directly as a contact callback.
func (s *GroundSensor) OnContact(_ physics.Contact) {
	if s == nil || s.bounds == nil {
		return
	}
	s.Probe(s.bounds())
}
