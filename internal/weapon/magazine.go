package weapon

// Magazine is the bounded round counter of one weapon.
// Invariant: 0 <= current <= capacity.
type Magazine struct {
	current  int
	capacity int
}

// NewMagazine returns a full magazine. A non-positive capacity is raised to 1.
func NewMagazine(capacity int) *Magazine {
	if capacity <= 0 {
		capacity = 1
	}
	return &Magazine{current: capacity, capacity: capacity}
}

func (m *Magazine) Current() int {
	if m == nil {
		return 0
	}
	return m.current
}

func (m *Magazine) Capacity() int {
	if m == nil {
		return 0
	}
	return m.capacity
}

func (m *Magazine) IsFull() bool {
	return m != nil && m.current == m.capacity
}

func (m *Magazine) HasAmmunition() bool {
	return m != nil && m.current > 0
}

// Consume removes count rounds, clamped at zero. Consuming from an empty
// magazine is a no-op.
func (m *Magazine) Consume(count int) int {
	if m == nil {
		return 0
	}
	m.current = clamp(m.current-count, 0, m.capacity)
	return m.current
}

// Fill adds amount rounds. An amount of zero means "reload to full".
func (m *Magazine) Fill(amount int) int {
	if m == nil {
		return 0
	}
	if amount == 0 {
		m.current = m.capacity
		return m.current
	}
	m.current = clamp(m.current+amount, 0, m.capacity)
	return m.current
}

func (m *Magazine) Reset() {
	if m == nil {
		return
	}
	m.current = m.capacity
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
