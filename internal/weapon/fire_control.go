package weapon

import (
	"time"
)

type FireState uint8

const (
	StateIdle FireState = iota
	StateFiring
	StateEmpty
)

func (s FireState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFiring:
		return "firing"
	case StateEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

type Decision uint8

const (
	DecisionFire Decision = iota
	DecisionDropped
	DecisionEmpty
)

func (d Decision) String() string {
	switch d {
	case DecisionFire:
		return "fire"
	case DecisionDropped:
		return "dropped"
	case DecisionEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// FireControl is the rate-of-fire gate of one weapon. Requests that arrive while
// the gate is closed are dropped, never queued.
type FireControl struct {
	clock    Clock
	interval time.Duration
	lastShot time.Duration
	hasShot  bool
	state    FireState
}

func NewFireControl(roundsPerMinute float64, clock Clock) *FireControl {
	return &FireControl{
		clock:    clock,
		interval: MinInterval(roundsPerMinute),
	}
}

// MinInterval is 60/rpm seconds. A non-positive rate disables the gate.
func MinInterval(roundsPerMinute float64) time.Duration {
	if roundsPerMinute <= 0 {
		return 0
	}
	return time.Duration(float64(time.Minute) / roundsPerMinute)
}

func (f *FireControl) Interval() time.Duration {
	return f.interval
}

func (f *FireControl) now() time.Duration {
	if f.clock == nil {
		return 0
	}
	return f.clock.Now()
}

// Check decides what a fire request would do without committing it. An empty
// magazine always routes to the empty path regardless of the gate.
func (f *FireControl) Check(hasAmmunition bool) Decision {
	if !hasAmmunition {
		return DecisionEmpty
	}
	if f.hasShot && f.now()-f.lastShot < f.interval {
		return DecisionDropped
	}
	return DecisionFire
}

// Commit records a shot (or an empty click) at the current time.
func (f *FireControl) Commit(d Decision) {
	f.lastShot = f.now()
	f.hasShot = true
	switch d {
	case DecisionFire:
		f.state = StateFiring
	case DecisionEmpty:
		f.state = StateEmpty
	}
}

// Settle returns the machine to Idle once the shot has been emitted, or keeps it
// in Empty while there is nothing to fire.
func (f *FireControl) Settle(hasAmmunition bool) {
	if hasAmmunition {
		f.state = StateIdle
		return
	}
	f.state = StateEmpty
}

func (f *FireControl) State() FireState {
	return f.state
}

func (f *FireControl) Reset() {
	f.lastShot = 0
	f.hasShot = false
	f.state = StateIdle
}
