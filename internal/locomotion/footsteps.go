package locomotion

import (
	"github.com/Versifine/lowpoly/internal/physics"
)

type FootstepClip uint8

const (
	ClipWalking FootstepClip = iota
	ClipRunning
)

func (c FootstepClip) String() string {
	switch c {
	case ClipWalking:
		return "walking"
	case ClipRunning:
		return "running"
	default:
		return "unknown"
	}
}

// FootstepSink is the looping audio source owned by the presentation layer.
type FootstepSink interface {
	SelectClip(clip FootstepClip)
	Play()
	Pause()
}

const footstepSpeedThreshold = 0.1

// Footsteps decides when the looping footstep sound plays. It pauses rather than
// stops so the loop resumes where it left off.
type Footsteps struct {
	sink    FootstepSink
	playing bool
}

func NewFootsteps(sink FootstepSink) *Footsteps {
	return &Footsteps{sink: sink}
}

func (f *Footsteps) Playing() bool {
	if f == nil {
		return false
	}
	return f.playing
}

func (f *Footsteps) Update(grounded bool, velocity physics.Vec3, running bool) {
	if f == nil || f.sink == nil {
		return
	}
	if grounded && planarSpeedSquared(velocity) > footstepSpeedThreshold {
		clip := ClipWalking
		if running {
			clip = ClipRunning
		}
		f.sink.SelectClip(clip)
		if !f.playing {
			f.sink.Play()
			f.playing = true
		}
		return
	}
	if f.playing {
		f.sink.Pause()
		f.playing = false
	}
}
