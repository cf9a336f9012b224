package present

import (
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/lowpoly/internal/locomotion"
	"github.com/Versifine/lowpoly/internal/logger"
	"github.com/Versifine/lowpoly/internal/physics"
	"github.com/Versifine/lowpoly/internal/weapon"
)

const DefaultReloadDuration = 1500 * time.Millisecond

// Refiller is the part of a weapon a finished reload animation touches.
type Refiller interface {
	Fill(amount int) int
}

type pendingReload struct {
	weapon string
	due    time.Duration
}

// LogPresenter stands in for the animation and audio layer: it logs every
// request it receives and plays back the reload animation event that refills
// the magazine.
type LogPresenter struct {
	log            *slog.Logger
	clock          weapon.Clock
	reloadDuration time.Duration

	weapons    map[string]Refiller
	pending    []pendingReload
	onReloaded func(weapon string)

	lastAnimation map[string]string
	cues          map[weapon.Cue]int
	muzzleFlashes int

	clip    locomotion.FootstepClip
	playing bool
}

func NewLogPresenter(clock weapon.Clock, reloadDuration time.Duration) *LogPresenter {
	if reloadDuration <= 0 {
		reloadDuration = DefaultReloadDuration
	}
	return &LogPresenter{
		log:            logger.Component("present"),
		clock:          clock,
		reloadDuration: reloadDuration,
		weapons:        make(map[string]Refiller),
		lastAnimation:  make(map[string]string),
		cues:           make(map[weapon.Cue]int),
	}
}

// Register makes a weapon reachable by its reload animation event.
func (p *LogPresenter) Register(name string, w Refiller) {
	p.weapons[name] = w
}

// OnReloaded is called after a reload animation has refilled a weapon.
func (p *LogPresenter) OnReloaded(fn func(weapon string)) {
	p.onReloaded = fn
}

func (p *LogPresenter) now() time.Duration {
	if p.clock == nil {
		return 0
	}
	return p.clock.Now()
}

func (p *LogPresenter) PlayAnimation(name, state string) {
	p.lastAnimation[name] = state
	p.log.Debug("animation", "weapon", name, "state", state)

	if state == weapon.AnimReload || state == weapon.AnimReloadEmpty {
		p.pending = append(p.pending, pendingReload{weapon: name, due: p.now() + p.reloadDuration})
	}
}

func (p *LogPresenter) PlayCue(name string, cue weapon.Cue) {
	p.cues[cue]++
	p.log.Debug("cue", "weapon", name, "cue", cue.String())
}

func (p *LogPresenter) MuzzleEffect(name string, position physics.Vec3, rotation mgl64.Quat) {
	p.muzzleFlashes++
	p.log.Debug("muzzle effect", "weapon", name, "position", position)
}

func (p *LogPresenter) SelectClip(clip locomotion.FootstepClip) {
	if clip != p.clip {
		p.log.Debug("footstep clip", "clip", clip.String())
	}
	p.clip = clip
}

func (p *LogPresenter) Play() {
	p.playing = true
	p.log.Debug("footsteps play", "clip", p.clip.String())
}

func (p *LogPresenter) Pause() {
	p.playing = false
	p.log.Debug("footsteps pause")
}

// Update fires every reload animation event that has come due.
func (p *LogPresenter) Update() {
	if len(p.pending) == 0 {
		return
	}
	now := p.now()
	kept := p.pending[:0]
	var due []pendingReload
	for _, r := range p.pending {
		if now >= r.due {
			due = append(due, r)
			continue
		}
		kept = append(kept, r)
	}
	p.pending = kept

	for _, r := range due {
		w, ok := p.weapons[r.weapon]
		if !ok {
			p.log.Warn("reload finished for unknown weapon", "weapon", r.weapon)
			continue
		}
		n := w.Fill(0)
		p.log.Info("Reload finished", "weapon", r.weapon, "ammo", n)
		if p.onReloaded != nil {
			p.onReloaded(r.weapon)
		}
	}
}

func (p *LogPresenter) Pending() int {
	return len(p.pending)
}

func (p *LogPresenter) LastAnimation(name string) string {
	return p.lastAnimation[name]
}

func (p *LogPresenter) CueCount(cue weapon.Cue) int {
	return p.cues[cue]
}

func (p *LogPresenter) MuzzleFlashes() int {
	return p.muzzleFlashes
}

func (p *LogPresenter) Footsteps() (locomotion.FootstepClip, bool) {
	return p.clip, p.playing
}

// Reset drops pending animation events.
func (p *LogPresenter) Reset() {
	p.pending = nil
	p.playing = false
}
