package weapon

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/Versifine/lowpoly/internal/logger"
	"github.com/Versifine/lowpoly/internal/physics"
)

type Spec struct {
	Name            string
	Automatic       bool
	RoundsPerMinute float64
	Capacity        int
	Impulse         float64
	MaxRange        float64
	Mask            physics.LayerMask
	// MuzzleOffset is relative to the camera the weapon is mounted on. A nil
	// offset marks a weapon without a muzzle; it never fires.
	MuzzleOffset   *physics.Vec3
	EjectionOffset *physics.Vec3
}

type FireResult uint8

const (
	FireDropped FireResult = iota
	FireEmpty
	FireIgnored
	FireShot
)

func (r FireResult) String() string {
	switch r {
	case FireDropped:
		return "dropped"
	case FireEmpty:
		return "empty"
	case FireIgnored:
		return "ignored"
	case FireShot:
		return "shot"
	default:
		return "unknown"
	}
}

// CasingSpawner is implemented by spawners that also produce ejected casings.
type CasingSpawner interface {
	SpawnCasing(weapon string, position physics.Vec3, rotation mgl64.Quat)
}

type Deps struct {
	Presenter Presenter
	Spawner   ProjectileSpawner
	Query     physics.Query
	Camera    Camera
	Clock     Clock
}

type Weapon struct {
	spec      Spec
	magazine  *Magazine
	control   *FireControl
	aim       AimSolver
	presenter Presenter
	spawner   ProjectileSpawner
	camera    Camera
	active    bool
	log       *slog.Logger
}

func New(spec Spec, deps Deps) *Weapon {
	if spec.Mask == 0 {
		spec.Mask = physics.AllLayers
	}
	return &Weapon{
		spec:      spec,
		magazine:  NewMagazine(spec.Capacity),
		control:   NewFireControl(spec.RoundsPerMinute, deps.Clock),
		aim:       NewAimSolver(deps.Query),
		presenter: deps.Presenter,
		spawner:   deps.Spawner,
		camera:    deps.Camera,
		log:       logger.Component("weapon").With("weapon", spec.Name),
	}
}

func (w *Weapon) Name() string {
	if w == nil {
		return ""
	}
	return w.spec.Name
}

func (w *Weapon) IsAutomatic() bool {
	return w != nil && w.spec.Automatic
}

func (w *Weapon) RateOfFire() float64 {
	if w == nil {
		return 0
	}
	return w.spec.RoundsPerMinute
}

func (w *Weapon) AmmunitionCurrent() int {
	if w == nil {
		return 0
	}
	return w.magazine.Current()
}

func (w *Weapon) AmmunitionTotal() int {
	if w == nil {
		return 0
	}
	return w.magazine.Capacity()
}

func (w *Weapon) IsFull() bool {
	return w != nil && w.magazine.IsFull()
}

func (w *Weapon) HasAmmunition() bool {
	return w != nil && w.magazine.HasAmmunition()
}

// FireState reports Empty whenever the magazine is empty, regardless of the
// last decision.
func (w *Weapon) FireState() FireState {
	if w == nil {
		return StateIdle
	}
	if !w.magazine.HasAmmunition() {
		return StateEmpty
	}
	if w.control.State() == StateFiring {
		return StateFiring
	}
	return StateIdle
}

// Fire runs one fire request through the gate. It never blocks and never
// errors; every outcome is reported through the result.
func (w *Weapon) Fire() FireResult {
	if w == nil {
		return FireIgnored
	}

	switch w.control.Check(w.magazine.HasAmmunition()) {
	case DecisionEmpty:
		w.control.Commit(DecisionEmpty)
		w.playAnimation(AnimFireEmpty)
		w.playCue(CueFireEmpty)
		w.log.Debug("fire empty")
		return FireEmpty
	case DecisionDropped:
		return FireDropped
	}

	if w.spec.MuzzleOffset == nil || w.camera == nil {
		w.log.Debug("fire ignored", "has_muzzle", w.spec.MuzzleOffset != nil, "has_camera", w.camera != nil)
		return FireIgnored
	}

	w.control.Commit(DecisionFire)
	w.playAnimation(AnimFire)
	w.magazine.Consume(1)

	camPos := w.camera.Position()
	camRot := w.camera.Rotation()
	muzzle := camPos.Add(camRot.Rotate(*w.spec.MuzzleOffset))

	if w.presenter != nil {
		w.presenter.MuzzleEffect(w.spec.Name, muzzle, camRot)
	}
	w.playCue(CueFire)

	aim := w.aim.ResolveAim(muzzle, camPos, w.camera.Forward(), w.spec.MaxRange, w.spec.Mask)
	if w.spawner != nil {
		w.spawner.SpawnProjectile(ProjectileSpawn{
			ID:        uuid.New(),
			Weapon:    w.spec.Name,
			Position:  aim.Origin,
			Rotation:  aim.Rotation,
			Direction: aim.Direction,
			Impulse:   w.spec.Impulse,
			Mask:      w.spec.Mask,
		})
	}

	w.control.Settle(w.magazine.HasAmmunition())
	w.log.Debug("fired", "ammo", w.magazine.Current(), "aim_hit", aim.Hit)
	return FireShot
}

// Reload only starts the reload animation. The magazine is refilled by Fill,
// which the animation event calls when the reload completes.
func (w *Weapon) Reload() {
	if w == nil {
		return
	}
	if w.magazine.HasAmmunition() {
		w.playAnimation(AnimReload)
		w.playCue(CueReload)
		return
	}
	w.playAnimation(AnimReloadEmpty)
	w.playCue(CueReloadEmpty)
}

// Fill adds amount rounds, or refills completely when amount is 0.
func (w *Weapon) Fill(amount int) int {
	if w == nil {
		return 0
	}
	n := w.magazine.Fill(amount)
	if n > 0 {
		w.control.Settle(true)
	}
	w.log.Debug("filled", "amount", amount, "ammo", n)
	return n
}

// EjectCasing spawns a casing at the ejection port. Weapons without an ejection
// offset or spawners without casing support do nothing.
func (w *Weapon) EjectCasing() bool {
	if w == nil || w.spec.EjectionOffset == nil || w.camera == nil {
		return false
	}
	cs, ok := w.spawner.(CasingSpawner)
	if !ok {
		return false
	}
	rot := w.camera.Rotation()
	cs.SpawnCasing(w.spec.Name, w.camera.Position().Add(rot.Rotate(*w.spec.EjectionOffset)), rot)
	return true
}

func (w *Weapon) SetActive(active bool) {
	if w == nil || w.active == active {
		return
	}
	w.active = active
	if active {
		w.playAnimation(AnimUnholster)
		w.playCue(CueUnholster)
		return
	}
	w.playAnimation(AnimHolster)
	w.playCue(CueHolster)
}

func (w *Weapon) Active() bool {
	return w != nil && w.active
}

// Reset restores the state a weapon has when a scene is loaded.
func (w *Weapon) Reset() {
	if w == nil {
		return
	}
	w.magazine.Reset()
	w.control.Reset()
}

func (w *Weapon) playAnimation(state string) {
	if w.presenter != nil {
		w.presenter.PlayAnimation(w.spec.Name, state)
	}
}

func (w *Weapon) playCue(cue Cue) {
	if w.presenter != nil {
		w.presenter.PlayCue(w.spec.Name, cue)
	}
}
