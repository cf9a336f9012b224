package sim

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Versifine/lowpoly/internal/character"
	"github.com/Versifine/lowpoly/internal/event"
	"github.com/Versifine/lowpoly/internal/logger"
	"github.com/Versifine/lowpoly/internal/physics"
	"github.com/Versifine/lowpoly/internal/ui"
	"github.com/Versifine/lowpoly/internal/weapon"
)

// IntentSource yields the player input for the next presentation frame.
type IntentSource interface {
	Intent() character.Intent
}

// Snapshot is a read-only view of the scene for status displays.
type Snapshot struct {
	Frame       uint64
	Time        time.Duration
	Weapon      string
	Ammo        int
	Capacity    int
	FireState   weapon.FireState
	AmmoColor   ui.Color
	Reloading   bool
	Grounded    bool
	Running     bool
	Paused      bool
	Position    physics.Vec3
	Yaw         float64
	Pitch       float64
	Wave        int
	ShopOpen    bool
	Prompt      string
	Projectiles int
	Restarts    int
}

// Driver owns the frame loop. Physics runs on a fixed step decoupled from the
// presentation frame rate; every presentation frame reads the result of the
// most recent completed step.
type Driver struct {
	mu    sync.Mutex
	scene *Scene

	step        time.Duration
	maxSteps    int
	accumulator time.Duration
	frames      uint64
	restarts    int

	log *slog.Logger
}

func NewDriver(scene *Scene) *Driver {
	sc := scene.Config.Simulation
	return &Driver{
		scene:    scene,
		step:     sc.FixedStep,
		maxSteps: sc.MaxStepsPerFrame,
		log:      logger.Component("sim"),
	}
}

// Initialize settles the player on the ground before the first frame.
func (d *Driver) Initialize() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fixedStep()
	d.scene.UpdateHUD()
	d.log.Info("Scene initialized",
		"weapons", len(d.scene.Weapons),
		"interactables", d.scene.Registry.Len(),
		"grounded", d.scene.Character.Grounded())
}

// Advance runs the fixed steps that fit into frame, then one presentation
// tick with in. It returns the number of physics steps taken.
func (d *Driver) Advance(frame time.Duration, in character.Intent) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.accumulator += frame
	steps := 0
	for d.accumulator >= d.step && steps < d.maxSteps {
		d.fixedStep()
		d.accumulator -= d.step
		steps++
	}
	if d.accumulator >= d.step {
		d.log.Debug("dropping simulation backlog", "backlog", d.accumulator)
		d.accumulator %= d.step
	}

	s := d.scene
	s.Detector.Tick(in.Interact)
	s.Shop.HandleCancel(in.Cancel)
	s.Character.Tick(in)
	s.Presenter.Update()
	s.UpdateHUD()
	d.frames++
	return steps
}

func (d *Driver) fixedStep() {
	d.scene.Character.PhysicsTick()
	d.scene.World.Step(d.step.Seconds())
	d.scene.Clock.Advance(d.step)
}

// Run advances one frame per frame interval until ctx is done.
func (d *Driver) Run(ctx context.Context, input IntentSource) error {
	interval := d.scene.Config.Simulation.FrameInterval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			d.log.Info("Frame loop stopped", "frames", d.Frames())
			return nil
		case now := <-ticker.C:
			d.Advance(now.Sub(last), input.Intent())
			last = now
		}
	}
}

// Restart puts the level back into its loaded state.
func (d *Driver) Restart() {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := d.scene
	s.Shop.Reset()
	s.Character.Restart(vec(s.Config.Scene.Spawn), s.Config.Inventory.EquippedAtStart)
	s.Waves.Reset()
	s.Detector.Reset()
	s.Prompt.Reset()
	s.Presenter.Reset()
	d.accumulator = 0
	d.restarts++
	s.UpdateHUD()
	s.Bus.Publish(event.EventRestart, &event.RestartEvent{Count: d.restarts})
}

// Do runs fn with exclusive access to the scene.
func (d *Driver) Do(fn func(s *Scene)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(d.scene)
}

func (d *Driver) Frames() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

func (d *Driver) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := d.scene
	cam := s.Character.Camera()
	snap := Snapshot{
		Frame:       d.frames,
		Time:        s.Clock.Now(),
		AmmoColor:   s.Ammo.Color(),
		Reloading:   s.Character.Reloading(),
		Grounded:    s.Character.Grounded(),
		Running:     s.Character.Running(),
		Paused:      s.Character.Paused(),
		Position:    s.Character.Body().Position(),
		Yaw:         cam.Yaw(),
		Pitch:       cam.Pitch(),
		Wave:        s.Waves.Wave(),
		ShopOpen:    s.Shop.IsOpen(),
		Projectiles: s.Spawner.InFlight(),
		Restarts:    d.restarts,
	}
	if s.Prompt.Visible() {
		snap.Prompt = s.Prompt.Message()
	}
	if w, ok := s.Character.Equipped(); ok {
		snap.Weapon = w.Name()
		snap.Ammo = w.AmmunitionCurrent()
		snap.Capacity = w.AmmunitionTotal()
		snap.FireState = w.FireState()
	}
	return snap
}
