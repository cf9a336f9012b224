package sim

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/lowpoly/internal/character"
	"github.com/Versifine/lowpoly/internal/config"
	"github.com/Versifine/lowpoly/internal/event"
	"github.com/Versifine/lowpoly/internal/weapon"
)

const frame = 20 * time.Millisecond

// testConfig is a flat floor with a wall 10m ahead, a merchant 2m to the
// right and a wave button 2m to the left.
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Scene.Colliders = []config.BoxConfig{
		{Min: [3]float64{-50, -1, -50}, Max: [3]float64{50, 0, 50}},
		{Min: [3]float64{-5, 0, 10}, Max: [3]float64{5, 4, 11}},
	}
	cfg.Scene.NPCs = []config.NPCConfig{{
		Name:   "Merchant",
		Prompt: "[F] Open Shop",
		Box:    config.BoxConfig{Min: [3]float64{2, 0, -0.5}, Max: [3]float64{3, 2, 0.5}, Layer: 8},
	}}
	cfg.Scene.Buttons = []config.ButtonConfig{{
		Prompt: "[F] Next Wave",
		Box:    config.BoxConfig{Min: [3]float64{-3, 0, -0.5}, Max: [3]float64{-2, 2, 0.5}, Layer: 8},
	}}
	return cfg
}

func newDriver(t *testing.T, cfg *config.Config) (*Driver, *Scene) {
	t.Helper()
	s, err := NewScene(cfg)
	if err != nil {
		t.Fatalf("NewScene() error = %v", err)
	}
	d := NewDriver(s)
	d.Initialize()
	return d, s
}

func face(d *Driver, yaw float64) {
	d.Do(func(s *Scene) { s.Character.Camera().SetAngles(yaw, 0) })
}

func TestNewScene_Defaults(t *testing.T) {
	d, s := newDriver(t, nil)

	if len(s.Weapons) != 1 || s.Weapons[0].Name() != "AR" {
		t.Fatalf("weapons = %d, want the default AR", len(s.Weapons))
	}
	if s.Registry.Len() != 2 {
		t.Fatalf("interactables = %d, want 2", s.Registry.Len())
	}
	snap := d.Snapshot()
	if !snap.Grounded {
		t.Fatalf("player not grounded after Initialize")
	}
	if snap.Weapon != "AR" || snap.Ammo != 30 || snap.Capacity != 30 {
		t.Fatalf("snapshot = %+v, want full AR", snap)
	}
	if s.Ammo.Text() != "30" {
		t.Fatalf("HUD text = %q, want 30", s.Ammo.Text())
	}
}

func TestNewScene_RejectsInvertedBox(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Colliders = []config.BoxConfig{{Min: [3]float64{1, 0, 0}, Max: [3]float64{0, 1, 1}}}
	if _, err := NewScene(cfg); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("NewScene() error = %v, want ErrInvalid", err)
	}
}

func TestNewScene_RejectsBadWeapons(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"duplicate name", func(c *config.Config) { c.Weapons = append(c.Weapons, c.Weapons[0]) }},
		{"zero impulse", func(c *config.Config) { c.Weapons[0].Impulse = 0 }},
		{"zero max range", func(c *config.Config) { c.Weapons[0].MaxRange = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			if _, err := NewScene(cfg); !errors.Is(err, config.ErrInvalid) {
				t.Fatalf("NewScene() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestWeaponSpec_DefaultMaskSkipsPlayer(t *testing.T) {
	spec := weaponSpec(config.WeaponConfig{Name: "AR", Capacity: 1, RoundsPerMinute: 1})
	if spec.Mask.Contains(PlayerLayer) || !spec.Mask.Contains(0) {
		t.Fatalf("mask = %032b, want every layer but the player's", spec.Mask)
	}
	spec = weaponSpec(config.WeaponConfig{Name: "AR", Layers: []uint8{3}})
	if !spec.Mask.Contains(3) || spec.Mask.Contains(0) {
		t.Fatalf("mask = %032b, want only layer 3", spec.Mask)
	}
	if spec.MuzzleOffset != nil {
		t.Fatalf("muzzle offset set without config")
	}
}

func TestAdvance_FixedStepAccumulator(t *testing.T) {
	d, s := newDriver(t, testConfig())
	start := s.Clock.Now()

	if n := d.Advance(16*time.Millisecond, character.Intent{}); n != 0 {
		t.Fatalf("steps = %d, want 0", n)
	}
	if n := d.Advance(16*time.Millisecond, character.Intent{}); n != 1 {
		t.Fatalf("steps = %d, want 1", n)
	}
	if got := s.Clock.Now() - start; got != 20*time.Millisecond {
		t.Fatalf("clock advanced %v, want 20ms", got)
	}

	if n := d.Advance(time.Second, character.Intent{}); n != s.Config.Simulation.MaxStepsPerFrame {
		t.Fatalf("steps = %d, want capped at %d", n, s.Config.Simulation.MaxStepsPerFrame)
	}
	if n := d.Advance(0, character.Intent{}); n != 0 {
		t.Fatalf("backlog carried over: steps = %d", n)
	}
	if d.Frames() != 4 {
		t.Fatalf("frames = %d, want 4", d.Frames())
	}
}

func TestAdvance_WalkForward(t *testing.T) {
	d, s := newDriver(t, testConfig())

	for i := 0; i < 10; i++ {
		d.Advance(frame, character.Intent{Move: mgl64.Vec2{0, 1}})
	}
	snap := d.Snapshot()
	if snap.Position.Z() < 0.5 || math.Abs(snap.Position.X()) > 1e-9 {
		t.Fatalf("position = %v, want forward along +Z", snap.Position)
	}
	if !snap.Grounded {
		t.Fatalf("player left the ground while walking")
	}
	if _, playing := s.Presenter.Footsteps(); !playing {
		t.Fatalf("footsteps not playing while walking")
	}
}

func TestAdvance_ShotHitsWall(t *testing.T) {
	d, s := newDriver(t, testConfig())

	var impacts []*event.ImpactEvent
	s.Bus.Subscribe(event.EventImpact, func(raw any) {
		impacts = append(impacts, raw.(*event.ImpactEvent))
	})

	d.Advance(frame, character.Intent{FirePressed: true, FireHeld: true})
	if snap := d.Snapshot(); snap.Ammo != 29 || snap.Projectiles != 1 {
		t.Fatalf("after shot: ammo=%d projectiles=%d", snap.Ammo, snap.Projectiles)
	}
	if s.Presenter.MuzzleFlashes() != 1 || s.Spawner.Casings() != 1 {
		t.Fatalf("muzzle flashes=%d casings=%d, want 1/1", s.Presenter.MuzzleFlashes(), s.Spawner.Casings())
	}

	for i := 0; i < 5; i++ {
		d.Advance(frame, character.Intent{})
	}
	if len(impacts) != 1 {
		t.Fatalf("impacts = %d, want 1", len(impacts))
	}
	if impacts[0].Weapon != "AR" || math.Abs(impacts[0].Point.Z()-10) > 1e-6 {
		t.Fatalf("impact = %+v, want AR on the wall at z=10", impacts[0])
	}
	if d.Snapshot().Projectiles != 0 || len(s.Spawner.owners) != 0 {
		t.Fatalf("projectile still tracked after impact")
	}
}

func TestAdvance_ExpiredProjectilesReleaseOwners(t *testing.T) {
	cfg := testConfig()
	cfg.Simulation.ProjectileLife = 500 * time.Millisecond
	d, s := newDriver(t, cfg)
	face(d, 180)

	var impacts int
	s.Bus.Subscribe(event.EventImpact, func(any) { impacts++ })

	d.Advance(frame, character.Intent{FirePressed: true, FireHeld: true})
	for i := 0; i < 60; i++ {
		d.Advance(frame, character.Intent{FireHeld: true})
		if owners, inFlight := len(s.Spawner.owners), s.Spawner.InFlight(); owners != inFlight {
			t.Fatalf("frame %d: owners = %d, in flight = %d", i, owners, inFlight)
		}
	}
	if ammo := d.Snapshot().Ammo; ammo > 27 {
		t.Fatalf("ammo = %d, want at least 3 shots fired", ammo)
	}

	for i := 0; i < 30; i++ {
		d.Advance(frame, character.Intent{})
	}
	if len(s.Spawner.owners) != 0 || s.Spawner.InFlight() != 0 {
		t.Fatalf("owners = %d in flight = %d after every projectile expired", len(s.Spawner.owners), s.Spawner.InFlight())
	}
	if impacts != 0 {
		t.Fatalf("impacts = %d, want none toward open space", impacts)
	}
}

func TestAdvance_ReloadCycle(t *testing.T) {
	d, s := newDriver(t, testConfig())

	d.Advance(frame, character.Intent{FirePressed: true})
	d.Advance(frame, character.Intent{Reload: true})
	if !d.Snapshot().Reloading {
		t.Fatalf("not reloading after reload request")
	}
	if s.Presenter.LastAnimation("AR") != weapon.AnimReload {
		t.Fatalf("animation = %q, want %q", s.Presenter.LastAnimation("AR"), weapon.AnimReload)
	}

	d.Advance(frame, character.Intent{FirePressed: true})
	if got := d.Snapshot().Ammo; got != 29 {
		t.Fatalf("fired while reloading: ammo = %d", got)
	}

	steps := int(s.Config.Simulation.ReloadDuration/frame) + 2
	for i := 0; i < steps; i++ {
		d.Advance(frame, character.Intent{})
	}
	snap := d.Snapshot()
	if snap.Reloading || snap.Ammo != 30 {
		t.Fatalf("after reload: reloading=%v ammo=%d", snap.Reloading, snap.Ammo)
	}
	if s.Ammo.Text() != "30" {
		t.Fatalf("HUD text = %q, want 30", s.Ammo.Text())
	}
}

func TestAdvance_ShopPausesCharacter(t *testing.T) {
	d, _ := newDriver(t, testConfig())
	face(d, 90)

	d.Advance(frame, character.Intent{Interact: true})
	snap := d.Snapshot()
	if !snap.ShopOpen || !snap.Paused || snap.Prompt != "" {
		t.Fatalf("snapshot = %+v, want shop open, paused and no prompt", snap)
	}

	before := snap.Position
	for i := 0; i < 5; i++ {
		d.Advance(frame, character.Intent{Move: mgl64.Vec2{0, 1}, FirePressed: true})
	}
	snap = d.Snapshot()
	if math.Abs(snap.Position.X()-before.X()) > 1e-9 || math.Abs(snap.Position.Z()-before.Z()) > 1e-9 {
		t.Fatalf("moved while paused: %v -> %v", before, snap.Position)
	}
	if snap.Ammo != 30 {
		t.Fatalf("fired while paused: ammo = %d", snap.Ammo)
	}

	d.Advance(frame, character.Intent{Cancel: true})
	if snap := d.Snapshot(); snap.ShopOpen || snap.Paused {
		t.Fatalf("cancel did not close the shop: %+v", snap)
	}
	d.Advance(frame, character.Intent{})
	if got := d.Snapshot().Prompt; got != "[F] Open Shop" {
		t.Fatalf("prompt = %q, want shop prompt back", got)
	}
}

func TestRestart(t *testing.T) {
	d, s := newDriver(t, testConfig())

	var restarts []int
	s.Bus.Subscribe(event.EventRestart, func(raw any) {
		restarts = append(restarts, raw.(*event.RestartEvent).Count)
	})

	face(d, -90)
	d.Advance(frame, character.Intent{Interact: true})
	d.Advance(frame, character.Intent{FirePressed: true})
	for i := 0; i < 5; i++ {
		d.Advance(frame, character.Intent{Move: mgl64.Vec2{0, 1}})
	}
	if snap := d.Snapshot(); snap.Wave != 1 || snap.Ammo != 29 {
		t.Fatalf("before restart: %+v", snap)
	}

	d.Restart()
	snap := d.Snapshot()
	if snap.Wave != 0 || snap.Ammo != 30 || snap.Yaw != 0 || snap.Restarts != 1 {
		t.Fatalf("after restart: %+v", snap)
	}
	spawn := s.Config.Scene.Spawn
	if math.Abs(snap.Position.X()-spawn[0]) > 1e-9 || math.Abs(snap.Position.Z()-spawn[2]) > 1e-9 {
		t.Fatalf("position = %v, want spawn %v", snap.Position, spawn)
	}
	if len(restarts) != 1 || restarts[0] != 1 {
		t.Fatalf("restart events = %v, want [1]", restarts)
	}
}
