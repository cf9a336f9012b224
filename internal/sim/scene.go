package sim

import (
	"fmt"

	"github.com/Versifine/lowpoly/internal/character"
	"github.com/Versifine/lowpoly/internal/config"
	"github.com/Versifine/lowpoly/internal/event"
	"github.com/Versifine/lowpoly/internal/interaction"
	"github.com/Versifine/lowpoly/internal/inventory"
	"github.com/Versifine/lowpoly/internal/locomotion"
	"github.com/Versifine/lowpoly/internal/logger"
	"github.com/Versifine/lowpoly/internal/physics"
	"github.com/Versifine/lowpoly/internal/present"
	"github.com/Versifine/lowpoly/internal/ui"
	"github.com/Versifine/lowpoly/internal/weapon"
)

// PlayerLayer is the collision layer of the player body. Weapons without an
// explicit layer list hit everything except it.
const PlayerLayer physics.Layer = 1

var playerExtents = physics.Vec3{0.5, 1, 0.5}

// Scene is every gameplay object of one level, wired together.
type Scene struct {
	Config *config.Config

	World   *physics.World
	Clock   *Clock
	Bus     *event.Bus
	Spawner *Spawner

	Presenter *present.LogPresenter
	Character *character.Character
	Weapons   []*weapon.Weapon

	Shop     *interaction.Shop
	Waves    *interaction.WaveManager
	Registry *interaction.Registry
	Detector *interaction.Detector

	Prompt *ui.Prompt
	Ammo   *ui.AmmoText
}

// NewScene builds the level described by cfg.
func NewScene(cfg *config.Config) (*Scene, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Scene{
		Config:   cfg,
		World:    physics.NewWorld(cfg.Simulation.Gravity),
		Clock:    &Clock{},
		Bus:      event.NewBus(),
		Registry: interaction.NewRegistry(),
	}
	s.Spawner = NewSpawner(s.World, cfg.Simulation.ProjectileLife)
	s.Presenter = present.NewLogPresenter(s.Clock, cfg.Simulation.ReloadDuration)

	for i, b := range cfg.Scene.Colliders {
		box, err := boxOf(b)
		if err != nil {
			return nil, fmt.Errorf("scene.colliders[%d]: %w", i, err)
		}
		s.World.AddCollider(box, physics.Layer(b.Layer), false)
	}

	body := s.World.AddBody(
		physics.FromCenterExtents(vec(cfg.Scene.Spawn), playerExtents),
		physics.BodyOptions{Layer: PlayerLayer, UseGravity: true},
	)
	sensor := locomotion.NewGroundSensor(s.World, body.Collider, body.Bounds)
	s.World.OnContact(body, sensor.OnContact)

	camera := character.NewCamera(cfg.Camera.EyeHeight, cfg.Camera.Sensitivity, cfg.Camera.PitchLimit)

	deps := weapon.Deps{
		Presenter: s.Presenter,
		Spawner:   s.Spawner,
		Query:     s.World,
		Camera:    camera,
		Clock:     s.Clock,
	}
	for _, wc := range cfg.Weapons {
		w := weapon.New(weaponSpec(wc), deps)
		s.Presenter.Register(w.Name(), w)
		s.Weapons = append(s.Weapons, w)
	}
	inv := inventory.New[*weapon.Weapon]()
	inv.Init(s.Weapons, cfg.Inventory.EquippedAtStart)

	s.Character = character.New(character.Parts{
		Body:       body,
		Sensor:     sensor,
		Controller: locomotion.NewController(cfg.Movement.SpeedWalking, cfg.Movement.SpeedRunning),
		Footsteps:  locomotion.NewFootsteps(s.Presenter),
		Inventory:  inv,
		Camera:     camera,
	})
	s.Presenter.OnReloaded(func(string) { s.Character.ReloadComplete() })

	s.Shop = interaction.NewShop(s.Bus)
	s.Waves = interaction.NewWaveManager(s.Bus)
	for i, n := range cfg.Scene.NPCs {
		box, err := boxOf(n.Box)
		if err != nil {
			return nil, fmt.Errorf("scene.npcs[%d]: %w", i, err)
		}
		id := s.World.AddCollider(box, physics.Layer(n.Box.Layer), false)
		s.Registry.Register(id, interaction.NewNPC(n.Name, n.Prompt, s.Shop))
	}
	for i, b := range cfg.Scene.Buttons {
		box, err := boxOf(b.Box)
		if err != nil {
			return nil, fmt.Errorf("scene.wave_buttons[%d]: %w", i, err)
		}
		id := s.World.AddCollider(box, physics.Layer(b.Box.Layer), false)
		s.Registry.Register(id, interaction.NewWaveButton(b.Prompt, s.Waves))
	}
	s.Detector = interaction.NewDetector(s.World, camera, s.Registry, s.Shop, s.Bus, interaction.DetectorOptions{
		Distance: cfg.Interaction.Distance,
		Mask:     physics.MaskOf(physics.Layer(cfg.Interaction.Layer)),
	})

	s.Prompt = ui.NewPrompt()
	s.Prompt.Bind(s.Bus)
	ec := cfg.HUD.EmptyColor
	s.Ammo = ui.NewAmmoText(cfg.HUD.UpdateColor, cfg.HUD.EmptySpeed, ui.Color{R: ec[0], G: ec[1], B: ec[2], A: ec[3]})

	s.bindEvents()
	return s, nil
}

func (s *Scene) bindEvents() {
	s.World.OnImpact(func(im physics.Impact) {
		s.Bus.Publish(event.EventImpact, &event.ImpactEvent{
			Projectile: im.Projectile,
			Weapon:     s.Spawner.Claim(im.Projectile),
			Collider:   im.Collider,
			Point:      im.Point,
		})
	})
	s.Bus.Subscribe(event.EventInterfaceMode, func(raw any) {
		if e, ok := raw.(*event.InterfaceModeEvent); ok {
			s.Character.SetInterfaceMode(e.Paused)
		}
	})

	l := logger.Component("events")
	for _, name := range []string{
		event.EventPrompt,
		event.EventInterfaceMode,
		event.EventShop,
		event.EventWaveStarted,
		event.EventImpact,
		event.EventRestart,
	} {
		s.Bus.Subscribe(name, event.LogHandler(l, name))
	}
}

// UpdateHUD refreshes the ammunition counter from the equipped weapon.
func (s *Scene) UpdateHUD() {
	w, ok := s.Character.Equipped()
	if !ok {
		s.Ammo.Update(0, 0)
		return
	}
	s.Ammo.Update(w.AmmunitionCurrent(), w.AmmunitionTotal())
}

func weaponSpec(wc config.WeaponConfig) weapon.Spec {
	spec := weapon.Spec{
		Name:            wc.Name,
		Automatic:       wc.Automatic,
		RoundsPerMinute: wc.RoundsPerMinute,
		Capacity:        wc.Capacity,
		Impulse:         wc.Impulse,
		MaxRange:        wc.MaxRange,
		Mask:            physics.AllLayers &^ physics.MaskOf(PlayerLayer),
	}
	if len(wc.Layers) > 0 {
		layers := make([]physics.Layer, len(wc.Layers))
		for i, l := range wc.Layers {
			layers[i] = physics.Layer(l)
		}
		spec.Mask = physics.MaskOf(layers...)
	}
	if wc.Muzzle != nil {
		v := vec(*wc.Muzzle)
		spec.MuzzleOffset = &v
	}
	if wc.Ejection != nil {
		v := vec(*wc.Ejection)
		spec.EjectionOffset = &v
	}
	return spec
}

func boxOf(b config.BoxConfig) (physics.AABB, error) {
	box := physics.AABB{Min: vec(b.Min), Max: vec(b.Max)}
	for i := 0; i < 3; i++ {
		if box.Min[i] > box.Max[i] {
			return physics.AABB{}, fmt.Errorf("%w: min %v exceeds max %v", config.ErrInvalid, b.Min, b.Max)
		}
	}
	return box, nil
}

func vec(a [3]float64) physics.Vec3 {
	return physics.Vec3(a)
}
