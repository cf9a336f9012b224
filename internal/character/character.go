package character

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/lowpoly/internal/inventory"
	"github.com/Versifine/lowpoly/internal/locomotion"
	"github.com/Versifine/lowpoly/internal/logger"
	"github.com/Versifine/lowpoly/internal/physics"
	"github.com/Versifine/lowpoly/internal/weapon"
)

// Intent is one presentation tick of player input.
type Intent struct {
	Move        mgl64.Vec2
	Running     bool
	FireHeld    bool
	FirePressed bool
	Reload      bool
	NextWeapon  bool
	PrevWeapon  bool
	Interact    bool
	Cancel      bool
	LookYaw     float64
	LookPitch   float64
}

type Character struct {
	body       *physics.Body
	sensor     *locomotion.GroundSensor
	controller locomotion.Controller
	footsteps  *locomotion.Footsteps
	inventory  *inventory.Inventory[*weapon.Weapon]
	camera     *Camera

	move      mgl64.Vec2
	running   bool
	paused    bool
	reloading bool
	log       *slog.Logger
}

type Parts struct {
	Body       *physics.Body
	Sensor     *locomotion.GroundSensor
	Controller locomotion.Controller
	Footsteps  *locomotion.Footsteps
	Inventory  *inventory.Inventory[*weapon.Weapon]
	Camera     *Camera
}

func New(p Parts) *Character {
	c := &Character{
		body:       p.Body,
		sensor:     p.Sensor,
		controller: p.Controller,
		footsteps:  p.Footsteps,
		inventory:  p.Inventory,
		camera:     p.Camera,
		log:        logger.Component("character"),
	}
	if c.inventory == nil {
		c.inventory = inventory.New[*weapon.Weapon]()
	}
	if c.camera == nil {
		c.camera = NewCamera(0, 1, 90)
	}
	c.camera.Follow(c.body.Bounds())
	return c
}

// PhysicsTick runs at the start of every fixed step: the ground flag is
// cleared, then the planar velocity for this step is written to the body.
// Vertical velocity stays with the physics integrator.
func (c *Character) PhysicsTick() {
	if c == nil {
		return
	}
	c.sensor.Reset()
	if c.body == nil {
		return
	}

	move, running := c.move, c.running
	if c.paused {
		move, running = mgl64.Vec2{}, false
	}
	v := c.controller.ComputeVelocity(move, running, c.camera.Facing())
	c.body.Velocity = physics.Vec3{v.X(), c.body.Velocity.Y(), v.Z()}
}

// Tick handles one presentation frame. Ground state read here is the result
// of the most recent physics step.
func (c *Character) Tick(in Intent) {
	if c == nil {
		return
	}
	if c.paused {
		in = Intent{Cancel: in.Cancel}
	}

	c.camera.Look(in.LookYaw, in.LookPitch)
	c.camera.Follow(c.body.Bounds())

	equipped, _ := c.inventory.Equipped()
	c.move = in.Move
	c.running = canRun(in, equipped)

	var velocity physics.Vec3
	if c.body != nil {
		velocity = c.body.Velocity
	}
	c.footsteps.Update(c.sensor.Grounded(), velocity, c.running)

	if c.paused {
		return
	}

	switch {
	case in.NextWeapon:
		c.equip(c.inventory.NextIndex())
	case in.PrevWeapon:
		c.equip(c.inventory.LastIndex())
	}
	equipped, ok := c.inventory.Equipped()
	if !ok {
		return
	}

	if in.Reload && !c.reloading && !equipped.IsFull() {
		c.reloading = true
		equipped.Reload()
		return
	}
	if c.reloading {
		return
	}

	if in.FirePressed || (in.FireHeld && equipped.IsAutomatic() && equipped.HasAmmunition()) {
		if r := equipped.Fire(); r == weapon.FireShot {
			equipped.EjectCasing()
		}
	}
}

func (c *Character) equip(index int) {
	if c.reloading {
		return
	}
	before := c.inventory.EquippedIndex()
	w, ok := c.inventory.Equip(index)
	if ok && c.inventory.EquippedIndex() != before {
		c.log.Debug("equipped", "index", index, "weapon", w.Name())
	}
}

// ReloadComplete ends the reload lock. It is called once the reload
// animation has refilled the weapon.
func (c *Character) ReloadComplete() {
	if c == nil {
		return
	}
	c.reloading = false
}

// SetInterfaceMode switches between gameplay and menu input. While paused the
// character neither moves, looks nor fires.
func (c *Character) SetInterfaceMode(paused bool) {
	if c == nil || c.paused == paused {
		return
	}
	c.paused = paused
	if paused {
		c.move = mgl64.Vec2{}
		c.running = false
	}
	c.log.Info("Interface mode changed", "paused", paused)
}

// Restart puts the character back at spawn with every weapon restored.
func (c *Character) Restart(spawn physics.Vec3, equippedAtStart int) {
	if c == nil {
		return
	}
	if c.body != nil {
		c.body.Teleport(spawn)
		c.body.Velocity = physics.Vec3{}
	}
	c.sensor.Reset()
	c.paused = false
	c.reloading = false
	c.move = mgl64.Vec2{}
	c.running = false
	for _, w := range c.inventory.Items() {
		w.Reset()
	}
	c.inventory.Init(c.inventory.Items(), equippedAtStart)
	c.camera.SetAngles(0, 0)
	c.camera.Follow(c.body.Bounds())
}

func (c *Character) Equipped() (*weapon.Weapon, bool) {
	return c.inventory.Equipped()
}

func (c *Character) Inventory() *inventory.Inventory[*weapon.Weapon] {
	return c.inventory
}

func (c *Character) Camera() *Camera { return c.camera }

func (c *Character) Body() *physics.Body { return c.body }

func (c *Character) Footsteps() *locomotion.Footsteps { return c.footsteps }

func (c *Character) Grounded() bool { return c.sensor.Grounded() }

func (c *Character) Running() bool { return c.running }

func (c *Character) Paused() bool { return c.paused }

func (c *Character) Reloading() bool { return c.reloading }

// canRun applies the sprint rules: no running without forward intent, while
// strafing flat out or while firing a loaded weapon.
func canRun(in Intent, equipped *weapon.Weapon) bool {
	if !in.Running {
		return false
	}
	if in.FireHeld && equipped.HasAmmunition() {
		return false
	}
	if in.Move.Y() <= 0 {
		return false
	}
	if math.Abs(math.Abs(in.Move.X())-1) < 0.01 {
		return false
	}
	return true
}
