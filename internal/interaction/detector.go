package interaction

import (
	"github.com/Versifine/lowpoly/internal/event"
	"github.com/Versifine/lowpoly/internal/physics"
)

const DefaultDistance = 3.0

// View is the viewpoint the interaction ray is cast from.
type View interface {
	Position() physics.Vec3
	Forward() physics.Vec3
}

// Detector tracks which interactable the player is looking at and forwards
// the interact key to it.
type Detector struct {
	query    physics.Query
	view     View
	registry *Registry
	shop     *Shop
	bus      *event.Bus
	distance float64
	mask     physics.LayerMask
	current  Interactable
}

type DetectorOptions struct {
	Distance float64
	Mask     physics.LayerMask
}

func NewDetector(query physics.Query, view View, registry *Registry, shop *Shop, bus *event.Bus, opts DetectorOptions) *Detector {
	if opts.Distance <= 0 {
		opts.Distance = DefaultDistance
	}
	if opts.Mask == 0 {
		opts.Mask = physics.AllLayers
	}
	return &Detector{
		query:    query,
		view:     view,
		registry: registry,
		shop:     shop,
		bus:      bus,
		distance: opts.Distance,
		mask:     opts.Mask,
	}
}

// Tick runs once per presentation frame. Nothing is targeted while the shop
// is open, so the prompt comes back once it closes.
func (d *Detector) Tick(interactPressed bool) {
	if d == nil {
		return
	}
	if d.shop.IsOpen() {
		if d.current != nil {
			d.current = nil
			d.bus.Publish(event.EventPrompt, &event.PromptEvent{Show: false})
		}
		return
	}

	d.scan()
	if d.current != nil && interactPressed {
		d.current.Interact()
	}
}

func (d *Detector) scan() {
	if d.query != nil && d.view != nil {
		hit, ok := d.query.Raycast(d.view.Position(), d.view.Forward(), d.distance, d.mask)
		if ok {
			if it, found := d.registry.Lookup(hit.Collider); found {
				if d.current != it {
					d.current = it
					d.bus.Publish(event.EventPrompt, &event.PromptEvent{Show: true, Message: it.Prompt()})
				}
				return
			}
		}
	}

	if d.current != nil {
		d.current = nil
		d.bus.Publish(event.EventPrompt, &event.PromptEvent{Show: false})
	}
}

func (d *Detector) Current() Interactable {
	if d == nil {
		return nil
	}
	return d.current
}

// Reset forgets the current target.
func (d *Detector) Reset() {
	if d == nil {
		return
	}
	d.current = nil
}
