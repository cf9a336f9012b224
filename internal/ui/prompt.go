package ui

import (
	"github.com/Versifine/lowpoly/internal/event"
)

// Prompt is the interaction hint shown under the crosshair. It stays hidden
// while the shop menu is open.
type Prompt struct {
	visible  bool
	message  string
	shopOpen bool
}

func NewPrompt() *Prompt {
	return &Prompt{}
}

// Bind subscribes the prompt to prompt and shop events.
func (p *Prompt) Bind(bus *event.Bus) {
	bus.Subscribe(event.EventPrompt, func(raw any) {
		if e, ok := raw.(*event.PromptEvent); ok {
			p.Toggle(e.Show, e.Message)
		}
	})
	bus.Subscribe(event.EventShop, func(raw any) {
		if e, ok := raw.(*event.ShopEvent); ok {
			p.SetShopOpen(e.Open)
		}
	})
}

func (p *Prompt) Toggle(show bool, message string) {
	if p.shopOpen {
		p.visible = false
		return
	}
	p.visible = show
	if show {
		p.message = message
	}
}

func (p *Prompt) SetShopOpen(open bool) {
	p.shopOpen = open
	if open {
		p.visible = false
	}
}

func (p *Prompt) Visible() bool   { return p.visible }
func (p *Prompt) Message() string { return p.message }

func (p *Prompt) Reset() {
	p.visible = false
	p.message = ""
	p.shopOpen = false
}
