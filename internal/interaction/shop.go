package interaction

import (
	"log/slog"

	"github.com/Versifine/lowpoly/internal/event"
	"github.com/Versifine/lowpoly/internal/logger"
)

// Shop is the trading menu. Opening it hides the interaction prompt and puts
// the character into interface mode; closing it returns to gameplay.
type Shop struct {
	bus  *event.Bus
	open bool
	npc  string
	log  *slog.Logger
}

func NewShop(bus *event.Bus) *Shop {
	return &Shop{bus: bus, log: logger.Component("shop")}
}

func (s *Shop) Open(npc string) {
	if s == nil || s.open {
		return
	}
	s.open = true
	s.npc = npc
	s.log.Info("Shop opened", "npc", npc)
	s.bus.Publish(event.EventShop, &event.ShopEvent{Open: true, NPC: npc})
	s.bus.Publish(event.EventPrompt, &event.PromptEvent{Show: false})
	s.bus.Publish(event.EventInterfaceMode, &event.InterfaceModeEvent{Paused: true})
}

func (s *Shop) Close() {
	if s == nil || !s.open {
		return
	}
	s.open = false
	s.log.Info("Shop closed", "npc", s.npc)
	s.bus.Publish(event.EventShop, &event.ShopEvent{Open: false, NPC: s.npc})
	s.bus.Publish(event.EventInterfaceMode, &event.InterfaceModeEvent{Paused: false})
	s.npc = ""
}

// HandleCancel closes the shop on the cancel key.
func (s *Shop) HandleCancel(pressed bool) {
	if s != nil && s.open && pressed {
		s.Close()
	}
}

func (s *Shop) IsOpen() bool {
	return s != nil && s.open
}

// Reset closes the shop without waiting for input.
func (s *Shop) Reset() {
	s.Close()
}
