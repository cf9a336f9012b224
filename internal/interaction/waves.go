package interaction

import (
	"log/slog"

	"github.com/Versifine/lowpoly/internal/event"
	"github.com/Versifine/lowpoly/internal/logger"
)

// WaveManager counts waves. Spawning enemies is left to subscribers of
// EventWaveStarted.
type WaveManager struct {
	bus  *event.Bus
	wave int
	log  *slog.Logger
}

func NewWaveManager(bus *event.Bus) *WaveManager {
	return &WaveManager{bus: bus, log: logger.Component("waves")}
}

func (w *WaveManager) StartNextWave() {
	if w == nil {
		return
	}
	w.wave++
	w.log.Info("Next wave called", "wave", w.wave)
	w.bus.Publish(event.EventWaveStarted, &event.WaveEvent{Wave: w.wave})
}

func (w *WaveManager) Wave() int {
	if w == nil {
		return 0
	}
	return w.wave
}

func (w *WaveManager) Reset() {
	if w == nil {
		return
	}
	w.wave = 0
}
