package event

import (
	"log/slog"
)

// LogHandler returns a handler that logs every payload it receives under the
// given event name.
func LogHandler(l *slog.Logger, eventName string) HandlerFunc {
	if l == nil {
		l = slog.Default()
	}
	return func(evt any) {
		switch e := evt.(type) {
		case *ImpactEvent:
			l.Debug("Projectile impact", "projectile", e.Projectile.String(), "weapon", e.Weapon, "collider", e.Collider, "point", e.Point)
		case *WaveEvent:
			l.Info("Wave started", "wave", e.Wave)
		case *ShopEvent:
			l.Info("Shop toggled", "open", e.Open, "npc", e.NPC)
		case *PromptEvent:
			l.Debug("Prompt", "show", e.Show, "message", e.Message)
		case *InterfaceModeEvent:
			l.Debug("Interface mode", "paused", e.Paused)
		case *RestartEvent:
			l.Info("Scene restarted", "count", e.Count)
		default:
			l.Error("Invalid event type", "event", eventName)
		}
	}
}
