package event

import (
	"github.com/google/uuid"

	"github.com/Versifine/lowpoly/internal/physics"
)

const (
	EventPrompt        = "ui.prompt"
	EventInterfaceMode = "ui.interface_mode"
	EventShop          = "shop"
	EventWaveStarted   = "wave.started"
	EventImpact        = "projectile.impact"
	EventRestart       = "scene.restart"
)

type PromptEvent struct {
	Show    bool
	Message string
}

// InterfaceModeEvent switches the character between gameplay and menu input.
type InterfaceModeEvent struct {
	Paused bool
}

type ShopEvent struct {
	Open bool
	NPC  string
}

type WaveEvent struct {
	Wave int
}

type ImpactEvent struct {
	Projectile uuid.UUID
	Weapon     string
	Collider   physics.ColliderID
	Point      physics.Vec3
}

type RestartEvent struct {
	Count int
}
