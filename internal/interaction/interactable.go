package interaction

import (
	"github.com/Versifine/lowpoly/internal/physics"
)

const DefaultPrompt = "[F] Interact"

// Interactable is anything the player can use by looking at it and pressing
// the interact key.
type Interactable interface {
	Prompt() string
	Interact()
}

// NPC opens the shop when used.
type NPC struct {
	name   string
	prompt string
	shop   *Shop
}

func NewNPC(name, prompt string, shop *Shop) *NPC {
	if name == "" {
		name = "Merchant"
	}
	if prompt == "" {
		prompt = DefaultPrompt
	}
	return &NPC{name: name, prompt: prompt, shop: shop}
}

func (n *NPC) Name() string   { return n.name }
func (n *NPC) Prompt() string { return n.prompt }

func (n *NPC) Interact() {
	if n.shop != nil {
		n.shop.Open(n.name)
	}
}

// WaveButton starts the next wave when used.
type WaveButton struct {
	prompt string
	waves  *WaveManager
}

func NewWaveButton(prompt string, waves *WaveManager) *WaveButton {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	return &WaveButton{prompt: prompt, waves: waves}
}

func (b *WaveButton) Prompt() string { return b.prompt }

func (b *WaveButton) Interact() {
	if b.waves != nil {
		b.waves.StartNextWave()
	}
}

// Registry resolves colliders hit by the interaction ray to their owners.
type Registry struct {
	owners map[physics.ColliderID]Interactable
}

func NewRegistry() *Registry {
	return &Registry{owners: make(map[physics.ColliderID]Interactable)}
}

func (r *Registry) Register(id physics.ColliderID, it Interactable) {
	if id == 0 || it == nil {
		return
	}
	r.owners[id] = it
}

func (r *Registry) Unregister(id physics.ColliderID) {
	delete(r.owners, id)
}

func (r *Registry) Lookup(id physics.ColliderID) (Interactable, bool) {
	if r == nil {
		return nil, false
	}
	it, ok := r.owners[id]
	return it, ok
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.owners)
}
