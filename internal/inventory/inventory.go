package inventory

import (
	"log/slog"

	"github.com/Versifine/lowpoly/internal/logger"
)

// Equippable is anything an inventory slot can hold.
type Equippable interface {
	SetActive(active bool)
}

// Inventory is an ordered set of items of which at most one is equipped.
// The order is fixed by Init and is also the cycle order.
type Inventory[T Equippable] struct {
	items    []T
	equipped int
	log      *slog.Logger
}

func New[T Equippable]() *Inventory[T] {
	return &Inventory[T]{equipped: -1, log: logger.Component("inventory")}
}

// Init replaces the contents, deactivates every item and equips equippedAtStart.
func (inv *Inventory[T]) Init(items []T, equippedAtStart int) {
	inv.items = append([]T(nil), items...)
	inv.equipped = -1
	for _, it := range inv.items {
		it.SetActive(false)
	}
	inv.Equip(equippedAtStart)
}

// Equip activates the item at index and deactivates the previous one. Indices
// outside the inventory and the already equipped index are ignored. It returns
// the equipped item after the call.
func (inv *Inventory[T]) Equip(index int) (T, bool) {
	if len(inv.items) == 0 || index < 0 || index >= len(inv.items) || index == inv.equipped {
		if inv.log != nil {
			inv.log.Debug("equip ignored", "index", index, "equipped", inv.equipped, "size", len(inv.items))
		}
		return inv.Equipped()
	}

	if inv.equipped >= 0 {
		inv.items[inv.equipped].SetActive(false)
	}
	inv.equipped = index
	inv.items[index].SetActive(true)
	return inv.items[index], true
}

// NextIndex is the index after the equipped one, wrapping to 0.
func (inv *Inventory[T]) NextIndex() int {
	if len(inv.items) == 0 {
		return -1
	}
	next := inv.equipped + 1
	if next > len(inv.items)-1 {
		next = 0
	}
	return next
}

// LastIndex is the index before the equipped one, wrapping to the end.
func (inv *Inventory[T]) LastIndex() int {
	if len(inv.items) == 0 {
		return -1
	}
	last := inv.equipped - 1
	if last < 0 {
		last = len(inv.items) - 1
	}
	return last
}

func (inv *Inventory[T]) Equipped() (T, bool) {
	var zero T
	if inv.equipped < 0 || inv.equipped >= len(inv.items) {
		return zero, false
	}
	return inv.items[inv.equipped], true
}

func (inv *Inventory[T]) EquippedIndex() int {
	return inv.equipped
}

func (inv *Inventory[T]) Len() int {
	return len(inv.items)
}

// Items returns the slots in cycle order.
func (inv *Inventory[T]) Items() []T {
	return inv.items
}
