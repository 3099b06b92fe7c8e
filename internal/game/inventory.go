package game

import (
	"fmt"
	"sort"
	"strings"
)

// pickupRadius is how close the player's feet must come before an item is
// collected, in world units.
const pickupRadius = 40.0

// ItemKind identifies a collectable item.
type ItemKind uint8

const (
	ItemPlant     ItemKind = iota // harvestable plant
	ItemStump                     // loose stump wood
	itemKindCount                 // sentinel
)

func (k ItemKind) String() string {
	switch k {
	case ItemPlant:
		return "plant"
	case ItemStump:
		return "stump"
	default:
		return "unknown"
	}
}

// Pickup is a collectable lying on the island. Collecting one never touches
// the collision map; the cell keeps its walkable plant/stump category.
type Pickup struct {
	Kind  ItemKind
	X, Y  float64
	Taken bool
}

// Inventory counts collected items per kind.
type Inventory struct {
	items map[ItemKind]int
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{items: make(map[ItemKind]int)}
}

// Add records one collected item and returns the new count for its kind.
func (inv *Inventory) Add(kind ItemKind) int {
	inv.items[kind]++
	return inv.items[kind]
}

// Count returns how many items of one kind have been collected.
func (inv *Inventory) Count(kind ItemKind) int {
	return inv.items[kind]
}

// Total returns the number of collected items across all kinds.
func (inv *Inventory) Total() int {
	total := 0
	for _, n := range inv.items {
		total += n
	}
	return total
}

// Summary renders "kind: n, kind: n" sorted by kind name, or "empty".
func (inv *Inventory) Summary() string {
	if len(inv.items) == 0 {
		return "empty"
	}
	parts := make([]string, 0, len(inv.items))
	for kind, count := range inv.items {
		parts = append(parts, fmt.Sprintf("%s: %d", kind, count))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
