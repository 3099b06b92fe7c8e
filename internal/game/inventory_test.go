package game

import "testing"

func TestInventoryCounts(t *testing.T) {
	inv := NewInventory()
	if inv.Total() != 0 || inv.Count(ItemPlant) != 0 {
		t.Fatal("fresh inventory is not empty")
	}

	if got := inv.Add(ItemPlant); got != 1 {
		t.Errorf("first plant Add returned %d, want 1", got)
	}
	if got := inv.Add(ItemPlant); got != 2 {
		t.Errorf("second plant Add returned %d, want 2", got)
	}
	if got := inv.Add(ItemStump); got != 1 {
		t.Errorf("first stump Add returned %d, want 1", got)
	}

	if inv.Count(ItemPlant) != 2 || inv.Count(ItemStump) != 1 {
		t.Errorf("counts plant=%d stump=%d, want 2 and 1", inv.Count(ItemPlant), inv.Count(ItemStump))
	}
	if inv.Total() != 3 {
		t.Errorf("Total = %d, want 3", inv.Total())
	}
}

func TestInventorySummary(t *testing.T) {
	inv := NewInventory()
	if got := inv.Summary(); got != "empty" {
		t.Errorf("empty summary = %q", got)
	}

	inv.Add(ItemStump)
	inv.Add(ItemPlant)
	inv.Add(ItemPlant)
	if got, want := inv.Summary(), "plant: 2, stump: 1"; got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
}

func TestItemKindStrings(t *testing.T) {
	if ItemPlant.String() != "plant" || ItemStump.String() != "stump" {
		t.Errorf("item names: %s, %s", ItemPlant, ItemStump)
	}
	for k := ItemKind(0); k < itemKindCount; k++ {
		if k.String() == "unknown" {
			t.Errorf("kind %d renders as unknown", k)
		}
	}
}
