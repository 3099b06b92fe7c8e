package game

import (
	"testing"
)

// --- Invariant helpers ---

// Every built map has to satisfy these, whether it came from the noise
// generator, the authored TMX or a hand-laid sketch. The per-source tests
// all funnel through checkAllInvariants.

// checkBoundsLaw verifies InBounds matches the grid dimensions exactly and
// that everything out of bounds reads as non-walkable empty space.
func checkBoundsLaw(t *testing.T, m *CollisionMap) {
	t.Helper()
	for row := -2; row < m.Rows+2; row++ {
		for col := -2; col < m.Cols+2; col++ {
			want := col >= 0 && col < m.Cols && row >= 0 && row < m.Rows
			if got := m.InBounds(col, row); got != want {
				t.Errorf("InBounds(%d, %d) = %v, want %v", col, row, got, want)
			}
			if want {
				continue
			}
			if m.IsWalkable(col, row) {
				t.Errorf("cell (%d, %d) is out of bounds but reads walkable", col, row)
			}
			if tt := m.TypeAt(col, row); tt != TileEmpty {
				t.Errorf("cell (%d, %d) is out of bounds but reads %s", col, row, tt)
			}
		}
	}
}

// checkRoundTrip verifies every cell centre maps back onto its own cell and
// sits inside its own rect.
func checkRoundTrip(t *testing.T, m *CollisionMap) {
	t.Helper()
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			cx, cy := m.CellCenter(col, row)
			gc, gr := m.WorldToGrid(cx, cy)
			if gc != col || gr != row {
				t.Errorf("centre of (%d, %d) maps back to (%d, %d)", col, row, gc, gr)
			}
			minX, minY, maxX, maxY := m.CellRect(col, row)
			if cx < minX || cx >= maxX || cy < minY || cy >= maxY {
				t.Errorf("centre of (%d, %d) lies outside its own rect", col, row)
			}
			gc, gr = m.WorldToGrid(minX, minY)
			if gc != col || gr != row {
				t.Errorf("min corner of (%d, %d) maps back to (%d, %d)", col, row, gc, gr)
			}
		}
	}
}

// checkShorelineLaw verifies the water/shore split in both directions: every
// shore cell earned its promotion from a walkable land neighbour, and every
// cell left as water has no such neighbour.
func checkShorelineLaw(t *testing.T, m *CollisionMap) {
	t.Helper()
	land := func(tt TileType) bool { return tt.Walkable() && tt != TileShore }
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			switch m.TypeAt(col, row) {
			case TileShore:
				if !hasNeighbour(m, col, row, land) {
					t.Errorf("shore cell (%d, %d) has no walkable land neighbour", col, row)
				}
			case TileWater:
				if hasNeighbour(m, col, row, land) {
					t.Errorf("water cell (%d, %d) touches walkable land, should be shore", col, row)
				}
			}
		}
	}
}

// hasNeighbour reports whether any of the up-to-eight in-bounds neighbours
// of (col, row) satisfies pred.
func hasNeighbour(m *CollisionMap, col, row int, pred func(TileType) bool) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if m.InBounds(col+dx, row+dy) && pred(m.TypeAt(col+dx, row+dy)) {
				return true
			}
		}
	}
	return false
}

// checkClearanceConsistency verifies a clear disc always implies a walkable
// centre cell, and that shrinking the disc never turns a clear spot blocked.
func checkClearanceConsistency(t *testing.T, m *CollisionMap, radius float64) {
	t.Helper()
	smaller := radius / 2
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			cx, cy := m.CellCenter(col, row)
			if !m.IsClear(cx, cy, radius) {
				continue
			}
			if !m.IsWorldPosWalkable(cx, cy) {
				t.Errorf("cell (%d, %d): disc r=%.1f clear on an unwalkable centre", col, row, radius)
			}
			if !m.IsClear(cx, cy, smaller) {
				t.Errorf("cell (%d, %d): clear at r=%.1f but blocked at r=%.1f", col, row, radius, smaller)
			}
		}
	}
}

// checkCategoryCountsAddUp verifies the per-category histogram covers every
// cell exactly once.
func checkCategoryCountsAddUp(t *testing.T, m *CollisionMap) {
	t.Helper()
	total := 0
	for _, n := range m.CategoryCounts() {
		total += n
	}
	if total != m.Cols*m.Rows {
		t.Errorf("category counts sum to %d, want %d cells", total, m.Cols*m.Rows)
	}
}

func checkAllInvariants(t *testing.T, m *CollisionMap) {
	t.Helper()
	checkBoundsLaw(t, m)
	checkRoundTrip(t, m)
	checkShorelineLaw(t, m)
	checkClearanceConsistency(t, m, playerRadius)
	checkCategoryCountsAddUp(t, m)
}

// --- Invariant test scenarios ---

func TestInvariant_GeneratedIslands(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		gen := NewIslandGenerator(seed)
		for gen.Step() {
		}
		m := (&MapBuilder{}).Build(gen.Placements())
		if m == nil {
			t.Fatalf("seed %d: generated placements did not build", seed)
		}
		if m.Cols != nominalCols || m.Rows != nominalRows {
			t.Fatalf("seed %d: generated map is %dx%d, want %dx%d",
				seed, m.Cols, m.Rows, nominalCols, nominalRows)
		}
		checkAllInvariants(t, m)
	}
}

func TestInvariant_SketchIsland(t *testing.T) {
	sk := NewIslandSketch()
	sk.GroundRect(TileDirt, 0, 0, 12, 10)
	sk.WaterRect(0, 0, 12, 2)
	sk.WaterRect(0, 8, 12, 2)
	sk.WaterRect(0, 2, 2, 6)
	sk.WaterRect(10, 2, 2, 6)
	sk.GroundRect(TileGrass, 2, 2, 8, 6)
	sk.Prop(TileTree, 4, 4)
	sk.Prop(TileRock, 7, 5)
	sk.Prop(TilePlant, 5, 3)
	sk.Prop(TileStump, 6, 6)

	m := sk.Build()
	if m == nil {
		t.Fatal("sketch did not build")
	}
	if m.Cols != 12 || m.Rows != 10 {
		t.Fatalf("sketch map is %dx%d, want 12x10", m.Cols, m.Rows)
	}
	checkAllInvariants(t, m)

	// The outer sea ring never borders land so it must still be water; the
	// inner ring borders the grass island and must have shored.
	if got := m.TypeAt(0, 0); got != TileWater {
		t.Errorf("outer sea corner is %s, want water", got)
	}
	if got := m.TypeAt(1, 2); got != TileShore {
		t.Errorf("inner sea ring cell (1, 2) is %s, want shore", got)
	}
}
