package game

import "testing"

func TestWalkableMatchesCategory(t *testing.T) {
	blocking := map[TileType]bool{
		TileWater: true,
		TileTree:  true,
		TileRock:  true,
	}
	for tt := TileType(0); tt < tileTypeCount; tt++ {
		want := !blocking[tt]
		if got := tt.Walkable(); got != want {
			t.Errorf("%s.Walkable() = %v, want %v", tt, got, want)
		}
	}
}

func TestClearanceMulNeverShrinksTheRadius(t *testing.T) {
	for tt := TileType(0); tt < tileTypeCount; tt++ {
		if mul := tt.ClearanceMul(); mul < 1.0 {
			t.Errorf("%s.ClearanceMul() = %.2f, below 1.0", tt, mul)
		}
	}
	// Water is the loosest blocker, rock the strictest.
	if w, tr, r := TileWater.ClearanceMul(), TileTree.ClearanceMul(), TileRock.ClearanceMul(); !(w < tr && tr < r) {
		t.Errorf("keep-out ordering water=%.2f tree=%.2f rock=%.2f, want water < tree < rock", w, tr, r)
	}
}

func TestSpeedMulStaysInUnitRange(t *testing.T) {
	for tt := TileType(0); tt < tileTypeCount; tt++ {
		mul := tt.SpeedMul()
		if mul <= 0 || mul > 1.0 {
			t.Errorf("%s.SpeedMul() = %.2f, want in (0, 1]", tt, mul)
		}
	}
	if dry, grass := TileYellowGrass.SpeedMul(), TileGrass.SpeedMul(); dry >= grass {
		t.Errorf("dry grass pace %.2f should be slower than meadow pace %.2f", dry, grass)
	}
}

func TestTileTypeStrings(t *testing.T) {
	for tt := TileType(0); tt < tileTypeCount; tt++ {
		if tt.String() == "unknown" {
			t.Errorf("tile type %d has no name", tt)
		}
	}
	if got := TileYellowGrass.String(); got != "yellow_grass" {
		t.Errorf("TileYellowGrass.String() = %q", got)
	}
	if got := tileTypeCount.String(); got != "unknown" {
		t.Errorf("sentinel stringifies to %q, want unknown", got)
	}
}
