package game

import (
	"math"
	"testing"
)

// dumpWalk prints the recorded snapshots of a scenario walk so they appear
// in `go test -v` output.
func dumpWalk(t *testing.T, p *Player, every int) {
	t.Helper()
	snaps := p.Snapshots(0, 1<<30)
	if len(snaps) == 0 {
		t.Log("(no snapshots)")
		return
	}
	for i, s := range snaps {
		if i%every == 0 || i == len(snaps)-1 {
			t.Log(s.compactString())
		}
	}
}

// meadow lays a 13x11 grass field occupying sketch cells (30, 20) through
// (42, 30). Built, its origin lands on (0, -32) which keeps the scenario
// arithmetic readable: cell (c, r) covers x [c*32, c*32+32).
func meadow() *IslandSketch {
	sk := NewIslandSketch()
	sk.GroundRect(TileGrass, 30, 20, 13, 11)
	return sk
}

// --- Scenario: walking toward open sea stops on the shore ---

func TestScenario_WadeTowardOpenSea(t *testing.T) {
	t.Log("=== TestScenario_WadeTowardOpenSea ===")
	t.Log("--- Setup: grass field east, four columns of open sea west, walk due west ---")

	sk := NewIslandSketch()
	sk.GroundRect(TileGrass, 34, 20, 9, 11)
	sk.WaterRect(30, 20, 4, 11)
	m := sk.Build()
	if m == nil {
		t.Fatal("scenario map did not build")
	}
	// The sea column touching the grass must have shored; the rest stays sea.
	if got := m.TypeAt(3, 5); got != TileShore {
		t.Fatalf("landward sea column is %s, want shore", got)
	}
	if got := m.TypeAt(2, 5); got != TileWater {
		t.Fatalf("second sea column is %s, want water", got)
	}

	p := NewPlayer(240, 144)
	stopped := 0
	for tick := 0; tick < 70; tick++ {
		snap := p.Step(tick, m, -1, 0)
		if snap.Tile == TileWater {
			t.Fatalf("T=%d: player is standing in open water at (%.1f, %.1f)", tick, snap.X, snap.Y)
		}
		if snap.Stopped {
			stopped++
		}
	}
	dumpWalk(t, p, 10)

	final := p.LastSnapshot()
	if !m.IsWorldPosWalkable(final.X, final.Y) {
		t.Errorf("final position (%.1f, %.1f) is not on walkable ground", final.X, final.Y)
	}
	if final.Tile != TileShore {
		t.Errorf("walk ended on %s, want shore", final.Tile)
	}
	if final.Y != 144 {
		t.Errorf("due-west walk drifted to y=%.2f", final.Y)
	}
	// Water edge sits at x=96; water keeps the disc out at radius*1.1 = 11.
	waded := final.X - 96
	if waded <= 11.0 || waded >= 14.0 {
		t.Errorf("player pinned %.2f units off the water edge, want just past 11", waded)
	}
	if stopped == 0 {
		t.Error("head-on walk into the sea never produced a stopped tick")
	}
	t.Logf("PASS: pinned on the shore %.2f units off the water edge after %d stopped ticks", waded, stopped)
}

// --- Scenario: a tree line deflects a diagonal walk into a slide ---

func TestScenario_TreelineSlide(t *testing.T) {
	t.Log("=== TestScenario_TreelineSlide ===")
	t.Log("--- Setup: vertical tree wall at x=192, walk south-east into it ---")

	sk := meadow()
	for row := 21; row <= 29; row++ {
		sk.Prop(TileTree, 36, row)
	}
	m := sk.Build()
	if m == nil {
		t.Fatal("scenario map did not build")
	}

	p := NewPlayer(176, 80)
	startY := p.Y
	slidY, stopped := 0, 0
	maxX := p.X
	for tick := 0; tick < 25; tick++ {
		snap := p.Step(tick, m, 1, 1)
		if snap.SlidY {
			slidY++
		}
		if snap.Stopped {
			stopped++
		}
		maxX = math.Max(maxX, snap.X)
	}
	dumpWalk(t, p, 5)

	final := p.LastSnapshot()
	// Trees keep the disc out at radius*1.3 = 13, so x can never reach 179.
	if maxX >= 179.0 {
		t.Errorf("player reached x=%.2f, tree line should pin x below 179", maxX)
	}
	if final.Y < startY+40 {
		t.Errorf("player only slid to y=%.2f, wall should not absorb the southward motion", final.Y)
	}
	if slidY < 20 {
		t.Errorf("only %d slid-Y ticks recorded, want the pinned stretch to slide", slidY)
	}
	if stopped != 0 {
		t.Errorf("%d stopped ticks during a slide, the south axis was always open", stopped)
	}
	t.Logf("PASS: pinned at x=%.2f and slid %.1f units south over %d sliding ticks",
		final.X, final.Y-startY, slidY)
}

// --- Scenario: a boulder pocket corner stops movement dead ---

func TestScenario_BoulderPocketStop(t *testing.T) {
	t.Log("=== TestScenario_BoulderPocketStop ===")
	t.Log("--- Setup: rock walls east and south, walk south-east into the corner ---")

	sk := meadow()
	for row := 22; row <= 27; row++ {
		sk.Prop(TileRock, 36, row)
	}
	for col := 31; col <= 36; col++ {
		sk.Prop(TileRock, col, 27)
	}
	m := sk.Build()
	if m == nil {
		t.Fatal("scenario map did not build")
	}

	p := NewPlayer(120, 120)
	stopped := 0
	var pinX, pinY float64
	for tick := 0; tick < 45; tick++ {
		snap := p.Step(tick, m, 1, 1)
		if snap.Stopped {
			if stopped == 0 {
				pinX, pinY = snap.X, snap.Y
			} else if snap.X != pinX || snap.Y != pinY {
				t.Errorf("T=%d: position crept to (%.4f, %.4f) while stopped at (%.4f, %.4f)",
					tick, snap.X, snap.Y, pinX, pinY)
			}
			stopped++
		}
	}
	dumpWalk(t, p, 10)

	final := p.LastSnapshot()
	if stopped < 10 {
		t.Fatalf("only %d stopped ticks, the corner should hold the player", stopped)
	}
	if !m.IsClear(final.X, final.Y, p.Radius) {
		t.Errorf("final position (%.2f, %.2f) is not clear at the player radius", final.X, final.Y)
	}
	// Rock keep-out is radius*1.4 = 14 off both walls at x=192 and y=192.
	if final.X >= 178.0 || final.Y >= 178.0 {
		t.Errorf("player penetrated the keep-out, final (%.2f, %.2f)", final.X, final.Y)
	}
	if final.X < 160 || final.Y < 160 {
		t.Errorf("player never reached the pocket, final (%.2f, %.2f)", final.X, final.Y)
	}
	t.Logf("PASS: wedged at (%.2f, %.2f) for %d ticks without creeping", final.X, final.Y, stopped)
}

// --- Scenario: water lets the player wade closer than rock ---

func TestScenario_CategoryKeepOut(t *testing.T) {
	t.Log("=== TestScenario_CategoryKeepOut ===")
	t.Log("--- Setup: identical approach to a water pocket and to a boulder ---")

	waterSk := meadow()
	waterSk.WaterRect(35, 24, 3, 3)
	waterM := waterSk.Build()

	rockSk := meadow()
	rockSk.Prop(TileRock, 36, 25)
	rockM := rockSk.Build()

	if waterM == nil || rockM == nil {
		t.Fatal("scenario maps did not build")
	}
	// Only the pocket centre survives the shoreline pass as real water.
	if got := waterM.TypeAt(6, 5); got != TileWater {
		t.Fatalf("pocket centre is %s, want water", got)
	}
	if got := waterM.TypeAt(5, 5); got != TileShore {
		t.Fatalf("pocket rim is %s, want shore", got)
	}

	approach := func(m *CollisionMap) MoveSnapshot {
		p := NewPlayer(150, 144)
		for tick := 0; tick < 40; tick++ {
			p.Step(tick, m, 1, 0)
		}
		return p.LastSnapshot()
	}

	// Both obstacles occupy the same cell, x [192, 224).
	waterFinal := approach(waterM)
	rockFinal := approach(rockM)
	waterDist := 192 - waterFinal.X
	rockDist := 192 - rockFinal.X

	if waterFinal.Y != 144 || rockFinal.Y != 144 {
		t.Errorf("head-on approach drifted: water y=%.2f rock y=%.2f", waterFinal.Y, rockFinal.Y)
	}
	if waterDist <= 11.0 {
		t.Errorf("player got %.2f units from the water cell, inside the 11 unit keep-out", waterDist)
	}
	if rockDist <= 14.0 {
		t.Errorf("player got %.2f units from the boulder, inside the 14 unit keep-out", rockDist)
	}
	if waterDist >= 14.0 {
		t.Errorf("water pinned the player %.2f units out, should wade inside the boulder's 14", waterDist)
	}
	if waterDist >= rockDist {
		t.Errorf("water pinned at %.2f, rock at %.2f: water should allow the closer approach",
			waterDist, rockDist)
	}
	if waterFinal.Tile != TileShore {
		t.Errorf("water approach ended on %s, want shore", waterFinal.Tile)
	}
	t.Logf("PASS: pinned %.2f units off the water but %.2f off the boulder", waterDist, rockDist)
}

// --- Scenario: charting the same island twice changes nothing ---

func TestScenario_ChartingIsRepeatable(t *testing.T) {
	t.Log("=== TestScenario_ChartingIsRepeatable ===")
	t.Log("--- Setup: drain one generator, build twice, then regenerate from the same seed ---")

	gen := NewIslandGenerator(99)
	for gen.Step() {
	}
	b := &MapBuilder{}
	m1 := b.Build(gen.Placements())
	if m1 == nil {
		t.Fatal("first build produced no map")
	}
	st1 := b.Stats()

	// Feeding the builder again, with real placements or with nothing, is a
	// no-op once built.
	if m2 := b.Build(gen.Placements()); m2 != m1 {
		t.Error("rebuild with the same placements returned a different map")
	}
	if m3 := b.Build(nil); m3 != m1 {
		t.Error("rebuild with nil returned a different map")
	}
	if st2 := b.Stats(); st2 != st1 {
		t.Errorf("stats changed across a no-op rebuild:\n  was %+v\n  now %+v", st1, st2)
	}

	gen2 := NewIslandGenerator(99)
	for gen2.Step() {
	}
	m4 := (&MapBuilder{}).Build(gen2.Placements())
	if m4 == nil {
		t.Fatal("second generator produced no map")
	}
	if m4.Cols != m1.Cols || m4.Rows != m1.Rows || m4.OriginX != m1.OriginX || m4.OriginY != m1.OriginY {
		t.Fatalf("same seed produced a different extent: %dx%d at (%.0f, %.0f) vs %dx%d at (%.0f, %.0f)",
			m4.Cols, m4.Rows, m4.OriginX, m4.OriginY, m1.Cols, m1.Rows, m1.OriginX, m1.OriginY)
	}
	mismatches := 0
	for row := 0; row < m1.Rows; row++ {
		for col := 0; col < m1.Cols; col++ {
			if m1.TypeAt(col, row) != m4.TypeAt(col, row) {
				mismatches++
			}
		}
	}
	if mismatches != 0 {
		t.Errorf("same seed produced %d differing cells", mismatches)
	}

	p1, p2 := gen.Pickups(), gen2.Pickups()
	if len(p1) != len(p2) {
		t.Fatalf("same seed scattered %d vs %d pickups", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Errorf("pickup %d differs: %+v vs %+v", i, p1[i], p2[i])
		}
	}
	x1, y1 := gen.SpawnPos()
	x2, y2 := gen2.SpawnPos()
	if x1 != x2 || y1 != y2 {
		t.Errorf("same seed spawned at (%.1f, %.1f) vs (%.1f, %.1f)", x1, y1, x2, y2)
	}
	t.Logf("PASS: %d cells identical across builds, %d pickups identical", m1.Cols*m1.Rows, len(p1))
}
