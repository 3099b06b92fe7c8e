package game

import "testing"

// terrainField lays a uniform cols x rows field with origin (0, 0),
// bypassing the builder so tests can place raw water without the
// shoreline pass rewriting it.
func terrainField(ground TileType, cols, rows int) *CollisionMap {
	m := newCollisionMap(cols, rows, TileSize, 0, 0)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			m.setTile(col, row, ground)
		}
	}
	return m
}

// clearanceField is a 12x12 grass field with a single blocker at cell (6, 6),
// which spans world [192, 224) on both axes.
func clearanceField(blocker TileType) *CollisionMap {
	m := terrainField(TileGrass, 12, 12)
	m.setTile(6, 6, blocker)
	return m
}

func TestIsClearZeroRadiusIsThePointQuery(t *testing.T) {
	m := terrainField(TileGrass, 12, 12)
	m.setTile(2, 2, TileWater)

	if m.IsClear(80, 80, 0) {
		t.Error("zero-radius probe on a water cell center reports clear")
	}
	if got, want := m.IsClear(80, 80, 0), m.IsWorldPosWalkable(80, 80); got != want {
		t.Errorf("zero-radius IsClear = %t, point query = %t", got, want)
	}
	if !m.IsClear(48, 48, 0) {
		t.Error("zero-radius probe on open grass reports blocked")
	}
	if m.IsClear(80, 80, -5) != m.IsClear(80, 80, 0) {
		t.Error("negative radius does not degrade to the point query")
	}
}

func TestIsClearClosedWorldEdge(t *testing.T) {
	// All-walkable world, 12x12 cells spanning [0, 384) on both axes. The
	// only thing that can block here is the world boundary itself.
	m := terrainField(TileGrass, 12, 12)

	if !m.IsClear(16, 16, 10) {
		t.Error("disc fully inside the world reports blocked")
	}
	if m.IsClear(8, 16, 10) {
		t.Error("disc poking past the west edge reports clear")
	}
	// Tangent counts as inside: the extent check is inclusive.
	if !m.IsClear(10, 16, 10) {
		t.Error("disc flush against the west edge reports blocked")
	}
	if !m.IsClear(374, 368, 10) {
		t.Error("disc flush against the east edge reports blocked")
	}
	if m.IsClear(375, 368, 10) {
		t.Error("disc past the east edge reports clear")
	}
}

func TestIsClearPaddedKeepOutPerCategory(t *testing.T) {
	// Approaching the blocker's top edge (y = 192) head-on with radius 10.
	// Each category pads the probe by its clearance multiplier, so the
	// blocked band starts at a different distance per category.
	cases := []struct {
		blocker TileType
		keepOut float64
	}{
		{TileWater, 11},
		{TileTree, 13},
		{TileRock, 14},
	}
	for _, c := range cases {
		m := clearanceField(c.blocker)
		cx := 208.0 // aligned with the blocker's center column

		atBoundary := 192 - c.keepOut
		if m.IsClear(cx, atBoundary+0.5, 10) {
			t.Errorf("%s: probe inside the keep-out band reports clear", c.blocker)
		}
		// Exact touch blocks too; the overlap comparison is inclusive.
		if m.IsClear(cx, atBoundary, 10) {
			t.Errorf("%s: probe touching the padded boundary reports clear", c.blocker)
		}
		if !m.IsClear(cx, atBoundary-0.5, 10) {
			t.Errorf("%s: probe just outside the keep-out band reports blocked", c.blocker)
		}
		if m.IsClear(cx, 192-5, 10) {
			t.Errorf("%s: probe overlapping the cell itself reports clear", c.blocker)
		}
	}
}

func TestIsClearCornerUsesClosestPoint(t *testing.T) {
	// Diagonal approaches measure against the cell corner, not the face, so
	// a probe can sit closer than the keep-out on each axis and still be
	// clear. Rock keep-out is 14; the corner of interest is (192, 192).
	m := clearanceField(TileRock)

	// dist to corner = sqrt(9^2 + 9^2) = 12.73 <= 14: blocked.
	if m.IsClear(183, 183, 10) {
		t.Error("probe 12.7 from the corner reports clear")
	}
	// dist = sqrt(11^2 + 11^2) = 15.56 > 14: clear, although each axis
	// distance alone (11) is inside the keep-out.
	if !m.IsClear(181, 181, 10) {
		t.Error("probe 15.6 from the corner reports blocked")
	}
}

func TestIsClearScalesWithRadius(t *testing.T) {
	// The keep-out band grows with the probe radius: rock pads radius 30 to
	// an effective 42.
	m := terrainField(TileGrass, 12, 12)
	m.setTile(6, 6, TileRock)

	if m.IsClear(208, 192-42, 30) {
		t.Error("wide probe touching its padded boundary reports clear")
	}
	if !m.IsClear(208, 192-43, 30) {
		t.Error("wide probe outside its padded boundary reports blocked")
	}
}
