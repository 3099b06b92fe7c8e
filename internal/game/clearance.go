package game

// IsClear reports whether a disc at (cx, cy) with the given radius avoids
// every blocking tile. The world edge is always a hard boundary: a disc
// poking past it fails before any cell is examined. A zero (or negative)
// radius degenerates to the point-walkability query.
func (m *CollisionMap) IsClear(cx, cy, radius float64) bool {
	if !m.circleWithinExtent(cx, cy, radius) {
		return false
	}
	if radius <= 0 {
		return m.IsWorldPosWalkable(cx, cy)
	}

	// Only a bounded cell window is examined, never the whole grid. The
	// window has to reach as far as the worst-case padded radius: a rock
	// repels at 1.4x, so it blocks from cells the raw bounding box never
	// touches.
	reach := radius * maxClearanceMul
	minCol, minRow := m.WorldToGrid(cx-reach, cy-reach)
	maxCol, maxRow := m.WorldToGrid(cx+reach, cy+reach)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if !m.InBounds(col, row) {
				// Past the world edge. The extent check above
				// already kept the disc itself inside.
				continue
			}
			t := m.tiles[m.idx(col, row)]
			if t.Walkable() {
				continue
			}
			// Effective radius grows by the category's clearance
			// multiplier, so hard props repel from further away
			// than the waterline does.
			if m.circleIntersectsCell(cx, cy, radius*t.ClearanceMul(), col, row) {
				return false
			}
		}
	}
	return true
}

// circleWithinExtent reports whether the disc fits inside the map's world
// rectangle.
func (m *CollisionMap) circleWithinExtent(cx, cy, radius float64) bool {
	minX, minY, maxX, maxY := m.WorldExtent()
	return cx-radius >= minX && cx+radius <= maxX &&
		cy-radius >= minY && cy+radius <= maxY
}

// circleIntersectsCell is a circle-vs-AABB closest point test against the
// cell's world rectangle.
func (m *CollisionMap) circleIntersectsCell(cx, cy, radius float64, col, row int) bool {
	minX, minY, maxX, maxY := m.CellRect(col, row)
	px := clamp(cx, minX, maxX)
	py := clamp(cy, minY, maxY)
	dx := cx - px
	dy := cy - py
	return dx*dx+dy*dy <= radius*radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
