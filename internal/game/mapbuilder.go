package game

import (
	"math"
	"sync"
	"time"
)

// BuildStats summarises one successful map build for logs and reports.
type BuildStats struct {
	Cols, Rows     int
	MinCol, MinRow int // extent minimum in nominal grid coordinates
	Placements     int
	Consolidated   int // cells after top-layer-wins reduction
	Shored         int // water cells reclassified to shore
	Counts         [tileTypeCount]int
	Elapsed        time.Duration
}

// MapBuilder turns tagged tile placements into a CollisionMap exactly once
// per session. Two states, one transition: Unbuilt until the first non-empty
// placement set arrives, Built forever after. The transition guard and the
// build run under one lock so a parallel caller can never double-build.
type MapBuilder struct {
	mu    sync.Mutex
	built *CollisionMap
	stats BuildStats
}

// Built returns the constructed map, or nil while unbuilt.
func (b *MapBuilder) Built() *CollisionMap {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.built
}

// Stats returns the stats of the successful build, zero value while unbuilt.
func (b *MapBuilder) Stats() BuildStats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stats
}

// Build consumes placements and constructs the map. Nil or empty input means
// the source is not ready yet: nothing happens, the builder stays Unbuilt and
// expects to be polled again. After the first success every further call is a
// no-op returning the same map, whatever the input.
func (b *MapBuilder) Build(placements []TilePlacement) *CollisionMap {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.built != nil {
		return b.built
	}
	if len(placements) == 0 {
		return nil
	}

	start := time.Now()

	// Project every placement onto the shared grid, keep one winner per
	// cell and track the observed extent as we go.
	winners := make(map[[2]int]TilePlacement, len(placements))
	var minCol, minRow, maxCol, maxRow int
	first := true
	for _, p := range placements {
		col := int(math.Floor((p.WorldX - nominalOriginX) / TileSize))
		row := int(math.Floor((p.WorldY - nominalOriginY) / TileSize))
		if first {
			minCol, maxCol = col, col
			minRow, maxRow = row, row
			first = false
		} else {
			if col < minCol {
				minCol = col
			}
			if col > maxCol {
				maxCol = col
			}
			if row < minRow {
				minRow = row
			}
			if row > maxRow {
				maxRow = row
			}
		}
		key := [2]int{col, row}
		cur, ok := winners[key]
		if !ok || placementBeats(p, cur) {
			winners[key] = p
		}
	}

	cols := maxCol - minCol + 1
	rows := maxRow - minRow + 1
	m := newCollisionMap(cols, rows, TileSize,
		nominalOriginX+float64(minCol)*TileSize,
		nominalOriginY+float64(minRow)*TileSize)
	for key, p := range winners {
		m.setTile(key[0]-minCol, key[1]-minRow, p.Type)
	}

	shored := shorelinePass(m)

	b.built = m
	b.stats = BuildStats{
		Cols:         cols,
		Rows:         rows,
		MinCol:       minCol,
		MinRow:       minRow,
		Placements:   len(placements),
		Consolidated: len(winners),
		Shored:       shored,
		Counts:       m.CategoryCounts(),
		Elapsed:      time.Since(start),
	}
	return m
}

// placementBeats reports whether p should replace cur as a cell's winner.
// Higher layer wins: a cell rendered with water stacked over ground must
// collide as water. On a layer tie the more restrictive placement wins
// (non-walkable over walkable, then the larger clearance multiplier, then
// the larger ordinal) so input order never decides.
func placementBeats(p, cur TilePlacement) bool {
	if p.Layer != cur.Layer {
		return p.Layer > cur.Layer
	}
	pw, cw := p.Type.Walkable(), cur.Type.Walkable()
	if pw != cw {
		return !pw
	}
	if pm, cm := p.Type.ClearanceMul(), cur.Type.ClearanceMul(); pm != cm {
		return pm > cm
	}
	return p.Type > cur.Type
}

// shorelinePass reclassifies water cells that touch walkable land into
// shore. Candidates are collected against the pre-pass grid and applied
// afterwards; mutating while scanning would let a fresh shore cell leak into
// its neighbours' scans in the same pass.
func shorelinePass(m *CollisionMap) int {
	var toShore [][2]int
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			if m.TypeAt(col, row) != TileWater {
				continue
			}
			if hasWalkableNeighbour(m, col, row) {
				toShore = append(toShore, [2]int{col, row})
			}
		}
	}
	for _, c := range toShore {
		m.setTile(c[0], c[1], TileShore)
	}
	return len(toShore)
}

// hasWalkableNeighbour checks the eight surrounding cells.
func hasWalkableNeighbour(m *CollisionMap, col, row int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if m.IsWalkable(col+dx, row+dy) {
				return true
			}
		}
	}
	return false
}
