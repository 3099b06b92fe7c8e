package game

// visionRadius is how far around itself the player uncovers the island, in
// world units.
const visionRadius = 320.0

// FogOfWar remembers which cells the player has ever seen. Purely visual:
// it never feeds back into walkability or movement.
type FogOfWar struct {
	explored []bool // row-major, same extent as the collision map
	cols     int
	rows     int
	seen     int
}

// NewFogOfWar creates an all-hidden fog sized to the built map.
func NewFogOfWar(m *CollisionMap) *FogOfWar {
	return &FogOfWar{
		explored: make([]bool, m.Cols*m.Rows),
		cols:     m.Cols,
		rows:     m.Rows,
	}
}

// Reveal marks every cell whose centre lies within the vision radius of
// (wx, wy) as permanently explored. Returns how many cells were newly
// uncovered.
func (f *FogOfWar) Reveal(m *CollisionMap, wx, wy float64) int {
	minCol, minRow := m.WorldToGrid(wx-visionRadius, wy-visionRadius)
	maxCol, maxRow := m.WorldToGrid(wx+visionRadius, wy+visionRadius)
	r2 := visionRadius * visionRadius
	newly := 0
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if !m.InBounds(col, row) {
				continue
			}
			i := row*f.cols + col
			if f.explored[i] {
				continue
			}
			cx, cy := m.CellCenter(col, row)
			dx := cx - wx
			dy := cy - wy
			if dx*dx+dy*dy <= r2 {
				f.explored[i] = true
				f.seen++
				newly++
			}
		}
	}
	return newly
}

// Explored reports whether cell (col, row) has been seen. Out of bounds is
// never explored.
func (f *FogOfWar) Explored(col, row int) bool {
	if col < 0 || col >= f.cols || row < 0 || row >= f.rows {
		return false
	}
	return f.explored[row*f.cols+col]
}

// ExploredFrac returns the fraction of cells seen so far, 0 to 1.
func (f *FogOfWar) ExploredFrac() float64 {
	if len(f.explored) == 0 {
		return 0
	}
	return float64(f.seen) / float64(len(f.explored))
}
