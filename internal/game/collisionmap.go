package game

import "math"

// Shared grid constants. Generation and rendering place sprites with these
// exact values; a mismatch would silently misalign every coordinate
// conversion, so nothing else in the repo may define its own.
const (
	// TileSize is the world-unit edge length of one grid cell.
	TileSize = 32.0

	nominalCols = 60
	nominalRows = 42
)

// Nominal world corner of cell (0, 0), centring the island on the world
// origin. The built map's own origin can differ when generation strays
// outside the nominal extent.
const (
	nominalOriginX = -nominalCols * TileSize / 2
	nominalOriginY = -nominalRows * TileSize / 2
)

// CollisionMap is the immutable walkability grid for one island session.
// Built exactly once by the MapBuilder, then read-only: safe for any number
// of concurrent readers without locking.
type CollisionMap struct {
	tiles []TileType // row-major: index = row*Cols + col
	Cols  int
	Rows  int

	TileSize float64
	OriginX  float64 // world X of cell (0, 0)'s min corner
	OriginY  float64
}

func newCollisionMap(cols, rows int, tileSize, originX, originY float64) *CollisionMap {
	tiles := make([]TileType, cols*rows)
	for i := range tiles {
		tiles[i] = TileEmpty
	}
	return &CollisionMap{
		tiles:    tiles,
		Cols:     cols,
		Rows:     rows,
		TileSize: tileSize,
		OriginX:  originX,
		OriginY:  originY,
	}
}

func (m *CollisionMap) idx(col, row int) int {
	return row*m.Cols + col
}

// InBounds reports whether (col, row) lies inside the grid.
func (m *CollisionMap) InBounds(col, row int) bool {
	return col >= 0 && col < m.Cols && row >= 0 && row < m.Rows
}

// WorldToGrid converts a world position to integer cell coordinates. The
// result may be out of bounds; queries that care check InBounds themselves.
func (m *CollisionMap) WorldToGrid(wx, wy float64) (col, row int) {
	col = int(math.Floor((wx - m.OriginX) / m.TileSize))
	row = int(math.Floor((wy - m.OriginY) / m.TileSize))
	return col, row
}

// TypeAt returns the tile type at (col, row), TileEmpty when out of bounds.
func (m *CollisionMap) TypeAt(col, row int) TileType {
	if !m.InBounds(col, row) {
		return TileEmpty
	}
	return m.tiles[m.idx(col, row)]
}

// IsWalkable reports whether (col, row) can be stood on. Out of bounds is
// never walkable.
func (m *CollisionMap) IsWalkable(col, row int) bool {
	if !m.InBounds(col, row) {
		return false
	}
	return m.tiles[m.idx(col, row)].Walkable()
}

// IsWorldPosWalkable reports whether the cell under a world position is
// walkable.
func (m *CollisionMap) IsWorldPosWalkable(wx, wy float64) bool {
	col, row := m.WorldToGrid(wx, wy)
	return m.IsWalkable(col, row)
}

// CellRect returns the world-space rectangle covered by cell (col, row).
func (m *CollisionMap) CellRect(col, row int) (minX, minY, maxX, maxY float64) {
	minX = m.OriginX + float64(col)*m.TileSize
	minY = m.OriginY + float64(row)*m.TileSize
	return minX, minY, minX + m.TileSize, minY + m.TileSize
}

// CellCenter returns the world-space centre of cell (col, row).
func (m *CollisionMap) CellCenter(col, row int) (float64, float64) {
	return m.OriginX + (float64(col)+0.5)*m.TileSize,
		m.OriginY + (float64(row)+0.5)*m.TileSize
}

// WorldExtent returns the world-space bounds covered by the whole grid.
func (m *CollisionMap) WorldExtent() (minX, minY, maxX, maxY float64) {
	return m.OriginX, m.OriginY,
		m.OriginX + float64(m.Cols)*m.TileSize,
		m.OriginY + float64(m.Rows)*m.TileSize
}

// CategoryCounts returns how many cells hold each tile type.
func (m *CollisionMap) CategoryCounts() [tileTypeCount]int {
	var counts [tileTypeCount]int
	for _, t := range m.tiles {
		counts[t]++
	}
	return counts
}

// setTile is build-time only; the map is immutable once the builder hands
// it out.
func (m *CollisionMap) setTile(col, row int, t TileType) {
	if !m.InBounds(col, row) {
		return
	}
	m.tiles[m.idx(col, row)] = t
}
