package game

// TilePlacement is one tagged tile record handed to the map builder. Several
// placements may share a planar cell at different layers (ground under water,
// props over grass); the builder keeps the topmost.
type TilePlacement struct {
	Type   TileType
	WorldX float64 // planar world position, same transform the sprite got
	WorldY float64
	Layer  int // vertical layer height
}

// Vertical layers used by the placement sources.
const (
	layerGround = 0
	layerProps  = 2
	layerWater  = 3
)

// PlacementSource yields the tile placements for a map build. Placements
// returns nil until the source holds a complete, stable set; the builder
// polls it once per tick until then.
type PlacementSource interface {
	Placements() []TilePlacement
}
