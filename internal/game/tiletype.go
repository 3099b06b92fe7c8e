package game

// TileType classifies one cell of the island for collision and interaction.
type TileType uint8

const (
	TileDirt        TileType = iota // Bare sand / packed earth
	TileGrass                       // Meadow ground
	TileYellowGrass                 // Dry grass, slow going
	TileWater                       // Open water, blocks movement
	TileShore                       // Walkable waterline, produced by the builder
	TileTree                        // Tree trunk, blocks movement
	TileRock                        // Boulder, blocks movement
	TilePlant                       // Low plant, walkable, collectable
	TileStump                       // Cut stump, walkable, collectable
	TileEmpty                       // Void space with no tile
	tileTypeCount                   // sentinel
)

// Walkable reports whether an agent can stand on this tile type.
func (t TileType) Walkable() bool {
	switch t {
	case TileWater, TileTree, TileRock:
		return false
	default:
		return true
	}
}

// ClearanceMul returns the padding multiplier applied to a query radius when
// this tile type blocks. Always >= 1.0. Water stays loose so wading up to the
// line feels forgiving; props stay strict.
func (t TileType) ClearanceMul() float64 {
	switch t {
	case TileWater:
		return 1.1
	case TileTree:
		return 1.3
	case TileRock:
		return 1.4
	default:
		return 1.0
	}
}

// maxClearanceMul is the largest padding factor any category returns. The
// clearance scan sizes its cell window with it, so a padded blocker just past
// the disc's own bounding box still gets examined.
var maxClearanceMul = largestClearanceMul()

func largestClearanceMul() float64 {
	mul := 1.0
	for t := TileType(0); t < tileTypeCount; t++ {
		if m := t.ClearanceMul(); m > mul {
			mul = m
		}
	}
	return mul
}

// SpeedMul returns the walking speed multiplier for this terrain.
func (t TileType) SpeedMul() float64 {
	switch t {
	case TileDirt:
		return 1.0
	case TileGrass:
		return 0.85
	case TileYellowGrass:
		return 0.7
	default:
		return 1.0
	}
}

func (t TileType) String() string {
	switch t {
	case TileDirt:
		return "dirt"
	case TileGrass:
		return "grass"
	case TileYellowGrass:
		return "yellow_grass"
	case TileWater:
		return "water"
	case TileShore:
		return "shore"
	case TileTree:
		return "tree"
	case TileRock:
		return "rock"
	case TilePlant:
		return "plant"
	case TileStump:
		return "stump"
	case TileEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// tileBaseColour returns the base RGB colour for drawing a tile type.
func tileBaseColour(t TileType) (r, g, b uint8) {
	switch t {
	case TileDirt:
		return 116, 102, 70
	case TileGrass:
		return 52, 84, 48
	case TileYellowGrass:
		return 104, 100, 54
	case TileWater:
		return 30, 62, 96
	case TileShore:
		return 96, 108, 82
	case TileTree:
		return 30, 52, 32
	case TileRock:
		return 92, 92, 96
	case TilePlant:
		return 58, 98, 58
	case TileStump:
		return 82, 60, 40
	case TileEmpty:
		return 14, 14, 18
	default:
		return 14, 14, 18
	}
}
