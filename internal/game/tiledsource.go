package game

import (
	"fmt"

	"github.com/lafriks/go-tiled"

	"github.com/Garsondee/Isle-Drifter/internal/assets"
)

// categoryByName maps the tileset's per-tile "category" property onto the
// tile types. Authored maps normally never paint shore, the builder derives
// it, but the palette carries the full set.
var categoryByName = map[string]TileType{
	"dirt":         TileDirt,
	"grass":        TileGrass,
	"yellow_grass": TileYellowGrass,
	"water":        TileWater,
	"shore":        TileShore,
	"tree":         TileTree,
	"rock":         TileRock,
	"plant":        TilePlant,
	"stump":        TileStump,
	"empty":        TileEmpty,
}

// TiledSource is the authored-map placement source: a Tiled TMX embedded in
// the binary, tile categories carried as tileset properties, layer heights
// as an int layer property. Unlike the generator it is ready immediately;
// Placements never returns nil after a successful load.
type TiledSource struct {
	placements []TilePlacement
	pickups    []Pickup

	spawnX, spawnY float64
	spawnSet       bool
}

// NewTiledSource parses an embedded TMX into placements. The map is centred
// on the world origin the same way the generator's island is.
func NewTiledSource(path string) (*TiledSource, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(assets.FS))
	if err != nil {
		return nil, fmt.Errorf("load tmx %s: %w", path, err)
	}
	if float64(levelMap.TileWidth) != TileSize || float64(levelMap.TileHeight) != TileSize {
		return nil, fmt.Errorf("tmx %s tile size %dx%d, want %.0f",
			path, levelMap.TileWidth, levelMap.TileHeight, float64(TileSize))
	}

	ts := &TiledSource{}
	originX := -float64(levelMap.Width) * TileSize / 2
	originY := -float64(levelMap.Height) * TileSize / 2

	for _, layer := range levelMap.Layers {
		// Missing height property reads as 0, the ground level.
		height := layer.Properties.GetInt("height")
		for row := 0; row < levelMap.Height; row++ {
			for col := 0; col < levelMap.Width; col++ {
				tile := layer.Tiles[row*levelMap.Width+col]
				if tile.IsNil() {
					continue
				}
				tt, err := categoryOf(tile)
				if err != nil {
					return nil, fmt.Errorf("tmx %s layer %q cell (%d, %d): %w",
						path, layer.Name, col, row, err)
				}
				wx := originX + (float64(col)+0.5)*TileSize
				wy := originY + (float64(row)+0.5)*TileSize
				ts.placements = append(ts.placements, TilePlacement{
					Type:   tt,
					WorldX: wx,
					WorldY: wy,
					Layer:  height,
				})
				switch tt {
				case TilePlant:
					ts.pickups = append(ts.pickups, Pickup{Kind: ItemPlant, X: wx, Y: wy})
				case TileStump:
					ts.pickups = append(ts.pickups, Pickup{Kind: ItemStump, X: wx, Y: wy})
				}
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "spawn" {
			continue
		}
		for _, o := range og.Objects {
			switch o.Name {
			case "player":
				ts.spawnX = originX + o.X
				ts.spawnY = originY + o.Y
				ts.spawnSet = true
			case "pickup":
				kind := ItemPlant
				if o.Properties.GetString("kind") == "stump" {
					kind = ItemStump
				}
				ts.pickups = append(ts.pickups, Pickup{
					Kind: kind,
					X:    originX + o.X,
					Y:    originY + o.Y,
				})
			}
		}
	}

	if len(ts.placements) == 0 {
		return nil, fmt.Errorf("tmx %s has no tiles", path)
	}
	return ts, nil
}

func categoryOf(tile *tiled.LayerTile) (TileType, error) {
	tsTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return TileEmpty, fmt.Errorf("tile id %d not in tileset: %w", tile.ID, err)
	}
	name := tsTile.Properties.GetString("category")
	tt, ok := categoryByName[name]
	if !ok {
		return TileEmpty, fmt.Errorf("tile id %d has unknown category %q", tile.ID, name)
	}
	return tt, nil
}

// Placements returns the parsed placement set.
func (ts *TiledSource) Placements() []TilePlacement { return ts.placements }

// Pickups returns authored pickups: plant and stump cells plus explicit
// pickup objects.
func (ts *TiledSource) Pickups() []Pickup { return ts.pickups }

// SpawnPos returns the authored player spawn, or the map centre when the
// map has none.
func (ts *TiledSource) SpawnPos() (float64, float64) {
	if !ts.spawnSet {
		return 0, 0
	}
	return ts.spawnX, ts.spawnY
}
