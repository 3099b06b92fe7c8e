package game

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Noise shape for the island generator.
const (
	genAlpha   = 2.0
	genBeta    = 2.0
	genOctaves = int32(3)

	heightScale = 0.06 // height noise frequency per cell
	moistScale  = 0.11 // moisture noise frequency per cell

	// Height thresholds, after radial falloff.
	seaLevel  = 0.34 // below: submerged ground with water stacked on top
	sandLevel = 0.42 // below: bare dirt ring around the waterline
	dryMoist  = 0.55 // meadow with moisture below this dries to yellow grass

	genRowsPerStep = 6
)

// IslandGenerator is the procedural placement source: perlin height noise
// sunk below sea level toward the map edges, so the land always ends in
// water. It emits stacked placements (ground at layer 0, water at layer 3
// over submerged ground, props at layer 2) and never emits shore; shore only
// arises from the builder's waterline pass.
//
// Generation is staged a few rows per Step call, which is why the map
// builder has to poll: Placements stays nil until the last row is done.
type IslandGenerator struct {
	seed   int64
	height *perlin.Perlin
	moist  *perlin.Perlin
	rng    *rand.Rand

	nextRow    int
	placements []TilePlacement
	pickups    []Pickup

	spawnX, spawnY float64
	spawnDist      float64
	spawnSet       bool
}

// NewIslandGenerator creates a generator for one seed. Equal seeds produce
// identical islands.
func NewIslandGenerator(seed int64) *IslandGenerator {
	return &IslandGenerator{
		seed:      seed,
		height:    perlin.NewPerlin(genAlpha, genBeta, genOctaves, seed),
		moist:     perlin.NewPerlin(genAlpha, genBeta, genOctaves, seed+1),
		rng:       rand.New(rand.NewSource(seed)), // #nosec G404 -- deterministic worldgen, not crypto
		spawnDist: math.MaxFloat64,
	}
}

// Seed returns the generator's seed.
func (g *IslandGenerator) Seed() int64 { return g.seed }

// Step generates up to a handful of rows and reports whether more remain.
func (g *IslandGenerator) Step() bool {
	if g.nextRow >= nominalRows {
		return false
	}
	stop := g.nextRow + genRowsPerStep
	if stop > nominalRows {
		stop = nominalRows
	}
	for row := g.nextRow; row < stop; row++ {
		g.generateRow(row)
	}
	g.nextRow = stop
	return g.nextRow < nominalRows
}

// Done reports whether every row has been generated.
func (g *IslandGenerator) Done() bool { return g.nextRow >= nominalRows }

// Progress reports how much of the island has been staged, in [0, 1].
func (g *IslandGenerator) Progress() float64 {
	return float64(g.nextRow) / float64(nominalRows)
}

// Placements returns the complete placement set once generation has
// finished, nil before that.
func (g *IslandGenerator) Placements() []TilePlacement {
	if !g.Done() {
		return nil
	}
	return g.placements
}

// Pickups returns the items scattered during generation.
func (g *IslandGenerator) Pickups() []Pickup {
	if !g.Done() {
		return nil
	}
	return g.pickups
}

// SpawnPos returns an open land position near the island centre. Valid once
// generation is done; (0, 0) as a fallback when the noise drowned everything.
func (g *IslandGenerator) SpawnPos() (float64, float64) {
	if !g.spawnSet {
		return 0, 0
	}
	return g.spawnX, g.spawnY
}

func (g *IslandGenerator) generateRow(row int) {
	for col := 0; col < nominalCols; col++ {
		wx := nominalOriginX + (float64(col)+0.5)*TileSize
		wy := nominalOriginY + (float64(row)+0.5)*TileSize

		h := g.heightAt(col, row)
		if h < seaLevel {
			// Seabed with water stacked above it; the builder's
			// top-layer rule makes the cell collide as water.
			g.emit(TileDirt, wx, wy, layerGround)
			g.emit(TileWater, wx, wy, layerWater)
			continue
		}

		ground := TileGrass
		switch {
		case h < sandLevel:
			ground = TileDirt
		case normalNoise(g.moist, float64(col)*moistScale, float64(row)*moistScale) < dryMoist:
			ground = TileYellowGrass
		}
		g.emit(ground, wx, wy, layerGround)

		prop := g.rollProp(ground)
		if prop != TileEmpty {
			g.emit(prop, wx, wy, layerProps)
			switch prop {
			case TilePlant:
				g.pickups = append(g.pickups, Pickup{Kind: ItemPlant, X: wx, Y: wy})
			case TileStump:
				g.pickups = append(g.pickups, Pickup{Kind: ItemStump, X: wx, Y: wy})
			}
		}

		// Track the open land cell nearest the world origin as spawn.
		if prop == TileEmpty {
			if d := wx*wx + wy*wy; d < g.spawnDist {
				g.spawnDist = d
				g.spawnX, g.spawnY = wx, wy
				g.spawnSet = true
			}
		}
	}
}

// heightAt combines height noise with a radial falloff that sinks the map
// edges below sea level.
func (g *IslandGenerator) heightAt(col, row int) float64 {
	n := normalNoise(g.height, float64(col)*heightScale, float64(row)*heightScale)
	nx := (float64(col)+0.5)/float64(nominalCols)*2 - 1
	ny := (float64(row)+0.5)/float64(nominalRows)*2 - 1
	d := math.Sqrt(nx*nx+ny*ny) / math.Sqrt2
	return n*0.7 + 0.45 - d*d*0.55
}

// rollProp picks a prop for a land cell, TileEmpty for none.
func (g *IslandGenerator) rollProp(ground TileType) TileType {
	roll := g.rng.Float64()
	switch ground {
	case TileGrass:
		switch {
		case roll < 0.07:
			return TileTree
		case roll < 0.10:
			return TilePlant
		case roll < 0.115:
			return TileStump
		}
	case TileYellowGrass:
		switch {
		case roll < 0.03:
			return TileRock
		case roll < 0.055:
			return TilePlant
		}
	case TileDirt:
		if roll < 0.035 {
			return TileRock
		}
	}
	return TileEmpty
}

func (g *IslandGenerator) emit(t TileType, wx, wy float64, layer int) {
	g.placements = append(g.placements, TilePlacement{
		Type:   t,
		WorldX: wx,
		WorldY: wy,
		Layer:  layer,
	})
}

// normalNoise maps Noise2D's [-1, 1] output into [0, 1].
func normalNoise(p *perlin.Perlin, x, y float64) float64 {
	return (p.Noise2D(x, y) + 1) / 2
}
