package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Debug overlay rendering. Everything here draws into the world buffer, so
// coordinates are world-space minus the map origin.

// drawCellGrid strokes the cell boundaries over the island.
func (g *Game) drawCellGrid(dst *ebiten.Image) {
	m := g.world
	cs := float32(TileSize)
	w := float32(m.Cols) * cs
	h := float32(m.Rows) * cs
	c := color.RGBA{R: 255, G: 255, B: 255, A: 26}
	for col := 0; col <= m.Cols; col++ {
		x := float32(col) * cs
		vector.StrokeLine(dst, x, 0, x, h, 1.0, c, false)
	}
	for row := 0; row <= m.Rows; row++ {
		y := float32(row) * cs
		vector.StrokeLine(dst, 0, y, w, y, 1.0, c, false)
	}
}

func categoryOverlayColour(t TileType) color.RGBA {
	switch t {
	case TileWater:
		return color.RGBA{R: 70, G: 130, B: 210, A: 255}
	case TileTree:
		return color.RGBA{R: 70, G: 170, B: 80, A: 255}
	case TileRock:
		return color.RGBA{R: 185, G: 185, B: 195, A: 255}
	default:
		return color.RGBA{R: 200, G: 80, B: 80, A: 255}
	}
}

// drawOverlays shows what the mover actually collides with: blocking cells,
// their keep-out outline for the player's radius, and the collider itself.
func (g *Game) drawOverlays(dst *ebiten.Image) {
	m := g.world
	cs := float32(TileSize)
	r := playerRadius
	if g.player != nil {
		r = g.player.Radius
	}

	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			t := m.TypeAt(col, row)
			x := float32(col) * cs
			y := float32(row) * cs

			if t.Walkable() {
				if t == TileShore {
					// Shore cells were raised from water during the build.
					vector.StrokeRect(dst, x+1, y+1, cs-2, cs-2, 1.0,
						color.RGBA{R: 210, G: 196, B: 140, A: 70}, false)
				}
				continue
			}

			c := categoryOverlayColour(t)
			vector.FillRect(dst, x, y, cs, cs, color.RGBA{R: c.R, G: c.G, B: c.B, A: 52}, false)
			vector.StrokeLine(dst, x, y, x+cs, y+cs, 1.0, color.RGBA{R: c.R, G: c.G, B: c.B, A: 90}, false)

			// Keep-out outline: the cell grown by the collider radius times the
			// category's clearance factor. The player's centre stays outside it.
			pad := float32(r * t.ClearanceMul())
			vector.StrokeRect(dst, x-pad, y-pad, cs+pad*2, cs+pad*2, 1.0,
				color.RGBA{R: c.R, G: c.G, B: c.B, A: 140}, false)
		}
	}

	if g.player != nil {
		g.drawMoveProbe(dst)
	}
}

// drawMoveProbe outlines the collider, coloured by the outcome of the last
// resolved move: green clear, yellow sliding, red stopped.
func (g *Game) drawMoveProbe(dst *ebiten.Image) {
	p := g.player
	x := float32(p.X - g.world.OriginX)
	y := float32(p.Y - g.world.OriginY)
	r := float32(p.Radius)

	outline := color.RGBA{R: 120, G: 220, B: 140, A: 200}
	snap := p.LastSnapshot()
	if snap.Stopped {
		outline = color.RGBA{R: 230, G: 90, B: 80, A: 220}
	} else if snap.SlidX || snap.SlidY {
		outline = color.RGBA{R: 235, G: 200, B: 90, A: 220}
	}
	vector.StrokeCircle(dst, x, y, r, 1.0, outline, false)

	if snap.Wanted {
		fx := x + float32(math.Cos(p.Facing()))*(r+10)
		fy := y + float32(math.Sin(p.Facing()))*(r+10)
		vector.StrokeLine(dst, x, y, fx, fy, 1.0, outline, false)
	}
}
