package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Inspector panel — rendered into an offscreen buffer at 1× then blitted at inspScale.
const (
	inspScale = 2   // scale factor for inspector text rendering
	inspBufW  = 200 // buffer width in pixels (~33 chars at debug font)
	inspBufH  = 332 // buffer height in pixels, sized for the raw view
	inspPad   = 4   // padding in buffer-space pixels
	inspLineH = 13  // line height in buffer-space pixels
)

// Inspector holds the selected cell and view toggle state.
type Inspector struct {
	selCol  int
	selRow  int
	hasSel  bool
	rawView bool // false = curated, true = raw dump
}

// handleInspectorClick maps a mouse click back to a grid cell and selects it.
// Returns true if a cell inside the map was hit.
func (g *Game) handleInspectorClick(mx, my int) bool {
	if g.world == nil {
		return false
	}
	// Inverse of Draw camera transform:
	//   screen = (world - cam) * zoom + vpHalf + offset
	//   world  = (screen - offset - vpHalf) / zoom + cam
	vpW := float64(g.viewW)
	vpH := float64(g.viewH)
	wx := (float64(mx)-float64(g.offX)-vpW/2)/g.camera.Zoom + g.camera.X
	wy := (float64(my)-float64(g.offY)-vpH/2)/g.camera.Zoom + g.camera.Y

	col, row := g.world.WorldToGrid(wx, wy)
	if g.world.InBounds(col, row) {
		g.inspector.selCol = col
		g.inspector.selRow = row
		g.inspector.hasSel = true
		return true
	}
	// Click off the map: deselect.
	g.inspector.hasSel = false
	return false
}

// drawInspector renders the inspector panel into an offscreen buffer at 1×,
// then blits it onto the screen at inspScale for readability.
func (g *Game) drawInspector(screen *ebiten.Image) {
	if !g.inspector.hasSel || g.world == nil {
		return
	}
	col := g.inspector.selCol
	row := g.inspector.selRow

	g.inspBuf.Clear()

	buf := g.inspBuf
	bw := float32(inspBufW)
	bh := float32(inspBufH)

	// Panel background.
	panelBg := color.RGBA{R: 12, G: 16, B: 20, A: 230}
	panelBorder := color.RGBA{R: 60, G: 86, B: 106, A: 255}
	vector.FillRect(buf, 0, 0, bw, bh, panelBg, false)
	vector.StrokeRect(buf, 0, 0, bw, bh, 1.0, panelBorder, false)
	// Inner highlight along top edge.
	vector.StrokeLine(buf, 1, 1, bw-1, 1, 1.0, color.RGBA{R: 80, G: 116, B: 140, A: 60}, false)

	lx := inspPad
	ly := inspPad

	title := fmt.Sprintf("[ CELL %d,%d ]", col, row)
	ebitenutil.DebugPrintAt(buf, title, lx, ly)
	ly += inspLineH + 2

	viewName := "CURATED"
	if g.inspector.rawView {
		viewName = "RAW"
	}
	ebitenutil.DebugPrintAt(buf, fmt.Sprintf("view: %s  [I] toggle", viewName), lx, ly)
	ly += inspLineH + 4

	// Divider.
	vector.StrokeLine(buf, float32(lx), float32(ly), bw-float32(inspPad), float32(ly), 1.0, panelBorder, false)
	ly += 4

	if g.inspector.rawView {
		g.drawInspectorRaw(buf, col, row, lx, ly)
	} else {
		g.drawInspectorCurated(buf, col, row, lx, ly)
	}

	// Blit inspBuf onto screen at inspScale, positioned bottom-right of the viewport.
	px := g.offX + g.viewW - inspBufW*inspScale - 12
	py := g.offY + g.viewH - inspBufH*inspScale - 8
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(inspScale), float64(inspScale))
	opts.GeoM.Translate(float64(px), float64(py))
	screen.DrawImage(buf, opts)
}

// neighbourGlyph is the one-char map legend used by both inspector views.
func neighbourGlyph(m *CollisionMap, col, row int) string {
	if !m.InBounds(col, row) {
		return "*"
	}
	t := m.TypeAt(col, row)
	switch {
	case t == TileWater:
		return "~"
	case !t.Walkable():
		return "#"
	case t == TileShore:
		return "s"
	default:
		return "."
	}
}

// drawInspectorCurated draws the organised, human-readable inspector view.
func (g *Game) drawInspectorCurated(buf *ebiten.Image, col, row int, lx, ly int) {
	m := g.world
	t := m.TypeAt(col, row)

	line := func(text string) {
		ebitenutil.DebugPrintAt(buf, text, lx, ly)
		ly += inspLineH
	}
	section := func(title string) {
		ly += 3
		ebitenutil.DebugPrintAt(buf, "-- "+title+" --", lx, ly)
		ly += inspLineH
	}
	bar := func(label string, v float64) {
		filled := int(v * 14)
		if filled < 0 {
			filled = 0
		}
		if filled > 14 {
			filled = 14
		}
		rest := 14 - filled
		b := ""
		for i := 0; i < filled; i++ {
			b += "█"
		}
		for i := 0; i < rest; i++ {
			b += "░"
		}
		ebitenutil.DebugPrintAt(buf, fmt.Sprintf("%-8s %s %.2f", label, b, v), lx, ly)
		ly += inspLineH
	}

	section("SURFACE")
	walk := "no"
	if t.Walkable() {
		walk = "yes"
	}
	charted := "no"
	if g.fog.Explored(col, row) {
		charted = "yes"
	}
	line(fmt.Sprintf("category: %-12s walk: %s", t, walk))
	line(fmt.Sprintf("charted: %s", charted))
	if t.Walkable() {
		bar("pace", t.SpeedMul())
	} else {
		line(fmt.Sprintf("clearance: x%.2f", t.ClearanceMul()))
	}

	section("BOUNDS")
	minX, minY, maxX, maxY := m.CellRect(col, row)
	cx, cy := m.CellCenter(col, row)
	line(fmt.Sprintf("x [%.0f, %.0f)", minX, maxX))
	line(fmt.Sprintf("y [%.0f, %.0f)", minY, maxY))
	line(fmt.Sprintf("centre (%.0f, %.0f)", cx, cy))

	section("QUERIES")
	probe := func(r float64) string {
		if m.IsClear(cx, cy, r) {
			return "clear"
		}
		return "blocked"
	}
	line(fmt.Sprintf("point: %s", probe(0)))
	line(fmt.Sprintf("r=%.0f: %s", playerRadius, probe(playerRadius)))

	section("AROUND")
	for dr := -1; dr <= 1; dr++ {
		s := ""
		for dc := -1; dc <= 1; dc++ {
			s += neighbourGlyph(m, col+dc, row+dr) + " "
		}
		line("  " + s)
	}
}

// drawInspectorRaw dumps the cell and its full neighbourhood verbatim.
func (g *Game) drawInspectorRaw(buf *ebiten.Image, col, row int, lx, ly int) {
	m := g.world
	t := m.TypeAt(col, row)

	line := func(text string) {
		ebitenutil.DebugPrintAt(buf, text, lx, ly)
		ly += inspLineH
	}

	minX, minY, maxX, maxY := m.CellRect(col, row)
	cx, cy := m.CellCenter(col, row)

	line(fmt.Sprintf("cell=(%d,%d) map=%dx%d", col, row, m.Cols, m.Rows))
	line(fmt.Sprintf("origin=(%.0f,%.0f) ts=%.0f", m.OriginX, m.OriginY, m.TileSize))
	line(fmt.Sprintf("rect x[%.1f,%.1f]", minX, maxX))
	line(fmt.Sprintf("rect y[%.1f,%.1f]", minY, maxY))
	line(fmt.Sprintf("centre=(%.2f,%.2f)", cx, cy))
	line(fmt.Sprintf("cat=%s walk=%v", t, t.Walkable()))
	line(fmt.Sprintf("mul=%.2f pace=%.2f", t.ClearanceMul(), t.SpeedMul()))
	line(fmt.Sprintf("explored=%v", g.fog.Explored(col, row)))
	line("-- probes at centre --")
	for _, r := range []float64{0, 8, playerRadius, 16} {
		line(fmt.Sprintf("r=%-4.0f clear=%v", r, m.IsClear(cx, cy, r)))
	}
	line("-- neighbours --")
	names := []string{"nw", "n ", "ne", "w ", "e ", "sw", "s ", "se"}
	i := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c, r := col+dc, row+dr
			if !m.InBounds(c, r) {
				line(fmt.Sprintf("%s (%d,%d) off-map", names[i], c, r))
			} else {
				nt := m.TypeAt(c, r)
				line(fmt.Sprintf("%s (%d,%d) %s walk=%v", names[i], c, r, nt, nt.Walkable()))
			}
			i++
		}
	}
}
