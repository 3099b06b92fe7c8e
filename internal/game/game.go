package game

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// borderWidth is the pixel gap between the window edge and the island viewport.
const borderWidth = 24

// Viewport size in pixels. The camera pans and zooms inside it, so the island
// itself can be larger or smaller than the view.
const (
	viewWidth  = 1248
	viewHeight = 832
)

// worldSource produces the tile placements the collision map is consolidated
// from, plus the extras a playable island needs. Placements returns nil until
// the source has finished staging its output.
type worldSource interface {
	PlacementSource
	Pickups() []Pickup
	SpawnPos() (float64, float64)
}

// chartStepper is implemented by sources that stage their work across ticks.
// Sources without it are treated as ready on the first poll.
type chartStepper interface {
	Step() bool
	Progress() float64
}

type Game struct {
	width  int
	height int
	viewW  int // island viewport width (log panel takes the rest)
	viewH  int // island viewport height (inside border)
	offX   int // pixel offset from window left to viewport left
	offY   int // pixel offset from window top to viewport top

	source  worldSource
	builder *MapBuilder
	world   *CollisionMap // nil until the charting phase finishes
	mapSeed int64
	mapName string

	player    *Player
	pickups   []Pickup
	inventory *Inventory
	fog       *FogOfWar
	eventLog  *EventLog
	camera    *Camera
	tick      int

	// Overlay toggle state.
	showOverlay bool // F1: walkability and clearance overlay
	showGrid    bool // G: cell grid
	showHUD     bool
	prevKeys    map[ebiten.Key]bool

	// Offscreen buffer for the island, drawn in world coordinates relative to
	// the map origin. Created once the map is built.
	worldBuf *ebiten.Image
	// Offscreen buffer for the viewport — the camera transform lands here so
	// nothing spills over the border frame or the log panel.
	viewBuf *ebiten.Image
	// Offscreen buffer for inspector text — rendered at 1x then blitted at inspScale.
	inspBuf *ebiten.Image

	hudFace *hudText

	// Cell inspector (click-to-select panel).
	inspector     Inspector
	prevMouseLeft bool

	// Simulation speed control.
	simSpeed  float64 // multiplier: 0=paused, 0.5, 1, 2, 4
	tickAccum float64 // fractional tick accumulator for sub-1x speeds

	// Movement log edge detection — the log gets transitions, not one line per tick.
	wasBlocked bool
	wasSliding bool

	fogMilestone int // highest charted percentage already logged

	// Transient HUD notice after a report is copied.
	noticeText  string
	noticeTicks int
}

// New creates the game. A zero seed picks one from the clock. When tmxPath is
// non-empty the island is loaded from that embedded Tiled map instead of
// being generated.
func New(seed int64, tmxPath string) (*Game, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		width:     borderWidth + viewWidth + borderWidth + logPanelWidth,
		height:    borderWidth + viewHeight + borderWidth,
		viewW:     viewWidth,
		viewH:     viewHeight,
		offX:      borderWidth,
		offY:      borderWidth,
		builder:   &MapBuilder{},
		inventory: NewInventory(),
		eventLog:  NewEventLog(),
		camera:    NewCamera(),
		mapSeed:   seed,
		showHUD:   true,
		prevKeys:  make(map[ebiten.Key]bool),
		simSpeed:  1.0,
	}
	if tmxPath != "" {
		src, err := NewTiledSource(tmxPath)
		if err != nil {
			return nil, err
		}
		g.source = src
		g.mapName = tmxPath
	} else {
		g.source = NewIslandGenerator(seed)
		g.mapName = fmt.Sprintf("perlin %d", seed)
	}
	g.viewBuf = ebiten.NewImage(viewWidth, viewHeight)
	g.inspBuf = ebiten.NewImage(inspBufW, inspBufH)
	g.hudFace = newHUDText()
	g.eventLog.Logf(0, EventBuild, "charting %s", g.mapName)
	return g, nil
}

func (g *Game) Update() error {
	// Handle input every frame regardless of sim speed.
	g.handleInput()

	// Camera easing runs every frame; pause only stops the island clock.
	if g.world != nil && g.player != nil {
		g.camera.Update(1.0/60.0, g.player.X, g.player.Y)
		g.camera.ClampTo(g.world, float64(g.viewW), float64(g.viewH))
	}
	if g.noticeTicks > 0 {
		g.noticeTicks--
	}

	if g.simSpeed <= 0 {
		return nil
	}

	// For speeds > 1 run multiple sim ticks per frame.
	// For speeds < 1 accumulate fractions.
	g.tickAccum += g.simSpeed
	for g.tickAccum >= 1.0 {
		g.tickAccum -= 1.0
		g.simTick()
	}
	return nil
}

// simTick runs one simulation tick.
func (g *Game) simTick() {
	g.tick++

	// 1. CHART: stage world generation and consolidate the collision map once
	// the source hands over its placements.
	if g.world == nil {
		g.chartTick()
		return
	}

	// 2. MOVE: resolve player movement against the collision map.
	dirX, dirY := g.moveDir()
	snap := g.player.Step(g.tick, g.world, dirX, dirY)
	g.logMovement(snap)

	// 3. COLLECT: pick up anything within reach.
	g.collectPickups()

	// 4. FOG: uncover terrain around the player.
	if n := g.fog.Reveal(g.world, g.player.X, g.player.Y); n > 0 {
		g.logFogMilestone()
	}
}

// chartTick polls the placement source, then builds the map exactly once the
// full placement set is available.
func (g *Game) chartTick() {
	if st, ok := g.source.(chartStepper); ok {
		st.Step()
	}
	placements := g.source.Placements()
	if placements == nil {
		return
	}
	world := g.builder.Build(placements)
	if world == nil {
		return
	}
	g.world = world
	g.worldBuf = ebiten.NewImage(world.Cols*int(TileSize), world.Rows*int(TileSize))

	st := g.builder.Stats()
	g.eventLog.Logf(g.tick, EventBuild, "map built %dx%d from %d placements in %s",
		st.Cols, st.Rows, st.Placements, st.Elapsed.Round(time.Microsecond))
	g.eventLog.Logf(g.tick, EventBuild, "%d cells consolidated, %d water cells raised to shore",
		st.Consolidated, st.Shored)

	g.fog = NewFogOfWar(world)
	g.pickups = append([]Pickup(nil), g.source.Pickups()...)

	sx, sy := g.source.SpawnPos()
	sx, sy = findLanding(world, sx, sy, playerRadius)
	g.player = NewPlayer(sx, sy)
	g.camera.JumpTo(sx, sy)
	g.fog.Reveal(world, sx, sy)

	col, row := world.WorldToGrid(sx, sy)
	g.eventLog.Logf(g.tick, EventBuild, "landed at (%.0f, %.0f) on %s", sx, sy, world.TypeAt(col, row))
	g.eventLog.Logf(g.tick, EventPickup, "%d pickups sighted on the island", len(g.pickups))
}

// findLanding returns a position where a collider of the given radius fits.
// The requested spot wins when clear, otherwise the search rings outward over
// nearby cell centres.
func findLanding(m *CollisionMap, wx, wy, radius float64) (float64, float64) {
	if m.IsClear(wx, wy, radius) {
		return wx, wy
	}
	col, row := m.WorldToGrid(wx, wy)
	maxRing := m.Cols + m.Rows
	for ring := 1; ring <= maxRing; ring++ {
		for dr := -ring; dr <= ring; dr++ {
			for dc := -ring; dc <= ring; dc++ {
				if dr != -ring && dr != ring && dc != -ring && dc != ring {
					continue // interior of the ring, already visited
				}
				c, r := col+dc, row+dr
				if !m.InBounds(c, r) {
					continue
				}
				cx, cy := m.CellCenter(c, r)
				if m.IsClear(cx, cy, radius) {
					return cx, cy
				}
			}
		}
	}
	return wx, wy
}

// moveDir reads the held movement keys. Diagonals are normalised by the player.
func (g *Game) moveDir() (float64, float64) {
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	return dx, dy
}

// logMovement turns per-tick movement results into log entries on transitions.
func (g *Game) logMovement(snap MoveSnapshot) {
	blocked := snap.Stopped
	sliding := snap.SlidX || snap.SlidY

	if blocked && !g.wasBlocked {
		blocker := blockerNear(g.world, snap.X, snap.Y, g.player.Radius)
		g.eventLog.Logf(g.tick, EventMove, "blocked at (%.0f, %.0f) by %s", snap.X, snap.Y, blocker)
	}
	if sliding && !g.wasSliding {
		axis := "north-south"
		if snap.SlidX {
			axis = "east-west"
		}
		blocker := blockerNear(g.world, snap.X, snap.Y, g.player.Radius)
		g.eventLog.Logf(g.tick, EventMove, "sliding %s along %s", axis, blocker)
	}
	g.wasBlocked = blocked
	g.wasSliding = sliding
}

// blockerNear returns the category of the closest blocking cell within a tile
// of the circle, or TileEmpty when nothing blocks.
func blockerNear(m *CollisionMap, cx, cy, radius float64) TileType {
	minCol, minRow := m.WorldToGrid(cx-radius-TileSize, cy-radius-TileSize)
	maxCol, maxRow := m.WorldToGrid(cx+radius+TileSize, cy+radius+TileSize)
	best := TileEmpty
	bestD := math.MaxFloat64
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if !m.InBounds(col, row) {
				continue
			}
			t := m.TypeAt(col, row)
			if t.Walkable() {
				continue
			}
			ccx, ccy := m.CellCenter(col, row)
			d := math.Hypot(ccx-cx, ccy-cy)
			if d < bestD {
				bestD = d
				best = t
			}
		}
	}
	if best == TileEmpty {
		return TileWater // off the map edge reads as open sea
	}
	return best
}

func (g *Game) collectPickups() {
	for i := range g.pickups {
		p := &g.pickups[i]
		if p.Taken {
			continue
		}
		if math.Hypot(p.X-g.player.X, p.Y-g.player.Y) > pickupRadius {
			continue
		}
		p.Taken = true
		n := g.inventory.Add(p.Kind)
		g.eventLog.Logf(g.tick, EventPickup, "picked up %s #%d at (%.0f, %.0f)", p.Kind, n, p.X, p.Y)
	}
}

func (g *Game) logFogMilestone() {
	pct := int(g.fog.ExploredFrac() * 100)
	band := pct / 25 * 25
	if band > g.fogMilestone {
		g.fogMilestone = band
		g.eventLog.Logf(g.tick, EventFog, "%d%% of the island charted", band)
	}
}

// handleInput processes toggle keypresses (edge-triggered) and camera control.
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}

	// F1: walkability and clearance overlay.
	currentKeys[ebiten.KeyF1] = ebiten.IsKeyPressed(ebiten.KeyF1)
	if currentKeys[ebiten.KeyF1] && !g.prevKeys[ebiten.KeyF1] {
		g.showOverlay = !g.showOverlay
	}

	// G: cell grid.
	currentKeys[ebiten.KeyG] = ebiten.IsKeyPressed(ebiten.KeyG)
	if currentKeys[ebiten.KeyG] && !g.prevKeys[ebiten.KeyG] {
		g.showGrid = !g.showGrid
	}

	// H: toggle HUD.
	currentKeys[ebiten.KeyH] = ebiten.IsKeyPressed(ebiten.KeyH)
	if currentKeys[ebiten.KeyH] && !g.prevKeys[ebiten.KeyH] {
		g.showHUD = !g.showHUD
	}

	// F9: copy a walk report to the clipboard.
	currentKeys[ebiten.KeyF9] = ebiten.IsKeyPressed(ebiten.KeyF9)
	if currentKeys[ebiten.KeyF9] && !g.prevKeys[ebiten.KeyF9] {
		g.copyWalkReport()
	}

	// Camera zoom: mouse wheel or =/- keys, eased by the camera.
	_, wy := ebiten.Wheel()
	if wy != 0 {
		g.camera.RequestZoom(math.Pow(1.12, wy))
	}
	currentKeys[ebiten.KeyEqual] = ebiten.IsKeyPressed(ebiten.KeyEqual)
	if currentKeys[ebiten.KeyEqual] && !g.prevKeys[ebiten.KeyEqual] {
		g.camera.RequestZoom(1.25)
	}
	currentKeys[ebiten.KeyMinus] = ebiten.IsKeyPressed(ebiten.KeyMinus)
	if currentKeys[ebiten.KeyMinus] && !g.prevKeys[ebiten.KeyMinus] {
		g.camera.RequestZoom(1 / 1.25)
	}

	// Sim speed controls: P=pause/resume, ,=slower, .=faster.
	speeds := []float64{0, 0.5, 1, 2, 4}
	currentKeys[ebiten.KeyP] = ebiten.IsKeyPressed(ebiten.KeyP)
	if currentKeys[ebiten.KeyP] && !g.prevKeys[ebiten.KeyP] {
		if g.simSpeed > 0 {
			g.simSpeed = 0
		} else {
			g.simSpeed = 1
		}
	}
	currentKeys[ebiten.KeyComma] = ebiten.IsKeyPressed(ebiten.KeyComma)
	if currentKeys[ebiten.KeyComma] && !g.prevKeys[ebiten.KeyComma] {
		for i, s := range speeds {
			if s >= g.simSpeed && i > 0 {
				g.simSpeed = speeds[i-1]
				break
			}
		}
	}
	currentKeys[ebiten.KeyPeriod] = ebiten.IsKeyPressed(ebiten.KeyPeriod)
	if currentKeys[ebiten.KeyPeriod] && !g.prevKeys[ebiten.KeyPeriod] {
		for i, s := range speeds {
			if s <= g.simSpeed && i < len(speeds)-1 {
				if speeds[i+1] > g.simSpeed {
					g.simSpeed = speeds[i+1]
					break
				}
			}
		}
	}

	// Left mouse click: try to select a cell.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !g.prevMouseLeft {
			mx, my := ebiten.CursorPosition()
			g.handleInspectorClick(mx, my)
		}
	}
	g.prevMouseLeft = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// I: toggle inspector curated/raw view.
	currentKeys[ebiten.KeyI] = ebiten.IsKeyPressed(ebiten.KeyI)
	if currentKeys[ebiten.KeyI] && !g.prevKeys[ebiten.KeyI] {
		g.inspector.rawView = !g.inspector.rawView
	}

	g.prevKeys = currentKeys
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Window background: very dark, outside the viewport.
	screen.Fill(color.RGBA{R: 10, G: 12, B: 16, A: 255})

	g.viewBuf.Clear()
	if g.world == nil {
		g.drawCharting(g.viewBuf)
	} else {
		g.worldBuf.Clear()
		g.drawWorld(g.worldBuf)

		// Camera transform: map origin to buffer origin, camera centre to
		// viewport centre, then scale.
		var cam ebiten.GeoM
		cam.Translate(g.world.OriginX-g.camera.X, g.world.OriginY-g.camera.Y)
		cam.Scale(g.camera.Zoom, g.camera.Zoom)
		cam.Translate(float64(g.viewW)/2, float64(g.viewH)/2)
		g.viewBuf.DrawImage(g.worldBuf, &ebiten.DrawImageOptions{GeoM: cam})
	}

	var blit ebiten.DrawImageOptions
	blit.GeoM.Translate(float64(g.offX), float64(g.offY))
	screen.DrawImage(g.viewBuf, &blit)

	// Viewport border frame (drawn at screen coords, not transformed).
	ox := float32(g.offX)
	oy := float32(g.offY)
	vw := float32(g.viewW)
	vh := float32(g.viewH)
	borderCol := color.RGBA{R: 58, G: 76, B: 94, A: 255}
	vector.StrokeRect(screen, ox-1, oy-1, vw+2, vh+2, 2.0, borderCol, false)
	vector.StrokeRect(screen, ox-3, oy-3, vw+6, vh+6, 1.0, color.RGBA{R: 34, G: 48, B: 62, A: 100}, false)

	// Event log panel (screen coords).
	logX := g.offX + g.viewW + g.offX
	g.eventLog.Draw(screen, logX, g.height)

	if g.showHUD {
		g.drawHUD(screen)
	}

	// Zoom indicator.
	if g.camera.Zoom != 1.0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("zoom: %.1fx", g.camera.Zoom), g.offX+6, g.offY+6)
	}

	// Transient notice (report copied etc).
	if g.noticeTicks > 0 {
		ebitenutil.DebugPrintAt(screen, g.noticeText, g.offX+6, g.offY+22)
	}

	// Cell inspector panel (screen-space, drawn over everything).
	g.drawInspector(screen)
}

// drawCharting renders the staging progress screen shown before the map is built.
func (g *Game) drawCharting(dst *ebiten.Image) {
	vector.FillRect(dst, 0, 0, float32(g.viewW), float32(g.viewH), color.RGBA{R: 14, G: 26, B: 40, A: 255}, false)

	frac := 1.0
	if st, ok := g.source.(chartStepper); ok {
		frac = st.Progress()
	}
	barW := float32(320)
	barH := float32(10)
	bx := (float32(g.viewW) - barW) / 2
	by := float32(g.viewH)/2 - barH/2
	vector.StrokeRect(dst, bx-2, by-2, barW+4, barH+4, 1.0, color.RGBA{R: 80, G: 112, B: 136, A: 255}, false)
	vector.FillRect(dst, bx, by, barW*float32(frac), barH, color.RGBA{R: 116, G: 168, B: 198, A: 255}, false)

	dots := strings.Repeat(".", 1+(g.tick/20)%3)
	ebitenutil.DebugPrintAt(dst, "charting the island"+dots, int(bx), int(by)-20)
	ebitenutil.DebugPrintAt(dst, g.mapName, int(bx), int(by)+16)
}

// drawWorld renders the island into the world buffer. All coordinates here are
// world-space minus the map origin.
func (g *Game) drawWorld(dst *ebiten.Image) {
	m := g.world
	cs := float32(TileSize)

	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			x := float32(col) * cs
			y := float32(row) * cs

			if !g.fog.Explored(col, row) {
				vector.FillRect(dst, x, y, cs, cs, color.RGBA{R: 7, G: 8, B: 11, A: 255}, false)
				continue
			}

			t := m.TypeAt(col, row)
			r, gr, b := tileBaseColour(t)
			// Faint checker so open ground does not read as a flat sheet.
			if (col+row)%2 == 0 {
				r += 4
				gr += 4
				b += 4
			}
			vector.FillRect(dst, x, y, cs, cs, color.RGBA{R: r, G: gr, B: b, A: 255}, false)
			drawTileDetail(dst, t, x, y, col, row)
		}
	}

	if g.showGrid {
		g.drawCellGrid(dst)
	}
	if g.showOverlay {
		g.drawOverlays(dst)
	}

	g.drawPickups(dst)
	g.drawPlayer(dst)
}

// drawTileDetail adds the per-category shape on top of the base fill.
func drawTileDetail(dst *ebiten.Image, t TileType, x, y float32, col, row int) {
	cs := float32(TileSize)
	cx := x + cs/2
	cy := y + cs/2

	switch t {
	case TileWater:
		// Two short ripple strokes, staggered per cell so the sea is not uniform.
		off := float32((col*7 + row*13) % 9)
		ripple := color.RGBA{R: 48, G: 86, B: 122, A: 255}
		vector.StrokeLine(dst, x+4+off, y+10, x+12+off, y+10, 1.0, ripple, false)
		vector.StrokeLine(dst, x+10-off/2, y+22, x+18-off/2, y+22, 1.0, ripple, false)
	case TileShore:
		// Wet-sand speckles along the waterline.
		fleck := color.RGBA{R: 128, G: 138, B: 108, A: 255}
		vector.FillRect(dst, x+6, y+8, 2, 2, fleck, false)
		vector.FillRect(dst, x+20, y+18, 2, 2, fleck, false)
		vector.FillRect(dst, x+12, y+24, 2, 2, fleck, false)
	case TileTree:
		vector.FillCircle(dst, cx, cy, 11, color.RGBA{R: 24, G: 64, B: 30, A: 255}, false)
		vector.StrokeCircle(dst, cx, cy, 11, 1.0, color.RGBA{R: 16, G: 40, B: 20, A: 255}, false)
		vector.FillCircle(dst, cx-3, cy-3, 4, color.RGBA{R: 40, G: 88, B: 44, A: 255}, false)
	case TileRock:
		vector.FillCircle(dst, cx, cy, 9, color.RGBA{R: 120, G: 120, B: 126, A: 255}, false)
		vector.StrokeLine(dst, cx-6, cy-2, cx+2, cy-6, 1.0, color.RGBA{R: 160, G: 160, B: 166, A: 255}, false)
		vector.StrokeLine(dst, cx-4, cy+5, cx+6, cy+3, 1.0, color.RGBA{R: 70, G: 70, B: 76, A: 255}, false)
	case TilePlant:
		vector.StrokeLine(dst, cx, cy+6, cx, cy-4, 1.0, color.RGBA{R: 46, G: 102, B: 50, A: 255}, false)
		vector.FillCircle(dst, cx, cy-5, 4, color.RGBA{R: 80, G: 150, B: 84, A: 255}, false)
	case TileStump:
		vector.FillCircle(dst, cx, cy, 7, color.RGBA{R: 106, G: 78, B: 52, A: 255}, false)
		vector.StrokeCircle(dst, cx, cy, 4, 1.0, color.RGBA{R: 76, G: 54, B: 36, A: 255}, false)
	}
}

func (g *Game) drawPickups(dst *ebiten.Image) {
	m := g.world
	for i := range g.pickups {
		p := &g.pickups[i]
		if p.Taken {
			continue
		}
		col, row := m.WorldToGrid(p.X, p.Y)
		if !g.fog.Explored(col, row) {
			continue
		}
		x := float32(p.X - m.OriginX)
		y := float32(p.Y - m.OriginY)
		// Slow pulse so pickups stand out from scenery.
		pulse := float32(2 + math.Sin(float64(g.tick)*0.08+float64(i)))
		var c color.RGBA
		if p.Kind == ItemStump {
			c = color.RGBA{R: 222, G: 168, B: 92, A: 220}
		} else {
			c = color.RGBA{R: 140, G: 226, B: 120, A: 220}
		}
		vector.StrokeCircle(dst, x, y, 6+pulse, 1.0, c, false)
		vector.FillCircle(dst, x, y, 3, c, false)
	}
}

func (g *Game) drawPlayer(dst *ebiten.Image) {
	p := g.player
	x := float32(p.X - g.world.OriginX)
	y := float32(p.Y - g.world.OriginY)
	r := float32(p.Radius)

	// Soft shadow, body, outline.
	vector.FillCircle(dst, x+1.5, y+1.5, r, color.RGBA{R: 0, G: 0, B: 0, A: 70}, false)
	vector.FillCircle(dst, x, y, r, color.RGBA{R: 232, G: 222, B: 196, A: 255}, false)
	vector.StrokeCircle(dst, x, y, r, 1.0, color.RGBA{R: 70, G: 58, B: 40, A: 255}, false)

	// Facing tick.
	fx := x + float32(math.Cos(p.Facing()))*(r+4)
	fy := y + float32(math.Sin(p.Facing()))*(r+4)
	vector.StrokeLine(dst, x, y, fx, fy, 1.5, color.RGBA{R: 250, G: 246, B: 230, A: 255}, false)

	// Feet bob while walking.
	bob := float32(math.Sin(p.WalkPhase())) * 2
	px := float32(math.Cos(p.Facing() + math.Pi/2))
	py := float32(math.Sin(p.Facing() + math.Pi/2))
	foot := color.RGBA{R: 90, G: 74, B: 52, A: 255}
	vector.FillCircle(dst, x+px*4+px*bob, y+py*4+py*bob, 2, foot, false)
	vector.FillCircle(dst, x-px*4-px*bob, y-py*4-py*bob, 2, foot, false)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
