package game

import (
	"math"
	"math/rand"
)

// IslandSketch is a tiny placement builder used by tests. It lays tiles on
// the nominal grid by cell coordinate, then feeds them through the real
// MapBuilder so tests exercise the consolidation path end to end.
type IslandSketch struct {
	placements []TilePlacement
	builder    *MapBuilder
}

func NewIslandSketch() *IslandSketch {
	return &IslandSketch{builder: &MapBuilder{}}
}

// sketchCellWorld returns the world-space centre of a nominal grid cell.
func sketchCellWorld(col, row int) (float64, float64) {
	x := nominalOriginX + (float64(col)+0.5)*TileSize
	y := nominalOriginY + (float64(row)+0.5)*TileSize
	return x, y
}

// At lays one tile at an exact world position.
func (sk *IslandSketch) At(t TileType, wx, wy float64, layer int) *IslandSketch {
	sk.placements = append(sk.placements, TilePlacement{Type: t, WorldX: wx, WorldY: wy, Layer: layer})
	return sk
}

// Cell lays one tile at a nominal grid cell.
func (sk *IslandSketch) Cell(t TileType, col, row, layer int) *IslandSketch {
	x, y := sketchCellWorld(col, row)
	return sk.At(t, x, y, layer)
}

// Rect floods a rectangle of cells with one tile type.
func (sk *IslandSketch) Rect(t TileType, col, row, cols, rows, layer int) *IslandSketch {
	for r := row; r < row+rows; r++ {
		for c := col; c < col+cols; c++ {
			sk.Cell(t, c, r, layer)
		}
	}
	return sk
}

// Ground, Prop and Water lay tiles on the conventional layer for their role.

func (sk *IslandSketch) Ground(t TileType, col, row int) *IslandSketch {
	return sk.Cell(t, col, row, layerGround)
}

func (sk *IslandSketch) GroundRect(t TileType, col, row, cols, rows int) *IslandSketch {
	return sk.Rect(t, col, row, cols, rows, layerGround)
}

func (sk *IslandSketch) Prop(t TileType, col, row int) *IslandSketch {
	return sk.Cell(t, col, row, layerProps)
}

func (sk *IslandSketch) Water(col, row int) *IslandSketch {
	return sk.Cell(TileWater, col, row, layerWater)
}

func (sk *IslandSketch) WaterRect(col, row, cols, rows int) *IslandSketch {
	return sk.Rect(TileWater, col, row, cols, rows, layerWater)
}

// Placements returns a copy of everything laid so far.
func (sk *IslandSketch) Placements() []TilePlacement {
	return append([]TilePlacement(nil), sk.placements...)
}

// Build runs the placements through the builder and returns the map.
func (sk *IslandSketch) Build() *CollisionMap {
	return sk.builder.Build(sk.placements)
}

// Builder exposes the underlying builder for stats and rebuild checks.
func (sk *IslandSketch) Builder() *MapBuilder {
	return sk.builder
}

// Walker tuning for the headless harness.
const (
	walkArriveDist = TileSize / 2 // close enough to call a target reached
	walkStuckLimit = 12           // stopped ticks before a target is abandoned
)

// WalkSim is the headless walk harness used by tests and cmd/walk-report.
// It mirrors Game's tick phases without any Ebiten dependency: chart the
// island, walk a scripted player between random standable targets, collect
// pickups, reveal fog. Deterministic for a given seed and option set.
type WalkSim struct {
	Source    worldSource
	Builder   *MapBuilder
	World     *CollisionMap // nil until the charting phase finishes
	Player    *Player       // nil until the charting phase finishes
	Inventory *Inventory
	Fog       *FogOfWar
	EventLog  *EventLog
	Tick      int
	BuildTick int // tick of the successful build, -1 before

	seed    int64
	mapName string
	rng     *rand.Rand
	pickups []Pickup

	targetsWanted    int
	targetsReached   int
	targetsAbandoned int
	targetX, targetY float64
	hasTarget        bool
	stuckTicks       int

	wasBlocked   bool
	wasSliding   bool
	fogMilestone int

	// Whole-run movement counters; the snapshot ring only keeps a tail.
	distance     float64
	movingTicks  int
	slideTicks   int
	stoppedTicks int
}

// WalkOption configures a WalkSim before its placement source is created.
type WalkOption func(*WalkSim)

// WithSeed sets the island seed and the walker's RNG seed.
func WithSeed(seed int64) WalkOption {
	return func(ws *WalkSim) { ws.seed = seed }
}

// WithTiledMap walks the embedded authored map at path instead of a
// generated island. The seed then only steers the walker.
func WithTiledMap(path string) WalkOption {
	return func(ws *WalkSim) { ws.mapName = path }
}

// WithTargets sets how many targets the walker visits before going idle.
func WithTargets(n int) WalkOption {
	return func(ws *WalkSim) { ws.targetsWanted = n }
}

// NewWalkSim constructs the harness. The source is created last so options
// can change the seed or swap in the authored map first.
func NewWalkSim(opts ...WalkOption) (*WalkSim, error) {
	ws := &WalkSim{
		Builder:       &MapBuilder{},
		Inventory:     NewInventory(),
		EventLog:      NewEventLog(),
		BuildTick:     -1,
		seed:          1,
		targetsWanted: 8,
	}
	for _, o := range opts {
		o(ws)
	}
	ws.rng = rand.New(rand.NewSource(ws.seed)) // #nosec G404 -- deterministic walks, not crypto
	if ws.mapName != "" {
		src, err := NewTiledSource(ws.mapName)
		if err != nil {
			return nil, err
		}
		ws.Source = src
	} else {
		ws.Source = NewIslandGenerator(ws.seed)
		ws.mapName = "perlin"
	}
	ws.EventLog.Logf(0, EventBuild, "charting %s", ws.mapName)
	return ws, nil
}

// RunTicks advances the harness n ticks.
func (ws *WalkSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ws.simTick()
	}
}

// RunUntilBuilt polls the charting phase until the map exists, up to
// maxTicks. Returns the build tick, or -1 when it never happened.
func (ws *WalkSim) RunUntilBuilt(maxTicks int) int {
	for i := 0; i < maxTicks && ws.World == nil; i++ {
		ws.simTick()
	}
	return ws.BuildTick
}

// simTick mirrors Game.simTick for the headless harness.
func (ws *WalkSim) simTick() {
	ws.Tick++

	if ws.World == nil {
		ws.chartTick()
		return
	}

	dirX, dirY := ws.walkerDir()
	snap := ws.Player.Step(ws.Tick, ws.World, dirX, dirY)
	ws.noteMovement(snap)
	ws.collect()
	if n := ws.Fog.Reveal(ws.World, ws.Player.X, ws.Player.Y); n > 0 {
		ws.noteFogMilestone()
	}
}

// chartTick mirrors Game.chartTick.
func (ws *WalkSim) chartTick() {
	if st, ok := ws.Source.(chartStepper); ok {
		st.Step()
	}
	placements := ws.Source.Placements()
	if placements == nil {
		return
	}
	world := ws.Builder.Build(placements)
	if world == nil {
		return
	}
	ws.World = world
	ws.BuildTick = ws.Tick

	st := ws.Builder.Stats()
	ws.EventLog.Logf(ws.Tick, EventBuild, "map built %dx%d from %d placements in %s",
		st.Cols, st.Rows, st.Placements, st.Elapsed)
	ws.EventLog.Logf(ws.Tick, EventBuild, "%d cells consolidated, %d water cells raised to shore",
		st.Consolidated, st.Shored)

	ws.Fog = NewFogOfWar(world)
	ws.pickups = append([]Pickup(nil), ws.Source.Pickups()...)

	sx, sy := ws.Source.SpawnPos()
	sx, sy = findLanding(world, sx, sy, playerRadius)
	ws.Player = NewPlayer(sx, sy)
	ws.Fog.Reveal(world, sx, sy)
}

// walkerDir steers the scripted walker: head for the current target, rotate
// to a fresh one on arrival or after being pinned too long, idle once the
// target budget is spent.
func (ws *WalkSim) walkerDir() (float64, float64) {
	if !ws.hasTarget && !ws.pickTarget() {
		return 0, 0
	}

	dx := ws.targetX - ws.Player.X
	dy := ws.targetY - ws.Player.Y
	if math.Hypot(dx, dy) <= walkArriveDist {
		ws.targetsReached++
		ws.EventLog.Logf(ws.Tick, EventMove, "reached target %d at (%.0f, %.0f)",
			ws.targetsReached, ws.targetX, ws.targetY)
		ws.hasTarget = false
		if !ws.pickTarget() {
			return 0, 0
		}
		dx = ws.targetX - ws.Player.X
		dy = ws.targetY - ws.Player.Y
	}
	if ws.stuckTicks >= walkStuckLimit {
		ws.targetsAbandoned++
		ws.EventLog.Logf(ws.Tick, EventMove, "abandoned target at (%.0f, %.0f), pinned %d ticks",
			ws.targetX, ws.targetY, ws.stuckTicks)
		ws.hasTarget = false
		ws.stuckTicks = 0
		if !ws.pickTarget() {
			return 0, 0
		}
		dx = ws.targetX - ws.Player.X
		dy = ws.targetY - ws.Player.Y
	}
	return dx, dy
}

// pickTarget draws random cells until one is standable at the player radius.
// There is no pathfinding, so an unreachable pick is allowed; the stuck
// rotation deals with it.
func (ws *WalkSim) pickTarget() bool {
	if ws.targetsReached+ws.targetsAbandoned >= ws.targetsWanted {
		return false
	}
	m := ws.World
	for attempt := 0; attempt < 400; attempt++ {
		col := ws.rng.Intn(m.Cols)
		row := ws.rng.Intn(m.Rows)
		cx, cy := m.CellCenter(col, row)
		if m.IsClear(cx, cy, ws.Player.Radius) {
			ws.targetX, ws.targetY = cx, cy
			ws.hasTarget = true
			return true
		}
	}
	return false
}

// noteMovement mirrors Game.logMovement and feeds the stuck counter and the
// whole-run totals.
func (ws *WalkSim) noteMovement(snap MoveSnapshot) {
	blocked := snap.Stopped
	sliding := snap.SlidX || snap.SlidY

	ws.distance += snap.Moved
	if snap.Moved > moveEpsilon {
		ws.movingTicks++
	}
	if sliding {
		ws.slideTicks++
	}
	if blocked {
		ws.stoppedTicks++
		ws.stuckTicks++
	} else {
		ws.stuckTicks = 0
	}
	if blocked && !ws.wasBlocked {
		blocker := blockerNear(ws.World, snap.X, snap.Y, ws.Player.Radius)
		ws.EventLog.Logf(ws.Tick, EventMove, "blocked at (%.0f, %.0f) by %s", snap.X, snap.Y, blocker)
	}
	if sliding && !ws.wasSliding {
		axis := "north-south"
		if snap.SlidX {
			axis = "east-west"
		}
		blocker := blockerNear(ws.World, snap.X, snap.Y, ws.Player.Radius)
		ws.EventLog.Logf(ws.Tick, EventMove, "sliding %s along %s", axis, blocker)
	}
	ws.wasBlocked = blocked
	ws.wasSliding = sliding
}

func (ws *WalkSim) collect() {
	for i := range ws.pickups {
		p := &ws.pickups[i]
		if p.Taken {
			continue
		}
		if math.Hypot(p.X-ws.Player.X, p.Y-ws.Player.Y) > pickupRadius {
			continue
		}
		p.Taken = true
		n := ws.Inventory.Add(p.Kind)
		ws.EventLog.Logf(ws.Tick, EventPickup, "picked up %s #%d at (%.0f, %.0f)", p.Kind, n, p.X, p.Y)
	}
}

func (ws *WalkSim) noteFogMilestone() {
	pct := int(ws.Fog.ExploredFrac() * 100)
	band := pct / 25 * 25
	if band > ws.fogMilestone {
		ws.fogMilestone = band
		ws.EventLog.Logf(ws.Tick, EventFog, "%d%% of the island charted", band)
	}
}

// Report renders the walk report covering the last lastTicks ticks.
func (ws *WalkSim) Report(lastTicks int) string {
	return walkReportData{
		MapName: ws.mapName,
		Seed:    ws.seed,
		Tick:    ws.Tick,
		Builder: ws.Builder,
		World:   ws.World,
		Fog:     ws.Fog,
		Inv:     ws.Inventory,
		Log:     ws.EventLog,
		Player:  ws.Player,
	}.render(lastTicks)
}

// WalkOutcome is the machine-readable summary of one headless walk.
type WalkOutcome struct {
	Ticks            int
	BuildTick        int // -1 when the island never finished charting
	TargetsWanted    int
	TargetsReached   int
	TargetsAbandoned int
	Distance         float64
	ExploredFrac     float64
	Pickups          int
	MovingTicks      int
	SlideTicks       int
	StoppedTicks     int
}

// Outcome summarises the whole run so far.
func (ws *WalkSim) Outcome() WalkOutcome {
	o := WalkOutcome{
		Ticks:         ws.Tick,
		BuildTick:     ws.BuildTick,
		TargetsWanted: ws.targetsWanted,
	}
	if ws.World == nil {
		return o
	}
	o.TargetsReached = ws.targetsReached
	o.TargetsAbandoned = ws.targetsAbandoned
	o.ExploredFrac = ws.Fog.ExploredFrac()
	o.Pickups = ws.Inventory.Total()
	o.Distance = ws.distance
	o.MovingTicks = ws.movingTicks
	o.SlideTicks = ws.slideTicks
	o.StoppedTicks = ws.stoppedTicks
	return o
}
