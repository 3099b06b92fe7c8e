package game

import "math"

const (
	playerRadius = 10.0
	playerSpeed  = 3.2 // world units per tick on bare dirt

	snapshotCap = 600
)

// MoveSnapshot records one tick of player movement for the debug report.
type MoveSnapshot struct {
	Tick     int
	X, Y     float64
	Col, Row int
	Tile     TileType
	Moved    float64 // distance actually travelled this tick
	Wanted   bool    // movement input was held
	SlidY    bool    // full step blocked, kept the Y displacement
	SlidX    bool    // full step blocked, kept the X displacement
	Stopped  bool    // both axes blocked
}

// Player is the one agent walking the island. The anchor point is the feet;
// the sprite draws above it, so collision hugs the ground like the tiles do.
type Player struct {
	X, Y   float64
	Radius float64

	facing    float64 // radians, last direction of actual travel
	walkPhase float64 // advances only while moving, drives the bob

	snaps []MoveSnapshot
}

// NewPlayer creates the player standing at (x, y).
func NewPlayer(x, y float64) *Player {
	return &Player{X: x, Y: y, Radius: playerRadius}
}

// Step advances the player one tick. dirX/dirY is the raw input direction
// (-1, 0 or 1 per axis). m may be nil while the map is still building, in
// which case the displacement applies unchecked: an unbuilt map permits all
// movement, that policy belongs to this caller and not to the map.
func (p *Player) Step(tick int, m *CollisionMap, dirX, dirY float64) MoveSnapshot {
	snap := MoveSnapshot{Tick: tick, Tile: TileEmpty}

	vx, vy := dirX, dirY
	if l := math.Hypot(vx, vy); l > 0 {
		vx /= l
		vy /= l
		snap.Wanted = true
	}

	// Terrain under the feet scales the speed before the move resolves.
	speed := playerSpeed
	if m != nil {
		col, row := m.WorldToGrid(p.X, p.Y)
		speed *= m.TypeAt(col, row).SpeedMul()
	}

	sx, sy := p.X, p.Y
	ex := sx + vx*speed
	ey := sy + vy*speed

	var rx, ry float64
	if m == nil {
		rx, ry = ex, ey
	} else {
		rx, ry = m.ResolveMove(sx, sy, ex, ey, p.Radius)
	}

	moved := math.Hypot(rx-sx, ry-sy)
	if snap.Wanted && m != nil {
		const eps = 1e-6
		fullX := math.Abs(rx-ex) < eps
		fullY := math.Abs(ry-ey) < eps
		switch {
		case fullX && fullY:
			// Clean move.
		case moved < moveEpsilon:
			snap.Stopped = true
		case !fullX && math.Abs(rx-sx) < eps:
			snap.SlidY = true
		case !fullY && math.Abs(ry-sy) < eps:
			snap.SlidX = true
		}
	}

	p.X, p.Y = rx, ry
	if moved > 0.01 {
		p.walkPhase += moved * 0.15
		p.facing = math.Atan2(ry-sy, rx-sx)
	}

	snap.X, snap.Y = rx, ry
	snap.Moved = moved
	if m != nil {
		snap.Col, snap.Row = m.WorldToGrid(rx, ry)
		snap.Tile = m.TypeAt(snap.Col, snap.Row)
	}

	p.record(snap)
	return snap
}

// Facing returns the last direction of actual travel, radians.
func (p *Player) Facing() float64 { return p.facing }

// WalkPhase returns the accumulated walk cycle phase.
func (p *Player) WalkPhase() float64 { return p.walkPhase }

func (p *Player) record(s MoveSnapshot) {
	if len(p.snaps) >= snapshotCap {
		copy(p.snaps, p.snaps[1:])
		p.snaps = p.snaps[:len(p.snaps)-1]
	}
	p.snaps = append(p.snaps, s)
}

// Snapshots returns recorded move snapshots within [fromTick, toTick].
func (p *Player) Snapshots(fromTick, toTick int) []MoveSnapshot {
	var out []MoveSnapshot
	for _, s := range p.snaps {
		if s.Tick >= fromTick && s.Tick <= toTick {
			out = append(out, s)
		}
	}
	return out
}

// LastSnapshot returns the newest snapshot, zero value when none exist.
func (p *Player) LastSnapshot() MoveSnapshot {
	if len(p.snaps) == 0 {
		return MoveSnapshot{}
	}
	return p.snaps[len(p.snaps)-1]
}
