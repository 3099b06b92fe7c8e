package game

import "math"

// moveEpsilon is the displacement length below which ResolveMove is a no-op.
const moveEpsilon = 1e-3

// maxStepFrac caps one sub-step at a quarter tile so a moving disc cannot
// tunnel through a one-tile obstacle.
const maxStepFrac = 0.25

// ResolveMove advances a disc of the given radius from (sx, sy) toward
// (ex, ey), sub-stepping the displacement and sliding along whichever axis
// stays clear when the full step is blocked. It holds no state between calls
// and always returns a standable position, at worst the start itself.
func (m *CollisionMap) ResolveMove(sx, sy, ex, ey, radius float64) (float64, float64) {
	dx := ex - sx
	dy := ey - sy
	dist := math.Hypot(dx, dy)
	if dist < moveEpsilon {
		return sx, sy
	}

	steps := int(math.Ceil(dist / (m.TileSize * maxStepFrac)))
	if steps < 1 {
		steps = 1
	}
	stepX := dx / float64(steps)
	stepY := dy / float64(steps)

	px, py := sx, sy
	for i := 0; i < steps; i++ {
		cx := px + stepX
		cy := py + stepY
		if m.IsClear(cx, cy, radius) {
			px, py = cx, cy
			continue
		}
		// Blocked: keep the Y displacement alone, then the X
		// displacement alone.
		if m.IsClear(px, cy, radius) {
			py = cy
			continue
		}
		if m.IsClear(cx, py, radius) {
			px = cx
			continue
		}
		break // both axes blocked, movement ends for this frame
	}
	return px, py
}
