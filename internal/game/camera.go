package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	zoomMin     = 0.5
	zoomMax     = 4.0
	zoomEaseDur = 0.25 // seconds
)

// Camera follows the player and eases zoom changes instead of snapping.
type Camera struct {
	X, Y float64 // world position at the viewport centre
	Zoom float64

	targetZoom float64
	tween      *gween.Tween
}

// NewCamera creates a camera at 1x zoom.
func NewCamera() *Camera {
	return &Camera{Zoom: 1, targetZoom: 1}
}

// JumpTo recentres the camera instantly, used once at spawn.
func (c *Camera) JumpTo(x, y float64) {
	c.X, c.Y = x, y
}

// RequestZoom multiplies the zoom target and restarts the easing tween.
func (c *Camera) RequestZoom(factor float64) {
	t := c.targetZoom * factor
	if t < zoomMin {
		t = zoomMin
	}
	if t > zoomMax {
		t = zoomMax
	}
	if t == c.targetZoom {
		return
	}
	c.targetZoom = t
	c.tween = gween.New(float32(c.Zoom), float32(t), zoomEaseDur, ease.OutQuad)
}

// Update advances the zoom tween by dt seconds and smooths the follow
// toward (followX, followY).
func (c *Camera) Update(dt, followX, followY float64) {
	if c.tween != nil {
		z, done := c.tween.Update(float32(dt))
		c.Zoom = float64(z)
		if done {
			c.tween = nil
		}
	}
	c.X += (followX - c.X) * 0.18
	c.Y += (followY - c.Y) * 0.18
}

// ClampTo keeps the view inside the map's world extent, centring an axis
// when the view is wider than the island on it.
func (c *Camera) ClampTo(m *CollisionMap, viewW, viewH float64) {
	if m == nil {
		return
	}
	minX, minY, maxX, maxY := m.WorldExtent()
	halfW := viewW / 2 / c.Zoom
	halfH := viewH / 2 / c.Zoom
	c.X = clampCentre(c.X, minX, maxX, halfW)
	c.Y = clampCentre(c.Y, minY, maxY, halfH)
}

func clampCentre(v, lo, hi, half float64) float64 {
	if hi-lo <= 2*half {
		return (lo + hi) / 2
	}
	if v < lo+half {
		return lo + half
	}
	if v > hi-half {
		return hi - half
	}
	return v
}
