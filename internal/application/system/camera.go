package system

import (
	"math"

	"github.com/yunseo/wander/internal/domain/entity"
)

// Camera owns the viewport offset into the active scene. W and H are
// the fixed viewport dimensions; X and Y are the top-left offset,
// recomputed every tick.
type Camera struct {
	X, Y float64
	W, H float64
}

// NewCamera creates a camera with the given viewport size at offset
// (0, 0).
func NewCamera(w, h float64) *Camera {
	return &Camera{W: w, H: h}
}

// FocusOn centers the viewport on (px, py), then clamps the offset so
// the visible area stays inside bounds. When bounds are unknown the
// camera simply centers without clamping, which is the behavior before
// any scene has loaded.
func (c *Camera) FocusOn(px, py float64, b entity.Bounds) {
	c.X = px - c.W/2
	c.Y = py - c.H/2

	if !b.Known() {
		return
	}
	c.X = clamp(c.X, 0, math.Max(0, b.W-c.W))
	c.Y = clamp(c.Y, 0, math.Max(0, b.H-c.H))
}

// WorldToScreen translates scene coordinates into viewport coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return wx - c.X, wy - c.Y
}

// ScreenToWorld translates viewport coordinates into scene coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return sx + c.X, sy + c.Y
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
