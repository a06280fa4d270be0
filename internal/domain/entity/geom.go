package entity

// Rect is an axis-aligned rectangle in scene-local pixel coordinates.
type Rect struct {
	X, Y float64
	W, H float64
}

// Intersects reports whether r and o overlap. Rectangles that only
// touch at an edge do not overlap, so an entity can slide flush
// against a wall without being blocked.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	if r.X+r.W <= o.X || o.X+o.W <= r.X {
		return false
	}
	if r.Y+r.H <= o.Y || o.Y+o.H <= r.Y {
		return false
	}
	return true
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Empty reports whether the rectangle has zero or negative area.
// Empty rectangles never intersect anything.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Point is a position in scene-local pixel coordinates.
type Point struct {
	X, Y float64
}

// Bounds is the playable size of a scene.
type Bounds struct {
	W, H float64
}

// Known reports whether the bounds carry a usable size. Zero-sized
// bounds mean no scene is loaded and clamping is skipped.
func (b Bounds) Known() bool {
	return b.W > 0 && b.H > 0
}
