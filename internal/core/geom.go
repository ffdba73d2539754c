// Package core provides the render surface, geometry and input vocabulary
// shared by the simulation and the platform layer. It has no dependency on
// Bubble Tea so game logic stays pure and testable.
package core

// Rect is an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned bounding box in continuous scene coordinates.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoxAround returns the box of size w x h centered on (cx, cy).
func BoxAround(cx, cy, w, h float64) Box {
	return Box{
		MinX: cx - w/2,
		MinY: cy - h/2,
		MaxX: cx + w/2,
		MaxY: cy + h/2,
	}
}

// CircleBounds returns the bounding box of a circle.
func CircleBounds(cx, cy, radius float64) Box {
	return BoxAround(cx, cy, 2*radius, 2*radius)
}

// Overlaps reports whether the boxes overlap on both axes.
// Boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	if b.MinX >= o.MaxX || o.MinX >= b.MaxX {
		return false
	}
	if b.MinY >= o.MaxY || o.MinY >= b.MaxY {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
