// Package core provides fundamental types and utilities shared by the simulation
// and its hosts. It contains no Bubble Tea dependency to keep game logic pure
// and testable.
package core

import "github.com/go-gl/mathgl/mgl64"

// Rect represents an integer cell rectangle used for screen drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned rectangle in world (pixel) coordinates.
// Y grows downward, so Min is the top-left corner.
type Box struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// NewBox creates a box from its edges.
func NewBox(left, top, right, bottom float64) Box {
	return Box{
		Min: mgl64.Vec2{left, top},
		Max: mgl64.Vec2{right, bottom},
	}
}

// ClosestPoint returns the point inside the box nearest to p.
// Points already inside the box are returned unchanged.
func (b Box) ClosestPoint(p mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		mgl64.Clamp(p.X(), b.Min.X(), b.Max.X()),
		mgl64.Clamp(p.Y(), b.Min.Y(), b.Max.Y()),
	}
}

// CircleOverlapsBox reports whether a circle strictly overlaps the box.
// Touching at exactly the radius is not an overlap.
func CircleOverlapsBox(center mgl64.Vec2, radius float64, b Box) bool {
	d := center.Sub(b.ClosestPoint(center))
	return d.Dot(d) < radius*radius
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
