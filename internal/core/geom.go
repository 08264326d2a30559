package core

import "math"

// Point is a position in the shared layout coordinate space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Rectangles built by RectFromPoints never carry a negative width or height.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectFromPoints spans the two corners, which may be given in any order.
func RectFromPoints(a, b Point) Rect {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Intersects reports whether the two rectangles overlap. Edges are inclusive,
// so rectangles that only touch count as intersecting.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.MaxX() && o.X <= r.MaxX() &&
		r.Y <= o.MaxY() && o.Y <= r.MaxY()
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// Inset shrinks the rectangle by d on every side. The result never has a
// negative size.
func (r Rect) Inset(d float64) Rect {
	out := Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
	if out.W < 0 {
		out.X, out.W = r.X+r.W/2, 0
	}
	if out.H < 0 {
		out.Y, out.H = r.Y+r.H/2, 0
	}
	return out
}

// AnchorPoint maps an integer device position (a screen pixel or a terminal
// character) to the centre of its unit box.
func AnchorPoint(x, y int) Point {
	return Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// reachInset keeps a reached point strictly inside its unit box. A cell edge
// that borders a gap is never touched by a drag that ends in the gap.
const reachInset = 1.0 / 64

// ReachPoint maps the device position (x, y) to a point just inside the
// corner of its unit box that lies farthest from the anchor (ax, ay).
// Combined with AnchorPoint this keeps a drag along a single row or column
// from collapsing to zero area.
func ReachPoint(ax, ay, x, y int) Point {
	p := Point{X: float64(x) + reachInset, Y: float64(y) + reachInset}
	if x >= ax {
		p.X = float64(x) + 1 - reachInset
	}
	if y >= ay {
		p.Y = float64(y) + 1 - reachInset
	}
	return p
}
