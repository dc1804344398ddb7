package blit

import (
	"fmt"
	"image"
)

// Point is an integer 2D coordinate or offset. Coordinates are 32-bit
// so a pair packs exactly into the 64-bit ordering key used by Less.
type Point struct {
	X, Y int32
}

// Pt is a convenience function to create a Point.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns the point with both components negated.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s int32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar using integer division,
// truncating toward zero.
func (p Point) Div(s int32) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Less orders points by the packed key uint32(X)<<32 | uint32(Y), so X
// dominates Y. The order has no geometric meaning; it exists to make
// Point usable as a sorted-container key and is a strict total order.
func (p Point) Less(q Point) bool {
	return p.key() < q.key()
}

func (p Point) key() uint64 {
	return uint64(uint32(p.X))<<32 | uint64(uint32(p.Y))
}

// String returns a string representation like "[ 3, 4 ]".
func (p Point) String() string {
	return fmt.Sprintf("[ %d, %d ]", p.X, p.Y)
}

// Rect is an axis-aligned region: an origin and non-negative extents.
// A Rect with W <= 0 or H <= 0 is empty. Rect describes a region only;
// it holds no pixel data.
type Rect struct {
	Pos  Point
	W, H int32
}

// R is a convenience function to create a Rect.
func R(x, y, w, h int32) Rect {
	return Rect{Pos: Point{X: x, Y: y}, W: w, H: h}
}

// Add returns the rectangle translated by p. Extents are unchanged.
func (r Rect) Add(p Point) Rect {
	return Rect{Pos: r.Pos.Add(p), W: r.W, H: r.H}
}

// Sub returns the rectangle translated by -p. Extents are unchanged.
func (r Rect) Sub(p Point) Rect {
	return Rect{Pos: r.Pos.Sub(p), W: r.W, H: r.H}
}

// Empty reports whether the rectangle contains no points.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersect returns the largest rectangle contained by both r and s.
// If the rectangles do not overlap, the canonical empty rectangle
// (zero origin, zero extents) is returned; the result never has
// negative extents. Intersect is commutative and idempotent, and
// intersecting with an empty rectangle yields the empty rectangle.
func (r Rect) Intersect(s Rect) Rect {
	left := max(r.Pos.X, s.Pos.X)
	right := min(r.Pos.X+r.W, s.Pos.X+s.W)
	top := max(r.Pos.Y, s.Pos.Y)
	bottom := min(r.Pos.Y+r.H, s.Pos.Y+s.H)

	if right-left <= 0 || bottom-top <= 0 {
		return Rect{}
	}
	return Rect{Pos: Point{X: left, Y: top}, W: right - left, H: bottom - top}
}

// String returns a string representation like "[ 1, 2 ] 3x4".
func (r Rect) String() string {
	return fmt.Sprintf("%v %dx%d", r.Pos, r.W, r.H)
}

// ImageRect returns r as an [image.Rectangle]. An empty r converts to
// the zero rectangle.
func (r Rect) ImageRect() image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(int(r.Pos.X), int(r.Pos.Y), int(r.Pos.X+r.W), int(r.Pos.Y+r.H))
}

// FromImageRect converts a canonical [image.Rectangle] to a Rect.
func FromImageRect(ir image.Rectangle) Rect {
	return Rect{
		Pos: Point{X: int32(ir.Min.X), Y: int32(ir.Min.Y)},
		W:   int32(ir.Dx()),
		H:   int32(ir.Dy()),
	}
}
