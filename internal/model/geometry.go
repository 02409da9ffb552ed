package model

import "math"

// Point is a plane-space coordinate in cm. X runs along the wall with 0 at
// the wall's horizontal center; Y runs up from the floor.
type Point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// Dist returns the straight-line distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Finite reports whether both coordinates are real numbers.
func (p Point) Finite() bool {
	return finite(p.X) && finite(p.Y)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Rect is the footprint of a frame on the wall: a center plus full width
// and height, all in cm. Width and Height are always positive.
type Rect struct {
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// NewRect builds a Rect centered on c.
func NewRect(c Point, w, h float64) Rect {
	return Rect{CenterX: c.X, CenterY: c.Y, Width: w, Height: h}
}

func (r Rect) Left() float64   { return r.CenterX - r.Width/2 }
func (r Rect) Right() float64  { return r.CenterX + r.Width/2 }
func (r Rect) Bottom() float64 { return r.CenterY - r.Height/2 }
func (r Rect) Top() float64    { return r.CenterY + r.Height/2 }

// Center returns the rect's center point.
func (r Rect) Center() Point {
	return Point{X: r.CenterX, Y: r.CenterY}
}

// MoveTo returns a copy of r centered on c.
func (r Rect) MoveTo(c Point) Rect {
	r.CenterX = c.X
	r.CenterY = c.Y
	return r
}

// ContainsPoint reports whether p lies inside r (edges included).
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Bottom() && p.Y <= r.Top()
}

// Bounds is the region a frame's center may occupy on a wall. Bounds are
// specific to one frame size: the center stays half a frame away from
// every wall edge.
type Bounds struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

// ComputeBounds derives the center bounds for a frameW x frameH frame on
// a wallW x wallH wall. The horizontal origin is the wall's center and the
// vertical origin is the floor.
func ComputeBounds(wallW, wallH, frameW, frameH float64) Bounds {
	halfW := frameW / 2
	halfH := frameH / 2
	return Bounds{
		MinX: -wallW/2 + halfW,
		MaxX: wallW/2 - halfW,
		MinY: halfH,
		MaxY: wallH - halfH,
	}
}

// Valid reports whether any center position exists, i.e. whether the
// frame fits on the wall at all.
func (b Bounds) Valid() bool {
	return b.MinX <= b.MaxX && b.MinY <= b.MaxY
}

// Clamp pulls p into the bounds component-wise. Clamping a point that is
// already inside is a no-op.
func (b Bounds) Clamp(p Point) Point {
	return Point{
		X: math.Max(b.MinX, math.Min(p.X, b.MaxX)),
		Y: math.Max(b.MinY, math.Min(p.Y, b.MaxY)),
	}
}

// Contains reports whether p lies within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}
