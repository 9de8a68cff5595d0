package core

// Rect represents a rectangular region on the drag surface
// Origin is the top-left corner, dimensions are never negative for valid rects
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Dimensions
}

// R is shorthand for a Rect literal
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt builds a rect from origin and size
func RectAt(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, W: size.W, H: size.H}
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Origin returns the top-left corner
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns rect dimensions
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Center returns the midpoint of the rect
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether the rect has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains checks if point is within rect, max edges exclusive
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Add translates the rect by a vector
func (r Rect) Add(v Point) Rect {
	r.X += v.X
	r.Y += v.Y
	return r
}

// Sub translates the rect by the negated vector, converting into a space whose origin is v
func (r Rect) Sub(v Point) Rect {
	r.X -= v.X
	r.Y -= v.Y
	return r
}

// MoveTo returns the rect with its origin replaced
func (r Rect) MoveTo(origin Point) Rect {
	r.X, r.Y = origin.X, origin.Y
	return r
}

// CenterOn returns the rect moved so its center is c
func (r Rect) CenterOn(c Point) Rect {
	r.X = c.X - r.W/2
	r.Y = c.Y - r.H/2
	return r
}

// Scale grows or shrinks the rect around its center
func (r Rect) Scale(f float64) Rect {
	c := r.Center()
	r.W *= f
	r.H *= f
	return r.CenterOn(c)
}

// Inset shrinks the rect by per-edge insets
func (r Rect) Inset(in Insets) Rect {
	r.X += in.Left
	r.Y += in.Top
	r.W -= in.Left + in.Right
	r.H -= in.Top + in.Bottom
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}

// Min returns the leading edge coordinate along axis
func (r Rect) Min(a Axis) float64 {
	if a == AxisHorizontal {
		return r.X
	}
	return r.Y
}

// Max returns the trailing edge coordinate along axis
func (r Rect) Max(a Axis) float64 {
	if a == AxisHorizontal {
		return r.X + r.W
	}
	return r.Y + r.H
}

// Extent returns the rect length along axis
func (r Rect) Extent(a Axis) float64 {
	if a == AxisHorizontal {
		return r.W
	}
	return r.H
}

// Insets are per-edge distances, used for content insets and safe areas
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Leading returns the inset at the start of axis
func (in Insets) Leading(a Axis) float64 {
	if a == AxisHorizontal {
		return in.Left
	}
	return in.Top
}

// Trailing returns the inset at the end of axis
func (in Insets) Trailing(a Axis) float64 {
	if a == AxisHorizontal {
		return in.Right
	}
	return in.Bottom
}
