package core

// Point represents a 2D position or vector on the drag surface
// One unit maps to one terminal cell in the tcell host
type Point struct {
	X, Y float64
}

// Pt is shorthand for a Point literal
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Along returns the coordinate on axis
func (p Point) Along(a Axis) float64 {
	if a == AxisHorizontal {
		return p.X
	}
	return p.Y
}

// Size represents width and height
type Size struct {
	W, H float64
}

// Axis selects the scroll and layout direction of a container
type Axis uint8

const (
	AxisVertical   Axis = iota // Rows stacked top to bottom
	AxisHorizontal             // Columns laid left to right
)

// String returns human-readable axis name
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Vec returns a vector of length d along axis
func (a Axis) Vec(d float64) Point {
	if a == AxisHorizontal {
		return Point{X: d}
	}
	return Point{Y: d}
}
