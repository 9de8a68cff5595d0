package vmath

import "github.com/lixenwraith/reorder/core"

// Intersect returns the overlapping region of a and b, zero rect if disjoint
func Intersect(a, b core.Rect) core.Rect {
	x0 := max(a.MinX(), b.MinX())
	y0 := max(a.MinY(), b.MinY())
	x1 := min(a.MaxX(), b.MaxX())
	y1 := min(a.MaxY(), b.MaxY())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Area returns width*height, zero for empty rects
func Area(r core.Rect) float64 {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// OverlapArea returns the area of the intersection of a and b
func OverlapArea(a, b core.Rect) float64 {
	return Area(Intersect(a, b))
}
