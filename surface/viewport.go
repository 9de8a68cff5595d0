package surface

import (
	"github.com/lixenwraith/reorder/container"
	"github.com/lixenwraith/reorder/core"
)

// Viewport scrolls the whole surface when its content outgrows the host
// Frame is in canvas coordinates, offsets are in content units along the axis
type Viewport struct {
	axis  core.Axis
	frame core.Rect
	state container.ScrollState
}

// NewViewport creates a viewport over content of the given extent
func NewViewport(axis core.Axis, frame core.Rect, content float64, insets core.Insets) *Viewport {
	return &Viewport{
		axis:  axis,
		frame: frame,
		state: container.NewScrollState(content, frame.Extent(axis), insets.Leading(axis), insets.Trailing(axis)),
	}
}

func (v *Viewport) Axis() core.Axis {
	return v.axis
}

// Viewport returns the visible frame in canvas coordinates
func (v *Viewport) Viewport() core.Rect {
	return v.frame
}

func (v *Viewport) Offset() float64 {
	return v.state.Offset
}

func (v *Viewport) ScrollBy(delta float64) float64 {
	return v.state.ScrollBy(delta)
}

func (v *Viewport) ScrollTo(offset float64) {
	v.state.ScrollTo(offset)
}

// SetFrame resizes the visible frame, keeping the offset in range
func (v *Viewport) SetFrame(frame core.Rect) {
	v.frame = frame
	v.state.SetViewport(frame.Extent(v.axis))
}

// SetContent updates the scrollable extent
func (v *Viewport) SetContent(extent float64) {
	v.state.SetContent(extent)
}

// shift is the canvas to content translation
func (v *Viewport) shift() core.Point {
	return v.axis.Vec(v.state.Offset).Sub(v.frame.Origin())
}

// ToContent converts a canvas point to content coordinates
func (v *Viewport) ToContent(p core.Point) core.Point {
	return p.Add(v.shift())
}

// ToCanvas converts a content point to canvas coordinates
func (v *Viewport) ToCanvas(p core.Point) core.Point {
	return p.Sub(v.shift())
}
