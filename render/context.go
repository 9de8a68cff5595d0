package render

import (
	"math"
	"time"

	"github.com/lixenwraith/reorder/board"
	"github.com/lixenwraith/reorder/core"
	"github.com/lixenwraith/reorder/engine"
	"github.com/lixenwraith/reorder/status"
	"github.com/lixenwraith/reorder/surface"
)

// Context provides frame state for layers, passed by value
type Context struct {
	Now time.Time

	Width  int
	Height int

	Surface *surface.Surface
	Layout  *board.Layout
	Engine  *engine.Engine
	Stats   *status.Registry
}

// ToCells rounds a canvas rect to screen cells
func (ctx Context) ToCells(r core.Rect) CellRect {
	x := int(math.Round(r.MinX()))
	y := int(math.Round(r.MinY()))
	return CellRect{
		X: x,
		Y: y,
		W: int(math.Round(r.MaxX())) - x,
		H: int(math.Round(r.MaxY())) - y,
	}
}

// ContentToCells converts a content rect to screen cells through the surface viewport
func (ctx Context) ContentToCells(r core.Rect) CellRect {
	if ctx.Surface != nil {
		r = ctx.Surface.RectToCanvas(r)
	}
	return ctx.ToCells(r)
}
