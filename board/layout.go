package board

import (
	"math"

	"github.com/lixenwraith/reorder/config"
	"github.com/lixenwraith/reorder/container"
	"github.com/lixenwraith/reorder/core"
	"github.com/lixenwraith/reorder/engine"
	"github.com/lixenwraith/reorder/surface"
)

// Rows reserved above the lanes for column titles and below them for the status line
const (
	HeaderHeight = 2
	FooterHeight = 1
)

// Lane binds a column to the strip that owns its order while the board is live
type Lane struct {
	Column *Column
	Strip  *container.Strip[*Card]

	// LastDrop is the index of the most recent drop into this lane, -1 when none
	LastDrop int
}

// laneDelegate records drops on its lane
type laneDelegate struct {
	container.NopDelegate
	lane *Lane
}

func (d laneDelegate) DidDrop(index int) {
	d.lane.LastDrop = index
}

// Layout positions board lanes in surface content coordinates
// Side by side lanes use the configured column width, paged lanes fill the screen minus padding
type Layout struct {
	engine.NopObserver

	board  *Board
	cfg    config.BoardConfig
	screen core.Size
	Lanes  []*Lane

	// Headers is the column title row, dragging a title reorders the lanes on drop
	Headers *container.Strip[*Column]
}

// NewLayout creates one vertical list per column sized for screen
func NewLayout(b *Board, cfg config.BoardConfig, screen core.Size) *Layout {
	l := &Layout{board: b, cfg: cfg, screen: screen}
	for i, col := range b.Columns {
		lane := &Lane{Column: col, LastDrop: -1}
		lane.Strip = container.NewList(l.laneFrame(i), float64(cfg.CardHeight), float64(cfg.CardSpacing), col.Cards)
		lane.Strip.SetDelegate(laneDelegate{lane: lane})
		l.Lanes = append(l.Lanes, lane)
	}
	l.Headers = container.NewStrip(l.headerFrame(), l.headerLayout(), b.Columns)
	return l
}

// Board returns the underlying board
func (l *Layout) Board() *Board {
	return l.board
}

// Paged reports whether lanes are laid out one page per column
func (l *Layout) Paged() bool {
	return l.cfg.Paged
}

// LaneWidth is the width of every lane
func (l *Layout) LaneWidth() float64 {
	if l.cfg.Paged {
		return max(l.screen.W-2*float64(l.cfg.PagePadding), 1)
	}
	return float64(l.cfg.ColumnWidth)
}

// Pitch is the distance between consecutive lane origins
func (l *Layout) Pitch() float64 {
	return l.LaneWidth() + float64(l.cfg.ColumnGap)
}

// Lead is the content x of the first lane
func (l *Layout) Lead() float64 {
	if l.cfg.Paged {
		return float64(l.cfg.PagePadding)
	}
	return 0
}

// ContentWidth is the horizontal extent of all lanes including the page padding
func (l *Layout) ContentWidth() float64 {
	n := len(l.Lanes)
	if n == 0 {
		return 0
	}
	return 2*l.Lead() + float64(n)*l.LaneWidth() + float64(n-1)*float64(l.cfg.ColumnGap)
}

// NewViewport creates the horizontal surface scroller over all lanes
func (l *Layout) NewViewport() *surface.Viewport {
	return surface.NewViewport(core.AxisHorizontal, l.screenRect(), l.ContentWidth(), core.Insets{})
}

// ResizeViewport fits v to the current screen and content
func (l *Layout) ResizeViewport(v *surface.Viewport) {
	v.SetContent(l.ContentWidth())
	v.SetFrame(l.screenRect())
}

func (l *Layout) screenRect() core.Rect {
	return core.R(0, 0, l.screen.W, l.screen.H)
}

// Header returns the title rect above lane i in content coordinates
func (l *Layout) Header(i int) core.Rect {
	return core.R(l.Lead()+float64(i)*l.Pitch(), 0, l.LaneWidth(), HeaderHeight)
}

// headerFrame spans the title rows of every lane
func (l *Layout) headerFrame() core.Rect {
	return core.R(0, 0, l.ContentWidth(), HeaderHeight)
}

// headerLayout puts one title slot above each lane
// In paged mode this is the pager geometry: page-wide slots inset by the padding
func (l *Layout) headerLayout() container.Layout {
	return container.Layout{
		Axis:    core.AxisHorizontal,
		Extent:  l.LaneWidth(),
		Spacing: float64(l.cfg.ColumnGap),
		Insets:  core.Insets{Left: l.Lead(), Right: l.Lead()},
	}
}

func (l *Layout) laneFrame(i int) core.Rect {
	h := max(l.screen.H-HeaderHeight-FooterHeight, 1)
	return core.R(l.Lead()+float64(i)*l.Pitch(), HeaderHeight, l.LaneWidth(), h)
}

// Resize recomputes lane frames for a new screen size
func (l *Layout) Resize(screen core.Size) {
	l.screen = screen
	l.place()
}

// place fits headers and lane frames to the current screen and lane order
func (l *Layout) place() {
	l.Headers.SetFrame(l.headerFrame())
	l.Headers.SetLayout(l.headerLayout())
	for i, lane := range l.Lanes {
		lane.Strip.SetFrame(l.laneFrame(i))
	}
}

// SnapOffset returns the page start closest to offset; side by side layouts do not snap
func (l *Layout) SnapOffset(offset float64) float64 {
	if !l.cfg.Paged || len(l.Lanes) == 0 {
		return offset
	}
	i := int(math.Round(offset / l.Pitch()))
	i = max(0, min(i, len(l.Lanes)-1))
	return float64(i) * l.Pitch()
}

// LaneOfColumn returns the lane showing col
func (l *Layout) LaneOfColumn(col *Column) (*Lane, bool) {
	for _, lane := range l.Lanes {
		if lane.Column == col {
			return lane, true
		}
	}
	return nil, false
}

// LaneOf returns the lane owning c
func (l *Layout) LaneOf(c container.Container) (*Lane, bool) {
	for _, lane := range l.Lanes {
		if container.Container(lane.Strip) == c {
			return lane, true
		}
	}
	return nil, false
}

// Sync copies every strip order back into its column
func (l *Layout) Sync() {
	for _, lane := range l.Lanes {
		lane.Column.Cards = lane.Strip.Items()
	}
}

// DragBegan clears the drop markers of every lane
func (l *Layout) DragBegan(container.Container, int) {
	for _, lane := range l.Lanes {
		lane.LastDrop = -1
	}
}

// DragEnded writes the settled order back to the board
func (l *Layout) DragEnded(c container.Container) {
	if c == container.Container(l.Headers) {
		l.reorderLanes()
	}
	l.Sync()
}

// reorderLanes follows the header order, moving every lane to its new position
func (l *Layout) reorderLanes() {
	cols := l.Headers.Items()
	lanes := make([]*Lane, 0, len(cols))
	for _, col := range cols {
		if lane, ok := l.LaneOfColumn(col); ok {
			lanes = append(lanes, lane)
		}
	}
	l.Lanes = lanes
	l.board.Columns = cols
	l.place()
}
