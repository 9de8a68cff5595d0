package container

import (
	"math"

	"github.com/lixenwraith/reorder/core"
	"github.com/lixenwraith/reorder/proxy"
	"github.com/lixenwraith/reorder/vmath"
)

// DefaultPagePadding is the pager inset on both sides of the page run
const DefaultPagePadding = 20

// Layout describes how slots are laid along the strip axis
type Layout struct {
	Axis    core.Axis
	Extent  float64     // Slot length along axis
	Spacing float64     // Gap between consecutive slots
	Insets  core.Insets // Content insets, only the axis edges are used
}

// Delegate receives strip-level drag notifications, every method is optional via NopDelegate
type Delegate interface {
	DidBeginDragging(index int)
	DidFinishDragging()
	DidDrop(index int)
}

// NopDelegate ignores every notification
type NopDelegate struct{}

func (NopDelegate) DidBeginDragging(int) {}
func (NopDelegate) DidFinishDragging()   {}
func (NopDelegate) DidDrop(int)          {}

// Strip is a container of fixed-extent slots along one axis, backed by a Sequence
type Strip[T comparable] struct {
	frame  core.Rect
	layout Layout
	seq    *Sequence[T]
	scroll ScrollState

	dragging   T
	isDragging bool
	droppable  bool

	canDrag  func(index int, item T) bool
	canDrop  func(index int) bool
	styler   func(v *proxy.View) *proxy.View
	delegate Delegate
}

// NewStrip creates a strip over a copy of items, scrolled to the start
func NewStrip[T comparable](frame core.Rect, layout Layout, items []T) *Strip[T] {
	s := &Strip[T]{
		frame:     frame,
		layout:    layout,
		seq:       NewSequence(items),
		droppable: true,
		delegate:  NopDelegate{},
	}
	s.scroll = NewScrollState(
		s.contentExtent(),
		frame.Extent(layout.Axis),
		layout.Insets.Leading(layout.Axis),
		layout.Insets.Trailing(layout.Axis),
	)
	return s
}

// NewList creates a vertical list of rows with fixed height
func NewList[T comparable](frame core.Rect, rowHeight, spacing float64, items []T) *Strip[T] {
	return NewStrip(frame, Layout{Axis: core.AxisVertical, Extent: rowHeight, Spacing: spacing}, items)
}

// NewPager creates a horizontal strip of pages, each as wide as the frame minus padding on both sides
func NewPager[T comparable](frame core.Rect, padding float64, items []T) *Strip[T] {
	return NewStrip(frame, Layout{
		Axis:   core.AxisHorizontal,
		Extent: max(frame.W-2*padding, 1),
		Insets: core.Insets{Left: padding, Right: padding},
	}, items)
}

// --- Configuration ---

// SetFrame moves or resizes the strip, keeping the scroll offset valid
func (s *Strip[T]) SetFrame(frame core.Rect) {
	s.frame = frame
	s.scroll.SetViewport(frame.Extent(s.layout.Axis))
}

// SetLayout replaces the slot geometry and scrolls back to the start
func (s *Strip[T]) SetLayout(layout Layout) {
	s.layout = layout
	s.scroll = NewScrollState(
		s.contentExtent(),
		s.frame.Extent(layout.Axis),
		layout.Insets.Leading(layout.Axis),
		layout.Insets.Trailing(layout.Axis),
	)
}

// SetDragFilter installs the drag eligibility predicate, nil allows every slot
func (s *Strip[T]) SetDragFilter(fn func(index int, item T) bool) {
	s.canDrag = fn
}

// SetDropFilter installs the drop eligibility predicate, nil allows every slot
func (s *Strip[T]) SetDropFilter(fn func(index int) bool) {
	s.canDrop = fn
}

// SetDroppable enables or disables dropping into the strip as a whole
func (s *Strip[T]) SetDroppable(ok bool) {
	s.droppable = ok
}

// SetStyler installs the proxy styling hook
func (s *Strip[T]) SetStyler(fn func(v *proxy.View) *proxy.View) {
	s.styler = fn
}

// SetDelegate installs the notification delegate, nil restores the no-op one
func (s *Strip[T]) SetDelegate(d Delegate) {
	if d == nil {
		d = NopDelegate{}
	}
	s.delegate = d
}

// --- Data access ---

// Items returns a copy of the current order
func (s *Strip[T]) Items() []T {
	return s.seq.Items()
}

// At returns the typed item at index
func (s *Strip[T]) At(index int) (T, bool) {
	return s.seq.At(index)
}

// Dragging returns the item whose live visual is hidden
func (s *Strip[T]) Dragging() (T, bool) {
	return s.dragging, s.isDragging
}

// Layout returns the slot layout
func (s *Strip[T]) Layout() Layout {
	return s.layout
}

// --- Container ---

func (s *Strip[T]) Frame() core.Rect {
	return s.frame
}

func (s *Strip[T]) Len() int {
	return s.seq.Len()
}

func (s *Strip[T]) ItemAt(index int) (Item, bool) {
	v, ok := s.seq.At(index)
	if !ok {
		return nil, false
	}
	return v, true
}

func (s *Strip[T]) IndexOf(item Item) (int, bool) {
	v, ok := item.(T)
	if !ok {
		return -1, false
	}
	return s.seq.IndexOf(v)
}

func (s *Strip[T]) HitIndex(p core.Point) (int, bool) {
	if !s.bounds().Contains(p) {
		return -1, false
	}
	pitch := s.pitch()
	pos := p.Along(s.layout.Axis) + s.scroll.Offset
	i := int(math.Floor(pos / pitch))
	if i < 0 || i >= s.seq.Len() {
		return -1, false
	}
	// Spacing between slots belongs to no item
	if pos-float64(i)*pitch >= s.layout.Extent {
		return -1, false
	}
	return i, true
}

// TargetIndex picks the visible slot with the largest overlap
// Rects entirely before the first slot target 0, entirely past the last slot target the last index
func (s *Strip[T]) TargetIndex(r core.Rect) (int, bool) {
	n := s.seq.Len()
	if n == 0 {
		return 0, true
	}

	axis := s.layout.Axis
	if r.Min(axis) >= s.slotStart(n-1)+s.layout.Extent {
		return n - 1, true
	}

	best, bestArea := -1, 0.0
	first, last := s.visibleRange()
	for i := first; i <= last; i++ {
		slot, _ := s.SlotRect(i)
		area := vmath.OverlapArea(vmath.Intersect(slot, s.bounds()), r)
		if area > bestArea {
			best, bestArea = i, area
		}
	}
	if best >= 0 {
		return best, true
	}

	if r.Max(axis) <= s.slotStart(0) {
		return 0, true
	}
	return -1, false
}

func (s *Strip[T]) SlotRect(index int) (core.Rect, bool) {
	if index < 0 || index >= s.seq.Len() {
		return core.Rect{}, false
	}
	start := s.slotStart(index)
	if s.layout.Axis == core.AxisHorizontal {
		return core.R(start, 0, s.layout.Extent, s.frame.H), true
	}
	return core.R(0, start, s.frame.W, s.layout.Extent), true
}

func (s *Strip[T]) Move(from, to int) {
	s.seq.Move(from, to)
}

func (s *Strip[T]) Insert(item Item, at int) {
	v, ok := item.(T)
	if !ok {
		return
	}
	s.seq.Insert(v, at)
	s.scroll.SetContent(s.contentExtent())
}

func (s *Strip[T]) Delete(at int) {
	s.seq.Delete(at)
	s.scroll.SetContent(s.contentExtent())
}

func (s *Strip[T]) SetDragging(item Item) {
	v, ok := item.(T)
	if !ok {
		return
	}
	s.dragging, s.isDragging = v, true
}

func (s *Strip[T]) ClearDragging() {
	var zero T
	s.dragging, s.isDragging = zero, false
}

// IsDragging reports whether the slot at index holds the in-flight item
func (s *Strip[T]) IsDragging(index int) bool {
	if !s.isDragging {
		return false
	}
	v, ok := s.seq.At(index)
	return ok && v == s.dragging
}

// --- Capabilities ---

func (s *Strip[T]) CanDrag(index int) bool {
	v, ok := s.seq.At(index)
	if !ok {
		return false
	}
	return s.canDrag == nil || s.canDrag(index, v)
}

func (s *Strip[T]) CanDrop(index int) bool {
	if !s.droppable {
		return false
	}
	return s.canDrop == nil || s.canDrop(index)
}

// Accepts reports whether item has the strip's element type
func (s *Strip[T]) Accepts(item Item) bool {
	_, ok := item.(T)
	return ok
}

func (s *Strip[T]) StyleProxy(v *proxy.View) *proxy.View {
	if s.styler == nil {
		return v
	}
	return s.styler(v)
}

func (s *Strip[T]) Axis() core.Axis {
	return s.layout.Axis
}

func (s *Strip[T]) Viewport() core.Rect {
	return s.frame
}

func (s *Strip[T]) Offset() float64 {
	return s.scroll.Offset
}

func (s *Strip[T]) ScrollBy(delta float64) float64 {
	return s.scroll.ScrollBy(delta)
}

// ScrollTo sets the content offset, clamped
func (s *Strip[T]) ScrollTo(offset float64) {
	s.scroll.ScrollTo(offset)
}

func (s *Strip[T]) DidBeginDragging(index int) {
	s.delegate.DidBeginDragging(index)
}

func (s *Strip[T]) DidFinishDragging(droppedOnSource bool) {
	if droppedOnSource && s.isDragging {
		if i, ok := s.seq.IndexOf(s.dragging); ok {
			s.delegate.DidDrop(i)
		}
	}
	s.ClearDragging()
	s.delegate.DidFinishDragging()
}

func (s *Strip[T]) DidDrop(item Item, index int) {
	if i, ok := s.IndexOf(item); ok {
		index = i
	}
	s.ClearDragging()
	s.delegate.DidDrop(index)
}

// --- Paging ---

// SnapIndex returns the page closest to the current offset
func (s *Strip[T]) SnapIndex() int {
	n := s.seq.Len()
	if n == 0 {
		return 0
	}
	i := int(math.Round(s.scroll.Offset / s.pitch()))
	return max(0, min(i, n-1))
}

// SnapTo scrolls so the slot at index is centered in the viewport
func (s *Strip[T]) SnapTo(index int) {
	index = max(0, min(index, s.seq.Len()-1))
	viewport := s.frame.Extent(s.layout.Axis)
	s.scroll.ScrollTo(float64(index)*s.pitch() - (viewport-s.layout.Extent)/2)
}

// --- Geometry helpers ---

// bounds is the frame in local coordinates
func (s *Strip[T]) bounds() core.Rect {
	return core.R(0, 0, s.frame.W, s.frame.H)
}

func (s *Strip[T]) pitch() float64 {
	return s.layout.Extent + s.layout.Spacing
}

// slotStart returns the local leading coordinate of slot index
func (s *Strip[T]) slotStart(index int) float64 {
	return float64(index)*s.pitch() - s.scroll.Offset
}

// contentExtent is the slot run length without insets
func (s *Strip[T]) contentExtent() float64 {
	n := s.seq.Len()
	if n == 0 {
		return 0
	}
	return float64(n)*s.layout.Extent + float64(n-1)*s.layout.Spacing
}

// visibleRange returns the inclusive index range of slots intersecting the viewport
func (s *Strip[T]) visibleRange() (first, last int) {
	n := s.seq.Len()
	if n == 0 {
		return 0, -1
	}
	pitch := s.pitch()
	viewport := s.frame.Extent(s.layout.Axis)
	first = int(math.Floor(s.scroll.Offset / pitch))
	last = int(math.Ceil((s.scroll.Offset + viewport) / pitch))
	return max(first, 0), min(last, n-1)
}

// VisibleRange exposes the visible slot range for renderers
func (s *Strip[T]) VisibleRange() (first, last int) {
	return s.visibleRange()
}
