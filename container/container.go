package container

import (
	"strings"

	"github.com/lixenwraith/reorder/core"
	"github.com/lixenwraith/reorder/proxy"
)

// Item is an opaque, identity-comparable value owned by a container
// The engine only passes it around and compares it with ==
type Item = any

// Container is the required adapter surface every registered region implements
// Point and rect arguments are in container-local coordinates: origin at Frame().Origin()
type Container interface {
	// Frame returns the container bounds in surface content coordinates
	Frame() core.Rect
	Len() int
	ItemAt(index int) (Item, bool)
	IndexOf(item Item) (int, bool)

	// HitIndex resolves a point to the visible slot containing it
	HitIndex(p core.Point) (int, bool)
	// TargetIndex resolves a dragged rect to the slot it should occupy
	TargetIndex(r core.Rect) (int, bool)
	// SlotRect returns the current rect of slot index
	SlotRect(index int) (core.Rect, bool)

	// Move is a stable in-place reorder, out-of-range indices are ignored
	Move(from, to int)
	// Insert places item at index, clamped to [0, Len()]
	Insert(item Item, at int)
	Delete(at int)

	// SetDragging hides the live visual of item while its proxy is in flight
	SetDragging(item Item)
	ClearDragging()
}

// Draggable containers can be the source of a drag
type Draggable interface {
	CanDrag(index int) bool
}

// Droppable containers can receive a dragged item
type Droppable interface {
	CanDrop(index int) bool
}

// Acceptor restricts a droppable container to the items it can hold
// Containers without it are offered every item
type Acceptor interface {
	Accepts(item Item) bool
}

// Styler can decorate the proxy after the engine applies the lifted style
// Returning nil keeps the original view
type Styler interface {
	StyleProxy(v *proxy.View) *proxy.View
}

// Scroller containers auto-scroll while a proxy hovers near their edges
type Scroller interface {
	Axis() core.Axis
	// Viewport returns the visible area in the same space as Frame
	Viewport() core.Rect
	Offset() float64
	// ScrollBy shifts the content offset, clamped, and returns the applied delta
	ScrollBy(delta float64) float64
}

// Lifecycle receives per-container drag notifications
type Lifecycle interface {
	DidBeginDragging(index int)
	DidFinishDragging(droppedOnSource bool)
	DidDrop(item Item, index int)
}

// Capability is a bitmask of optional interfaces a container implements
type Capability uint8

const (
	CapDrag Capability = 1 << iota
	CapDrop
	CapStyle
	CapScroll
	CapLifecycle
	CapAccept
)

// Has reports whether every bit in f is set
func (c Capability) Has(f Capability) bool {
	return c&f == f
}

// String returns a pipe-separated capability list
func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	for _, e := range []struct {
		f    Capability
		name string
	}{
		{CapDrag, "drag"},
		{CapDrop, "drop"},
		{CapStyle, "style"},
		{CapScroll, "scroll"},
		{CapLifecycle, "lifecycle"},
		{CapAccept, "accept"},
	} {
		if c.Has(e.f) {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "|")
}

// CapabilitiesOf detects which optional interfaces c implements
func CapabilitiesOf(c Container) Capability {
	var caps Capability
	if _, ok := c.(Draggable); ok {
		caps |= CapDrag
	}
	if _, ok := c.(Droppable); ok {
		caps |= CapDrop
	}
	if _, ok := c.(Styler); ok {
		caps |= CapStyle
	}
	if _, ok := c.(Scroller); ok {
		caps |= CapScroll
	}
	if _, ok := c.(Lifecycle); ok {
		caps |= CapLifecycle
	}
	if _, ok := c.(Acceptor); ok {
		caps |= CapAccept
	}
	return caps
}
