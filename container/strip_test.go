package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/reorder/core"
	"github.com/lixenwraith/reorder/proxy"
)

type card struct{ name string }

func cards(names ...string) []*card {
	out := make([]*card, len(names))
	for i, n := range names {
		out[i] = &card{name: n}
	}
	return out
}

// recordingDelegate captures strip delegate callbacks
type recordingDelegate struct {
	began    []int
	dropped  []int
	finished int
}

func (d *recordingDelegate) DidBeginDragging(i int) { d.began = append(d.began, i) }
func (d *recordingDelegate) DidFinishDragging()     { d.finished++ }
func (d *recordingDelegate) DidDrop(i int)          { d.dropped = append(d.dropped, i) }

func TestStripCapabilities(t *testing.T) {
	s := NewList(core.R(0, 0, 20, 10), 2, 0, cards("a"))
	caps := CapabilitiesOf(s)
	assert.True(t, caps.Has(CapDrag|CapDrop|CapStyle|CapScroll|CapLifecycle|CapAccept))
	assert.Equal(t, "drag|drop|style|scroll|lifecycle|accept", caps.String())
	assert.Equal(t, "none", Capability(0).String())
}

func TestListSlotGeometry(t *testing.T) {
	s := NewList(core.R(5, 5, 20, 10), 2, 1, cards("a", "b", "c"))

	r, ok := s.SlotRect(0)
	require.True(t, ok)
	assert.Equal(t, core.R(0, 0, 20, 2), r)

	r, ok = s.SlotRect(2)
	require.True(t, ok)
	assert.Equal(t, core.R(0, 6, 20, 2), r)

	_, ok = s.SlotRect(3)
	assert.False(t, ok)
}

func TestListHitIndex(t *testing.T) {
	s := NewList(core.R(0, 0, 20, 10), 2, 1, cards("a", "b", "c"))

	i, ok := s.HitIndex(core.Pt(3, 0.5))
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = s.HitIndex(core.Pt(3, 7))
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = s.HitIndex(core.Pt(3, 2.5))
	assert.False(t, ok, "spacing gap belongs to no slot")

	_, ok = s.HitIndex(core.Pt(3, 9.5))
	assert.False(t, ok, "below the last slot")

	_, ok = s.HitIndex(core.Pt(25, 1))
	assert.False(t, ok, "outside frame")
}

func TestListTargetIndex(t *testing.T) {
	s := NewList(core.R(0, 0, 20, 20), 2, 0, cards("a", "b", "c", "d"))

	tests := []struct {
		name string
		r    core.Rect
		want int
		ok   bool
	}{
		{"largest overlap", core.R(0, 2.6, 20, 2), 1, true},
		{"largest overlap next", core.R(0, 3.4, 20, 2), 2, true},
		{"past last slot", core.R(0, 12, 20, 2), 3, true},
		{"before first slot", core.R(0, -5, 20, 2), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.TargetIndex(tt.r)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTargetIndexEmptyStrip(t *testing.T) {
	s := NewList[*card](core.R(0, 0, 20, 20), 2, 0, nil)
	i, ok := s.TargetIndex(core.R(3, 3, 10, 2))
	assert.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestTargetIndexGapFails(t *testing.T) {
	s := NewList(core.R(0, 0, 20, 20), 2, 4, cards("a", "b"))
	// Slot 0 spans [0,2), slot 1 spans [6,8): a rect inside the gap touches neither
	_, ok := s.TargetIndex(core.R(0, 2.5, 20, 3))
	assert.False(t, ok)
}

func TestScrollClampsToInsets(t *testing.T) {
	s := NewStrip(core.R(0, 0, 20, 10), Layout{
		Axis:   core.AxisVertical,
		Extent: 2,
		Insets: core.Insets{Top: 1, Bottom: 3},
	}, cards("a", "b", "c", "d", "e", "f", "g", "h"))

	assert.Equal(t, -1.0, s.Offset())

	applied := s.ScrollBy(-5)
	assert.Zero(t, applied, "already at leading bound")

	applied = s.ScrollBy(100)
	// content 16 - viewport 10 + trailing 3
	assert.Equal(t, 9.0, s.Offset())
	assert.Equal(t, 10.0, applied)

	// Slots follow the offset
	r, _ := s.SlotRect(0)
	assert.Equal(t, -9.0, r.Y)
}

func TestShortContentPinsToLeadingBound(t *testing.T) {
	s := NewStrip(core.R(0, 0, 20, 10), Layout{
		Axis:   core.AxisVertical,
		Extent: 2,
		Insets: core.Insets{Top: 1},
	}, cards("a"))
	s.ScrollBy(50)
	assert.Equal(t, -1.0, s.Offset())
}

func TestPagerGeometryAndSnap(t *testing.T) {
	p := NewPager(core.R(0, 0, 100, 30), DefaultPagePadding, cards("a", "b", "c"))

	assert.Equal(t, core.AxisHorizontal, p.Axis())
	assert.Equal(t, 60.0, p.Layout().Extent)
	assert.Equal(t, -20.0, p.Offset())

	r, _ := p.SlotRect(0)
	assert.Equal(t, core.R(20, 0, 60, 30), r)

	i, ok := p.HitIndex(core.Pt(90, 5))
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	assert.Equal(t, 0, p.SnapIndex())
	p.SnapTo(1)
	assert.Equal(t, 1, p.SnapIndex())
	r, _ = p.SlotRect(1)
	assert.Equal(t, 20.0, r.X, "snapped page is centered")
}

func TestStripInsertIgnoresForeignTypes(t *testing.T) {
	s := NewList(core.R(0, 0, 20, 10), 2, 0, cards("a"))
	s.Insert("not a card", 0)
	assert.Equal(t, 1, s.Len())

	_, ok := s.IndexOf(42)
	assert.False(t, ok)
}

func TestStripEligibility(t *testing.T) {
	items := cards("pinned", "b", "c")
	s := NewList(core.R(0, 0, 20, 10), 2, 0, items)
	s.SetDragFilter(func(_ int, c *card) bool { return c.name != "pinned" })
	s.SetDropFilter(func(i int) bool { return i != 2 })

	assert.False(t, s.CanDrag(0))
	assert.True(t, s.CanDrag(1))
	assert.False(t, s.CanDrag(7))

	assert.True(t, s.CanDrop(0))
	assert.False(t, s.CanDrop(2))

	s.SetDroppable(false)
	assert.False(t, s.CanDrop(0))
}

func TestStripStyleProxy(t *testing.T) {
	s := NewList(core.R(0, 0, 20, 10), 2, 0, cards("a"))
	v := proxy.Capture(core.R(0, 0, 20, 2), nil)
	assert.Same(t, v, s.StyleProxy(v))

	s.SetStyler(func(v *proxy.View) *proxy.View {
		v.Opacity = 0.5
		return v
	})
	assert.Equal(t, 0.5, s.StyleProxy(v).Opacity)
}

func TestStripDraggingMarkerFollowsItem(t *testing.T) {
	items := cards("a", "b", "c")
	s := NewList(core.R(0, 0, 20, 10), 2, 0, items)
	d := &recordingDelegate{}
	s.SetDelegate(d)

	s.SetDragging(items[0])
	s.DidBeginDragging(0)
	s.Move(0, 2)
	assert.True(t, s.IsDragging(2))
	assert.False(t, s.IsDragging(0))

	s.DidFinishDragging(true)
	assert.Equal(t, []int{0}, d.began)
	assert.Equal(t, []int{2}, d.dropped)
	assert.Equal(t, 1, d.finished)
	_, dragging := s.Dragging()
	assert.False(t, dragging)
}

func TestStripAcceptsOwnType(t *testing.T) {
	s := NewList(core.R(0, 0, 20, 10), 2, 0, cards("a"))
	assert.True(t, s.Accepts(&card{name: "b"}))
	assert.False(t, s.Accepts("b"))
	assert.False(t, s.Accepts(nil))
}

func TestStripSetLayout(t *testing.T) {
	s := NewStrip(core.R(0, 0, 100, 2), Layout{Axis: core.AxisHorizontal, Extent: 20, Spacing: 2}, cards("a", "b", "c"))
	r, _ := s.SlotRect(1)
	assert.Equal(t, core.R(22, 0, 20, 2), r)

	s.SetLayout(Layout{Axis: core.AxisHorizontal, Extent: 30, Spacing: 2, Insets: core.Insets{Left: 5, Right: 5}})
	assert.Equal(t, -5.0, s.Offset(), "back at the leading bound")
	r, _ = s.SlotRect(1)
	assert.Equal(t, core.R(37, 0, 30, 2), r)
}
