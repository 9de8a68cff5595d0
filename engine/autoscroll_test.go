package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/reorder/core"
	"github.com/lixenwraith/reorder/surface"
)

func TestVelocityEdges(t *testing.T) {
	viewport := core.R(0, 0, 20, 10)
	tests := []struct {
		name string
		axis core.Axis
		r    core.Rect
		want float64
	}{
		{"middle", core.AxisVertical, core.R(0, 5, 20, 1), 0},
		{"exactly threshold from top", core.AxisVertical, core.R(0, 1, 20, 1), 0},
		{"touching top", core.AxisVertical, core.R(0, 0, 20, 1), -280},
		{"half threshold from top", core.AxisVertical, core.R(0, 0.5, 20, 1), -170},
		{"past top", core.AxisVertical, core.R(0, -3, 20, 1), -280},
		{"touching bottom", core.AxisVertical, core.R(0, 9, 20, 1), 280},
		{"exactly threshold from bottom", core.AxisVertical, core.R(0, 8, 20, 1), 0},
		{"touching left", core.AxisHorizontal, core.R(0, 5, 4, 1), -280},
		{"past right", core.AxisHorizontal, core.R(18, 5, 4, 1), 280},
		{"horizontal middle", core.AxisHorizontal, core.R(8, 0, 4, 10), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Velocity(tt.axis, viewport, tt.r, 1, 60, 280)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestVelocityZeroBeyondThreshold(t *testing.T) {
	viewport := core.R(0, 0, 100, 100)
	for d := 1.0; d < 50; d += 0.5 {
		lead := core.R(10, d, 10, 10)
		trail := core.R(10, 100-10-d, 10, 10)
		assert.Zero(t, Velocity(core.AxisVertical, viewport, lead, 1, 60, 280), "lead %v", d)
		assert.Zero(t, Velocity(core.AxisVertical, viewport, trail, 1, 60, 280), "trail %v", d)
	}
	for d := 0.0; d < 1; d += 0.125 {
		assert.Negative(t, Velocity(core.AxisVertical, viewport, core.R(10, d, 10, 10), 1, 60, 280))
		assert.Positive(t, Velocity(core.AxisVertical, viewport, core.R(10, 90-d, 10, 10), 1, 60, 280))
	}
}

func TestAutoScrollsDestinationContainer(t *testing.T) {
	f := newFixture(t)
	rows := make([]string, 20)
	for i := range rows {
		rows[i] = string(rune('a' + i))
	}
	a := f.list("A", core.R(0, 0, 20, 5), rows...)

	f.eng.Begin(core.Pt(5, 0.5))
	require.True(t, f.eng.Armed())

	// Proxy bottom on the viewport bottom edge
	f.eng.Update(core.Pt(5, 4.5))
	assert.Equal(t, "a", a.Items()[4])

	f.eng.Frame(f.clock.Now())
	assert.Zero(t, a.Offset(), "first tick only records the timestamp")

	f.eng.Frame(f.clock.Advance(250 * time.Millisecond))
	assert.Equal(t, 15.0, a.Offset(), "clamped to content end")
	assert.Equal(t, "a", a.Items()[19], "resolution follows the scrolled content")

	f.eng.End(core.Pt(5, 4.5))
	f.eng.Frame(f.clock.Advance(time.Second))
	assert.Equal(t, 15.0, a.Offset(), "no scrolling after End")
}

func TestAutoScrollLeadingEdgeClamped(t *testing.T) {
	f := newFixture(t)
	a := f.list("A", core.R(0, 0, 20, 5), "a", "b", "c", "d", "e", "f", "g", "h")
	a.ScrollTo(3)

	f.eng.Begin(core.Pt(5, 2.5))
	s, _ := f.eng.Session()
	require.Equal(t, "f", s.Item)

	f.eng.Update(core.Pt(5, 0.5))
	f.eng.Frame(f.clock.Now())
	f.eng.Frame(f.clock.Advance(10 * time.Millisecond))
	assert.Less(t, a.Offset(), 3.0)

	f.eng.Frame(f.clock.Advance(time.Second))
	assert.Zero(t, a.Offset(), "leading bound")
	assert.Equal(t, "f", a.Items()[0])
}

func TestAutoScrollsSurfaceViewport(t *testing.T) {
	vp := surface.NewViewport(core.AxisVertical, core.R(0, 0, 80, 10), 100, core.Insets{})
	f := newFixture(t, surface.WithViewport(vp))
	rows := make([]string, 100)
	for i := range rows {
		rows[i] = fmt.Sprintf("r%02d", i)
	}
	rows[0] = "X"
	c := f.list("C", core.R(0, 0, 20, 100), rows...)

	f.eng.Begin(core.Pt(5, 0.5))
	require.True(t, f.eng.Armed())
	f.eng.Update(core.Pt(5, 9.5))
	require.Equal(t, "X", c.Items()[9])

	f.eng.Frame(f.clock.Now())
	f.eng.Frame(f.clock.Advance(250 * time.Millisecond))

	assert.Equal(t, 70.0, vp.Offset())
	assert.Zero(t, c.Offset(), "container cannot scroll itself")
	assert.Equal(t, "X", c.Items()[79])

	f.eng.End(core.Pt(5, 9.5))
	v, _ := f.surf.Proxy()
	f.eng.Frame(f.clock.Advance(time.Second))
	assert.Equal(t, core.Pt(10, 9.5), v.Frame.Center(), "drop lands in canvas space")
}

func TestAutoScrollFallsBackToSurfaceWhenListIsPinned(t *testing.T) {
	vp := surface.NewViewport(core.AxisHorizontal, core.R(0, 0, 40, 10), 100, core.Insets{})
	f := newFixture(t, surface.WithViewport(vp))
	a := f.list("A", core.R(0, 0, 20, 5), "X", "a")
	b := f.list("B", core.R(20, 0, 20, 5), "b")
	f.list("C", core.R(40, 0, 20, 5), "c")
	f.list("D", core.R(60, 0, 20, 5), "d")
	e := f.list("E", core.R(80, 0, 20, 5), "e")

	// Top row of B: B reports leading-edge velocity but cannot scroll
	f.eng.Begin(core.Pt(5, 0.5))
	f.eng.Update(core.Pt(25, 0.5))
	s, _ := f.eng.Session()
	require.Same(t, b, s.Destination)

	f.eng.Frame(f.clock.Now())
	f.eng.Frame(f.clock.Advance(250 * time.Millisecond))

	assert.Equal(t, 60.0, vp.Offset(), "surface pages right, clamped to content end")
	assert.Zero(t, b.Offset())
	assert.Equal(t, []string{"a"}, a.Items())
	assert.Equal(t, []string{"b"}, b.Items())
	assert.Equal(t, []string{"X", "e"}, e.Items())
}

func TestAutoScrollDisabled(t *testing.T) {
	f := newFixture(t)
	a := f.list("A", core.R(0, 0, 20, 5), "a", "b", "c", "d", "e", "f", "g", "h")
	cfg := DefaultConfig()
	cfg.AutoScroll = false
	require.NoError(t, f.eng.SetConfig(cfg))

	f.eng.Begin(core.Pt(5, 0.5))
	assert.False(t, f.eng.Armed())
	f.eng.Update(core.Pt(5, 4.5))
	f.eng.Frame(f.clock.Now())
	f.eng.Frame(f.clock.Advance(time.Second))
	assert.Zero(t, a.Offset())
}

func TestNothingScrollableNeverArms(t *testing.T) {
	f := newFixture(t)
	f.surf.Register(&fixedList{items: []string{"X"}})

	f.eng.Begin(core.Pt(1, 0.5))
	require.True(t, f.eng.Dragging())
	assert.False(t, f.eng.Armed())
}
