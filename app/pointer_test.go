package app

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/reorder/core"
	"github.com/lixenwraith/reorder/surface"
)

func TestPointerTranslator(t *testing.T) {
	now := time.Unix(5, 0)
	var pt PointerTranslator

	steps := []struct {
		x, y    int
		btn     tcell.ButtonMask
		want    surface.PointerAction
		emitted bool
	}{
		{1, 1, tcell.ButtonNone, surface.PointerNone, false},
		{1, 1, tcell.Button1, surface.PointerPress, true},
		{1, 1, tcell.Button1, surface.PointerNone, false},
		{3, 1, tcell.Button1, surface.PointerMove, true},
		{3, 2, tcell.Button1 | tcell.Button2, surface.PointerMove, true},
		{3, 2, tcell.ButtonNone, surface.PointerRelease, true},
		{4, 4, tcell.Button2, surface.PointerNone, false},
	}
	for i, s := range steps {
		ev, ok := pt.Translate(tcell.NewEventMouse(s.x, s.y, s.btn, tcell.ModNone), now)
		assert.Equal(t, s.emitted, ok, "step %d", i)
		if ok {
			assert.Equal(t, s.want, ev.Action, "step %d", i)
			assert.Equal(t, core.Pt(float64(s.x)+0.5, float64(s.y)+0.5), ev.Pos, "step %d", i)
			assert.Equal(t, now, ev.Time)
		}
	}
}

func TestPointerTranslatorReset(t *testing.T) {
	var pt PointerTranslator
	now := time.Unix(0, 0)

	_, ok := pt.Translate(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone), now)
	assert.True(t, ok)
	pt.Reset()
	assert.False(t, pt.Down())

	_, ok = pt.Translate(tcell.NewEventMouse(5, 0, tcell.Button1, tcell.ModNone), now)
	assert.False(t, ok, "held button is swallowed")
	_, ok = pt.Translate(tcell.NewEventMouse(5, 0, tcell.ButtonNone, tcell.ModNone), now)
	assert.False(t, ok, "release of a swallowed press is swallowed too")

	ev, ok := pt.Translate(tcell.NewEventMouse(6, 0, tcell.Button1, tcell.ModNone), now)
	assert.True(t, ok)
	assert.Equal(t, surface.PointerPress, ev.Action)

	// Reset without a held button does not swallow the next press
	var idle PointerTranslator
	idle.Reset()
	_, ok = idle.Translate(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone), now)
	assert.True(t, ok)
}
