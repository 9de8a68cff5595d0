package app

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reorder/core"
	"github.com/lixenwraith/reorder/surface"
)

// PointerTranslator turns tcell mouse reports into press/move/release pointer events
// tcell reports button state, not transitions, so the last state is tracked here
type PointerTranslator struct {
	down bool
	last core.Point

	// held is set after Reset until the button is released
	held bool
}

// Translate converts one mouse report, ok is false when nothing changed
// The pointer sits at the centre of the reported cell
func (pt *PointerTranslator) Translate(ev *tcell.EventMouse, now time.Time) (surface.PointerEvent, bool) {
	x, y := ev.Position()
	pos := core.Pt(float64(x)+0.5, float64(y)+0.5)
	pressed := ev.Buttons()&tcell.Button1 != 0

	if pt.held {
		pt.held = pressed
		return surface.PointerEvent{}, false
	}

	var action surface.PointerAction
	switch {
	case pressed && !pt.down:
		action = surface.PointerPress
	case pressed && pt.down:
		if pos == pt.last {
			return surface.PointerEvent{}, false
		}
		action = surface.PointerMove
	case !pressed && pt.down:
		action = surface.PointerRelease
	default:
		return surface.PointerEvent{}, false
	}

	pt.down = pressed
	pt.last = pos
	return surface.PointerEvent{Action: action, Pos: pos, Time: now}, true
}

// Reset forgets a held button, used when the gesture is cancelled from the keyboard
// Reports are swallowed until the button goes up
func (pt *PointerTranslator) Reset() {
	pt.held = pt.down
	pt.down = false
}

// Down reports whether the primary button is held
func (pt *PointerTranslator) Down() bool {
	return pt.down
}
