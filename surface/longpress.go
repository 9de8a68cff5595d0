package surface

import (
	"math"
	"time"

	"github.com/lixenwraith/reorder/core"
)

const (
	DefaultMinPressDuration  = 300 * time.Millisecond
	DefaultAllowableMovement = 10
)

// GestureState is the long-press recognizer state
type GestureState uint8

const (
	GesturePossible GestureState = iota
	GestureBegan
	GestureChanged
	GestureEnded
	GestureCancelled
	GestureFailed
)

// String returns human-readable state name
func (s GestureState) String() string {
	switch s {
	case GesturePossible:
		return "Possible"
	case GestureBegan:
		return "Began"
	case GestureChanged:
		return "Changed"
	case GestureEnded:
		return "Ended"
	case GestureCancelled:
		return "Cancelled"
	case GestureFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// GestureHandler receives recognized long-press transitions
// Cancellation and failure after Begin are both delivered as End
type GestureHandler interface {
	// ShouldBegin gates tracking of a press, false ignores the press entirely
	ShouldBegin(p core.Point) bool
	Begin(p core.Point)
	Update(p core.Point)
	End(p core.Point)
}

// LongPress recognizes a press held in place for MinDuration followed by drag motion
// Time only advances through event timestamps and Poll, so tests drive it deterministically
type LongPress struct {
	MinDuration       time.Duration
	AllowableMovement float64

	handler  GestureHandler
	state    GestureState
	tracking bool
	start    time.Time
	origin   core.Point
	last     core.Point
}

// NewLongPress creates a recognizer with the given hold duration and movement tolerance
func NewLongPress(minDuration time.Duration, allowableMovement float64) *LongPress {
	return &LongPress{
		MinDuration:       minDuration,
		AllowableMovement: allowableMovement,
		state:             GesturePossible,
	}
}

// SetHandler installs the gesture consumer
func (lp *LongPress) SetHandler(h GestureHandler) {
	lp.handler = h
}

// State returns the current recognizer state
func (lp *LongPress) State() GestureState {
	return lp.state
}

// Active reports whether a recognized gesture is in progress
func (lp *LongPress) Active() bool {
	return lp.tracking && (lp.state == GestureBegan || lp.state == GestureChanged)
}

// Handle feeds one pointer event into the recognizer
func (lp *LongPress) Handle(ev PointerEvent) {
	switch ev.Action {
	case PointerPress:
		lp.press(ev)
	case PointerMove:
		lp.move(ev)
	case PointerRelease:
		lp.release(ev)
	case PointerCancel:
		lp.cancel()
	}
}

// Poll fires Began once the hold duration elapsed without disqualifying movement
func (lp *LongPress) Poll(now time.Time) {
	if lp.tracking && lp.state == GesturePossible && now.Sub(lp.start) >= lp.MinDuration {
		lp.begin()
	}
}

func (lp *LongPress) press(ev PointerEvent) {
	// Single pointer only, a second press while tracking is ignored
	if lp.tracking {
		return
	}
	if lp.handler == nil || !lp.handler.ShouldBegin(ev.Pos) {
		lp.state = GestureFailed
		return
	}
	lp.tracking = true
	lp.state = GesturePossible
	lp.start = ev.Time
	lp.origin = ev.Pos
	lp.last = ev.Pos
}

func (lp *LongPress) move(ev PointerEvent) {
	if !lp.tracking {
		return
	}
	lp.last = ev.Pos
	switch lp.state {
	case GesturePossible:
		if distance(ev.Pos, lp.origin) > lp.AllowableMovement {
			lp.fail()
			return
		}
		if ev.Time.Sub(lp.start) >= lp.MinDuration {
			lp.begin()
		}
	case GestureBegan, GestureChanged:
		lp.state = GestureChanged
		lp.handler.Update(ev.Pos)
	}
}

func (lp *LongPress) release(ev PointerEvent) {
	if !lp.tracking {
		return
	}
	lp.last = ev.Pos
	if lp.state == GesturePossible {
		if ev.Time.Sub(lp.start) < lp.MinDuration {
			lp.fail()
			return
		}
		// Held long enough but no poll arrived in between
		lp.begin()
	}
	lp.tracking = false
	lp.state = GestureEnded
	lp.handler.End(ev.Pos)
}

func (lp *LongPress) cancel() {
	if !lp.tracking {
		return
	}
	if lp.state == GesturePossible {
		lp.fail()
		return
	}
	lp.tracking = false
	lp.state = GestureCancelled
	lp.handler.End(lp.last)
}

func (lp *LongPress) begin() {
	lp.state = GestureBegan
	lp.handler.Begin(lp.last)
}

func (lp *LongPress) fail() {
	lp.tracking = false
	lp.state = GestureFailed
}

func distance(a, b core.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
