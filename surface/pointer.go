package surface

import (
	"time"

	"github.com/lixenwraith/reorder/core"
)

// PointerAction represents the type of pointer event
type PointerAction uint8

const (
	PointerNone PointerAction = iota
	PointerPress
	PointerMove
	PointerRelease
	PointerCancel
)

// String returns human-readable action name
func (a PointerAction) String() string {
	switch a {
	case PointerPress:
		return "Press"
	case PointerMove:
		return "Move"
	case PointerRelease:
		return "Release"
	case PointerCancel:
		return "Cancel"
	default:
		return "None"
	}
}

// PointerEvent is a single-pointer input sample in canvas coordinates
type PointerEvent struct {
	Action PointerAction
	Pos    core.Point
	Time   time.Time
}
