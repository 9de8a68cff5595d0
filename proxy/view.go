// Package proxy builds the floating copy of a dragged item and animates its
// pick-up and drop appearance.
//
// A View carries no data-model responsibility. It is owned by a drag session
// and destroyed with it; the host renders it above every container.
package proxy

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/reorder/core"
)

// Appearance holds the animatable visual properties of a proxy
type Appearance struct {
	Opacity       float64
	Scale         float64
	ShadowOpacity float64
}

// Resting is the appearance of an item sitting in its container
var Resting = Appearance{Opacity: 1, Scale: 1, ShadowOpacity: 0}

// Shadow describes the static shadow geometry drawn under a lifted proxy
type Shadow struct {
	Color  colorful.Color
	Radius float64
	Offset core.Point
}

// View is a detached visual copy of an item, positioned in canvas coordinates
type View struct {
	// Frame is the unscaled frame, used for hit testing against containers
	Frame core.Rect
	// Item is the carried data item, the renderer uses it to draw content
	Item any
	Appearance
	Shadow Shadow
}

// Capture creates a proxy exactly overlaying frame with resting appearance
func Capture(frame core.Rect, item any) *View {
	return &View{
		Frame:      frame,
		Item:       item,
		Appearance: Resting,
	}
}

// Bounds returns the visual rect with scale applied around the frame center
func (v *View) Bounds() core.Rect {
	if v.Scale == 0 || v.Scale == 1 {
		return v.Frame
	}
	return v.Frame.Scale(v.Scale)
}

// ShadowBounds returns the rect covered by the shadow, empty when no shadow is visible
func (v *View) ShadowBounds() core.Rect {
	if v.ShadowOpacity <= 0 {
		return core.Rect{}
	}
	return v.Bounds().Add(v.Shadow.Offset)
}

// MoveTo repositions the proxy origin
func (v *View) MoveTo(origin core.Point) {
	v.Frame = v.Frame.MoveTo(origin)
}
