package proxy

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/reorder/core"
)

// Style is the lifted appearance applied while an item is dragged
type Style struct {
	Duration      time.Duration
	Opacity       float64
	Scale         float64
	ShadowColor   colorful.Color
	ShadowOpacity float64
	ShadowRadius  float64
	ShadowOffset  core.Point
}

// DefaultStyle returns the stock pick-up appearance
func DefaultStyle() Style {
	return Style{
		Duration:      200 * time.Millisecond,
		Opacity:       1,
		Scale:         1,
		ShadowColor:   colorful.Color{R: 0, G: 0, B: 0},
		ShadowOpacity: 0.3,
		ShadowRadius:  10,
		ShadowOffset:  core.Pt(0, 3),
	}
}

// Lifted returns the target appearance of a picked-up proxy
func (s Style) Lifted() Appearance {
	return Appearance{Opacity: s.Opacity, Scale: s.Scale, ShadowOpacity: s.ShadowOpacity}
}

// Apply sets the static shadow geometry on v
func (s Style) Apply(v *View) {
	v.Shadow = Shadow{Color: s.ShadowColor, Radius: s.ShadowRadius, Offset: s.ShadowOffset}
}
