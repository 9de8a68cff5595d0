package engine

import (
	"time"

	"github.com/lixenwraith/reorder/container"
	"github.com/lixenwraith/reorder/core"
	"github.com/lixenwraith/reorder/vmath"
)

// Velocity maps the distance between r and the near edge of viewport onto an auto-scroll speed
// Negative near the leading edge, positive near the trailing edge, zero once both
// distances reach threshold. Distances past the edge count as zero
func Velocity(axis core.Axis, viewport, r core.Rect, threshold, minVelocity, maxVelocity float64) float64 {
	lead := max(r.Min(axis)-viewport.Min(axis), 0)
	trail := max(viewport.Max(axis)-r.Max(axis), 0)

	if lead < threshold {
		return vmath.Remap(lead, threshold, 0, -minVelocity, -maxVelocity)
	}
	if trail < threshold {
		return vmath.Remap(trail, threshold, 0, minVelocity, maxVelocity)
	}
	return 0
}

func (e *Engine) velocity(axis core.Axis, viewport, r core.Rect) float64 {
	return Velocity(axis, viewport, r, e.config.ScrollThreshold, e.config.ScrollMinVelocity, e.config.ScrollMaxVelocity)
}

// shouldArm reports whether anything on the surface can auto-scroll
func (e *Engine) shouldArm() bool {
	if !e.config.AutoScroll {
		return false
	}
	return e.surface.Scrollable() || e.registry.Any(container.CapScroll)
}

// Armed reports whether the auto-scroll clock is running
func (e *Engine) Armed() bool {
	return e.armed
}

// Tick advances auto-scroll to now and re-resolves the destination if content moved
// The first tick after arming only records the timestamp
func (e *Engine) Tick(now time.Time) {
	if !e.armed || e.state != stateDragging {
		return
	}
	if !e.ticked {
		e.lastTick, e.ticked = now, true
		return
	}
	elapsed := now.Sub(e.lastTick).Seconds()
	e.lastTick = now
	if elapsed <= 0 {
		return
	}
	if e.scroll(elapsed) {
		e.resolve()
	}
}

// scroll moves the destination container if the proxy sits in its edge band and
// the container still has room, otherwise the surface viewport
// It reports whether any content moved
func (e *Engine) scroll(elapsed float64) bool {
	s := e.session
	if sc := s.dest.Scroll; sc != nil {
		r := e.surface.RectToContent(s.Proxy.Frame)
		if v := e.velocity(sc.Axis(), sc.Viewport(), r); v != 0 && sc.ScrollBy(v*elapsed) != 0 {
			return true
		}
	}
	if vp := e.surface.Viewport(); vp != nil {
		if v := e.velocity(vp.Axis(), vp.Viewport(), s.Proxy.Frame); v != 0 {
			return vp.ScrollBy(v*elapsed) != 0
		}
	}
	return false
}
