package proxy

import (
	"slices"
	"time"

	"github.com/lixenwraith/reorder/core"
	"github.com/lixenwraith/reorder/vmath"
)

// tween interpolates one view from a start state to an end state
type tween struct {
	view     *View
	start    time.Time
	duration time.Duration

	from, to Appearance

	move           bool
	fromPos, toPos core.Point
	done           func()
}

// apply writes the interpolated state for progress t in [0, 1]
func (tw *tween) apply(t float64) {
	v := tw.view
	if t >= 1 {
		v.Appearance = tw.to
		if tw.move {
			v.MoveTo(tw.toPos)
		}
		return
	}
	eased := vmath.EaseInOut(t)
	v.Opacity = vmath.Lerp(tw.from.Opacity, tw.to.Opacity, t)
	v.ShadowOpacity = vmath.Lerp(tw.from.ShadowOpacity, tw.to.ShadowOpacity, t)
	v.Scale = vmath.Lerp(tw.from.Scale, tw.to.Scale, eased)
	if tw.move {
		v.MoveTo(core.Pt(
			vmath.Lerp(tw.fromPos.X, tw.toPos.X, eased),
			vmath.Lerp(tw.fromPos.Y, tw.toPos.Y, eased),
		))
	}
}

// Animator drives proxy tweens from host frame callbacks
// Not safe for concurrent use, all calls come from the UI loop
type Animator struct {
	tweens []*tween
}

// NewAnimator creates an idle animator
func NewAnimator() *Animator {
	return &Animator{}
}

// AnimateIn lifts v from resting to the style's appearance
// Shadow geometry is left as is, callers apply it with Style.Apply first
func (a *Animator) AnimateIn(v *View, s Style, now time.Time, done func()) {
	v.Appearance = Resting
	a.start(&tween{
		view:     v,
		start:    now,
		duration: s.Duration,
		from:     Resting,
		to:       s.Lifted(),
		done:     done,
	})
}

// AnimateOut returns v to resting appearance from wherever it currently is
// When center is non-nil the view also travels so its frame is centered on it
func (a *Animator) AnimateOut(v *View, s Style, center *core.Point, now time.Time, done func()) {
	tw := &tween{
		view:     v,
		start:    now,
		duration: s.Duration,
		from:     v.Appearance,
		to:       Resting,
		done:     done,
	}
	if center != nil {
		tw.move = true
		tw.fromPos = v.Frame.Origin()
		tw.toPos = v.Frame.CenterOn(*center).Origin()
	}
	a.start(tw)
}

// start replaces any running tween on the same view, then runs or schedules tw
func (a *Animator) start(tw *tween) {
	a.tweens = slices.DeleteFunc(a.tweens, func(o *tween) bool { return o.view == tw.view })
	if tw.duration <= 0 {
		tw.apply(1)
		if tw.done != nil {
			tw.done()
		}
		return
	}
	a.tweens = append(a.tweens, tw)
}

// Step advances all tweens to now, firing completions for finished ones
func (a *Animator) Step(now time.Time) {
	if len(a.tweens) == 0 {
		return
	}
	var finished []*tween
	a.tweens = slices.DeleteFunc(a.tweens, func(tw *tween) bool {
		elapsed := now.Sub(tw.start)
		if elapsed < 0 {
			elapsed = 0
		}
		t := float64(elapsed) / float64(tw.duration)
		if t >= 1 {
			tw.apply(1)
			finished = append(finished, tw)
			return true
		}
		tw.apply(t)
		return false
	})
	// Completions may start new tweens, so they run after the list is settled
	for _, tw := range finished {
		if tw.done != nil {
			tw.done()
		}
	}
}

// Flush jumps every tween to its end state and fires completions
func (a *Animator) Flush() {
	for len(a.tweens) > 0 {
		pending := a.tweens
		a.tweens = nil
		for _, tw := range pending {
			tw.apply(1)
			if tw.done != nil {
				tw.done()
			}
		}
	}
}

// Active reports whether any tween is running
func (a *Animator) Active() bool {
	return len(a.tweens) > 0
}

// Animating reports whether v has a running tween
func (a *Animator) Animating(v *View) bool {
	return slices.ContainsFunc(a.tweens, func(tw *tween) bool { return tw.view == v })
}
