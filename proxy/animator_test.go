package proxy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/reorder/core"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func liftedStyle() Style {
	s := DefaultStyle()
	s.Opacity = 0.8
	s.Scale = 1.1
	return s
}

func TestCaptureOverlaysFrame(t *testing.T) {
	v := Capture(core.R(3, 4, 20, 3), "card")
	assert.Equal(t, core.R(3, 4, 20, 3), v.Frame)
	assert.Equal(t, core.R(3, 4, 20, 3), v.Bounds())
	assert.Equal(t, Resting, v.Appearance)
	assert.True(t, v.ShadowBounds().Empty())
}

func TestAnimateInReachesLiftedAppearance(t *testing.T) {
	a := NewAnimator()
	v := Capture(core.R(0, 0, 10, 2), nil)
	s := liftedStyle()
	s.Apply(v)

	completed := false
	a.AnimateIn(v, s, epoch, func() { completed = true })
	require.True(t, a.Animating(v))

	a.Step(epoch.Add(s.Duration / 2))
	assert.False(t, completed)
	assert.Greater(t, v.ShadowOpacity, 0.0)
	assert.Less(t, v.ShadowOpacity, s.ShadowOpacity)

	a.Step(epoch.Add(s.Duration))
	assert.True(t, completed)
	assert.False(t, a.Active())
	assert.Equal(t, s.Lifted(), v.Appearance)
	assert.Equal(t, s.ShadowOffset, v.Shadow.Offset)
}

func TestAnimateOutMovesToCenter(t *testing.T) {
	a := NewAnimator()
	v := Capture(core.R(0, 0, 10, 2), nil)
	s := liftedStyle()
	a.AnimateIn(v, s, epoch, nil)
	a.Flush()

	target := core.Pt(30, 11)
	done := 0
	a.AnimateOut(v, s, &target, epoch, func() { done++ })
	a.Step(epoch.Add(s.Duration * 2))

	assert.Equal(t, 1, done)
	assert.Equal(t, target, v.Frame.Center())
	assert.Equal(t, Resting, v.Appearance)
}

func TestZeroDurationCompletesSynchronously(t *testing.T) {
	a := NewAnimator()
	v := Capture(core.R(0, 0, 4, 1), nil)
	s := liftedStyle()
	s.Duration = 0

	called := false
	a.AnimateOut(v, s, nil, epoch, func() { called = true })
	assert.True(t, called)
	assert.False(t, a.Active())
}

func TestNewTweenReplacesRunningTween(t *testing.T) {
	a := NewAnimator()
	v := Capture(core.R(0, 0, 4, 1), nil)
	s := liftedStyle()

	inDone := false
	a.AnimateIn(v, s, epoch, func() { inDone = true })
	a.Step(epoch.Add(s.Duration / 4))

	outDone := false
	a.AnimateOut(v, s, nil, epoch.Add(s.Duration/4), func() { outDone = true })
	a.Flush()

	assert.False(t, inDone, "replaced tween must not complete")
	assert.True(t, outDone)
	assert.Equal(t, Resting, v.Appearance)
}

func TestCompletionMayStartTween(t *testing.T) {
	a := NewAnimator()
	v := Capture(core.R(0, 0, 4, 1), nil)
	w := Capture(core.R(0, 5, 4, 1), nil)
	s := liftedStyle()

	chained := false
	a.AnimateIn(v, s, epoch, func() {
		a.AnimateIn(w, s, epoch.Add(s.Duration), func() { chained = true })
	})
	a.Step(epoch.Add(s.Duration))
	require.True(t, a.Animating(w))

	a.Step(epoch.Add(2 * s.Duration))
	assert.True(t, chained)
}
