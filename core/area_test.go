package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectAxisAccessors(t *testing.T) {
	r := R(2, 4, 10, 20)

	assert.Equal(t, 4.0, r.Min(AxisVertical))
	assert.Equal(t, 24.0, r.Max(AxisVertical))
	assert.Equal(t, 20.0, r.Extent(AxisVertical))

	assert.Equal(t, 2.0, r.Min(AxisHorizontal))
	assert.Equal(t, 12.0, r.Max(AxisHorizontal))
	assert.Equal(t, 10.0, r.Extent(AxisHorizontal))
}

func TestRectContainsExclusiveMax(t *testing.T) {
	r := R(0, 0, 4, 2)
	assert.True(t, r.Contains(Pt(0, 0)))
	assert.True(t, r.Contains(Pt(3.9, 1.9)))
	assert.False(t, r.Contains(Pt(4, 1)))
	assert.False(t, r.Contains(Pt(1, 2)))
}

func TestRectTranslation(t *testing.T) {
	r := R(5, 5, 2, 2)
	origin := Pt(3, 1)

	local := r.Sub(origin)
	assert.Equal(t, R(2, 4, 2, 2), local)
	assert.Equal(t, r, local.Add(origin), "Sub then Add must round trip")

	assert.Equal(t, Pt(10, 10), r.CenterOn(Pt(10, 10)).Center())
}

func TestRectScaleKeepsCenter(t *testing.T) {
	r := R(0, 0, 10, 4)
	s := r.Scale(1.5)
	assert.Equal(t, r.Center(), s.Center())
	assert.Equal(t, 15.0, s.W)
	assert.Equal(t, 6.0, s.H)
}

func TestRectInsetNeverNegative(t *testing.T) {
	r := R(0, 0, 4, 4).Inset(Insets{Left: 3, Right: 3, Top: 1})
	assert.Equal(t, 0.0, r.W)
	assert.Equal(t, 3.0, r.H)
}

func TestAxisVec(t *testing.T) {
	assert.Equal(t, Pt(0, 3), AxisVertical.Vec(3))
	assert.Equal(t, Pt(-2, 0), AxisHorizontal.Vec(-2))
	assert.Equal(t, "horizontal", AxisHorizontal.String())
}
