package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reorder/board"
	"github.com/lixenwraith/reorder/container"
	"github.com/lixenwraith/reorder/core"
	"github.com/lixenwraith/reorder/status"
)

// LanesLayer draws every lane and its visible cards, clipped to the lane frame
type LanesLayer struct{}

func (LanesLayer) Render(ctx Context, buf *Buffer) {
	if ctx.Layout == nil {
		return
	}
	for _, lane := range ctx.Layout.Lanes {
		frame := lane.Strip.Frame()
		fr := ctx.ContentToCells(frame)
		buf.Fill(fr.X, fr.Y, fr.W, fr.H, ' ', RgbLaneBg, BlendReplace, 1)

		buf.SetClip(fr.X, fr.Y, fr.W, fr.H)
		first, last := lane.Strip.VisibleRange()
		for i := first; i <= last; i++ {
			slot, ok := lane.Strip.SlotRect(i)
			if !ok {
				continue
			}
			r := ctx.ContentToCells(slot.Add(frame.Origin()))
			if lane.Strip.IsDragging(i) {
				drawPlaceholder(buf, r)
				continue
			}
			item, _ := lane.Strip.At(i)
			var attrs tcell.AttrMask
			if i == lane.LastDrop {
				attrs = tcell.AttrBold
			}
			drawCard(buf, r, item, 1, attrs)
			if i == lane.LastDrop {
				buf.Set(r.X, r.Y+(r.H-1)/2, '▸', RgbDropFlash, RgbDropFlash, BlendFgOnly, 1, tcell.AttrBold)
			}
		}
		buf.ResetClip()
	}
}

// HeaderLayer draws column titles with card counts and scroll hints
// Titles follow the header strip, so a dragged column leaves a placeholder
type HeaderLayer struct{}

func (HeaderLayer) Render(ctx Context, buf *Buffer) {
	if ctx.Layout == nil {
		return
	}
	headers := ctx.Layout.Headers
	origin := headers.Frame().Origin()
	for i := range headers.Len() {
		slot, _ := headers.SlotRect(i)
		r := ctx.ContentToCells(slot.Add(origin))
		if headers.IsDragging(i) {
			drawPlaceholder(buf, r)
			continue
		}
		col, _ := headers.At(i)
		lane, ok := ctx.Layout.LaneOfColumn(col)
		if !ok {
			continue
		}
		title := fmt.Sprintf("%s (%d)", col.Title, lane.Strip.Len())
		buf.Text(r.X, r.Y, title, RgbHeaderText, r.W, tcell.AttrBold)

		first, last := lane.Strip.VisibleRange()
		hint := ""
		if first > 0 {
			hint += "▲"
		}
		if last >= 0 && last < lane.Strip.Len()-1 {
			hint += "▼"
		}
		buf.Text(r.X, r.Y+1, hint, RgbHeaderDim, r.W, 0)
	}
}

// ProxyLayer draws the floating proxy and its shadow above everything else
type ProxyLayer struct{}

func (ProxyLayer) Render(ctx Context, buf *Buffer) {
	if ctx.Surface == nil {
		return
	}
	v, ok := ctx.Surface.Proxy()
	if !ok {
		return
	}

	if sb := v.ShadowBounds(); !sb.Empty() {
		// Terminal cells cannot blur, the radius becomes a half-strength ring
		spread := math.Round(v.Shadow.Radius / 10)
		if spread > 0 {
			outer := ctx.ToCells(sb.Inset(core.Insets{Top: -spread, Left: -spread, Bottom: -spread, Right: -spread}))
			buf.Fill(outer.X, outer.Y, outer.W, outer.H, 0, v.Shadow.Color, BlendAlphaBg, v.ShadowOpacity/2)
		}
		inner := ctx.ToCells(sb)
		buf.Fill(inner.X, inner.Y, inner.W, inner.H, 0, v.Shadow.Color, BlendAlphaBg, v.ShadowOpacity/2)
	}

	drawCard(buf, ctx.ToCells(v.Bounds()), v.Item, v.Opacity, tcell.AttrBold)
}

// StatusLayer draws the bottom status line: drag state and frame rate
type StatusLayer struct {
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

func NewStatusLayer() *StatusLayer {
	return &StatusLayer{}
}

// FPS returns the last measured frame rate
func (s *StatusLayer) FPS() int {
	return s.currentFps
}

func (s *StatusLayer) Render(ctx Context, buf *Buffer) {
	s.frameCount++
	if s.lastFpsUpdate.IsZero() {
		s.lastFpsUpdate = ctx.Now
	}
	if ctx.Now.Sub(s.lastFpsUpdate) >= time.Second {
		s.currentFps = s.frameCount
		s.frameCount = 0
		s.lastFpsUpdate = ctx.Now
	}

	y := ctx.Height - 1
	bg := RgbStatusBg
	text := "idle"
	if ctx.Engine != nil {
		if sess, ok := ctx.Engine.Session(); ok {
			bg = RgbStatusDrag
			label, _ := cardFace(sess.Item)
			if col, ok := sess.Item.(*board.Column); ok {
				text = fmt.Sprintf("moving column %s", col.Title)
			} else {
				text = fmt.Sprintf("dragging %s from %s", label, laneTitle(ctx.Layout, sess.Source))
				if sess.Destination != nil && sess.Destination != sess.Source {
					text += " to " + laneTitle(ctx.Layout, sess.Destination)
				}
			}
		} else if ctx.Engine.Settling() {
			text = "settling"
		}
	}
	buf.Fill(0, y, ctx.Width, 1, ' ', bg, BlendReplace, 1)
	x := 1 + buf.Text(1, y, text, RgbStatusText, ctx.Width-2, 0)

	right := fmt.Sprintf("%d fps  esc cancel  q quit", s.currentFps)
	if ctx.Stats != nil {
		right = fmt.Sprintf("%d moved  %s", ctx.Stats.Ints.Get(status.KeyDropped).Load(), right)
	}
	rx := max(ctx.Width-len(right)-1, x+2)
	buf.Text(rx, y, right, RgbStatusText, ctx.Width-rx, 0)
}

func laneTitle(l *board.Layout, c container.Container) string {
	if l == nil {
		return "?"
	}
	if lane, ok := l.LaneOf(c); ok {
		return lane.Column.Title
	}
	return "?"
}
