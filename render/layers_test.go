package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/reorder/board"
	"github.com/lixenwraith/reorder/config"
	"github.com/lixenwraith/reorder/core"
	"github.com/lixenwraith/reorder/engine"
	"github.com/lixenwraith/reorder/surface"
)

type fixedHost core.Rect

func (h fixedHost) Bounds() core.Rect { return core.Rect(h) }

type scene struct {
	layout *board.Layout
	surf   *surface.Surface
	eng    *engine.Engine
	orch   *Orchestrator
	screen *MockScreen
	clock  *engine.MockTimeProvider
}

func newScene(t *testing.T) *scene {
	t.Helper()
	b := &board.Board{Columns: []*board.Column{
		{Title: "A", Cards: []*board.Card{{Label: "alpha"}, {Label: "beta"}}},
		{Title: "B"},
	}}
	cfg := config.BoardConfig{ColumnWidth: 20, ColumnGap: 2, CardHeight: 3, CardSpacing: 1}
	sc := &scene{
		layout: board.NewLayout(b, cfg, core.Size{W: 50, H: 12}),
		screen: NewMockScreen(50, 12),
		clock:  engine.NewMockTimeProvider(time.Unix(0, 0)),
	}
	sc.surf = surface.Must(surface.New(fixedHost{W: 50, H: 12}, surface.WithViewport(sc.layout.NewViewport())))
	for _, lane := range sc.layout.Lanes {
		sc.surf.Register(lane.Strip)
	}
	sc.surf.Register(sc.layout.Headers)

	ec := engine.DefaultConfig()
	ec.AnimationDuration = 0
	var err error
	sc.eng, err = engine.New(sc.surf, engine.WithConfig(ec), engine.WithClock(sc.clock), engine.WithObserver(sc.layout))
	require.NoError(t, err)

	sc.orch = NewOrchestrator(sc.screen)
	sc.orch.Register(NewStatusLayer(), PriorityUI)
	sc.orch.Register(ProxyLayer{}, PriorityProxy)
	sc.orch.Register(HeaderLayer{}, PriorityHeader)
	sc.orch.Register(LanesLayer{}, PriorityLanes)
	return sc
}

func (sc *scene) render() *Buffer {
	sc.orch.RenderFrame(Context{Now: sc.clock.Now(), Surface: sc.surf, Layout: sc.layout, Engine: sc.eng})
	return sc.orch.Buffer()
}

func TestOrchestratorOrder(t *testing.T) {
	sc := newScene(t)
	var got []Priority
	for _, e := range sc.orch.layers {
		got = append(got, e.priority)
	}
	assert.Equal(t, []Priority{PriorityLanes, PriorityHeader, PriorityProxy, PriorityUI}, got)
}

func TestRenderIdleBoard(t *testing.T) {
	sc := newScene(t)
	buf := sc.render()

	assert.Equal(t, 1, sc.screen.shown)
	assert.Equal(t, "A (2)", row(buf, 0, 0, 5))
	assert.Equal(t, "B (0)", row(buf, 22, 0, 5))
	assert.Equal(t, " alpha", row(buf, 0, 3, 6))
	assert.Equal(t, " beta", row(buf, 0, 7, 5))
	assert.True(t, strings.HasPrefix(row(buf, 0, 11, 6), " idle"))
}

func TestRenderDragInFlight(t *testing.T) {
	sc := newScene(t)
	sc.eng.Begin(core.Pt(5, 3))
	require.True(t, sc.eng.Dragging())

	sc.eng.Update(core.Pt(30, 3))
	buf := sc.render()

	// Item moved into B, its live slot is hidden behind a placeholder
	assert.Equal(t, "A (1)", row(buf, 0, 0, 5))
	assert.Equal(t, "B (1)", row(buf, 22, 0, 5))
	assert.Equal(t, '╌', buf.Get(22, 2).Rune)
	assert.Equal(t, " beta", row(buf, 0, 3, 5))

	// Proxy sits at pointer minus grab offset
	assert.Equal(t, "alpha", row(buf, 26, 3, 5))
	assert.Equal(t, '╌', buf.Get(23, 2).Rune, "placeholder left of the proxy stays visible")

	// Shadow darkens the lane below the proxy
	assert.Less(t, buf.Get(30, 6).Bg.R, RgbLaneBg.R)

	assert.Contains(t, row(buf, 0, 11, 50), "dragging alpha from A to B")
}

func TestRenderAfterDrop(t *testing.T) {
	sc := newScene(t)
	sc.eng.Begin(core.Pt(5, 3))
	sc.eng.Update(core.Pt(30, 3))
	sc.eng.End(core.Pt(30, 3))
	require.False(t, sc.eng.Dragging())

	buf := sc.render()
	_, ok := sc.surf.Proxy()
	assert.False(t, ok)
	assert.Equal(t, '▸', buf.Get(22, 3).Rune)
	assert.Equal(t, "alpha", row(buf, 23, 3, 5))
	assert.Equal(t, []string{"alpha"}, []string{sc.layout.Board().Columns[1].Cards[0].Label})
}

func TestStatusLayerFPS(t *testing.T) {
	s := NewStatusLayer()
	buf := NewBuffer(40, 1)
	start := time.Unix(100, 0)
	for i := 0; i < 30; i++ {
		s.Render(Context{Now: start.Add(time.Duration(i) * 10 * time.Millisecond), Width: 40, Height: 1}, buf)
	}
	s.Render(Context{Now: start.Add(time.Second), Width: 40, Height: 1}, buf)
	assert.Equal(t, 31, s.FPS())
}

func TestRenderColumnDrag(t *testing.T) {
	sc := newScene(t)
	sc.eng.Begin(core.Pt(5, 0))
	require.True(t, sc.eng.Dragging())

	sc.eng.Update(core.Pt(27, 0))
	buf := sc.render()

	assert.Equal(t, "B (0)", row(buf, 0, 0, 5))
	assert.Equal(t, "A", row(buf, 23, 0, 1), "column proxy shows the title")
	assert.Equal(t, " alpha", row(buf, 0, 3, 6), "lanes move on drop only")
	assert.Contains(t, row(buf, 0, 11, 50), "moving column A")

	sc.eng.End(core.Pt(27, 0))
	require.False(t, sc.eng.Dragging())
	buf = sc.render()

	assert.Equal(t, "B (0)", row(buf, 0, 0, 5))
	assert.Equal(t, "A (2)", row(buf, 22, 0, 5))
	assert.Equal(t, " alpha", row(buf, 22, 3, 6))
	assert.Equal(t, "B", sc.layout.Board().Columns[0].Title)
}
