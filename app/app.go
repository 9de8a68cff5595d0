// Package app hosts the drag-reorder board in a terminal
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/reorder/audio"
	"github.com/lixenwraith/reorder/board"
	"github.com/lixenwraith/reorder/config"
	"github.com/lixenwraith/reorder/container"
	"github.com/lixenwraith/reorder/core"
	"github.com/lixenwraith/reorder/engine"
	"github.com/lixenwraith/reorder/render"
	"github.com/lixenwraith/reorder/status"
	"github.com/lixenwraith/reorder/surface"
)

// frameEvent carries one ticker timestamp through the tcell event queue
type frameEvent struct {
	when time.Time
}

func (f *frameEvent) When() time.Time { return f.when }

// screenHost exposes the terminal size as the surface canvas
type screenHost struct {
	screen tcell.Screen
}

func (h screenHost) Bounds() core.Rect {
	w, ht := h.screen.Size()
	return core.R(0, 0, float64(w), float64(ht))
}

// App wires screen, surface, engine and renderer into one event loop
// Everything except the event poller and the frame ticker runs on the Run goroutine
type App struct {
	engine.NopObserver

	cfg    *config.Config
	screen tcell.Screen
	clock  engine.Clock
	logger *zap.Logger

	layout   *board.Layout
	viewport *surface.Viewport
	surface  *surface.Surface
	engine   *engine.Engine
	orch     *render.Orchestrator
	cues     *audio.CuePlayer
	stats    *status.Registry
	pointer  PointerTranslator

	limiter *rate.Limiter
	dirty   bool
	snap    bool
	quit    bool
}

// Option configures an App
type Option func(*App)

// WithClock replaces the wall clock used for pointer timestamps and animation
func WithClock(c engine.Clock) Option {
	return func(a *App) { a.clock = c }
}

// WithLogger sets the application logger
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// New initializes screen and builds the board scene on it
func New(cfg *config.Config, b *board.Board, screen tcell.Screen, opts ...Option) (*App, error) {
	a := &App{
		cfg:    cfg,
		screen: screen,
		clock:  engine.NewTimeProvider(),
		logger: zap.NewNop(),
		dirty:  true,
	}
	for _, opt := range opts {
		opt(a)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	if cfg.UI.Mouse {
		screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	w, h := screen.Size()
	a.layout = board.NewLayout(b, cfg.Board, core.Size{W: float64(w), H: float64(h)})
	a.viewport = a.layout.NewViewport()

	s, err := surface.New(screenHost{screen: screen},
		surface.WithViewport(a.viewport),
		surface.WithLogger(a.logger.Named("surface")),
	)
	if err != nil {
		return nil, err
	}
	a.surface = s
	for _, lane := range a.layout.Lanes {
		s.Register(lane.Strip)
	}
	s.Register(a.layout.Headers)

	ec, err := cfg.Engine.EngineConfig()
	if err != nil {
		return nil, err
	}
	a.cues = audio.NewCuePlayer(cfg.Audio)
	a.stats = status.NewRegistry()
	a.engine, err = engine.New(s,
		engine.WithConfig(ec),
		engine.WithClock(a.clock),
		engine.WithLogger(a.logger.Named("engine")),
		engine.WithObserver(a.layout, a.cues, status.NewDragStats(a.stats, a.clock), a),
	)
	if err != nil {
		return nil, err
	}

	a.orch = render.NewOrchestrator(screen)
	a.orch.Register(render.LanesLayer{}, render.PriorityLanes)
	a.orch.Register(render.HeaderLayer{}, render.PriorityHeader)
	a.orch.Register(render.ProxyLayer{}, render.PriorityProxy)
	a.orch.Register(render.NewStatusLayer(), render.PriorityUI)

	a.limiter = rate.NewLimiter(rate.Limit(cfg.UI.RedrawRate), 1)

	a.logger.Info("board ready",
		zap.Int("columns", len(b.Columns)),
		zap.Int("cards", b.Len()),
		zap.Bool("paged", cfg.Board.Paged),
	)
	return a, nil
}

// Engine returns the drag engine
func (a *App) Engine() *engine.Engine {
	return a.engine
}

// Layout returns the board layout
func (a *App) Layout() *board.Layout {
	return a.layout
}

// Stats returns the drag counters
func (a *App) Stats() *status.Registry {
	return a.stats
}

// Surface returns the drag surface
func (a *App) Surface() *surface.Surface {
	return a.surface
}

// Run drives the event loop until quit or ctx is done, finalizing the screen on return
func (a *App) Run(ctx context.Context) error {
	core.SetRestoreHook(a.screen.Fini)
	defer core.SetRestoreHook(nil)

	if err := a.cues.Initialize(); err != nil {
		// Non-fatal, the board works without sound
		a.logger.Warn("audio initialization failed", zap.Error(err))
	}
	defer a.cues.Cleanup()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer recoverCrash()
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	ticker := engine.NewFrameTicker(a.cfg.UI.FPS, func(now time.Time) {
		// Dropped when the queue is full, the next frame catches up
		_ = a.screen.PostEvent(&frameEvent{when: now})
	})
	ticker.Start()

	a.render()
	var loopErr error
loop:
	for !a.quit {
		select {
		case <-ctx.Done():
			loopErr = ctx.Err()
			break loop
		case ev := <-events:
			a.HandleEvent(ev)
		}
	}

	ticker.Stop()
	a.engine.Cancel()
	cancel()
	// Fini unblocks PollEvent
	a.screen.Fini()
	if err := g.Wait(); err != nil {
		return err
	}
	a.logger.Info("board closed", append(status.Fields(a.stats), zap.Uint64("frames", ticker.Frames()))...)
	if errors.Is(loopErr, context.Canceled) {
		return nil
	}
	return loopErr
}

func recoverCrash() {
	if r := recover(); r != nil {
		core.HandleCrash(r)
	}
}

// HandleEvent processes one terminal event on the loop goroutine
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *frameEvent:
		a.Frame(ev.When())

	case *tcell.EventMouse:
		if pe, ok := a.pointer.Translate(ev, a.clock.Now()); ok {
			a.surface.HandlePointer(pe)
			a.dirty = true
		}

	case *tcell.EventKey:
		a.handleKey(ev)

	case *tcell.EventResize:
		a.Resize()
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		if a.engine.Dragging() {
			a.engine.Cancel()
			a.pointer.Reset()
		}
	case tcell.KeyCtrlC:
		a.quit = true
	case tcell.KeyLeft:
		a.page(-1)
	case tcell.KeyRight:
		a.page(1)
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			a.quit = true
		}
	}
	a.dirty = true
}

// page scrolls the board by one lane pitch when no drag is in flight
func (a *App) page(dir float64) {
	if a.engine.Dragging() {
		return
	}
	a.viewport.ScrollBy(dir * a.layout.Pitch())
	a.snap = true
}

// Frame advances the engine and redraws within the redraw budget
func (a *App) Frame(now time.Time) {
	a.engine.Frame(now)

	if a.snap && !a.engine.Dragging() {
		a.viewport.ScrollTo(a.layout.SnapOffset(a.viewport.Offset()))
		a.snap = false
	}

	if a.engine.Dragging() || a.engine.Settling() {
		a.dirty = true
	}
	if a.dirty && a.limiter.AllowN(now, 1) {
		a.render()
	}
}

// Resize fits layout, viewport and buffer to the current screen size
func (a *App) Resize() {
	a.screen.Sync()
	w, h := a.screen.Size()
	a.layout.Resize(core.Size{W: float64(w), H: float64(h)})
	a.layout.ResizeViewport(a.viewport)
	a.orch.Resize(w, h)
	a.snap = true
	a.dirty = true
}

func (a *App) render() {
	a.orch.RenderFrame(render.Context{
		Now:     a.clock.Now(),
		Surface: a.surface,
		Layout:  a.layout,
		Engine:  a.engine,
		Stats:   a.stats,
	})
	a.dirty = false
}

// DragEnded schedules a page snap once the drop settles
func (a *App) DragEnded(container.Container) {
	a.snap = true
	a.dirty = true
}

// Quit reports whether the loop was asked to stop
func (a *App) Quit() bool {
	return a.quit
}
