// Package engine coordinates drag-reorder sessions across the containers of one surface.
//
// Lifecycle: Idle → Dragging → Settling → Idle. Data mutations happen live during
// Update and Tick; End resolves once more, then animates the proxy into its slot
// and tears the session down when the animation completes. Beginning a new drag
// while the previous one is still settling completes the pending animation first.
//
// Engine is not safe for concurrent use. Every method runs on the host loop,
// timestamps reach it through Frame.
package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/reorder/container"
	"github.com/lixenwraith/reorder/core"
	"github.com/lixenwraith/reorder/proxy"
	"github.com/lixenwraith/reorder/surface"
	"github.com/lixenwraith/reorder/vmath"
)

type state uint8

const (
	stateIdle state = iota
	stateDragging
	stateSettling
)

func (s state) String() string {
	switch s {
	case stateDragging:
		return "dragging"
	case stateSettling:
		return "settling"
	default:
		return "idle"
	}
}

// Engine is the drag-reorder state machine bound to one surface
type Engine struct {
	surface  *surface.Surface
	registry *surface.Registry

	config   Config
	style    proxy.Style
	observer Observer
	clock    Clock
	logger   *zap.Logger
	animator *proxy.Animator

	state   state
	session *Session

	// Auto-scroll clock
	armed    bool
	ticked   bool
	lastTick time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithConfig replaces the default configuration
func WithConfig(c Config) Option {
	return func(e *Engine) { e.config = c }
}

// WithObserver sets the lifecycle observer, several are fanned out in order
func WithObserver(obs ...Observer) Option {
	return func(e *Engine) {
		switch len(obs) {
		case 0:
		case 1:
			e.observer = obs[0]
		default:
			e.observer = Observers(obs)
		}
	}
}

// WithClock sets the time source used outside Frame
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithLogger sets the engine logger
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine driving s and installs it as the surface gesture handler
func New(s *surface.Surface, opts ...Option) (*Engine, error) {
	e := &Engine{
		surface:  s,
		registry: s.Registry(),
		config:   DefaultConfig(),
		observer: NopObserver{},
		clock:    NewTimeProvider(),
		logger:   zap.NewNop(),
		animator: proxy.NewAnimator(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.config.Validate(); err != nil {
		return nil, err
	}
	e.applyConfig()
	s.Gesture().SetHandler(e)
	return e, nil
}

// Config returns the active configuration
func (e *Engine) Config() Config {
	return e.config
}

// SetConfig replaces the configuration between sessions
func (e *Engine) SetConfig(c Config) error {
	if e.state == stateDragging {
		return ErrDragging
	}
	if err := c.Validate(); err != nil {
		return err
	}
	e.config = c
	e.applyConfig()
	return nil
}

func (e *Engine) applyConfig() {
	e.style = e.config.ProxyStyle()
	g := e.surface.Gesture()
	g.MinDuration = e.config.MinPressDuration
	g.AllowableMovement = e.config.AllowableMovement
}

// Dragging reports whether a session is accepting pointer updates
func (e *Engine) Dragging() bool {
	return e.state == stateDragging
}

// Settling reports whether a drop animation is still running
func (e *Engine) Settling() bool {
	return e.state == stateSettling
}

// Session returns the current session while dragging or settling
func (e *Engine) Session() (*Session, bool) {
	return e.session, e.session != nil
}

// Frame delivers one host frame: long-press polling, auto-scroll and animation
func (e *Engine) Frame(now time.Time) {
	e.surface.Poll(now)
	e.Tick(now)
	e.animator.Step(now)
}

// --- Gesture handler ---

// ShouldBegin gates the recognizer so presses no container can drag are ignored
func (e *Engine) ShouldBegin(p core.Point) bool {
	return e.CanBegin(p)
}

// CanBegin reports whether a press at canvas point p would start a drag
func (e *Engine) CanBegin(p core.Point) bool {
	if e.state == stateDragging {
		return false
	}
	_, ok := e.sourceAt(p)
	return ok
}

// Begin starts a session for the item under canvas point p, silently doing nothing if no container claims it
func (e *Engine) Begin(p core.Point) {
	if e.state == stateDragging {
		return
	}
	e.settle()

	h, ok := e.sourceAt(p)
	if !ok {
		return
	}
	src := h.entry.Container

	v := proxy.Capture(e.surface.RectToCanvas(h.slot.Add(src.Frame().Origin())), h.item)
	e.style.Apply(v)
	if h.entry.Style != nil {
		if styled := h.entry.Style.StyleProxy(v); styled != nil {
			v = styled
		}
	}

	s := newSession(h.entry, h.index, h.item, v, p)
	e.session = s
	e.state = stateDragging

	e.surface.SetProxy(v)
	e.animator.AnimateIn(v, e.style, e.clock.Now(), nil)
	src.SetDragging(h.item)

	if h.entry.Life != nil {
		h.entry.Life.DidBeginDragging(h.index)
	}
	e.observer.DragBegan(src, h.index)

	if e.shouldArm() {
		e.armed, e.ticked = true, false
	}

	e.logger.Debug("drag began",
		zap.Stringer("session", s.ID),
		zap.Int("index", h.index),
		zap.Bool("autoscroll", e.armed),
	)
}

// Update moves the proxy with the pointer and re-resolves the destination
func (e *Engine) Update(p core.Point) {
	if e.state != stateDragging {
		return
	}
	s := e.session
	s.Proxy.MoveTo(s.proxyOrigin(p))
	e.resolve()
}

// End finalizes the session at canvas point p, for release and cancel alike
func (e *Engine) End(p core.Point) {
	if e.state != stateDragging {
		return
	}
	e.armed, e.ticked = false, false

	s := e.session
	s.Proxy.MoveTo(s.proxyOrigin(p))
	e.resolve()

	target := s.source
	if s.Destination != nil {
		target = s.dest
	}
	tc := target.Container
	if tc != s.Source {
		if i, ok := s.Source.IndexOf(s.Item); ok {
			s.Source.Delete(i)
		}
	}

	index := -1
	var center *core.Point
	if i, ok := tc.IndexOf(s.Item); ok {
		index = i
		if slot, ok := tc.SlotRect(i); ok {
			c := e.surface.RectToCanvas(slot.Add(tc.Frame().Origin())).Center()
			center = &c
		}
	}

	e.state = stateSettling
	e.animator.AnimateOut(s.Proxy, e.style, center, e.clock.Now(), func() {
		e.finish(s, target, index)
	})
}

// Cancel ends the current drag where the proxy is, routed through the recognizer when it owns the gesture
func (e *Engine) Cancel() {
	if e.state != stateDragging {
		return
	}
	e.surface.HandlePointer(surface.PointerEvent{Action: surface.PointerCancel, Time: e.clock.Now()})
	if e.state == stateDragging {
		s := e.session
		e.End(s.Proxy.Frame.Origin().Add(s.Offset))
	}
}

// settle completes a pending drop animation
func (e *Engine) settle() {
	if e.state == stateSettling {
		e.animator.Flush()
	}
}

// finish confirms the drop and tears the session down
func (e *Engine) finish(s *Session, target surface.Entry, index int) {
	if e.session != s {
		return
	}
	transferred := target.Container != s.Source
	defer func() {
		for entry := range e.registry.All() {
			entry.Container.ClearDragging()
		}
		e.surface.ClearProxy()
		e.session = nil
		e.state = stateIdle
		e.observer.DragEnded(s.Source)

		e.logger.Debug("drag ended",
			zap.Stringer("session", s.ID),
			zap.Bool("transferred", transferred),
			zap.Int("index", index),
		)
	}()

	if index >= 0 {
		if transferred && target.Life != nil {
			target.Life.DidDrop(s.Item, index)
		}
		e.observer.ItemDropped(target.Container, index)
	}
	if s.source.Life != nil {
		s.source.Life.DidFinishDragging(!transferred)
	}
}

// --- Resolution ---

// hit is a draggable item found under the pointer
type hit struct {
	entry surface.Entry
	index int
	item  container.Item
	// slot is container-local
	slot core.Rect
}

// sourceAt finds, in registration order, the item under canvas point p
// A container whose hit test and slot geometry disagree is skipped
func (e *Engine) sourceAt(p core.Point) (hit, bool) {
	cp := e.surface.ToContent(p)
	for entry := range e.registry.With(container.CapDrag) {
		c := entry.Container
		frame := c.Frame()
		if !frame.Contains(cp) {
			continue
		}
		i, ok := c.HitIndex(cp.Sub(frame.Origin()))
		if !ok || !entry.Drag.CanDrag(i) {
			continue
		}
		item, ok := c.ItemAt(i)
		if !ok {
			continue
		}
		slot, ok := c.SlotRect(i)
		if !ok {
			continue
		}
		return hit{entry: entry, index: i, item: item, slot: slot}, true
	}
	return hit{}, false
}

// candidate returns the droppable container with the strictly largest overlap with r
// Containers that refuse item are skipped
func (e *Engine) candidate(r core.Rect, item container.Item) (surface.Entry, bool) {
	var best surface.Entry
	bestArea := 0.0
	for entry := range e.registry.With(container.CapDrop) {
		if entry.Accept != nil && !entry.Accept.Accepts(item) {
			continue
		}
		if area := vmath.OverlapArea(r, entry.Container.Frame()); area > bestArea {
			best, bestArea = entry, area
		}
	}
	return best, bestArea > 0
}

// resolve finds the destination for the current proxy rect and applies the incremental mutations
func (e *Engine) resolve() {
	s := e.session
	r := e.surface.RectToContent(s.Proxy.Frame)

	entry, ok := e.candidate(r, s.Item)
	if !ok {
		return
	}
	dest := entry.Container
	index, ok := dest.TargetIndex(r.Sub(dest.Frame().Origin()))
	if !ok || !entry.Drop.CanDrop(index) {
		return
	}

	if dest != s.Destination {
		// Before the first resolution the item still lives in the source
		prev := s.Destination
		if prev == nil {
			prev = s.Source
		}
		if prev != dest {
			e.moveOut(prev)
		}
		e.moveIn(dest, index)
		s.Destination, s.dest = dest, entry

		e.logger.Debug("destination changed",
			zap.Stringer("session", s.ID),
			zap.Int("index", index),
		)
	}

	if cur, ok := dest.IndexOf(s.Item); ok && cur != index {
		dest.Move(cur, index)
	}
}

// moveOut withdraws the item from a container it was speculatively placed in
func (e *Engine) moveOut(c container.Container) {
	if i, ok := c.IndexOf(e.session.Item); ok {
		c.Delete(i)
	}
	c.ClearDragging()
}

// moveIn places the item into c at index unless it already holds it
func (e *Engine) moveIn(c container.Container, index int) {
	item := e.session.Item
	if _, ok := c.IndexOf(item); !ok {
		c.Insert(item, index)
	}
	c.SetDragging(item)
}
