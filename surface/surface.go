package surface

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/reorder/container"
	"github.com/lixenwraith/reorder/core"
	"github.com/lixenwraith/reorder/proxy"
)

// ErrNotAttached is returned when a surface is created without a host to live in
var ErrNotAttached = errors.New("surface: drag surface is not attached to a host")

// Host is the parent view a surface is attached to
type Host interface {
	// Bounds returns the host frame in canvas coordinates
	Bounds() core.Rect
}

// Surface owns the registry, the long-press recognizer and the proxy layer
// Not safe for concurrent use, all calls come from the UI loop
type Surface struct {
	host     Host
	registry *Registry
	gesture  *LongPress
	viewport *Viewport
	proxy    *proxy.View
	logger   *zap.Logger
}

// Option configures a Surface
type Option func(*Surface)

// WithViewport makes the surface itself scrollable
func WithViewport(v *Viewport) Option {
	return func(s *Surface) { s.viewport = v }
}

// WithLongPress overrides the recognizer thresholds
func WithLongPress(minDuration time.Duration, allowableMovement float64) Option {
	return func(s *Surface) {
		s.gesture.MinDuration = minDuration
		s.gesture.AllowableMovement = allowableMovement
	}
}

// WithLogger sets the surface logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Surface) {
		if l != nil {
			s.logger = l
		}
	}
}

// New attaches a surface to host
func New(host Host, opts ...Option) (*Surface, error) {
	if host == nil {
		return nil, ErrNotAttached
	}
	s := &Surface{
		host:     host,
		registry: NewRegistry(),
		gesture:  NewLongPress(DefaultMinPressDuration, DefaultAllowableMovement),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Must panics on a construction error, for hosts that cannot run without a surface
func Must(s *Surface, err error) *Surface {
	if err != nil {
		panic(err)
	}
	return s
}

// Host returns the attached host
func (s *Surface) Host() Host {
	return s.host
}

// Register adds c to the drag registry and returns its detected capabilities
func (s *Surface) Register(c container.Container) container.Capability {
	caps := s.registry.Add(c)
	s.logger.Debug("container registered",
		zap.Int("index", s.registry.Len()-1),
		zap.Stringer("caps", caps),
	)
	return caps
}

// Unregister removes c from the drag registry
func (s *Surface) Unregister(c container.Container) bool {
	ok := s.registry.Remove(c)
	if ok {
		s.logger.Debug("container unregistered", zap.Int("remaining", s.registry.Len()))
	}
	return ok
}

func (s *Surface) Registry() *Registry {
	return s.registry
}

func (s *Surface) Gesture() *LongPress {
	return s.gesture
}

// Viewport returns the surface scroller, nil when the surface does not scroll
func (s *Surface) Viewport() *Viewport {
	return s.viewport
}

// Scrollable reports whether the surface itself scrolls
func (s *Surface) Scrollable() bool {
	return s.viewport != nil
}

// HandlePointer routes a pointer event to the recognizer
func (s *Surface) HandlePointer(ev PointerEvent) {
	s.gesture.Handle(ev)
}

// Poll advances time-based recognition
func (s *Surface) Poll(now time.Time) {
	s.gesture.Poll(now)
}

// ToContent converts a canvas point to content coordinates
func (s *Surface) ToContent(p core.Point) core.Point {
	if s.viewport == nil {
		return p
	}
	return s.viewport.ToContent(p)
}

// ToCanvas converts a content point to canvas coordinates
func (s *Surface) ToCanvas(p core.Point) core.Point {
	if s.viewport == nil {
		return p
	}
	return s.viewport.ToCanvas(p)
}

// RectToContent converts a canvas rect to content coordinates
func (s *Surface) RectToContent(r core.Rect) core.Rect {
	return r.MoveTo(s.ToContent(r.Origin()))
}

// RectToCanvas converts a content rect to canvas coordinates
func (s *Surface) RectToCanvas(r core.Rect) core.Rect {
	return r.MoveTo(s.ToCanvas(r.Origin()))
}

// ContainerAt returns the first registered container whose frame holds the canvas point
func (s *Surface) ContainerAt(p core.Point) (container.Container, bool) {
	cp := s.ToContent(p)
	for e := range s.registry.All() {
		if e.Container.Frame().Contains(cp) {
			return e.Container, true
		}
	}
	return nil, false
}

// SetProxy places v on the proxy layer above every container
func (s *Surface) SetProxy(v *proxy.View) {
	s.proxy = v
}

// ClearProxy removes the proxy from the surface
func (s *Surface) ClearProxy() {
	s.proxy = nil
}

// Proxy returns the view on the proxy layer
func (s *Surface) Proxy() (*proxy.View, bool) {
	return s.proxy, s.proxy != nil
}
