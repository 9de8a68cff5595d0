package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/reorder/core"
	"github.com/lixenwraith/reorder/proxy"
	"github.com/lixenwraith/reorder/surface"
)

var (
	// ErrDragging is returned by SetConfig while a drag is in flight
	ErrDragging = errors.New("engine: configuration cannot change while dragging")
	// ErrInvalidConfig wraps every validation failure
	ErrInvalidConfig = errors.New("engine: invalid configuration")
)

// Config holds engine tunables, settable before or between sessions
type Config struct {
	// Proxy appearance
	AnimationDuration time.Duration
	Opacity           float64
	Scale             float64
	ShadowColor       colorful.Color
	ShadowOpacity     float64
	ShadowRadius      float64
	ShadowOffset      core.Point

	// Gesture
	MinPressDuration  time.Duration
	AllowableMovement float64

	// Auto-scroll, distances in canvas units and velocities in units per second
	AutoScroll        bool
	ScrollThreshold   float64
	ScrollMinVelocity float64
	ScrollMaxVelocity float64
}

// DefaultConfig returns the stock engine configuration
func DefaultConfig() Config {
	style := proxy.DefaultStyle()
	return Config{
		AnimationDuration: style.Duration,
		Opacity:           style.Opacity,
		Scale:             style.Scale,
		ShadowColor:       style.ShadowColor,
		ShadowOpacity:     style.ShadowOpacity,
		ShadowRadius:      style.ShadowRadius,
		ShadowOffset:      style.ShadowOffset,
		MinPressDuration:  surface.DefaultMinPressDuration,
		AllowableMovement: surface.DefaultAllowableMovement,
		AutoScroll:        true,
		ScrollThreshold:   1,
		ScrollMinVelocity: 60,
		ScrollMaxVelocity: 280,
	}
}

// Validate reports the first out-of-range field
func (c Config) Validate() error {
	switch {
	case c.AnimationDuration < 0:
		return fmt.Errorf("%w: animation duration %v is negative", ErrInvalidConfig, c.AnimationDuration)
	case c.Opacity < 0 || c.Opacity > 1:
		return fmt.Errorf("%w: opacity %v outside [0, 1]", ErrInvalidConfig, c.Opacity)
	case c.ShadowOpacity < 0 || c.ShadowOpacity > 1:
		return fmt.Errorf("%w: shadow opacity %v outside [0, 1]", ErrInvalidConfig, c.ShadowOpacity)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %v must be positive", ErrInvalidConfig, c.Scale)
	case c.ShadowRadius < 0:
		return fmt.Errorf("%w: shadow radius %v is negative", ErrInvalidConfig, c.ShadowRadius)
	case c.MinPressDuration < 0:
		return fmt.Errorf("%w: min press duration %v is negative", ErrInvalidConfig, c.MinPressDuration)
	case c.AllowableMovement < 0:
		return fmt.Errorf("%w: allowable movement %v is negative", ErrInvalidConfig, c.AllowableMovement)
	case c.ScrollThreshold < 0:
		return fmt.Errorf("%w: scroll threshold %v is negative", ErrInvalidConfig, c.ScrollThreshold)
	case c.ScrollMinVelocity < 0 || c.ScrollMaxVelocity < c.ScrollMinVelocity:
		return fmt.Errorf("%w: scroll velocity range [%v, %v]", ErrInvalidConfig, c.ScrollMinVelocity, c.ScrollMaxVelocity)
	}
	return nil
}

// ProxyStyle returns the lifted proxy style described by c
func (c Config) ProxyStyle() proxy.Style {
	return proxy.Style{
		Duration:      c.AnimationDuration,
		Opacity:       c.Opacity,
		Scale:         c.Scale,
		ShadowColor:   c.ShadowColor,
		ShadowOpacity: c.ShadowOpacity,
		ShadowRadius:  c.ShadowRadius,
		ShadowOffset:  c.ShadowOffset,
	}
}
