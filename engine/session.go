package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/reorder/container"
	"github.com/lixenwraith/reorder/core"
	"github.com/lixenwraith/reorder/proxy"
	"github.com/lixenwraith/reorder/surface"
)

// Session is the live state of one drag, owned by the engine from pick-up to cleanup
type Session struct {
	ID uuid.UUID

	Item        container.Item
	Source      container.Container
	SourceIndex int
	// Destination is nil until resolution first succeeds
	Destination container.Container

	// Offset is pointer minus proxy origin, frozen at pick-up
	Offset core.Point
	Proxy  *proxy.View

	// Registry entries of Source and Destination
	source, dest surface.Entry
}

func newSession(src surface.Entry, index int, item container.Item, v *proxy.View, p core.Point) *Session {
	return &Session{
		ID:          uuid.New(),
		Item:        item,
		Source:      src.Container,
		source:      src,
		SourceIndex: index,
		Offset:      p.Sub(v.Frame.Origin()),
		Proxy:       v,
	}
}

// proxyOrigin returns where the proxy sits for pointer p
func (s *Session) proxyOrigin(p core.Point) core.Point {
	return p.Sub(s.Offset)
}
