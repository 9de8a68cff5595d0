package engine

import "github.com/lixenwraith/reorder/container"

// Observer receives engine lifecycle notifications on the host loop
type Observer interface {
	DragBegan(c container.Container, index int)
	DragEnded(c container.Container)
	ItemDropped(c container.Container, index int)
}

// NopObserver ignores every notification
type NopObserver struct{}

func (NopObserver) DragBegan(container.Container, int)   {}
func (NopObserver) DragEnded(container.Container)        {}
func (NopObserver) ItemDropped(container.Container, int) {}

// Observers fans notifications out in slice order
type Observers []Observer

func (obs Observers) DragBegan(c container.Container, index int) {
	for _, o := range obs {
		o.DragBegan(c, index)
	}
}

func (obs Observers) DragEnded(c container.Container) {
	for _, o := range obs {
		o.DragEnded(c)
	}
}

func (obs Observers) ItemDropped(c container.Container, index int) {
	for _, o := range obs {
		o.ItemDropped(c, index)
	}
}
