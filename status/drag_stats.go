package status

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/reorder/container"
	"github.com/lixenwraith/reorder/engine"
)

// Metric keys published by DragStats
const (
	KeyDragging    = "drag.active"
	KeyBegan       = "drag.began"
	KeyDropped     = "drag.dropped"
	KeyTransferred = "drag.transferred"
	KeyLastSeconds = "drag.last_seconds"
	KeyLongest     = "drag.longest_seconds"
)

// DragStats counts engine lifecycle notifications into a Registry
type DragStats struct {
	engine.NopObserver

	clock  engine.Clock
	source container.Container
	start  time.Time

	dragging    *atomic.Bool
	began       *atomic.Int64
	dropped     *atomic.Int64
	transferred *atomic.Int64
	last        *AtomicFloat
	longest     *AtomicFloat
}

// NewDragStats caches the metric pointers it updates
func NewDragStats(reg *Registry, clock engine.Clock) *DragStats {
	return &DragStats{
		clock:       clock,
		dragging:    reg.Bools.Get(KeyDragging),
		began:       reg.Ints.Get(KeyBegan),
		dropped:     reg.Ints.Get(KeyDropped),
		transferred: reg.Ints.Get(KeyTransferred),
		last:        reg.Floats.Get(KeyLastSeconds),
		longest:     reg.Floats.Get(KeyLongest),
	}
}

func (d *DragStats) DragBegan(c container.Container, _ int) {
	d.source = c
	d.start = d.clock.Now()
	d.dragging.Store(true)
	d.began.Add(1)
}

func (d *DragStats) ItemDropped(c container.Container, _ int) {
	d.dropped.Add(1)
	if d.source != nil && c != d.source {
		d.transferred.Add(1)
	}
}

func (d *DragStats) DragEnded(container.Container) {
	secs := d.clock.Now().Sub(d.start).Seconds()
	d.last.Set(secs)
	d.longest.Max(secs)
	d.dragging.Store(false)
	d.source = nil
}

// Fields renders every metric of reg as zap fields for a summary log line
func Fields(reg *Registry) []zap.Field {
	fields := make([]zap.Field, 0, reg.TotalCount())
	for k, v := range reg.Bools.All() {
		fields = append(fields, zap.Bool(k, v.Load()))
	}
	for k, v := range reg.Ints.All() {
		fields = append(fields, zap.Int64(k, v.Load()))
	}
	for k, v := range reg.Floats.All() {
		fields = append(fields, zap.Float64(k, v.Get()))
	}
	return fields
}
