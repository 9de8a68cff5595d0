package status

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/reorder/container"
	"github.com/lixenwraith/reorder/core"
	"github.com/lixenwraith/reorder/engine"
)

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 4000.0, f.Get())
}

func TestAtomicFloatMax(t *testing.T) {
	var f AtomicFloat
	assert.Equal(t, 2.0, f.Max(2))
	assert.Equal(t, 2.0, f.Max(1))
	f.Set(-1)
	assert.Equal(t, -1.0, f.Get())
}

func TestMetricMapCachesPointers(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	a := m.Get("b")
	a.Add(3)
	assert.Same(t, a, m.Get("b"))
	m.Get("a")
	assert.True(t, m.Has("a"))
	assert.False(t, m.Has("c"))

	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"a", "b"}, keys)

	for range m.All() {
		break
	}
	assert.Equal(t, 2, m.Count())
}

func TestDragStats(t *testing.T) {
	reg := NewRegistry()
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	stats := NewDragStats(reg, clock)
	a := container.NewList(core.R(0, 0, 10, 10), 1, 0, []string{"x"})
	b := container.NewList(core.R(10, 0, 10, 10), 1, 0, []string{})

	stats.DragBegan(a, 0)
	assert.True(t, reg.Bools.Get(KeyDragging).Load())
	clock.Advance(1500 * time.Millisecond)
	stats.ItemDropped(b, 0)
	stats.DragEnded(a)

	stats.DragBegan(a, 0)
	clock.Advance(500 * time.Millisecond)
	stats.ItemDropped(a, 0)
	stats.DragEnded(a)

	assert.False(t, reg.Bools.Get(KeyDragging).Load())
	assert.Equal(t, int64(2), reg.Ints.Get(KeyBegan).Load())
	assert.Equal(t, int64(2), reg.Ints.Get(KeyDropped).Load())
	assert.Equal(t, int64(1), reg.Ints.Get(KeyTransferred).Load())
	assert.Equal(t, 0.5, reg.Floats.Get(KeyLastSeconds).Get())
	assert.Equal(t, 1.5, reg.Floats.Get(KeyLongest).Get())

	fields := Fields(reg)
	require.Len(t, fields, reg.TotalCount())
	assert.Equal(t, KeyDragging, fields[0].Key)
}
