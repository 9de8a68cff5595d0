package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/reorder/core"
)

// FrameTicker posts frame timestamps to the host loop at a fixed interval
// The engine itself never runs on this goroutine, the host forwards each
// timestamp to Engine.Frame from its own loop
type FrameTicker struct {
	interval time.Duration
	post     func(now time.Time)
	clock    Clock

	// Tick counter for debugging
	frames atomic.Uint64

	mu           sync.Mutex
	nextDeadline time.Time

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewFrameTicker creates a ticker delivering fps frames per second through post
func NewFrameTicker(fps int, post func(now time.Time)) *FrameTicker {
	if fps <= 0 {
		fps = 60
	}
	return &FrameTicker{
		interval: time.Second / time.Duration(fps),
		post:     post,
		clock:    NewTimeProvider(),
		stopChan: make(chan struct{}),
	}
}

// Interval returns the frame interval
func (ft *FrameTicker) Interval() time.Duration {
	return ft.interval
}

// Frames returns the number of frames posted so far
func (ft *FrameTicker) Frames() uint64 {
	return ft.frames.Load()
}

// Start begins the ticker loop
func (ft *FrameTicker) Start() {
	if ft.running.CompareAndSwap(false, true) {
		ft.wg.Add(1)
		core.Go(ft.loop)
	}
}

// Stop halts the ticker loop and waits for it to exit
func (ft *FrameTicker) Stop() {
	ft.stopOnce.Do(func() {
		if ft.running.CompareAndSwap(true, false) {
			close(ft.stopChan)
			ft.wg.Wait()
		}
	})
}

func (ft *FrameTicker) loop() {
	defer ft.wg.Done()

	ft.mu.Lock()
	ft.nextDeadline = ft.clock.Now().Add(ft.interval)
	ft.mu.Unlock()

	timer := time.NewTimer(ft.interval)
	defer timer.Stop()

	for {
		select {
		case <-ft.stopChan:
			return
		case <-timer.C:
		}

		now := ft.clock.Now()
		ft.post(now)
		ft.frames.Add(1)

		ft.mu.Lock()
		ft.nextDeadline = ft.nextDeadline.Add(ft.interval)
		// Drop missed frames instead of bursting to catch up
		if now.Sub(ft.nextDeadline) > ft.interval*2 {
			ft.nextDeadline = now.Add(ft.interval)
		}
		sleep := ft.nextDeadline.Sub(now)
		ft.mu.Unlock()

		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
