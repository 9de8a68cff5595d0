package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/reorder/config"
	"github.com/lixenwraith/reorder/container"
)

// CuePlayer plays short feedback sounds for drag lifecycle events
// Implements engine.Observer, cues for a disabled player are dropped silently
type CuePlayer struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	initialized bool

	// source of the running drag, set by DragBegan
	source container.Container
}

// NewCuePlayer creates a player; the speaker is not touched until Initialize
func NewCuePlayer(cfg config.AudioConfig) *CuePlayer {
	return &CuePlayer{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (cp *CuePlayer) Initialize() error {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if cp.initialized || !cp.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(cp.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(cp.mixer)
	cp.initialized = true
	return nil
}

// Cleanup silences pending cues and detaches from the speaker
func (cp *CuePlayer) Cleanup() {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if !cp.initialized {
		cp.mixer.Clear()
		return
	}

	speaker.Lock()
	cp.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	cp.initialized = false
}

// Enabled reports whether cues are produced at all
func (cp *CuePlayer) Enabled() bool {
	return cp.cfg.Enabled
}

// Mixer exposes the cue mixer, pulled by the speaker once initialized
func (cp *CuePlayer) Mixer() *beep.Mixer {
	return cp.mixer
}

// Play queues cue on the mixer
func (cp *CuePlayer) Play(c Cue) {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	cp.play(c)
}

func (cp *CuePlayer) play(c Cue) {
	if !cp.cfg.Enabled {
		return
	}
	s := Sound(c, cp.cfg)
	if s == nil {
		return
	}
	if cp.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	cp.mixer.Add(s)
}

// DragBegan plays the pick-up cue
func (cp *CuePlayer) DragBegan(c container.Container, _ int) {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	cp.source = c
	cp.play(CuePickup)
}

// ItemDropped plays the drop cue, or the transfer cue when the item changed containers
func (cp *CuePlayer) ItemDropped(c container.Container, _ int) {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	if cp.source != nil && c != cp.source {
		cp.play(CueTransfer)
		return
	}
	cp.play(CueDrop)
}

// DragEnded forgets the drag source
func (cp *CuePlayer) DragEnded(container.Container) {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	cp.source = nil
}
