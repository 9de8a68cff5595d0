package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/reorder/config"
)

// Cue identifies a drag feedback sound
type Cue int

const (
	CuePickup Cue = iota
	CueDrop
	CueTransfer
)

// String returns human-readable cue name
func (c Cue) String() string {
	switch c {
	case CuePickup:
		return "pickup"
	case CueDrop:
		return "drop"
	case CueTransfer:
		return "transfer"
	default:
		return "unknown"
	}
}

const (
	cueAttack  = 5 * time.Millisecond
	cueRelease = 40 * time.Millisecond
)

// pickupSound is a short rising two-tone blip
func pickupSound(cfg config.AudioConfig, rate beep.SampleRate) beep.Streamer {
	half := cfg.CueDuration / 2
	low := partial{freq: cfg.PickupFreq, gain: 1, length: half, attack: cueAttack, release: half / 2}
	high := low
	high.freq *= 1.5
	return scaled(beep.Seq(low.streamer(rate), high.streamer(rate)), cfg.Volume)
}

// dropSound is a single soft tone with a long release
func dropSound(cfg config.AudioConfig, rate beep.SampleRate) beep.Streamer {
	tone := partial{freq: cfg.DropFreq, gain: 1, length: cfg.CueDuration + cueRelease, attack: cueAttack, release: cueRelease}
	return scaled(tone.streamer(rate), cfg.Volume)
}

// transferSound layers a quiet square overtone on the drop tone for cross-column moves
func transferSound(cfg config.AudioConfig, rate beep.SampleRate) beep.Streamer {
	fund := partial{freq: cfg.DropFreq, gain: 0.7, length: cfg.CueDuration + cueRelease, attack: cueAttack, release: cueRelease}
	over := fund
	over.freq, over.square, over.gain = cfg.TransferFreq, true, 0.15
	return scaled(beep.Mix(fund.streamer(rate), over.streamer(rate)), cfg.Volume)
}

// Sound returns a fresh streamer for cue
func Sound(c Cue, cfg config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	switch c {
	case CuePickup:
		return pickupSound(cfg, rate)
	case CueDrop:
		return dropSound(cfg, rate)
	case CueTransfer:
		return transferSound(cfg, rate)
	default:
		return nil
	}
}
