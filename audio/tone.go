package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// partial is one component of a cue: a sine or square wave whose gain ramps up
// over attack, holds, then falls to zero over the final release
type partial struct {
	freq    float64
	square  bool
	gain    float64
	length  time.Duration
	attack  time.Duration
	release time.Duration
}

// gainAt returns the shaped gain of sample i out of n
func (p partial) gainAt(i, n, attack, release int) float64 {
	g := p.gain
	if attack > 0 && i < attack {
		g *= float64(i) / float64(attack)
	}
	if left := n - i; release > 0 && left < release {
		g *= float64(left) / float64(release)
	}
	return g
}

// streamer renders p at rate as a finite stereo stream
func (p partial) streamer(rate beep.SampleRate) beep.Streamer {
	n, attack, release := rate.N(p.length), rate.N(p.attack), rate.N(p.release)
	step := p.freq / float64(rate)
	var phase float64
	var pos int
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		k := min(len(samples), n-pos)
		for i := range k {
			v := math.Sin(2 * math.Pi * phase)
			if p.square {
				v = 1
				if phase >= 0.5 {
					v = -1
				}
			}
			v *= p.gainAt(pos, n, attack, release)
			samples[i] = [2]float64{v, v}

			phase += step
			phase -= math.Floor(phase)
			pos++
		}
		return k, true
	})
}

// scaled applies a linear volume to s, zero or less is silent
func scaled(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
