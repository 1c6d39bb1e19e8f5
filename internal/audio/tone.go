package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Gain envelope of every tone: starts at startGain and decays exponentially
// to endGain by the end of the tone.
const (
	startGain = 0.3
	endGain   = 0.01
)

// tone is a sine oscillator with an exponential decay envelope.
type tone struct {
	freq     float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

// NewTone returns a streamer that plays a sine at freq Hz for d and then
// ends.
func NewTone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: rate.N(d),
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}
		val := gainAt(t.position, t.duration) * math.Sin(2*math.Pi*t.phase)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// gainAt is the envelope value at sample pos of total.
func gainAt(pos, total int) float64 {
	if total <= 0 {
		return 0
	}
	frac := float64(pos) / float64(total)
	return startGain * math.Pow(endGain/startGain, frac)
}

// newVolume scales s linearly by vol. math.Log2(0) is -Inf, so zero volume
// is silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
