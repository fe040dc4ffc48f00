package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/younwookim/invaderers/internal/domain/entity"
)

const (
	whooshDuration = 250 * time.Millisecond
	whooshAttack   = 60 * time.Millisecond
	whooshRelease  = 150 * time.Millisecond

	bangDuration  = 400 * time.Millisecond
	thumpDuration = 300 * time.Millisecond
	thumpFreq     = 55.0
)

// waveType defines oscillator wave shapes
type waveType int

const (
	waveSquare waveType = iota
	waveNoise
)

// oscillator generates a raw wave for a fixed number of samples.
// Noise draws from its own rng so synthesis is repeatable.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     waveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newOscillator(freq float64, duration time.Duration, wave waveType, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rng,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with a linear attack and release
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// decay fades a stream exponentially, reaching about -60dB at the end
type decay struct {
	streamer beep.Streamer
	gain     float64
	factor   float64
}

func newDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	n := math.Max(1, float64(rate.N(duration)))
	return &decay{
		streamer: s,
		gain:     1,
		factor:   math.Pow(0.001, 1/n),
	}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= d.gain
		samples[i][1] *= d.gain
		d.gain *= d.factor
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales a stream linearly. Zero volume is silent since log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Synthesize builds a stand-in for a sound effect
func Synthesize(id entity.SoundID, sampleRate int, rng *rand.Rand) beep.Streamer {
	rate := beep.SampleRate(sampleRate)

	switch id {
	case entity.SoundWhoosh:
		noise := newOscillator(0, whooshDuration, waveNoise, rate, rng)
		return newVolume(newEnvelope(noise, whooshDuration, whooshAttack, whooshRelease, rate), 0.4)
	case entity.SoundBang:
		noise := newDecay(newOscillator(0, bangDuration, waveNoise, rate, rng), bangDuration, rate)
		thump := newDecay(newOscillator(thumpFreq, thumpDuration, waveSquare, rate, rng), thumpDuration, rate)
		return newVolume(beep.Mix(newVolume(noise, 0.6), newVolume(thump, 0.4)), 0.8)
	}
	return beep.Silence(0)
}

// synthDuration returns the length of the synthesised version of a sound
func synthDuration(id entity.SoundID) time.Duration {
	switch id {
	case entity.SoundWhoosh:
		return whooshDuration
	case entity.SoundBang:
		return bangDuration
	}
	return 0
}
