package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave of freq Hz lasting duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 4.0*math.Abs(o.phase-0.5) - 1.0
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration: ramp up for attack, ramp down for release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol.
// math.Log2(0) is -Inf, so zero volume is mapped to silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one shaped note.
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// NewSuccessSound is a rising two-note chime (E5 then A5).
func NewSuccessSound(rate beep.SampleRate) beep.Streamer {
	const d = 90 * time.Millisecond
	return beep.Seq(
		newVolume(tone(659.25, d, WaveSine, rate), 0.6),
		newVolume(beep.Mix(
			tone(880.0, 2*d, WaveSine, rate),
			newVolume(tone(1760.0, 2*d, WaveSine, rate), 0.25),
		), 0.6),
	)
}

// NewErrorSound is a short low saw buzz.
func NewErrorSound(rate beep.SampleRate) beep.Streamer {
	const d = 220 * time.Millisecond
	osc := NewOscillator(110.0, d, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, d, 10*time.Millisecond, 80*time.Millisecond, rate), 0.35)
}

// melody is one phrase of the elevator loop: note frequencies, 0 for a rest.
var melody = []float64{
	523.25, 659.25, 783.99, 659.25, // C5 E5 G5 E5
	587.33, 698.46, 880.00, 698.46, // D5 F5 A5 F5
	523.25, 659.25, 783.99, 1046.50, // C5 E5 G5 C6
	987.77, 783.99, 0, 0, // B5 G5 rest
}

// melodyStep is the length of one melody note.
const melodyStep = 240 * time.Millisecond

// NewMelody returns one phrase of the elevator music over a soft bass.
// It is finite; the sound manager loops it.
func NewMelody(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(melody))
	for i, f := range melody {
		if f == 0 {
			notes = append(notes, beep.Silence(rate.N(melodyStep)))
			continue
		}
		bass := 130.81 // C3
		if (i/4)%2 == 1 {
			bass = 146.83 // D3
		}
		notes = append(notes, beep.Mix(
			newVolume(tone(f, melodyStep, WaveTriangle, rate), 0.25),
			newVolume(tone(bass, melodyStep, WaveSine, rate), 0.2),
		))
	}
	return beep.Seq(notes...)
}

// MelodyDuration is the length of one phrase at normal speed.
func MelodyDuration() time.Duration {
	return time.Duration(len(melody)) * melodyStep
}
