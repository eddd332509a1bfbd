// Package audio synthesizes the runner's sound effects with beep and plays
// them through the system speaker.
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
)

// oscillator generates a raw wave, optionally sweeping its frequency
// linearly from freq to endFreq over its duration.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
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
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.duration > 0 && o.endFreq != o.freq {
			t := float64(o.position) / float64(o.duration)
			freq = o.freq + (o.endFreq-o.freq)*t
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
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

// NewEnvelope shapes s with attack/release ramps over duration.
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

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is mapped to Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Sound identifies a game sound effect.
type Sound int

const (
	SoundJump Sound = iota
	SoundCrash
	SoundWin
)

func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundCrash:
		return "crash"
	case SoundWin:
		return "win"
	default:
		return "unknown"
	}
}

const (
	jumpDuration  = 120 * time.Millisecond
	crashDuration = 300 * time.Millisecond
	winNote       = 110 * time.Millisecond
	attack        = 5 * time.Millisecond
)

// createJump is a short upward chirp.
func createJump(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(440, 880, jumpDuration, WaveSquare, rate)
	return NewEnvelope(osc, jumpDuration, attack, 60*time.Millisecond, rate)
}

// createCrash is a falling saw buzz.
func createCrash(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(220, 70, crashDuration, WaveSaw, rate)
	return NewEnvelope(osc, crashDuration, attack, 200*time.Millisecond, rate)
}

// createWin is a rising C major arpeggio.
func createWin(rate beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, winNote, WaveSine, rate)
		seq = append(seq, NewEnvelope(osc, winNote, attack, 50*time.Millisecond, rate))
	}
	return beep.Seq(seq...)
}

// Effect builds the streamer for a sound at the given volume (0..1).
func Effect(s Sound, volume float64, rate beep.SampleRate) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundJump:
		st = createJump(rate)
	case SoundCrash:
		st = createCrash(rate)
	case SoundWin:
		st = createWin(rate)
	default:
		return nil
	}
	return newVolume(st, volume)
}
