// internal/audio/synth/tone.go
package synth

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave — форма колебания генератора.
type Wave int

const (
	Sine Wave = iota
	Square
	Noise
)

// tone — генератор конечной длины. Частота может линейно скользить от freq к endFreq.
type tone struct {
	wave    Wave
	freq    float64
	endFreq float64
	phase   float64
	pos     int
	total   int
	rate    beep.SampleRate
}

// NewTone creates a finite oscillator. endFreq equal to freq gives a steady pitch.
func NewTone(wave Wave, freq, endFreq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{wave: wave, freq: freq, endFreq: endFreq, total: rate.N(d), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		var v float64
		switch t.wave {
		case Sine:
			v = math.Sin(2 * math.Pi * t.phase)
		case Square:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case Noise:
			v = rand.Float64()*2 - 1
		}
		samples[i] = [2]float64{v, v}

		progress := float64(t.pos) / float64(t.total)
		f := t.freq + (t.endFreq-t.freq)*progress
		t.phase += f / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// decay — линейная атака и линейное затухание до нуля к концу звука.
type decay struct {
	s      beep.Streamer
	pos    int
	attack int
	total  int
}

// NewDecay shapes s with a linear attack and a linear fade to silence over d.
func NewDecay(s beep.Streamer, d, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{s: s, attack: rate.N(attack), total: rate.N(d)}
}

func (e *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 0.0
		switch {
		case e.pos < e.attack:
			gain = float64(e.pos) / float64(e.attack)
		case e.pos < e.total:
			gain = float64(e.total-e.pos) / float64(e.total-e.attack)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *decay) Err() error { return e.s.Err() }

// withVolume scales by a linear gain. effects.Volume works in log2 units, 0 is silence.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
