// internal/audio/synth/cues.go
package synth

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	FireDuration   = 70 * time.Millisecond
	ImpactDuration = 180 * time.Millisecond
)

// FireCue — короткий нисходящий «пиу» для выстрела.
func FireCue(rate beep.SampleRate) beep.Streamer {
	chirp := NewTone(Square, 1400, 500, FireDuration, rate)
	shaped := NewDecay(chirp, FireDuration, 3*time.Millisecond, rate)
	return beep.Take(rate.N(FireDuration), withVolume(shaped, 0.25))
}

// ImpactCue — шумовой хлопок с низким тоном для сбитого захватчика.
func ImpactCue(rate beep.SampleRate) beep.Streamer {
	noise := NewDecay(NewTone(Noise, 0, 0, ImpactDuration, rate), ImpactDuration, 2*time.Millisecond, rate)
	thump := NewDecay(NewTone(Sine, 160, 60, ImpactDuration, rate), ImpactDuration, 5*time.Millisecond, rate)
	mixed := beep.Mix(withVolume(noise, 0.35), withVolume(thump, 0.6))
	return beep.Take(rate.N(ImpactDuration), mixed)
}

// Render drains s into 16-bit little-endian stereo PCM, the layout ebiten's audio player expects.
func Render(s beep.Streamer) []byte {
	var pcm []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				pcm = binary.LittleEndian.AppendUint16(pcm, uint16(toInt16(v)))
			}
		}
		if !ok || n == 0 {
			return pcm
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
