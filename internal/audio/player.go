// internal/audio/player.go
package audio

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"go-turret-defense/internal/audio/synth"
	"go-turret-defense/internal/interfaces"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate — частота аудиоконтекста; WAV-файлы пересэмплируются к ней.
const SampleRate = 44100

// Mixer владеет единственным аудиоконтекстом ebiten и создаёт из PCM звуковые сигналы.
type Mixer struct {
	ctx *audio.Context
}

// NewMixer creates the audio context. ebiten allows only one per process.
func NewMixer() *Mixer {
	return &Mixer{ctx: audio.NewContext(SampleRate)}
}

// Cue — заранее декодированный звук. Каждый Play создаёт свой плеер, звуки накладываются.
type Cue struct {
	ctx    *audio.Context
	pcm    []byte
	volume float64
}

var _ interfaces.Cue = (*Cue)(nil)

func (c *Cue) Play() {
	p := c.ctx.NewPlayerFromBytes(c.pcm)
	p.SetVolume(c.volume)
	p.Play()
}

func (c *Cue) SetVolume(v float64) {
	c.volume = v
}

// FromPCM wraps 16-bit little-endian stereo PCM at SampleRate.
func (m *Mixer) FromPCM(pcm []byte) *Cue {
	return &Cue{ctx: m.ctx, pcm: pcm, volume: 1}
}

func (m *Mixer) DecodeWAV(data []byte) (*Cue, error) {
	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav: %w", err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read wav samples: %w", err)
	}
	return m.FromPCM(pcm), nil
}

// CueOrSynth decodes WAV data; when there is none or it is broken the fallback
// streamer is rendered instead, so a cue always exists.
func (m *Mixer) CueOrSynth(name string, data []byte, fallback func(beep.SampleRate) beep.Streamer) *Cue {
	if data != nil {
		cue, err := m.DecodeWAV(data)
		if err == nil {
			return cue
		}
		log.Printf("WARNING: sound %s: %v", name, err)
	}
	log.Printf("Using synthesized %s sound", name)
	return m.FromPCM(synth.Render(fallback(beep.SampleRate(SampleRate))))
}
