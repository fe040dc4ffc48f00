package audio

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/invaderers/internal/domain/entity"
)

// Voice is one playing sound. *audio.Player satisfies it.
type Voice interface {
	Play()
	Pause()
	SetVolume(volume float64)
	Close() error
}

// VoiceFactory starts a voice for a block of PCM
type VoiceFactory func(pcm []byte) Voice

// ContextFactory creates voices on an ebiten audio context
func ContextFactory(ctx *audio.Context) VoiceFactory {
	return func(pcm []byte) Voice {
		return ctx.NewPlayerFromBytes(pcm)
	}
}

// Mixer plays sounds round-robin over a fixed number of voices.
// Starting a sound cuts off whatever the chosen slot was playing.
type Mixer struct {
	bank    *Bank
	factory VoiceFactory
	voices  []Voice
	cur     int
	volume  float64
}

// NewMixer creates a mixer with the given number of voice slots.
// A nil factory or bank gives a silent mixer.
func NewMixer(bank *Bank, factory VoiceFactory, sources int, volume float64) *Mixer {
	if sources < 1 {
		sources = 1
	}
	return &Mixer{
		bank:    bank,
		factory: factory,
		voices:  make([]Voice, sources),
		volume:  volume,
	}
}

// NewSilentMixer creates a mixer whose Play does nothing
func NewSilentMixer() *Mixer {
	return NewMixer(nil, nil, 1, 0)
}

// Enabled reports whether Play produces sound
func (m *Mixer) Enabled() bool {
	return m.factory != nil && m.bank != nil
}

// Play starts sound id on the next voice slot
func (m *Mixer) Play(id entity.SoundID) {
	if !m.Enabled() {
		return
	}
	pcm := m.bank.PCM(id)
	if len(pcm) == 0 {
		return
	}

	slot := m.cur % len(m.voices)
	m.cur++
	m.release(slot)

	v := m.factory(pcm)
	v.SetVolume(m.volume)
	v.Play()
	m.voices[slot] = v
}

// SetVolume changes the volume of voices started from now on
func (m *Mixer) SetVolume(volume float64) {
	m.volume = volume
}

// Stop silences every voice
func (m *Mixer) Stop() {
	for i := range m.voices {
		m.release(i)
	}
}

func (m *Mixer) release(slot int) {
	if v := m.voices[slot]; v != nil {
		v.Pause()
		_ = v.Close()
		m.voices[slot] = nil
	}
}
