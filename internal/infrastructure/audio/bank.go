// Package audio holds the sound effects and plays them on a fixed pool of voices.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/younwookim/invaderers/internal/domain/entity"
)

// Bank holds decoded PCM for every sound id
type Bank struct {
	sampleRate int
	pcm        [entity.SoundCount][]byte
}

// NewBank creates an empty bank for the given output sample rate
func NewBank(sampleRate int) *Bank {
	return &Bank{sampleRate: sampleRate}
}

// Load decodes each configured .wav from fsys. A sound with no file,
// or whose file does not exist, is synthesised instead.
func (b *Bank) Load(fsys fs.FS, sounds map[string]string, rng *rand.Rand) error {
	for id := entity.SoundID(0); id < entity.SoundCount; id++ {
		pcm, err := b.loadWAV(fsys, sounds[id.String()])
		switch {
		case err == nil:
			b.pcm[id] = pcm
			continue
		case !errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("sound %s: %w", id, err)
		}

		log.Printf("sound %s: no sample, synthesising", id)
		b.pcm[id] = RenderPCM(Synthesize(id, b.sampleRate, rng))
	}
	return nil
}

func (b *Bank) loadWAV(fsys fs.FS, name string) ([]byte, error) {
	if fsys == nil || name == "" {
		return nil, fs.ErrNotExist
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	stream, err := wav.DecodeWithSampleRate(b.sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return pcm, nil
}

// PCM returns the sample data for id, or nil if none is loaded
func (b *Bank) PCM(id entity.SoundID) []byte {
	if id < 0 || id >= entity.SoundCount {
		return nil
	}
	return b.pcm[id]
}

// SampleRate returns the rate the PCM was rendered at
func (b *Bank) SampleRate() int {
	return b.sampleRate
}
