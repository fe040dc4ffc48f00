package audio

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"
	"testing/fstest"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/invaderers/internal/domain/entity"
)

const testRate = 44100

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

type fakeVoice struct {
	pcm     []byte
	volume  float64
	playing bool
	closed  bool
}

func (v *fakeVoice) Play()                 { v.playing = true }
func (v *fakeVoice) Pause()                { v.playing = false }
func (v *fakeVoice) SetVolume(vol float64) { v.volume = vol }
func (v *fakeVoice) Close() error          { v.closed = true; return nil }

type fakeFactory struct {
	created []*fakeVoice
}

func (f *fakeFactory) New(pcm []byte) Voice {
	v := &fakeVoice{pcm: pcm}
	f.created = append(f.created, v)
	return v
}

// stereoWAV builds a 16-bit stereo RIFF file holding frames silent frames
func stereoWAV(frames int) []byte {
	dataLen := frames * 4
	var b bytes.Buffer
	b.WriteString("RIFF")
	_ = binary.Write(&b, binary.LittleEndian, uint32(36+dataLen))
	b.WriteString("WAVEfmt ")
	_ = binary.Write(&b, binary.LittleEndian, uint32(16))
	_ = binary.Write(&b, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&b, binary.LittleEndian, uint16(2))
	_ = binary.Write(&b, binary.LittleEndian, uint32(testRate))
	_ = binary.Write(&b, binary.LittleEndian, uint32(testRate*4))
	_ = binary.Write(&b, binary.LittleEndian, uint16(4))
	_ = binary.Write(&b, binary.LittleEndian, uint16(16))
	b.WriteString("data")
	_ = binary.Write(&b, binary.LittleEndian, uint32(dataLen))
	b.Write(make([]byte, dataLen))
	return b.Bytes()
}

func TestSynthesize_Whoosh(t *testing.T) {
	pcm := RenderPCM(Synthesize(entity.SoundWhoosh, testRate, testRNG()))

	frames := beep.SampleRate(testRate).N(synthDuration(entity.SoundWhoosh))
	assert.Len(t, pcm, frames*bytesPerFrame)

	// Attack starts from silence
	assert.Equal(t, []byte{0, 0, 0, 0}, pcm[:4])
}

func TestSynthesize_Bang(t *testing.T) {
	pcm := RenderPCM(Synthesize(entity.SoundBang, testRate, testRNG()))

	frames := beep.SampleRate(testRate).N(synthDuration(entity.SoundBang))
	assert.Zero(t, len(pcm)%bytesPerFrame)
	assert.InDelta(t, frames, len(pcm)/bytesPerFrame, 512)

	loud := false
	for i := 0; i+1 < len(pcm) && i < 4000; i += 2 {
		if v := int16(binary.LittleEndian.Uint16(pcm[i:])); v > 8000 || v < -8000 {
			loud = true
			break
		}
	}
	assert.True(t, loud, "bang should open loud")
}

func TestSynthesize_Deterministic(t *testing.T) {
	a := RenderPCM(Synthesize(entity.SoundBang, testRate, testRNG()))
	b := RenderPCM(Synthesize(entity.SoundBang, testRate, testRNG()))

	assert.Equal(t, a, b)
}

func TestSynthesize_Unknown(t *testing.T) {
	assert.Empty(t, RenderPCM(Synthesize(entity.SoundCount, testRate, testRNG())))
	assert.Zero(t, synthDuration(entity.SoundCount))
}

func TestToInt16_Clamps(t *testing.T) {
	assert.Equal(t, int16(32767), toInt16(2))
	assert.Equal(t, int16(-32767), toInt16(-2))
	assert.Equal(t, int16(0), toInt16(0))
}

func TestBank_LoadSynthesisesMissing(t *testing.T) {
	bank := NewBank(testRate)

	err := bank.Load(fstest.MapFS{}, map[string]string{
		"whoosh": "invaderers/whoosh.wav",
	}, testRNG())
	require.NoError(t, err)

	assert.NotEmpty(t, bank.PCM(entity.SoundWhoosh))
	assert.NotEmpty(t, bank.PCM(entity.SoundBang))
	assert.Nil(t, bank.PCM(entity.SoundCount))
	assert.Equal(t, testRate, bank.SampleRate())
}

func TestBank_LoadWAV(t *testing.T) {
	fsys := fstest.MapFS{
		"invaderers/bang.wav": &fstest.MapFile{Data: stereoWAV(8)},
	}
	bank := NewBank(testRate)

	err := bank.Load(fsys, map[string]string{"bang": "invaderers/bang.wav"}, testRNG())
	require.NoError(t, err)

	assert.Len(t, bank.PCM(entity.SoundBang), 8*bytesPerFrame)
}

func TestBank_LoadCorruptWAV(t *testing.T) {
	fsys := fstest.MapFS{
		"invaderers/bang.wav": &fstest.MapFile{Data: []byte("RIFF....nope")},
	}

	err := NewBank(testRate).Load(fsys, map[string]string{"bang": "invaderers/bang.wav"}, testRNG())
	assert.ErrorContains(t, err, "failed to decode")
}

func TestBank_LoadNilFS(t *testing.T) {
	bank := NewBank(testRate)

	require.NoError(t, bank.Load(nil, nil, testRNG()))
	assert.NotEmpty(t, bank.PCM(entity.SoundBang))
}

func loadedBank(t *testing.T) *Bank {
	t.Helper()
	bank := NewBank(testRate)
	require.NoError(t, bank.Load(nil, nil, testRNG()))
	return bank
}

func TestMixer_RoundRobin(t *testing.T) {
	f := &fakeFactory{}
	m := NewMixer(loadedBank(t), f.New, 3, 0.5)

	for i := 0; i < 4; i++ {
		m.Play(entity.SoundWhoosh)
	}

	require.Len(t, f.created, 4)
	// The fourth sound reused slot 0 and cut off the first voice
	assert.True(t, f.created[0].closed)
	assert.False(t, f.created[0].playing)
	for _, v := range f.created[1:] {
		assert.True(t, v.playing)
		assert.False(t, v.closed)
		assert.Equal(t, 0.5, v.volume)
	}
	assert.Same(t, f.created[3], m.voices[0])
}

func TestMixer_PlaysBankPCM(t *testing.T) {
	bank := loadedBank(t)
	f := &fakeFactory{}
	m := NewMixer(bank, f.New, 8, 1)

	m.Play(entity.SoundBang)

	require.Len(t, f.created, 1)
	assert.Equal(t, bank.PCM(entity.SoundBang), f.created[0].pcm)
}

func TestMixer_Silent(t *testing.T) {
	m := NewSilentMixer()

	assert.False(t, m.Enabled())
	assert.NotPanics(t, func() {
		m.Play(entity.SoundBang)
		m.Stop()
	})
}

func TestMixer_UnknownSoundSkipsVoice(t *testing.T) {
	f := &fakeFactory{}
	m := NewMixer(loadedBank(t), f.New, 2, 1)

	m.Play(entity.SoundCount)

	assert.Empty(t, f.created)
	assert.Equal(t, 0, m.cur)
}

func TestMixer_Stop(t *testing.T) {
	f := &fakeFactory{}
	m := NewMixer(loadedBank(t), f.New, 4, 1)
	m.Play(entity.SoundWhoosh)
	m.Play(entity.SoundBang)

	m.Stop()

	for _, v := range f.created {
		assert.False(t, v.playing)
		assert.True(t, v.closed)
	}
}

func TestMixer_SetVolume(t *testing.T) {
	f := &fakeFactory{}
	m := NewMixer(loadedBank(t), f.New, 2, 1)

	m.SetVolume(0.25)
	m.Play(entity.SoundWhoosh)

	assert.Equal(t, 0.25, f.created[0].volume)
}
