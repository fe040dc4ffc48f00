package audio

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

const (
	bytesPerFrame = 4
	// Hard cap on rendered length, 10s at 48kHz
	maxFrames = 480000
)

// RenderPCM drains s into 16-bit little-endian stereo PCM, the format ebiten audio players take
func RenderPCM(s beep.Streamer) []byte {
	s = beep.Take(maxFrames, s)

	out := make([]byte, 0, 64*1024)
	var buf [512][2]float64
	for {
		n, ok := s.Stream(buf[:])
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][1])))
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
