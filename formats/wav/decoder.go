package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/crlotwhite/ucra-go/sample"
	"github.com/crlotwhite/ucra-go/utils"
)

type Decoder struct{}

// Decode loads an entire PCM WAV file into memory. Integer samples of any
// supported depth are normalized into [-1, 1].
func (Decoder) Decode(r io.ReadSeeker) (*sample.Sample, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != 1 {
		return nil, ErrOnlyPCMSupported
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav data: %w", err)
	}

	if buf.Format == nil || buf.Format.NumChannels <= 0 || buf.Format.SampleRate <= 0 {
		return nil, ErrUnsupportedWavLayout
	}

	return &sample.Sample{
		Data:     normalize(buf.Data, int(dec.BitDepth)),
		Rate:     buf.Format.SampleRate,
		Channels: buf.Format.NumChannels,
	}, nil
}

// normalize scales integer PCM into float32 by the bit depth's full range.
func normalize(data []int, bitDepth int) []float32 {
	scale := utils.PCMScale(bitDepth)
	out := make([]float32, len(data))
	for i, v := range data {
		out[i] = float32(v) / scale
	}

	return out
}
