package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/crlotwhite/ucra-go/sample"
	"github.com/crlotwhite/ucra-go/utils"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	FullPCMBuffer() (*goaudio.IntBuffer, error)
}

type Decoder struct{}

// Decode loads an entire AIFF file into memory. Integer samples of any
// supported depth are normalized into [-1, 1].
func (Decoder) Decode(r io.ReadSeeker) (*sample.Sample, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	return load(dec, int(dec.BitDepth))
}

// load drains rd and normalizes its integer PCM by bit depth.
func load(rd aiffReader, bitDepth int) (*sample.Sample, error) {
	buf, err := rd.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode aiff data: %w", err)
	}

	format := rd.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	scale := utils.PCMScale(bitDepth)
	data := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		data[i] = float32(v) / scale
	}

	return &sample.Sample{
		Data:     data,
		Rate:     format.SampleRate,
		Channels: format.NumChannels,
	}, nil
}
