package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/crlotwhite/ucra-go/sample"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type Decoder struct{}

// Decode loads an entire Ogg Vorbis stream into memory. Vorbis decodes
// straight to float32, so samples are copied without conversion.
func (Decoder) Decode(r io.ReadSeeker) (*sample.Sample, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open ogg stream: %w", err)
	}

	data, err := readAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decode ogg data: %w", err)
	}

	return &sample.Sample{
		Data:     data,
		Rate:     dec.SampleRate(),
		Channels: dec.Channels(),
	}, nil
}

// readAll drains dec. oggvorbis reports the number of samples stored,
// not frames, and never splits a frame across reads.
func readAll(dec oggReader) ([]float32, error) {
	var samples []float32
	buf := make([]float32, 8192)

	for {
		n, err := dec.Read(buf)
		samples = append(samples, buf[:n]...)

		if err == io.EOF {
			return samples, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
