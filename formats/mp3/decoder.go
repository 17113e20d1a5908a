// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/crlotwhite/ucra-go/sample"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type Decoder struct{}

// Decode loads an entire MP3 stream into memory. go-mp3 always emits
// 16-bit little-endian stereo PCM, so the sample has two channels.
func (Decoder) Decode(r io.ReadSeeker) (*sample.Sample, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("open mp3 stream: %w", err)
	}

	data, err := readAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decode mp3 data: %w", err)
	}

	return &sample.Sample{
		Data:     data,
		Rate:     dec.SampleRate(),
		Channels: 2,
	}, nil
}

// readAll drains dec and converts its PCM bytes to float32 samples.
// go-mp3 delivers whole frames, so reads are 2-byte aligned.
func readAll(dec mp3Reader) ([]float32, error) {
	var samples []float32
	buf := make([]byte, 8192)

	for {
		n, err := dec.Read(buf)

		for i := range n / 2 {
			// Read int16 little-endian
			low := uint16(buf[2*i])
			high := uint16(buf[2*i+1])
			val := int16(low | (high << 8))
			samples = append(samples, float32(val)/32768.0)
		}

		if err == io.EOF {
			return samples, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
