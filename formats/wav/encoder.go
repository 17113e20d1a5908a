// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/crlotwhite/ucra-go/utils"
)

// Source is the subset of a streaming session the encoder drains. A
// stream.Session satisfies it, as does anything that hands out interleaved
// float32 samples.
type Source interface {
	SampleRate() int
	Channels() int
	ReadSamples(dst []float32) (int, error)
}

// encodeFrames is the per-Write block size in frames.
const encodeFrames = 4096

// Encode drains src until io.EOF and writes the samples as a 16-bit PCM WAV.
// The writer must seek because the RIFF sizes are patched on Close.
func Encode(ws io.WriteSeeker, src Source) error {
	channels := src.Channels()
	enc := gowav.NewEncoder(ws, src.SampleRate(), 16, channels, 1)

	pcm := make([]float32, encodeFrames*channels)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: src.SampleRate()},
		Data:           make([]int, 0, len(pcm)),
		SourceBitDepth: 16,
	}

	wrote := false
	for {
		n, err := src.ReadSamples(pcm)
		if n > 0 {
			buf.Data = buf.Data[:n]
			for i, v := range pcm[:n] {
				buf.Data[i] = int(utils.Float32ToInt16(v))
			}

			if werr := enc.Write(buf); werr != nil {
				return fmt.Errorf("write wav block: %w", werr)
			}
			wrote = true
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read samples: %w", err)
		}
	}

	// go-audio writes the header lazily on the first Write; a source that
	// ends immediately still needs one zero-frame write to come out as a
	// valid file.
	if !wrote {
		buf.Data = buf.Data[:0]
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("write wav header: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}

	return nil
}

// EncodeSamples writes a whole interleaved buffer as a 16-bit PCM WAV.
func EncodeSamples(ws io.WriteSeeker, rate, channels int, pcm []float32) error {
	enc := gowav.NewEncoder(ws, rate, 16, channels, 1)

	chunk := encodeFrames * channels
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: rate},
		Data:           make([]int, 0, min(len(pcm), chunk)),
		SourceBitDepth: 16,
	}

	// go-audio writes the header lazily on the first Write, so an empty
	// input still needs one zero-frame write to come out as a valid file.
	if len(pcm) == 0 {
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("write wav header: %w", err)
		}
	}

	for off := 0; off < len(pcm); off += chunk {
		part := pcm[off:min(off+chunk, len(pcm))]
		buf.Data = buf.Data[:len(part)]
		for i, v := range part {
			buf.Data[i] = int(utils.Float32ToInt16(v))
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("write wav block: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}

	return nil
}
