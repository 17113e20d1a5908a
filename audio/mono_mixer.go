// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer folds a multi-channel stream down to a single channel by
// averaging the channels of each frame. Engines duplicate their mono mix
// across channels, so for synthesized streams the fold is lossless; for
// decoded material it is the usual downmix.
type MonoMixer struct {
	src Source

	// buf stages interleaved source frames; it grows on demand and never
	// shrinks, so steady-state reads do not allocate.
	buf []float32
}

// NewMonoMixer wraps src. A mono source passes through untouched.
func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		buf: make([]float32, 4096),
	}
}

// SampleRate of the stream in Hz, unchanged from the source.
func (m *MonoMixer) SampleRate() int {
	return m.src.SampleRate()
}

// Channels is always 1.
func (m *MonoMixer) Channels() int {
	return 1
}

// BufSize suggests the source's preferred read size.
func (m *MonoMixer) BufSize() int {
	return m.src.BufSize()
}

// Close closes the wrapped source.
func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("close source: %w", err)
	}

	return nil
}

// ReadSamples fills dst with mono samples, one per source frame. Returns the
// number of samples written and the source's error, io.EOF at end of stream.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * channels
	if cap(m.buf) < need {
		m.buf = make([]float32, need)
	}

	n, err := m.src.ReadSamples(m.buf[:need])
	if n == 0 {
		return 0, err
	}

	frames := n / channels
	scale := 1 / float32(channels)

	switch channels {
	case 2:
		for f := range frames {
			dst[f] = (m.buf[f*2] + m.buf[f*2+1]) * 0.5
		}
	default:
		for f := range frames {
			sum := float32(0)
			for c := range channels {
				sum += m.buf[f*channels+c]
			}
			dst[f] = sum * scale
		}
	}

	return frames, err
}
