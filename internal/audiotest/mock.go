// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides finite scripted PCM sources for tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource is a finite in-memory stream whose samples come from a waveform
// function of the global frame index, so values are predictable regardless
// of how reads are chunked. It satisfies audio.Source.
type MockSource struct {
	rate     int
	channels int
	frames   int
	pos      int
	waveform func(frame, channel int) float32

	// Closed records whether Close was called.
	Closed bool
}

// NewMockSource creates a source of frames frames whose samples come from
// waveform.
func NewMockSource(rate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		rate:     rate,
		channels: channels,
		frames:   frames,
		waveform: waveform,
	}
}

// NewSilentSource creates an all-zero source.
func NewSilentSource(rate, channels, frames int) *MockSource {
	return NewConstantSource(rate, channels, frames, 0)
}

// NewConstantSource creates a source that holds one value on every channel.
func NewConstantSource(rate, channels, frames int, value float32) *MockSource {
	return NewMockSource(rate, channels, frames, func(frame, channel int) float32 {
		return value
	})
}

// NewSineSource creates a source carrying a sine tone at freq Hz.
func NewSineSource(rate, channels, frames int, freq float64) *MockSource {
	return NewMockSource(rate, channels, frames, func(frame, channel int) float32 {
		t := float64(frame) / float64(rate)
		return float32(math.Sin(2 * math.Pi * freq * t))
	})
}

// NewRampSource creates a source where frame i has value i in every channel,
// which makes loss, duplication and reordering visible downstream.
func NewRampSource(rate, channels, frames int) *MockSource {
	return NewMockSource(rate, channels, frames, func(frame, channel int) float32 {
		return float32(frame)
	})
}

func (m *MockSource) SampleRate() int { return m.rate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 1024 * m.channels }

func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

// Rewind restarts the stream from frame zero.
func (m *MockSource) Rewind() {
	m.pos = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.frames-m.pos)
	for f := range frames {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.pos+f, c)
		}
	}
	m.pos += frames

	return frames * m.channels, nil
}
