// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// FrameLimiter truncates a stream after a fixed number of frames. Synthesis
// sessions are endless until closed, so anything that drains a source to
// io.EOF (a collector, a file encoder) needs a limiter in front of one.
type FrameLimiter struct {
	src       Source
	remaining int
}

// NewFrameLimiter wraps src and ends the stream after frames frames.
func NewFrameLimiter(src Source, frames int) *FrameLimiter {
	return &FrameLimiter{src: src, remaining: frames}
}

// SampleRate of the stream in Hz, unchanged from the source.
func (l *FrameLimiter) SampleRate() int {
	return l.src.SampleRate()
}

// Channels count, unchanged from the source.
func (l *FrameLimiter) Channels() int {
	return l.src.Channels()
}

// BufSize suggests the source's preferred read size.
func (l *FrameLimiter) BufSize() int {
	return l.src.BufSize()
}

// Close closes the wrapped source.
func (l *FrameLimiter) Close() error {
	if err := l.src.Close(); err != nil {
		return fmt.Errorf("close source: %w", err)
	}

	return nil
}

// ReadSamples reads from the source until the frame budget is spent, then
// reports io.EOF. A read that lands exactly on the budget returns the data
// with a nil error; the next call reports (0, io.EOF).
func (l *FrameLimiter) ReadSamples(dst []float32) (int, error) {
	if l.remaining <= 0 {
		return 0, io.EOF
	}

	channels := l.src.Channels()
	want := min(len(dst)/channels, l.remaining)

	n, err := l.src.ReadSamples(dst[:want*channels])
	l.remaining -= n / channels

	return n, err
}
