// SPDX-License-Identifier: EPL-2.0

// Package enginetest provides scripted render backends for tests.
package enginetest

import (
	"errors"

	"github.com/crlotwhite/ucra-go/engine"
)

// ErrScripted is the default failure injected by a MockEngine.
var ErrScripted = errors.New("scripted render failure")

// MockEngine is a test helper that renders deterministic PCM and records
// every call. It implements engine.Engine.
//
// The waveform function decides each sample from a global frame counter that
// advances across calls, so output is reproducible regardless of how renders
// are split into blocks.
type MockEngine struct {
	waveform func(frame uint64, channel int) float32

	// FailAt makes the nth Render call (1-based) return Err instead of PCM.
	// Zero disables failure injection. The failure fires once.
	FailAt int
	// Err is the injected error. Nil selects ErrScripted.
	Err error

	// ShortBy trims that many samples off every returned block, violating
	// the render contract on purpose.
	ShortBy int

	frame  uint64
	calls  []Call
	closed bool
	buf    []float32
}

// Call records the arguments of one Render invocation.
type Call struct {
	Notes      []engine.Note
	SampleRate int
	Channels   int
	Frames     int
}

// NewMockEngine creates a mock whose samples come from waveform.
func NewMockEngine(waveform func(frame uint64, channel int) float32) *MockEngine {
	return &MockEngine{waveform: waveform}
}

// NewRampEngine creates a mock that renders the global frame index as the
// sample value in every channel. Reading through it yields 0, 1, 2, ... which
// makes loss, duplication and reordering visible.
func NewRampEngine() *MockEngine {
	return NewMockEngine(func(frame uint64, channel int) float32 {
		return float32(frame)
	})
}

// NewConstantEngine creates a mock that renders a constant value.
func NewConstantEngine(value float32) *MockEngine {
	return NewMockEngine(func(frame uint64, channel int) float32 {
		return value
	})
}

// NewSilentEngine creates a mock that renders silence.
func NewSilentEngine() *MockEngine {
	return NewConstantEngine(0)
}

func (m *MockEngine) Render(notes []engine.Note, sampleRate, channels, frames int) ([]float32, error) {
	// Record a copy: callers are allowed to reuse their note slices.
	copied := make([]engine.Note, len(notes))
	copy(copied, notes)
	m.calls = append(m.calls, Call{
		Notes:      copied,
		SampleRate: sampleRate,
		Channels:   channels,
		Frames:     frames,
	})

	if m.FailAt > 0 && len(m.calls) == m.FailAt {
		if m.Err != nil {
			return nil, m.Err
		}
		return nil, ErrScripted
	}

	total := frames * channels
	if cap(m.buf) < total {
		m.buf = make([]float32, total)
	}
	pcm := m.buf[:total]

	for f := range frames {
		for ch := range channels {
			pcm[f*channels+ch] = m.waveform(m.frame+uint64(f), ch)
		}
	}
	m.frame += uint64(frames)

	if m.ShortBy > 0 {
		return pcm[:max(0, total-m.ShortBy)], nil
	}

	return pcm, nil
}

func (m *MockEngine) Info() string { return "mock engine" }

func (m *MockEngine) Close() error {
	m.closed = true
	return nil
}

// Calls returns the recorded Render invocations in order.
func (m *MockEngine) Calls() []Call { return m.calls }

// RenderCount reports how many times Render ran.
func (m *MockEngine) RenderCount() int { return len(m.calls) }

// Closed reports whether Close was called.
func (m *MockEngine) Closed() bool { return m.closed }

// Frame returns the global frame counter (total frames rendered).
func (m *MockEngine) Frame() uint64 { return m.frame }
