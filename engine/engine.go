// SPDX-License-Identifier: EPL-2.0

package engine

// Request carries one pull of render state from the host to a streaming
// session. The session fills SampleRate, Channels, BlockSize and Flags from
// its own configuration before every pull; the host callback fills Notes
// (and optionally Options) with the score state for the upcoming block.
//
// Note slices are borrowed: the session copies what it needs before the pull
// returns, so the host may reuse the backing arrays on the next call.
type Request struct {
	SampleRate int
	Channels   int
	BlockSize  int
	Flags      uint32

	// Notes scheduled on the engine timeline, in seconds since stream start.
	Notes []Note

	// Options carries engine-specific key/value settings.
	Options map[string]string
}

// Engine renders note segments into interleaved float32 PCM.
type Engine interface {
	// Render synthesizes frames*channels samples for the given notes.
	// Note times are relative to the start of the rendered span: a note
	// that began earlier arrives with a negative Start, and Duration
	// always covers the whole note rather than being clipped to the
	// span, so engines see the full note timeline and can keep
	// envelopes and phase continuous across blocks. The returned slice
	// is owned by the engine and valid until the next Render call;
	// callers copy out what they keep.
	Render(notes []Note, sampleRate, channels, frames int) ([]float32, error)

	// Info describes the engine (name and version).
	Info() string

	// Close releases engine resources.
	Close() error
}
