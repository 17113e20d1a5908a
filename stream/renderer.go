// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"fmt"

	"github.com/crlotwhite/ucra-go/engine"
)

// blockRenderer turns the host's absolute-time note list into one rendered
// block at a time. It windows the notes to the block's span, rebases them so
// the engine sees block-relative times, and validates what the engine
// returns. Rebasing only shifts Start: a note that began in an earlier block
// arrives with a negative Start and its full Duration, so engines keep
// envelopes and phase continuous instead of seeing a clipped fragment.
// Scratch slices are reused across blocks.
type blockRenderer struct {
	eng        engine.Engine
	sampleRate int
	channels   int

	// active holds the rebased copies handed to the engine for one block.
	active []engine.Note
	// silence backs blocks with no active notes; it is written once at
	// construction and stays all-zero.
	silence []float32
}

func newBlockRenderer(eng engine.Engine, cfg Config) *blockRenderer {
	return &blockRenderer{
		eng:        eng,
		sampleRate: cfg.SampleRate,
		channels:   cfg.Channels,
		silence:    make([]float32, cfg.BlockSize*cfg.Channels),
	}
}

// render produces frames*channels interleaved samples covering absolute
// frames [start, start+frames). The returned slice is valid until the next
// call. frames must not exceed the configured block size.
func (r *blockRenderer) render(notes []engine.Note, start uint64, frames int) ([]float32, error) {
	t0 := float64(start) / float64(r.sampleRate)
	t1 := t0 + float64(frames)/float64(r.sampleRate)

	r.active = r.active[:0]
	for i := range notes {
		note := notes[i]
		if note.End() < t0 || note.Start >= t1 {
			continue
		}

		note.Start -= t0
		r.active = append(r.active, note)
	}

	if len(r.active) == 0 {
		return r.silence[:frames*r.channels], nil
	}

	pcm, err := r.eng.Render(r.active, r.sampleRate, r.channels, frames)
	if err != nil {
		return nil, fmt.Errorf("render block: %w", err)
	}

	if len(pcm) != frames*r.channels {
		return nil, fmt.Errorf("%w: got %d samples, want %d",
			ErrShortRender, len(pcm), frames*r.channels)
	}

	return pcm, nil
}
