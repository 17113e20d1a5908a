// SPDX-License-Identifier: EPL-2.0

// Package engine defines the note model and the render backend contract.
//
// An Engine turns scheduled note segments into interleaved float32 PCM. The
// package ships one backend, the deterministic Additive reference
// synthesizer, and a Registry so applications can plug in their own.
//
// # Notes and Curves
//
// A Note is one segment of the score: a lyric sung at a MIDI pitch for a span
// of seconds. Expressive detail rides on optional control curves:
//
//	note := engine.Note{
//	    Start:    0,
//	    Duration: 1.5,
//	    Pitch:    69, // A4
//	    Velocity: 100,
//	    Lyric:    "a",
//	    Env: &engine.Curve{
//	        Times:  []float32{0, 1.0},
//	        Values: []float32{1.0, 0.5},
//	    },
//	}
//
// Curves are piecewise-constant: sampling holds the last point at or before
// the requested time. A nil curve falls back to the caller's default, so
// plain notes need no curve at all.
//
// Pitch Unvoiced (-1) marks segments with no fundamental, like unvoiced
// consonants. They render as silence unless an F0 curve overrides them.
//
// # Rendering
//
// Engines render spans of frames on demand:
//
//	eng := engine.NewAdditive()
//	pcm, err := eng.Render(notes, 44100, 2, 512)
//
// The returned slice is owned by the engine and valid until the next Render
// call. Streaming consumers copy it into their own buffers immediately.
//
// # Engine Registry
//
// The registry maps names to engine factories:
//
//	registry := engine.NewRegistry()
//	registry.Register("additive", func(opts map[string]string) (engine.Engine, error) {
//	    return engine.NewAdditive(), nil
//	})
//	eng, err := registry.New("additive", nil)
//
// This is how hosts select a backend from a manifest or command line.
package engine
