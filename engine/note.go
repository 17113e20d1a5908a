// SPDX-License-Identifier: EPL-2.0

package engine

import "math"

// Unvoiced marks a note segment with no fundamental frequency, such as an
// unvoiced consonant. Engines render it as silence unless the note carries an
// F0 override curve.
const Unvoiced = -1

// Note is one scheduled segment of the score: a lyric sung at a pitch for a
// span of time. Times are in seconds on the engine timeline (for streaming
// renders, relative to the start of the current block).
type Note struct {
	// Start of the segment in seconds. In streamed blocks this is
	// negative for a note that began before the current block.
	Start float64
	// Duration of the segment in seconds.
	Duration float64
	// Pitch as a MIDI note number (0-127), or Unvoiced.
	Pitch int
	// Velocity in MIDI range (0-127). Zero is silent.
	Velocity int
	// Lyric or phoneme to sing.
	Lyric string

	// F0 optionally overrides the pitch-derived fundamental, in Hz over time
	// since note onset.
	F0 *Curve
	// Env optionally shapes the amplitude (0..1) over time since note onset.
	Env *Curve
}

// End returns the time at which the segment stops sounding.
func (n Note) End() float64 {
	return n.Start + n.Duration
}

// Curve is a sparse piecewise-constant control curve: Values[i] holds from
// Times[i] until the next point. Both slices are owned by the curve.
type Curve struct {
	Times  []float32
	Values []float32
}

// At samples the curve at time t using step-hold: the value of the last point
// whose time is at or before t. Before the first point the first value holds.
// A nil or empty curve yields fallback.
func (c *Curve) At(t, fallback float64) float64 {
	if c == nil {
		return fallback
	}

	n := min(len(c.Times), len(c.Values))
	if n == 0 {
		return fallback
	}

	idx := 0
	for i := range n {
		if float64(c.Times[i]) > t {
			break
		}
		idx = i
	}

	return float64(c.Values[idx])
}

// MIDIToHz converts a MIDI note number to its fundamental frequency using
// equal temperament with A4 (note 69) at 440 Hz. Negative notes (Unvoiced)
// return 0.
func MIDIToHz(pitch int) float64 {
	if pitch < 0 {
		return 0
	}

	return 440.0 * math.Pow(2.0, (float64(pitch)-69.0)/12.0)
}
