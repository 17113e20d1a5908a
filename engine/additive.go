// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"math"

	"github.com/crlotwhite/ucra-go/utils"
)

// Additive is the reference synthesizer: one sine partial per note, mixed
// additively. It has no external dependencies and is fully deterministic, so
// it doubles as the fallback backend when no other engine is configured.
//
// Oscillator phase is tracked per (pitch, lyric) voice and persists across
// Render calls, which keeps sines continuous across block boundaries when the
// same notes are rendered in consecutive spans.
type Additive struct {
	phases map[voiceKey]float64

	mix []float64
	pcm []float32
}

type voiceKey struct {
	pitch int
	lyric string
}

// NewAdditive returns a ready-to-use reference synthesizer.
func NewAdditive() *Additive {
	return &Additive{phases: make(map[voiceKey]float64)}
}

// Render synthesizes frames*channels interleaved samples. Each active note
// contributes amp * sin(phase) per frame, where amp = 0.2 * velocity/127 *
// env(t) and the frequency follows the note's F0 curve (or its MIDI pitch).
// The mono mix is clipped to [-1, 1] and duplicated across channels.
func (e *Additive) Render(notes []Note, sampleRate, channels, frames int) ([]float32, error) {
	if sampleRate <= 0 || channels <= 0 || frames <= 0 {
		return nil, ErrInvalidRender
	}

	if e.phases == nil {
		e.phases = make(map[voiceKey]float64)
	}

	if cap(e.mix) < frames {
		e.mix = make([]float64, frames)
	}
	mix := e.mix[:frames]
	clear(mix)

	total := frames * channels
	if cap(e.pcm) < total {
		e.pcm = make([]float32, total)
	}
	pcm := e.pcm[:total]

	step := 1.0 / float64(sampleRate)
	for i := range notes {
		e.renderNote(&notes[i], mix, step)
	}
	e.prune(notes)

	for i, m := range mix {
		s := float32(utils.Clip(m))
		for ch := range channels {
			pcm[i*channels+ch] = s
		}
	}

	return pcm, nil
}

// renderNote adds one note's sine into the mono mix. The voice's oscillator
// phase carries over from previous calls and is stored back afterwards.
func (e *Additive) renderNote(note *Note, mix []float64, step float64) {
	key := voiceKey{pitch: note.Pitch, lyric: note.Lyric}
	phase := e.phases[key]

	start := note.Start
	end := note.End()
	baseHz := MIDIToHz(note.Pitch)
	vel := float64(note.Velocity) / 127.0

	for i := range mix {
		t := float64(i) * step
		if t < start || t > end {
			continue
		}

		relT := t - start
		f0 := note.F0.At(relT, baseHz)
		if f0 <= 0 {
			// Unvoiced and no override: contributes silence.
			continue
		}

		amp := 0.2 * vel * note.Env.At(relT, 1.0)
		mix[i] += amp * math.Sin(phase)

		phase += 2 * math.Pi * f0 * step
		if phase >= 2*math.Pi {
			phase = math.Mod(phase, 2*math.Pi)
		}
	}

	e.phases[key] = phase
}

// prune drops phase state for voices no longer present in the note list.
func (e *Additive) prune(notes []Note) {
	for key := range e.phases {
		found := false
		for i := range notes {
			if notes[i].Pitch == key.pitch && notes[i].Lyric == key.lyric {
				found = true
				break
			}
		}

		if !found {
			delete(e.phases, key)
		}
	}
}

func (e *Additive) Info() string {
	return "UCRA Additive Reference Engine v1.0"
}

// Close drops all voice state and render buffers.
func (e *Additive) Close() error {
	clear(e.phases)
	e.mix = nil
	e.pcm = nil

	return nil
}
