// SPDX-License-Identifier: EPL-2.0

package sampler

import (
	"fmt"
	"math"
	"strconv"

	"github.com/crlotwhite/ucra-go/engine"
	"github.com/crlotwhite/ucra-go/utils"
)

// defaultBaseNote is C4, the usual voicebank recording pitch.
const defaultBaseNote = 60

// Sampler renders notes by replaying voicebank samples, pitch-shifted with
// cubic interpolation. Each note picks its lyric's sample and steps through
// the mono mix at a ratio derived from the note pitch, the bank's reference
// pitch and the rate difference between bank and session. Samples loop for
// notes longer than the recording.
//
// Playheads are tracked per (pitch, lyric) voice and persist across Render
// calls, so playback continues seamlessly at block boundaries.
type Sampler struct {
	bank     *Bank
	baseNote int
	gain     float64

	heads map[voiceKey]float64

	mix []float64
	pcm []float32
}

type voiceKey struct {
	pitch int
	lyric string
}

// New builds a sampler over bank. Supported options:
//
//	base_note  MIDI pitch the recordings were sung at (default 60)
//	gain       linear output gain (default 1.0)
func New(bank *Bank, opts map[string]string) (*Sampler, error) {
	if bank == nil || bank.Len() == 0 {
		return nil, ErrEmptyBank
	}

	s := &Sampler{
		bank:     bank,
		baseNote: defaultBaseNote,
		gain:     1.0,
		heads:    make(map[voiceKey]float64),
	}

	if v, ok := opts["base_note"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: base_note %q", ErrInvalidOption, v)
		}
		if n < 0 || n > 127 {
			return nil, fmt.Errorf("%w: base_note %d out of MIDI range", ErrInvalidOption, n)
		}
		s.baseNote = n
	}

	if v, ok := opts["gain"]; ok {
		g, err := strconv.ParseFloat(v, 64)
		if err != nil || g < 0 {
			return nil, fmt.Errorf("%w: gain %q", ErrInvalidOption, v)
		}
		s.gain = g
	}

	return s, nil
}

// Factory adapts a bank to the engine registry:
//
//	reg.Register("sampler", sampler.Factory(bank))
func Factory(bank *Bank) engine.Factory {
	return func(opts map[string]string) (engine.Engine, error) {
		return New(bank, opts)
	}
}

// Render synthesizes frames*channels interleaved samples. Each active note
// contributes gain * velocity/127 * env(t) times its resampled voice. The
// mono mix is clipped to [-1, 1] and duplicated across channels.
func (s *Sampler) Render(notes []engine.Note, sampleRate, channels, frames int) ([]float32, error) {
	if sampleRate <= 0 || channels <= 0 || frames <= 0 {
		return nil, engine.ErrInvalidRender
	}

	if s.heads == nil {
		s.heads = make(map[voiceKey]float64)
	}

	if cap(s.mix) < frames {
		s.mix = make([]float64, frames)
	}
	mix := s.mix[:frames]
	clear(mix)

	total := frames * channels
	if cap(s.pcm) < total {
		s.pcm = make([]float32, total)
	}
	pcm := s.pcm[:total]

	step := 1.0 / float64(sampleRate)
	for i := range notes {
		s.renderNote(&notes[i], mix, float64(sampleRate), step)
	}
	s.prune(notes)

	for i, m := range mix {
		v := float32(utils.Clip(m))
		for ch := range channels {
			pcm[i*channels+ch] = v
		}
	}

	return pcm, nil
}

// renderNote adds one note's resampled voice into the mono mix. The voice's
// playhead carries over from previous calls and is stored back afterwards.
func (s *Sampler) renderNote(note *engine.Note, mix []float64, sampleRate, step float64) {
	pitchHz := engine.MIDIToHz(note.Pitch)
	if pitchHz <= 0 {
		// Unvoiced: contributes silence.
		return
	}

	ent := s.bank.lookup(note.Lyric)
	if ent == nil || len(ent.mono) == 0 {
		return
	}

	key := voiceKey{pitch: note.Pitch, lyric: note.Lyric}
	head := s.heads[key]

	// Source frames consumed per output frame.
	ratio := pitchHz / engine.MIDIToHz(s.baseNote) * float64(ent.rate) / sampleRate

	start := note.Start
	end := note.End()
	vel := float64(note.Velocity) / 127.0

	for i := range mix {
		t := float64(i) * step
		if t < start || t > end {
			continue
		}

		relT := t - start
		amp := s.gain * vel * note.Env.At(relT, 1.0)
		mix[i] += amp * float64(at(ent.mono, head))

		head += ratio
	}

	s.heads[key] = math.Mod(head, float64(len(ent.mono)))
}

// at reads a fractional frame position with Catmull-Rom interpolation.
// Positions wrap, looping the sample for long notes.
func at(mono []float32, pos float64) float32 {
	n := len(mono)
	i := int(pos) % n
	frac := float32(pos - math.Floor(pos))

	y0 := mono[(i-1+n)%n]
	y1 := mono[i]
	y2 := mono[(i+1)%n]
	y3 := mono[(i+2)%n]

	return utils.CubicInterpolate(y0, y1, y2, y3, frac)
}

// prune drops playhead state for voices no longer present in the note list.
func (s *Sampler) prune(notes []engine.Note) {
	for key := range s.heads {
		found := false
		for i := range notes {
			if notes[i].Pitch == key.pitch && notes[i].Lyric == key.lyric {
				found = true
				break
			}
		}

		if !found {
			delete(s.heads, key)
		}
	}
}

func (s *Sampler) Info() string {
	return "UCRA Voicebank Sampler Engine v1.0"
}

// Close drops all playhead state and render buffers. The bank stays usable.
func (s *Sampler) Close() error {
	clear(s.heads)
	s.mix = nil
	s.pcm = nil

	return nil
}
