// SPDX-License-Identifier: EPL-2.0

package sample

// Sample is one fully decoded voice recording held in memory. Voicebank
// units are short (phonemes, syllables), so whole-sample decoding keeps the
// render path free of file I/O.
type Sample struct {
	// Data holds interleaved float32 samples in [-1, 1].
	Data []float32
	// Rate of the recording in Hz.
	Rate int
	// Channels per frame (1=mono, 2=stereo).
	Channels int
}

// Frames reports the sample length in frames.
func (s *Sample) Frames() int {
	if s.Channels <= 0 {
		return 0
	}

	return len(s.Data) / s.Channels
}

// Duration reports the sample length in seconds.
func (s *Sample) Duration() float64 {
	if s.Rate <= 0 {
		return 0
	}

	return float64(s.Frames()) / float64(s.Rate)
}

// Mono returns a single-channel mixdown by averaging channels per frame.
// Mono input returns the sample's own data without copying.
func (s *Sample) Mono() []float32 {
	if s.Channels <= 1 {
		return s.Data
	}

	channels := s.Channels
	frames := s.Frames()
	out := make([]float32, frames)

	invChannels := float32(1.0) / float32(channels)

	// Unrolled loop for common cases
	switch channels {
	case 2: // Stereo (most common)
		for f := range frames {
			idx := f << 1
			out[f] = (s.Data[idx] + s.Data[idx+1]) * 0.5
		}
	case 4: // Quad
		for f := range frames {
			idx := f << 2
			sum := s.Data[idx] + s.Data[idx+1] + s.Data[idx+2] + s.Data[idx+3]
			out[f] = sum * 0.25
		}
	default: // Generic path
		for f := range frames {
			sum := float32(0)
			baseIdx := f * channels
			for c := range channels {
				sum += s.Data[baseIdx+c]
			}
			out[f] = sum * invChannels
		}
	}

	return out
}
