package audio

import "io"

// fakeSource is a finite in-memory Source whose samples come from a waveform
// function of the global frame index, so tests can predict every value
// regardless of read chunking.
type fakeSource struct {
	rate     int
	channels int
	frames   int
	pos      int
	closed   bool
	waveform func(frame, channel int) float32
	err      error // returned once in place of reading
}

func newFakeSource(rate, channels, frames int, waveform func(frame, channel int) float32) *fakeSource {
	return &fakeSource{
		rate:     rate,
		channels: channels,
		frames:   frames,
		waveform: waveform,
	}
}

// newRampSource counts frames: frame i has value i in every channel.
func newRampSource(rate, channels, frames int) *fakeSource {
	return newFakeSource(rate, channels, frames, func(frame, channel int) float32 {
		return float32(frame)
	})
}

func newConstantSource(rate, channels, frames int, value float32) *fakeSource {
	return newFakeSource(rate, channels, frames, func(frame, channel int) float32 {
		return value
	})
}

func (s *fakeSource) SampleRate() int { return s.rate }
func (s *fakeSource) Channels() int   { return s.channels }
func (s *fakeSource) BufSize() int    { return 256 * s.channels }

func (s *fakeSource) Close() error {
	s.closed = true
	return nil
}

func (s *fakeSource) ReadSamples(dst []float32) (int, error) {
	if s.err != nil {
		err := s.err
		s.err = nil
		return 0, err
	}

	if s.pos >= s.frames {
		return 0, io.EOF
	}

	frames := min(len(dst)/s.channels, s.frames-s.pos)
	for f := range frames {
		for c := range s.channels {
			dst[f*s.channels+c] = s.waveform(s.pos+f, c)
		}
	}
	s.pos += frames

	return frames * s.channels, nil
}
