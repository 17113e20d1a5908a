// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/crlotwhite/ucra-go/utils"
)

// Resampler converts a source stream to a different sample rate. Synthesis
// sessions render at the engine's native rate, which rarely matches what a
// playback device or a host file format wants; a Resampler sits between the
// two and hides the mismatch.
//
// Conversion interpolates with a Catmull-Rom spline over a sliding window of
// four source frames. When downsampling, a one-pole low-pass smooths the
// source first to tame aliasing.
type Resampler struct {
	src      Source
	channels int
	dstRate  int

	// step is how far the read position moves through the source per output
	// frame, in source frames.
	step float64

	// win holds four consecutive source frames, interleaved. Output frames
	// interpolate between the middle two; pos is the fractional position
	// between them.
	win    []float32
	pos    float64
	primed bool

	frame []float32
	eof   bool
	// drain counts post-EOF window shifts that repeat the final frame, so
	// the interpolator can reach it before the stream ends.
	drain int

	// lp is the low-pass state per channel; nil when upsampling.
	lp      []float32
	lpAlpha float32
}

// NewResampler wraps src and re-exposes it at dstRate. The channel count is
// preserved.
func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	r := &Resampler{
		src:      src,
		channels: channels,
		dstRate:  dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		win:      make([]float32, 4*channels),
		frame:    make([]float32, channels),
		drain:    2,
	}

	if r.step > 1 {
		r.lp = make([]float32, channels)
		r.lpAlpha = 0.5
	}

	return r
}

// SampleRate of the converted stream in Hz.
func (r *Resampler) SampleRate() int {
	return r.dstRate
}

// Channels count, unchanged from the source.
func (r *Resampler) Channels() int {
	return r.channels
}

// BufSize suggests the source's preferred read size.
func (r *Resampler) BufSize() int {
	return r.src.BufSize()
}

// Close closes the wrapped source.
func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("close source: %w", err)
	}

	return nil
}

// fetch reads the next source frame into r.frame. After the source reports
// EOF the final frame is repeated while drain shifts remain.
func (r *Resampler) fetch() error {
	if r.eof {
		if r.drain == 0 {
			return io.EOF
		}
		r.drain--
		return nil
	}

	n, err := r.src.ReadSamples(r.frame)
	if n < r.channels {
		r.eof = true
		if err != nil && err != io.EOF {
			return fmt.Errorf("read source: %w", err)
		}
		if r.drain == 0 {
			return io.EOF
		}
		r.drain--
		return nil
	}

	if r.lp != nil {
		for c := range r.channels {
			r.lp[c] += r.lpAlpha * (r.frame[c] - r.lp[c])
			r.frame[c] = r.lp[c]
		}
	}

	return nil
}

// shift slides the window one frame left and appends r.frame.
func (r *Resampler) shift() {
	copy(r.win, r.win[r.channels:])
	copy(r.win[3*r.channels:], r.frame)
}

// prime fills the window before the first output frame. The history slot is
// extrapolated from the first two frames, which keeps the spline linear
// across the stream start instead of flattening it.
func (r *Resampler) prime() error {
	n, err := r.src.ReadSamples(r.frame)
	if n < r.channels {
		r.eof = true
		if err != nil && err != io.EOF {
			return fmt.Errorf("read source: %w", err)
		}
		return io.EOF
	}

	if r.lp != nil {
		copy(r.lp, r.frame)
	}

	copy(r.win[r.channels:], r.frame)

	for slot := 2; slot < 4; slot++ {
		if err := r.fetch(); err != nil {
			return err
		}
		copy(r.win[slot*r.channels:], r.frame)
	}

	for c := range r.channels {
		r.win[c] = 2*r.win[r.channels+c] - r.win[2*r.channels+c]
	}

	r.primed = true
	return nil
}

// ReadSamples fills dst with interleaved samples at the target rate. len(dst)
// must be a multiple of the channel count. Returns the number of samples
// written; io.EOF once the source is exhausted.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for f := range frames {
		for r.pos >= 1 {
			if err := r.fetch(); err != nil {
				return written * r.channels, err
			}
			r.shift()
			r.pos--
		}

		x := float32(r.pos)
		for c := range r.channels {
			dst[f*r.channels+c] = utils.CubicInterpolate(
				r.win[c],
				r.win[r.channels+c],
				r.win[2*r.channels+c],
				r.win[3*r.channels+c],
				x,
			)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
