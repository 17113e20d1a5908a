package audio

import (
	"errors"
	"io"
	"math"
	"testing"
)

// TestResampler_SameRate runs a counting ramp through a unity conversion.
// The interpolator must land exactly on every source frame, so any deviation
// means the read position drifts.
func TestResampler_SameRate(t *testing.T) {
	t.Parallel()

	const frames = 100
	r := NewResampler(newRampSource(8000, 1, frames), 8000)

	dst := make([]float32, frames)
	n, err := r.ReadSamples(dst)

	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != frames {
		t.Fatalf("ReadSamples() = %d samples, want %d", n, frames)
	}

	for i := range frames {
		if dst[i] != float32(i) {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], float32(i))
		}
	}

	if _, err := r.ReadSamples(dst); err != io.EOF {
		t.Errorf("ReadSamples() after exhaustion error = %v, want io.EOF", err)
	}
}

// TestResampler_Upsample doubles the rate of a ramp. Catmull-Rom reproduces
// linear signals exactly, so sample f must equal f/2 — including the very
// first samples, which depend on the extrapolated history frame.
func TestResampler_Upsample(t *testing.T) {
	t.Parallel()

	r := NewResampler(newRampSource(100, 1, 50), 200)

	dst := make([]float32, 80)
	n, err := r.ReadSamples(dst)

	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(dst) {
		t.Fatalf("ReadSamples() = %d samples, want %d", n, len(dst))
	}

	for f := range n {
		want := float64(f) / 2
		if math.Abs(float64(dst[f])-want) > 1e-3 {
			t.Fatalf("dst[%d] = %v, want %v", f, dst[f], want)
		}
	}
}

// TestResampler_Downsample halves the rate of a constant signal. The
// anti-alias filter must not disturb a DC input.
func TestResampler_Downsample(t *testing.T) {
	t.Parallel()

	const level = 0.5
	r := NewResampler(newConstantSource(44100, 2, 2000, level), 22050)

	dst := make([]float32, 1600)
	n, err := r.ReadSamples(dst)

	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(dst) {
		t.Fatalf("ReadSamples() = %d samples, want %d", n, len(dst))
	}

	for i := range n {
		if math.Abs(float64(dst[i])-level) > 1e-4 {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], level)
		}
	}
}

func TestResampler_PreservesChannels(t *testing.T) {
	t.Parallel()

	src := newFakeSource(48000, 2, 100, func(frame, channel int) float32 {
		if channel == 0 {
			return 1
		}
		return -1
	})
	r := NewResampler(src, 24000)

	if r.Channels() != 2 {
		t.Fatalf("Channels() = %d, want 2", r.Channels())
	}
	if r.SampleRate() != 24000 {
		t.Fatalf("SampleRate() = %d, want 24000", r.SampleRate())
	}

	dst := make([]float32, 40)
	n, err := r.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	for f := range n / 2 {
		if dst[f*2] <= 0 || dst[f*2+1] >= 0 {
			t.Fatalf("frame %d = (%v, %v), channels swapped or mixed",
				f, dst[f*2], dst[f*2+1])
		}
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	r := NewResampler(newRampSource(8000, 2, 10), 8000)

	if _, err := r.ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples(odd dst) error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	r := NewResampler(newRampSource(8000, 1, 0), 16000)

	n, err := r.ReadSamples(make([]float32, 16))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestResampler_PropagatesSourceError(t *testing.T) {
	t.Parallel()

	fail := errors.New("device unplugged")
	src := newRampSource(8000, 1, 100)
	src.err = fail

	r := NewResampler(src, 8000)

	if _, err := r.ReadSamples(make([]float32, 8)); !errors.Is(err, fail) {
		t.Errorf("ReadSamples() error = %v, want wrapped %v", err, fail)
	}
}

func TestResampler_CloseClosesSource(t *testing.T) {
	t.Parallel()

	src := newRampSource(8000, 1, 10)
	r := NewResampler(src, 8000)

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.closed {
		t.Error("Close() did not close the wrapped source")
	}
}

func BenchmarkResampler_ReadSamples(b *testing.B) {
	src := newConstantSource(44100, 2, 1<<30, 0.25)
	r := NewResampler(src, 48000)
	dst := make([]float32, 1024)

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		if _, err := r.ReadSamples(dst); err != nil {
			b.Fatal(err)
		}
	}
}
