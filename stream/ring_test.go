// SPDX-License-Identifier: EPL-2.0

package stream

import "testing"

func TestRingBuffer_WriteRead(t *testing.T) {
	t.Parallel()

	r := newRingBuffer(8, 2)

	src := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	r.write(src, 3)

	if r.available != 3 {
		t.Fatalf("available = %d after writing 3 frames, want 3", r.available)
	}

	dst := make([]float32, 6)
	n := r.read(dst, 3)

	if n != 3 {
		t.Fatalf("read() = %d frames, want 3", n)
	}

	for i := range src {
		if dst[i] != src[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], src[i])
		}
	}

	if r.available != 0 {
		t.Errorf("available = %d after draining, want 0", r.available)
	}
}

func TestRingBuffer_ReadEmpty(t *testing.T) {
	t.Parallel()

	r := newRingBuffer(4, 1)

	dst := make([]float32, 4)
	if n := r.read(dst, 4); n != 0 {
		t.Errorf("read() on empty buffer = %d, want 0", n)
	}
}

func TestRingBuffer_PartialRead(t *testing.T) {
	t.Parallel()

	r := newRingBuffer(8, 1)
	r.write([]float32{1, 2, 3}, 3)

	dst := make([]float32, 8)
	n := r.read(dst, 8)

	if n != 3 {
		t.Fatalf("read() = %d frames, want the 3 available", n)
	}

	for i, want := range []float32{1, 2, 3} {
		if dst[i] != want {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestRingBuffer_FillToCapacity(t *testing.T) {
	t.Parallel()

	r := newRingBuffer(4, 1)

	r.write([]float32{1, 2, 3, 4}, 4)

	if r.free() != 0 {
		t.Errorf("free() = %d on full buffer, want 0", r.free())
	}

	dst := make([]float32, 4)
	if n := r.read(dst, 4); n != 4 {
		t.Errorf("read() = %d, want 4", n)
	}

	if r.free() != 4 {
		t.Errorf("free() = %d after draining, want 4", r.free())
	}
}

// TestRingBuffer_Wraparound feeds a counting ramp through a tiny buffer with
// misaligned chunk sizes, forcing both positions across the wrap point many
// times. Any lost, duplicated or reordered frame breaks the ramp.
func TestRingBuffer_Wraparound(t *testing.T) {
	t.Parallel()

	r := newRingBuffer(8, 1)

	src := make([]float32, 8)
	dst := make([]float32, 8)

	var produced, consumed int

	for range 50 {
		n := min(5, r.free())
		for i := range n {
			src[i] = float32(produced + i)
		}
		r.write(src[:n], n)
		produced += n

		got := r.read(dst, 3)
		for i := range got {
			if want := float32(consumed + i); dst[i] != want {
				t.Fatalf("sample %d = %v, want %v", consumed+i, dst[i], want)
			}
		}
		consumed += got

		if r.available+r.free() != r.capacity {
			t.Fatalf("accounting broken: available %d + free %d != capacity %d",
				r.available, r.free(), r.capacity)
		}
	}

	if produced < 2*r.capacity {
		t.Fatalf("only %d frames produced, wraparound not exercised", produced)
	}
}

// TestRingBuffer_StereoFramesStayInterleaved verifies frames are never split
// across the wrap: left and right of the same frame always travel together.
func TestRingBuffer_StereoFramesStayInterleaved(t *testing.T) {
	t.Parallel()

	r := newRingBuffer(4, 2)

	frame := make([]float32, 2)
	dst := make([]float32, 2)

	for i := range 20 {
		frame[0] = float32(i)
		frame[1] = -float32(i)
		r.write(frame, 1)

		if n := r.read(dst, 1); n != 1 {
			t.Fatalf("read() = %d, want 1", n)
		}

		if dst[0] != float32(i) || dst[1] != -float32(i) {
			t.Fatalf("frame %d read as (%v, %v), want (%v, %v)",
				i, dst[0], dst[1], float32(i), -float32(i))
		}
	}
}

func TestRingBuffer_Release(t *testing.T) {
	t.Parallel()

	r := newRingBuffer(8, 1)
	r.write([]float32{1, 2, 3}, 3)

	r.release()

	if r.available != 0 {
		t.Errorf("available = %d after release, want 0", r.available)
	}

	dst := make([]float32, 4)
	if n := r.read(dst, 4); n != 0 {
		t.Errorf("read() after release = %d, want 0", n)
	}
}

// TestRingBuffer_ZeroAllocs verifies the steady-state hot path does not touch
// the heap.
func TestRingBuffer_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	r := newRingBuffer(16, 2)
	src := make([]float32, 10)
	dst := make([]float32, 10)

	allocs := testing.AllocsPerRun(1000, func() {
		r.write(src, 5)
		r.read(dst, 5)
	})

	if allocs > 0 {
		t.Errorf("write/read cycle allocated %v times, want 0", allocs)
	}
}

// BenchmarkRingBuffer_WriteRead measures one block in, one block out.
func BenchmarkRingBuffer_WriteRead(b *testing.B) {
	r := newRingBuffer(4096, 2)
	src := make([]float32, 512*2)
	dst := make([]float32, 512*2)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		r.write(src, 512)
		r.read(dst, 512)
	}
}
