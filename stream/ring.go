// SPDX-License-Identifier: EPL-2.0

package stream

// ringBuffer stores interleaved float32 frames between renders and reads.
// Positions and counts are in frames; one frame is channels samples. It does
// no locking of its own: the session's mutex rules every access.
type ringBuffer struct {
	data     []float32
	capacity int
	channels int

	readPos   int
	writePos  int
	available int
}

func newRingBuffer(capacity, channels int) *ringBuffer {
	return &ringBuffer{
		data:     make([]float32, capacity*channels),
		capacity: capacity,
		channels: channels,
	}
}

// free reports how many frames can be written before the buffer is full.
func (r *ringBuffer) free() int {
	return r.capacity - r.available
}

// write copies frames worth of samples from src into the buffer, splitting
// the copy at the wrap point. The caller guarantees frames <= free().
func (r *ringBuffer) write(src []float32, frames int) {
	copied := 0
	for copied < frames {
		n := min(frames-copied, r.capacity-r.writePos)

		copy(r.data[r.writePos*r.channels:], src[copied*r.channels:(copied+n)*r.channels])

		r.writePos = (r.writePos + n) % r.capacity
		copied += n
	}

	r.available += frames
}

// read copies up to frames frames into dst in arrival order and returns how
// many were copied. It never blocks; an empty buffer yields 0.
func (r *ringBuffer) read(dst []float32, frames int) int {
	frames = min(frames, r.available)

	copied := 0
	for copied < frames {
		n := min(frames-copied, r.capacity-r.readPos)

		copy(dst[copied*r.channels:], r.data[r.readPos*r.channels:(r.readPos+n)*r.channels])

		r.readPos = (r.readPos + n) % r.capacity
		copied += n
	}

	r.available -= frames
	return frames
}

// release drops the backing storage. The buffer reads as empty afterwards.
func (r *ringBuffer) release() {
	r.data = nil
	r.readPos = 0
	r.writePos = 0
	r.available = 0
}
