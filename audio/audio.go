// SPDX-License-Identifier: EPL-2.0

package audio

// Source is the streaming shape shared across the module: synthesis
// sessions produce it and the wrappers in this package consume and
// re-expose it, so conditioning stages chain freely.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns the number of float32 values written (not frames). When
	// n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// BufSize suggests a read buffer size in samples.
	BufSize() int

	// Close releases any resources.
	Close() error
}
